package theft

// shrink reduces a failing tuple to a locally minimal failing tuple. It
// walks (position, tactic) pairs breadth-first: positions left to right,
// tactics in ascending index order within a position. Whenever a candidate
// still fails it is committed immediately and the tactic index restarts at
// 0, so coarse tactics that previously hit a dead end get retried on the
// new value. The walk repeats until a full pass over all positions makes no
// progress; termination follows from the shrink callbacks'
// well-foundedness contract.
//
// The duplicate filter is shared with generation: a candidate tuple whose
// hash is already recorded is treated as already tested and the tactic
// index advances without invoking the property.
//
// The tuple passed in is owned by the shrinker until it returns; superseded
// values and rejected candidates are released immediately.
func (e *Engine) shrink(cfg *Config, args []any, seed uint64) []any {
	steps := 0
	for progress := true; progress; {
		progress = false
		for pos, ti := range cfg.TypeInfo {
			if ti.Shrink == nil {
				continue
			}
			tactic := 0
			for {
				candidate, res := ti.Shrink(args[pos], tactic, cfg.Env)
				if res == ShrinkNoMoreTactics {
					break
				}
				if res == ShrinkDeadEnd {
					tactic++
					continue
				}

				prev := args[pos]
				args[pos] = candidate
				if h, hashed := tupleHash(cfg, args); hashed && e.filter.TestAndSet(h) {
					args[pos] = prev
					releaseValue(ti, candidate, cfg.Env)
					tactic++
					continue
				}

				if cfg.Property(args, cfg.Env) == TrialFail {
					releaseValue(ti, prev, cfg.Env)
					progress = true
					steps++
					tactic = 0
					continue
				}

				args[pos] = prev
				releaseValue(ti, candidate, cfg.Env)
				tactic++
			}
		}
	}
	if cfg.Logger != nil {
		cfg.Logger.Debug("shrink_finished", "seed", seed, "steps", steps)
	}
	return args
}
