package theft

import (
	"fmt"
	"os"

	"github.com/lochsh/theft/bloom"
	"github.com/lochsh/theft/rng"
)

// Run executes cfg's trials in ascending index order. It returns RunFail if
// any trial failed, RunSkip if any trial was skipped and none failed,
// RunPass otherwise. RunError (with a non-nil error) covers validation
// failures and properties that report TrialError.
func (e *Engine) Run(cfg *Config) (RunResult, error) {
	if e.closed {
		return RunError, ErrClosed
	}

	rep := cfg.Report
	if rep == nil {
		rep = new(Report)
	}
	*rep = Report{}

	if err := cfg.validate(); err != nil {
		return RunError, err
	}

	trials := cfg.Trials
	if trials == 0 {
		trials = DefaultTrials
	}
	bits := e.bloomBits
	if bits == 0 {
		bits = bloom.RecommendedBits(trials)
	}
	e.filter = bloom.New(bits)

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("run_started",
			"property", cfg.Name,
			"seed", cfg.Seed,
			"trials", trials,
			"bloom_bits", e.filter.Bits(),
		)
	}

	result := RunPass
	for i := 0; i < trials; i++ {
		seed := rng.TrialSeed(cfg.Seed, i)

		args, ok := allocTuple(cfg, seed)
		if !ok {
			rep.Skipped++
			if result == RunPass {
				result = RunSkip
			}
			if hookCall(cfg, rep, i, seed, TrialSkip) {
				return result, nil
			}
			continue
		}

		if h, hashed := tupleHash(cfg, args); hashed && e.filter.TestAndSet(h) {
			releaseTuple(cfg, args)
			rep.Duplicates++
			if hookCall(cfg, rep, i, seed, TrialDup) {
				return result, nil
			}
			continue
		}

		switch res := cfg.Property(args, cfg.Env); res {
		case TrialPass:
			rep.Passes++
			releaseTuple(cfg, args)
			if hookCall(cfg, rep, i, seed, TrialPass) {
				return result, nil
			}

		case TrialSkip:
			rep.Skipped++
			releaseTuple(cfg, args)
			if result == RunPass {
				result = RunSkip
			}
			if hookCall(cfg, rep, i, seed, TrialSkip) {
				return result, nil
			}

		case TrialFail:
			rep.Failures++
			result = RunFail
			if cfg.Logger != nil {
				cfg.Logger.Debug("trial_failed", "trial", i, "seed", seed)
			}
			args = e.shrink(cfg, args, seed)
			reportFailure(out, cfg, i, seed, args)
			releaseTuple(cfg, args)
			if hookCall(cfg, rep, i, seed, TrialFail) {
				return result, nil
			}

		default:
			releaseTuple(cfg, args)
			hookCall(cfg, rep, i, seed, TrialError)
			return RunError, fmt.Errorf("%w: trial %d (seed 0x%016x) returned %v",
				ErrProperty, i, seed, res)
		}
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("run_finished",
			"property", cfg.Name,
			"result", result.String(),
			"passes", rep.Passes,
			"failures", rep.Failures,
			"skipped", rep.Skipped,
			"duplicates", rep.Duplicates,
		)
	}
	return result, nil
}

// allocTuple builds the argument tuple for one trial seed. A single stream
// is threaded through every position, so later positions see the words
// earlier ones consumed. ok is false when any allocator declines, in which
// case already-built positions have been released.
func allocTuple(cfg *Config, seed uint64) (args []any, ok bool) {
	s := rng.NewStream(seed)
	args = make([]any, len(cfg.TypeInfo))
	for i, ti := range cfg.TypeInfo {
		v := ti.Alloc(s, seed, cfg.Env)
		if v == nil {
			for j := 0; j < i; j++ {
				releaseValue(cfg.TypeInfo[j], args[j], cfg.Env)
			}
			return nil, false
		}
		args[i] = v
	}
	return args, true
}

func releaseTuple(cfg *Config, args []any) {
	for i, ti := range cfg.TypeInfo {
		releaseValue(ti, args[i], cfg.Env)
	}
}

func releaseValue(ti *TypeInfo, v any, env any) {
	if ti.Free != nil && v != nil {
		ti.Free(v, env)
	}
}

// hookCall reports one completed trial to the progress hook, if any, and
// reports whether the hook asked to halt.
func hookCall(cfg *Config, rep *Report, trial int, seed uint64, res TrialResult) bool {
	if cfg.Hook == nil {
		return false
	}
	return cfg.Hook(Trial{
		Index:   trial,
		RunSeed: cfg.Seed,
		Seed:    seed,
		Result:  res,
		Counts:  *rep,
	}) == HookHalt
}
