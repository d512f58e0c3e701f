package theft

import (
	"io"

	"github.com/lochsh/theft/rng"
)

// ShrinkRes classifies one shrink attempt.
type ShrinkRes int

const (
	// ShrinkOK means the callback produced a strictly simpler value.
	ShrinkOK ShrinkRes = iota
	// ShrinkDeadEnd means this tactic does not apply to this value; the
	// engine moves on to the next tactic index.
	ShrinkDeadEnd
	// ShrinkNoMoreTactics means no tactic with an index at or above the
	// requested one applies to this value.
	ShrinkNoMoreTactics
)

// TypeInfo describes one argument position: how to allocate a value from
// the random stream, and optionally how to release, hash, shrink, and print
// it. The same TypeInfo may back multiple positions; identity is the
// pointer, not the contents.
type TypeInfo struct {
	// Alloc constructs an owned value, consuming words from the stream.
	// For a fixed (seed, env) it must produce an equivalent value.
	// Returning nil signals that no value could be produced; the trial is
	// counted as skipped. Required.
	Alloc func(s *rng.Stream, seed uint64, env any) any

	// Free releases the value and anything it owns. When nil, the engine
	// does not reclaim values.
	Free func(value any, env any)

	// Hash must be a pure, stable, well-distributed function of the value
	// (and whatever the caller folds in from env). The duplicate filter is
	// consulted only when every position supplies a Hash.
	Hash func(value any, env any) uint64

	// Shrink returns a freshly owned, strictly simpler variant of value
	// for the given tactic index, or ShrinkDeadEnd / ShrinkNoMoreTactics.
	// Tactics ascend from 0; by convention coarse tactics come first.
	// Shrinking must be deterministic for fixed (value, tactic, env) and
	// well-founded: no infinite descending chain may exist across any
	// combination of tactics.
	Shrink func(value any, tactic int, env any) (any, ShrinkRes)

	// Print renders the value for failure reports.
	Print func(w io.Writer, value any, env any)
}
