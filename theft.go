package theft

import (
	"io"
	"log/slog"

	"github.com/lochsh/theft/bloom"
)

const (
	// MaxArity is the largest number of argument positions a property may
	// take.
	MaxArity = 8

	// DefaultTrials is the trial count used when Config.Trials is zero.
	DefaultTrials = 100
)

// TrialResult classifies one invocation of a property.
type TrialResult int

const (
	// TrialPass means the property held for this tuple.
	TrialPass TrialResult = iota
	// TrialFail means the property was falsified by this tuple.
	TrialFail
	// TrialSkip means the property declined to judge this tuple.
	TrialSkip
	// TrialError means the property hit an unrecoverable error; the run is
	// aborted.
	TrialError
	// TrialDup marks a tuple suppressed by the duplicate filter. It is
	// reported to progress hooks only; properties must not return it.
	TrialDup
)

func (r TrialResult) String() string {
	switch r {
	case TrialPass:
		return "pass"
	case TrialFail:
		return "fail"
	case TrialSkip:
		return "skip"
	case TrialError:
		return "error"
	case TrialDup:
		return "dup"
	}
	return "unknown"
}

// RunResult summarizes a whole run.
type RunResult int

const (
	// RunPass means every trial passed.
	RunPass RunResult = iota
	// RunFail means at least one trial failed.
	RunFail
	// RunSkip means at least one trial was skipped and none failed.
	RunSkip
	// RunError means validation failed or a property reported an error.
	RunError
)

func (r RunResult) String() string {
	switch r {
	case RunPass:
		return "pass"
	case RunFail:
		return "fail"
	case RunSkip:
		return "skip"
	case RunError:
		return "error"
	}
	return "unknown"
}

// HookRes is a progress hook's verdict on whether the run continues.
type HookRes int

const (
	// HookContinue lets the run proceed to the next trial.
	HookContinue HookRes = iota
	// HookHalt ends the run cleanly with the counters accumulated so far.
	HookHalt
)

// Report holds the running counters for one run. Each counter increases
// monotonically within a run; all are reset when the run starts.
type Report struct {
	Passes     int
	Failures   int
	Skipped    int
	Duplicates int
}

// Attempted returns the number of trials accounted for so far.
func (r Report) Attempted() int {
	return r.Passes + r.Failures + r.Skipped + r.Duplicates
}

// Trial is the progress-hook view of one completed trial.
type Trial struct {
	// Index is the trial's position in the run, ascending from 0.
	Index int
	// RunSeed is the seed the run was configured with.
	RunSeed uint64
	// Seed is the trial seed, sufficient to regenerate the tuple.
	Seed uint64
	// Result is the trial's outcome. TrialDup marks a suppressed
	// duplicate.
	Result TrialResult
	// Counts is a snapshot of the run counters including this trial.
	Counts Report
}

// Property judges one argument tuple. args holds one value per configured
// type-info position, in order.
type Property func(args []any, env any) TrialResult

// Hook observes each completed trial and may halt the run.
type Hook func(t Trial) HookRes

// Config describes one run.
type Config struct {
	// Name labels the property in failure reports. Optional.
	Name string

	// Property is the predicate under test. Required.
	Property Property

	// TypeInfo describes each argument position, in order. Between 1 and
	// MaxArity entries, each with a non-nil Alloc.
	TypeInfo []*TypeInfo

	// Trials is the number of trials to attempt. Zero means
	// DefaultTrials.
	Trials int

	// Seed is the run seed. Zero is a valid seed and is used as-is.
	Seed uint64

	// Hook, when set, observes every trial outcome and may halt the run.
	Hook Hook

	// Report, when set, is reset at run start and updated on every
	// counter transition, so it reflects the final counters after Run
	// returns regardless of outcome.
	Report *Report

	// Env is passed through, uninspected, to every callback.
	Env any

	// Out receives failure reports. Nil means os.Stdout.
	Out io.Writer

	// Logger, when set, receives Debug-level engine events.
	Logger *slog.Logger
}

func (cfg *Config) validate() error {
	if cfg.Property == nil {
		return ErrNoProperty
	}
	if len(cfg.TypeInfo) == 0 {
		return ErrNoTypeInfo
	}
	if len(cfg.TypeInfo) > MaxArity {
		return ErrArityRange
	}
	for _, ti := range cfg.TypeInfo {
		if ti == nil || ti.Alloc == nil {
			return ErrMissingAlloc
		}
	}
	if cfg.Trials < 0 {
		return ErrTrialsRange
	}
	return nil
}

// Engine runs properties. One engine runs one property at a time; callbacks
// must not re-enter the engine that invoked them.
type Engine struct {
	bloomBits uint
	filter    *bloom.Filter
	closed    bool
}

// New returns an engine. bloomBits of 0 requests an auto-sized duplicate
// filter based on each run's trial count; a nonzero value is the filter's
// bit-width exponent, clamped to the supported range.
func New(bloomBits uint) *Engine {
	return &Engine{bloomBits: bloomBits}
}

// Close releases the engine's internal state. Run returns ErrClosed
// afterwards.
func (e *Engine) Close() {
	e.filter = nil
	e.closed = true
}
