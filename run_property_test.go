//go:build property

package theft

import (
	"bytes"
	"io"
	"reflect"
	"testing"

	"github.com/lochsh/theft/rng"
)

// Exhaustive seed-sweep properties of the engine itself. These re-check the
// universal invariants across many run seeds and are kept behind the
// property tag because they are slower than the unit suite.

func runOnce(t *testing.T, seed uint64) (Report, string) {
	t.Helper()
	e := New(0)
	defer e.Close()

	var rep Report
	var out bytes.Buffer
	_, err := e.Run(&Config{
		Name: "sweep",
		Property: func(args []any, _ any) TrialResult {
			switch args[0].(uint64) % 5 {
			case 0:
				return TrialFail
			case 1:
				return TrialSkip
			}
			return TrialPass
		},
		TypeInfo: []*TypeInfo{{
			Alloc: func(s *rng.Stream, _ uint64, _ any) any { return s.Next64() },
			Hash:  func(v any, _ any) uint64 { return HashUint64(v.(uint64)) },
			Shrink: func(v any, tactic int, _ any) (any, ShrinkRes) {
				u := v.(uint64)
				if u == 0 || tactic > 0 {
					return nil, ShrinkNoMoreTactics
				}
				return u / 2, ShrinkOK
			},
		}},
		Trials: 100,
		Seed:   seed,
		Report: &rep,
		Out:    &out,
	})
	if err != nil {
		t.Fatalf("seed=%d: %v", seed, err)
	}
	return rep, out.String()
}

func TestProperty_Run_Deterministic(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		rep1, out1 := runOnce(t, seed)
		rep2, out2 := runOnce(t, seed)
		if !reflect.DeepEqual(rep1, rep2) {
			t.Errorf("seed=%d: counters differ: %+v vs %+v", seed, rep1, rep2)
		}
		if out1 != out2 {
			t.Errorf("seed=%d: reports differ", seed)
		}
	}
}

func TestProperty_Run_CounterIntegrity(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		rep, _ := runOnce(t, seed)
		if rep.Attempted() != 100 {
			t.Errorf("seed=%d: attempted %d of 100 trials", seed, rep.Attempted())
		}
	}
}

func TestProperty_Shrink_ResultStillFails(t *testing.T) {
	// Whatever the shrinker reports must itself falsify the property.
	for seed := uint64(0); seed < 50; seed++ {
		e := New(0)

		var lastFailing uint64
		hadFailure := false
		_, err := e.Run(&Config{
			Property: func(args []any, _ any) TrialResult {
				v := args[0].(uint64)
				if v > 1<<32 {
					lastFailing = v
					hadFailure = true
					return TrialFail
				}
				return TrialPass
			},
			TypeInfo: []*TypeInfo{{
				Alloc: func(s *rng.Stream, _ uint64, _ any) any { return s.Next64() },
				Shrink: func(v any, tactic int, _ any) (any, ShrinkRes) {
					u := v.(uint64)
					if u == 0 || tactic > 63 {
						return nil, ShrinkNoMoreTactics
					}
					delta := u >> (tactic + 1)
					if delta == 0 {
						return nil, ShrinkNoMoreTactics
					}
					return u - delta, ShrinkOK
				},
			}},
			Trials: 5,
			Seed:   seed,
			Out:    io.Discard,
		})
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		if hadFailure && lastFailing <= 1<<32 {
			t.Errorf("seed=%d: reported minimum %d does not fail the property", seed, lastFailing)
		}
		e.Close()
	}
}
