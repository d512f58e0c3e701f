// Package theft is a property-based testing engine: given a property (a
// predicate over one or more randomly generated inputs) it searches for a
// counter-example, shrinks any failure it finds to a locally minimal failing
// case, and reports it with a reproducible seed.
//
// User input types participate through the TypeInfo vocabulary: an allocator
// (required) plus optional release, hash, shrink, and print callbacks. The
// engine derives one seed per trial from the run seed, feeds a deterministic
// random stream to the allocators, and suppresses duplicate tuples with a
// bloom filter when every argument position can be hashed.
//
// Basic usage:
//
//	e := theft.New(0)
//	defer e.Close()
//
//	res, err := e.Run(&theft.Config{
//	    Name:     "value stays small",
//	    Property: func(args []any, env any) theft.TrialResult {
//	        if args[0].(uint64) <= 1000 {
//	            return theft.TrialPass
//	        }
//	        return theft.TrialFail
//	    },
//	    TypeInfo: []*theft.TypeInfo{gen.Uint64()},
//	    Seed:     12345,
//	})
//
// On failure the engine prints the run seed and the failing trial seed;
// re-running with the same configuration and seed regenerates the same
// counter-example.
package theft
