// theft-demo runs a few example properties through the engine, showing
// generation, duplicate suppression, shrinking, and failure reporting.
//
// Usage:
//
//	theft-demo [-seed N] [-trials N] [-v]
//
// The failing examples are intentional: they demonstrate how a
// counter-example is shrunk and reported. Exit code is 1 when any property
// fails, 2 on engine error.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/lochsh/theft"
	"github.com/lochsh/theft/cli"
	"github.com/lochsh/theft/gen"
)

func main() {
	seed := flag.Uint64("seed", 0, "run seed (0 is a valid seed)")
	trials := flag.Int("trials", 100, "trials per property")
	verbose := flag.Bool("v", false, "log engine events")
	flag.Parse()

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	e := theft.New(0)
	defer e.Close()

	failed := false
	for _, p := range demoProperties() {
		var rep theft.Report
		p.cfg.Seed = *seed
		p.cfg.Trials = *trials
		p.cfg.Report = &rep
		p.cfg.Logger = logger

		res, err := e.Run(p.cfg)
		if err != nil {
			cli.FatalErr("running "+p.cfg.Name, err)
		}
		cli.Result(p.cfg.Name, res, rep)
		if res == theft.RunFail {
			failed = true
		}
	}

	if failed {
		cli.Infof("failures above are expected; rerun with -seed to replay them")
		os.Exit(1)
	}
}

type demo struct {
	cfg *theft.Config
}

func demoProperties() []demo {
	return []demo{
		{cfg: &theft.Config{
			Name: "addition commutes",
			Property: func(args []any, _ any) theft.TrialResult {
				a, b := args[0].(uint64), args[1].(uint64)
				if a+b == b+a {
					return theft.TrialPass
				}
				return theft.TrialFail
			},
			TypeInfo: []*theft.TypeInfo{gen.Uint64(), gen.Uint64()},
		}},
		{cfg: &theft.Config{
			Name: "value is at most 1000",
			Property: func(args []any, _ any) theft.TrialResult {
				if args[0].(uint64) <= 1000 {
					return theft.TrialPass
				}
				return theft.TrialFail
			},
			TypeInfo: []*theft.TypeInfo{gen.Uint64()},
		}},
		{cfg: &theft.Config{
			Name: "buffer contains no 0x07",
			Property: func(args []any, _ any) theft.TrialResult {
				for _, b := range args[0].([]byte) {
					if b == 7 {
						return theft.TrialFail
					}
				}
				return theft.TrialPass
			},
			TypeInfo: []*theft.TypeInfo{gen.Bytes(64)},
		}},
	}
}
