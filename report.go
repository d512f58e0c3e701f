package theft

import (
	"fmt"
	"io"
)

// reportFailure emits the reproducer seeds and the (shrunk) arguments for
// one failing trial. Positions without a Print callback are rendered by
// their seed-derived identity alone; the run seed and trial index are
// enough to regenerate them.
func reportFailure(w io.Writer, cfg *Config, trial int, seed uint64, args []any) {
	name := cfg.Name
	if name == "" {
		name = "property"
	}
	fmt.Fprintf(w, "%s: failed on trial %d (run seed 0x%016x, trial seed 0x%016x)\n",
		name, trial, cfg.Seed, seed)
	for i, ti := range cfg.TypeInfo {
		if ti.Print == nil {
			fmt.Fprintf(w, "  arg %d: <unprintable; regenerate from trial seed 0x%016x>\n", i, seed)
			continue
		}
		fmt.Fprintf(w, "  arg %d: ", i)
		ti.Print(w, args[i], cfg.Env)
		fmt.Fprintln(w)
	}
}
