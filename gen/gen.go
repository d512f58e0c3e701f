// Package gen provides ready-made TypeInfo values for common argument
// types, plus small combinators for writing custom allocators over a
// random stream.
//
// Every built-in wires up Hash, Shrink, and Print alongside Alloc, so
// properties using them get duplicate suppression and shrinking for free.
package gen

import (
	"fmt"
	"io"

	"github.com/lochsh/theft"
	"github.com/lochsh/theft/rng"
)

// Uint64 returns type info for uniformly random 64-bit unsigned integers.
// Shrinking moves toward zero: first a jump straight to zero, then
// halving, then decrement.
func Uint64() *theft.TypeInfo {
	return &theft.TypeInfo{
		Alloc: func(s *rng.Stream, _ uint64, _ any) any {
			return s.Next64()
		},
		Hash: func(v any, _ any) uint64 {
			return theft.HashUint64(v.(uint64))
		},
		Shrink: shrinkUint64,
		Print: func(w io.Writer, v any, _ any) {
			fmt.Fprintf(w, "%d", v.(uint64))
		},
	}
}

func shrinkUint64(v any, tactic int, _ any) (any, theft.ShrinkRes) {
	u := v.(uint64)
	if u == 0 {
		return nil, theft.ShrinkNoMoreTactics
	}
	switch tactic {
	case 0:
		return uint64(0), theft.ShrinkOK
	case 1:
		if u < 2 {
			return nil, theft.ShrinkDeadEnd
		}
		return u / 2, theft.ShrinkOK
	case 2:
		return u - 1, theft.ShrinkOK
	}
	return nil, theft.ShrinkNoMoreTactics
}

// Uint64Range returns type info for integers in [lo, hi]. Shrinking moves
// toward lo. Panics if lo > hi.
func Uint64Range(lo, hi uint64) *theft.TypeInfo {
	if lo > hi {
		panic("gen: Uint64Range lo > hi")
	}
	return &theft.TypeInfo{
		Alloc: func(s *rng.Stream, _ uint64, _ any) any {
			return lo + s.Uint64n(hi-lo+1)
		},
		Hash: func(v any, _ any) uint64 {
			return theft.HashUint64(v.(uint64))
		},
		Shrink: func(v any, tactic int, _ any) (any, theft.ShrinkRes) {
			u := v.(uint64)
			if u <= lo {
				return nil, theft.ShrinkNoMoreTactics
			}
			d := u - lo
			switch tactic {
			case 0:
				return lo, theft.ShrinkOK
			case 1:
				if d < 2 {
					return nil, theft.ShrinkDeadEnd
				}
				return lo + d/2, theft.ShrinkOK
			case 2:
				return u - 1, theft.ShrinkOK
			}
			return nil, theft.ShrinkNoMoreTactics
		},
		Print: func(w io.Writer, v any, _ any) {
			fmt.Fprintf(w, "%d", v.(uint64))
		},
	}
}

// Bool returns type info for booleans. true shrinks to false.
func Bool() *theft.TypeInfo {
	return &theft.TypeInfo{
		Alloc: func(s *rng.Stream, _ uint64, _ any) any {
			return s.Bool()
		},
		Hash: func(v any, _ any) uint64 {
			if v.(bool) {
				return theft.HashUint64(1)
			}
			return theft.HashUint64(0)
		},
		Shrink: func(v any, tactic int, _ any) (any, theft.ShrinkRes) {
			if !v.(bool) || tactic > 0 {
				return nil, theft.ShrinkNoMoreTactics
			}
			return false, theft.ShrinkOK
		},
		Print: func(w io.Writer, v any, _ any) {
			fmt.Fprintf(w, "%t", v.(bool))
		},
	}
}

// Byte returns type info for single bytes, shrinking toward zero like
// Uint64.
func Byte() *theft.TypeInfo {
	return &theft.TypeInfo{
		Alloc: func(s *rng.Stream, _ uint64, _ any) any {
			return s.Byte()
		},
		Hash: func(v any, _ any) uint64 {
			return theft.HashUint64(uint64(v.(byte)))
		},
		Shrink: func(v any, tactic int, _ any) (any, theft.ShrinkRes) {
			b := v.(byte)
			if b == 0 {
				return nil, theft.ShrinkNoMoreTactics
			}
			switch tactic {
			case 0:
				return byte(0), theft.ShrinkOK
			case 1:
				if b < 2 {
					return nil, theft.ShrinkDeadEnd
				}
				return b / 2, theft.ShrinkOK
			case 2:
				return b - 1, theft.ShrinkOK
			}
			return nil, theft.ShrinkNoMoreTactics
		},
		Print: func(w io.Writer, v any, _ any) {
			fmt.Fprintf(w, "0x%02x", v.(byte))
		},
	}
}

// Byte-slice shrink tactics, coarsest first. Dropping halves collapses
// large buffers in a few steps; single-element drops and byte zeroing
// finish the job. Every tactic strictly decreases (length, content) so
// chains are finite.
const (
	tacticDropFirstHalf = iota
	tacticDropLastHalf
	tacticDropFirst
	tacticDropLast
	tacticZeroByte
)

// Bytes returns type info for byte slices of length [0, maxLen]. Panics if
// maxLen is negative.
func Bytes(maxLen int) *theft.TypeInfo {
	if maxLen < 0 {
		panic("gen: Bytes maxLen < 0")
	}
	return &theft.TypeInfo{
		Alloc: func(s *rng.Stream, _ uint64, _ any) any {
			b := make([]byte, s.Intn(maxLen+1))
			for i := range b {
				b[i] = s.Byte()
			}
			return b
		},
		Hash: func(v any, _ any) uint64 {
			return theft.HashBytes(v.([]byte))
		},
		Shrink: ShrinkBytes,
		Print: func(w io.Writer, v any, _ any) {
			b := v.([]byte)
			fmt.Fprintf(w, "%d bytes: %x", len(b), b)
		},
	}
}

// ShrinkBytes is the byte-slice shrink callback used by Bytes. It is
// exported so custom type infos over []byte can reuse it.
func ShrinkBytes(v any, tactic int, _ any) (any, theft.ShrinkRes) {
	b := v.([]byte)
	switch tactic {
	case tacticDropFirstHalf:
		if len(b)/2 == 0 {
			return nil, theft.ShrinkDeadEnd
		}
		return clone(b[len(b)/2:]), theft.ShrinkOK
	case tacticDropLastHalf:
		if len(b)/2 == 0 {
			return nil, theft.ShrinkDeadEnd
		}
		return clone(b[:len(b)-len(b)/2]), theft.ShrinkOK
	case tacticDropFirst:
		if len(b) == 0 {
			return nil, theft.ShrinkDeadEnd
		}
		return clone(b[1:]), theft.ShrinkOK
	case tacticDropLast:
		if len(b) == 0 {
			return nil, theft.ShrinkDeadEnd
		}
		return clone(b[:len(b)-1]), theft.ShrinkOK
	case tacticZeroByte:
		for i, c := range b {
			if c != 0 {
				out := clone(b)
				out[i] = 0
				return out, theft.ShrinkOK
			}
		}
		return nil, theft.ShrinkDeadEnd
	}
	return nil, theft.ShrinkNoMoreTactics
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
