package gen

import "github.com/lochsh/theft/rng"

// Combinators for writing custom allocators. Each draws from the stream it
// is given, so a tuple's positions stay on the single per-trial stream.

// OneOf returns a random element from the provided values.
// Panics if values is empty.
func OneOf[T any](s *rng.Stream, values ...T) T {
	if len(values) == 0 {
		panic("gen: OneOf called with no values")
	}
	return values[s.Intn(len(values))]
}

// Pick returns a random element from a non-empty slice.
// Panics if slice is empty.
func Pick[T any](s *rng.Stream, slice []T) T {
	if len(slice) == 0 {
		panic("gen: Pick called with empty slice")
	}
	return slice[s.Intn(len(slice))]
}

// IntRange returns a draw in [min, max]. Panics if min > max.
func IntRange(s *rng.Stream, min, max int) int {
	if min > max {
		panic("gen: IntRange min > max")
	}
	return min + s.Intn(max-min+1)
}

// SliceOf generates a slice of length [0, maxLen] using the element
// generator.
func SliceOf[T any](s *rng.Stream, maxLen int, elem func(*rng.Stream) T) []T {
	if maxLen <= 0 {
		return nil
	}
	out := make([]T, s.Intn(maxLen+1))
	for i := range out {
		out[i] = elem(s)
	}
	return out
}

// SliceOfN generates a slice of exactly n elements using the element
// generator.
func SliceOfN[T any](s *rng.Stream, n int, elem func(*rng.Stream) T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = elem(s)
	}
	return out
}
