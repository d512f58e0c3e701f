package theft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasherIncrementalMatchesOneShot(t *testing.T) {
	h := NewHasher()
	h.Sink([]byte("hello "))
	h.SinkString("world")
	require.Equal(t, HashBytes([]byte("hello world")), h.Sum64())
}

func TestHasherStable(t *testing.T) {
	sum := func() uint64 {
		h := NewHasher()
		h.SinkUint64(42)
		h.Sink([]byte{1, 2, 3})
		return h.Sum64()
	}
	require.Equal(t, sum(), sum())
}

func TestHashUint64Distributes(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := uint64(0); i < 10000; i++ {
		seen[HashUint64(i)] = true
	}
	require.Len(t, seen, 10000, "sequential inputs must not collide")
}

func TestTupleHashMixesPosition(t *testing.T) {
	hashed := &TypeInfo{
		Hash: func(v any, _ any) uint64 { return HashUint64(v.(uint64)) },
	}
	cfg := &Config{TypeInfo: []*TypeInfo{hashed, hashed}}

	ab, ok := tupleHash(cfg, []any{uint64(1), uint64(2)})
	require.True(t, ok)
	ba, ok := tupleHash(cfg, []any{uint64(2), uint64(1)})
	require.True(t, ok)
	require.NotEqual(t, ab, ba, "swapped positions must hash apart")

	again, ok := tupleHash(cfg, []any{uint64(1), uint64(2)})
	require.True(t, ok)
	require.Equal(t, ab, again)
}

func TestTupleHashRequiresEveryPosition(t *testing.T) {
	hashed := &TypeInfo{
		Hash: func(v any, _ any) uint64 { return HashUint64(v.(uint64)) },
	}
	cfg := &Config{TypeInfo: []*TypeInfo{hashed, {}}}
	_, ok := tupleHash(cfg, []any{uint64(1), uint64(2)})
	require.False(t, ok, "a position without Hash disables the filter")
}
