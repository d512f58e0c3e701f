package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTestAndSet(t *testing.T) {
	f := New(16)

	require.False(t, f.TestAndSet(12345), "fresh filter must not report presence")
	require.True(t, f.TestAndSet(12345), "second visit must report presence")
	require.True(t, f.TestAndSet(12345))
}

func TestFreshFilterMostlyEmpty(t *testing.T) {
	f := New(20)
	hits := 0
	for h := uint64(1); h <= 1000; h++ {
		if f.TestAndSet(h * 0x9E3779B97F4A7C15) {
			hits++
		}
	}
	// 1000 well-spread inserts into 2^20 bits; false positives should be
	// essentially absent.
	require.LessOrEqual(t, hits, 2)
}

func TestBitsClamped(t *testing.T) {
	require.Equal(t, uint(MinBits), New(0).Bits())
	require.Equal(t, uint(MinBits), New(5).Bits())
	require.Equal(t, uint(20), New(20).Bits())
	require.Equal(t, uint(MaxBits), New(60).Bits())
}

func TestRecommendedBits(t *testing.T) {
	// 16 bits per trial, floor of 2^13, rounded up to a power of two.
	require.Equal(t, uint(13), RecommendedBits(1))
	require.Equal(t, uint(13), RecommendedBits(100))   // 1600 < 8192
	require.Equal(t, uint(14), RecommendedBits(1000))  // 16000 <= 16384
	require.Equal(t, uint(18), RecommendedBits(10000)) // 160000 <= 262144
	require.Equal(t, uint(MaxBits), RecommendedBits(1<<30))
}

func TestDegenerateSizingStillAnswers(t *testing.T) {
	// Tiny filters stay correct, just noisy: test-and-set still records.
	f := New(MinBits)
	for h := uint64(0); h < 100000; h++ {
		f.TestAndSet(h)
	}
	require.True(t, f.TestAndSet(1), "recorded hash must stay present")
}
