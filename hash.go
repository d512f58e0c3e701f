package theft

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher is an incremental 64-bit hash sink for Hash callbacks. The zero
// value is not usable; call NewHasher.
type Hasher struct {
	d *xxhash.Digest
}

// NewHasher returns an empty hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// Sink folds b into the hash.
func (h *Hasher) Sink(b []byte) {
	_, _ = h.d.Write(b)
}

// SinkString folds s into the hash.
func (h *Hasher) SinkString(s string) {
	_, _ = h.d.WriteString(s)
}

// SinkUint64 folds v into the hash.
func (h *Hasher) SinkUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, _ = h.d.Write(b[:])
}

// Sum64 returns the hash of everything sunk so far.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

// HashBytes hashes b in one shot.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// HashUint64 hashes v in one shot.
func HashUint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return xxhash.Sum64(b[:])
}

// tupleHash composes the per-position hashes into one tuple hash, mixing
// each position's index so equal values at different positions hash apart.
// ok is false when any position lacks a Hash callback; such tuples are
// always treated as novel.
func tupleHash(cfg *Config, args []any) (hash uint64, ok bool) {
	for _, ti := range cfg.TypeInfo {
		if ti.Hash == nil {
			return 0, false
		}
	}
	h := NewHasher()
	for i, ti := range cfg.TypeInfo {
		h.SinkUint64(uint64(i))
		h.SinkUint64(ti.Hash(args[i], cfg.Env))
	}
	return h.Sum64(), true
}
