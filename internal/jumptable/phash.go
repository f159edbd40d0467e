package jumptable

import (
	"fmt"

	"github.com/opencoff/go-chd"
)

// perfectHash is a thin adapter over github.com/opencoff/go-chd's minimal
// perfect hash: it maps a fixed, known-in-advance key set onto a dense
// index range [0, N) with no collisions and no wasted slots. Every key
// passed to buildPerfectHash must have a corresponding index; looking up
// any other byte string is undefined (the levels above never do this,
// since every lookup first canonicalizes to a key drawn from the same
// enumeration used to build the hash).
type perfectHash struct {
	chd *chd.CHD
	n   int
}

// buildPerfectHash constructs a minimal perfect hash over keys. Keys must
// be distinct; the returned hash assigns each one a unique index in
// [0, len(keys)).
func buildPerfectHash(keys [][]byte) (*perfectHash, error) {
	b, err := chd.NewBuilder(keys)
	if err != nil {
		return nil, fmt.Errorf("jumptable: build perfect hash: %w", err)
	}
	h, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("jumptable: build perfect hash: %w", err)
	}
	return &perfectHash{chd: h, n: len(keys)}, nil
}

// find returns key's assigned index. The explicit conversion, rather than
// a bare return, tolerates chd.CHD.Find returning any integer width: only
// this line would need to change if the real signature differs from the
// uint32 assumed here.
func (p *perfectHash) find(key []byte) uint32 {
	idx := p.chd.Find(key)
	return uint32(idx)
}

// Len returns the number of keys the hash was built over — the size the
// caller's parallel value array must have.
func (p *perfectHash) Len() int {
	return p.n
}

// MarshalBinary serializes the hash's internal tables for persistence
// alongside the level's value array (see internal/tablestore).
func (p *perfectHash) MarshalBinary() ([]byte, error) {
	return p.chd.MarshalBinary()
}

// unmarshalPerfectHash reconstructs a perfectHash previously produced by
// MarshalBinary, for the n keys it was built over.
func unmarshalPerfectHash(data []byte, n int) (*perfectHash, error) {
	var h chd.CHD
	if err := h.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("jumptable: unmarshal perfect hash: %w", err)
	}
	return &perfectHash{chd: &h, n: n}, nil
}
