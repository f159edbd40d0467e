// Package jumptable builds and queries a three-level perfect-hash trie:
// canonical 5-card hands hash directly to a rank, and canonical 6/7-card
// hands hash to an index one level down, so a 6 or 7-card query resolves
// in two or three pointer-follows with no on-the-fly combinatorics.
package jumptable

import (
	"github.com/lox/pokerjump/card"
	"github.com/lox/pokerjump/internal/canon"
	"github.com/lox/pokerjump/internal/eval5"
)

// JumpTable is the fully built, read-only trie. The zero value is not
// usable; construct one with Build or tablestore's loader.
type JumpTable struct {
	level5Hash *perfectHash
	level5     []eval5.HandRank

	level6Hash *perfectHash
	level6     []uint32

	level7Hash *perfectHash
	level7     []uint32
}

// fromParts reconstructs a JumpTable from previously-built pieces, used by
// UnmarshalJumpTable when internal/tablestore loads a persisted table file.
func fromParts(l5Hash *perfectHash, l5 []eval5.HandRank, l6Hash *perfectHash, l6 []uint32, l7Hash *perfectHash, l7 []uint32) *JumpTable {
	return &JumpTable{
		level5Hash: l5Hash, level5: l5,
		level6Hash: l6Hash, level6: l6,
		level7Hash: l7Hash, level7: l7,
	}
}

// Evaluate5 resolves a canonical 5-card hand directly against Level 5.
func (jt *JumpTable) Evaluate5(cards []card.Card) eval5.HandRank {
	key := canon.Key(canon.Canonicalize(cards))
	idx := jt.level5Hash.find([]byte(key))
	return jt.level5[idx]
}

// Evaluate6 resolves a canonical 6-card hand via one indirection through
// Level 6 into Level 5.
func (jt *JumpTable) Evaluate6(cards []card.Card) eval5.HandRank {
	key := canon.Key(canon.Canonicalize(cards))
	idx6 := jt.level6Hash.find([]byte(key))
	idx5 := jt.level6[idx6]
	return jt.level5[idx5]
}

// Evaluate7 resolves a canonical 7-card hand via two indirections: Level 7
// into Level 6, then Level 6's stored index into Level 5.
func (jt *JumpTable) Evaluate7(cards []card.Card) eval5.HandRank {
	key := canon.Key(canon.Canonicalize(cards))
	idx7 := jt.level7Hash.find([]byte(key))
	idx6 := jt.level7[idx7]
	idx5 := jt.level6[idx6]
	return jt.level5[idx5]
}

// Level5Size, Level6Size, Level7Size report each level's entry count, for
// tablestore's header and for diagnostics.
func (jt *JumpTable) Level5Size() int { return len(jt.level5) }
func (jt *JumpTable) Level6Size() int { return len(jt.level6) }
func (jt *JumpTable) Level7Size() int { return len(jt.level7) }
