// Package canon canonicalizes card sequences by suit: it remaps suits so
// that, walked in rank order, the first-appearing suit is Clubs, the second
// Diamonds, and so on. Hands that share a canonical form have the same
// rank, which is what lets internal/jumptable store many suit relabelings
// of a card set under one table entry. The converse does not hold: hands
// of equal rank can have different canonical forms.
package canon

import (
	"sort"

	"github.com/lox/pokerjump/card"
)

// Canonicalize returns a new slice with suits relabeled to their
// first-appearance order and cards sorted by (rank, canonical suit)
// ascending. The input is not modified.
//
// Walking rank-ascending before assigning canonical suits, rather than
// walking in input order, makes the result independent of input order
// when all ranks are distinct. Cards of equal rank keep their input order
// during the walk, so for such hands the order the caller passes can
// change the suit assignment: {2c, 2d, 3c} yields 2c 2d 3c, while
// {2d, 2c, 3c} yields 2c 2d 3d.
func Canonicalize(cards []card.Card) []card.Card {
	ordered := make([]card.Card, len(cards))
	copy(ordered, cards)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Rank() < ordered[j].Rank()
	})

	var remap [4]card.Suit
	var assigned [4]bool
	next := card.Clubs

	out := make([]card.Card, len(ordered))
	for i, c := range ordered {
		s := c.Suit()
		if !assigned[s] {
			remap[s] = next
			assigned[s] = true
			next++
		}
		out[i] = card.NewCard(c.Rank(), remap[s])
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank() != out[j].Rank() {
			return out[i].Rank() < out[j].Rank()
		}
		return out[i].Suit() < out[j].Suit()
	})

	return out
}

// Key produces a comparable value for a canonicalized card sequence,
// suitable for use as a map key or for equality comparison between two
// canonical forms. Callers must pass an already-canonicalized sequence;
// Key does not canonicalize.
func Key(canonical []card.Card) string {
	buf := make([]byte, len(canonical))
	for i, c := range canonical {
		buf[i] = byte(c.Dense())
	}
	return string(buf)
}

// Equivalent reports whether two card sequences canonicalize to the same
// form. A true result means the two are rank-equivalent; a false result
// does not rule it out, since equal-rank cards given in different orders
// can canonicalize differently (see Canonicalize).
func Equivalent(a, b []card.Card) bool {
	if len(a) != len(b) {
		return false
	}
	return Key(Canonicalize(a)) == Key(Canonicalize(b))
}
