package jumptable

import "github.com/lox/pokerjump/card"

// eachCombination calls yield once for every k-element subset of universe,
// in lexicographic index order (deterministic, so the tables built from it
// are bit-reproducible across runs). yield must not retain the slice it is
// given; it is reused between calls.
func eachCombination(universe []card.Card, k int, yield func([]card.Card)) {
	n := len(universe)
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	buf := make([]card.Card, k)

	for {
		for i, pos := range idx {
			buf[i] = universe[pos]
		}
		yield(buf)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// eachSubset calls yield with every (k-1)-element subset of a k-element
// hand, in index-omitted order. Used by the Level-6/7 builders to walk a
// hand's best-5-of-6 and best-6-of-7 subsets.
func eachSubset(hand []card.Card, yield func([]card.Card)) {
	k := len(hand)
	sub := make([]card.Card, 0, k-1)
	for omit := 0; omit < k; omit++ {
		sub = sub[:0]
		for i, c := range hand {
			if i != omit {
				sub = append(sub, c)
			}
		}
		yield(sub)
	}
}

var fullDeck = func() []card.Card {
	deck := make([]card.Card, 0, 52)
	for r := card.Two; r <= card.Ace; r++ {
		for s := card.Clubs; s <= card.Spades; s++ {
			deck = append(deck, card.NewCard(r, s))
		}
	}
	return deck
}()
