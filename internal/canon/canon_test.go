package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokerjump/card"
)

func TestCanonicalizeFirstAppearanceOrder(t *testing.T) {
	hand := []card.Card{
		card.NewCard(card.Ten, card.Hearts),
		card.NewCard(card.Two, card.Spades),
		card.NewCard(card.Ace, card.Hearts),
		card.NewCard(card.King, card.Diamonds),
		card.NewCard(card.Queen, card.Spades),
	}
	got := Canonicalize(hand)

	// Rank order ascending: 2s, Th, Qs, Kd, Ah -> first-seen suits in that
	// walk are Spades, Hearts, Diamonds -> canonical 0,1,2.
	want := []card.Card{
		card.NewCard(card.Two, card.Clubs),
		card.NewCard(card.Ten, card.Diamonds),
		card.NewCard(card.Queen, card.Clubs),
		card.NewCard(card.King, card.Hearts),
		card.NewCard(card.Ace, card.Diamonds),
	}
	assert.Equal(t, want, got)
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	hand := []card.Card{
		card.NewCard(card.Ace, card.Spades),
		card.NewCard(card.King, card.Spades),
		card.NewCard(card.Queen, card.Hearts),
		card.NewCard(card.Jack, card.Diamonds),
		card.NewCard(card.Nine, card.Clubs),
	}
	once := Canonicalize(hand)
	twice := Canonicalize(once)
	assert.Equal(t, once, twice)
}

func TestCanonicalizeIgnoresInputOrder(t *testing.T) {
	hand := []card.Card{
		card.NewCard(card.Ace, card.Spades),
		card.NewCard(card.King, card.Hearts),
		card.NewCard(card.Queen, card.Diamonds),
	}
	reversed := []card.Card{hand[2], hand[1], hand[0]}

	assert.Equal(t, Canonicalize(hand), Canonicalize(reversed))
}

func TestCanonicalizeIsSuitPermutationInvariant(t *testing.T) {
	base := []card.Card{
		card.NewCard(card.Ace, card.Clubs),
		card.NewCard(card.King, card.Diamonds),
		card.NewCard(card.Queen, card.Hearts),
		card.NewCard(card.Jack, card.Spades),
		card.NewCard(card.Nine, card.Clubs),
	}

	permutations := [][4]card.Suit{
		{card.Clubs, card.Diamonds, card.Hearts, card.Spades},
		{card.Diamonds, card.Hearts, card.Spades, card.Clubs},
		{card.Spades, card.Clubs, card.Diamonds, card.Hearts},
		{card.Hearts, card.Spades, card.Clubs, card.Diamonds},
	}

	baseline := Canonicalize(base)
	for _, perm := range permutations {
		relabeled := make([]card.Card, len(base))
		for i, c := range base {
			relabeled[i] = card.NewCard(c.Rank(), perm[c.Suit()])
		}
		assert.Equal(t, baseline, Canonicalize(relabeled), "permutation %v", perm)
	}
}

func TestEquivalentAndKey(t *testing.T) {
	a := []card.Card{
		card.NewCard(card.Ace, card.Clubs),
		card.NewCard(card.King, card.Diamonds),
	}
	b := []card.Card{
		card.NewCard(card.King, card.Hearts),
		card.NewCard(card.Ace, card.Spades),
	}
	c := []card.Card{
		card.NewCard(card.King, card.Hearts),
		card.NewCard(card.Queen, card.Spades),
	}

	assert.True(t, Equivalent(a, b))
	assert.False(t, Equivalent(a, c))
	assert.Equal(t, Key(Canonicalize(a)), Key(Canonicalize(b)))
}

func TestEquivalentRejectsDifferentSizes(t *testing.T) {
	a := []card.Card{card.NewCard(card.Ace, card.Clubs)}
	b := []card.Card{
		card.NewCard(card.Ace, card.Clubs),
		card.NewCard(card.King, card.Clubs),
	}
	assert.False(t, Equivalent(a, b))
}
