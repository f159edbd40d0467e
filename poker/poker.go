// Package poker is the public evaluation facade: a process-wide singleton
// that dispatches 5/6/7-card hands through the jump-table trie, plus
// convenience helpers for comparing hands and picking a winner over a
// set of hole cards and a shared board.
package poker

import (
	"github.com/lox/pokerjump/card"
	"github.com/lox/pokerjump/internal/eval5"
)

// HandRank is a totally-ordered strength value: a greater HandRank always
// beats a lesser one, regardless of category. Zero (Invalid) never arises
// from evaluating a well-formed 5/6/7-card hand.
type HandRank = eval5.HandRank

// Invalid is returned by Evaluate for a hand with fewer than five cards.
const Invalid HandRank = 0

// Category re-exports the nine hand categories so callers needn't import
// internal/eval5 to classify a HandRank.
type Category = eval5.Category

const (
	HighCard      = eval5.HighCard
	OnePair       = eval5.OnePair
	TwoPair       = eval5.TwoPair
	ThreeOfAKind  = eval5.ThreeOfAKind
	Straight      = eval5.Straight
	Flush         = eval5.Flush
	FullHouse     = eval5.FullHouse
	FourOfAKind   = eval5.FourOfAKind
	StraightFlush = eval5.StraightFlush
)

// Evaluate5 ranks exactly five cards, bypassing the jump table: the
// 5-card primitive is already O(1) and constant-factor cheaper than a
// canonicalize-then-hash round trip.
func Evaluate5(cards [5]card.Card) HandRank {
	return eval5.Evaluate5(cards)
}
