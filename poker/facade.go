package poker

import (
	"errors"
	"fmt"

	"github.com/lox/pokerjump/card"
)

// ErrTooFewCards means hole+board together don't reach the five cards a
// hand needs to be ranked.
var ErrTooFewCards = errors.New("poker: fewer than five cards")

// EvaluateHoleBoard ranks a player's hole cards together with the shared
// board — the integration facade's core convenience: callers never
// assemble a card.Hand themselves for the common hold'em case.
func (e *Evaluator) EvaluateHoleBoard(hole, board []card.Card) (HandRank, error) {
	all := make([]card.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)

	hand, err := card.NewHandFrom(all)
	if err != nil {
		return Invalid, fmt.Errorf("evaluate hole+board: %w", err)
	}
	if hand.Len() < 5 {
		return Invalid, fmt.Errorf("evaluate hole+board: %d cards: %w", hand.Len(), ErrTooFewCards)
	}
	return e.Evaluate(hand), nil
}

// CompareHands returns -1, 0, or 1 as a's rank is less than, equal to, or
// greater than b's — the comparator showdown logic needs, without
// exposing HandRank's internal magnitude as anything but an ordering.
func (e *Evaluator) CompareHands(a, b card.Hand) (int, error) {
	ra := e.Evaluate(a)
	rb := e.Evaluate(b)
	if ra == Invalid || rb == Invalid {
		return 0, fmt.Errorf("compare hands: %w", ErrTooFewCards)
	}
	switch {
	case ra < rb:
		return -1, nil
	case ra > rb:
		return 1, nil
	default:
		return 0, nil
	}
}

// BestOfK ranks every hand and returns the indices of the winner(s): more
// than one index means a tie. hands must be non-empty.
func (e *Evaluator) BestOfK(hands []card.Hand) (winners []int, best HandRank, err error) {
	if len(hands) == 0 {
		return nil, Invalid, fmt.Errorf("best of k: no hands given")
	}

	ranks := make([]HandRank, len(hands))
	for i, h := range hands {
		r := e.Evaluate(h)
		if r == Invalid {
			return nil, Invalid, fmt.Errorf("best of k: hand %d: %w", i, ErrTooFewCards)
		}
		ranks[i] = r
	}

	best = ranks[0]
	for _, r := range ranks[1:] {
		if r > best {
			best = r
		}
	}
	for i, r := range ranks {
		if r == best {
			winners = append(winners, i)
		}
	}
	return winners, best, nil
}
