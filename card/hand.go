package card

import "fmt"

// MaxHandSize is the largest card set the evaluator accepts (seven cards:
// two hole cards plus a five-card board).
const MaxHandSize = 7

// Hand is an unordered set of at most seven distinct cards, held in insertion
// order. It is built incrementally with Add and is immutable once
// evaluation begins: nothing in this package mutates a Hand after it is
// handed to an evaluator.
type Hand struct {
	cards [MaxHandSize]Card
	n     int
}

// NewHand constructs an empty Hand.
func NewHand() Hand {
	return Hand{}
}

// NewHandFrom builds a Hand from a slice of cards, rejecting duplicates and
// overflow exactly as repeated calls to Add would.
func NewHandFrom(cards []Card) (Hand, error) {
	var h Hand
	for _, c := range cards {
		if err := h.Add(c); err != nil {
			return Hand{}, err
		}
	}
	return h, nil
}

// Add appends a card to the hand. It fails with ErrDuplicateCard if the
// card is already present, or ErrHandFull if the hand already holds
// MaxHandSize cards.
func (h *Hand) Add(c Card) error {
	if h.n >= MaxHandSize {
		return fmt.Errorf("add %s: %w", c, ErrHandFull)
	}
	for i := 0; i < h.n; i++ {
		if h.cards[i] == c {
			return fmt.Errorf("add %s: %w", c, ErrDuplicateCard)
		}
	}
	h.cards[h.n] = c
	h.n++
	return nil
}

// Len returns the number of cards currently in the hand.
func (h Hand) Len() int {
	return h.n
}

// Cards returns the hand's cards in insertion order. The returned slice
// aliases the hand's backing array and must not be retained past the next
// mutation.
func (h *Hand) Cards() []Card {
	return h.cards[:h.n]
}

// Equal reports whether two hands contain the same multiset of cards,
// irrespective of insertion order.
func (h Hand) Equal(other Hand) bool {
	if h.n != other.n {
		return false
	}
	var seen [MaxHandSize]bool
	for i := 0; i < h.n; i++ {
		found := false
		for j := 0; j < other.n; j++ {
			if seen[j] {
				continue
			}
			if h.cards[i] == other.cards[j] {
				seen[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// String renders the hand's cards space-separated in insertion order.
func (h Hand) String() string {
	buf := make([]byte, 0, h.n*3)
	for i := 0; i < h.n; i++ {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, h.cards[i].String()...)
	}
	return string(buf)
}
