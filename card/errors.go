package card

import "errors"

// Sentinel errors returned by the card and hand constructors. Callers should
// compare with errors.Is, since these are wrapped with positional context.
var (
	// ErrInvalidCard is returned when a two-character card string doesn't
	// parse as a rank followed by a suit.
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidRange is returned when a rank or suit constructor is given
	// a value outside [0,12] or [0,3] respectively.
	ErrInvalidRange = errors.New("value out of range")

	// ErrDuplicateCard is returned when adding a card already present in a Hand.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrHandFull is returned when adding a card would grow a Hand past 7 cards.
	ErrHandFull = errors.New("hand is full")
)
