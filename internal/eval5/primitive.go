package eval5

import "github.com/lox/pokerjump/card"

const (
	rankOneHotShift = 16
	rankMaskBits    = 0x1FFF // 13 bits, Two..Ace
	suitOneHotMask  = 0xF000 // bits 12-15
	primeMask       = 0xFF   // bits 0-7
)

// Evaluate5 ranks exactly five cards: OR the bit-packed words to get the
// rank mask, AND the suit bits to detect a flush, then fall back to the
// unique-rank table or the prime-product table. It never examines kickers
// at query time — the precomputed tables already encode intra-category
// order.
func Evaluate5(cards [5]card.Card) HandRank {
	var words [5]uint32
	var orWord uint32
	andSuit := uint32(suitOneHotMask)
	for i, c := range cards {
		w := c.Bits()
		words[i] = w
		orWord |= w
		andSuit &= w
	}

	q := (orWord >> rankOneHotShift) & rankMaskBits

	if andSuit&suitOneHotMask != 0 {
		return flushTable[q]
	}

	if r := uniqueTable[q]; r != 0 {
		return r
	}

	product := uint32(1)
	for _, w := range words {
		product *= w & primeMask
	}

	if r, ok := findPrimeProduct(product); ok {
		return r
	}

	// Unreachable for any five distinct cards: every rank-repeat pattern
	// is covered by buildPrimeProductTable.
	return 0
}
