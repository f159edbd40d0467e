package eval5

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimeProductTableSize(t *testing.T) {
	// Classic Cactus-Kev repeat-rank counts: quads + full houses + trips +
	// two pair + one pair = 156+156+858+858+2860 = 4,888.
	assert.Equal(t, 4888, len(primeKeys))
	assert.Equal(t, len(primeKeys), len(primeValues))
}

func TestUniqueAndFlushTablesAgreeOnPopulatedMasks(t *testing.T) {
	populated := 0
	for mask := 0; mask < 8192; mask++ {
		u := uniqueTable[mask]
		f := flushTable[mask]
		if u == 0 {
			assert.Equal(t, HandRank(0), f, "mask %#x: U unset but F set", mask)
			continue
		}
		populated++
		assert.NotEqual(t, HandRank(0), f, "mask %#x: F unset but U set", mask)

		if u.Category() == Straight {
			assert.Equal(t, StraightFlush, f.Category())
		} else {
			assert.Equal(t, HighCard, u.Category())
			assert.Equal(t, Flush, f.Category())
		}
	}
	// C(13,5) = 1,287 distinct five-rank masks.
	assert.Equal(t, 1287, populated)
}

func TestUniqueTableOrdinalsAreDense(t *testing.T) {
	seenHighCard := make(map[uint32]bool)
	seenStraight := make(map[uint32]bool)
	for mask := 0; mask < 8192; mask++ {
		r := uniqueTable[mask]
		if r == 0 {
			continue
		}
		switch r.Category() {
		case HighCard:
			seenHighCard[r.Ordinal()] = true
		case Straight:
			seenStraight[r.Ordinal()] = true
		}
	}
	assert.Len(t, seenHighCard, 1277)
	assert.Len(t, seenStraight, 10)
	for i := 0; i < 1277; i++ {
		assert.True(t, seenHighCard[uint32(i)], "missing high-card ordinal %d", i)
	}
	for i := 0; i < 10; i++ {
		assert.True(t, seenStraight[uint32(i)], "missing straight ordinal %d", i)
	}
}

func TestPrimeProductKeysSortedAndUnique(t *testing.T) {
	for i := 1; i < len(primeKeys); i++ {
		assert.Less(t, primeKeys[i-1], primeKeys[i])
	}
}
