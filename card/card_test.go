package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardAndAccessors(t *testing.T) {
	c := NewCard(Ace, Spades)
	assert.Equal(t, Ace, c.Rank())
	assert.Equal(t, Spades, c.Suit())
	assert.Equal(t, "As", c.String())

	two := NewCard(Two, Clubs)
	assert.Equal(t, "2c", two.String())
	assert.Equal(t, uint8(0), two.Dense())
}

func TestParseCardRoundTrip(t *testing.T) {
	for rank := Two; rank <= Ace; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			c := NewCard(rank, suit)
			parsed, err := ParseCard(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	}
}

func TestParseCardCaseInsensitiveRank(t *testing.T) {
	got, err := ParseCard("as")
	require.NoError(t, err)
	assert.Equal(t, NewCard(Ace, Spades), got)
}

func TestParseCardErrors(t *testing.T) {
	tests := []string{"", "A", "Asx", "Xs", "As ", "AS"}
	for _, in := range tests {
		_, err := ParseCard(in)
		assert.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrInvalidCard), in)
	}
}

func TestNewRankNewSuitRange(t *testing.T) {
	_, err := NewRank(-1)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = NewRank(13)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = NewSuit(4)
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err := NewRank(12)
	require.NoError(t, err)
	assert.Equal(t, Ace, r)
}

func TestBitsLayout(t *testing.T) {
	c := NewCard(Ace, Spades)
	bits := c.Bits()

	assert.Equal(t, Ace.Prime(), bits&0xFF, "prime field")
	assert.Equal(t, uint32(Ace), (bits>>8)&0xF, "rank ordinal field")
	assert.NotZero(t, bits&(1<<(12+uint32(Spades))), "suit one-hot bit")
	assert.NotZero(t, bits&(1<<(16+uint32(Ace))), "rank one-hot bit")
}

func TestBitsDistinctRankOneHot(t *testing.T) {
	seen := make(map[uint32]bool)
	for rank := Two; rank <= Ace; rank++ {
		c := NewCard(rank, Clubs)
		rankBit := c.Bits() & (0x1FFF << 16)
		assert.False(t, seen[rankBit], "rank one-hot bit collided for %s", rank)
		seen[rankBit] = true
	}
}

func TestPrimesAreDistinctAndPrime(t *testing.T) {
	seen := make(map[uint32]bool)
	for r := Two; r <= Ace; r++ {
		p := r.Prime()
		assert.False(t, seen[p], "duplicate prime for rank %s", r)
		seen[p] = true
		assert.True(t, isPrime(p), "%d is not prime", p)
	}
}

func isPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	for i := uint32(2); i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
