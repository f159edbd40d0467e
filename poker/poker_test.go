package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerjump/card"
)

// mustParseHand parses space-separated two-character cards into a Hand,
// failing the test on any parse error.
func mustParseHand(t *testing.T, s string) card.Hand {
	t.Helper()
	var cards []card.Card
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if i > start {
				c, err := card.ParseCard(s[start:i])
				require.NoError(t, err)
				cards = append(cards, c)
			}
			start = i + 1
		}
	}
	hand, err := card.NewHandFrom(cards)
	require.NoError(t, err)
	return hand
}

func testEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	e, err := Default()
	require.NoError(t, err)
	require.Equal(t, Ready, CurrentState())
	return e
}

func TestRoyalFlush(t *testing.T) {
	e := testEvaluator(t)
	hand := mustParseHand(t, "As Ks Qs Js Ts")
	r := e.Evaluate(hand)
	assert.Equal(t, StraightFlush, r.Category())
}

func TestStraightFlushBeatsQuads(t *testing.T) {
	e := testEvaluator(t)
	sf := mustParseHand(t, "9s 8s 7s 6s 5s")
	quads := mustParseHand(t, "Ac Ad Ah As Kc")

	rsf := e.Evaluate(sf)
	rquads := e.Evaluate(quads)
	assert.Equal(t, StraightFlush, rsf.Category())
	assert.Equal(t, FourOfAKind, rquads.Category())
	assert.Greater(t, rsf, rquads)
}

func TestQuadsBeatsFullHouse(t *testing.T) {
	e := testEvaluator(t)
	quads := mustParseHand(t, "Kc Kd Kh Ks 2c")
	full := mustParseHand(t, "Ac Ad Ah Kc Kd")

	rquads := e.Evaluate(quads)
	rfull := e.Evaluate(full)
	assert.Equal(t, FourOfAKind, rquads.Category())
	assert.Equal(t, FullHouse, rfull.Category())
	assert.Greater(t, rquads, rfull)
}

func TestWheelStraightFlushIsWeakestStraightFlush(t *testing.T) {
	e := testEvaluator(t)
	wheel := mustParseHand(t, "As 2s 3s 4s 5s")
	sixHigh := mustParseHand(t, "2s 3s 4s 5s 6s")

	rw := e.Evaluate(wheel)
	rs := e.Evaluate(sixHigh)
	assert.Equal(t, StraightFlush, rw.Category())
	assert.Equal(t, StraightFlush, rs.Category())
	assert.Less(t, rw, rs)
}

func TestEvaluateHoleBoardRoyalFlush(t *testing.T) {
	e := testEvaluator(t)
	hole := []card.Card{mustOne(t, "As"), mustOne(t, "Ks")}
	board := []card.Card{mustOne(t, "Qs"), mustOne(t, "Js"), mustOne(t, "Ts"), mustOne(t, "2c"), mustOne(t, "3d")}

	r, err := e.EvaluateHoleBoard(hole, board)
	require.NoError(t, err)
	assert.Equal(t, StraightFlush, r.Category())
}

func TestEvaluateHoleBoardFullHouse(t *testing.T) {
	e := testEvaluator(t)
	hole := []card.Card{mustOne(t, "Ac"), mustOne(t, "Ad")}
	board := []card.Card{mustOne(t, "Ah"), mustOne(t, "Kc"), mustOne(t, "Kd"), mustOne(t, "2c"), mustOne(t, "3d")}

	r, err := e.EvaluateHoleBoard(hole, board)
	require.NoError(t, err)
	assert.Equal(t, FullHouse, r.Category())
}

func mustOne(t *testing.T, s string) card.Card {
	t.Helper()
	c, err := card.ParseCard(s)
	require.NoError(t, err)
	return c
}

func TestEvaluateTooFewCardsIsInvalid(t *testing.T) {
	e := testEvaluator(t)
	hand := mustParseHand(t, "As Ks")
	assert.Equal(t, Invalid, e.Evaluate(hand))
}

func TestCompareHandsOrdering(t *testing.T) {
	e := testEvaluator(t)
	strong := mustParseHand(t, "As Ks Qs Js Ts")
	weak := mustParseHand(t, "2c 4d 6h 8s Tc")

	cmp, err := e.CompareHands(strong, weak)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	cmp, err = e.CompareHands(weak, strong)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = e.CompareHands(strong, strong)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)
}

func TestBestOfKFindsUniqueWinner(t *testing.T) {
	e := testEvaluator(t)
	hands := []card.Hand{
		mustParseHand(t, "2c 4d 6h 8s Tc"),
		mustParseHand(t, "As Ks Qs Js Ts"),
		mustParseHand(t, "Ac Ad Ah Kc Kd"),
	}
	winners, best, err := e.BestOfK(hands)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, winners)
	assert.Equal(t, StraightFlush, best.Category())
}

func TestBestOfKFindsTie(t *testing.T) {
	e := testEvaluator(t)
	hands := []card.Hand{
		mustParseHand(t, "Ac Kc Qc Jc 9c"),
		mustParseHand(t, "Ad Kd Qd Jd 9d"),
	}
	winners, _, err := e.BestOfK(hands)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, winners)
}

// TestMonotoneContainmentSevenCard checks, for one high-card hand plus Ac
// Kc, that adding two cards to a 5-card hand holds steady or improves the
// best-5 rank rather than worsening it.
func TestMonotoneContainmentSevenCard(t *testing.T) {
	e := testEvaluator(t)
	five := mustParseHand(t, "2c 4d 6h 8s Tc")
	seven := mustParseHand(t, "2c 4d 6h 8s Tc Ac Kc")

	r5 := e.Evaluate(five)
	r7 := e.Evaluate(seven)
	assert.GreaterOrEqual(t, r7, r5)
}

func TestDifferentlySuitedNonFlushHandsTieThroughEvaluator(t *testing.T) {
	e := testEvaluator(t)
	a := mustParseHand(t, "As Kd Qh Jc 9s")
	b := mustParseHand(t, "Ad Kh Qs Jd 9d")
	assert.Equal(t, e.Evaluate(a), e.Evaluate(b))
}
