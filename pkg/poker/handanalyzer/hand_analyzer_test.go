package handanalyzer

import (
	"holdem-server/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	h := New(deck.CardsFromString("2c,3c,3d,3h,3s"))
	r, ok := h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, 3, r)
	_, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	_, ok = h.GetPair()
	assert.False(t, ok)

	h = New(deck.CardsFromString("9s,4h,5c,4d,4c"))
	r, ok = h.GetFourOfAKind()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	h := New(deck.CardsFromString("14c,2c,14d,5c,14h,2d,5h"))
	r, ok := h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{14, 5}, r)

	h = New(deck.CardsFromString("3c,3d,3h,4c,4d,4h,5c"))
	r, ok = h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{4, 3}, r)

	// the lower trips beat the pair
	h = New(deck.CardsFromString("7c,7d,7h,6c,6d,6h,5c,5d"))
	r, ok = h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{7, 6}, r)

	h = New(deck.CardsFromString("3c,3d,3h,4c,5d,6h,8c"))
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)

	h = New(deck.CardsFromString("3c,3d,4h,4c,5d,5h,6c"))
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetHighCard(t *testing.T) {
	h := New(deck.CardsFromString("14c,2c,5c,8d,3h,9s,11d"))
	r, ok := h.GetHighCard()
	assert.Equal(t, []int{14, 11, 9, 8, 5}, r)
	assert.True(t, ok)
}

func TestHandAnalyzer_GetPair(t *testing.T) {
	h := New(deck.CardsFromString("2c,5c,2h,5h,6d"))
	r, ok := h.GetPair()
	assert.True(t, ok)
	assert.Equal(t, 5, r)

	h = New(deck.CardsFromString("2c,3c,4h,5h,7d"))
	r, ok = h.GetPair()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	h := New(deck.CardsFromString("5c,5d,6h,6d,3h"))
	r, ok := h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, []int{6, 5}, r)

	h = New(deck.CardsFromString("2c,2d,3h,4h,8d"))
	r, ok = h.GetTwoPair()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetFlush(t *testing.T) {
	h := New(deck.CardsFromString("2c,3c,4c,5c,7c,9c,8d"))
	r, ok := h.GetFlush()
	assert.True(t, ok)
	assert.Equal(t, []int{9, 7, 5, 4, 3}, r)

	h = New(deck.CardsFromString("2c,3c,4c,5c,6d"))
	r, ok = h.GetFlush()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetStraight(t *testing.T) {
	a := assert.New(t)

	assertStraight := func(cards string, high int) {
		t.Helper()

		h := New(deck.CardsFromString(cards))
		r, ok := h.GetStraight()
		if high == 0 {
			a.False(ok, cards)
		} else {
			a.True(ok, cards)
		}
		a.Equal(high, r, cards)
	}

	assertStraight("10c,11d,12h,13s,14c", 14)
	assertStraight("14s,2d,3c,4h,5s,9d,13c", 5)
	assertStraight("14s,2d,3c,4h,5s,6d", 6)
	assertStraight("2c,3d,4h,5s,6c,7d,8h", 8)
	assertStraight("12c,13d,14h,2s,3c", 0)
	assertStraight("2c,3d,4h,5s,7c,8d,9h", 0)
}

func TestHandAnalyzer_GetHand(t *testing.T) {
	a := assert.New(t)

	assertHand := func(cards string, hand Hand) {
		t.Helper()
		a.Equal(hand, New(deck.CardsFromString(cards)).GetHand(), cards)
	}

	assertHand("10s,11s,12s,13s,14s,2c,3d", RoyalFlush)
	assertHand("9h,10h,11h,12h,13h,2c,3d", StraightFlush)
	assertHand("14d,2d,3d,4d,5d,13c,13h", StraightFlush)
	assertHand("9h,9d,9s,9c,13h", FourOfAKind)
	assertHand("9h,9d,9s,13c,13h", FullHouse)
	assertHand("2h,5h,7h,9h,11h,10c,8d", Flush)
	assertHand("2h,3d,4c,5s,6h", Straight)
	assertHand("2h,2d,2c,5s,6h", ThreeOfAKind)
	assertHand("2h,2d,5c,5s,6h", TwoPair)
	assertHand("2h,2d,5c,7s,9h", OnePair)
	assertHand("2h,4d,6c,8s,10h", HighCard)
	assertHand("14h,14d", HighCard)
	assertHand("", HighCard)
}

func TestHand_String(t *testing.T) {
	assert.Equal(t, "Royal flush", RoyalFlush.String())
	assert.Equal(t, "Pair", OnePair.String())
	assert.PanicsWithValue(t, "unknown hand: 10", func() {
		_ = Hand(10).String()
	})
}

func TestHand_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	b, err := FullHouse.MarshalJSON()
	a.NoError(err)
	a.Equal(`{"id":6,"name":"Full house"}`, string(b))

	var h Hand
	a.NoError(h.UnmarshalJSON(b))
	a.Equal(FullHouse, h)

	a.EqualError(h.UnmarshalJSON([]byte(`{"id":11}`)), "unknown hand: 11")
}
