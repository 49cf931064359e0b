package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♡", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "Q♢", card.String())

	card = Card{
		Rank: 10,
		Suit: Spades,
	}

	assert.Equal(t, "10♠", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	c, err := ParseCard("14s")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, c)

	c, err = ParseCard(" 10H ")
	a.NoError(err)
	a.Equal(Card{Rank: Ten, Suit: Hearts}, c)

	for _, bad := range []string{"", "1c", "15c", "0d", "2x", "!2c", "As"} {
		_, err = ParseCard(bad)
		a.Error(err, bad)
	}

	a.Panics(func() {
		CardFromString("nope")
	})
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards([]string{"2c", "13d"})
	assert.NoError(t, err)
	assert.Equal(t, "2c,13d", CardsToString(cards))

	_, err = ParseCards([]string{"2c", "zz"})
	assert.EqualError(t, err, "could not parse card: zz")
}

func TestCard_IsValid(t *testing.T) {
	assert.True(t, Card{Rank: 2, Suit: Clubs}.IsValid())
	assert.False(t, Card{Rank: 1, Suit: Clubs}.IsValid())
	assert.False(t, Card{Rank: 15, Suit: Clubs}.IsValid())
	assert.False(t, Card{Rank: 5, Suit: "stars"}.IsValid())
	assert.False(t, Card{}.IsValid())
}

func TestRankString(t *testing.T) {
	assert.Equal(t, "A", RankString(Ace))
	assert.Equal(t, "T", RankString(Ten))
	assert.Equal(t, "7", RankString(7))
}
