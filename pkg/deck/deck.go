package deck

import (
	"errors"
	"holdem-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a playing deck
// Cards are never removed; next points at the card that will be drawn next.
type Deck struct {
	Cards []Card `json:"-"`
	next  int
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	d.Cards = Full()
	d.next = 0
}

// Full returns the 52 cards in suit, then rank order
func Full() Hand {
	cards := make(Hand, 0, Size)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Shuffle rebuilds the deck and performs a Fisher–Yates shuffle with the generator
func (d *Deck) Shuffle(r rng.Generator) {
	d.buildDeck()
	ShuffleCards(d.Cards, r)
}

// ShuffleCards shuffles the cards in place
func ShuffleCards(cards []Card, r rng.Generator) {
	for j := len(cards) - 1; j > 0; j-- {
		i := r.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	if d.next >= len(d.Cards) {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[d.next]
	d.next++

	return card, nil
}

// Cursor returns the index of the next card to be drawn
func (d *Deck) Cursor() int {
	return d.next
}

// Dealt returns every card drawn so far, in draw order
func (d *Deck) Dealt() Hand {
	return Hand(d.Cards[:d.next]).Clone()
}

// Remaining returns a fresh 52-card deck minus the known cards
func Remaining(known ...[]Card) Hand {
	seen := make(map[Card]bool)
	for _, cards := range known {
		for _, card := range cards {
			seen[card] = true
		}
	}

	cards := make(Hand, 0, Size)
	for _, card := range Full() {
		if !seen[card] {
			cards = append(cards, card)
		}
	}

	return cards
}
