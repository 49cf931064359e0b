package deck

import (
	"sort"
)

// Hand represents a collection of cards
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// HasDuplicates returns true if any card appears more than once
func (h Hand) HasDuplicates() bool {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		if seen[c] {
			return true
		}

		seen[c] = true
	}

	return false
}

// SortByRank returns a copy sorted high to low by rank, then by suit
func (h Hand) SortByRank() Hand {
	sorted := h.Clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rank != sorted[j].Rank {
			return sorted[i].Rank > sorted[j].Rank
		}

		return sorted[i].Suit < sorted[j].Suit
	})

	return sorted
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// Join returns a new hand containing the cards of every hand, in order
func Join(hands ...[]Card) Hand {
	n := 0
	for _, h := range hands {
		n += len(h)
	}

	joined := make(Hand, 0, n)
	for _, h := range hands {
		joined = append(joined, h...)
	}

	return joined
}
