package bot

import (
	"holdem-server/pkg/deck"
)

// Texture describes how coordinated the board is
type Texture int

// texture constants, from least to most dangerous
const (
	Dry Texture = iota
	Straighty
	Flushy
	Paired
)

func (t Texture) String() string {
	switch t {
	case Dry:
		return "dry"
	case Straighty:
		return "straighty"
	case Flushy:
		return "flushy"
	case Paired:
		return "paired"
	}

	panic("unknown texture")
}

// BoardTexture classifies the community cards
func BoardTexture(community deck.Hand) Texture {
	ranks := make(map[int]int)
	suits := make(map[deck.Suit]int)
	for _, c := range community {
		ranks[c.Rank]++
		suits[c.Suit]++
	}

	for _, n := range ranks {
		if n >= 2 {
			return Paired
		}
	}

	for _, n := range suits {
		if n >= 3 {
			return Flushy
		}
	}

	if ranks[deck.Ace] > 0 {
		ranks[deck.LowAce] = 1
	}

	// three different ranks inside any five-rank window
	for low := deck.LowAce; low <= deck.Ten; low++ {
		inWindow := 0
		for rank := low; rank < low+5; rank++ {
			if ranks[rank] > 0 {
				inWindow++
			}
		}

		if inWindow >= 3 {
			return Straighty
		}
	}

	return Dry
}
