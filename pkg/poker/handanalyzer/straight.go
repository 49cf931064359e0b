package handanalyzer

import (
	"holdem-server/pkg/deck"
)

// used to keep track of the straight progress
// ranks must be fed high to low without repeats
type straightTracker struct {
	high   int
	prev   int
	streak int
}

// add extends the streak with the next lower rank, or starts a new streak
// Returns true once the streak is long enough to make a straight.
func (s *straightTracker) add(rank int) bool {
	if s.streak == 0 || s.prev-rank != 1 {
		s.high = rank
		s.streak = 1
	} else {
		s.streak++
	}

	s.prev = rank
	return s.streak >= handSize
}

// straightCards picks one card per rank for the straight ending at high
func straightCards(cards deck.Hand, high int) deck.Hand {
	picked := make(deck.Hand, 0, handSize)
	for rank := high; rank > high-handSize; rank-- {
		want := rank
		if want == deck.LowAce {
			want = deck.Ace
		}

		for _, c := range cards {
			if c.Rank == want {
				picked = append(picked, c)
				break
			}
		}
	}

	return picked
}
