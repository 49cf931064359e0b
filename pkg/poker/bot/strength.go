package bot

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/handanalyzer"
)

// how strong each made hand is on a 0-1 scale
var madeHandStrength = map[handanalyzer.Hand]float64{
	handanalyzer.HighCard:      0.15,
	handanalyzer.OnePair:       0.35,
	handanalyzer.TwoPair:       0.55,
	handanalyzer.ThreeOfAKind:  0.65,
	handanalyzer.Straight:      0.75,
	handanalyzer.Flush:         0.8,
	handanalyzer.FullHouse:     0.88,
	handanalyzer.FourOfAKind:   0.95,
	handanalyzer.StraightFlush: 0.98,
	handanalyzer.RoyalFlush:    1.0,
}

// handStrength returns a 0-1 estimate of the hand without simulating
func handStrength(hole, community deck.Hand) float64 {
	if len(community) == 0 {
		return preFlopStrength(hole)
	}

	return madeHandStrength[handanalyzer.Evaluate(hole, community).Hand]
}

// preFlopStrength scores two hole cards by rank, pairing, suits and gap
func preFlopStrength(hole deck.Hand) float64 {
	if len(hole) < 2 {
		return 0.3
	}

	c0, c1 := hole[0], hole[1]
	strength := float64(c0.Rank+c1.Rank) / 28.0

	if c0.Rank == c1.Rank {
		strength += 0.25
	}

	if c0.Suit == c1.Suit {
		strength += 0.05
	}

	gap := c0.Rank - c1.Rank
	if gap < 0 {
		gap = -gap
	}

	if gap <= 2 {
		strength += 0.05
	}

	return clamp01(strength)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
