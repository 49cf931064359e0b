// Package equity estimates how strong a hold'em hand is before the board is complete
package equity

import (
	"errors"
	"fmt"
	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/handanalyzer"
)

// simulation defaults
const (
	DefaultDisplaySimulations = 1000
	DefaultBotSimulations     = 3000
)

const (
	holeCards      = 2
	communityCards = 5

	// how much of the pot odds carries into the implied odds
	impliedOddsWeight = 0.3
)

// validation errors
var (
	ErrHoleCards         = errors.New("exactly two hole cards are required")
	ErrTooManyCommunity  = errors.New("at most five community cards are allowed")
	ErrNegativeOpponents = errors.New("opponents cannot be negative")
)

// Validate ensures the cards can be used for an odds query
func Validate(hole, community []deck.Card, opponents int) error {
	if len(hole) != holeCards {
		return ErrHoleCards
	}

	if len(community) > communityCards {
		return ErrTooManyCommunity
	}

	if opponents < 0 {
		return ErrNegativeOpponents
	}

	seen := make(map[deck.Card]bool, len(hole)+len(community))
	for _, card := range deck.Join(hole, community) {
		if !card.IsValid() {
			return fmt.Errorf("invalid card: %d%s", card.Rank, card.Suit)
		}

		if seen[card] {
			return fmt.Errorf("duplicate card: %s", deck.CardToString(card))
		}

		seen[card] = true
	}

	return nil
}

// Outs returns the number of unseen cards that would improve the hand if
// dealt as the next community card
// There are no outs before the flop or once the river is out.
func Outs(hole, community []deck.Card) int {
	return countOuts(hole, community, func(current, next handanalyzer.HandRank, _ deck.Hand) bool {
		return handanalyzer.Compare(next, current) > 0
	})
}

// DrawOuts counts the unseen cards that would give the hole cards a better
// type of hand than they make now and than the board makes on its own
// Kicker-only improvements and cards that only pair the board do not count.
func DrawOuts(hole, community []deck.Card) int {
	return countOuts(hole, community, func(current, next handanalyzer.HandRank, board deck.Hand) bool {
		return next.Hand > current.Hand && next.Hand > boardHand(board)
	})
}

func countOuts(hole, community []deck.Card, improves func(current, next handanalyzer.HandRank, board deck.Hand) bool) int {
	if len(community) == 0 || len(community) >= communityCards {
		return 0
	}

	current := handanalyzer.Evaluate(hole, community)

	board := make(deck.Hand, len(community), len(community)+1)
	copy(board, community)
	board = append(board, deck.Card{})
	open := len(board) - 1

	outs := 0
	for _, card := range deck.Remaining(hole, community) {
		board[open] = card
		if improves(current, handanalyzer.Evaluate(hole, board), board) {
			outs++
		}
	}

	return outs
}

// boardHand returns the type of hand the community cards make by themselves
// Boards of fewer than five cards can only hold rank groups.
func boardHand(board deck.Hand) handanalyzer.Hand {
	if len(board) >= communityCards {
		return handanalyzer.New(board).GetHand()
	}

	counts := make(map[int]int, len(board))
	for _, c := range board {
		counts[c.Rank]++
	}

	pairs, most := 0, 0
	for _, n := range counts {
		if n >= 2 {
			pairs++
		}

		if n > most {
			most = n
		}
	}

	switch {
	case most >= 4:
		return handanalyzer.FourOfAKind
	case most == 3:
		return handanalyzer.ThreeOfAKind
	case pairs >= 2:
		return handanalyzer.TwoPair
	case pairs == 1:
		return handanalyzer.OnePair
	}

	return handanalyzer.HighCard
}

// PotOdds returns the share of the final pot the caller must put in
func PotOdds(pot, betToCall int) float64 {
	if betToCall <= 0 {
		return 0
	}

	return float64(betToCall) / float64(pot+betToCall)
}

// ImpliedOdds blends the chance of hitting an out with the pot odds
func ImpliedOdds(pot, betToCall, outs, cardsRemaining int) float64 {
	hit := 0.0
	if cardsRemaining > 0 {
		hit = float64(outs) / float64(cardsRemaining)
	}

	return hit + impliedOddsWeight*PotOdds(pot, betToCall)
}

// Calculator runs Monte Carlo simulations
type Calculator struct {
	rng         rng.Generator
	simulations int
}

// NewCalculator returns a calculator that draws from r
// A simulations value of zero or less uses DefaultDisplaySimulations.
func NewCalculator(r rng.Generator, simulations int) *Calculator {
	if simulations <= 0 {
		simulations = DefaultDisplaySimulations
	}

	return &Calculator{
		rng:         r,
		simulations: simulations,
	}
}

// Simulations returns the default number of trials
func (c *Calculator) Simulations() int {
	return c.simulations
}

// WinRate estimates how often the hand is at least as good as every
// opponent's once the board is complete
// Ties count as wins. With no opponents the hand always wins.
// A simulations value of zero or less uses the calculator's default.
func (c *Calculator) WinRate(hole, community []deck.Card, opponents, simulations int) float64 {
	if opponents <= 0 {
		return 1.0
	}

	if simulations <= 0 {
		simulations = c.simulations
	}

	unseen := deck.Remaining(hole, community)
	missing := communityCards - len(community)
	if missing < 0 {
		missing = 0
	}

	// never deal more than the deck holds
	if max := (len(unseen) - missing) / holeCards; opponents > max {
		opponents = max
		if opponents <= 0 {
			return 1.0
		}
	}

	need := missing + opponents*holeCards

	board := make(deck.Hand, communityCards)
	copy(board, community)

	wins := 0
	for i := 0; i < simulations; i++ {
		c.sample(unseen, need)

		copy(board[len(community):], unseen[0:missing])
		hero := handanalyzer.Evaluate(hole, board)

		won := true
		for o := 0; o < opponents; o++ {
			start := missing + o*holeCards
			villain := handanalyzer.Evaluate(unseen[start:start+holeCards], board)
			if handanalyzer.Compare(hero, villain) < 0 {
				won = false
				break
			}
		}

		if won {
			wins++
		}
	}

	return float64(wins) / float64(simulations)
}

// Equity is WinRate
func (c *Calculator) Equity(hole, community []deck.Card, opponents, simulations int) float64 {
	return c.WinRate(hole, community, opponents, simulations)
}

// sample moves n random cards to the front of cards with a partial Fisher–Yates shuffle
func (c *Calculator) sample(cards deck.Hand, n int) {
	for i := 0; i < n; i++ {
		j := i + c.rng.Intn(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
