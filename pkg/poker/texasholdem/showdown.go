package texasholdem

import (
	"holdem-server/pkg/poker/handanalyzer"

	"github.com/sirupsen/logrus"
)

// EvaluateWinners ends the hand now and pays out the pot
// Any community cards still to come are dealt first.
func (g *Game) EvaluateWinners() (*GameState, error) {
	if !g.state.Phase.InHand() {
		return nil, ErrNoHandInProgress
	}

	g.evaluateWinners()
	return g.State(), nil
}

func (g *Game) evaluateWinners() {
	s := g.state
	s.Phase = Showdown
	s.CurrentPlayerIndex = -1

	live := make([]int, 0, len(s.Players))
	for i, p := range s.Players {
		if p.live() {
			live = append(live, i)
		}
	}

	if len(live) == 1 {
		// uncontested, nobody shows
		p := s.Players[live[0]]
		s.Winners = []*Winner{{Seat: p.Seat, Name: p.Name, Amount: s.Pot}}
		p.Chips += s.Pot
	} else {
		for len(s.Community) < 5 {
			n := 1
			if len(s.Community) == 0 {
				n = 3
			}

			g.dealCommunity(n)
		}

		s.Showdown = true
		g.payWinners(g.bestHands(live))
	}

	for _, w := range s.Winners {
		g.logger.WithFields(logrus.Fields{
			"seat":   w.Seat,
			"amount": w.Amount,
			"hand":   w.Hand,
		}).Infof("%s won ${%d}", w.Name, w.Amount)
	}

	s.Pot = 0
	for _, p := range s.Players {
		p.Bet = 0
	}

	s.CurrentBet = 0
	s.LastRaiseSize = 0
	s.LastRaiserIndex = -1
	s.Phase = Finished
}

// bestHands ranks every live hand and returns the indexes of those tied for best
func (g *Game) bestHands(live []int) []int {
	s := g.state

	var best *handanalyzer.HandRank
	var winners []int
	for _, i := range live {
		p := s.Players[i]
		rank := handanalyzer.Evaluate(p.Hole, s.Community)
		p.BestHand = &rank

		cmp := 1
		if best != nil {
			cmp = handanalyzer.Compare(rank, *best)
		}

		switch {
		case cmp > 0:
			best = p.BestHand
			winners = []int{i}
		case cmp == 0:
			winners = append(winners, i)
		}
	}

	return breakTieByKickers(s, winners)
}

// breakTieByKickers keeps the tied hands with the highest kicker total
// Compare already orders kickers card by card, so hands that reach this
// point have identical kickers and the filter keeps all of them.
func breakTieByKickers(s *GameState, tied []int) []int {
	if len(tied) < 2 {
		return tied
	}

	bestSum := -1
	for _, i := range tied {
		if sum := s.Players[i].BestHand.KickerSum(); sum > bestSum {
			bestSum = sum
		}
	}

	kept := make([]int, 0, len(tied))
	for _, i := range tied {
		if s.Players[i].BestHand.KickerSum() == bestSum {
			kept = append(kept, i)
		}
	}

	return kept
}

// payWinners splits the pot evenly
// Odd chips go one each to the winners closest to the dealer's left.
func (g *Game) payWinners(winners []int) {
	s := g.state
	n := len(winners)
	share := s.Pot / n
	remainder := s.Pot % n

	isWinner := make(map[int]bool, n)
	for _, i := range winners {
		isWinner[i] = true
	}

	s.Winners = make([]*Winner, 0, n)
	idx := g.dealerIndex()
	for range s.Players {
		idx = (idx + 1) % len(s.Players)
		if !isWinner[idx] {
			continue
		}

		p := s.Players[idx]
		amount := share
		if remainder > 0 {
			amount++
			remainder--
		}

		p.Chips += amount
		s.Winners = append(s.Winners, &Winner{
			Seat:   p.Seat,
			Name:   p.Name,
			Amount: amount,
			Hand:   p.BestHand.Description,
		})
	}
}
