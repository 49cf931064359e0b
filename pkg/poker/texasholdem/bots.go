package texasholdem

import (
	"fmt"
	"holdem-server/pkg/poker/bot"

	"github.com/sirupsen/logrus"
)

// ProcessBotTurns lets bots act until a human is on the clock or the hand ends
// The first bot error stops the loop and is returned.
func (g *Game) ProcessBotTurns() (*GameState, error) {
	s := g.state
	for i := 0; ; i++ {
		if !s.Phase.IsBettingRound() {
			break
		}

		p := s.CurrentPlayer()
		if p == nil || !p.IsBot || !p.live() {
			break
		}

		if i >= g.options.MaxBotIterations {
			g.logger.WithFields(logrus.Fields{
				"seat":  p.Seat,
				"phase": s.Phase,
			}).Warn("bot loop hit the iteration ceiling")
			return nil, ErrBotLoopCeiling
		}

		decision, err := g.bots.Decide(p.Tier, g.botView(s.CurrentPlayerIndex))
		if err != nil {
			return nil, fmt.Errorf("bot turn for seat %d: %w", p.Seat, err)
		}

		if err := g.playerAction(p.Seat, decision.Action, decision.Amount); err != nil {
			return nil, fmt.Errorf("bot turn for seat %d: %w", p.Seat, err)
		}
	}

	return g.State(), nil
}

// botView is what the bot at idx is allowed to see
func (g *Game) botView(idx int) bot.View {
	s := g.state
	p := s.Players[idx]

	return bot.View{
		Hole:       p.Hole.Clone(),
		Community:  s.Community.Clone(),
		Stack:      p.Chips,
		Bet:        p.Bet,
		CurrentBet: s.CurrentBet,
		Pot:        s.Pot,
		BigBlind:   s.BigBlind,
		MinRaise:   g.minRaiseTotal(),
		Position:   g.position(idx),
		Opponents:  g.count((*Player).live) - 1,
	}
}

// position is where idx sits among the live players, counted from the
// dealer's left; 0 acts first and 1 is the button
func (g *Game) position(idx int) float64 {
	s := g.state
	live := g.count((*Player).live)
	if live < 2 {
		return 1
	}

	order := 0
	for i := g.nextIndex(g.dealerIndex(), (*Player).live); i != idx; i = g.nextIndex(i, (*Player).live) {
		order++
		if order >= len(s.Players) {
			break
		}
	}

	return float64(order) / float64(live-1)
}
