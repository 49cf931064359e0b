package texasholdem

import (
	"fmt"
	"holdem-server/pkg/poker/action"

	"github.com/sirupsen/logrus"
)

// PlayerAction applies the seat's action and moves the hand forward
// For a raise, amount is the player's new total bet for the round.
func (g *Game) PlayerAction(seat int, act action.Action, amount int) (*GameState, error) {
	if err := g.playerAction(seat, act, amount); err != nil {
		return nil, err
	}

	return g.State(), nil
}

func (g *Game) playerAction(seat int, act action.Action, amount int) error {
	s := g.state
	if !s.Phase.IsBettingRound() {
		return ErrNoHandInProgress
	}

	idx := s.indexOfSeat(seat)
	if idx < 0 {
		return ErrSeatNotFound
	}

	p := s.Players[idx]
	if p.Folded {
		return ErrPlayerFolded
	}

	if !p.Active {
		return ErrPlayerNotActive
	}

	if idx != s.CurrentPlayerIndex {
		return ErrNotYourTurn
	}

	if err := g.validateAction(p, act, amount); err != nil {
		return err
	}

	logAmount := 0
	switch act {
	case action.Fold:
		p.Folded = true
		p.Active = false
	case action.Check:
	case action.Call:
		logAmount = g.moveToPot(p, s.CurrentBet-p.Bet)
	case action.Raise:
		g.moveToPot(p, amount-p.Bet)
		logAmount = p.Bet
		g.recordRaise(idx)
	}

	p.HasActed = true
	s.LastAction = &LastAction{
		Seat:   p.Seat,
		Name:   p.Name,
		Action: act,
		Amount: logAmount,
	}

	g.logger.WithFields(logrus.Fields{
		"seat":   p.Seat,
		"phase":  s.Phase,
		"action": act,
		"amount": logAmount,
	}).Debugf("%s %s", p.Name, act.LogMessage(logAmount))

	g.advanceGame()
	return nil
}

// validateAction checks the action against the betting rules without changing anything
func (g *Game) validateAction(p *Player, act action.Action, amount int) error {
	s := g.state
	toCall := s.CurrentBet - p.Bet

	switch act {
	case action.Fold, action.Call:
		return nil
	case action.Check:
		if toCall > 0 {
			return ErrCannotCheck
		}

		return nil
	case action.Raise:
		if amount <= p.Bet {
			return ErrRaiseNotPositive
		}

		// a player may always move all in, even for less than a full raise
		allIn := amount-p.Bet >= p.Chips
		if minTotal := g.minRaiseTotal(); amount < minTotal && !allIn {
			return InvalidOperationError(fmt.Sprintf("raise must be to at least ${%d}", minTotal))
		}

		return nil
	}

	return ErrUnknownAction
}

// minRaiseTotal is the smallest total bet that counts as a raise
func (g *Game) minRaiseTotal() int {
	s := g.state
	increment := s.LastRaiseSize
	if increment < s.BigBlind {
		increment = s.BigBlind
	}

	return s.CurrentBet + increment
}

func (g *Game) moveToPot(p *Player, amount int) int {
	if amount <= 0 {
		return 0
	}

	moved := p.commit(amount)
	g.state.Pot += moved
	return moved
}

// recordRaise updates the bet to match after the player at idx has put in more
func (g *Game) recordRaise(idx int) {
	s := g.state
	p := s.Players[idx]
	if p.Bet <= s.CurrentBet {
		// all in for no more than a call
		return
	}

	if raiseSize := p.Bet - s.CurrentBet; raiseSize >= s.LastRaiseSize {
		s.LastRaiseSize = raiseSize
	}

	s.CurrentBet = p.Bet
	s.LastRaiserIndex = idx

	// everyone else has to respond to the raise
	for i, other := range s.Players {
		if i != idx {
			other.HasActed = false
		}
	}
}

// advanceGame moves the turn, deals the next street, or ends the hand
func (g *Game) advanceGame() {
	s := g.state
	if g.count((*Player).live) <= 1 {
		g.evaluateWinners()
		return
	}

	if g.roundComplete() {
		g.endRound()
		return
	}

	next := g.nextIndex(s.CurrentPlayerIndex, (*Player).canAct)
	if next < 0 {
		next = g.nextIndex(-1, (*Player).canAct)
	}

	s.CurrentPlayerIndex = next
}

// roundComplete is true when nobody owes a decision this round
func (g *Game) roundComplete() bool {
	s := g.state
	actors := 0
	for _, p := range s.Players {
		if !p.canAct() {
			continue
		}

		if p.Bet != s.CurrentBet {
			return false
		}

		actors++
	}

	if actors <= 1 {
		return true
	}

	for _, p := range s.Players {
		if p.canAct() && !p.HasActed {
			return false
		}
	}

	return true
}

// endRound deals the next street, or goes to showdown after the river
// Streets are dealt without betting while fewer than two players can act.
func (g *Game) endRound() {
	s := g.state
	for _, p := range s.Players {
		p.Bet = 0
		p.HasActed = false
	}

	s.CurrentBet = 0
	s.LastRaiseSize = 0
	s.LastRaiserIndex = -1

	switch s.Phase {
	case PreFlop:
		g.dealCommunity(3)
		s.Phase = Flop
	case Flop:
		g.dealCommunity(1)
		s.Phase = Turn
	case Turn:
		g.dealCommunity(1)
		s.Phase = River
	default:
		g.evaluateWinners()
		return
	}

	g.logger.WithFields(logrus.Fields{
		"phase":     s.Phase,
		"community": s.Community.String(),
	}).Debug("dealt street")

	if g.count((*Player).canAct) < 2 {
		g.endRound()
		return
	}

	s.CurrentPlayerIndex = g.nextIndex(g.dealerIndex(), (*Player).canAct)
}
