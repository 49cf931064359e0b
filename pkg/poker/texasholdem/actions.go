package texasholdem

import (
	"holdem-server/pkg/poker/action"
)

// Actions are the choices a seat has right now
type Actions struct {
	Seat    int             `json:"seat"`
	Actions []action.Action `json:"actions"`
	ToCall  int             `json:"toCall"`

	// MinRaise and MaxRaise are raise totals; both are zero when a raise is not possible
	MinRaise int `json:"minRaise"`
	MaxRaise int `json:"maxRaise"`
}

// ActionsForSeat returns the legal actions for the seat
// Actions is empty unless it is the seat's turn.
func (g *Game) ActionsForSeat(seat int) (*Actions, error) {
	s := g.state
	idx := s.indexOfSeat(seat)
	if idx < 0 {
		return nil, ErrSeatNotFound
	}

	p := s.Players[idx]
	result := &Actions{
		Seat:    seat,
		Actions: []action.Action{},
	}

	if !s.Phase.IsBettingRound() || idx != s.CurrentPlayerIndex || !p.canAct() {
		return result, nil
	}

	result.ToCall = s.CurrentBet - p.Bet
	if result.ToCall > 0 {
		result.Actions = append(result.Actions, action.Call)
	} else {
		result.ToCall = 0
		result.Actions = append(result.Actions, action.Check)
	}

	if p.Chips > result.ToCall {
		result.Actions = append(result.Actions, action.Raise)
		result.MaxRaise = p.Bet + p.Chips
		result.MinRaise = g.minRaiseTotal()
		if result.MinRaise > result.MaxRaise {
			result.MinRaise = result.MaxRaise
		}
	}

	result.Actions = append(result.Actions, action.Fold)
	return result, nil
}
