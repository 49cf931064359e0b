package bot

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/action"
)

// Street is the betting round, counted from zero pre-flop
type Street int

// street constants
const (
	PreFlop Street = iota
	Flop
	Turn
	River
)

// View is the read-only slice of the table a bot decides from
type View struct {
	Hole      deck.Hand
	Community deck.Hand

	Stack      int
	Bet        int
	CurrentBet int
	Pot        int
	BigBlind   int

	// MinRaise is the smallest legal raise total
	MinRaise int

	// Position is 0 for the first live seat to act and 1 for the last
	Position float64

	Opponents int
}

// Decision is a bot's chosen action
// Amount is only set for a raise and is the new total bet.
type Decision struct {
	Action action.Action `json:"action"`
	Amount int           `json:"amount,omitempty"`
}

// ToCall returns how much more the bot must put in to stay in the hand
func (v View) ToCall() int {
	if toCall := v.CurrentBet - v.Bet; toCall > 0 {
		return toCall
	}

	return 0
}

// MaxRaise returns the largest total the bot can bet
func (v View) MaxRaise() int {
	return v.Bet + v.Stack
}

// CanRaise returns true if the bot has enough chips for a full raise
func (v View) CanRaise() bool {
	return v.MinRaise > v.CurrentBet && v.MaxRaise() >= v.MinRaise
}

// Street returns the betting round from the number of community cards
func (v View) Street() Street {
	switch len(v.Community) {
	case 0:
		return PreFlop
	case 3:
		return Flop
	case 4:
		return Turn
	}

	return River
}
