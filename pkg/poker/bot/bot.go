// Package bot picks actions for computer-controlled seats
package bot

import (
	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/action"
	"holdem-server/pkg/poker/equity"
)

// Strategy is how one tier plays a hand
type Strategy interface {
	Decide(e *Engine, v View) Decision
}

var strategies = map[Tier]Strategy{
	Easy:   easy{},
	Medium: medium{},
	Hard:   hard{},
}

// Engine decides bot actions
type Engine struct {
	rng         rng.Generator
	equity      *equity.Calculator
	simulations int
}

// New returns a bot engine that uses r for every random choice
func New(r rng.Generator, simulations int) *Engine {
	if simulations <= 0 {
		simulations = equity.DefaultBotSimulations
	}

	return &Engine{
		rng:         r,
		equity:      equity.NewCalculator(r, simulations),
		simulations: simulations,
	}
}

// Decide returns a legal action for a bot of the tier
func (e *Engine) Decide(tier Tier, v View) (Decision, error) {
	strategy, ok := strategies[tier]
	if !ok {
		_, err := TierFromString(string(tier))
		return Decision{}, err
	}

	return legalize(v, strategy.Decide(e, v)), nil
}

func (e *Engine) winRate(v View) float64 {
	return e.equity.WinRate(v.Hole, v.Community, v.Opponents, e.simulations)
}

// raiseTo sizes a raise as the current bet plus a share of the pot after calling
func (e *Engine) raiseTo(v View, potFraction float64) int {
	pot := v.Pot + v.ToCall()
	if pot < v.BigBlind {
		pot = v.BigBlind
	}

	return v.CurrentBet + int(float64(pot)*potFraction)
}

// legalize turns a decision into one the table will accept
func legalize(v View, d Decision) Decision {
	toCall := v.ToCall()

	switch d.Action {
	case action.Raise:
		if !v.CanRaise() {
			return passive(toCall)
		}

		if d.Amount < v.MinRaise {
			d.Amount = v.MinRaise
		}

		if max := v.MaxRaise(); d.Amount > max {
			d.Amount = max
		}

		return d
	case action.Fold:
		if toCall == 0 {
			return Decision{Action: action.Check}
		}

		return Decision{Action: action.Fold}
	case action.Call, action.Check:
		return passive(toCall)
	}

	return passive(toCall)
}

func passive(toCall int) Decision {
	if toCall > 0 {
		return Decision{Action: action.Call}
	}

	return Decision{Action: action.Check}
}

func unseenCards(v View) int {
	return deck.Size - len(v.Hole) - len(v.Community)
}
