package bot

import (
	"holdem-server/pkg/poker/action"
	"holdem-server/pkg/poker/equity"
)

type easy struct{}

// Decide plays raw hand strength with a coin flip mixed in
func (easy) Decide(e *Engine, v View) Decision {
	s := handStrength(v.Hole, v.Community)*0.7 + e.rng.Float64()*0.3
	toCall := v.ToCall()
	largeBet := toCall*3 > v.Stack || toCall > 4*v.BigBlind

	switch {
	case largeBet && s < 0.55:
		return Decision{Action: action.Fold}
	case s >= 0.7:
		return Decision{Action: action.Raise, Amount: e.raiseTo(v, 0.5+e.rng.Float64()*0.5)}
	}

	return Decision{Action: action.Call}
}

type medium struct{}

// Decide weighs simulated equity against the price of calling
func (medium) Decide(e *Engine, v View) Decision {
	eq := e.winRate(v)
	potOdds := equity.PotOdds(v.Pot, v.ToCall())
	s := 0.5*handStrength(v.Hole, v.Community) + 0.5*eq
	toCall := v.ToCall()

	if toCall > 0 && eq < potOdds && toCall*4 > v.Stack {
		return Decision{Action: action.Fold}
	}

	if eq > 0.7 || s > 0.75 {
		return Decision{Action: action.Raise, Amount: e.raiseTo(v, 0.5+eq*0.5)}
	}

	if toCall == 0 {
		if eq > 0.55 && e.rng.Float64() < 0.3 {
			return Decision{Action: action.Raise, Amount: e.raiseTo(v, 0.5)}
		}

		return Decision{Action: action.Check}
	}

	if eq >= potOdds {
		return Decision{Action: action.Call}
	}

	return Decision{Action: action.Fold}
}

type hard struct{}

// Decide adds position, board texture, bluffs and drawing odds
func (hard) Decide(e *Engine, v View) Decision {
	eq := e.winRate(v)
	toCall := v.ToCall()
	potOdds := equity.PotOdds(v.Pot, toCall)
	street := v.Street()
	texture := BoardTexture(v.Community)
	latePosition := v.Position >= 0.5

	outs := 0
	if street == Flop || street == Turn {
		outs = equity.DrawOuts(v.Hole, v.Community)
	}

	bluff := bluffFrequency(v.Position, texture, eq)

	switch {
	case eq > 0.75:
		return Decision{Action: action.Raise, Amount: e.raiseTo(v, 0.75+e.rng.Float64()*0.5)}
	case eq > 0.6 && toCall*3 <= v.Stack:
		return Decision{Action: action.Raise, Amount: e.raiseTo(v, 0.5)}
	case outs >= 8 && latePosition && eq < 0.6 && street != River:
		// semi-bluff the draw
		return Decision{Action: action.Raise, Amount: e.raiseTo(v, 0.5)}
	}

	if toCall == 0 {
		if e.rng.Float64() < bluff {
			return Decision{Action: action.Raise, Amount: e.raiseTo(v, 0.5)}
		}

		return Decision{Action: action.Check}
	}

	if eq >= potOdds {
		return Decision{Action: action.Call}
	}

	if outs > 0 && equity.ImpliedOdds(v.Pot, toCall, outs, unseenCards(v)) >= potOdds {
		return Decision{Action: action.Call}
	}

	if texture == Dry && latePosition && e.rng.Float64() < bluff/2 {
		return Decision{Action: action.Raise, Amount: e.raiseTo(v, 0.75)}
	}

	return Decision{Action: action.Fold}
}

// bluffFrequency is higher late, on dry boards and with little equity
func bluffFrequency(position float64, texture Texture, eq float64) float64 {
	freq := 0.05 + 0.15*clamp01(position)

	if texture == Dry {
		freq += 0.1
	} else if texture == Paired {
		freq -= 0.03
	}

	if eq < 0.3 {
		freq += 0.05
	}

	return clamp01(freq)
}
