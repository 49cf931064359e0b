package equity

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/handanalyzer"
)

// Query is a stateless odds request
type Query struct {
	Hole        deck.Hand `json:"hole"`
	Community   deck.Hand `json:"community"`
	Opponents   int       `json:"opponents"`
	Pot         int       `json:"pot"`
	BetToCall   int       `json:"betToCall"`
	Simulations int       `json:"simulations"`
}

// Result is the answer to a Query
type Result struct {
	Outs        int     `json:"outs"`
	WinRate     float64 `json:"winRate"`
	Equity      float64 `json:"equity"`
	PotOdds     float64 `json:"potOdds"`
	ImpliedOdds float64 `json:"impliedOdds"`
	Hand        string  `json:"hand"`
}

// Analyze validates the query and computes every statistic for it
func (c *Calculator) Analyze(q Query) (*Result, error) {
	if err := Validate(q.Hole, q.Community, q.Opponents); err != nil {
		return nil, err
	}

	outs := Outs(q.Hole, q.Community)
	winRate := c.WinRate(q.Hole, q.Community, q.Opponents, q.Simulations)
	unseen := deck.Size - len(q.Hole) - len(q.Community)

	return &Result{
		Outs:        outs,
		WinRate:     winRate,
		Equity:      winRate,
		PotOdds:     PotOdds(q.Pot, q.BetToCall),
		ImpliedOdds: ImpliedOdds(q.Pot, q.BetToCall, outs, unseen),
		Hand:        handanalyzer.Evaluate(q.Hole, q.Community).Description,
	}, nil
}
