package mux

import (
	"fmt"
	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/equity"
	"net/http"
)

// maxOddsSimulations caps what a single request can ask for
const maxOddsSimulations = 100000

type postOddsPayload struct {
	Hole        []string `json:"hole"`
	Community   []string `json:"community"`
	Opponents   int      `json:"opponents"`
	Pot         int      `json:"pot"`
	BetToCall   int      `json:"betToCall"`
	Simulations int      `json:"simulations"`
}

func (p postOddsPayload) query() (equity.Query, error) {
	hole, err := deck.ParseCards(p.Hole)
	if err != nil {
		return equity.Query{}, err
	}

	community, err := deck.ParseCards(p.Community)
	if err != nil {
		return equity.Query{}, err
	}

	if p.Simulations < 0 || p.Simulations > maxOddsSimulations {
		return equity.Query{}, fmt.Errorf("simulations must be between 0 and %d", maxOddsSimulations)
	}

	if p.Pot < 0 || p.BetToCall < 0 {
		return equity.Query{}, fmt.Errorf("pot and bet to call cannot be negative")
	}

	return equity.Query{
		Hole:        hole,
		Community:   community,
		Opponents:   p.Opponents,
		Pot:         p.Pot,
		BetToCall:   p.BetToCall,
		Simulations: p.Simulations,
	}, nil
}

func (m *Mux) postOdds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postOddsPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		q, err := pp.query()
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		// each request gets its own generator; a seeded one is not safe to share
		calc := equity.NewCalculator(rng.New(m.config.Seed), m.config.OddsSimulations)
		result, err := calc.Analyze(q)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
