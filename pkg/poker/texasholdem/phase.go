package texasholdem

import (
	"encoding/json"
	"fmt"
)

// Phase is where the table is in a hand
type Phase int

// phase constants, in the order a hand moves through them
const (
	Waiting Phase = iota
	PreFlop
	Flop
	Turn
	River
	Showdown
	Finished
)

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "waiting"
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	case Finished:
		return "finished"
	}

	return ""
}

// IsBettingRound returns true if players can act in the phase
func (p Phase) IsBettingRound() bool {
	return p >= PreFlop && p <= River
}

// InHand returns true between the deal and the payout
func (p Phase) InHand() bool {
	return p >= PreFlop && p <= Showdown
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}

// UnmarshalJSON decodes what MarshalJSON produced
func (p *Phase) UnmarshalJSON(b []byte) error {
	var v struct {
		ID int `json:"id"`
	}

	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	if v.ID < int(Waiting) || v.ID > int(Finished) {
		return fmt.Errorf("unknown phase: %d", v.ID)
	}

	*p = Phase(v.ID)
	return nil
}
