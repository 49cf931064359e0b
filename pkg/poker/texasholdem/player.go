package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/bot"
	"holdem-server/pkg/poker/handanalyzer"
)

// Player is a seat at the table
// The player persists across hands until removed; the stack carries over.
type Player struct {
	Seat  int      `json:"seat"`
	Name  string   `json:"name"`
	IsBot bool     `json:"isBot"`
	Tier  bot.Tier `json:"tier"`
	Chips int      `json:"chips"`

	Hole deck.Hand `json:"hole"`

	// Bet is what the player has put in during the current betting round
	Bet int `json:"bet"`

	Folded bool `json:"folded"`
	AllIn  bool `json:"allIn"`
	Active bool `json:"active"`

	// HasActed is true once the player has acted since the last raise
	HasActed bool `json:"hasActed"`

	IsDealer     bool `json:"isDealer"`
	IsSmallBlind bool `json:"isSmallBlind"`
	IsBigBlind   bool `json:"isBigBlind"`

	BestHand *handanalyzer.HandRank `json:"bestHand,omitempty"`
}

// live is true if the player can still win the pot
func (p *Player) live() bool {
	return p.Active && !p.Folded
}

// canAct is true if the player still has decisions to make this hand
func (p *Player) canAct() bool {
	return p.live() && !p.AllIn
}

// commit moves up to amount from the stack into the current bet
// Returns what was actually moved.
func (p *Player) commit(amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}

	p.Chips -= amount
	p.Bet += amount
	if p.Chips == 0 {
		p.AllIn = true
	}

	return amount
}

// newHand clears everything from the previous hand
func (p *Player) newHand() {
	p.Hole = make(deck.Hand, 0, 2)
	p.Bet = 0
	p.Folded = false
	p.AllIn = false
	p.Active = p.Chips > 0
	p.HasActed = false
	p.IsDealer = false
	p.IsSmallBlind = false
	p.IsBigBlind = false
	p.BestHand = nil
}

func (p *Player) clone() *Player {
	c := *p
	c.Hole = p.Hole.Clone()
	if p.BestHand != nil {
		rank := *p.BestHand
		rank.Cards = p.BestHand.Cards.Clone()
		if p.BestHand.Kickers != nil {
			rank.Kickers = make([]int, len(p.BestHand.Kickers))
			copy(rank.Kickers, p.BestHand.Kickers)
		}
		c.BestHand = &rank
	}

	return &c
}
