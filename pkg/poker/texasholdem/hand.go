package texasholdem

import (
	"holdem-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

const holeCards = 2

// StartNewHand shuffles, deals two cards to every funded player and posts the blinds
func (g *Game) StartNewHand() (*GameState, error) {
	s := g.state
	if s.Phase.InHand() {
		return nil, ErrHandInProgress
	}

	funded := 0
	for _, p := range s.Players {
		if p.Chips > 0 {
			funded++
		}
	}

	if funded < 2 {
		return nil, ErrNotEnoughPlayers
	}

	s.HandNumber++
	s.Community = make(deck.Hand, 0, 5)
	s.Pot = 0
	s.CurrentBet = 0
	s.LastRaiserIndex = -1
	s.Showdown = false
	s.Winners = nil
	s.LastAction = nil

	for _, p := range s.Players {
		p.newHand()
	}

	s.Deck = deck.New()
	s.Deck.Shuffle(g.rng)
	s.DeckCursor = 0

	dealer := g.options.DealerPolicy.chooseDealer(s.Players, s.DealerSeat)
	smallBlind := g.nextIndex(dealer, (*Player).live)
	bigBlind := g.nextIndex(smallBlind, (*Player).live)

	s.Players[dealer].IsDealer = true
	s.Players[smallBlind].IsSmallBlind = true
	s.Players[bigBlind].IsBigBlind = true
	s.DealerSeat = s.Players[dealer].Seat
	s.SmallBlindSeat = s.Players[smallBlind].Seat
	s.BigBlindSeat = s.Players[bigBlind].Seat

	// one card at a time, starting left of the dealer
	for i := 0; i < holeCards; i++ {
		idx := dealer
		for n := 0; n < funded; n++ {
			idx = g.nextIndex(idx, (*Player).live)
			s.Players[idx].Hole.AddCard(g.draw())
		}
	}

	g.post(smallBlind, s.SmallBlind)
	g.post(bigBlind, s.BigBlind)
	s.LastRaiseSize = s.BigBlind
	s.LastRaiserIndex = bigBlind

	s.Phase = PreFlop
	s.CurrentPlayerIndex = g.nextIndex(bigBlind, (*Player).canAct)

	g.logger.WithFields(logrus.Fields{
		"hand":   s.HandNumber,
		"dealer": s.DealerSeat,
		"phase":  s.Phase,
	}).Info("new hand")

	// blinds can put everyone all in
	if g.roundComplete() {
		g.endRound()
	}

	return g.State(), nil
}

func (g *Game) post(idx int, blind int) {
	s := g.state
	p := s.Players[idx]
	posted := p.commit(blind)
	s.Pot += posted
	if p.Bet > s.CurrentBet {
		s.CurrentBet = p.Bet
	}
}

// draw deals the next card
// A hand uses at most 16 cards, so running out is a bug.
func (g *Game) draw() deck.Card {
	card, err := g.state.Deck.Draw()
	if err != nil {
		panic(err)
	}

	g.state.DeckCursor = g.state.Deck.Cursor()
	return card
}

func (g *Game) dealCommunity(n int) {
	g.draw() // burn
	for i := 0; i < n; i++ {
		g.state.Community.AddCard(g.draw())
	}
}

// nextIndex returns the first player after from, wrapping, that matches
// Returns -1 if nobody does.
func (g *Game) nextIndex(from int, match func(*Player) bool) int {
	players := g.state.Players
	n := len(players)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if match(players[idx]) {
			return idx
		}
	}

	return -1
}

func (g *Game) count(match func(*Player) bool) int {
	n := 0
	for _, p := range g.state.Players {
		if match(p) {
			n++
		}
	}

	return n
}

func (g *Game) dealerIndex() int {
	return g.state.indexOfSeat(g.state.DealerSeat)
}
