package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/action"
)

// GameState is everything about the table
// Only Game writes to it; State() hands out copies.
type GameState struct {
	SmallBlind int       `json:"smallBlind"`
	BigBlind   int       `json:"bigBlind"`
	Players    []*Player `json:"players"`
	Community  deck.Hand `json:"community"`
	Pot        int       `json:"pot"`

	CurrentBet      int `json:"currentBet"`
	LastRaiseSize   int `json:"lastRaiseSize"`
	LastRaiserIndex int `json:"lastRaiserIndex"`

	Phase              Phase `json:"phase"`
	CurrentPlayerIndex int   `json:"currentPlayerIndex"`

	DealerSeat     int `json:"dealerSeat"`
	SmallBlindSeat int `json:"smallBlindSeat"`
	BigBlindSeat   int `json:"bigBlindSeat"`

	Deck       *deck.Deck `json:"-"`
	DeckCursor int        `json:"deckCursor"`

	Showdown   bool        `json:"showdown"`
	Winners    []*Winner   `json:"winners"`
	LastAction *LastAction `json:"lastAction"`
	HandNumber int         `json:"handNumber"`
}

// Winner is a share of the pot paid out at the end of a hand
type Winner struct {
	Seat   int    `json:"seat"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`

	// Hand is empty when the pot was uncontested
	Hand string `json:"hand"`
}

// LastAction is the most recent action taken at the table
type LastAction struct {
	Seat   int           `json:"seat"`
	Name   string        `json:"name"`
	Action action.Action `json:"action"`
	Amount int           `json:"amount"`
}

func newGameState(smallBlind, bigBlind int) *GameState {
	return &GameState{
		SmallBlind:         smallBlind,
		BigBlind:           bigBlind,
		Players:            make([]*Player, 0, MaxSeats),
		Community:          make(deck.Hand, 0, 5),
		LastRaiserIndex:    -1,
		Phase:              Waiting,
		CurrentPlayerIndex: -1,
		DealerSeat:         -1,
		SmallBlindSeat:     -1,
		BigBlindSeat:       -1,
	}
}

// CurrentPlayer returns the player whose turn it is, or nil
func (s *GameState) CurrentPlayer() *Player {
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return nil
	}

	return s.Players[s.CurrentPlayerIndex]
}

// PlayerBySeat returns the player in the seat, or nil
func (s *GameState) PlayerBySeat(seat int) *Player {
	if i := s.indexOfSeat(seat); i >= 0 {
		return s.Players[i]
	}

	return nil
}

// TotalChips returns the chips in every stack plus the pot
func (s *GameState) TotalChips() int {
	total := s.Pot
	for _, p := range s.Players {
		total += p.Chips
	}

	return total
}

func (s *GameState) indexOfSeat(seat int) int {
	for i, p := range s.Players {
		if p.Seat == seat {
			return i
		}
	}

	return -1
}

// clone returns a deep copy without the deck
func (s *GameState) clone() *GameState {
	c := *s
	c.Deck = nil

	c.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		c.Players[i] = p.clone()
	}

	c.Community = s.Community.Clone()

	if s.Winners != nil {
		c.Winners = make([]*Winner, len(s.Winners))
		for i, w := range s.Winners {
			winner := *w
			c.Winners[i] = &winner
		}
	}

	if s.LastAction != nil {
		la := *s.LastAction
		c.LastAction = &la
	}

	return &c
}
