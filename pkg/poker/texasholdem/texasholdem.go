// Package texasholdem is a no-limit Texas Hold'em table for up to four seats
package texasholdem

import (
	"fmt"
	"holdem-server/internal/rng"
	"holdem-server/internal/util"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/bot"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// MaxSeats is the number of seats at a table
const MaxSeats = 4

// Game is a single table
// A Game is not safe for concurrent use; callers must serialize access.
type Game struct {
	logger  logrus.FieldLogger
	options Options
	rng     rng.Generator
	bots    *bot.Engine
	state   *GameState
}

// Options configures the table
type Options struct {
	SmallBlind       int
	BigBlind         int
	StartingStack    int
	DealerPolicy     DealerPolicy
	MaxBotIterations int
	BotSimulations   int
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind:       10,
		BigBlind:         20,
		StartingStack:    1000,
		DealerPolicy:     LowestSeat,
		MaxBotIterations: 100,
		BotSimulations:   3000,
	}
}

// NewGame returns an empty table
func NewGame(logger logrus.FieldLogger, opts Options, r rng.Generator) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	opts.DealerPolicy, _ = DealerPolicyFromString(string(opts.DealerPolicy))

	g := &Game{
		logger:  logger,
		options: opts,
		rng:     r,
		bots:    bot.New(r, opts.BotSimulations),
	}

	if _, err := g.CreateGame(opts.SmallBlind, opts.BigBlind); err != nil {
		return nil, err
	}

	return g, nil
}

func validateOptions(opts Options) error {
	if err := validateBlinds(opts.SmallBlind, opts.BigBlind); err != nil {
		return err
	}

	if opts.StartingStack <= 0 || opts.MaxBotIterations <= 0 {
		return ErrInvalidOptions
	}

	if _, err := DealerPolicyFromString(string(opts.DealerPolicy)); err != nil {
		return err
	}

	return nil
}

func validateBlinds(smallBlind, bigBlind int) error {
	if smallBlind <= 0 || bigBlind < smallBlind {
		return ErrInvalidBlinds
	}

	return nil
}

// Options returns the options the table was created with
func (g *Game) Options() Options {
	return g.options
}

// State returns a copy of the table
func (g *Game) State() *GameState {
	return g.state.clone()
}

// CreateGame clears the table and sets the blinds
func (g *Game) CreateGame(smallBlind, bigBlind int) (*GameState, error) {
	if err := validateBlinds(smallBlind, bigBlind); err != nil {
		return nil, err
	}

	g.options.SmallBlind = smallBlind
	g.options.BigBlind = bigBlind
	g.state = newGameState(smallBlind, bigBlind)

	g.logger.WithFields(logrus.Fields{
		"smallBlind": smallBlind,
		"bigBlind":   bigBlind,
	}).Info("table created")

	return g.State(), nil
}

// AddPlayer seats a human player
func (g *Game) AddPlayer(name string, seat int) (*GameState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}

	if err := g.validateNewSeat(seat); err != nil {
		return nil, err
	}

	g.seat(&Player{
		Seat:  seat,
		Name:  name,
		Tier:  bot.None,
		Chips: g.options.StartingStack,
	})

	return g.State(), nil
}

// AddBot seats a computer player of the tier
func (g *Game) AddBot(tier string, seat int) (*GameState, error) {
	botTier, err := bot.TierFromString(tier)
	if err != nil {
		return nil, ErrInvalidTier
	}

	if err := g.validateNewSeat(seat); err != nil {
		return nil, err
	}

	g.seat(&Player{
		Seat:  seat,
		Name:  fmt.Sprintf("%s (%s)", util.GetRandomName(g.rng), botTier),
		IsBot: true,
		Tier:  botTier,
		Chips: g.options.StartingStack,
	})

	return g.State(), nil
}

func (g *Game) validateNewSeat(seat int) error {
	if g.state.Phase.InHand() {
		return ErrHandInProgress
	}

	if seat < 0 || seat >= MaxSeats {
		return ErrInvalidSeat
	}

	if g.state.indexOfSeat(seat) >= 0 {
		return ErrSeatTaken
	}

	return nil
}

func (g *Game) seat(p *Player) {
	p.Hole = make(deck.Hand, 0, 2)
	g.state.Players = append(g.state.Players, p)
	sort.Slice(g.state.Players, func(i, j int) bool {
		return g.state.Players[i].Seat < g.state.Players[j].Seat
	})

	g.logger.WithFields(logrus.Fields{
		"seat": p.Seat,
		"bot":  p.IsBot,
	}).Infof("%s sat down", p.Name)
}

// RemovePlayer frees the seat between hands
func (g *Game) RemovePlayer(seat int) (*GameState, error) {
	if g.state.Phase.InHand() {
		return nil, ErrHandInProgress
	}

	i := g.state.indexOfSeat(seat)
	if i < 0 {
		return nil, ErrSeatNotFound
	}

	p := g.state.Players[i]
	g.state.Players = append(g.state.Players[:i], g.state.Players[i+1:]...)
	g.logger.WithField("seat", seat).Infof("%s left the table", p.Name)

	return g.State(), nil
}

// ResetGame gives every player a fresh stack and waits for the next hand
func (g *Game) ResetGame() (*GameState, error) {
	s := g.state
	for _, p := range s.Players {
		p.Chips = g.options.StartingStack
		p.newHand()
		p.Active = false
	}

	s.Community = make(deck.Hand, 0, 5)
	s.Pot = 0
	s.CurrentBet = 0
	s.LastRaiseSize = 0
	s.LastRaiserIndex = -1
	s.Phase = Waiting
	s.CurrentPlayerIndex = -1
	s.DealerSeat = -1
	s.SmallBlindSeat = -1
	s.BigBlindSeat = -1
	s.Deck = nil
	s.DeckCursor = 0
	s.Showdown = false
	s.Winners = nil
	s.LastAction = nil

	g.logger.Info("table reset")
	return g.State(), nil
}
