package room

import (
	"errors"
	"holdem-server/internal/rng"
	"holdem-server/pkg/poker/texasholdem"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrTableNotFound is returned for an unknown table identifier
var ErrTableNotFound = errors.New("table not found")

// PitBoss keeps track of every open table
type PitBoss struct {
	logger  logrus.FieldLogger
	options texasholdem.Options
	seed    int64
	opened  int64

	dealers map[uuid.UUID]*Dealer
	lock    sync.RWMutex
}

// NewPitBoss returns a registry that opens tables with opts
// A non-zero seed makes every table it opens reproducible. Each table
// derives its own seed from it in the order the tables are opened.
func NewPitBoss(logger logrus.FieldLogger, opts texasholdem.Options, seed int64) *PitBoss {
	return &PitBoss{
		logger:  logger,
		options: opts,
		seed:    seed,
		dealers: make(map[uuid.UUID]*Dealer),
	}
}

// CreateTable opens a table with the blinds and starts its dealer
func (p *PitBoss) CreateTable(smallBlind, bigBlind int) (*Dealer, error) {
	id := uuid.New()
	opts := p.options
	opts.SmallBlind = smallBlind
	opts.BigBlind = bigBlind

	game, err := texasholdem.NewGame(p.logger.WithField("table", id.String()), opts, rng.New(p.nextSeed()))
	if err != nil {
		return nil, err
	}

	dealer := NewDealer(p.logger, id, game)
	dealer.StartShift()

	p.lock.Lock()
	p.dealers[id] = dealer
	p.lock.Unlock()

	p.logger.WithField("table", id.String()).Info("table opened")
	return dealer, nil
}

func (p *PitBoss) nextSeed() int64 {
	if p.seed == 0 {
		return 0
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	seed := p.seed + p.opened
	p.opened++
	if seed == 0 {
		// zero would mean crypto
		seed = p.seed + p.opened
		p.opened++
	}

	return seed
}

// Dealer returns the dealer for the table
func (p *PitBoss) Dealer(id uuid.UUID) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, found := p.dealers[id]
	if !found {
		return nil, ErrTableNotFound
	}

	return dealer, nil
}

// CloseTable ends the dealer's shift and forgets the table
func (p *PitBoss) CloseTable(id uuid.UUID) error {
	p.lock.Lock()
	dealer, found := p.dealers[id]
	delete(p.dealers, id)
	p.lock.Unlock()

	if !found {
		return ErrTableNotFound
	}

	dealer.EndShift()
	p.logger.WithField("table", id.String()).Info("table closed")
	return nil
}

// Tables returns the identifiers of every open table
func (p *PitBoss) Tables() []uuid.UUID {
	p.lock.RLock()
	defer p.lock.RUnlock()

	ids := make([]uuid.UUID, 0, len(p.dealers))
	for id := range p.dealers {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	return ids
}

// EndShift closes every table
func (p *PitBoss) EndShift() {
	for _, id := range p.Tables() {
		_ = p.CloseTable(id)
	}
}
