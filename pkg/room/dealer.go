package room

import (
	"context"
	"errors"
	"holdem-server/pkg/poker/texasholdem"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrDealerClosed is returned when work is sent to a table that has been closed
var ErrDealerClosed = errors.New("table is closed")

// GameFunc runs against a table's game from inside its run loop
type GameFunc func(game *texasholdem.Game) (*texasholdem.GameState, error)

// Dealer owns a single table
// Every call into the game happens on the dealer's run loop, one at a time.
type Dealer struct {
	UUID uuid.UUID

	logger  logrus.FieldLogger
	game    *texasholdem.Game
	clients map[*Client]bool
	lock    sync.RWMutex

	// only touched from the run loop
	logMessages []*LogMessage

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(logger logrus.FieldLogger, id uuid.UUID, game *texasholdem.Game) *Dealer {
	return &Dealer{
		UUID:          id,
		logger:        logger.WithField("table", id.String()),
		game:          game,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
		logMessages:   make([]*LogMessage, 0, logMessageLimit),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift stops the run loop and disconnects every client
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)

		for _, client := range d.Clients() {
			select {
			case client.Close <- "table closed":
			default:
			}
		}
	})
}

type execResult struct {
	state *TableState
	err   error
}

// Exec runs fn on the run loop and waits for it
// Any change to the game is pushed to every subscriber, even when fn fails
// part way through.
func (d *Dealer) Exec(ctx context.Context, fn GameFunc) (*TableState, error) {
	result := make(chan execResult, 1)
	job := func() {
		before := d.game.State()
		after, err := fn(d.game)
		if err != nil {
			if after = d.game.State(); !reflect.DeepEqual(before, after) {
				d.publish(before, after)
			}

			result <- execResult{err: err}
			return
		}

		if after == nil {
			after = d.game.State()
		}

		result <- execResult{state: d.publish(before, after)}
	}

	select {
	case d.execInRunLoop <- job:
	case <-d.close:
		return nil, ErrDealerClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case r := <-result:
		return r.state, r.err
	case <-d.close:
		return nil, ErrDealerClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (d *Dealer) publish(before, after *texasholdem.GameState) *TableState {
	d.addLogMessages(logMessagesFor(before, after))
	ts := d.tableState(after)
	d.broadcast(newStateResponse(ts))
	return ts
}

// Read runs fn on the run loop without publishing anything
// fn must not change the game.
func (d *Dealer) Read(ctx context.Context, fn func(game *texasholdem.Game)) error {
	done := make(chan bool, 1)
	job := func() {
		fn(d.game)
		done <- true
	}

	select {
	case d.execInRunLoop <- job:
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the current table without changing it
func (d *Dealer) State(ctx context.Context) (*TableState, error) {
	var ts *TableState
	if err := d.Read(ctx, func(game *texasholdem.Game) {
		ts = d.tableState(game.State())
	}); err != nil {
		return nil, err
	}

	return ts, nil
}

// NOTE: must only be called from the run loop
func (d *Dealer) tableState(state *texasholdem.GameState) *TableState {
	log := make([]*LogMessage, len(d.logMessages))
	copy(log, d.logMessages)

	return &TableState{
		UUID:  d.UUID.String(),
		State: state,
		Log:   log,
	}
}

// AddClient subscribes a client and sends it the current table
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	d.clients[client] = true
	d.lock.Unlock()

	d.logger.WithField("client", client.String()).Debug("client connected")

	select {
	case d.execInRunLoop <- func() {
		client.Send(newStateResponse(d.tableState(d.game.State())))
	}:
	case <-d.close:
	}
}

// RemoveClient unsubscribes a client
// Returns true if it was the last client.
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	d.logger.WithField("client", client.String()).Debug("client disconnected")
	return nClients == 0
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(msg *Response) {
	for _, client := range d.Clients() {
		if !client.Send(msg) {
			d.logger.WithField("client", client.String()).Warn("client is not keeping up, dropping message")
		}
	}
}
