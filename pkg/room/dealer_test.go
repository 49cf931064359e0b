package room

import (
	"context"
	"errors"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/texasholdem"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestPitBoss() *PitBoss {
	opts := texasholdem.DefaultOptions()
	opts.BotSimulations = 50
	return NewPitBoss(logrus.StandardLogger(), opts, 1)
}

func newTestDealer(t *testing.T) (*PitBoss, *Dealer) {
	t.Helper()

	p := newTestPitBoss()
	d, err := p.CreateTable(10, 20)
	assert.NoError(t, err)
	t.Cleanup(p.EndShift)

	return p, d
}

func TestDealer_AddClient(t *testing.T) {
	_, d := newTestDealer(t)
	c := NewClient(nil)
	c2 := NewClient(nil)

	d.AddClient(c)
	d.AddClient(c2)
	assert.Len(t, d.Clients(), 2)

	// each new client is sent the table
	msg := receive(t, c)
	assert.Equal(t, "state", msg.Key)
	assert.Equal(t, d.UUID.String(), msg.Data.(*TableState).UUID)

	assert.False(t, d.RemoveClient(c))
	assert.True(t, d.RemoveClient(c2))
}

func TestDealer_Exec(t *testing.T) {
	a := assert.New(t)
	_, d := newTestDealer(t)
	ctx := context.Background()

	c := NewClient(nil)
	d.AddClient(c)
	receive(t, c)

	ts, err := d.Exec(ctx, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
		return game.AddPlayer("Alice", 0)
	})
	a.NoError(err)
	a.Len(ts.State.Players, 1)

	// subscribers see every change
	msg := receive(t, c)
	a.Equal("state", msg.Key)
	a.Len(msg.Data.(*TableState).State.Players, 1)

	// errors are returned and not broadcast
	ts, err = d.Exec(ctx, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
		return game.AddPlayer("Bob", 0)
	})
	a.Equal(texasholdem.ErrSeatTaken, err)
	a.Nil(ts)
	a.Empty(c.SendChan())

	_, err = d.Exec(ctx, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
		return game.AddPlayer("Bob", 1)
	})
	a.NoError(err)
	receive(t, c)

	ts, err = d.Exec(ctx, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
		return game.StartNewHand()
	})
	a.NoError(err)
	a.Equal(texasholdem.PreFlop, ts.State.Phase)
	if a.Len(ts.Log, 1) {
		a.Equal("hand #1 started", ts.Log[0].Message)
	}

	ts, err = d.Exec(ctx, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
		return game.PlayerAction(1, "fold", 0)
	})
	a.NoError(err)
	a.Equal(texasholdem.Finished, ts.State.Phase)
	if a.Len(ts.Log, 3) {
		a.Equal("Bob folded", ts.Log[1].Message)
		a.Equal("Alice won ${30}", ts.Log[2].Message)
	}

	state, err := d.State(ctx)
	a.NoError(err)
	a.Equal(ts, state)
}

func TestDealer_Exec_partialChange(t *testing.T) {
	a := assert.New(t)
	_, d := newTestDealer(t)
	ctx := context.Background()

	c := NewClient(nil)
	d.AddClient(c)
	receive(t, c)

	for seat, name := range []string{"Alice", "Bob"} {
		_, err := d.Exec(ctx, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
			return game.AddPlayer(name, seat)
		})
		a.NoError(err)
		receive(t, c)
	}

	// the hand starts before the failure, so subscribers still hear about it
	ts, err := d.Exec(ctx, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
		if _, err := game.StartNewHand(); err != nil {
			return nil, err
		}

		return nil, errors.New("bot failed")
	})
	a.EqualError(err, "bot failed")
	a.Nil(ts)

	msg := receive(t, c)
	a.Equal(texasholdem.PreFlop, msg.Data.(*TableState).State.Phase)

	state, err := d.State(ctx)
	a.NoError(err)
	if a.Len(state.Log, 1) {
		a.Equal("hand #1 started", state.Log[0].Message)
	}
}

func TestDealer_Exec_serialized(t *testing.T) {
	a := assert.New(t)
	_, d := newTestDealer(t)
	ctx := context.Background()

	// unguarded access from many goroutines would trip the race detector
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = d.State(ctx)
			_, _ = d.Exec(ctx, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
				return game.CreateGame(10, 20)
			})
		}()
	}

	wg.Wait()
	ts, err := d.State(ctx)
	a.NoError(err)
	a.Empty(ts.State.Players)
}

func TestDealer_EndShift(t *testing.T) {
	a := assert.New(t)
	p := newTestPitBoss()
	d, err := p.CreateTable(10, 20)
	a.NoError(err)

	c := NewClient(nil)
	d.AddClient(c)

	a.NoError(p.CloseTable(d.UUID))
	d.EndShift()

	select {
	case reason := <-c.Close:
		a.Equal("table closed", reason)
	case <-time.After(time.Second):
		a.Fail("client was not closed")
	}

	_, err = d.Exec(context.Background(), func(game *texasholdem.Game) (*texasholdem.GameState, error) {
		return game.State(), nil
	})
	a.Equal(ErrDealerClosed, err)
}

func TestDealer_Exec_cancelled(t *testing.T) {
	_, d := newTestDealer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// either the job ran before the cancellation was noticed or it was abandoned
	_, err := d.Exec(ctx, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
		return game.State(), nil
	})
	if err != nil {
		assert.True(t, errors.Is(err, context.Canceled))
	}
}

func TestPitBoss(t *testing.T) {
	a := assert.New(t)
	p := newTestPitBoss()
	defer p.EndShift()

	d, err := p.CreateTable(10, 20)
	a.NoError(err)

	found, err := p.Dealer(d.UUID)
	a.NoError(err)
	a.Same(d, found)
	a.Equal([]uuid.UUID{d.UUID}, p.Tables())

	_, err = p.CreateTable(20, 10)
	a.Equal(texasholdem.ErrInvalidBlinds, err)
	a.Len(p.Tables(), 1)

	_, err = p.Dealer(uuid.New())
	a.Equal(ErrTableNotFound, err)

	a.NoError(p.CloseTable(d.UUID))
	a.Equal(ErrTableNotFound, p.CloseTable(d.UUID))
	a.Empty(p.Tables())
}

func TestPitBoss_seedPerTable(t *testing.T) {
	a := assert.New(t)

	p := NewPitBoss(logrus.StandardLogger(), texasholdem.DefaultOptions(), 5)
	a.Equal(int64(5), p.nextSeed())
	a.Equal(int64(6), p.nextSeed())
	a.Equal(int64(0), NewPitBoss(logrus.StandardLogger(), texasholdem.DefaultOptions(), 0).nextSeed())

	holeCards := func(p *PitBoss) deck.Hand {
		t.Helper()

		d, err := p.CreateTable(10, 20)
		a.NoError(err)

		ts, err := d.Exec(context.Background(), func(game *texasholdem.Game) (*texasholdem.GameState, error) {
			if _, err := game.AddPlayer("Alice", 0); err != nil {
				return nil, err
			}

			if _, err := game.AddPlayer("Bob", 1); err != nil {
				return nil, err
			}

			return game.StartNewHand()
		})
		a.NoError(err)

		return deck.Join(ts.State.Players[0].Hole, ts.State.Players[1].Hole)
	}

	p1 := newTestPitBoss()
	defer p1.EndShift()
	p2 := newTestPitBoss()
	defer p2.EndShift()

	first := holeCards(p1)
	a.Equal(first, holeCards(p2))
	a.NotEqual(first, holeCards(p1))
}

func receive(t *testing.T, c *Client) *Response {
	t.Helper()

	select {
	case msg := <-c.SendChan():
		return msg.(*Response)
	case <-time.After(time.Second):
		assert.Fail(t, "no message received")
		return &Response{}
	}
}
