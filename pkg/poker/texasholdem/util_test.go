package texasholdem

import (
	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/action"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func setupNewGame(t *testing.T, opts Options, seats ...int) *Game {
	t.Helper()

	game, err := NewGame(logrus.StandardLogger(), opts, rng.NewSeeded(1))
	if err != nil {
		panic(err)
	}

	for _, seat := range seats {
		_, err := game.AddPlayer(playerName(seat), seat)
		assert.NoError(t, err)
	}

	return game
}

func setupNewHand(t *testing.T, seats ...int) *Game {
	t.Helper()

	game := setupNewGame(t, DefaultOptions(), seats...)
	_, err := game.StartNewHand()
	assert.NoError(t, err)

	return game
}

func playerName(seat int) string {
	return []string{"Alice", "Bob", "Carol", "Dave"}[seat]
}

func assertAction(t *testing.T, game *Game, seat int, act action.Action, msgAndArgs ...interface{}) {
	t.Helper()
	assertActionAndAmount(t, game, seat, act, 0, msgAndArgs...)
}

func assertActionAndAmount(t *testing.T, game *Game, seat int, act action.Action, amount int, msgAndArgs ...interface{}) {
	t.Helper()
	state, err := game.PlayerAction(seat, act, amount)
	assert.NoError(t, err, msgAndArgs...)
	assert.NotNil(t, state, msgAndArgs...)
}

func assertActionFailed(t *testing.T, game *Game, seat int, act action.Action, amount int, expectedErr error, msgAndArgs ...interface{}) {
	t.Helper()

	before := game.State()
	state, err := game.PlayerAction(seat, act, amount)
	assert.Equal(t, expectedErr, err, msgAndArgs...)
	assert.Nil(t, state, msgAndArgs...)
	assert.Equal(t, before, game.State(), msgAndArgs...)
}

func assertCurrentSeat(t *testing.T, game *Game, seat int, msgAndArgs ...interface{}) {
	t.Helper()

	p := game.State().CurrentPlayer()
	if assert.NotNil(t, p, msgAndArgs...) {
		assert.Equal(t, seat, p.Seat, msgAndArgs...)
	}
}

// setCards replaces the dealt cards so a showdown has a known outcome
func setCards(game *Game, community string, holes ...string) {
	for i, hole := range holes {
		game.state.Players[i].Hole = deck.CardsFromString(hole)
	}

	game.state.Community = deck.CardsFromString(community)
}
