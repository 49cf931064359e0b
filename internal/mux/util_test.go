package mux

import (
	"encoding/json"
	"errors"
	"fmt"
	"holdem-server/pkg/poker/texasholdem"
	"holdem-server/pkg/room"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestMux() *Mux {
	opts := texasholdem.DefaultOptions()
	opts.BotSimulations = 50
	pitBoss := room.NewPitBoss(logrus.StandardLogger(), opts, 1)

	return NewMux("v1.2.3", pitBoss, Config{Seed: 1, OddsSimulations: 500}, logrus.StandardLogger())
}

func Test_writeTableError(t *testing.T) {
	a := assert.New(t)

	assertError := func(err error, statusCode int, message string) {
		t.Helper()

		w := httptest.NewRecorder()
		writeTableError(w, err)
		a.Equal(statusCode, w.Code)
		a.Equal("application/json", w.Header().Get("Content-Type"))

		var resp errorResponse
		a.NoError(json.NewDecoder(w.Body).Decode(&resp))
		a.Equal(statusCode, resp.StatusCode)
		a.Equal(message, resp.Message)
	}

	assertError(texasholdem.ErrNotYourTurn, 400, "it is not your turn")
	assertError(fmt.Errorf("bot turn for seat 1: %w", texasholdem.ErrCannotCheck), 400, "bot turn for seat 1: you cannot check when there is a bet to call")
	assertError(room.ErrTableNotFound, 404, "Not Found")
	assertError(room.ErrDealerClosed, 404, "Not Found")
	assertError(texasholdem.ErrBotLoopCeiling, 500, "Internal Server Error")
	assertError(errors.New("boom"), 500, "Internal Server Error")
}
