package mux

import (
	"holdem-server/pkg/poker/action"
	"holdem-server/pkg/poker/texasholdem"
	"holdem-server/pkg/room"
	"net/http"

	"github.com/sirupsen/logrus"
)

type getTableResponse struct {
	Tables []string `json:"tables"`
}

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := m.pitBoss.Tables()
		tables := make([]string, len(ids))
		for i, id := range ids {
			tables[i] = id.String()
		}

		writeJSON(w, http.StatusOK, getTableResponse{Tables: tables})
	}
}

type postTablePayload struct {
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		dealer, err := m.pitBoss.CreateTable(pp.SmallBlind, pp.BigBlind)
		if err != nil {
			writeTableError(w, err)
			return
		}

		ts, err := dealer.State(r.Context())
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ts)
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts, err := dealerFromContext(r).State(r.Context())
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ts)
	}
}

func (m *Mux) deleteTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.pitBoss.CloseTable(dealerFromContext(r).UUID); err != nil {
			writeTableError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// exec runs fn on the table's dealer and writes the new table state
func (m *Mux) exec(w http.ResponseWriter, r *http.Request, fn room.GameFunc) {
	dealer := dealerFromContext(r)
	ts, err := dealer.Exec(r.Context(), fn)
	if err != nil {
		m.logger.WithFields(logrus.Fields{
			"table": dealer.UUID.String(),
			"path":  r.URL.Path,
		}).WithError(err).Debug("table request rejected")
		writeTableError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ts)
}

type postPlayerPayload struct {
	Name string `json:"name"`
	Seat int    `json:"seat"`
}

func (m *Mux) postTableUUIDPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postPlayerPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		m.exec(w, r, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
			return game.AddPlayer(pp.Name, pp.Seat)
		})
	}
}

type postBotPayload struct {
	Tier string `json:"tier"`
	Seat int    `json:"seat"`
}

func (m *Mux) postTableUUIDBot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postBotPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		m.exec(w, r, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
			return game.AddBot(pp.Tier, pp.Seat)
		})
	}
}

func (m *Mux) deleteTableUUIDSeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seat, err := seatVar(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.exec(w, r, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
			return game.RemovePlayer(seat)
		})
	}
}

func (m *Mux) postTableUUIDHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.exec(w, r, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
			return game.StartNewHand()
		})
	}
}

type postActionPayload struct {
	Seat   int           `json:"seat"`
	Action action.Action `json:"action"`
	Amount int           `json:"amount"`
}

func (m *Mux) postTableUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postActionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		m.exec(w, r, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
			return game.PlayerAction(pp.Seat, pp.Action, pp.Amount)
		})
	}
}

func (m *Mux) getTableUUIDActions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seat, err := seatVar(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		var actions *texasholdem.Actions
		var actionsErr error
		if err := dealerFromContext(r).Read(r.Context(), func(game *texasholdem.Game) {
			actions, actionsErr = game.ActionsForSeat(seat)
		}); err != nil {
			writeTableError(w, err)
			return
		}

		if actionsErr != nil {
			writeTableError(w, actionsErr)
			return
		}

		writeJSON(w, http.StatusOK, actions)
	}
}

func (m *Mux) postTableUUIDBots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.exec(w, r, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
			return game.ProcessBotTurns()
		})
	}
}

func (m *Mux) postTableUUIDShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.exec(w, r, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
			return game.EvaluateWinners()
		})
	}
}

func (m *Mux) postTableUUIDReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.exec(w, r, func(game *texasholdem.Game) (*texasholdem.GameState, error) {
			return game.ResetGame()
		})
	}
}
