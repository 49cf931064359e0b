package mux

import (
	"context"
	"holdem-server/pkg/room"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	ctxDealerKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  Config
	version string
	pitBoss *room.PitBoss
	logger  logrus.FieldLogger
}

// Config is what the HTTP layer needs beyond the tables themselves
type Config struct {
	// Seed pins the odds simulations when non-zero
	Seed int64

	// OddsSimulations is the default trial count for POST /odds
	OddsSimulations int
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss, cfg Config, logger logrus.FieldLogger) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
		config:  cfg,
		logger:  logger,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/odds").Handler(this.postOdds())
		r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
		r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())
	}

	{
		tr := this.Router.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		tr.Use(this.tableMiddleware)

		tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
		tr.Methods(http.MethodDelete).Path("").Handler(this.deleteTableUUID())
		tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())
		tr.Methods(http.MethodPost).Path("/player").Handler(this.postTableUUIDPlayer())
		tr.Methods(http.MethodPost).Path("/bot").Handler(this.postTableUUIDBot())
		tr.Methods(http.MethodDelete).Path("/seat/{seat:[0-9]+}").Handler(this.deleteTableUUIDSeat())
		tr.Methods(http.MethodPost).Path("/hand").Handler(this.postTableUUIDHand())
		tr.Methods(http.MethodPost).Path("/action").Handler(this.postTableUUIDAction())
		tr.Methods(http.MethodGet).Path("/actions/{seat:[0-9]+}").Handler(this.getTableUUIDActions())
		tr.Methods(http.MethodPost).Path("/bots").Handler(this.postTableUUIDBots())
		tr.Methods(http.MethodPost).Path("/showdown").Handler(this.postTableUUIDShowdown())
		tr.Methods(http.MethodPost).Path("/reset").Handler(this.postTableUUIDReset())
	}

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(gmux.Vars(r)["uuid"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		dealer, err := m.pitBoss.Dealer(id)
		if err != nil {
			writeTableError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxDealerKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func dealerFromContext(r *http.Request) *room.Dealer {
	return r.Context().Value(ctxDealerKey).(*room.Dealer)
}
