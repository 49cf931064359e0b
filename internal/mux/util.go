package mux

import (
	"encoding/json"
	"errors"
	"fmt"
	"holdem-server/pkg/poker/texasholdem"
	"holdem-server/pkg/room"
	"net/http"
	"strconv"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func seatVar(r *http.Request) (int, error) {
	seat, err := strconv.Atoi(gmux.Vars(r)["seat"])
	if err != nil {
		return 0, fmt.Errorf("invalid seat: %s", gmux.Vars(r)["seat"])
	}

	return seat, nil
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// writeTableError maps rule violations to 400, unknown tables to 404 and everything else to 500
func writeTableError(w http.ResponseWriter, err error) {
	switch {
	case texasholdem.IsInvalidOperation(err):
		writeJSONError(w, http.StatusBadRequest, err)
	case errors.Is(err, room.ErrTableNotFound), errors.Is(err, room.ErrDealerClosed):
		writeJSONError(w, http.StatusNotFound, nil)
	default:
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
