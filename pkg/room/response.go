package room

import (
	"holdem-server/pkg/poker/texasholdem"
)

// Response is a message pushed to subscribers
type Response struct {
	Key  string      `json:"key"`
	Data interface{} `json:"data,omitempty"`
}

// TableState is a snapshot of a table for clients
type TableState struct {
	UUID  string                 `json:"uuid"`
	State *texasholdem.GameState `json:"state"`
	Log   []*LogMessage          `json:"log"`
}

func newStateResponse(ts *TableState) *Response {
	return &Response{
		Key:  "state",
		Data: ts,
	}
}
