package room

import (
	"fmt"
	"holdem-server/pkg/poker/texasholdem"
	"time"
)

const logMessageLimit = 25

// LogMessage is a line of table history
type LogMessage struct {
	Seat    int       `json:"seat"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// addLogMessages keeps the most recent messages
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// logMessagesFor describes what changed between two states
func logMessagesFor(before, after *texasholdem.GameState) []*LogMessage {
	now := time.Now()
	messages := make([]*LogMessage, 0)

	if after.HandNumber != before.HandNumber {
		messages = append(messages, &LogMessage{
			Seat:    after.DealerSeat,
			Message: fmt.Sprintf("hand #%d started", after.HandNumber),
			Time:    now,
		})
	}

	if la := after.LastAction; la != nil && (before.LastAction == nil || *la != *before.LastAction || after.HandNumber != before.HandNumber) {
		messages = append(messages, &LogMessage{
			Seat:    la.Seat,
			Message: fmt.Sprintf("%s %s", la.Name, la.Action.LogMessage(la.Amount)),
			Time:    now,
		})
	}

	if before.Phase != texasholdem.Finished && after.Phase == texasholdem.Finished {
		for _, w := range after.Winners {
			msg := fmt.Sprintf("%s won ${%d}", w.Name, w.Amount)
			if w.Hand != "" {
				msg = fmt.Sprintf("%s with %s", msg, w.Hand)
			}

			messages = append(messages, &LogMessage{Seat: w.Seat, Message: msg, Time: now})
		}
	}

	return messages
}
