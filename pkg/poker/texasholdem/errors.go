package texasholdem

import (
	"errors"
)

// InvalidOperationError is returned when a caller asks the table to do something the rules do not allow
// No state is changed when one is returned.
type InvalidOperationError string

func (e InvalidOperationError) Error() string {
	return string(e)
}

// rule violations
var (
	ErrInvalidSeat       = InvalidOperationError("seat must be between 0 and 3")
	ErrSeatTaken         = InvalidOperationError("seat is already taken")
	ErrSeatNotFound      = InvalidOperationError("no player in that seat")
	ErrBlankName         = InvalidOperationError("name cannot be blank")
	ErrInvalidTier       = InvalidOperationError("bot tier must be easy, medium or hard")
	ErrInvalidBlinds     = InvalidOperationError("blinds must be positive and the small blind cannot exceed the big blind")
	ErrNotEnoughPlayers  = InvalidOperationError("at least two players with chips are required")
	ErrHandInProgress    = InvalidOperationError("a hand is in progress")
	ErrNoHandInProgress  = InvalidOperationError("no hand is in progress")
	ErrNotYourTurn       = InvalidOperationError("it is not your turn")
	ErrPlayerNotActive   = InvalidOperationError("you are not in this hand")
	ErrPlayerFolded      = InvalidOperationError("you have already folded")
	ErrCannotCheck       = InvalidOperationError("you cannot check when there is a bet to call")
	ErrRaiseNotPositive  = InvalidOperationError("raise must be more than your current bet")
	ErrUnknownAction     = InvalidOperationError("unknown action")
	ErrInvalidOptions    = InvalidOperationError("starting stack and bot iterations must be positive")
	ErrUnknownDealerRule = InvalidOperationError("dealer policy must be lowest-seat or rotate")
)

// ErrBotLoopCeiling is returned when bots keep acting past the iteration ceiling
var ErrBotLoopCeiling = errors.New("bot turns exceeded the iteration ceiling")

// IsInvalidOperation returns true if err is, or wraps, an InvalidOperationError
func IsInvalidOperation(err error) bool {
	var ioe InvalidOperationError
	return errors.As(err, &ioe)
}
