package game

import "errors"

// Validation and authorization errors are reported privately to the requester
// only; state is never mutated before they are checked. Stale or late events
// (a timer firing after its round settled, a guess arriving after settlement)
// are silent no-ops, never errors.
var (
	ErrGameNotInProgress = errors.New("game not in progress")
	ErrNotHost           = errors.New("only the host can start the game")
	ErrNotEnoughPlayers  = errors.New("need at least 2 players to start")
	ErrAlreadyStarted    = errors.New("game already started")
	ErrNotYourTurn       = errors.New("not your turn to submit a word")
	ErrWordTooShort      = errors.New("word must be at least 3 letters long")
	ErrOwnWordGuess      = errors.New("you cannot guess your own word")
	ErrOwnWordHint       = errors.New("you cannot use hints for your own word")
	ErrNoWordInPlay      = errors.New("no word in play")
	ErrPlayerNotInRoom   = errors.New("player not in room")
)
