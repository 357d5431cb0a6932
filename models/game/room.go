package game

import "time"

type RoomStatus string

const (
	StatusWaiting  RoomStatus = "waiting"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

// RoomConfig is the validated create-room request.
type RoomConfig struct {
	Name         string `json:"roomName"`
	IsPublic     bool   `json:"isPublic"`
	TimePerRound int    `json:"timePerRound"` // seconds
	MaxPlayers   int    `json:"maxPlayers"`
	Difficulty   string `json:"difficulty"`
}

// RoomSummary is the reduced form of a public waiting room used by the
// list-public-rooms endpoint.
type RoomSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
	Difficulty string `json:"difficulty"`
}

// CorrectGuess is one entry of the ordered per-turn correct-guess log.
// Position in the log determines the guesser's score.
type CorrectGuess struct {
	PlayerID  string    `json:"playerId"`
	Timestamp time.Time `json:"timestamp"`
}
