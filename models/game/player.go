package game

import "fmt"

// Player is owned exclusively by its room: created on join, mutated by
// scoring/streak events, removed on disconnect. The ID is the socket
// connection id and is stable for the lifetime of the connection.
type Player struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Score        int           `json:"score"`
	IsHost       bool          `json:"isHost"`
	Avatar       string        `json:"avatar"`
	Streak       int           `json:"streak"`
	Achievements []Achievement `json:"achievements"`
}

func NewPlayer(id, name string, isHost bool) *Player {
	return &Player{
		ID:           id,
		Name:         name,
		IsHost:       isHost,
		Avatar:       fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", name),
		Achievements: []Achievement{},
	}
}

// Achievement is one unlocked achievement on a player record. The full set is
// retained for end-of-game summaries; only newly unlocked ones are notified.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// LeaderboardEntry is one row of the final game-ended leaderboard.
type LeaderboardEntry struct {
	PlayerID     string        `json:"playerId"`
	Name         string        `json:"name"`
	Score        int           `json:"score"`
	Achievements []Achievement `json:"achievements"`
	MaxStreak    int           `json:"maxStreak"`
}
