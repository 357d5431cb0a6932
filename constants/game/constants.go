package game_constants

import "time"

const MaxGameRounds = 5
const MinPlayersToStart = 2
const MaxPlayersLimit = 8
const MinWordLength = 3

// Scoring constants
const (
	FirstGuessBase   = 10
	SecondGuessBase  = 8
	LaterGuessBase   = 5
	LengthMultiplier = 10

	HintCost     = 10
	NoGuessBonus = 5
)

// Settle delays between a turn's settlement broadcast and the next turn
// starting, so clients have time to display the outcome notices.
const (
	AllGuessedSettleDelay = 2 * time.Second
	RoundEndedSettleDelay = 3 * time.Second
)

// Achievement thresholds
const (
	HighScorerThreshold = 100
	StreakThreshold3    = 3
	StreakThreshold5    = 5
)
