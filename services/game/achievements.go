package game

import (
	game_constants "Scramblio/constants/game"
	models "Scramblio/models/game"
)

// EvaluateAchievements compares a player's unlocked set against the fixed
// threshold rules and returns only the newly unlocked subset. Each rule fires
// at most once per player per game: streak-3 unlocks the moment the streak
// first equals 3 and never again, even if the streak later returns to 3.
func EvaluateAchievements(unlocked []models.Achievement, score, streak int) []models.Achievement {
	var fresh []models.Achievement

	if len(unlocked) == 0 {
		fresh = append(fresh, models.Achievement{
			ID:          "first-correct",
			Name:        "First Success",
			Description: "Got your first word correct!",
			Icon:        "🎯",
		})
	}

	if score >= game_constants.HighScorerThreshold && !hasAchievement(unlocked, "high-scorer") {
		fresh = append(fresh, models.Achievement{
			ID:          "high-scorer",
			Name:        "High Scorer",
			Description: "Scored 100+ points in a single round!",
			Icon:        "⭐",
		})
	}

	if streak == game_constants.StreakThreshold3 && !hasAchievement(unlocked, "streak-3") {
		fresh = append(fresh, models.Achievement{
			ID:          "streak-3",
			Name:        "On Fire",
			Description: "Got 3 words correct in a row!",
			Icon:        "🔥",
		})
	}

	if streak == game_constants.StreakThreshold5 && !hasAchievement(unlocked, "streak-5") {
		fresh = append(fresh, models.Achievement{
			ID:          "streak-5",
			Name:        "Unstoppable",
			Description: "Got 5 words correct in a row!",
			Icon:        "🚀",
		})
	}

	return fresh
}

func hasAchievement(unlocked []models.Achievement, id string) bool {
	for _, a := range unlocked {
		if a.ID == id {
			return true
		}
	}
	return false
}
