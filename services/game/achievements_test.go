package game

import (
	"testing"

	models "Scramblio/models/game"

	"github.com/stretchr/testify/assert"
)

func achievementIDs(list []models.Achievement) []string {
	ids := make([]string, len(list))
	for i, a := range list {
		ids[i] = a.ID
	}
	return ids
}

func TestFirstCorrectFiresOnEmptySet(t *testing.T) {
	fresh := EvaluateAchievements(nil, 40, 1)
	assert.Equal(t, []string{"first-correct"}, achievementIDs(fresh))
}

func TestFirstCorrectDoesNotRepeat(t *testing.T) {
	unlocked := []models.Achievement{{ID: "first-correct"}}
	fresh := EvaluateAchievements(unlocked, 40, 1)
	assert.Empty(t, fresh)
}

func TestHighScorerThreshold(t *testing.T) {
	unlocked := []models.Achievement{{ID: "first-correct"}}

	fresh := EvaluateAchievements(unlocked, 99, 1)
	assert.Empty(t, fresh)

	fresh = EvaluateAchievements(unlocked, 100, 1)
	assert.Equal(t, []string{"high-scorer"}, achievementIDs(fresh))
}

func TestStreak3FiresExactlyOnce(t *testing.T) {
	unlocked := []models.Achievement{{ID: "first-correct"}}

	fresh := EvaluateAchievements(unlocked, 40, 3)
	assert.Equal(t, []string{"streak-3"}, achievementIDs(fresh))
	unlocked = append(unlocked, fresh...)

	// Streak resets and climbs back to 3: no second unlock.
	fresh = EvaluateAchievements(unlocked, 40, 3)
	assert.Empty(t, fresh)
}

func TestStreak5(t *testing.T) {
	unlocked := []models.Achievement{{ID: "first-correct"}, {ID: "streak-3"}}
	fresh := EvaluateAchievements(unlocked, 40, 5)
	assert.Equal(t, []string{"streak-5"}, achievementIDs(fresh))

	// Only fires at exactly 5, not beyond.
	fresh = EvaluateAchievements(unlocked, 40, 6)
	assert.Empty(t, fresh)
}

func TestMultipleUnlocksInOneEvent(t *testing.T) {
	// First ever guess that also lands 100+ points.
	fresh := EvaluateAchievements(nil, 110, 1)
	assert.Equal(t, []string{"first-correct", "high-scorer"}, achievementIDs(fresh))
}
