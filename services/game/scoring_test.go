package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionScore(t *testing.T) {
	assert.Equal(t, 60, PositionScore(1, 5))
	assert.Equal(t, 58, PositionScore(2, 5))
	assert.Equal(t, 55, PositionScore(3, 5))

	// Later positions all score the same base
	assert.Equal(t, PositionScore(3, 5), PositionScore(4, 5))
	assert.Equal(t, PositionScore(3, 5), PositionScore(7, 5))
}

func TestPositionScoreDecreasingInPosition(t *testing.T) {
	for length := 3; length <= 12; length++ {
		assert.Greater(t, PositionScore(1, length), PositionScore(2, length))
		assert.Greater(t, PositionScore(2, length), PositionScore(3, length))
	}
}

func TestPositionScoreLengthScalingConstantAcrossPositions(t *testing.T) {
	for position := 1; position <= 4; position++ {
		diff := PositionScore(position, 6) - PositionScore(position, 5)
		assert.Equal(t, 10, diff)
	}
}

func TestSetterCompletionBonus(t *testing.T) {
	assert.Equal(t, PositionScore(2, 5), SetterCompletionBonus(5))
	assert.Equal(t, 58, SetterCompletionBonus(5))
}
