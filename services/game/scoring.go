package game

import (
	game_constants "Scramblio/constants/game"
)

// PositionScore maps the 1-based rank of a correct guess and the word length
// to points. Speed (position) and word difficulty (length) are rewarded
// independently; the length component is constant across positions.
func PositionScore(position, wordLength int) int {
	base := game_constants.LaterGuessBase
	switch position {
	case 1:
		base = game_constants.FirstGuessBase
	case 2:
		base = game_constants.SecondGuessBase
	}
	return base + game_constants.LengthMultiplier*wordLength
}

// SetterCompletionBonus is what the word-setter earns when every eligible
// guesser solved the word: scored as if finishing second, which keeps
// moderate-difficulty words the best strategy.
func SetterCompletionBonus(wordLength int) int {
	return PositionScore(2, wordLength)
}
