package game

import (
	"math/rand"

	models "Scramblio/models/game"
)

// TurnScheduler owns the per-room turn order, the current-turn pointer and
// the round counter. The order is distinct from the room's join order and is
// reshuffled exactly once per round, not per game.
type TurnScheduler struct {
	Order []*models.Player
	Index int
	Round int
}

// Reshuffle rebuilds the turn order from the given players with an unbiased
// shuffle and resets the pointer to the first turn.
func (s *TurnScheduler) Reshuffle(players []*models.Player) {
	order := make([]*models.Player, len(players))
	copy(order, players)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	s.Order = order
	s.Index = 0
}

// Append adds a player to the end of the turn order. Only valid while the
// room is not mid-game.
func (s *TurnScheduler) Append(p *models.Player) {
	s.Order = append(s.Order, p)
}

// Current returns the word-setter for the current turn, or nil when the
// pointer has run past the end of the order.
func (s *TurnScheduler) Current() *models.Player {
	if s.Index < 0 || s.Index >= len(s.Order) {
		return nil
	}
	return s.Order[s.Index]
}

// Advance moves the pointer to the next turn and reports whether it ran past
// the end of the order, meaning the round is complete.
func (s *TurnScheduler) Advance() (wrapped bool) {
	s.Index++
	return s.Index >= len(s.Order)
}

// Prune removes a player from the turn order, keeping the pointer on the
// same live entry. It reports whether the removed player held the current
// turn; in that case the pointer is left indexing the player who would have
// gone next (or past the end, if the removed player held the last turn).
func (s *TurnScheduler) Prune(playerID string) (removed, wasCurrent bool) {
	for i, p := range s.Order {
		if p.ID != playerID {
			continue
		}
		wasCurrent = i == s.Index
		s.Order = append(s.Order[:i], s.Order[i+1:]...)
		if i < s.Index {
			s.Index--
		}
		return true, wasCurrent
	}
	return false, false
}
