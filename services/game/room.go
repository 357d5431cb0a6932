package game

import (
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	game_constants "Scramblio/constants/game"
	models "Scramblio/models/game"

	"github.com/gin-gonic/gin"
)

// Room is the aggregate state machine for one game instance. Every mutation
// happens under the registry's lock (handlers and timer callbacks alike), so
// events within one room are totally ordered and no finer locking is needed.
type Room struct {
	ID           string
	Name         string
	IsPublic     bool
	TimePerRound int // seconds
	MaxPlayers   int
	Difficulty   string

	Status         models.RoomStatus
	Players        []*models.Player // join order, distinct from turn order
	Sched          TurnScheduler
	CurrentWord    string // authoritative, lower-cased, trimmed
	ScrambledWord  string
	CurrentHint    string
	RoundStart     time.Time
	CorrectGuesses []models.CorrectGuess
	RoundScores    map[string]int // this-round-only, feeds the round-winner badge

	// settled marks the window between a turn's settlement broadcast and the
	// next turn starting; guesses arriving inside it are late and ignored.
	settled bool

	timer    *roundTimer
	timerGen uint64

	locker      sync.Locker
	broadcaster Broadcaster
	oracle      WordOracle
}

func NewRoom(id string, cfg models.RoomConfig, locker sync.Locker, b Broadcaster, o WordOracle) *Room {
	return &Room{
		ID:           id,
		Name:         cfg.Name,
		IsPublic:     cfg.IsPublic,
		TimePerRound: cfg.TimePerRound,
		MaxPlayers:   cfg.MaxPlayers,
		Difficulty:   cfg.Difficulty,
		Status:       models.StatusWaiting,
		Players:      []*models.Player{},
		RoundScores:  make(map[string]int),
		locker:       locker,
		broadcaster:  b,
		oracle:       o,
	}
}

// AddPlayer appends a player to the room. Joining fills the turn order only
// while the game has not started, so a mid-game join never corrupts the
// active turn pointer.
func (r *Room) AddPlayer(p *models.Player) {
	r.Players = append(r.Players, p)
	r.RoundScores[p.ID] = 0
	if r.Status != models.StatusPlaying {
		r.Sched.Append(p)
	}
}

func (r *Room) FindPlayer(playerID string) *models.Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

func (r *Room) HasPlayerNamed(name string) bool {
	for _, p := range r.Players {
		if p.Name == name {
			return true
		}
	}
	return false
}

// StartGame begins round 1. Host-only, needs at least 2 players.
func (r *Room) StartGame(playerID string) error {
	if r.Status != models.StatusWaiting {
		return ErrAlreadyStarted
	}
	player := r.FindPlayer(playerID)
	if player == nil || !player.IsHost {
		return ErrNotHost
	}
	if len(r.Players) < game_constants.MinPlayersToStart {
		return ErrNotEnoughPlayers
	}

	r.Status = models.StatusPlaying
	r.Sched.Round = 1
	r.Sched.Reshuffle(r.Players)
	r.resetRoundScores()

	log.Printf("[START] Game started in room %s with %d players", r.ID, len(r.Players))
	r.broadcaster.ToRoom(r.ID, "game-started", r.Snapshot())
	r.startTurn()
	return nil
}

// SubmitWord is only accepted from the current word-setter while no word is
// in play this turn. It arms the round timer and opens the guessing phase.
func (r *Room) SubmitWord(playerID, word string) error {
	if r.Status != models.StatusPlaying {
		return ErrGameNotInProgress
	}
	setter := r.Sched.Current()
	if setter == nil || setter.ID != playerID {
		return ErrNotYourTurn
	}
	if r.CurrentWord != "" {
		// Late resubmission while guessing is already underway.
		log.Printf("[WORD] Ignoring duplicate word submission from %s in room %s", playerID, r.ID)
		return nil
	}

	selected := strings.ToLower(strings.TrimSpace(word))
	if len([]rune(selected)) < game_constants.MinWordLength {
		return ErrWordTooShort
	}

	r.CurrentWord = selected
	r.ScrambledWord = r.oracle.Scramble(selected)
	r.CurrentHint = r.oracle.Hint(selected)
	r.RoundStart = time.Now()
	r.CorrectGuesses = nil
	r.settled = false

	r.broadcaster.ToRoom(r.ID, "word-scrambled", gin.H{
		"scrambledWord": r.ScrambledWord,
		"round":         r.Sched.Round,
		"hint":          r.CurrentHint,
		"wordLength":    len([]rune(selected)),
		"wordSetterId":  setter.ID,
	})

	r.schedule(time.Duration(r.TimePerRound)*time.Second, (*Room).handleRoundTimeout)
	log.Printf("[WORD] Word submitted by %s in room %s", setter.Name, r.ID)
	return nil
}

// SubmitGuess validates a guess against the word in play. Outside the
// guessing phase, or after this guesser already solved the word, it is a
// silent no-op. The word-setter guessing their own word is an error.
func (r *Room) SubmitGuess(playerID, guess string) error {
	if r.Status != models.StatusPlaying || r.CurrentWord == "" || r.settled {
		return nil
	}
	player := r.FindPlayer(playerID)
	if player == nil {
		return nil
	}
	setter := r.Sched.Current()
	if setter != nil && setter.ID == playerID {
		return ErrOwnWordGuess
	}
	if r.hasGuessed(playerID) {
		return nil
	}

	if strings.ToLower(strings.TrimSpace(guess)) != r.CurrentWord {
		player.Streak = 0
		r.broadcaster.ToPlayer(playerID, "incorrect-guess", guess)
		return nil
	}

	r.CorrectGuesses = append(r.CorrectGuesses, models.CorrectGuess{
		PlayerID:  playerID,
		Timestamp: time.Now(),
	})
	position := len(r.CorrectGuesses)
	score := PositionScore(position, len([]rune(r.CurrentWord)))

	player.Score += score
	r.RoundScores[playerID] += score
	player.Streak++

	if fresh := EvaluateAchievements(player.Achievements, score, player.Streak); len(fresh) > 0 {
		player.Achievements = append(player.Achievements, fresh...)
		r.broadcaster.ToPlayer(playerID, "achievement-unlocked", fresh)
	}

	log.Printf("[GUESS] %s guessed the word in room %s (position %d, +%d)",
		player.Name, r.ID, position, score)
	r.broadcaster.ToRoom(r.ID, "correct-guess", gin.H{
		"playerId":   playerID,
		"playerName": player.Name,
		"word":       r.CurrentWord,
		"score":      score,
		"streak":     player.Streak,
		"position":   position,
	})

	r.maybeCompleteRound()
	return nil
}

// UseHint sells the held hint to a non-setter player. It costs score (floored
// at zero) every time it is used; no per-round cap is enforced.
func (r *Room) UseHint(playerID string) error {
	if r.Status != models.StatusPlaying || r.CurrentWord == "" || r.settled {
		return ErrNoWordInPlay
	}
	player := r.FindPlayer(playerID)
	if player == nil {
		return ErrPlayerNotInRoom
	}
	setter := r.Sched.Current()
	if setter != nil && setter.ID == playerID {
		return ErrOwnWordHint
	}

	player.Score = max(0, player.Score-game_constants.HintCost)
	r.RoundScores[playerID] = max(0, r.RoundScores[playerID]-game_constants.HintCost)

	r.broadcaster.ToPlayer(playerID, "hint-used", gin.H{
		"hint": r.CurrentHint,
		"cost": game_constants.HintCost,
	})
	return nil
}

// RemovePlayer prunes a departing player and runs disconnect recovery: if the
// departed player held the current turn the timer is cancelled and play
// advances immediately, and the game ends if fewer than 2 players remain.
// Host status transfers to the first remaining player in join order.
func (r *Room) RemovePlayer(playerID string) {
	idx := -1
	for i, p := range r.Players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	departing := r.Players[idx]
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
	delete(r.RoundScores, playerID)
	_, wasCurrent := r.Sched.Prune(playerID)

	if len(r.Players) == 0 {
		r.cancelTimer()
		return
	}

	if departing.IsHost {
		r.Players[0].IsHost = true
		log.Printf("[DISCONNECT] New host assigned: %s in room %s", r.Players[0].Name, r.ID)
	}

	if r.Status == models.StatusPlaying {
		switch {
		case len(r.Sched.Order) < game_constants.MinPlayersToStart:
			r.EndGame()
		case wasCurrent:
			// The ghost turn-holder's turn is abandoned; the pruned order
			// already leaves the pointer on the next player.
			r.cancelTimer()
			r.beginTurnOrWrap()
		case r.CurrentWord != "" && !r.settled:
			r.pruneGuesses(playerID)
			r.maybeCompleteRound()
		}
	}

	r.broadcaster.ToRoom(r.ID, "player-left", playerID)
	r.broadcaster.ToRoom(r.ID, "room-updated", r.Snapshot())
}

// EndGame is terminal: it cancels any pending timer, freezes the status and
// broadcasts the final leaderboard.
func (r *Room) EndGame() {
	r.cancelTimer()
	r.Status = models.StatusFinished
	leaderboard := r.Leaderboard()
	r.broadcaster.ToRoom(r.ID, "game-ended", gin.H{"leaderboard": leaderboard})
	log.Printf("[END] Game ended in room %s", r.ID)
}

// Leaderboard sorts players by descending cumulative score, stable on ties so
// the join order breaks them.
func (r *Room) Leaderboard() []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, len(r.Players))
	for i, p := range r.Players {
		entries[i] = models.LeaderboardEntry{
			PlayerID:     p.ID,
			Name:         p.Name,
			Score:        p.Score,
			Achievements: p.Achievements,
			MaxStreak:    p.Streak,
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// Snapshot is the room state pushed on room-updated events and served by the
// get-room endpoint. The word in play is never included, only its rendering.
func (r *Room) Snapshot() gin.H {
	currentPlayerID := ""
	if setter := r.Sched.Current(); setter != nil {
		currentPlayerID = setter.ID
	}
	return gin.H{
		"id":              r.ID,
		"name":            r.Name,
		"isPublic":        r.IsPublic,
		"timePerRound":    r.TimePerRound,
		"maxPlayers":      r.MaxPlayers,
		"difficulty":      r.Difficulty,
		"status":          r.Status,
		"players":         r.Players,
		"currentRound":    r.Sched.Round,
		"maxRounds":       game_constants.MaxGameRounds,
		"currentPlayerId": currentPlayerID,
		"scrambledWord":   r.ScrambledWord,
		"roundScores":     r.RoundScores,
	}
}

func (r *Room) Summary() models.RoomSummary {
	return models.RoomSummary{
		ID:         r.ID,
		Name:       r.Name,
		Players:    len(r.Players),
		MaxPlayers: r.MaxPlayers,
		Difficulty: r.Difficulty,
	}
}

// --- internal transitions -------------------------------------------------

// startTurn enters the awaiting-word phase for the current turn-holder. The
// new-round event is personalized per recipient rather than computed inside a
// single broadcast.
func (r *Room) startTurn() {
	r.CurrentWord = ""
	r.ScrambledWord = ""
	r.CurrentHint = ""
	r.RoundStart = time.Time{}
	r.CorrectGuesses = nil
	r.settled = false

	setter := r.Sched.Current()
	if setter == nil {
		return
	}
	for _, p := range r.Players {
		r.broadcaster.ToPlayer(p.ID, "new-round", gin.H{
			"round":           r.Sched.Round,
			"maxRounds":       game_constants.MaxGameRounds,
			"currentPlayerId": setter.ID,
			"currentPlayer":   setter.Name,
			"isYourTurn":      p.ID == setter.ID,
		})
	}
	r.broadcaster.ToPlayer(setter.ID, "your-turn", nil)
	log.Printf("[TURN] Round %d in room %s, word-setter: %s", r.Sched.Round, r.ID, setter.Name)
}

// maybeCompleteRound settles the turn early once every eligible guesser has
// solved the word. The setter is scored as if finishing second.
func (r *Room) maybeCompleteRound() {
	if r.settled || r.CurrentWord == "" {
		return
	}
	eligible := len(r.Players) - 1
	if len(r.CorrectGuesses) < eligible {
		return
	}

	r.settled = true
	if setter := r.Sched.Current(); setter != nil {
		bonus := SetterCompletionBonus(len([]rune(r.CurrentWord)))
		setter.Score += bonus
		r.RoundScores[setter.ID] += bonus
		r.broadcaster.ToRoom(r.ID, "all-guessed", gin.H{
			"wordSetterId": setter.ID,
			"score":        bonus,
		})
	}
	r.cancelTimer()
	r.schedule(game_constants.AllGuessedSettleDelay, (*Room).nextTurn)
}

// handleRoundTimeout fires when the guessing phase ran out of time. If nobody
// guessed, the setter earns a flat bonus; either way the word is revealed and
// the next turn starts after the settle delay.
func (r *Room) handleRoundTimeout() {
	if r.Status != models.StatusPlaying || r.settled {
		return
	}
	r.settled = true

	if len(r.CorrectGuesses) == 0 {
		if setter := r.Sched.Current(); setter != nil {
			setter.Score += game_constants.NoGuessBonus
			r.RoundScores[setter.ID] += game_constants.NoGuessBonus
			r.broadcaster.ToRoom(r.ID, "no-guesses", gin.H{
				"wordSetterId": setter.ID,
				"score":        game_constants.NoGuessBonus,
			})
		}
	}

	r.broadcaster.ToRoom(r.ID, "round-ended", gin.H{
		"word":          r.CurrentWord,
		"scrambledWord": r.ScrambledWord,
	})
	r.broadcaster.ToRoom(r.ID, "room-updated", r.Snapshot())
	log.Printf("[ROUND-TIMER] Guessing time elapsed in room %s, round %d", r.ID, r.Sched.Round)

	r.schedule(game_constants.RoundEndedSettleDelay, (*Room).nextTurn)
}

// nextTurn advances the turn pointer, wrapping into the next round when the
// pointer runs past the end of the turn order.
func (r *Room) nextTurn() {
	if len(r.Sched.Order) < game_constants.MinPlayersToStart {
		r.EndGame()
		return
	}
	if r.Sched.Advance() {
		r.wrapRound()
		return
	}
	r.startTurn()
}

// beginTurnOrWrap starts the turn the pointer currently indexes, used after
// disconnect recovery already shifted the pointer past the departed player.
func (r *Room) beginTurnOrWrap() {
	if r.Sched.Index >= len(r.Sched.Order) {
		r.wrapRound()
		return
	}
	r.startTurn()
}

// wrapRound announces the round winner, increments the round counter and
// either ends the game or reshuffles for the next round.
func (r *Room) wrapRound() {
	winner := r.roundWinner()
	r.broadcaster.ToRoom(r.ID, "round-winner", winner)

	r.Sched.Round++
	if r.Sched.Round > game_constants.MaxGameRounds {
		r.EndGame()
		return
	}
	r.Sched.Reshuffle(r.Players)
	r.resetRoundScores()
	r.startTurn()
}

// roundWinner picks the highest this-round score, ties broken by first-seen
// order in the player list.
func (r *Room) roundWinner() gin.H {
	best := -1
	winner := gin.H{"playerId": "", "playerName": "", "score": 0}
	for _, p := range r.Players {
		if score := r.RoundScores[p.ID]; score > best {
			best = score
			winner = gin.H{"playerId": p.ID, "playerName": p.Name, "score": score}
		}
	}
	return winner
}

func (r *Room) resetRoundScores() {
	r.RoundScores = make(map[string]int, len(r.Players))
	for _, p := range r.Players {
		r.RoundScores[p.ID] = 0
	}
}

func (r *Room) hasGuessed(playerID string) bool {
	for _, g := range r.CorrectGuesses {
		if g.PlayerID == playerID {
			return true
		}
	}
	return false
}

func (r *Room) pruneGuesses(playerID string) {
	kept := r.CorrectGuesses[:0]
	for _, g := range r.CorrectGuesses {
		if g.PlayerID != playerID {
			kept = append(kept, g)
		}
	}
	r.CorrectGuesses = kept
}
