package game

import (
	"sync"
	"testing"

	game_constants "Scramblio/constants/game"
	models "Scramblio/models/game"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	target string
	direct bool
	event  string
	data   interface{}
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (b *recordingBroadcaster) ToRoom(roomID, event string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, recordedEvent{target: roomID, event: event, data: data})
}

func (b *recordingBroadcaster) ToPlayer(playerID, event string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, recordedEvent{target: playerID, direct: true, event: event, data: data})
}

func (b *recordingBroadcaster) named(event string) []recordedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []recordedEvent
	for _, e := range b.events {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

func (b *recordingBroadcaster) directTo(playerID, event string) []recordedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []recordedEvent
	for _, e := range b.events {
		if e.direct && e.target == playerID && e.event == event {
			out = append(out, e)
		}
	}
	return out
}

type stubOracle struct{}

func (stubOracle) Scramble(word string) string {
	runes := []rune(word)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func (stubOracle) Hint(word string) string { return "hint for " + word }

// newTestRoom builds a started 3-player room with a deterministic turn order
// p1, p2, p3 (p1 is host and first word-setter).
func newTestRoom(t *testing.T, playerCount int) (*Room, *recordingBroadcaster, []*models.Player) {
	t.Helper()
	b := &recordingBroadcaster{}
	room := NewRoom("TESTROOM", models.RoomConfig{
		Name:         "test",
		IsPublic:     true,
		TimePerRound: 30,
		MaxPlayers:   8,
		Difficulty:   "medium",
	}, &sync.Mutex{}, b, stubOracle{})

	players := make([]*models.Player, playerCount)
	for i, name := range []string{"alice", "bob", "carol", "dave", "erin"}[:playerCount] {
		players[i] = models.NewPlayer("conn-"+name, name, i == 0)
		room.AddPlayer(players[i])
	}
	return room, b, players
}

func startDeterministic(t *testing.T, room *Room, players []*models.Player) {
	t.Helper()
	require.NoError(t, room.StartGame(players[0].ID))
	// Pin the shuffled order to join order for deterministic scenarios.
	room.Sched.Order = append([]*models.Player{}, players...)
	room.Sched.Index = 0
}

func TestStartGameRequiresHost(t *testing.T) {
	room, _, players := newTestRoom(t, 3)

	err := room.StartGame(players[1].ID)
	assert.ErrorIs(t, err, ErrNotHost)
	assert.Equal(t, models.StatusWaiting, room.Status)
}

func TestStartGameRequiresTwoPlayers(t *testing.T) {
	room, _, players := newTestRoom(t, 1)

	err := room.StartGame(players[0].ID)
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)
	assert.Equal(t, models.StatusWaiting, room.Status)
}

func TestStartGameBeginsRoundOne(t *testing.T) {
	room, b, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)

	assert.Equal(t, models.StatusPlaying, room.Status)
	assert.Equal(t, 1, room.Sched.Round)
	assert.Len(t, b.named("game-started"), 1)

	// new-round is personalized per recipient.
	newRounds := b.named("new-round")
	require.Len(t, newRounds, 3)
	yourTurnCount := 0
	for _, e := range newRounds {
		data := e.data.(gin.H)
		if data["isYourTurn"].(bool) {
			yourTurnCount++
		}
	}
	assert.Equal(t, 1, yourTurnCount)
}

func TestSubmitWordOnlyFromSetter(t *testing.T) {
	room, _, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)

	err := room.SubmitWord(players[1].ID, "ocean")
	assert.ErrorIs(t, err, ErrNotYourTurn)
	assert.Empty(t, room.CurrentWord)
}

func TestSubmitWordRejectsShortWords(t *testing.T) {
	room, _, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)

	err := room.SubmitWord(players[0].ID, "  ab ")
	assert.ErrorIs(t, err, ErrWordTooShort)
}

func TestSubmitWordNormalizesAndScrambles(t *testing.T) {
	room, b, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)

	require.NoError(t, room.SubmitWord(players[0].ID, "  OcEaN "))
	assert.Equal(t, "ocean", room.CurrentWord)
	assert.NotEqual(t, room.CurrentWord, room.ScrambledWord)
	assert.NotNil(t, room.timer)

	scrambles := b.named("word-scrambled")
	require.Len(t, scrambles, 1)
	data := scrambles[0].data.(gin.H)
	assert.Equal(t, 5, data["wordLength"])
	assert.Equal(t, players[0].ID, data["wordSetterId"])
}

func TestFullRoundAllGuessed(t *testing.T) {
	room, b, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))

	// Second player guesses first.
	require.NoError(t, room.SubmitGuess(players[1].ID, "OCEAN "))
	assert.Equal(t, 60, players[1].Score)
	assert.Equal(t, 1, players[1].Streak)

	// Third player completes the round: 2 of 2 eligible guessers done.
	require.NoError(t, room.SubmitGuess(players[2].ID, "ocean"))
	assert.Equal(t, 58, players[2].Score)

	// Setter is awarded the position-2 score as completion bonus.
	assert.Equal(t, 58, players[0].Score)
	assert.Len(t, b.named("all-guessed"), 1)

	// The guess log never contains the setter and never exceeds players-1.
	assert.LessOrEqual(t, len(room.CorrectGuesses), len(room.Players)-1)
	for _, g := range room.CorrectGuesses {
		assert.NotEqual(t, players[0].ID, g.PlayerID)
	}

	// Next turn starts without waiting for the round timer.
	room.cancelTimer()
	room.nextTurn()
	assert.Empty(t, room.CurrentWord)
	assert.Equal(t, players[1].ID, room.Sched.Current().ID)
}

func TestGuessFromSetterRejected(t *testing.T) {
	room, _, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))

	err := room.SubmitGuess(players[0].ID, "ocean")
	assert.ErrorIs(t, err, ErrOwnWordGuess)
	assert.Empty(t, room.CorrectGuesses)
}

func TestIncorrectGuessResetsStreakPrivately(t *testing.T) {
	room, b, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))

	players[1].Streak = 4
	require.NoError(t, room.SubmitGuess(players[1].ID, "oceam"))
	assert.Equal(t, 0, players[1].Streak)

	// Incorrect guesses go to the guesser only, never the room.
	assert.Len(t, b.directTo(players[1].ID, "incorrect-guess"), 1)
	assert.Empty(t, b.named("correct-guess"))
}

func TestDuplicateCorrectGuessIgnored(t *testing.T) {
	room, b, players := newTestRoom(t, 4)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))

	require.NoError(t, room.SubmitGuess(players[1].ID, "ocean"))
	require.NoError(t, room.SubmitGuess(players[1].ID, "ocean"))

	assert.Len(t, room.CorrectGuesses, 1)
	assert.Equal(t, 60, players[1].Score)
	assert.Len(t, b.named("correct-guess"), 1)
}

func TestRoundTimeoutNoGuesses(t *testing.T) {
	room, b, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))

	room.cancelTimer()
	room.handleRoundTimeout()

	// Setter earns the flat no-guess bonus and the word is revealed.
	assert.Equal(t, game_constants.NoGuessBonus, players[0].Score)
	require.Len(t, b.named("no-guesses"), 1)
	ended := b.named("round-ended")
	require.Len(t, ended, 1)
	assert.Equal(t, "ocean", ended[0].data.(gin.H)["word"])

	// Guesses arriving after settlement are silently dropped.
	require.NoError(t, room.SubmitGuess(players[1].ID, "ocean"))
	assert.Empty(t, room.CorrectGuesses)
	assert.Equal(t, 0, players[1].Score)
}

func TestRoundTimeoutWithGuessesPaysNoBonus(t *testing.T) {
	room, b, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))
	require.NoError(t, room.SubmitGuess(players[1].ID, "ocean"))

	room.cancelTimer()
	room.handleRoundTimeout()

	assert.Empty(t, b.named("no-guesses"))
	assert.Equal(t, 0, players[0].Score)
	assert.Len(t, b.named("round-ended"), 1)
}

func TestStaleTimeoutAfterSettlementIsNoOp(t *testing.T) {
	room, b, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))
	require.NoError(t, room.SubmitGuess(players[1].ID, "ocean"))
	require.NoError(t, room.SubmitGuess(players[2].ID, "ocean"))

	scoreBefore := players[0].Score
	room.handleRoundTimeout()

	assert.Equal(t, scoreBefore, players[0].Score)
	assert.Empty(t, b.named("round-ended"))
}

func TestUseHintCostsScoreFlooredAtZero(t *testing.T) {
	room, b, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))

	players[1].Score = 4
	require.NoError(t, room.UseHint(players[1].ID))
	assert.Equal(t, 0, players[1].Score)

	hints := b.directTo(players[1].ID, "hint-used")
	require.Len(t, hints, 1)
	assert.Equal(t, "hint for ocean", hints[0].data.(gin.H)["hint"])

	// No per-round cap: using it again just costs again.
	players[1].Score = 25
	require.NoError(t, room.UseHint(players[1].ID))
	assert.Equal(t, 15, players[1].Score)
	assert.Len(t, b.directTo(players[1].ID, "hint-used"), 2)
}

func TestUseHintRejectedForSetter(t *testing.T) {
	room, _, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))

	err := room.UseHint(players[0].ID)
	assert.ErrorIs(t, err, ErrOwnWordHint)
}

func TestRoundWinnerTiesBreakByJoinOrder(t *testing.T) {
	room, _, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)

	room.RoundScores[players[1].ID] = 60
	room.RoundScores[players[2].ID] = 60

	winner := room.roundWinner()
	assert.Equal(t, players[1].ID, winner["playerId"])
	assert.Equal(t, 60, winner["score"])
}

func TestWrapRoundAdvancesAndEndsAfterMaxRounds(t *testing.T) {
	room, b, players := newTestRoom(t, 2)
	startDeterministic(t, room, players)

	room.Sched.Round = game_constants.MaxGameRounds
	room.Sched.Index = len(room.Sched.Order) // pointer past the end
	room.beginTurnOrWrap()

	assert.Equal(t, models.StatusFinished, room.Status)
	assert.Len(t, b.named("round-winner"), 1)
	assert.Len(t, b.named("game-ended"), 1)
}

func TestDisconnectOfCurrentSetterAdvancesTurn(t *testing.T) {
	room, b, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))

	room.RemovePlayer(players[0].ID)

	// Host transfers to the next remaining player in join order.
	assert.True(t, players[1].IsHost)
	// The abandoned turn advances without a new word from the departed host.
	assert.Equal(t, models.StatusPlaying, room.Status)
	assert.Equal(t, players[1].ID, room.Sched.Current().ID)
	assert.Empty(t, room.CurrentWord)
	assert.Nil(t, room.timer)
	assert.Len(t, b.named("player-left"), 1)
}

func TestDisconnectDropsBelowTwoEndsGame(t *testing.T) {
	room, b, players := newTestRoom(t, 2)
	startDeterministic(t, room, players)
	players[0].Score = 30

	room.RemovePlayer(players[1].ID)

	assert.Equal(t, models.StatusFinished, room.Status)
	ended := b.named("game-ended")
	require.Len(t, ended, 1)
	leaderboard := ended[0].data.(gin.H)["leaderboard"].([]models.LeaderboardEntry)
	require.Len(t, leaderboard, 1)
	assert.Equal(t, 30, leaderboard[0].Score)
}

func TestDisconnectOfGuesserCompletesRound(t *testing.T) {
	room, b, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))
	require.NoError(t, room.SubmitGuess(players[1].ID, "ocean"))

	// The only remaining eligible guesser already solved it.
	room.RemovePlayer(players[2].ID)

	assert.Len(t, b.named("all-guessed"), 1)
	assert.LessOrEqual(t, len(room.CorrectGuesses), len(room.Players)-1)
}

func TestJoinDuringPlayingDoesNotTouchTurnOrder(t *testing.T) {
	room, _, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	room.Sched.Index = 1

	late := models.NewPlayer("conn-late", "late", false)
	room.AddPlayer(late)

	assert.Len(t, room.Players, 4)
	assert.Len(t, room.Sched.Order, 3)
	assert.Equal(t, players[1].ID, room.Sched.Current().ID)
}

func TestLeaderboardSortedStableDescending(t *testing.T) {
	room, _, players := newTestRoom(t, 3)
	players[0].Score = 50
	players[1].Score = 80
	players[2].Score = 50

	leaderboard := room.Leaderboard()
	require.Len(t, leaderboard, 3)
	assert.Equal(t, players[1].ID, leaderboard[0].PlayerID)
	// Equal scores keep join order.
	assert.Equal(t, players[0].ID, leaderboard[1].PlayerID)
	assert.Equal(t, players[2].ID, leaderboard[2].PlayerID)
}

func TestAchievementUnlockNotifiedPrivately(t *testing.T) {
	room, b, players := newTestRoom(t, 3)
	startDeterministic(t, room, players)
	require.NoError(t, room.SubmitWord(players[0].ID, "ocean"))
	require.NoError(t, room.SubmitGuess(players[1].ID, "ocean"))

	unlocks := b.directTo(players[1].ID, "achievement-unlocked")
	require.Len(t, unlocks, 1)
	fresh := unlocks[0].data.([]models.Achievement)
	require.Len(t, fresh, 1)
	assert.Equal(t, "first-correct", fresh[0].ID)
	assert.Equal(t, fresh, players[1].Achievements)
}
