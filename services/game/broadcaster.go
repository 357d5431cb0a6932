package game

// Broadcaster is how a room pushes events outward. The connection layer owns
// the room channels; the core never addresses sockets directly. ToPlayer
// carries the few single-recipient notices (your-turn, hint results,
// achievement unlocks, personalized new-round flags); everything else is a
// room-wide broadcast.
type Broadcaster interface {
	ToRoom(roomID string, event string, data interface{})
	ToPlayer(playerID string, event string, data interface{})
}

// WordOracle renders a submitted word: a scrambled permutation different from
// the input, and a hint string. Pure and stateless.
type WordOracle interface {
	Scramble(word string) string
	Hint(word string) string
}
