// Package registry owns the process-wide room map and the mapping from
// connection id to the room a player is in. It is constructed once at startup
// and handed to whatever layer dispatches events; there is no global access.
package registry

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	game_constants "Scramblio/constants/game"
	models "Scramblio/models/game"
	"Scramblio/services/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrInvalidConfig = errors.New("maximum players must be between 2 and 8 and round time positive")
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomFull      = errors.New("room is full")
	ErrNameTaken     = errors.New("player name already taken")
)

// Registry serializes every room mutation behind one mutex: socket handlers,
// REST handlers and timer callbacks all enter through it, so no two mutations
// of the same room ever interleave.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*game.Room
	conns map[string]string // connection id -> room id

	broadcaster game.Broadcaster
	oracle      game.WordOracle
}

func New(b game.Broadcaster, o game.WordOracle) *Registry {
	return &Registry{
		rooms:       make(map[string]*game.Room),
		conns:       make(map[string]string),
		broadcaster: b,
		oracle:      o,
	}
}

// CreateRoom validates the config and allocates a fresh waiting room with a
// short, shareable, upper-cased id unique across the registry.
func (reg *Registry) CreateRoom(cfg models.RoomConfig) (*game.Room, error) {
	if cfg.MaxPlayers < game_constants.MinPlayersToStart ||
		cfg.MaxPlayers > game_constants.MaxPlayersLimit ||
		cfg.TimePerRound <= 0 {
		return nil, ErrInvalidConfig
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = "medium"
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	id := reg.newRoomID()
	room := game.NewRoom(id, cfg, &reg.mu, reg.broadcaster, reg.oracle)
	reg.rooms[id] = room
	log.Printf("[REGISTRY] Room %s created (%q, public=%v)", id, cfg.Name, cfg.IsPublic)
	return room, nil
}

func (reg *Registry) newRoomID() string {
	for {
		id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		if _, taken := reg.rooms[id]; !taken {
			return id
		}
	}
}

// ListPublicWaitingRooms reduces public rooms still in the waiting state to
// their join-screen summaries.
func (reg *Registry) ListPublicWaitingRooms() []models.RoomSummary {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	summaries := []models.RoomSummary{}
	for _, room := range reg.rooms {
		if room.IsPublic && room.Status == models.StatusWaiting {
			summaries = append(summaries, room.Summary())
		}
	}
	return summaries
}

// RoomSnapshot returns the full room snapshot for the get-room endpoint.
func (reg *Registry) RoomSnapshot(roomID string) (gin.H, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok {
		return nil, false
	}
	return room.Snapshot(), true
}

// AttachPlayer joins a connection to a room under a display name unique
// within that room. The first player to attach becomes host. It returns the
// created player and the post-join room snapshot.
func (reg *Registry) AttachPlayer(roomID, connID, name string) (*models.Player, gin.H, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	if len(room.Players) >= room.MaxPlayers {
		return nil, nil, ErrRoomFull
	}
	if room.HasPlayerNamed(name) {
		return nil, nil, ErrNameTaken
	}

	player := models.NewPlayer(connID, name, len(room.Players) == 0)
	room.AddPlayer(player)
	reg.conns[connID] = roomID

	log.Printf("[REGISTRY] Player %s joined room %s (%d/%d)",
		name, roomID, len(room.Players), room.MaxPlayers)
	return player, room.Snapshot(), nil
}

// DetachPlayer removes a connection from its room, if any. Idempotent. The
// room runs its disconnect-recovery procedure; a room left empty is destroyed
// in the same step.
func (reg *Registry) DetachPlayer(connID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	roomID, ok := reg.conns[connID]
	if !ok {
		return
	}
	delete(reg.conns, connID)

	room, ok := reg.rooms[roomID]
	if !ok {
		return
	}
	room.RemovePlayer(connID)
	if len(room.Players) == 0 {
		delete(reg.rooms, roomID)
		log.Printf("[REGISTRY] Room %s deleted (no players left)", roomID)
	}
}

// --- session event facade -------------------------------------------------
//
// Each operation resolves the room and acting player under the lock and
// delegates to the room state machine. Errors are for the requester only.

func (reg *Registry) StartGame(roomID, connID string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	return room.StartGame(connID)
}

func (reg *Registry) SubmitWord(roomID, connID, word string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	return room.SubmitWord(connID, word)
}

func (reg *Registry) SubmitGuess(roomID, connID, guess string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	return room.SubmitGuess(connID, guess)
}

func (reg *Registry) UseHint(roomID, connID string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	return room.UseHint(connID)
}

// SendMessage relays a chat message to the whole room with a server
// timestamp. No validation beyond room and player existing.
func (reg *Registry) SendMessage(roomID, connID, message string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	player := room.FindPlayer(connID)
	if player == nil {
		return ErrRoomNotFound
	}
	reg.broadcaster.ToRoom(roomID, "new-message", gin.H{
		"playerId":   player.ID,
		"playerName": player.Name,
		"message":    message,
		"timestamp":  time.Now().UnixMilli(),
	})
	return nil
}
