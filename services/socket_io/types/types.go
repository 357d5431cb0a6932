package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer contains the socket.io server and a map of live socket
// connections keyed by socket id. It owns the room channels: the game core
// publishes through ToRoom/ToPlayer and never addresses sockets directly.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track connection id -> socket
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
	}
}

func (s *SocketServer) AddConnection(connID string, sock *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[connID] = sock
}

func (s *SocketServer) RemoveConnection(connID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, connID)
}

func (s *SocketServer) GetConnection(connID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	sock, exists := s.UserConnections[connID]
	return sock, exists
}

// ToRoom broadcasts an event to every player in a room channel.
func (s *SocketServer) ToRoom(roomID string, event string, data interface{}) {
	if data == nil {
		s.Sio_server.To(socket.Room(roomID)).Emit(event)
		return
	}
	s.Sio_server.To(socket.Room(roomID)).Emit(event, data)
}

// ToPlayer sends a direct-addressed message to a single connection, used for
// private errors, hint results, achievement unlocks and per-recipient
// new-round personalization.
func (s *SocketServer) ToPlayer(playerID string, event string, data interface{}) {
	sock, exists := s.GetConnection(playerID)
	if !exists {
		return
	}
	if data == nil {
		sock.Emit(event)
		return
	}
	sock.Emit(event, data)
}
