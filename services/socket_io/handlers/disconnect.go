package handlers

import (
	"log"

	"Scramblio/services/registry"
	socketio_types "Scramblio/services/socket_io/types"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleDisconnecting detaches the connection from its room, if any. The
// registry runs the room's disconnect recovery synchronously in the same
// step: player-left and room-updated go out to the remaining players, plus
// round-winner or game-ended broadcasts when the departure forces them.
func HandleDisconnecting(reg *registry.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())
		log.Printf("[DISCONNECT] Connection %s disconnecting", connID)

		reg.DetachPlayer(connID)
		sio.RemoveConnection(connID)
	}
}
