package handlers

import (
	"log"

	"Scramblio/services/registry"
	socketio_types "Scramblio/services/socket_io/types"
	socketio_utils "Scramblio/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleJoinRoom attaches the connection to a room as a named player. The
// joiner gets joined-room, the others player-joined, and everyone the updated
// room snapshot.
func HandleJoinRoom(reg *registry.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())

		payload, ok := socketio_utils.EventPayload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing join payload"})
			return
		}
		roomID, ok := socketio_utils.StringField(payload, "roomId")
		if !ok {
			client.Emit("error", gin.H{"error": "Missing room ID"})
			return
		}
		playerName, ok := socketio_utils.StringField(payload, "playerName")
		if !ok {
			client.Emit("error", gin.H{"error": "Missing player name"})
			return
		}

		log.Printf("[JOIN] %s joining room %s as %q", connID, roomID, playerName)

		player, room, err := reg.AttachPlayer(roomID, connID, playerName)
		if err != nil {
			log.Printf("[JOIN-ERROR] %s -> %s: %v", connID, roomID, err)
			client.Emit("error", gin.H{"error": err.Error()})
			return
		}

		client.Join(socket.Room(roomID))
		client.Emit("joined-room", gin.H{"room": room, "player": player})
		client.To(socket.Room(roomID)).Emit("player-joined", player)
		sio.ToRoom(roomID, "room-updated", room)
	}
}
