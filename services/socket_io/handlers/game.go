package handlers

import (
	"log"

	"Scramblio/services/registry"
	socketio_utils "Scramblio/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleStartGame starts the game. Host-only; the room broadcasts the
// game-started and first new-round events itself.
func HandleStartGame(reg *registry.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())

		payload, ok := socketio_utils.EventPayload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing room ID"})
			return
		}
		roomID, ok := socketio_utils.StringField(payload, "roomId")
		if !ok {
			client.Emit("error", gin.H{"error": "Missing room ID"})
			return
		}

		if err := reg.StartGame(roomID, connID); err != nil {
			log.Printf("[START-ERROR] %s in room %s: %v", connID, roomID, err)
			client.Emit("error", gin.H{"error": err.Error()})
		}
	}
}

// HandleSubmitWord accepts the current word-setter's secret word and opens
// the guessing phase.
func HandleSubmitWord(reg *registry.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())

		payload, ok := socketio_utils.EventPayload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing word payload"})
			return
		}
		roomID, ok := socketio_utils.StringField(payload, "roomId")
		if !ok {
			client.Emit("error", gin.H{"error": "Missing room ID"})
			return
		}
		word, ok := socketio_utils.StringField(payload, "word")
		if !ok {
			client.Emit("error", gin.H{"error": "Missing word"})
			return
		}

		if err := reg.SubmitWord(roomID, connID, word); err != nil {
			log.Printf("[WORD-ERROR] %s in room %s: %v", connID, roomID, err)
			client.Emit("error", gin.H{"error": err.Error()})
		}
	}
}
