package handlers

import (
	"log"

	"Scramblio/services/registry"
	socketio_utils "Scramblio/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleSubmitGuess checks a guess against the word in play. Correct guesses
// are broadcast by the room; incorrect ones come back privately. Late guesses
// are silently dropped.
func HandleSubmitGuess(reg *registry.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())

		payload, ok := socketio_utils.EventPayload(args)
		if !ok {
			return
		}
		roomID, ok := socketio_utils.StringField(payload, "roomId")
		if !ok {
			return
		}
		guess, ok := socketio_utils.StringField(payload, "guess")
		if !ok {
			return
		}

		if err := reg.SubmitGuess(roomID, connID, guess); err != nil {
			log.Printf("[GUESS-ERROR] %s in room %s: %v", connID, roomID, err)
			client.Emit("error", gin.H{"error": err.Error()})
		}
	}
}

// HandleUseHint sells the current hint to a non-setter player. The hint comes
// back privately; nothing is broadcast.
func HandleUseHint(reg *registry.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())

		payload, ok := socketio_utils.EventPayload(args)
		if !ok {
			return
		}
		roomID, ok := socketio_utils.StringField(payload, "roomId")
		if !ok {
			return
		}

		if err := reg.UseHint(roomID, connID); err != nil {
			log.Printf("[HINT-ERROR] %s in room %s: %v", connID, roomID, err)
			client.Emit("error", gin.H{"error": err.Error()})
		}
	}
}
