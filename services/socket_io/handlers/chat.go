package handlers

import (
	"Scramblio/services/registry"
	socketio_utils "Scramblio/services/socket_io/utils"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleSendMessage relays a chat message to the whole room. No validation
// beyond room and player existing.
func HandleSendMessage(reg *registry.Registry, client *socket.Socket) func(args ...interface{}) {
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
		message, ok := socketio_utils.StringField(payload, "message")
		if !ok {
			return
		}

		reg.SendMessage(roomID, connID, message)
	}
}
