package socketio_utils

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// EventPayload extracts the object payload clients send as the first event
// argument. Handlers validate shape here before touching any state.
func EventPayload(args []interface{}) (map[string]interface{}, bool) {
	if len(args) < 1 {
		return nil, false
	}
	payload, ok := args[0].(map[string]interface{})
	return payload, ok
}

// StringField reads a non-empty string field from an event payload.
func StringField(payload map[string]interface{}, key string) (string, bool) {
	value, ok := payload[key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// SafeHandler converts any panic while processing an event into a generic
// requester-facing error, so a single bad event can never crash the process
// or corrupt other rooms.
func SafeHandler(client *socket.Socket, tag string, fn func(args ...interface{})) func(args ...interface{}) {
	return func(args ...interface{}) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[%s-PANIC] recovered: %v", tag, rec)
				client.Emit("error", gin.H{"error": "internal server error"})
			}
		}()
		fn(args...)
	}
}
