package socket_io

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Scramblio/services/registry"
	"Scramblio/services/socket_io/handlers"
	socketio_types "Scramblio/services/socket_io/types"
	socketio_utils "Scramblio/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and wires the session
// event handlers for every new connection.
func (sio *MySocketServer) Start(router *gin.Engine, reg *registry.Registry) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.UserConnections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		connID := string(client.Id())
		self := (*socketio_types.SocketServer)(sio)

		self.AddConnection(connID, client)
		log.Printf("[CONNECT] Connection established: %s", connID)

		client.On("join-room", socketio_utils.SafeHandler(client, "JOIN",
			handlers.HandleJoinRoom(reg, client, self)))

		client.On("start-game", socketio_utils.SafeHandler(client, "START",
			handlers.HandleStartGame(reg, client)))

		client.On("submit-word", socketio_utils.SafeHandler(client, "WORD",
			handlers.HandleSubmitWord(reg, client)))

		client.On("submit-guess", socketio_utils.SafeHandler(client, "GUESS",
			handlers.HandleSubmitGuess(reg, client)))

		client.On("use-hint", socketio_utils.SafeHandler(client, "HINT",
			handlers.HandleUseHint(reg, client)))

		client.On("send-message", socketio_utils.SafeHandler(client, "CHAT",
			handlers.HandleSendMessage(reg, client)))

		client.On("disconnecting", socketio_utils.SafeHandler(client, "DISCONNECT",
			handlers.HandleDisconnecting(reg, client, self)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	log.Println("Socket server started")
}
