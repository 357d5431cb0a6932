package main

import (
	_ "Scramblio/docs"
	"Scramblio/middleware"
	"Scramblio/routes"
	"Scramblio/services/registry"
	"Scramblio/services/socket_io"
	socketio_types "Scramblio/services/socket_io/types"
	"Scramblio/services/wordoracle"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Scramblio API
// @version 1.0
// @description Gin-Gonic server for the Scramblio word-scramble party game
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	// The socket server implements the broadcast interface the rooms publish
	// through, so it is built before the registry.
	sio := socketio_types.NewSocketServer()
	reg := registry.New(sio, wordoracle.New())

	routes.SetupRoutes(r, reg)
	(*socket_io.MySocketServer)(sio).Start(r, reg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
