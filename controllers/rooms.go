package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	models "Scramblio/models/game"
	"Scramblio/services/registry"

	"github.com/gin-gonic/gin"
)

// @Summary Health check
// @Description Reports server liveness
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string,timestamp=string}
// @Router /health [get]
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// @Summary Creates a new room
// @Description Allocates a fresh waiting room and returns its shareable id
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body models.RoomConfig true "Room configuration"
// @Success 200 {object} object{roomId=string,room=object}
// @Failure 400 {object} object{error=string}
// @Router /api/create-room [post]
func CreateRoom(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cfg models.RoomConfig
		if err := c.ShouldBindJSON(&cfg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room configuration"})
			return
		}

		room, err := reg.CreateRoom(cfg)
		if err != nil {
			if errors.Is(err, registry.ErrInvalidConfig) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Printf("[CREATE-ROOM-ERROR] %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"roomId": room.ID, "room": room.Snapshot()})
	}
}

// @Summary Lists public waiting rooms
// @Description Returns the join-screen summaries of public rooms still waiting for players
// @Tags rooms
// @Produce json
// @Success 200 {array} models.RoomSummary
// @Router /api/rooms [get]
func ListPublicRooms(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.ListPublicWaitingRooms())
	}
}

// @Summary Gives info of a room
// @Description Given a room id, it will return its full snapshot
// @Tags rooms
// @Produce json
// @Param id path string true "Id of the room wanted"
// @Success 200 {object} object{}
// @Failure 404 {object} object{error=string}
// @Router /api/room/{id} [get]
func GetRoomInfo(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, ok := reg.RoomSnapshot(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}
