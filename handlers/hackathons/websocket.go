package hackathons

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HackathonWebSocket handles WebSocket connections for a specific hackathon.
// Connected clients receive a ScoreUpdate whenever a team is evaluated.
func HackathonWebSocket(c *gin.Context) {
	hackathonID := c.Param("id")

	if _, err := hackathonsService.Get(hackathonID); err != nil {
		c.JSON(404, gin.H{"error": ErrHackathonNotFound})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	hub.RegisterClient(hackathonID, conn)
	defer func() {
		hub.UnregisterClient(hackathonID, conn)
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
