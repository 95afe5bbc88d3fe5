package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Narinder098/Gym-project/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	feedMu      sync.Mutex
	feedClients = make(map[*websocket.Conn]bool)
)

// GET /orders/feed
//
// Admin dashboards subscribe here and receive each newly placed order as a
// JSON message.
func OrderFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	feedMu.Lock()
	feedClients[conn] = true
	feedMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			feedMu.Lock()
			delete(feedClients, conn)
			feedMu.Unlock()
			break
		}
	}
}

func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	feedMu.Lock()
	defer feedMu.Unlock()
	for client := range feedClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
