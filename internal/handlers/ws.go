package handlers

import (
	"log"
	"net/http"

	"github.com/Demian-Yim/Flow-Up/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub        *ws.Hub
	workshopID string
}

func NewWSHandler(hub *ws.Hub, workshopID string) *WSHandler {
	return &WSHandler{hub: hub, workshopID: workshopID}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket connection for live state updates
// @Description  Every local mutation and every reconciled remote change is pushed as a snapshot message
// @Tags         websocket
// @Router       /ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(h.workshopID, conn)
	defer h.hub.RemoveConnection(h.workshopID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
