package handlers

import (
	"log"
	"net/http"

	"github.com/RCnetmiles/Lab-Label/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type MonitorHandler struct {
	hub *ws.Hub
}

func NewMonitorHandler(hub *ws.Hub) *MonitorHandler {
	return &MonitorHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleMonitor godoc
// @Summary      WebSocket feed of verification outcomes
// @Description  Connect via WebSocket to watch answers being verified in real time
// @Tags         websocket
// @Router       /ws/monitor [get]
func (h *MonitorHandler) HandleMonitor(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.Add(conn)
	defer h.hub.Remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
