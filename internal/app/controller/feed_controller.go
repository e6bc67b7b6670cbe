package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	"github.com/smreview/smreview-backend/internal/middleware"
	"github.com/smreview/smreview-backend/internal/sync"
	ws "github.com/smreview/smreview-backend/internal/websocket"
	"github.com/smreview/smreview-backend/pkg/logger"
)

// FeedController upgrades subscribers onto the live feed channel
type FeedController struct {
	hub        *ws.Hub
	syncClient *sync.Client
	upgrader   gorillaws.Upgrader
}

func NewFeedController(hub *ws.Hub, syncClient *sync.Client, allowedOrigins []string) *FeedController {
	return &FeedController{
		hub:        hub,
		syncClient: syncClient,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if origin == allowed || allowed == "*" {
						return true
					}
				}
				return false
			},
		},
	}
}

// Subscribe upgrades the connection and streams feed snapshots
// GET /api/v1/feed/ws
func (c *FeedController) Subscribe(ctx *gin.Context) {
	viewerID := middleware.GetViewerID(ctx)

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", err, map[string]interface{}{
			"viewer_id": viewerID,
		})
		return
	}

	client := &ws.Client{
		Hub:      c.hub,
		Conn:     &ws.Conn{Conn: conn},
		ViewerID: viewerID,
		Send:     make(chan []byte, 256),
	}
	c.hub.Register(client)

	// Initial snapshot so the subscriber renders without a REST call
	if snapshot, err := json.Marshal(ws.Event{
		Type:    "feed",
		Payload: c.syncClient.SnapshotFor(ctx.Request.Context(), viewerID),
	}); err == nil {
		select {
		case client.Send <- snapshot:
		default:
		}
	}

	go client.WritePump()
	go client.ReadPump()
}
