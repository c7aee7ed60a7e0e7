package dashboard

import (
	"net/http"

	"github.com/niranjan-18-25/WorkOrbit/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// StreamHandler serves the admin dashboard as a long-lived subscription:
// an initial snapshot, then a recomputed snapshot whenever a write
// touches users, tasks or reviews. Closing the socket unsubscribes.
type StreamHandler struct {
	service  Service
	bus      *events.Bus
	upgrader websocket.Upgrader
}

func NewStreamHandler(service Service, bus *events.Bus) *StreamHandler {
	return &StreamHandler{
		service: service,
		bus:     bus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *StreamHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	changes, cancel := h.bus.Subscribe(events.TableUsers, events.TableTasks, events.TableReviews)
	defer cancel()

	send := func() bool {
		state, err := h.service.AdminDashboard(c.Request.Context())
		if err != nil {
			zap.L().Warn("dashboard snapshot failed", zap.Error(err))
			return false
		}
		return conn.WriteJSON(state) == nil
	}

	if !send() {
		return
	}

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
			if !send() {
				return
			}
		case <-clientClosed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
