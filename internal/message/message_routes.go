package message

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts messaging for both roles; any authenticated user
// may chat with any other.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, stream *StreamHandler, authn gin.HandlerFunc) {
	messages := r.Group("/messages")
	messages.Use(authn)
	{
		messages.POST("", h.Send)
		messages.GET("/unread-count", h.UnreadCount)
		messages.GET("/conversation/:userId", h.GetConversation)
		messages.POST("/conversation/:userId/read", h.MarkRead)
		messages.GET("/stream", stream.Stream)
	}
}
