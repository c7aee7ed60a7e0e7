package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, loginLimiter, authn gin.HandlerFunc) {
	routes := r.Group("/auth")
	{
		routes.POST("/login", loginLimiter, h.Login)
		routes.POST("/refresh", h.Refresh)
		routes.GET("/me", authn, h.Me)
		routes.POST("/logout", authn, h.Logout)
	}
}
