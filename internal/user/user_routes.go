package user

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts employee management. All routes are admin-only;
// the middlewares are injected by the registry to keep this package free
// of auth wiring.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn, adminOnly gin.HandlerFunc) {
	employees := r.Group("/employees")
	employees.Use(authn, adminOnly)
	{
		employees.GET("", h.GetAll)
		employees.POST("", h.Create)
		employees.GET("/:id", h.GetByID)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}
