package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn, adminOnly, employeeOnly gin.HandlerFunc) {
	attendance := r.Group("/attendance")
	attendance.Use(authn)
	{
		attendance.POST("", adminOnly, h.Mark)
		attendance.GET("/employee/:employeeId", adminOnly, h.GetByEmployee)
		attendance.DELETE("/:id", adminOnly, h.Delete)

		attendance.GET("/mine", employeeOnly, h.GetMine)
	}
}
