package dashboard

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, stream *StreamHandler, authn, adminOnly, employeeOnly gin.HandlerFunc) {
	routes := r.Group("/dashboard")
	routes.Use(authn)
	{
		routes.GET("/admin", adminOnly, h.Admin)
		routes.GET("/stream", adminOnly, stream.Stream)
		routes.GET("/employee/:employeeId", adminOnly, h.EmployeeDetail)
		routes.GET("/home", employeeOnly, h.Home)
	}
}
