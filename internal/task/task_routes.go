package task

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn, adminOnly, employeeOnly gin.HandlerFunc) {
	tasks := r.Group("/tasks")
	tasks.Use(authn)
	{
		// Assignment and removal are admin operations.
		tasks.POST("", adminOnly, h.Create)
		tasks.GET("", adminOnly, h.GetAll)
		tasks.GET("/counters", adminOnly, h.Counters)
		tasks.GET("/employee/:employeeId", adminOnly, h.GetByEmployee)
		tasks.PUT("/:id", adminOnly, h.Update)
		tasks.DELETE("/:id", adminOnly, h.Delete)

		// Employees work their own list.
		tasks.GET("/mine", employeeOnly, h.GetMine)
		tasks.GET("/mine/counters", employeeOnly, h.MyCounters)
		tasks.PATCH("/:id/status", employeeOnly, h.UpdateStatus)
	}
}
