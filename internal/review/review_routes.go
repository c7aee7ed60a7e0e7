package review

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authn, adminOnly, employeeOnly gin.HandlerFunc) {
	reviews := r.Group("/reviews")
	reviews.Use(authn)
	{
		reviews.POST("", adminOnly, h.Create)
		reviews.GET("", adminOnly, h.GetAll)
		reviews.GET("/employee/:employeeId", adminOnly, h.GetByEmployee)
		reviews.GET("/employee/:employeeId/average", adminOnly, h.AverageByEmployee)

		reviews.GET("/mine", employeeOnly, h.GetMine)
	}
}
