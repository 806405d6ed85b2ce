package department

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	departments := r.Group("/departments")
	{
		departments.POST("/new", h.Create)
		departments.GET("/daily_pay", h.TotalPay)
		departments.POST("/total_paid", h.TotalPaid)
		departments.GET("/history", h.History)
	}
}
