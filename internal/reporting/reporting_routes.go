package reporting

import (
	"go-paygrade/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/employees/:employeeId/projection", handler.GetProjection)
		reports.GET("/employees/:employeeId/promotion-preview", handler.GetPromotionPreview)
		reports.GET("/step-distribution", handler.GetStepDistribution)
	}
}
