package eligibility

import (
	"go-paygrade/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	eligibilities := r.Group("/eligibilities")
	eligibilities.Use(middleware.AuthMiddleware())
	{
		eligibilities.GET("", handler.GetAll)
		eligibilities.GET("/:id", handler.GetById)
		eligibilities.POST("/scan", handler.RunScan)
	}
}
