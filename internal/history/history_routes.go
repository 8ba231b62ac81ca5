package history

import (
	"go-paygrade/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	histories := r.Group("/salary-history")
	histories.Use(middleware.AuthMiddleware())
	{
		histories.GET("/employees/:employeeId", handler.GetByEmployee)
		histories.GET("/:id", handler.GetById)
	}
}
