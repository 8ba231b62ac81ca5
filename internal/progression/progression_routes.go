package progression

import (
	"go-paygrade/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	progressions := r.Group("/progressions")
	progressions.Use(middleware.AuthMiddleware())
	progressions.Use(middleware.RateLimitByUser(rate.Limit(10), 20))
	{
		progressions.POST("/eligibilities/:id/approve", handler.ApproveOne)
		progressions.POST("/eligibilities/:id/reject", handler.Reject)
		progressions.POST("/employees/:employeeId/manual-jump", handler.ManualJump)
		progressions.POST("/employees/:employeeId/promote", handler.Promote)
		progressions.POST("/mass-raise/preview", handler.MassRaisePreview)

		// Endpoint batch dilindungi idempotency key agar submit ganda
		// (retry klien) tidak memproses dua kali.
		if redisClient != nil {
			progressions.POST(
				"/eligibilities/approve-batch",
				middleware.Idempotency(redisClient),
				handler.ApproveBatch,
			)
			progressions.POST(
				"/mass-raise",
				middleware.Idempotency(redisClient),
				handler.MassRaise,
			)
		} else {
			progressions.POST("/eligibilities/approve-batch", handler.ApproveBatch)
			progressions.POST("/mass-raise", handler.MassRaise)
		}
	}
}
