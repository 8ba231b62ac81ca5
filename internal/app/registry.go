package app

import (
	"database/sql"

	"go-paygrade/internal/eligibility"
	"go-paygrade/internal/employee"
	"go-paygrade/internal/history"
	"go-paygrade/internal/messaging/kafka"
	"go-paygrade/internal/progression"
	"go-paygrade/internal/rank"
	"go-paygrade/internal/reporting"
	"go-paygrade/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rankRepo := rank.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	eligibilityRepo := eligibility.NewRepository(gormDB)
	historyRepo := history.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	eligibilityService := eligibility.NewService(db, eligibilityRepo, employeeRepo, rankRepo)
	progressionService := progression.NewService(
		db,
		eligibilityRepo,
		employeeRepo,
		rankRepo,
		historyRepo,
		outboxRepo,
		counterRepo,
	)
	historyService := history.NewService(historyRepo)
	reportingService := reporting.NewService(employeeRepo, rankRepo, rdb)

	// --- Handlers ---
	eligibilityHandler := eligibility.NewHandler(eligibilityService)
	progressionHandler := progression.NewHandlerWithRedis(progressionService, rdb)
	historyHandler := history.NewHandler(historyService)
	reportingHandler := reporting.NewHandler(reportingService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		eligibility.RegisterRoutes(api, eligibilityHandler)
		progression.RegisterRoutes(api, progressionHandler, rdb)
		history.RegisterRoutes(api, historyHandler)
		reporting.RegisterRoutes(api, reportingHandler)
	}

	return nil
}
