package app

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go-paygrade/internal/eligibility"
	"go-paygrade/internal/employee"
	"go-paygrade/internal/rank"
	"go-paygrade/internal/shared/connection"

	"go.uber.org/zap"
)

const defaultScanIntervalHours = 24

// RunScanner menjalankan scan eligibility secara periodik untuk semua
// company yang punya pegawai aktif. Scan bersifat idempotent, jadi aman
// jika dua instance kebetulan jalan berdekatan.
func RunScanner() error {
	logger := zap.L().Named("app.scanner")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	employeeRepo := employee.NewRepository(gormDB)
	eligibilityService := eligibility.NewService(
		sqlDB,
		eligibility.NewRepository(gormDB),
		employeeRepo,
		rank.NewRepository(gormDB),
	)

	interval := time.Duration(defaultScanIntervalHours) * time.Hour
	if raw := os.Getenv("SCAN_INTERVAL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			interval = time.Duration(hours) * time.Hour
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("scanner started", zap.Duration("interval", interval))

	// Pass pertama langsung saat start, tidak menunggu tick pertama.
	scanAllCompanies(ctx, employeeRepo, eligibilityService, logger)

	for {
		select {
		case <-ticker.C:
			scanAllCompanies(ctx, employeeRepo, eligibilityService, logger)
		case <-quit:
			logger.Info("scanner shutting down")
			cancel()
			return nil
		}
	}
}

func scanAllCompanies(
	ctx context.Context,
	employeeRepo employee.Repository,
	service eligibility.Service,
	logger *zap.Logger,
) {
	companyIDs, err := employeeRepo.DistinctActiveCompanyIDs(ctx)
	if err != nil {
		logger.Error("list company scopes failed", zap.Error(err))
		return
	}

	for _, companyID := range companyIDs {
		result, err := service.RunScan(ctx, companyID)
		if err != nil {
			logger.Error("eligibility scan failed",
				zap.String("company_id", companyID),
				zap.Error(err),
			)
			continue
		}
		logger.Info("eligibility scan finished",
			zap.String("company_id", companyID),
			zap.Int("scanned", result.Scanned),
			zap.Int("created", result.Created),
			zap.Int("skipped", result.Skipped),
		)
	}
}
