package eligibility

import (
	"context"
	"database/sql"
	"errors"
	"time"

	eligibilityerrors "go-paygrade/internal/eligibility/errors"
	"go-paygrade/internal/employee"
	"go-paygrade/internal/rank"
	"go-paygrade/internal/salarycalc"
	"go-paygrade/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=eligibility_service.go -destination=mock/eligibility_service_mock.go -package=mock
type Service interface {
	RunScan(ctx context.Context, companyID string) (ScanResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]EligibilityResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EligibilityResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	rankRepo     rank.Repository
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	rankRepo rank.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(db, repo, employeeRepo, rankRepo, nil, logger...)
}

// NewServiceWithClock menerima sumber waktu eksplisit. Keputusan due/not-due
// scanner bergantung pada "hari ini", jadi test butuh jam yang deterministik.
func NewServiceWithClock(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	rankRepo rank.Repository,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("eligibility.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("eligibility.service")
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		rankRepo:     rankRepo,
		now:          now,
		logger:       l,
	}
}

// RunScan melakukan satu pass atas seluruh pegawai aktif berpangkat dalam
// satu company dan mematerialisasi record PENDING untuk step yang sudah due.
// Idempoten: run ulang pada hari yang sama tidak menghasilkan record baru.
func (s *service) RunScan(ctx context.Context, companyID string) (ScanResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Info("eligibility scan started",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
	)

	if _, err := uuid.Parse(companyID); err != nil {
		return ScanResponse{}, eligibilityerrors.ErrInvalidCompanyID
	}

	employees, err := s.employeeRepo.FindActiveRanked(ctx, companyID)
	if err != nil {
		s.logger.Error("eligibility scan list employees failed", zap.Error(err))
		return ScanResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("eligibility scan begin tx failed", zap.Error(err))
		return ScanResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	today := s.now().Truncate(24 * time.Hour)
	rankCache := make(map[uuid.UUID]*rank.Rank)

	result := ScanResponse{Scanned: len(employees)}
	for _, emp := range employees {
		created, err := s.scanOne(ctx, qtx, rankCache, emp, today)
		if err != nil {
			// Satu record bermasalah tidak boleh menggugurkan batch.
			s.logger.Warn("eligibility scan skipped employee",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			result.Skipped++
			continue
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("eligibility scan commit failed", zap.Error(err))
		return ScanResponse{}, err
	}

	s.logger.Info("eligibility scan finished",
		zap.String("company_id", companyID),
		zap.Int("scanned", result.Scanned),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *service) scanOne(
	ctx context.Context,
	qtx Repository,
	rankCache map[uuid.UUID]*rank.Rank,
	emp employee.Employee,
	today time.Time,
) (bool, error) {
	rk, ok := rankCache[*emp.RankID]
	if !ok {
		var err error
		rk, err = s.rankRepo.FindByIDAndCompany(ctx, emp.CompanyID.String(), emp.RankID.String())
		if err != nil {
			return false, err
		}
		rankCache[*emp.RankID] = rk
	}

	forecast := salarycalc.NextEligibility(emp.EmploymentDate, emp.CurrentStep, rk.StepCount, rk.StepPeriodYears)
	if forecast.AtCeiling {
		return false, nil
	}
	if forecast.EligibilityDate.After(today) {
		return false, nil
	}

	exists, err := qtx.HasOpenForStep(ctx, emp.ID.String(), forecast.NextStep)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	nextSalary, err := salarycalc.SalaryForStep(rk, forecast.NextStep)
	if err != nil {
		// Schedule gap: konfigurasi pangkat bolong, lewati pegawai ini.
		return false, nil
	}

	record := &Eligibility{
		ID:              uuid.New(),
		CompanyID:       emp.CompanyID,
		EmployeeID:      emp.ID,
		RankID:          *emp.RankID,
		CurrentStep:     emp.CurrentStep,
		NextStep:        forecast.NextStep,
		CurrentSalary:   emp.CurrentSalary,
		NextSalary:      nextSalary,
		EligibilityDate: forecast.EligibilityDate,
		Status:          StatusPending,
	}

	if err := qtx.Create(ctx, record); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, eligibilityerrors.ErrDuplicateOpenEligibility) {
			// Ras antara dua scan: index unik menang, anggap sudah ada.
			return false, nil
		}
		return false, mapped
	}

	return true, nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]EligibilityResponse, error) {
	if filter.Status != "" {
		switch filter.Status {
		case StatusPending, StatusApproved, StatusRejected, StatusExpired:
		default:
			return nil, eligibilityerrors.ErrInvalidStatusFilter
		}
	}

	records, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EligibilityResponse, error) {
	record, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EligibilityResponse{}, eligibilityerrors.ErrEligibilityNotFound
		}
		return EligibilityResponse{}, err
	}
	return mapToResponse(*record), nil
}
