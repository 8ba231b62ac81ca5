package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go-paygrade/internal/employee"
	"go-paygrade/internal/rank"
	reportingerrors "go-paygrade/internal/reporting/errors"
	"go-paygrade/internal/salarycalc"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const distributionCacheTTL = 5 * time.Minute

//go:generate mockgen -source=reporting_service.go -destination=mock/reporting_service_mock.go -package=mock
type Service interface {
	GetProjection(ctx context.Context, companyID, employeeID string) (ProjectionResponse, error)
	GetStepDistribution(ctx context.Context, companyID string, filter DistributionFilter) (StepDistributionResponse, error)
	GetPromotionPreview(ctx context.Context, companyID, employeeID, newRankID string) (PromotionPreviewResponse, error)
}

type service struct {
	employeeRepo employee.Repository
	rankRepo     rank.Repository
	rdb          *redis.Client
	sf           *singleflight.Group
	logger       *zap.Logger
}

func NewService(
	employeeRepo employee.Repository,
	rankRepo rank.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("reporting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporting.service")
	}
	return &service{
		employeeRepo: employeeRepo,
		rankRepo:     rankRepo,
		rdb:          rdb,
		sf:           &singleflight.Group{},
		logger:       l,
	}
}

func (s *service) GetProjection(ctx context.Context, companyID, employeeID string) (ProjectionResponse, error) {
	emp, rk, err := s.loadRankedEmployee(ctx, companyID, employeeID)
	if err != nil {
		return ProjectionResponse{}, err
	}

	entries, err := salarycalc.Projection(rk, emp.CurrentStep, emp.EmploymentDate)
	if err != nil {
		return ProjectionResponse{}, err
	}

	resp := ProjectionResponse{
		EmployeeID:     emp.ID.String(),
		RankID:         rk.ID.String(),
		RankName:       rk.Name,
		CurrentStep:    emp.CurrentStep,
		CurrentSalary:  emp.CurrentSalary.StringFixed(2),
		EmploymentDate: emp.EmploymentDate.Format("2006-01-02"),
		AtCeiling:      len(entries) == 0,
		Entries:        make([]ProjectionEntryResponse, len(entries)),
	}
	for i, e := range entries {
		resp.Entries[i] = ProjectionEntryResponse{
			Year:          e.Year,
			Step:          e.Step,
			Salary:        e.Salary.StringFixed(2),
			EffectiveDate: e.EffectiveDate.Format("2006-01-02"),
			IsCeiling:     e.IsCeiling,
		}
	}
	return resp, nil
}

// GetStepDistribution dihitung dari proyeksi pegawai aktif dan di-cache di
// Redis; singleflight mencegah beberapa request menghitung ulang bersamaan.
func (s *service) GetStepDistribution(ctx context.Context, companyID string, filter DistributionFilter) (StepDistributionResponse, error) {
	cacheKey := fmt.Sprintf("report:stepdist:%s:%s:%s", companyID, filter.RankID, filter.DepartmentID)

	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached StepDistributionResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.computeStepDistribution(ctx, companyID, filter)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, distributionCacheTTL).Err(); err != nil {
					s.logger.Warn("cache step distribution failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return StepDistributionResponse{}, err
	}
	return v.(StepDistributionResponse), nil
}

func (s *service) computeStepDistribution(ctx context.Context, companyID string, filter DistributionFilter) (StepDistributionResponse, error) {
	var (
		employees []employee.Employee
		err       error
	)
	if filter.RankID != "" {
		var dept *string
		if filter.DepartmentID != "" {
			dept = &filter.DepartmentID
		}
		employees, err = s.employeeRepo.FindActiveByRank(ctx, companyID, filter.RankID, dept)
	} else {
		employees, err = s.employeeRepo.FindActiveRanked(ctx, companyID)
	}
	if err != nil {
		return StepDistributionResponse{}, err
	}

	ranks, err := s.rankRepo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return StepDistributionResponse{}, err
	}
	rankNames := make(map[string]string, len(ranks))
	for _, rk := range ranks {
		rankNames[rk.ID.String()] = rk.Name
	}

	type key struct {
		rankID string
		step   int
	}
	counts := make(map[key]int)
	totals := make(map[string]int)
	for _, emp := range employees {
		if emp.RankID == nil {
			continue
		}
		if filter.DepartmentID != "" {
			if emp.DepartmentID == nil || emp.DepartmentID.String() != filter.DepartmentID {
				continue
			}
		}
		rankID := emp.RankID.String()
		counts[key{rankID: rankID, step: emp.CurrentStep}]++
		totals[rankID]++
	}

	resp := StepDistributionResponse{}
	hundred := decimal.NewFromInt(100)
	for rankID, total := range totals {
		dist := RankDistribution{
			RankID:   rankID,
			RankName: rankNames[rankID],
			Total:    total,
		}
		for k, count := range counts {
			if k.rankID != rankID {
				continue
			}
			pct := decimal.NewFromInt(int64(count)).
				Div(decimal.NewFromInt(int64(total))).
				Mul(hundred)
			dist.Steps = append(dist.Steps, StepBucket{
				Step:       k.step,
				Count:      count,
				Percentage: pct.StringFixed(2),
			})
		}
		sort.Slice(dist.Steps, func(i, j int) bool { return dist.Steps[i].Step < dist.Steps[j].Step })
		resp.Ranks = append(resp.Ranks, dist)
		resp.TotalEmployees += total
	}
	sort.Slice(resp.Ranks, func(i, j int) bool { return resp.Ranks[i].RankName < resp.Ranks[j].RankName })

	return resp, nil
}

func (s *service) GetPromotionPreview(ctx context.Context, companyID, employeeID, newRankID string) (PromotionPreviewResponse, error) {
	emp, currentRank, err := s.loadRankedEmployee(ctx, companyID, employeeID)
	if err != nil {
		return PromotionPreviewResponse{}, err
	}

	newRank, err := s.rankRepo.FindByIDAndCompany(ctx, companyID, newRankID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PromotionPreviewResponse{}, reportingerrors.ErrRankNotFound
		}
		return PromotionPreviewResponse{}, err
	}

	outcome, err := salarycalc.PromotionStep(currentRank, newRank, emp.CurrentSalary)
	if err != nil {
		return PromotionPreviewResponse{}, err
	}
	increase := salarycalc.Increase(emp.CurrentSalary, outcome.NewSalary)

	return PromotionPreviewResponse{
		EmployeeID:         emp.ID.String(),
		CurrentRankID:      currentRank.ID.String(),
		CurrentRankName:    currentRank.Name,
		NewRankID:          newRank.ID.String(),
		NewRankName:        newRank.Name,
		CurrentStep:        emp.CurrentStep,
		NewStep:            outcome.NewStep,
		CurrentSalary:      emp.CurrentSalary.StringFixed(2),
		NewSalary:          outcome.NewSalary.StringFixed(2),
		Increase:           increase.Amount.StringFixed(2),
		PercentageIncrease: increase.Percent.StringFixed(2),
		Explanation:        outcome.Explanation,
	}, nil
}

func (s *service) loadRankedEmployee(ctx context.Context, companyID, employeeID string) (*employee.Employee, *rank.Rank, error) {
	emp, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, reportingerrors.ErrEmployeeNotFound
		}
		return nil, nil, err
	}
	if emp.RankID == nil {
		return nil, nil, reportingerrors.ErrEmployeeNotRanked
	}

	rk, err := s.rankRepo.FindByIDAndCompany(ctx, companyID, emp.RankID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, reportingerrors.ErrRankNotFound
		}
		return nil, nil, err
	}
	return emp, rk, nil
}
