package eligibility

import (
	"context"
	"database/sql"
	"testing"
	"time"

	eligibilityerrors "go-paygrade/internal/eligibility/errors"
	"go-paygrade/internal/employee"
	"go-paygrade/internal/rank"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn             func(tx *sql.Tx) Repository
	createFn             func(ctx context.Context, e *Eligibility) error
	findAllByCompanyFn   func(ctx context.Context, companyID string, filter ListFilter) ([]Eligibility, error)
	findByIDAndCompanyFn func(ctx context.Context, companyID string, id string) (*Eligibility, error)
	hasOpenForStepFn     func(ctx context.Context, employeeID string, nextStep int) (bool, error)
	updateFn             func(ctx context.Context, e *Eligibility) error
	expirePendingUpToFn  func(ctx context.Context, employeeID string, maxStep int, processedBy string) (int64, error)
	expireAllPendingFn   func(ctx context.Context, employeeID string, processedBy string) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeRepo) Create(ctx context.Context, e *Eligibility) error { return f.createFn(ctx, e) }
func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]Eligibility, error) {
	return f.findAllByCompanyFn(ctx, companyID, filter)
}
func (f *fakeRepo) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Eligibility, error) {
	return f.findByIDAndCompanyFn(ctx, companyID, id)
}
func (f *fakeRepo) HasOpenForStep(ctx context.Context, employeeID string, nextStep int) (bool, error) {
	return f.hasOpenForStepFn(ctx, employeeID, nextStep)
}
func (f *fakeRepo) Update(ctx context.Context, e *Eligibility) error { return f.updateFn(ctx, e) }
func (f *fakeRepo) ExpirePendingUpTo(ctx context.Context, employeeID string, maxStep int, processedBy string) (int64, error) {
	return f.expirePendingUpToFn(ctx, employeeID, maxStep, processedBy)
}
func (f *fakeRepo) ExpireAllPending(ctx context.Context, employeeID string, processedBy string) (int64, error) {
	return f.expireAllPendingFn(ctx, employeeID, processedBy)
}

type fakeEmployeeRepo struct {
	findActiveRankedFn func(ctx context.Context, companyID string) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepo) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) FindActiveRanked(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.findActiveRankedFn(ctx, companyID)
}
func (f *fakeEmployeeRepo) FindActiveByRank(ctx context.Context, companyID, rankID string, departmentID *string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) DistinctActiveCompanyIDs(ctx context.Context) ([]string, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) UpdateProgression(ctx context.Context, emp *employee.Employee, expectedStep int) (int64, error) {
	return 1, nil
}

type fakeRankRepo struct {
	ranks map[string]*rank.Rank
}

func (f *fakeRankRepo) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*rank.Rank, error) {
	if rk, ok := f.ranks[id]; ok {
		return rk, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRankRepo) FindAllByCompany(ctx context.Context, companyID string) ([]rank.Rank, error) {
	out := make([]rank.Rank, 0, len(f.ranks))
	for _, rk := range f.ranks {
		out = append(out, *rk)
	}
	return out, nil
}

func testRank(companyID uuid.UUID, periodYears int, amounts ...int64) *rank.Rank {
	r := &rank.Rank{
		ID:              uuid.New(),
		CompanyID:       companyID,
		Name:            "Analyst",
		StepCount:       len(amounts),
		StepPeriodYears: periodYears,
	}
	for i, a := range amounts {
		r.Steps = append(r.Steps, rank.SalaryStep{
			ID:           uuid.New(),
			RankID:       r.ID,
			StepNumber:   i,
			SalaryAmount: decimal.NewFromInt(a),
		})
	}
	return r
}

func testEmployee(companyID uuid.UUID, rk *rank.Rank, step int, employed time.Time) employee.Employee {
	salary, _ := rk.SalaryAt(step)
	return employee.Employee{
		ID:             uuid.New(),
		CompanyID:      companyID,
		RankID:         &rk.ID,
		FullName:       "Test Employee",
		CurrentStep:    step,
		CurrentSalary:  salary,
		EmploymentDate: employed,
		Active:         true,
	}
}

func fixedClock(y, m, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, time.Month(m), d, 10, 30, 0, 0, time.UTC)
	}
}

func TestService_RunScan(t *testing.T) {
	companyID := uuid.New()
	employed := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success creates pending record for due employee", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		rk := testRank(companyID, 2, 1000, 1200, 1500)
		emp := testEmployee(companyID, rk, 0, employed)

		var created []Eligibility
		repo := &fakeRepo{
			createFn: func(ctx context.Context, e *Eligibility) error {
				created = append(created, *e)
				return nil
			},
			hasOpenForStepFn: func(ctx context.Context, employeeID string, nextStep int) (bool, error) {
				return false, nil
			},
		}
		empRepo := &fakeEmployeeRepo{
			findActiveRankedFn: func(ctx context.Context, companyID string) ([]employee.Employee, error) {
				return []employee.Employee{emp}, nil
			},
		}
		rankRepo := &fakeRankRepo{ranks: map[string]*rank.Rank{rk.ID.String(): rk}}

		svc := NewServiceWithClock(db, repo, empRepo, rankRepo, fixedClock(2017, 6, 1))

		mock.ExpectBegin()
		mock.ExpectCommit()
		result, err := svc.RunScan(context.Background(), companyID.String())
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Scanned)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 0, result.Skipped)

		assert.Len(t, created, 1)
		assert.Equal(t, emp.ID, created[0].EmployeeID)
		assert.Equal(t, 1, created[0].NextStep)
		assert.Equal(t, StatusPending, created[0].Status)
		assert.Equal(t, time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), created[0].EligibilityDate)
		assert.Equal(t, "1200.00", created[0].NextSalary.StringFixed(2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second run on the same day creates nothing", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		rk := testRank(companyID, 2, 1000, 1200, 1500)
		emp := testEmployee(companyID, rk, 0, employed)

		repo := &fakeRepo{
			createFn: func(ctx context.Context, e *Eligibility) error {
				t.Fatal("create must not be called when an open record exists")
				return nil
			},
			hasOpenForStepFn: func(ctx context.Context, employeeID string, nextStep int) (bool, error) {
				return true, nil
			},
		}
		empRepo := &fakeEmployeeRepo{
			findActiveRankedFn: func(ctx context.Context, companyID string) ([]employee.Employee, error) {
				return []employee.Employee{emp}, nil
			},
		}
		rankRepo := &fakeRankRepo{ranks: map[string]*rank.Rank{rk.ID.String(): rk}}

		svc := NewServiceWithClock(db, repo, empRepo, rankRepo, fixedClock(2017, 6, 1))

		mock.ExpectBegin()
		mock.ExpectCommit()
		result, err := svc.RunScan(context.Background(), companyID.String())
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("not yet due and at ceiling are skipped", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		rk := testRank(companyID, 2, 1000, 1200, 1500)
		notDue := testEmployee(companyID, rk, 0, employed)      // due 2017, hari ini 2016
		atCeiling := testEmployee(companyID, rk, 2, employed)   // step tertinggi

		repo := &fakeRepo{
			createFn: func(ctx context.Context, e *Eligibility) error {
				t.Fatal("create must not be called")
				return nil
			},
			hasOpenForStepFn: func(ctx context.Context, employeeID string, nextStep int) (bool, error) {
				return false, nil
			},
		}
		empRepo := &fakeEmployeeRepo{
			findActiveRankedFn: func(ctx context.Context, companyID string) ([]employee.Employee, error) {
				return []employee.Employee{notDue, atCeiling}, nil
			},
		}
		rankRepo := &fakeRankRepo{ranks: map[string]*rank.Rank{rk.ID.String(): rk}}

		svc := NewServiceWithClock(db, repo, empRepo, rankRepo, fixedClock(2016, 6, 1))

		mock.ExpectBegin()
		mock.ExpectCommit()
		result, err := svc.RunScan(context.Background(), companyID.String())
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Scanned)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 2, result.Skipped)
	})

	t.Run("unique index race is treated as already scanned", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		rk := testRank(companyID, 2, 1000, 1200, 1500)
		emp := testEmployee(companyID, rk, 0, employed)

		repo := &fakeRepo{
			createFn: func(ctx context.Context, e *Eligibility) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_eligibility_open_step"}
			},
			hasOpenForStepFn: func(ctx context.Context, employeeID string, nextStep int) (bool, error) {
				return false, nil
			},
		}
		empRepo := &fakeEmployeeRepo{
			findActiveRankedFn: func(ctx context.Context, companyID string) ([]employee.Employee, error) {
				return []employee.Employee{emp}, nil
			},
		}
		rankRepo := &fakeRankRepo{ranks: map[string]*rank.Rank{rk.ID.String(): rk}}

		svc := NewServiceWithClock(db, repo, empRepo, rankRepo, fixedClock(2017, 6, 1))

		mock.ExpectBegin()
		mock.ExpectCommit()
		result, err := svc.RunScan(context.Background(), companyID.String())
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("schedule gap skips employee without failing the batch", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		rk := testRank(companyID, 2, 1000) // StepCount dinaikkan, entri step 1 tidak ada
		rk.StepCount = 3
		emp := testEmployee(companyID, rk, 0, employed)

		repo := &fakeRepo{
			createFn: func(ctx context.Context, e *Eligibility) error {
				t.Fatal("create must not be called on schedule gap")
				return nil
			},
			hasOpenForStepFn: func(ctx context.Context, employeeID string, nextStep int) (bool, error) {
				return false, nil
			},
		}
		empRepo := &fakeEmployeeRepo{
			findActiveRankedFn: func(ctx context.Context, companyID string) ([]employee.Employee, error) {
				return []employee.Employee{emp}, nil
			},
		}
		rankRepo := &fakeRankRepo{ranks: map[string]*rank.Rank{rk.ID.String(): rk}}

		svc := NewServiceWithClock(db, repo, empRepo, rankRepo, fixedClock(2017, 6, 1))

		mock.ExpectBegin()
		mock.ExpectCommit()
		result, err := svc.RunScan(context.Background(), companyID.String())
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("negative case invalid company id", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		svc := NewServiceWithClock(db, &fakeRepo{}, &fakeEmployeeRepo{}, &fakeRankRepo{}, fixedClock(2017, 6, 1))

		_, err := svc.RunScan(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, eligibilityerrors.ErrInvalidCompanyID)
	})
}

func TestService_GetAll(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := &fakeRepo{
			findAllByCompanyFn: func(ctx context.Context, cid string, filter ListFilter) ([]Eligibility, error) {
				assert.Equal(t, StatusPending, filter.Status)
				return []Eligibility{{
					ID:            uuid.New(),
					CompanyID:     companyID,
					EmployeeID:    uuid.New(),
					RankID:        uuid.New(),
					CurrentSalary: decimal.NewFromInt(1000),
					NextSalary:    decimal.NewFromInt(1200),
					Status:        StatusPending,
				}}, nil
			},
		}
		svc := NewService(db, repo, &fakeEmployeeRepo{}, &fakeRankRepo{})

		resp, err := svc.GetAll(context.Background(), companyID.String(), ListFilter{Status: StatusPending})
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "1200.00", resp[0].NextSalary)
	})

	t.Run("negative case invalid status filter", func(t *testing.T) {
		svc := NewService(db, &fakeRepo{}, &fakeEmployeeRepo{}, &fakeRankRepo{})

		_, err := svc.GetAll(context.Background(), companyID.String(), ListFilter{Status: "DONE"})
		assert.ErrorIs(t, err, eligibilityerrors.ErrInvalidStatusFilter)
	})
}

func TestService_GetByID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()

	t.Run("negative case not found", func(t *testing.T) {
		repo := &fakeRepo{
			findByIDAndCompanyFn: func(ctx context.Context, cid string, id string) (*Eligibility, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := NewService(db, repo, &fakeEmployeeRepo{}, &fakeRankRepo{})

		_, err := svc.GetByID(context.Background(), companyID.String(), uuid.New().String())
		assert.ErrorIs(t, err, eligibilityerrors.ErrEligibilityNotFound)
	})
}
