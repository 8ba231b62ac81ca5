package eligibility

import (
	"context"
	"database/sql"

	"go-paygrade/internal/tenant"

	"gorm.io/gorm"
)

// ListFilter membatasi hasil FindAllByCompany.
type ListFilter struct {
	Status     string
	EmployeeID string
}

//go:generate mockgen -source=eligibility_repo.go -destination=mock/eligibility_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Eligibility) error
	FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]Eligibility, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Eligibility, error)
	HasOpenForStep(ctx context.Context, employeeID string, nextStep int) (bool, error)
	Update(ctx context.Context, e *Eligibility) error
	ExpirePendingUpTo(ctx context.Context, employeeID string, maxStep int, processedBy string) (int64, error)
	ExpireAllPending(ctx context.Context, employeeID string, processedBy string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, e *Eligibility) error {
	if r.tx != nil {
		query := `
INSERT INTO salary_step_eligibilities (
	id, company_id, employee_id, rank_id,
	current_step, next_step, current_salary, next_salary,
	eligibility_date, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
`
		_, err := r.tx.ExecContext(
			ctx, query,
			e.ID, e.CompanyID, e.EmployeeID, e.RankID,
			e.CurrentStep, e.NextStep, e.CurrentSalary, e.NextSalary,
			e.EligibilityDate, e.Status,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]Eligibility, error) {
	query := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}

	var records []Eligibility
	err := query.
		Order("eligibility_date ASC, created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Eligibility, error) {
	var e Eligibility
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) HasOpenForStep(ctx context.Context, employeeID string, nextStep int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Eligibility{}).
		Where("employee_id = ?", employeeID).
		Where("next_step = ?", nextStep).
		Where("status = ?", StatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, e *Eligibility) error {
	if r.tx != nil {
		query := `
UPDATE salary_step_eligibilities
SET
	status = $1,
	processed_at = $2,
	processed_by = $3,
	rejection_reason = $4,
	history_entry_id = $5,
	updated_at = NOW()
WHERE id = $6
`
		_, err := r.tx.ExecContext(
			ctx, query,
			e.Status, e.ProcessedAt, e.ProcessedBy,
			e.RejectionReason, e.HistoryEntryID, e.ID,
		)
		return err
	}
	return r.db.WithContext(ctx).Save(e).Error
}

// ExpirePendingUpTo menandai EXPIRED semua record PENDING milik pegawai
// dengan next_step <= maxStep. Dipakai manual jump dan mass raise.
func (r *repository) ExpirePendingUpTo(ctx context.Context, employeeID string, maxStep int, processedBy string) (int64, error) {
	query := `
UPDATE salary_step_eligibilities
SET
	status = $1,
	processed_at = NOW(),
	processed_by = $2,
	updated_at = NOW()
WHERE employee_id = $3
	AND status = $4
	AND next_step <= $5
`
	return r.expire(ctx, query, StatusExpired, processedBy, employeeID, StatusPending, maxStep)
}

// ExpireAllPending menandai EXPIRED semua record PENDING milik pegawai.
// Dipakai promosi: step pangkat lama tidak lagi relevan.
func (r *repository) ExpireAllPending(ctx context.Context, employeeID string, processedBy string) (int64, error) {
	query := `
UPDATE salary_step_eligibilities
SET
	status = $1,
	processed_at = NOW(),
	processed_by = $2,
	updated_at = NOW()
WHERE employee_id = $3
	AND status = $4
`
	return r.expire(ctx, query, StatusExpired, processedBy, employeeID, StatusPending)
}

func (r *repository) expire(ctx context.Context, query string, args ...any) (int64, error) {
	if r.tx != nil {
		res, err := r.tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}
	result := r.db.WithContext(ctx).Exec(query, args...)
	return result.RowsAffected, result.Error
}
