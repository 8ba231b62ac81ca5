package employee

import (
	"context"
	"database/sql"
	"time"

	"go-paygrade/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error)
	FindActiveRanked(ctx context.Context, companyID string) ([]Employee, error)
	FindActiveByRank(ctx context.Context, companyID, rankID string, departmentID *string) ([]Employee, error)
	DistinctActiveCompanyIDs(ctx context.Context) ([]string, error)
	UpdateProgression(ctx context.Context, emp *Employee, expectedStep int) (int64, error)
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

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) FindActiveRanked(ctx context.Context, companyID string) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("active = ?", true).
		Where("rank_id IS NOT NULL").
		Order("full_name ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindActiveByRank(ctx context.Context, companyID, rankID string, departmentID *string) ([]Employee, error) {
	query := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("active = ?", true).
		Where("rank_id = ?", rankID)

	if departmentID != nil && *departmentID != "" {
		query = query.Where("department_id = ?", *departmentID)
	}

	var emps []Employee
	err := query.Order("full_name ASC").Find(&emps).Error
	return emps, err
}

// DistinctActiveCompanyIDs dipakai scanner untuk menentukan scope harian.
func (r *repository) DistinctActiveCompanyIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("active = ?", true).
		Where("rank_id IS NOT NULL").
		Distinct().
		Pluck("company_id", &ids).Error
	return ids, err
}

// UpdateProgression menulis step/gaji/pangkat baru dengan compare-and-swap
// pada current_step. Mengembalikan jumlah baris yang berubah: 0 berarti
// pegawai sudah dimutasi pihak lain sejak dibaca (lost update dicegah).
func (r *repository) UpdateProgression(ctx context.Context, emp *Employee, expectedStep int) (int64, error) {
	query := `
UPDATE employees
SET
	rank_id = $1,
	current_step = $2,
	current_salary = $3,
	salary_effective_date = $4,
	updated_at = NOW()
WHERE id = $5
	AND company_id = $6
	AND current_step = $7
`

	var effective time.Time
	if emp.SalaryEffectiveDate != nil {
		effective = *emp.SalaryEffectiveDate
	}

	if r.tx != nil {
		res, err := r.tx.ExecContext(
			ctx, query,
			emp.RankID, emp.CurrentStep, emp.CurrentSalary, effective,
			emp.ID, emp.CompanyID, expectedStep,
		)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}

	result := r.db.WithContext(ctx).Exec(
		query,
		emp.RankID, emp.CurrentStep, emp.CurrentSalary, effective,
		emp.ID, emp.CompanyID, expectedStep,
	)
	return result.RowsAffected, result.Error
}
