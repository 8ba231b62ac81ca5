package history

import (
	"context"
	"database/sql"
	"time"

	"go-paygrade/internal/tenant"

	"gorm.io/gorm"
)

// ListFilter membatasi hasil pembacaan ledger.
type ListFilter struct {
	ChangeType string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

//go:generate mockgen -source=history_repo.go -destination=mock/history_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, entry *Entry) error
	FindAllByEmployee(ctx context.Context, companyID, employeeID string, filter ListFilter) ([]Entry, error)
	CountByEmployee(ctx context.Context, companyID, employeeID string, filter ListFilter) (int64, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Entry, error)
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

// Create menambahkan satu baris ledger. Tidak ada operasi update/delete di
// repository ini; ledger bersifat append-only.
func (r *repository) Create(ctx context.Context, entry *Entry) error {
	if r.tx != nil {
		query := `
INSERT INTO salary_history_entries (
	id, company_id, employee_id, rank_id, entry_no,
	change_type, from_step, to_step, from_salary, to_salary,
	effective_date, is_automatic, processed_by, approved_by,
	reason, order_reference, document_path, notes, previous_rank_id,
	created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW())
`
		_, err := r.tx.ExecContext(
			ctx, query,
			entry.ID, entry.CompanyID, entry.EmployeeID, entry.RankID, entry.EntryNo,
			entry.ChangeType, entry.FromStep, entry.ToStep, entry.FromSalary, entry.ToSalary,
			entry.EffectiveDate, entry.IsAutomatic, entry.ProcessedBy, entry.ApprovedBy,
			entry.Reason, entry.OrderReference, entry.DocumentPath, entry.Notes, entry.PreviousRankID,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string, filter ListFilter) ([]Entry, error) {
	query := r.listQuery(ctx, companyID, employeeID, filter)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var entries []Entry
	err := query.
		Order("effective_date DESC, entry_no DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) CountByEmployee(ctx context.Context, companyID, employeeID string, filter ListFilter) (int64, error) {
	var count int64
	err := r.listQuery(ctx, companyID, employeeID, filter).
		Model(&Entry{}).
		Count(&count).Error
	return count, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Entry, error) {
	var entry Entry
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&entry, "id = ?", id).Error
	return &entry, err
}

func (r *repository) listQuery(ctx context.Context, companyID, employeeID string, filter ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID)

	if filter.ChangeType != "" {
		query = query.Where("change_type = ?", filter.ChangeType)
	}
	if filter.From != nil {
		query = query.Where("effective_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("effective_date <= ?", *filter.To)
	}
	return query
}
