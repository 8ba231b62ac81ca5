package rank

import (
	"context"

	"go-paygrade/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rank_repo.go -destination=mock/rank_repo_mock.go -package=mock
type Repository interface {
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Rank, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]Rank, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Rank, error) {
	var rk Rank
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		First(&rk, "id = ?", id).Error
	return &rk, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Rank, error) {
	var ranks []Rank
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		Order("name ASC").
		Find(&ranks).Error
	return ranks, err
}
