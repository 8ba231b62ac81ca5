package history

import (
	"context"
	"errors"
	"time"

	historyerrors "go-paygrade/internal/history/errors"

	"gorm.io/gorm"
)

// HistoryPage adalah hasil berhalaman pembacaan ledger.
type HistoryPage struct {
	Entries []EntryResponse
	Total   int64
}

//go:generate mockgen -source=history_service.go -destination=mock/history_service_mock.go -package=mock
type Service interface {
	GetHistory(ctx context.Context, companyID, employeeID string, filter ListFilter) (HistoryPage, error)
	GetByID(ctx context.Context, companyID, id string) (EntryResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetHistory(ctx context.Context, companyID, employeeID string, filter ListFilter) (HistoryPage, error) {
	if filter.ChangeType != "" {
		switch filter.ChangeType {
		case ChangeTypeStepIncrement, ChangeTypeManualJump, ChangeTypeMassRaise, ChangeTypePromotion:
		default:
			return HistoryPage{}, historyerrors.ErrInvalidChangeTypeFilter
		}
	}

	total, err := s.repo.CountByEmployee(ctx, companyID, employeeID, filter)
	if err != nil {
		return HistoryPage{}, err
	}

	entries, err := s.repo.FindAllByEmployee(ctx, companyID, employeeID, filter)
	if err != nil {
		return HistoryPage{}, err
	}

	return HistoryPage{
		Entries: mapToListResponse(entries),
		Total:   total,
	}, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EntryResponse, error) {
	entry, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EntryResponse{}, historyerrors.ErrEntryNotFound
		}
		return EntryResponse{}, err
	}
	return MapToResponse(*entry), nil
}

// ParseDateFilter menerjemahkan query param tanggal menjadi filter.
func ParseDateFilter(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, historyerrors.ErrInvalidDateFilter
	}
	return &t, nil
}
