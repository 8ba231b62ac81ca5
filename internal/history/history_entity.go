package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ChangeTypeStepIncrement = "STEP_INCREMENT"
	ChangeTypeManualJump    = "MANUAL_JUMP"
	ChangeTypeMassRaise     = "MASS_RAISE"
	ChangeTypePromotion     = "PROMOTION"
)

// Entry adalah satu baris ledger gaji. Append-only: tidak pernah di-update
// atau dihapus setelah ditulis. RankID adalah pangkat yang berlaku saat
// dicatat; untuk promosi itu berarti pangkat baru.
type Entry struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;index"`
	RankID         uuid.UUID `gorm:"type:uuid"`
	EntryNo        int64
	ChangeType     string
	FromStep       int
	ToStep         int
	FromSalary     decimal.Decimal `gorm:"type:numeric(14,2)"`
	ToSalary       decimal.Decimal `gorm:"type:numeric(14,2)"`
	EffectiveDate  time.Time
	IsAutomatic    bool
	ProcessedBy    uuid.UUID  `gorm:"type:uuid"`
	ApprovedBy     *uuid.UUID `gorm:"type:uuid"`
	Reason         *string
	OrderReference *string
	DocumentPath   *string
	Notes          *string
	PreviousRankID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}

func (Entry) TableName() string {
	return "salary_history_entries"
}
