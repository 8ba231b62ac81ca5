package eligibility

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusExpired  = "EXPIRED"
)

// Eligibility adalah entitlement satu pegawai untuk naik satu step pada
// tanggal tertentu. Dibuat oleh scanner, dikonsumsi oleh processor.
// Status terminal (APPROVED/REJECTED/EXPIRED) bersifat final.
type Eligibility struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;index"`
	RankID          uuid.UUID `gorm:"type:uuid"`
	CurrentStep     int
	NextStep        int
	CurrentSalary   decimal.Decimal `gorm:"type:numeric(14,2)"`
	NextSalary      decimal.Decimal `gorm:"type:numeric(14,2)"`
	EligibilityDate time.Time
	Status          string
	ProcessedAt     *time.Time
	ProcessedBy     *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string
	HistoryEntryID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (e *Eligibility) IsTerminal() bool {
	return e.Status != StatusPending
}
