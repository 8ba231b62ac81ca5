package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee adalah proyeksi minimal yang dikonsumsi engine progresi gaji.
// Registrasi/profil pegawai dikelola sistem lain; engine ini hanya
// memutasi step, gaji, pangkat, dan tanggal efektifnya.
type Employee struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID           uuid.UUID  `gorm:"type:uuid;index"`
	DepartmentID        *uuid.UUID `gorm:"type:uuid"`
	RankID              *uuid.UUID `gorm:"type:uuid;index"`
	FullName            string
	CurrentStep         int
	CurrentSalary       decimal.Decimal `gorm:"type:numeric(14,2)"`
	EmploymentDate      time.Time
	SalaryEffectiveDate *time.Time
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
