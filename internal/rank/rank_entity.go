package rank

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rank adalah proyeksi read-only dari katalog pangkat perusahaan.
// Engine ini tidak pernah mengubah tabel step.
type Rank struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	BaseSalary      decimal.Decimal `gorm:"type:numeric(14,2)"`
	CeilingSalary   decimal.Decimal `gorm:"type:numeric(14,2)"`
	StepCount       int
	StepPeriodYears int
	Steps           []SalaryStep `gorm:"foreignKey:RankID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type SalaryStep struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RankID       uuid.UUID `gorm:"type:uuid;index"`
	StepNumber   int
	SalaryAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// MaxStep adalah step tertinggi yang valid untuk pangkat ini (ceiling).
func (r *Rank) MaxStep() int {
	return r.StepCount - 1
}

// SalaryAt mencari nominal gaji untuk satu step. ok=false bila step
// tidak punya entri pada tabel (schedule gap).
func (r *Rank) SalaryAt(step int) (decimal.Decimal, bool) {
	for _, s := range r.Steps {
		if s.StepNumber == step {
			return s.SalaryAmount, true
		}
	}
	return decimal.Zero, false
}
