package salarycalc

import (
	"fmt"
	"net/http"
	"time"

	"go-paygrade/internal/rank"
	"go-paygrade/internal/shared/apperror"

	"github.com/shopspring/decimal"
)

var (
	ErrStepNotFound = apperror.New(
		apperror.CodeScheduleGap,
		"salary step has no entry in the rank schedule",
		http.StatusUnprocessableEntity,
	)
	ErrEmptySchedule = apperror.New(
		apperror.CodeScheduleGap,
		"rank has no salary steps configured",
		http.StatusUnprocessableEntity,
	)
)

// EligibilityForecast adalah hasil perhitungan kapan pegawai berhak naik step.
type EligibilityForecast struct {
	NextStep        int
	EligibilityDate time.Time
	AtCeiling       bool
}

type ProjectionEntry struct {
	Year          int
	Step          int
	Salary        decimal.Decimal
	EffectiveDate time.Time
	IsCeiling     bool
}

type PromotionOutcome struct {
	NewStep     int
	NewSalary   decimal.Decimal
	Explanation string
}

type SalaryIncrease struct {
	Amount  decimal.Decimal
	Percent decimal.Decimal
}

// SalaryForStep mengambil nominal gaji satu step dari tabel pangkat.
func SalaryForStep(r *rank.Rank, step int) (decimal.Decimal, error) {
	amount, ok := r.SalaryAt(step)
	if !ok {
		return decimal.Zero, ErrStepNotFound
	}
	return amount, nil
}

// NextEligibility menghitung step berikutnya dan tanggal berhaknya.
//
// Tanggal eligibility selalu dihitung dari employmentDate asli,
// bukan dari tanggal kenaikan terakhir: approval yang terlambat tidak
// menggeser jadwal kenaikan berikutnya. Ini kebijakan, bukan bug.
func NextEligibility(employmentDate time.Time, currentStep, stepCount, stepPeriodYears int) EligibilityForecast {
	maxStep := stepCount - 1
	if currentStep >= maxStep {
		return EligibilityForecast{AtCeiling: true}
	}

	nextStep := currentStep + 1
	return EligibilityForecast{
		NextStep:        nextStep,
		EligibilityDate: employmentDate.AddDate(nextStep*stepPeriodYears, 0, 0),
	}
}

// Projection menelusuri step demi step dari currentStep+1 sampai ceiling,
// masing-masing diberi tanggal efektif dengan formula anchor yang sama.
func Projection(r *rank.Rank, currentStep int, employmentDate time.Time) ([]ProjectionEntry, error) {
	if len(r.Steps) == 0 {
		return nil, ErrEmptySchedule
	}

	maxStep := r.MaxStep()
	entries := make([]ProjectionEntry, 0, maxStep-currentStep)
	for step := currentStep + 1; step <= maxStep; step++ {
		salary, err := SalaryForStep(r, step)
		if err != nil {
			return nil, err
		}
		effective := employmentDate.AddDate(step*r.StepPeriodYears, 0, 0)
		entries = append(entries, ProjectionEntry{
			Year:          effective.Year(),
			Step:          step,
			Salary:        salary,
			EffectiveDate: effective,
			IsCeiling:     step == maxStep,
		})
	}
	return entries, nil
}

// PromotionStep menentukan step awal pada pangkat baru: step terendah yang
// nominalnya >= gaji sekarang. Promosi tidak pernah menurunkan gaji; bila
// gaji sekarang melebihi ceiling pangkat baru, dipatok di step tertinggi.
func PromotionStep(oldRank, newRank *rank.Rank, currentSalary decimal.Decimal) (PromotionOutcome, error) {
	if len(newRank.Steps) == 0 {
		return PromotionOutcome{}, ErrEmptySchedule
	}

	for _, s := range newRank.Steps {
		if s.SalaryAmount.GreaterThanOrEqual(currentSalary) {
			return PromotionOutcome{
				NewStep:   s.StepNumber,
				NewSalary: s.SalaryAmount,
				Explanation: fmt.Sprintf(
					"placed at %s step %d: lowest step with salary %s >= current salary %s",
					newRank.Name, s.StepNumber, s.SalaryAmount.StringFixed(2), currentSalary.StringFixed(2),
				),
			}, nil
		}
	}

	// Gaji sekarang sudah di atas ceiling pangkat baru.
	top := newRank.Steps[len(newRank.Steps)-1]
	return PromotionOutcome{
		NewStep:   top.StepNumber,
		NewSalary: top.SalaryAmount,
		Explanation: fmt.Sprintf(
			"current salary %s exceeds %s ceiling, clamped to step %d (%s)",
			currentSalary.StringFixed(2), newRank.Name, top.StepNumber, top.SalaryAmount.StringFixed(2),
		),
	}, nil
}

// Increase menghitung selisih dan persentase kenaikan dua nominal.
// Persentase didefinisikan 0 bila nominal lama 0.
func Increase(oldAmount, newAmount decimal.Decimal) SalaryIncrease {
	diff := newAmount.Sub(oldAmount)
	percent := decimal.Zero
	if !oldAmount.IsZero() {
		percent = diff.Div(oldAmount).Mul(decimal.NewFromInt(100))
	}
	return SalaryIncrease{Amount: diff, Percent: percent}
}
