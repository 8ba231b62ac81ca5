package salarycalc

import (
	"testing"
	"time"

	"go-paygrade/internal/rank"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func buildRank(name string, periodYears int, amounts ...int64) *rank.Rank {
	r := &rank.Rank{
		ID:              uuid.New(),
		Name:            name,
		StepCount:       len(amounts),
		StepPeriodYears: periodYears,
	}
	for i, a := range amounts {
		r.Steps = append(r.Steps, rank.SalaryStep{
			ID:           uuid.New(),
			RankID:       r.ID,
			StepNumber:   i,
			SalaryAmount: decimal.NewFromInt(a),
		})
	}
	if len(amounts) > 0 {
		r.BaseSalary = decimal.NewFromInt(amounts[0])
		r.CeilingSalary = decimal.NewFromInt(amounts[len(amounts)-1])
	}
	return r
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestSalaryForStep(t *testing.T) {
	r := buildRank("Junior", 2, 1000, 1200, 1500)

	t.Run("success", func(t *testing.T) {
		amount, err := SalaryForStep(r, 1)
		assert.NoError(t, err)
		assert.True(t, amount.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("negative case step missing from schedule", func(t *testing.T) {
		_, err := SalaryForStep(r, 7)
		assert.ErrorIs(t, err, ErrStepNotFound)
	})
}

func TestNextEligibility_AnchoredToEmploymentDate(t *testing.T) {
	employed := date(2015, 1, 1)

	t.Run("first step due two years after hire", func(t *testing.T) {
		f := NextEligibility(employed, 0, 5, 2)
		assert.False(t, f.AtCeiling)
		assert.Equal(t, 1, f.NextStep)
		assert.Equal(t, date(2017, 1, 1), f.EligibilityDate)
	})

	t.Run("late approval does not shift the schedule", func(t *testing.T) {
		// Pegawai baru disetujui ke step 1 tahun 2018; step 2 tetap
		// jatuh di 2019 (employment + 2x2 tahun), bukan 2020.
		f := NextEligibility(employed, 1, 5, 2)
		assert.Equal(t, 2, f.NextStep)
		assert.Equal(t, date(2019, 1, 1), f.EligibilityDate)
	})

	t.Run("at ceiling", func(t *testing.T) {
		f := NextEligibility(employed, 4, 5, 2)
		assert.True(t, f.AtCeiling)
	})
}

func TestProjection(t *testing.T) {
	employed := date(2015, 1, 1)

	t.Run("success", func(t *testing.T) {
		r := buildRank("Junior", 2, 1000, 1200, 1500)
		entries, err := Projection(r, 0, employed)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)

		assert.Equal(t, 1, entries[0].Step)
		assert.Equal(t, date(2017, 1, 1), entries[0].EffectiveDate)
		assert.False(t, entries[0].IsCeiling)

		assert.Equal(t, 2, entries[1].Step)
		assert.Equal(t, date(2019, 1, 1), entries[1].EffectiveDate)
		assert.True(t, entries[1].Salary.Equal(decimal.NewFromInt(1500)))
		assert.True(t, entries[1].IsCeiling)
	})

	t.Run("already at ceiling yields empty projection", func(t *testing.T) {
		r := buildRank("Junior", 2, 1000, 1200, 1500)
		entries, err := Projection(r, 2, employed)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("negative case empty schedule", func(t *testing.T) {
		r := buildRank("Broken", 2)
		r.StepCount = 3
		_, err := Projection(r, 0, employed)
		assert.ErrorIs(t, err, ErrEmptySchedule)
	})

	t.Run("negative case gap in schedule", func(t *testing.T) {
		r := buildRank("Gappy", 2, 1000, 1200)
		r.StepCount = 4 // step 2 dan 3 tidak punya entri
		_, err := Projection(r, 0, employed)
		assert.ErrorIs(t, err, ErrStepNotFound)
	})
}

func TestPromotionStep(t *testing.T) {
	oldRank := buildRank("Junior", 2, 1000, 1200, 1500)
	newRank := buildRank("Senior", 2, 1100, 1400, 1800)

	t.Run("lowest step at or above current salary", func(t *testing.T) {
		out, err := PromotionStep(oldRank, newRank, decimal.NewFromInt(1200))
		assert.NoError(t, err)
		assert.Equal(t, 1, out.NewStep)
		assert.True(t, out.NewSalary.Equal(decimal.NewFromInt(1400)))
		assert.Contains(t, out.Explanation, "Senior step 1")
	})

	t.Run("equal salary maps to the matching step", func(t *testing.T) {
		out, err := PromotionStep(oldRank, newRank, decimal.NewFromInt(1100))
		assert.NoError(t, err)
		assert.Equal(t, 0, out.NewStep)
		assert.True(t, out.NewSalary.Equal(decimal.NewFromInt(1100)))
	})

	t.Run("salary above new ceiling clamps to top step", func(t *testing.T) {
		out, err := PromotionStep(oldRank, newRank, decimal.NewFromInt(2500))
		assert.NoError(t, err)
		assert.Equal(t, 2, out.NewStep)
		assert.True(t, out.NewSalary.Equal(decimal.NewFromInt(1800)))
		assert.Contains(t, out.Explanation, "clamped")
	})

	t.Run("negative case empty new rank schedule", func(t *testing.T) {
		empty := buildRank("Empty", 2)
		_, err := PromotionStep(oldRank, empty, decimal.NewFromInt(1000))
		assert.ErrorIs(t, err, ErrEmptySchedule)
	})
}

func TestIncrease(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		inc := Increase(decimal.NewFromInt(1000), decimal.NewFromInt(1200))
		assert.Equal(t, "200.00", inc.Amount.StringFixed(2))
		assert.Equal(t, "20.00", inc.Percent.StringFixed(2))
	})

	t.Run("zero old amount yields zero percent", func(t *testing.T) {
		inc := Increase(decimal.Zero, decimal.NewFromInt(500))
		assert.Equal(t, "500.00", inc.Amount.StringFixed(2))
		assert.True(t, inc.Percent.IsZero())
	})

	t.Run("negative delta on demotion scenario", func(t *testing.T) {
		inc := Increase(decimal.NewFromInt(1200), decimal.NewFromInt(1000))
		assert.Equal(t, "-200.00", inc.Amount.StringFixed(2))
	})
}
