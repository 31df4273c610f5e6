// file: internals/features/finance/installments/service/status_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/finance/installments/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDeriveStatus(t *testing.T) {
	due := day("2024-05-01")

	tests := []struct {
		name   string
		amount int
		paid   int
		today  string
		want   model.InstallmentStatus
	}{
		{"upcoming before due", 2430, 0, "2024-04-20", model.InstallmentStatusUpcoming},
		{"due on the day", 2430, 0, "2024-05-01", model.InstallmentStatusDue},
		{"overdue unpaid", 2430, 0, "2024-05-15", model.InstallmentStatusOverdue},
		{"partial before due", 2430, 1000, "2024-04-20", model.InstallmentStatusPartial},
		{"partial on due day", 2430, 1000, "2024-05-01", model.InstallmentStatusPartial},
		{"overdue beats partial", 2430, 1000, "2024-05-02", model.InstallmentStatusOverdue},
		{"paid exactly", 2430, 2430, "2024-05-15", model.InstallmentStatusPaid},
		{"paid early", 2430, 2430, "2024-04-01", model.InstallmentStatusPaid},
		{"paid over", 2430, 2500, "2024-06-01", model.InstallmentStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.amount, tt.paid, due, day(tt.today))
			assert.Equal(t, tt.want, got)
		})
	}
}

// Deriving twice with the same inputs must give the same answer.
func TestDeriveStatusDeterministic(t *testing.T) {
	amounts := []int{0, 1, 2430}
	paids := []int{0, 1, 1000, 2430, 3000}
	todays := []string{"2024-04-30", "2024-05-01", "2024-05-02"}
	due := day("2024-05-01")

	for _, a := range amounts {
		for _, p := range paids {
			for _, td := range todays {
				first := DeriveStatus(a, p, due, day(td))
				second := DeriveStatus(a, p, due, day(td))
				require.Equal(t, first, second)
			}
		}
	}
}

// Time-of-day must not leak into the comparison.
func TestDeriveStatusIgnoresTimeOfDay(t *testing.T) {
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	lateEvening := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, model.InstallmentStatusDue, DeriveStatus(100, 0, due, lateEvening))
}

func TestRefresh(t *testing.T) {
	m := model.FeeInstallment{
		FeeInstallmentAmount:     2430,
		FeeInstallmentPaidAmount: 0,
		FeeInstallmentDueDate:    day("2024-05-01"),
		FeeInstallmentStatus:     model.InstallmentStatusUpcoming,
	}

	changed := Refresh(&m, day("2024-05-15"))
	assert.True(t, changed)
	assert.Equal(t, model.InstallmentStatusOverdue, m.FeeInstallmentStatus)

	// idempotent on the second pass
	changed = Refresh(&m, day("2024-05-15"))
	assert.False(t, changed)
	assert.Equal(t, model.InstallmentStatusOverdue, m.FeeInstallmentStatus)
}

func TestSummarize(t *testing.T) {
	rows := []model.FeeInstallment{
		{FeeInstallmentNumber: 1, FeeInstallmentAmount: 3240, FeeInstallmentPaidAmount: 3240, FeeInstallmentDueDate: day("2024-04-01")},
		{FeeInstallmentNumber: 2, FeeInstallmentAmount: 2430, FeeInstallmentPaidAmount: 1000, FeeInstallmentDueDate: day("2024-05-01")},
		{FeeInstallmentNumber: 3, FeeInstallmentAmount: 2430, FeeInstallmentPaidAmount: 0, FeeInstallmentDueDate: day("2024-05-31")},
	}
	s := Summarize(rows, day("2024-05-15"))

	assert.Equal(t, 8100, s.TotalAmount)
	assert.Equal(t, 4240, s.TotalPaid)
	assert.Equal(t, 3860, s.TotalOutstanding)
	assert.Equal(t, 1430, s.OverdueAmount) // installment 2 remainder
	assert.Equal(t, 3, s.InstallmentCount)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 1, s.OverdueCount)
	assert.Equal(t, 2, s.PendingCount)
}

func TestNextDue(t *testing.T) {
	rows := []model.FeeInstallment{
		{FeeInstallmentNumber: 1, FeeInstallmentAmount: 3240, FeeInstallmentPaidAmount: 3240, FeeInstallmentDueDate: day("2024-04-01")},
		{FeeInstallmentNumber: 2, FeeInstallmentAmount: 2430, FeeInstallmentPaidAmount: 0, FeeInstallmentDueDate: day("2024-05-01")},
		{FeeInstallmentNumber: 3, FeeInstallmentAmount: 2430, FeeInstallmentPaidAmount: 0, FeeInstallmentDueDate: day("2024-05-31")},
	}
	next := NextDue(rows)
	require.NotNil(t, next)
	assert.Equal(t, 2, next.FeeInstallmentNumber)

	// all settled → nil
	rows[1].FeeInstallmentPaidAmount = 2430
	rows[2].FeeInstallmentPaidAmount = 2430
	assert.Nil(t, NextDue(rows))
}
