// file: internals/features/finance/installments/service/summary.go
package service

import (
	"time"

	"vidyalaya_backend/internals/features/finance/installments/model"
)

// Summary aggregates a set of installments for collection/dunning views.
type Summary struct {
	TotalAmount      int `json:"total_amount"`
	TotalPaid        int `json:"total_paid"`
	TotalOutstanding int `json:"total_outstanding"`
	OverdueAmount    int `json:"overdue_amount"`

	InstallmentCount int `json:"installment_count"`
	PaidCount        int `json:"paid_count"`
	OverdueCount     int `json:"overdue_count"`
	PendingCount     int `json:"pending_count"` // anything not yet fully paid
}

// Summarize folds the ledger rows into a Summary, deriving statuses
// fresh for the given day rather than trusting the cached column.
func Summarize(rows []model.FeeInstallment, today time.Time) Summary {
	var s Summary
	for _, r := range rows {
		s.InstallmentCount++
		s.TotalAmount += r.FeeInstallmentAmount
		s.TotalPaid += r.FeeInstallmentPaidAmount
		s.TotalOutstanding += r.RemainingDue()

		switch DeriveStatus(r.FeeInstallmentAmount, r.FeeInstallmentPaidAmount, r.FeeInstallmentDueDate, today) {
		case model.InstallmentStatusPaid:
			s.PaidCount++
		case model.InstallmentStatusOverdue:
			s.OverdueCount++
			s.PendingCount++
			s.OverdueAmount += r.RemainingDue()
		default:
			s.PendingCount++
		}
	}
	return s
}

// NextDue picks the earliest not-fully-paid installment, or nil.
func NextDue(rows []model.FeeInstallment) *model.FeeInstallment {
	var next *model.FeeInstallment
	for i := range rows {
		r := &rows[i]
		if r.RemainingDue() == 0 {
			continue
		}
		if next == nil || r.FeeInstallmentDueDate.Before(next.FeeInstallmentDueDate) ||
			(r.FeeInstallmentDueDate.Equal(next.FeeInstallmentDueDate) && r.FeeInstallmentNumber < next.FeeInstallmentNumber) {
			next = r
		}
	}
	return next
}
