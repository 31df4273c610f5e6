// file: internals/features/finance/installments/service/status.go
package service

import (
	"time"

	"vidyalaya_backend/internals/features/finance/installments/model"
)

/* ==============================================
   Status derivation — pure and deterministic.
   Any reconciliation job must reach the same
   answer from (paid, amount, due, today) alone;
   the stored status column is never trusted
   across that boundary.
============================================== */

// DeriveStatus computes the installment status for a given calendar day.
//
//	paid     if paidAmount ≥ amount
//	overdue  if today > dueDate and not fully paid
//	partial  if 0 < paidAmount < amount
//	due      if today == dueDate
//	upcoming otherwise
func DeriveStatus(amount, paidAmount int, dueDate, today time.Time) model.InstallmentStatus {
	due := dateOnly(dueDate)
	now := dateOnly(today)

	switch {
	case paidAmount >= amount:
		return model.InstallmentStatusPaid
	case now.After(due):
		return model.InstallmentStatusOverdue
	case paidAmount > 0:
		return model.InstallmentStatusPartial
	case now.Equal(due):
		return model.InstallmentStatusDue
	default:
		return model.InstallmentStatusUpcoming
	}
}

// Refresh re-derives and stores the status cache on the row.
// Returns true when the cached value changed.
func Refresh(m *model.FeeInstallment, today time.Time) bool {
	next := DeriveStatus(m.FeeInstallmentAmount, m.FeeInstallmentPaidAmount, m.FeeInstallmentDueDate, today)
	if next == m.FeeInstallmentStatus {
		return false
	}
	m.FeeInstallmentStatus = next
	return true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
