// file: internals/features/finance/payments/service/apply.go
package service

import (
	"fmt"

	"vidyalaya_backend/internals/features/finance/errs"
)

/* ==============================================
   Payment application — pure admission check.
   An installment accepts a payment only while it
   has remaining due, and never more than that
   remaining due. Overpayment is rejected outright
   rather than spilled onto later installments.
============================================== */

// CheckApplicable validates a tendered amount against the installment's
// current state. It does not mutate anything.
func CheckApplicable(amount, installmentAmount, paidAmount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: payment amount must be positive", errs.ErrValidation)
	}
	remaining := installmentAmount - paidAmount
	if remaining <= 0 {
		return errs.ErrAlreadyPaid
	}
	if amount > remaining {
		return fmt.Errorf("%w: remaining due is %d", errs.ErrOverpaymentRejected, remaining)
	}
	return nil
}

// Apply returns the new paid amount after a payment that already passed
// CheckApplicable.
func Apply(amount, paidAmount int) int {
	return paidAmount + amount
}
