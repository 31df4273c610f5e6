// file: internals/features/finance/emi/service/schedule.go
package service

import (
	"fmt"
	"time"

	"vidyalaya_backend/internals/features/finance/emi/model"
	"vidyalaya_backend/internals/features/finance/errs"
)

/* ==============================================
   EMI schedule generator — side-effect free.
   (netAmount, startDate, splitConfig) → slices.
   Persistence wraps this at the controller.
============================================== */

// ScheduleSlice is one computed installment before persistence.
type ScheduleSlice struct {
	Number  int       // 1-based
	Amount  int       // smallest currency unit
	DueDate time.Time // calendar day
}

// ValidateSplits checks the template invariants:
// Σpercent == 100, len == installmentCount, percents ≥ 0,
// due day offsets non-decreasing and ≥ 0.
func ValidateSplits(splits []model.EMISplit, installmentCount int) error {
	if len(splits) == 0 {
		return fmt.Errorf("%w: split config must not be empty", errs.ErrValidation)
	}
	if installmentCount != len(splits) {
		return fmt.Errorf("%w: installment count %d does not match %d split entries",
			errs.ErrValidation, installmentCount, len(splits))
	}
	sum := 0
	prevDays := -1
	for i, sp := range splits {
		if sp.Percent < 0 {
			return fmt.Errorf("%w: split %d has a negative percent", errs.ErrValidation, i+1)
		}
		if sp.DueDaysFromStart < 0 {
			return fmt.Errorf("%w: split %d has a negative due day offset", errs.ErrValidation, i+1)
		}
		if sp.DueDaysFromStart < prevDays {
			return fmt.Errorf("%w: split %d is due before split %d", errs.ErrValidation, i+1, i)
		}
		prevDays = sp.DueDaysFromStart
		sum += sp.Percent
	}
	if sum != 100 {
		return fmt.Errorf("%w: split percents sum to %d, want 100", errs.ErrValidation, sum)
	}
	return nil
}

// BuildSchedule turns a net amount into concrete slices.
// Per-entry amounts use round-half-up; the rounding remainder
// (positive or negative) lands on the LAST slice so the schedule sums
// to the net amount exactly, to the unit.
func BuildSchedule(netAmount int, startDate time.Time, splits []model.EMISplit) ([]ScheduleSlice, error) {
	if netAmount < 0 {
		return nil, fmt.Errorf("%w: net amount must not be negative", errs.ErrValidation)
	}
	if netAmount == 0 {
		return nil, errs.ErrZeroAmount
	}
	if err := ValidateSplits(splits, len(splits)); err != nil {
		return nil, err
	}

	out := make([]ScheduleSlice, 0, len(splits))
	allocated := 0
	for i, sp := range splits {
		amount := (netAmount*sp.Percent + 50) / 100 // round half up
		allocated += amount
		out = append(out, ScheduleSlice{
			Number:  i + 1,
			Amount:  amount,
			DueDate: startDate.AddDate(0, 0, sp.DueDaysFromStart),
		})
	}

	// reconcile rounding drift onto the last installment
	if remainder := netAmount - allocated; remainder != 0 {
		out[len(out)-1].Amount += remainder
	}
	return out, nil
}
