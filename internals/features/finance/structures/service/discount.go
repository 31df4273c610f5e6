// file: internals/features/finance/structures/service/discount.go
package service

import (
	"fmt"

	"vidyalaya_backend/internals/features/finance/errs"
	"vidyalaya_backend/internals/features/finance/structures/model"
)

/* ==============================================
   Discount/scholarship resolver.
   Stateless pure function: all inputs explicit,
   integer money in the smallest currency unit.
============================================== */

type CustomDiscount struct {
	Type  model.DiscountType
	Value int
}

type Resolution struct {
	DiscountAmount int
	NetAmount      int
}

// ResolveNet computes the net payable amount from gross, scholarship
// and an optional custom discount.
//
//   - percentage: discount = round-half-up(gross * value / 100)
//   - fixed_amount: discount = min(value, gross)
//   - net = max(0, gross - scholarship - discount)
//
// Malformed input (negative amounts, percentage > 100) is rejected,
// never silently clamped.
func ResolveNet(gross, scholarship int, d *CustomDiscount) (Resolution, error) {
	if gross < 0 {
		return Resolution{}, fmt.Errorf("%w: gross amount must not be negative", errs.ErrValidation)
	}
	if scholarship < 0 {
		return Resolution{}, fmt.Errorf("%w: scholarship amount must not be negative", errs.ErrValidation)
	}

	discount := 0
	if d != nil {
		if d.Value < 0 {
			return Resolution{}, fmt.Errorf("%w: discount value must not be negative", errs.ErrValidation)
		}
		switch d.Type {
		case model.DiscountTypePercentage:
			if d.Value > 100 {
				return Resolution{}, fmt.Errorf("%w: percentage discount must not exceed 100", errs.ErrValidation)
			}
			discount = roundHalfUpPercent(gross, d.Value)
		case model.DiscountTypeFixedAmount:
			discount = d.Value
			if discount > gross {
				discount = gross // cannot discount below zero
			}
		default:
			return Resolution{}, fmt.Errorf("%w: unknown discount type %q", errs.ErrValidation, d.Type)
		}
	}

	net := gross - scholarship - discount
	if net < 0 {
		net = 0
	}
	return Resolution{DiscountAmount: discount, NetAmount: net}, nil
}

// roundHalfUpPercent computes round-half-up(amount * percent / 100)
// in integer arithmetic; no floating point anywhere on the money path.
func roundHalfUpPercent(amount, percent int) int {
	return (amount*percent + 50) / 100
}
