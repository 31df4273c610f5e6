// file: internals/features/finance/structures/service/builder.go
package service

import (
	"fmt"
	"strings"

	"vidyalaya_backend/internals/features/finance/errs"
	"vidyalaya_backend/internals/features/finance/structures/model"
)

/* ==============================================
   Student fee structure builder — the pure parts.
   Persistence and the (student, session) unique
   guard live in the controller transaction.
============================================== */

// LinesFromBatch copies batch line items into student line items with
// adjusted = original (batch_default source, no waivers yet).
func LinesFromBatch(batchLines []model.BatchFeeLineItem) []model.StudentFeeLineItem {
	out := make([]model.StudentFeeLineItem, 0, len(batchLines))
	for _, bl := range batchLines {
		out = append(out, model.StudentFeeLineItem{
			StudentFeeLineItemFeeComponentID:        bl.BatchFeeLineItemFeeComponentID,
			StudentFeeLineItemComponentNameSnapshot: bl.BatchFeeLineItemComponentNameSnapshot,
			StudentFeeLineItemOriginalAmount:        bl.BatchFeeLineItemAmount,
			StudentFeeLineItemAdjustedAmount:        bl.BatchFeeLineItemAmount,
		})
	}
	return out
}

// ComputeGross sums the adjusted amounts; waived lines carry adjusted=0
// so no special case is needed.
func ComputeGross(lines []model.StudentFeeLineItem) int {
	total := 0
	for _, li := range lines {
		total += li.StudentFeeLineItemAdjustedAmount
	}
	return total
}

// ApplyWaiver reduces one line item. adjusted must stay within
// [0, original] and a reason is mandatory.
func ApplyWaiver(line *model.StudentFeeLineItem, adjusted int, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: waiver reason is required", errs.ErrValidation)
	}
	if adjusted < 0 {
		return fmt.Errorf("%w: adjusted amount must not be negative", errs.ErrValidation)
	}
	if adjusted > line.StudentFeeLineItemOriginalAmount {
		return fmt.Errorf("%w: adjusted amount must not exceed the original amount", errs.ErrValidation)
	}
	line.StudentFeeLineItemAdjustedAmount = adjusted
	line.StudentFeeLineItemWaived = true
	line.StudentFeeLineItemWaiverReason = &reason
	return nil
}

// RecomputeTotals refreshes gross, discount and net on the structure
// from its line items. The persisted amounts are a cache of this
// computation, never an independent source of truth.
func RecomputeTotals(s *model.StudentFeeStructure, lines []model.StudentFeeLineItem) error {
	gross := ComputeGross(lines)

	var d *CustomDiscount
	if s.StudentFeeStructureDiscountType != nil && s.StudentFeeStructureDiscountValue != nil {
		d = &CustomDiscount{
			Type:  *s.StudentFeeStructureDiscountType,
			Value: *s.StudentFeeStructureDiscountValue,
		}
	}

	res, err := ResolveNet(gross, s.StudentFeeStructureScholarshipAmount, d)
	if err != nil {
		return err
	}
	s.StudentFeeStructureGrossAmount = gross
	s.StudentFeeStructureDiscountAmount = res.DiscountAmount
	s.StudentFeeStructureNetAmount = res.NetAmount
	return nil
}
