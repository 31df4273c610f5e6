// file: internals/features/finance/structures/service/builder_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/finance/errs"
	"vidyalaya_backend/internals/features/finance/structures/model"
)

func batchLine(name string, amount int) model.BatchFeeLineItem {
	return model.BatchFeeLineItem{
		BatchFeeLineItemFeeComponentID:        uuid.New(),
		BatchFeeLineItemComponentNameSnapshot: name,
		BatchFeeLineItemAmount:                amount,
	}
}

func TestLinesFromBatch(t *testing.T) {
	src := []model.BatchFeeLineItem{
		batchLine("Tuition", 8000),
		batchLine("Transport", 2000),
	}
	lines := LinesFromBatch(src)
	require.Len(t, lines, 2)
	for i, li := range lines {
		assert.Equal(t, src[i].BatchFeeLineItemFeeComponentID, li.StudentFeeLineItemFeeComponentID)
		assert.Equal(t, src[i].BatchFeeLineItemAmount, li.StudentFeeLineItemOriginalAmount)
		assert.Equal(t, li.StudentFeeLineItemOriginalAmount, li.StudentFeeLineItemAdjustedAmount)
		assert.False(t, li.StudentFeeLineItemWaived)
	}
	assert.Equal(t, 10000, ComputeGross(lines))
}

func TestApplyWaiver(t *testing.T) {
	line := model.StudentFeeLineItem{
		StudentFeeLineItemOriginalAmount: 2000,
		StudentFeeLineItemAdjustedAmount: 2000,
	}

	t.Run("requires reason", func(t *testing.T) {
		l := line
		err := ApplyWaiver(&l, 0, "   ")
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects negative adjusted", func(t *testing.T) {
		l := line
		err := ApplyWaiver(&l, -1, "sibling concession")
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects adjusted above original", func(t *testing.T) {
		l := line
		err := ApplyWaiver(&l, 2001, "typo")
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("full waiver", func(t *testing.T) {
		l := line
		require.NoError(t, ApplyWaiver(&l, 0, "staff ward"))
		assert.True(t, l.StudentFeeLineItemWaived)
		assert.Equal(t, 0, l.StudentFeeLineItemAdjustedAmount)
		require.NotNil(t, l.StudentFeeLineItemWaiverReason)
		assert.Equal(t, "staff ward", *l.StudentFeeLineItemWaiverReason)
	})

	t.Run("partial waiver", func(t *testing.T) {
		l := line
		require.NoError(t, ApplyWaiver(&l, 500, "hardship"))
		assert.Equal(t, 500, l.StudentFeeLineItemAdjustedAmount)
	})
}

func TestRecomputeTotals(t *testing.T) {
	dt := model.DiscountTypePercentage
	dv := 10
	s := model.StudentFeeStructure{
		StudentFeeStructureScholarshipAmount: 1000,
		StudentFeeStructureDiscountType:      &dt,
		StudentFeeStructureDiscountValue:     &dv,
	}
	lines := []model.StudentFeeLineItem{
		{StudentFeeLineItemOriginalAmount: 8000, StudentFeeLineItemAdjustedAmount: 8000},
		{StudentFeeLineItemOriginalAmount: 2000, StudentFeeLineItemAdjustedAmount: 2000},
	}

	require.NoError(t, RecomputeTotals(&s, lines))
	assert.Equal(t, 10000, s.StudentFeeStructureGrossAmount)
	assert.Equal(t, 900, s.StudentFeeStructureDiscountAmount)
	assert.Equal(t, 8100, s.StudentFeeStructureNetAmount)

	// waiving a line re-derives gross and net
	require.NoError(t, ApplyWaiver(&lines[1], 0, "bus route dropped"))
	require.NoError(t, RecomputeTotals(&s, lines))
	assert.Equal(t, 8000, s.StudentFeeStructureGrossAmount)
	assert.Equal(t, 800, s.StudentFeeStructureDiscountAmount)
	assert.Equal(t, 6200, s.StudentFeeStructureNetAmount)
}
