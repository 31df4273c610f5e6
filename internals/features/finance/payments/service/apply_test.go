// file: internals/features/finance/payments/service/apply_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/finance/errs"
)

func TestCheckApplicable(t *testing.T) {
	tests := []struct {
		name       string
		amount     int
		instAmount int
		paid       int
		wantErr    error
	}{
		{"exact remaining", 3240, 3240, 0, nil},
		{"partial", 1000, 3240, 0, nil},
		{"tops up to full", 2240, 3240, 1000, nil},
		{"zero amount", 0, 3240, 0, errs.ErrValidation},
		{"negative amount", -50, 3240, 0, errs.ErrValidation},
		{"already fully paid", 1, 3240, 3240, errs.ErrAlreadyPaid},
		{"overpay from zero", 3241, 3240, 0, errs.ErrOverpaymentRejected},
		{"overpay on partial", 2241, 3240, 1000, errs.ErrOverpaymentRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckApplicable(tt.amount, tt.instAmount, tt.paid)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// Two partials fill the installment; a third attempt must bounce off
// the fully-paid guard, not silently apply.
func TestApplySequence(t *testing.T) {
	const instAmount = 3240
	paid := 0

	require.NoError(t, CheckApplicable(1000, instAmount, paid))
	paid = Apply(1000, paid)
	assert.Equal(t, 1000, paid)

	require.NoError(t, CheckApplicable(2240, instAmount, paid))
	paid = Apply(2240, paid)
	assert.Equal(t, instAmount, paid)

	err := CheckApplicable(1, instAmount, paid)
	assert.ErrorIs(t, err, errs.ErrAlreadyPaid)
	// paid untouched by the failed attempt
	assert.Equal(t, instAmount, paid)
}

func TestOverpaymentLeavesStateUntouched(t *testing.T) {
	paid := 1000
	err := CheckApplicable(5000, 3240, paid)
	require.ErrorIs(t, err, errs.ErrOverpaymentRejected)
	assert.Equal(t, 1000, paid)
}

func TestFormatReceiptNo(t *testing.T) {
	assert.Equal(t, "RCP-2026-000001", FormatReceiptNo(2026, 1))
	assert.Equal(t, "RCP-2026-000123", FormatReceiptNo(2026, 123))
	assert.Equal(t, "RCP-2027-1000000", FormatReceiptNo(2027, 1000000))
}
