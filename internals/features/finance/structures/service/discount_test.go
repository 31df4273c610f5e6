// file: internals/features/finance/structures/service/discount_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/finance/errs"
	"vidyalaya_backend/internals/features/finance/structures/model"
)

func TestResolveNet(t *testing.T) {
	pct := func(v int) *CustomDiscount {
		return &CustomDiscount{Type: model.DiscountTypePercentage, Value: v}
	}
	fixed := func(v int) *CustomDiscount {
		return &CustomDiscount{Type: model.DiscountTypeFixedAmount, Value: v}
	}

	tests := []struct {
		name         string
		gross        int
		scholarship  int
		discount     *CustomDiscount
		wantDiscount int
		wantNet      int
	}{
		{"no deductions", 10000, 0, nil, 0, 10000},
		{"scholarship only", 10000, 1000, nil, 0, 9000},
		{"percentage after scholarship base is gross", 10000, 1000, pct(10), 900, 8100},
		{"percentage rounds half up", 333, 0, pct(10), 33, 300},
		{"percentage half exactly rounds up", 50, 0, pct(1), 1, 49},
		{"hundred percent", 10000, 0, pct(100), 10000, 0},
		{"fixed amount", 10000, 0, fixed(2500), 2500, 7500},
		{"fixed capped at gross", 1000, 0, fixed(5000), 1000, 0},
		{"net clamped at zero", 1000, 900, fixed(500), 500, 0},
		{"zero gross", 0, 0, pct(50), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ResolveNet(tt.gross, tt.scholarship, tt.discount)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDiscount, res.DiscountAmount, "discount")
			assert.Equal(t, tt.wantNet, res.NetAmount, "net")
		})
	}
}

func TestResolveNetRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name        string
		gross       int
		scholarship int
		discount    *CustomDiscount
	}{
		{"negative gross", -1, 0, nil},
		{"negative scholarship", 100, -5, nil},
		{"negative discount value", 100, 0, &CustomDiscount{Type: model.DiscountTypeFixedAmount, Value: -1}},
		{"percentage above 100", 100, 0, &CustomDiscount{Type: model.DiscountTypePercentage, Value: 101}},
		{"unknown discount type", 100, 0, &CustomDiscount{Type: "bogus", Value: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveNet(tt.gross, tt.scholarship, tt.discount)
			require.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

// Discount bounds: 0 ≤ net ≤ gross for every valid input combination.
func TestResolveNetBounds(t *testing.T) {
	grosses := []int{0, 1, 99, 100, 10000, 123457}
	scholarships := []int{0, 1, 500, 10000}
	discounts := []*CustomDiscount{
		nil,
		{Type: model.DiscountTypePercentage, Value: 0},
		{Type: model.DiscountTypePercentage, Value: 33},
		{Type: model.DiscountTypePercentage, Value: 100},
		{Type: model.DiscountTypeFixedAmount, Value: 0},
		{Type: model.DiscountTypeFixedAmount, Value: 777},
		{Type: model.DiscountTypeFixedAmount, Value: 999999},
	}
	for _, g := range grosses {
		for _, s := range scholarships {
			for _, d := range discounts {
				res, err := ResolveNet(g, s, d)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, res.NetAmount, 0)
				assert.LessOrEqual(t, res.NetAmount, g)
			}
		}
	}
}
