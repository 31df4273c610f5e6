// file: internals/features/finance/emi/service/schedule_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/finance/emi/model"
	"vidyalaya_backend/internals/features/finance/errs"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildScheduleScenario(t *testing.T) {
	// net 8100, splits 40/30/30 at days 0/30/60 from 2024-04-01
	splits := []model.EMISplit{
		{Percent: 40, DueDaysFromStart: 0},
		{Percent: 30, DueDaysFromStart: 30},
		{Percent: 30, DueDaysFromStart: 60},
	}
	slices, err := BuildSchedule(8100, day("2024-04-01"), splits)
	require.NoError(t, err)
	require.Len(t, slices, 3)

	assert.Equal(t, 3240, slices[0].Amount)
	assert.Equal(t, day("2024-04-01"), slices[0].DueDate)
	assert.Equal(t, 2430, slices[1].Amount)
	assert.Equal(t, day("2024-05-01"), slices[1].DueDate)
	assert.Equal(t, 2430, slices[2].Amount)
	assert.Equal(t, day("2024-05-31"), slices[2].DueDate)

	sum := 0
	for i, sl := range slices {
		assert.Equal(t, i+1, sl.Number)
		sum += sl.Amount
	}
	assert.Equal(t, 8100, sum)
}

func TestBuildScheduleRemainderGoesToLast(t *testing.T) {
	// 100 split three ways: 33+33+33 rounds to 99, last absorbs +1
	splits := []model.EMISplit{
		{Percent: 33, DueDaysFromStart: 0},
		{Percent: 33, DueDaysFromStart: 30},
		{Percent: 34, DueDaysFromStart: 60},
	}
	slices, err := BuildSchedule(101, day("2024-01-01"), splits)
	require.NoError(t, err)
	sum := 0
	for _, sl := range slices {
		sum += sl.Amount
	}
	assert.Equal(t, 101, sum)

	// negative drift: round-half-up can over-allocate, last gives it back
	splits = []model.EMISplit{
		{Percent: 50, DueDaysFromStart: 0},
		{Percent: 50, DueDaysFromStart: 30},
	}
	slices, err = BuildSchedule(101, day("2024-01-01"), splits)
	require.NoError(t, err)
	assert.Equal(t, 51, slices[0].Amount)
	assert.Equal(t, 50, slices[1].Amount)
}

// Sum invariant across a spread of nets and split shapes.
func TestBuildScheduleSumInvariant(t *testing.T) {
	shapes := [][]model.EMISplit{
		{{Percent: 100, DueDaysFromStart: 0}},
		{{Percent: 50, DueDaysFromStart: 0}, {Percent: 50, DueDaysFromStart: 30}},
		{{Percent: 40, DueDaysFromStart: 0}, {Percent: 30, DueDaysFromStart: 30}, {Percent: 30, DueDaysFromStart: 60}},
		{{Percent: 33, DueDaysFromStart: 0}, {Percent: 33, DueDaysFromStart: 30}, {Percent: 34, DueDaysFromStart: 60}},
		{
			{Percent: 10, DueDaysFromStart: 0}, {Percent: 15, DueDaysFromStart: 15},
			{Percent: 25, DueDaysFromStart: 45}, {Percent: 17, DueDaysFromStart: 75},
			{Percent: 33, DueDaysFromStart: 90},
		},
	}
	nets := []int{1, 7, 99, 100, 101, 8100, 123457, 99999999}
	start := day("2024-04-01")

	for _, splits := range shapes {
		for _, net := range nets {
			slices, err := BuildSchedule(net, start, splits)
			require.NoError(t, err)
			sum := 0
			for _, sl := range slices {
				sum += sl.Amount
			}
			require.Equalf(t, net, sum, "net=%d splits=%v", net, splits)
		}
	}
}

func TestBuildScheduleSingleInstallment(t *testing.T) {
	slices, err := BuildSchedule(5000, day("2024-06-10"), []model.EMISplit{{Percent: 100, DueDaysFromStart: 0}})
	require.NoError(t, err)
	require.Len(t, slices, 1)
	assert.Equal(t, 5000, slices[0].Amount)
	assert.Equal(t, day("2024-06-10"), slices[0].DueDate)
}

func TestBuildScheduleZeroAmount(t *testing.T) {
	_, err := BuildSchedule(0, day("2024-04-01"), []model.EMISplit{{Percent: 100, DueDaysFromStart: 0}})
	require.ErrorIs(t, err, errs.ErrZeroAmount)
}

func TestValidateSplits(t *testing.T) {
	tests := []struct {
		name   string
		splits []model.EMISplit
		count  int
		ok     bool
	}{
		{"valid", []model.EMISplit{{Percent: 60, DueDaysFromStart: 0}, {Percent: 40, DueDaysFromStart: 30}}, 2, true},
		{"empty", nil, 0, false},
		{"count mismatch", []model.EMISplit{{Percent: 100, DueDaysFromStart: 0}}, 2, false},
		{"sum below 100", []model.EMISplit{{Percent: 60, DueDaysFromStart: 0}, {Percent: 30, DueDaysFromStart: 30}}, 2, false},
		{"sum above 100", []model.EMISplit{{Percent: 60, DueDaysFromStart: 0}, {Percent: 50, DueDaysFromStart: 30}}, 2, false},
		{"negative percent", []model.EMISplit{{Percent: -10, DueDaysFromStart: 0}, {Percent: 110, DueDaysFromStart: 30}}, 2, false},
		{"negative day offset", []model.EMISplit{{Percent: 100, DueDaysFromStart: -1}}, 1, false},
		{"decreasing due days", []model.EMISplit{{Percent: 50, DueDaysFromStart: 30}, {Percent: 50, DueDaysFromStart: 0}}, 2, false},
		{"equal due days allowed", []model.EMISplit{{Percent: 50, DueDaysFromStart: 30}, {Percent: 50, DueDaysFromStart: 30}}, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSplits(tt.splits, tt.count)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errs.ErrValidation)
			}
		})
	}
}
