package threading

import (
	"testing"

	"Davenport/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodFor(t *testing.T) {
	cases := []struct {
		budget float64
		want   catalog.ThreadMethod
	}{
		{10, catalog.Method6to1},
		{6, catalog.Method6to1}, // boundary inclusive
		{5.9, catalog.Method4to1},
		{3, catalog.Method4to1}, // boundary inclusive
		{2.9, catalog.Method2to1},
		{1, catalog.Method2to1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MethodFor(tc.budget), "budget %g", tc.budget)
	}
}

func TestRiseNeededWorkedExample(t *testing.T) {
	// 6:1, 24 TPI, 0.375" thread needs about 0.490" of cam rise
	rise, err := RiseNeeded(catalog.Method6to1, 24, 0.375)
	require.NoError(t, err)
	assert.InDelta(t, 0.490, rise, 0.001)
}

func TestRiseNeededScalesWithLength(t *testing.T) {
	short, err := RiseNeeded(catalog.Method6to1, 24, 0.25)
	require.NoError(t, err)
	long, err := RiseNeeded(catalog.Method6to1, 24, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, long/short, 1e-9)
}

func TestRiseNeededUnsupportedTPI(t *testing.T) {
	_, err := RiseNeeded(catalog.Method6to1, 40, 0.375)
	var ut *UnsupportedTPIError
	require.ErrorAs(t, err, &ut)
	assert.Equal(t, catalog.Method6to1, ut.Method)
	assert.Equal(t, 8.0, ut.Min)
	assert.Equal(t, 32.0, ut.Max)

	_, err = RiseNeeded(catalog.Method2to1, 8, 0.375)
	require.ErrorAs(t, err, &ut)

	_, err = RiseNeeded(catalog.ThreadMethod("9:1"), 24, 0.375)
	assert.Error(t, err)
}

func TestCalculate(t *testing.T) {
	gears := catalog.DefaultGears()

	res, err := Calculate(Input{
		ThreadLength: 0.375,
		TPI:          24,
		WorkRPM:      2400,
		CycleBudget:  8,
		CycleRate:    75,
	}, gears)
	require.NoError(t, err)

	assert.Equal(t, catalog.Method6to1, res.Method)
	assert.InDelta(t, 1800, res.ThreadingRPM, 1e-9) // 2400 x 0.75
	assert.InDelta(t, 0.490, res.RiseNeeded, 0.001)
	// (0.375 + 3/24) x 24 = 12 revolutions including die-head lead
	assert.InDelta(t, 12.0, res.Revolutions, 1e-9)
	// 12 revs at 30 rev/s over 32.5 of 50 cam spaces, plus the index
	assert.InDelta(t, 12.0/30.0/(32.5/50.0)+0.4, res.Seconds, 1e-9)
	assert.True(t, res.FitsBudget)
}

func TestCalculateTightBudget(t *testing.T) {
	gears := catalog.DefaultGears()

	res, err := Calculate(Input{
		ThreadLength: 0.25,
		TPI:          32,
		WorkRPM:      3000,
		CycleBudget:  2.5,
		CycleRate:    75,
	}, gears)
	require.NoError(t, err)

	assert.Equal(t, catalog.Method2to1, res.Method)
	assert.InDelta(t, 4000, res.ThreadingRPM, 1e-6)
	assert.Equal(t, 25.0, res.Gears.CamSpaces)
}

func TestCalculateValidation(t *testing.T) {
	gears := catalog.DefaultGears()

	_, err := Calculate(Input{ThreadLength: 0, TPI: 24, WorkRPM: 2400, CycleRate: 75}, gears)
	assert.Error(t, err)

	_, err = Calculate(Input{ThreadLength: 0.375, TPI: 0, WorkRPM: 2400, CycleRate: 75}, gears)
	assert.Error(t, err)

	_, err = Calculate(Input{ThreadLength: 0.375, TPI: 24, WorkRPM: 0, CycleRate: 75}, gears)
	assert.Error(t, err)

	_, err = Calculate(Input{ThreadLength: 0.375, TPI: 24, WorkRPM: 2400, CycleBudget: 8, CycleRate: 90}, gears)
	assert.Error(t, err)
}
