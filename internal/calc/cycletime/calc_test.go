package cycletime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateSingleOperation(t *testing.T) {
	// 72 revolutions at 1810 RPM (30.167 rev/s) takes about 2.39s
	res, err := Estimate([]Operation{
		{Position: 1, Name: "drill", Revolutions: 72, RPM: 1810},
	}, 0.4)
	require.NoError(t, err)

	require.Len(t, res.Operations, 1)
	assert.InDelta(t, 2.386, res.Operations[0].Seconds, 0.005)
	assert.Equal(t, 1, res.CriticalPosition)
	assert.Equal(t, "drill", res.CriticalName)
	assert.InDelta(t, 2.786, res.TotalSeconds, 0.005)
	assert.Equal(t, 0.4, res.IndexSeconds)
}

func TestEstimateCriticalIsLongest(t *testing.T) {
	res, err := Estimate([]Operation{
		{Position: 1, Name: "rough form", Revolutions: 40, RPM: 1200},
		{Position: 2, Name: "drill", Revolutions: 90, RPM: 1200},
		{Position: 3, Name: "cutoff", Revolutions: 21, RPM: 1200},
	}, 0.5)
	require.NoError(t, err)

	assert.Equal(t, 2, res.CriticalPosition)
	assert.Equal(t, "drill", res.CriticalName)
	assert.InDelta(t, 4.5, res.CriticalSeconds, 1e-9)
	assert.InDelta(t, 5.0, res.TotalSeconds, 1e-9)
}

func TestEstimateTieGoesToLowestPosition(t *testing.T) {
	res, err := Estimate([]Operation{
		{Position: 4, Revolutions: 60, RPM: 1200},
		{Position: 2, Revolutions: 60, RPM: 1200},
		{Position: 3, Revolutions: 60, RPM: 1200},
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.CriticalPosition)
}

func TestEstimateEmptySet(t *testing.T) {
	_, err := Estimate(nil, 0.4)
	assert.ErrorIs(t, err, ErrEmptyOperationSet)
}

func TestEstimateRejectsBadInput(t *testing.T) {
	_, err := Estimate([]Operation{{Position: 1, Revolutions: 10, RPM: 0}}, 0.4)
	assert.Error(t, err)

	_, err = Estimate([]Operation{{Position: 1, Revolutions: -1, RPM: 1200}}, 0.4)
	assert.Error(t, err)

	_, err = Estimate([]Operation{{Position: 1, Revolutions: 10, RPM: 1200}}, -0.1)
	assert.Error(t, err)
}

func TestEstimateZeroRevolutionsAllowed(t *testing.T) {
	// an idle position contributes nothing but is still reported
	res, err := Estimate([]Operation{
		{Position: 1, Revolutions: 0, RPM: 1200},
		{Position: 2, Revolutions: 30, RPM: 1200},
	}, 0.4)
	require.NoError(t, err)
	assert.Equal(t, 2, res.CriticalPosition)
	assert.Zero(t, res.Operations[0].Seconds)
}
