package batch

import (
	"testing"

	"Davenport/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRun(t *testing.T) {
	e := NewEngine(catalog.DefaultSet())

	res, err := e.Run(Input{
		CycleRate: 75,
		Positions: []Position{
			{Position: 1, Name: "form", Kind: catalog.KindForm, Dimension: 0.250, RPM: 1500, CamKind: catalog.CamForm},
			{Position: 2, Name: "drill", Kind: catalog.KindDrill, Dimension: 0.315, RPM: 1500},
			{Position: 3, Name: "finish drill", Kind: catalog.KindDrill, Dimension: 0.050, RPM: 1500},
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Positions, 3)
	assert.Empty(t, res.Failures)

	form := res.Positions[0]
	assert.InDelta(t, 100.0, form.Revolutions, 1e-9) // 0.250 / 0.0025
	assert.Equal(t, 0.0025, form.FeedPerRev)
	assert.InDelta(t, 4.0, form.Seconds, 1e-9)
	require.NotNil(t, form.Cam)
	assert.Equal(t, "5-F-322", form.Cam.Cam.ID)
	assert.InDelta(t, 1.0, form.Cam.BlockSetting, 1e-9)

	assert.Equal(t, 1, res.Cycle.CriticalPosition)
	assert.InDelta(t, 4.4, res.Cycle.TotalSeconds, 1e-9) // critical + 0.4 index

	// heavy drill at position 2 picks up a split suggestion
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, 2, res.Suggestions[0].Position)
}

func TestEngineRunCamNotFound(t *testing.T) {
	e := NewEngine(catalog.DefaultSet())

	res, err := e.Run(Input{
		CycleRate: 75,
		Positions: []Position{
			{Position: 1, Kind: catalog.KindDrill, Dimension: 0.315, RPM: 1500},
			// 0.9" of rise exceeds every turning cam
			{Position: 2, Kind: catalog.KindForm, Dimension: 0.250, RPM: 1500, CamRise: 0.9, CamKind: catalog.CamTurning},
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Positions, 2)
	assert.Nil(t, res.Positions[1].Cam)
	assert.NotEmpty(t, res.Positions[1].CamError)
}

func TestEngineRunFailuresIsolated(t *testing.T) {
	e := NewEngine(catalog.DefaultSet())

	res, err := e.Run(Input{
		CycleRate: 60,
		Positions: []Position{
			{Position: 1, Kind: catalog.KindDrill, Dimension: 0.3, RPM: 1500},
			{Position: 2, Kind: catalog.KindCutoff, Dimension: 0.075, RPM: 1500}, // no default feed
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Failures, 1)
	assert.Equal(t, 2, res.Failures[0].Position)
	assert.Equal(t, 1, res.Cycle.CriticalPosition)
	assert.InDelta(t, 0.5, res.Cycle.IndexSeconds, 1e-9)
}

func TestEngineRunValidation(t *testing.T) {
	e := NewEngine(catalog.DefaultSet())

	_, err := e.Run(Input{CycleRate: 75})
	assert.Error(t, err)

	_, err = e.Run(Input{CycleRate: 90, Positions: []Position{
		{Position: 1, Kind: catalog.KindDrill, Dimension: 0.3, RPM: 1500},
	}})
	assert.Error(t, err)
}
