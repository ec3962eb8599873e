package knurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToothDepth(t *testing.T) {
	d, err := ToothDepth(20, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0070, d)

	d, err = ToothDepth(0, 96)
	require.NoError(t, err)
	assert.Equal(t, 0.0060, d)

	// coarser pitch cuts deeper
	coarse, _ := ToothDepth(12, 0)
	fine, _ := ToothDepth(40, 0)
	assert.Greater(t, coarse, fine)
}

func TestToothDepthSpecExclusive(t *testing.T) {
	var oor *OutOfRangeSpecError

	_, err := ToothDepth(20, 96)
	require.ErrorAs(t, err, &oor)
	assert.Empty(t, oor.Unit)

	_, err = ToothDepth(0, 0)
	require.ErrorAs(t, err, &oor)
	assert.Empty(t, oor.Unit)
}

func TestToothDepthDomains(t *testing.T) {
	var oor *OutOfRangeSpecError

	_, err := ToothDepth(11, 0)
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "tpi", oor.Unit)

	_, err = ToothDepth(41, 0)
	require.ErrorAs(t, err, &oor)

	_, err = ToothDepth(0, 63)
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "dp", oor.Unit)

	_, err = ToothDepth(0, 161)
	require.ErrorAs(t, err, &oor)

	// domain ends are valid
	_, err = ToothDepth(12, 0)
	assert.NoError(t, err)
	_, err = ToothDepth(40, 0)
	assert.NoError(t, err)
	_, err = ToothDepth(0, 64)
	assert.NoError(t, err)
	_, err = ToothDepth(0, 160)
	assert.NoError(t, err)
}

func TestCalculateBump(t *testing.T) {
	res, err := Calculate(Input{TPI: 20, Method: MethodBump, Material: "Steel", RPM: 2100})
	require.NoError(t, err)

	assert.Equal(t, 0.0070, res.ToothDepth)
	assert.Equal(t, 0.0035, res.Penetration) // half the tooth depth
	assert.Equal(t, 80.0, res.SFM)
	assert.Equal(t, 0.0010, res.FeedPerRev)
	assert.InDelta(t, 3.5, res.Revolutions, 1e-9)
	assert.InDelta(t, 0.1, res.Seconds, 1e-9)
}

func TestCalculateEndAddsTraverse(t *testing.T) {
	plunge, err := Calculate(Input{TPI: 20, Method: MethodEnd, Material: "Brass", RPM: 2000})
	require.NoError(t, err)

	traverse, err := Calculate(Input{TPI: 20, Method: MethodEnd, Material: "Brass", RPM: 2000, Length: 0.24})
	require.NoError(t, err)

	assert.InDelta(t, 0.24/0.0120, traverse.Revolutions-plunge.Revolutions, 1e-9)
	assert.Greater(t, traverse.Seconds, plunge.Seconds)
}

func TestCalculateStraddleFasterThanBump(t *testing.T) {
	bump, err := Calculate(Input{TPI: 16, Method: MethodBump, Material: "Aluminum", RPM: 3000})
	require.NoError(t, err)
	straddle, err := Calculate(Input{TPI: 16, Method: MethodStraddle, Material: "Aluminum", RPM: 3000})
	require.NoError(t, err)
	assert.Less(t, straddle.Seconds, bump.Seconds)
}

func TestCalculateUnknownMaterial(t *testing.T) {
	_, err := Calculate(Input{TPI: 20, Method: MethodBump, Material: "Titanium", RPM: 2000})
	var um *UnknownMaterialError
	require.ErrorAs(t, err, &um)
	assert.Equal(t, "Titanium", um.Material)
}

func TestCalculateValidation(t *testing.T) {
	_, err := Calculate(Input{TPI: 20, Method: MethodBump, Material: "Steel", RPM: 0})
	assert.Error(t, err)

	_, err = Calculate(Input{TPI: 20, Method: Method("tangential"), Material: "Steel", RPM: 2000})
	assert.Error(t, err)
}

func TestMaterialsMatchTable(t *testing.T) {
	for _, name := range Materials() {
		_, ok := materialTable[name]
		assert.True(t, ok, name)
	}
	assert.Len(t, Materials(), len(materialTable))
}
