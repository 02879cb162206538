package pauli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajpgarner/moment-sub006/dictionary"
)

func TestAxisCombine_AllSixIdentities(t *testing.T) {
	cases := []struct {
		a, b, want Axis
		phase      dictionary.Sign
	}{
		{AxisX, AxisY, AxisZ, dictionary.SignImaginary},    // XY = iZ
		{AxisY, AxisX, AxisZ, dictionary.SignNegImaginary}, // YX = -iZ
		{AxisY, AxisZ, AxisX, dictionary.SignImaginary},    // YZ = iX
		{AxisZ, AxisY, AxisX, dictionary.SignNegImaginary}, // ZY = -iX
		{AxisZ, AxisX, AxisY, dictionary.SignImaginary},    // ZX = iY
		{AxisX, AxisZ, AxisY, dictionary.SignNegImaginary}, // XZ = -iY
	}
	for _, c := range cases {
		result, ok, phase := axisCombine(c.a, c.b)
		require.True(t, ok)
		assert.Equal(t, c.want, result)
		assert.Equal(t, c.phase, phase)
	}
}

func TestAxisCombine_SameAxisAnnihilates(t *testing.T) {
	for _, a := range [3]Axis{AxisX, AxisY, AxisZ} {
		_, ok, phase := axisCombine(a, a)
		assert.False(t, ok)
		assert.Equal(t, dictionary.SignPositive, phase)
	}
}

func TestFoldQubitRun_EmptyRunIsAbsent(t *testing.T) {
	_, present, phase := foldQubitRun(nil)
	assert.False(t, present)
	assert.Equal(t, dictionary.SignPositive, phase)
}

func TestFoldQubitRun_ThreeDistinctCancels(t *testing.T) {
	// X then Y then Z: X*Y = iZ, then Z*Z = identity (absent), net phase i.
	result, present, phase := foldQubitRun([]Axis{AxisX, AxisY, AxisZ})
	assert.False(t, present)
	assert.Equal(t, dictionary.SignImaginary, phase)
	_ = result
}

func TestMakeOperatorRoundTrip(t *testing.T) {
	for q := 0; q < 5; q++ {
		for _, axis := range [3]Axis{AxisX, AxisY, AxisZ} {
			op := makeOperator(q, axis)
			assert.Equal(t, q, qubitOf(op))
			assert.Equal(t, axis, axisOf(op))
		}
	}
}
