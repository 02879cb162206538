package pauli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajpgarner/moment-sub006/dictionary"
)

func sequenceEqual(a, b []dictionary.Operator) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNonwrappingChainSimplifier_CanonicalizesToOrigin(t *testing.T) {
	ctx, err := NewChainContext(8)
	require.NoError(t, err)
	s := ctx.SiteHasher()

	input := []dictionary.Operator{makeOperator(3, AxisX), makeOperator(5, AxisZ)}
	canon := s.CanonicalSequence(input)
	require.True(t, s.IsCanonical(canon))
	assert.Equal(t, 0, qubitOf(canon[0]))
	assert.Equal(t, int64(0), s.ImplLabel())
}

func TestNonwrappingChainSimplifier_Idempotent(t *testing.T) {
	ctx, err := NewChainContext(8)
	require.NoError(t, err)
	s := ctx.SiteHasher()

	input := []dictionary.Operator{makeOperator(6, AxisY)}
	once := s.CanonicalSequence(input)
	twice := s.CanonicalSequence(once)
	assert.True(t, sequenceEqual(once, twice))
}

func TestNonwrappingLatticeSimplifier_CanonicalizesToCorner(t *testing.T) {
	ctx, err := NewLatticeContext(4, 4)
	require.NoError(t, err)
	s := ctx.SiteHasher()
	assert.Equal(t, int64(-1), s.ImplLabel())

	// Qubit 0 = (row 0, col 0); qubit index = col*height+row.
	input := []dictionary.Operator{makeOperator(2*4+1, AxisX)} // col 2, row 1
	canon := s.CanonicalSequence(input)
	require.True(t, s.IsCanonical(canon))
	assert.Equal(t, 0, qubitOf(canon[0])/4) // column 0
}

func TestWrappingSimplifier_OrbitMinimality(t *testing.T) {
	ctx, err := NewChainContext(6, WithWrap())
	require.NoError(t, err)
	s := ctx.SiteHasher()
	hasher := ctx.hasherImpl

	input := []dictionary.Operator{makeOperator(4, AxisX), makeOperator(5, AxisZ)}
	canonOps := s.CanonicalSequence(input)
	canonHash := hasher.Hash(canonOps)

	for k := 0; k < 6; k++ {
		shifted := hasher.CyclicShift(hasher.Hash(input), k)
		assert.False(t, hasher.Less(shifted, canonHash), "k=%d beats canonical", k)
	}
}

func TestWrappingSimplifier_IsCanonicalMatchesMinimum(t *testing.T) {
	ctx, err := NewChainContext(6, WithWrap())
	require.NoError(t, err)
	s := ctx.SiteHasher()

	input := []dictionary.Operator{makeOperator(0, AxisX), makeOperator(2, AxisZ)}
	assert.True(t, s.IsCanonical(input))

	shifted := s.ChainOffset(input, 3)
	assert.False(t, s.IsCanonical(shifted))
}

func TestWrappingSimplifier_CanonicalizationIdempotent(t *testing.T) {
	ctx, err := NewLatticeContext(3, 3, WithWrap())
	require.NoError(t, err)
	s := ctx.SiteHasher()

	input := []dictionary.Operator{makeOperator(7, AxisY)}
	once := s.CanonicalSequence(input)
	twice := s.CanonicalSequence(once)
	assert.True(t, sequenceEqual(once, twice))
}

func TestWrappingSimplifier_ImplLabelIsSlideCount(t *testing.T) {
	ctx, err := NewChainContext(40, WithWrap())
	require.NoError(t, err)
	assert.Equal(t, int64(2), ctx.SiteHasher().ImplLabel())
}
