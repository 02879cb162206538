package pauli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajpgarner/moment-sub006/dictionary"
)

// TestChain5CyclicSingleShift is scenario 1: PauliContext(5, wrap), X@0 has
// hash 0x1, and cyclic_shift by k reproduces hash(X@k) for every k in 0..4.
func TestChain5CyclicSingleShift(t *testing.T) {
	ctx, err := NewChainContext(5, WithWrap())
	require.NoError(t, err)
	hasher := ctx.hasherImpl
	require.NotNil(t, hasher)

	base := hasher.Hash([]dictionary.Operator{makeOperator(0, AxisX)})
	require.Equal(t, Datum{1}, base)

	for k := 0; k < 5; k++ {
		shifted := hasher.CyclicShift(base, k)
		want := hasher.Hash([]dictionary.Operator{makeOperator(k, AxisX)})
		require.Equal(t, want, shifted, "k=%d", k)
	}
}

// TestChain40CrossSlideShift is scenario 2: PauliContext(40, wrap), X@0*Z@33
// hashes to (0x1, 0xc) across two slides, and cyclic_shift by 32 matches a
// direct hash of the shifted operator sequence.
func TestChain40CrossSlideShift(t *testing.T) {
	ctx, err := NewChainContext(40, WithWrap())
	require.NoError(t, err)
	hasher := ctx.hasherImpl
	require.Equal(t, 2, hasher.Slides())

	input := []dictionary.Operator{makeOperator(0, AxisX), makeOperator(33, AxisZ)}
	base := hasher.Hash(input)
	require.Equal(t, uint64(0x1), base[0])
	require.Equal(t, uint64(0xc), base[1])

	shifted := hasher.CyclicShift(base, 32)
	want := hasher.Hash([]dictionary.Operator{makeOperator(32, AxisX), makeOperator((33+32)%40, AxisZ)})
	require.Equal(t, want, shifted)
}

func TestSiteHasher_HashUnhashRoundTrip(t *testing.T) {
	ctx, err := NewChainContext(40, WithWrap())
	require.NoError(t, err)
	hasher := ctx.hasherImpl

	input := []dictionary.Operator{makeOperator(3, AxisY), makeOperator(17, AxisZ), makeOperator(39, AxisX)}
	got := hasher.Unhash(hasher.Hash(input))
	require.Equal(t, input, got)
}

func TestSiteHasher_ChainShiftComposition(t *testing.T) {
	ctx, err := NewChainContext(40, WithWrap())
	require.NoError(t, err)
	hasher := ctx.hasherImpl

	base := hasher.Hash([]dictionary.Operator{makeOperator(5, AxisX), makeOperator(22, AxisZ)})
	a, b := 11, 26
	lhs := hasher.CyclicShift(hasher.CyclicShift(base, a), b)
	rhs := hasher.CyclicShift(base, (a+b)%40)
	require.Equal(t, rhs, lhs)
}

func TestSiteHasher_LatticeShiftCommutes(t *testing.T) {
	ctx, err := NewLatticeContext(4, 4, WithWrap())
	require.NoError(t, err)
	hasher := ctx.hasherImpl

	base := hasher.Hash([]dictionary.Operator{makeOperator(5, AxisY)})
	both := hasher.LatticeShift(base, 2, 3)
	rowThenCol := hasher.LatticeShift(hasher.LatticeShift(base, 2, 0), 0, 3)
	colThenRow := hasher.LatticeShift(hasher.LatticeShift(base, 0, 3), 2, 0)
	require.Equal(t, both, rowThenCol)
	require.Equal(t, both, colThenRow)
}

func TestSiteHasher_CanonicalHashOrbitMinimal(t *testing.T) {
	ctx, err := NewChainContext(5, WithWrap())
	require.NoError(t, err)
	hasher := ctx.hasherImpl

	input := []dictionary.Operator{makeOperator(3, AxisX)}
	minHash, _ := hasher.CanonicalHash(input)
	for k := 0; k < 5; k++ {
		candidate := hasher.CyclicShift(hasher.Hash(input), k)
		require.False(t, hasher.Less(candidate, minHash), "orbit element should not beat minimum, k=%d", k)
	}
}
