package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajpgarner/moment-sub006/symbolic"
)

func TestProbabilityTensor_CHSHMarginals(t *testing.T) {
	builder, symbols, axisOperators, measurements := chshFixture()
	cg := NewCollinsGisin(builder, symbols, axisOperators, measurements, Explicit)
	factory := symbolic.NewDefaultPolynomialFactory(1e-9)
	pt := NewProbabilityTensor(cg, factory, Explicit)

	// Probability-tensor dims: per party, 1 (identity) + 2 (A0 explicit,
	// A0 complement) + 2 (A1 explicit, A1 complement) = 5.
	assert.Equal(t, []int{5, 5}, pt.Dimensions())
	assert.True(t, pt.HasAllSymbols())

	views, err := pt.MeasurementToRange([]PMIndex{NewPMIndex(0, 0)}, nil)
	require.NoError(t, err)
	require.Len(t, views, 2) // explicit outcome 0, implicit complement outcome 1

	a0Seq, found := symbols.Where(builder.Sequence(axisOperators[0][1:2], 0))
	require.True(t, found)

	pA0eq0 := views[0].SymbolPolynomial
	require.Len(t, pA0eq0, 1)
	assert.Equal(t, a0Seq.ID, pA0eq0[0].SymbolID)
	assert.Equal(t, complex(1, 0), pA0eq0[0].Coefficient)

	pA0eq1 := views[1].SymbolPolynomial
	require.Len(t, pA0eq1, 2)
	idInfo, found := symbols.Where(builder.Sequence(nil, 0))
	require.True(t, found)
	byID := map[int]complex128{}
	for _, m := range pA0eq1 {
		byID[m.SymbolID] = m.Coefficient
	}
	assert.Equal(t, complex(1, 0), byID[idInfo.ID])
	assert.Equal(t, complex(-1, 0), byID[a0Seq.ID])
}

func TestProbabilityTensor_VirtualMatchesExplicit(t *testing.T) {
	builder, symbols, axisOperators, measurements := chshFixture()
	cg := NewCollinsGisin(builder, symbols, axisOperators, measurements, Explicit)
	factory := symbolic.NewDefaultPolynomialFactory(1e-9)
	explicitPT := NewProbabilityTensor(cg, factory, Explicit)
	virtualPT := NewProbabilityTensor(cg, factory, Virtual)

	for _, idx := range [][]int{{0, 0}, {1, 0}, {2, 3}, {4, 4}} {
		a, err := explicitPT.OutcomeToElement(idx)
		require.NoError(t, err)
		b, err := virtualPT.OutcomeToElement(idx)
		require.NoError(t, err)
		assert.True(t, a.Resolved)
		assert.True(t, b.Resolved)
		assert.True(t, a.SymbolPolynomial.ApproxEqual(b.SymbolPolynomial, 1e-9))
	}
}

func TestProbabilityTensor_ExplicitValueRules(t *testing.T) {
	builder, symbols, axisOperators, measurements := chshFixture()
	cg := NewCollinsGisin(builder, symbols, axisOperators, measurements, Explicit)
	factory := symbolic.NewDefaultPolynomialFactory(1e-9)
	pt := NewProbabilityTensor(cg, factory, Explicit)

	views, err := pt.MeasurementToRange([]PMIndex{NewPMIndex(0, 0)}, nil)
	require.NoError(t, err)

	rules, err := pt.ExplicitValueRules(views, []float64{0.5, 0.5})
	require.NoError(t, err)
	require.Len(t, rules, 2)

	idInfo, _ := symbols.Where(builder.Sequence(nil, 0))

	// views[0] is the explicit outcome A0=0 (bare symbol polynomial {A0}),
	// so its rule's identity coefficient is exactly -value.
	byID0 := map[int]complex128{}
	for _, m := range rules[0] {
		byID0[m.SymbolID] = m.Coefficient
	}
	assert.Equal(t, complex(-0.5, 0), byID0[idInfo.ID])

	// views[1] is the implicit complement (symbol polynomial {I, -A0}), so
	// its rule's identity coefficient is 1-value after the factory merges
	// the cell's own identity term with the rule's constant term.
	byID1 := map[int]complex128{}
	for _, m := range rules[1] {
		byID1[m.SymbolID] = m.Coefficient
	}
	assert.Equal(t, complex(0.5, 0), byID1[idInfo.ID])
}

func TestProbabilityTensor_MeasurementToRange_RejectsOverlappingParty(t *testing.T) {
	builder, symbols, axisOperators, measurements := chshFixture()
	cg := NewCollinsGisin(builder, symbols, axisOperators, measurements, Explicit)
	factory := symbolic.NewDefaultPolynomialFactory(1e-9)
	pt := NewProbabilityTensor(cg, factory, Explicit)

	_, err := pt.MeasurementToRange(
		[]PMIndex{NewPMIndex(0, 0)},
		[]PMOIndex{NewPMOIndex(NewPMIndex(0, 1), 0)},
	)
	require.Error(t, err)
	var badPT *BadPT
	assert.ErrorAs(t, err, &badPT)
}
