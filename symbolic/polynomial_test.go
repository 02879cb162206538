package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolynomialFactory_CombinesDuplicateTerms(t *testing.T) {
	f := NewDefaultPolynomialFactory(1e-9)
	poly := f.Build([]Monomial{
		{SymbolID: 2, Coefficient: 1},
		{SymbolID: 2, Coefficient: 1},
		{SymbolID: 1, Coefficient: 3},
	})
	require.Len(t, poly, 2)
	assert.Equal(t, 1, poly[0].SymbolID)
	assert.Equal(t, complex(3, 0), poly[0].Coefficient)
	assert.Equal(t, 2, poly[1].SymbolID)
	assert.Equal(t, complex(2, 0), poly[1].Coefficient)
}

func TestDefaultPolynomialFactory_DropsNearZero(t *testing.T) {
	f := NewDefaultPolynomialFactory(1e-6)
	poly := f.Build([]Monomial{
		{SymbolID: 1, Coefficient: 1},
		{SymbolID: 1, Coefficient: -1 + 1e-9},
	})
	assert.Len(t, poly, 0)
}

func TestDefaultPolynomialFactory_KeepsConjugatedTermsDistinct(t *testing.T) {
	f := NewDefaultPolynomialFactory(1e-9)
	poly := f.Build([]Monomial{
		{SymbolID: 5, Coefficient: 1, Conjugated: false},
		{SymbolID: 5, Coefficient: 2, Conjugated: true},
	})
	require.Len(t, poly, 2)
	assert.False(t, poly[0].Conjugated)
	assert.True(t, poly[1].Conjugated)
}

func TestPolynomial_ApproxEqual(t *testing.T) {
	f := NewDefaultPolynomialFactory(1e-9)
	a := f.Build([]Monomial{{SymbolID: 1, Coefficient: 1}})
	b := f.Build([]Monomial{{SymbolID: 1, Coefficient: 1 + 1e-12}})
	assert.True(t, a.ApproxEqual(b, 1e-9))

	c := f.Build([]Monomial{{SymbolID: 1, Coefficient: 2}})
	assert.False(t, a.ApproxEqual(c, 1e-9))
}
