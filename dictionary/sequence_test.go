package dictionary_test

import (
	"testing"

	"github.com/ajpgarner/moment-sub006/dictionary"
	"github.com/stretchr/testify/require"
)

// identityReducer is a trivial Reducer used to exercise OperatorSequence's
// construction contract without pulling in the Pauli scenario.
type identityReducer struct{ alphabet int }

func (r identityReducer) Alphabet() int { return r.alphabet }
func (r identityReducer) ReduceDefault(ops []dictionary.Operator) ([]dictionary.Operator, dictionary.Sign) {
	return ops, dictionary.SignPositive
}
func (r identityReducer) ReducePresorted(ops []dictionary.Operator) ([]dictionary.Operator, dictionary.Sign) {
	return ops, dictionary.SignPositive
}

func TestOperatorSequence_RawTrustsSuppliedHash(t *testing.T) {
	r := identityReducer{alphabet: 5}
	seq := dictionary.NewOperatorSequence(dictionary.ConstructRaw,
		[]dictionary.Operator{1, 2}, dictionary.SignPositive, r, 999)
	require.Equal(t, uint64(999), seq.Hash())
	require.Equal(t, []dictionary.Operator{1, 2}, seq.Operators())
}

func TestOperatorSequence_DefaultRecomputesHash(t *testing.T) {
	r := identityReducer{alphabet: 5}
	seq := dictionary.NewOperatorSequence(dictionary.ConstructDefault,
		[]dictionary.Operator{1, 2}, dictionary.SignPositive, r, 0)
	want := dictionary.ShortlexHasher{Alphabet: 5}.Hash([]dictionary.Operator{1, 2})
	require.Equal(t, want, seq.Hash())
}

func TestOperatorSequence_ZeroSignEmptiesTuple(t *testing.T) {
	r := zeroingReducer{alphabet: 5}
	seq := dictionary.NewOperatorSequence(dictionary.ConstructDefault,
		[]dictionary.Operator{1, 2}, dictionary.SignPositive, r, 0)
	require.True(t, seq.IsZero())
	require.Empty(t, seq.Operators())
	require.Equal(t, uint64(0), seq.Hash())
}

type zeroingReducer struct{ alphabet int }

func (r zeroingReducer) Alphabet() int { return r.alphabet }
func (r zeroingReducer) ReduceDefault(ops []dictionary.Operator) ([]dictionary.Operator, dictionary.Sign) {
	return ops, dictionary.SignZero
}
func (r zeroingReducer) ReducePresorted(ops []dictionary.Operator) ([]dictionary.Operator, dictionary.Sign) {
	return ops, dictionary.SignZero
}

func TestOperatorSequence_EqualIgnoresUnexportedAllocation(t *testing.T) {
	r := identityReducer{alphabet: 5}
	a := dictionary.NewOperatorSequence(dictionary.ConstructDefault, []dictionary.Operator{1, 2}, dictionary.SignPositive, r, 0)
	b := dictionary.NewOperatorSequence(dictionary.ConstructDefault, []dictionary.Operator{1, 2}, dictionary.SignPositive, r, 0)
	require.True(t, a.Equal(b))
}

func TestIdentityAndZero(t *testing.T) {
	id := dictionary.Identity(5)
	require.True(t, id.IsIdentity())
	require.Equal(t, uint64(1), id.Hash())

	z := dictionary.Zero(5)
	require.True(t, z.IsZero())
}

func TestSign_Combine(t *testing.T) {
	require.Equal(t, dictionary.SignNegative, dictionary.SignImaginary.Combine(dictionary.SignImaginary))
	require.Equal(t, dictionary.SignPositive, dictionary.SignImaginary.Combine(dictionary.SignNegImaginary))
	require.Equal(t, dictionary.SignZero, dictionary.SignZero.Combine(dictionary.SignNegative))
	require.Equal(t, dictionary.SignNegImaginary, dictionary.SignImaginary.Conjugate())
}
