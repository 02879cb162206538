package symbolic

// LinearCombination is one term of a linear combination of symbols by
// real-basis index -- a lighter-weight value than Polynomial for contexts
// that never need the complex/conjugated generality, such as an
// intermediate correlator-cell accumulation before final polynomial
// assembly. Recovered from
// original_source/cpp/lib_moment/symbolic/linear_combo.h.
type LinearCombination struct {
	Index  int
	Weight complex128
}
