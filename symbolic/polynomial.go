package symbolic

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Monomial is one term of a Polynomial: a symbol id, a complex
// coefficient, and whether the symbol's conjugate is the one referenced.
type Monomial struct {
	SymbolID    int
	Coefficient complex128
	Conjugated  bool
}

// Polynomial is an ordered sum of monomials over distinct (symbol,
// conjugated) pairs, as produced by a PolynomialFactory.
type Polynomial []Monomial

// PolynomialFactory builds and canonicalizes polynomials: combining
// duplicate (symbol, conjugated) terms and dropping coefficients that
// vanish within ZeroTolerance.
type PolynomialFactory interface {
	Build(monomials []Monomial) Polynomial
	ZeroTolerance() float64
}

// DefaultPolynomialFactory is the module's own PolynomialFactory: a
// straightforward combine-then-prune implementation using gonum's
// tolerance-based float comparison for the "is this coefficient zero"
// test spec.md's zero_tolerance contract calls for.
type DefaultPolynomialFactory struct {
	Tolerance float64
}

// NewDefaultPolynomialFactory builds a factory with the given zero
// tolerance.
func NewDefaultPolynomialFactory(tolerance float64) *DefaultPolynomialFactory {
	return &DefaultPolynomialFactory{Tolerance: tolerance}
}

// ZeroTolerance implements PolynomialFactory.
func (f *DefaultPolynomialFactory) ZeroTolerance() float64 { return f.Tolerance }

type monomialKey struct {
	symbolID   int
	conjugated bool
}

// Build implements PolynomialFactory: monomials sharing a (symbol,
// conjugated) pair are summed, then any term whose coefficient is within
// ZeroTolerance of zero on both axes is dropped. The result is sorted by
// (symbol id, conjugated) for a deterministic, comparable representation.
func (f *DefaultPolynomialFactory) Build(monomials []Monomial) Polynomial {
	combined := make(map[monomialKey]complex128, len(monomials))
	for _, m := range monomials {
		combined[monomialKey{m.SymbolID, m.Conjugated}] += m.Coefficient
	}

	keys := make([]monomialKey, 0, len(combined))
	for k := range combined {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].symbolID != keys[j].symbolID {
			return keys[i].symbolID < keys[j].symbolID
		}
		return !keys[i].conjugated && keys[j].conjugated
	})

	out := make(Polynomial, 0, len(keys))
	for _, k := range keys {
		c := combined[k]
		if f.isZero(c) {
			continue
		}
		out = append(out, Monomial{SymbolID: k.symbolID, Coefficient: c, Conjugated: k.conjugated})
	}
	return out
}

func (f *DefaultPolynomialFactory) isZero(c complex128) bool {
	return floats.EqualWithinAbs(real(c), 0, f.Tolerance) && floats.EqualWithinAbs(imag(c), 0, f.Tolerance)
}

// ApproxEqual reports whether p and other have the same (symbol,
// conjugated) terms with coefficients matching within tol, using gonum's
// complex-slice comparison. Both polynomials must already be built by the
// same factory (and so share its deterministic term order).
func (p Polynomial) ApproxEqual(other Polynomial, tol float64) bool {
	if len(p) != len(other) {
		return false
	}
	a := make([]complex128, len(p))
	b := make([]complex128, len(other))
	for i, m := range p {
		if m.SymbolID != other[i].SymbolID || m.Conjugated != other[i].Conjugated {
			return false
		}
		a[i] = m.Coefficient
		b[i] = other[i].Coefficient
	}
	return cmplxApproxEqual(a, b, tol)
}
