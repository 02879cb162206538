package pauli

import "github.com/ajpgarner/moment-sub006/dictionary"

// Simplifier selects a canonical representative for the translational
// equivalence class an operator sequence belongs to. Exactly one concrete
// implementation is chosen per PauliContext at construction time: either
// of the two non-wrapping fast paths, or a wrapping implementation backed
// by a SiteHasher with a fixed slide count.
//
// ImplLabel is a dispatch tag for callers that need to branch on which
// concrete wrapping width is in play without a type switch on every
// hot-path call.
type Simplifier interface {
	// CanonicalSequence returns the canonical representative of input's
	// equivalence class, as a raw operator tuple.
	CanonicalSequence(input []dictionary.Operator) []dictionary.Operator

	// IsCanonical reports whether input is already its class's
	// representative.
	IsCanonical(input []dictionary.Operator) bool

	// ChainOffset translates input by k sites along the chain (major) axis.
	ChainOffset(input []dictionary.Operator, k int) []dictionary.Operator

	// LatticeOffset translates input by (row, col) sites on a lattice.
	LatticeOffset(input []dictionary.Operator, row, col int) []dictionary.Operator

	// ImplLabel tags the concrete implementation: 0 for non-wrapping
	// chain, -1 for non-wrapping lattice, or the slide count (1-8) for a
	// wrapping implementation.
	ImplLabel() int64
}

func newNonwrappingSimplifier(c *PauliContext) Simplifier {
	if c.IsLattice() {
		return &NonwrappingLatticeSimplifier{ctx: c, columnOpHeight: 3 * c.columnHeight}
	}
	return &NonwrappingChainSimplifier{ctx: c}
}

func newWrappingSimplifier(c *PauliContext, hasher *SiteHasher) Simplifier {
	return &WrappingSimplifier{ctx: c, hasher: hasher}
}

func copyOperators(ops []dictionary.Operator) []dictionary.Operator {
	out := make([]dictionary.Operator, len(ops))
	copy(out, ops)
	return out
}
