// Package pauli implements the Pauli-chain/lattice scenario: operator
// reduction rules (XY = iZ and friends), the bit-packed site hasher that
// detects translational equivalence classes of Pauli strings, and the
// moment simplifiers that pick a canonical representative of each class.
//
// What
//
//   - PauliContext describes a 1D chain or 2D (row, col) lattice of qubits,
//     with an optional cyclic/toroidal WrapMode and the SymmetryMode it
//     implies.
//   - It owns exactly one concrete Simplifier, selected once at construction
//     time from the wrap mode and qubit count, and reused for every
//     subsequent canonicalization -- the simplifier is called millions of
//     times per matrix build, so the selection is made once and stored as a
//     Simplifier interface value; each call is an interface method call,
//     with no per-call type switch.
//   - ReduceDefault/ReducePresorted apply the Pauli algebra (X·Y = iZ and
//     its cyclic permutations, X·X = I) to collapse a raw operator string
//     into lexicographically sorted per-qubit operators plus an accumulated
//     phase sign.
//   - SiteHasher (see sitehasher.go) packs an operator tuple into a fixed-
//     width Datum and rotates it under chain or lattice translation, for
//     the wrapping Simplifier's orbit search.
//
// Why
//
//   - Two Pauli strings that differ only by a lattice translation represent
//     the same physical moment; folding them to one canonical form before
//     they reach the symbol table is what keeps the moment matrix's symbol
//     count from growing with the lattice size.
//   - Separating reduction (algebra) from canonicalization (translation) and
//     hashing (bit-packing) keeps each concern independently testable.
//
// Usage
//
//	ctx, err := pauli.NewChainContext(4, pauli.WithWrap())
//	if err != nil {
//		// handle ErrBadPauliContext
//	}
//	x0 := ctx.SigmaX(0)
//	reduced, sign := ctx.ReduceDefault(append(x0.Operators(), ctx.SigmaX(0).Operators()...))
//	seq := ctx.Sequence(reduced, sign) // canonical OperatorSequence, ready for a symbol table
//
//	canon := ctx.SiteHasher().CanonicalSequence(reduced) // translational representative
//
// A 2D lattice is built with NewLatticeContext(rows, cols, opts...); qubit
// index q maps to (row, col) = (q % rows, q / rows), i.e. qubits are
// numbered in column-major order.
//
// Complexity
//
//   - ReduceDefault/ReducePresorted: O(n log n) for n operators (sort) once,
//     O(n) to fold adjacent same-qubit pairs.
//   - WrappingSimplifier.CanonicalSequence: O(n) hash-and-shift per
//     candidate origin, O(n) candidates -- O(n^2) per call, dominated by the
//     bit-packed Datum arithmetic rather than allocation.
//   - NonwrappingChainSimplifier/NonwrappingLatticeSimplifier: O(n log n),
//     no orbit search needed since there is no wrap to fold.
//
// Errors
//
//   - ErrBadPauliContext: wraps every construction failure, including a
//     wrapping chain/lattice that would need more slides than SiteHasher
//     supports (qubitCount > 256 under WithWrap).
//
// See also: package tensor, which consumes a *PauliContext's canonical
// sequences to build the Collins-Gisin tensor's operator-product basis.
package pauli
