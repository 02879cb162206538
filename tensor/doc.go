// Package tensor implements the multi-index tensor layer built on top of
// an operator-sequence alphabet: the Collins-Gisin joint-operator-product
// tensor, the probability tensor derived from it by inclusion-exclusion,
// and the full-correlator tensor for binary measurements, plus the
// column-major index arithmetic and party/measurement indexing shared
// between them.
//
// What
//
//   - Shape: column-major multi-index <-> flat-offset arithmetic, shared by
//     every tensor in this package (index.go).
//   - CollinsGisin: one cell per joint choice of, per party, either the
//     identity or one explicit measurement outcome. Built Explicit (every
//     cell materialized eagerly) or Virtual (cells resolved on demand),
//     tracked by a per-tensor atomic HasAllSymbols flag.
//   - ProbabilityTensor: the same shape, but each cell holds a linear
//     combination of Collins-Gisin cells (a CGPolynomial) produced by
//     expanding "this outcome or its complement" over every axis, plus the
//     SymbolPolynomial that combination resolves to once every term has a
//     symbol.
//   - FullCorrelator: like ProbabilityTensor, but restricted to binary
//     measurements and expanding <A> = 2*P(A=0)-1 style correlators instead
//     of raw outcome probabilities.
//   - PMIndex/PMOIndex: (party, measurement) and (party, measurement,
//     outcome) coordinates used by MeasurementToRange/OutcomeToElement to
//     address a slice of a tensor without hand-building a multi-index.
//
// Why
//
//   - A Bell scenario's observable data -- measured probabilities,
//     correlators -- is naturally indexed by (party, measurement, outcome),
//     not by a flat symbol list; keeping that index structure as a tensor
//     lets a solver front-end ask for "every correlator for party 0's first
//     measurement" without re-deriving the inclusion-exclusion expansion
//     itself.
//   - Expanding probability/correlator cells as a CGPolynomial before
//     symbol resolution lets a cell be read back (RefreshSymbols) the
//     moment its dependencies gain symbols, without re-running the
//     combinatorial expansion.
//
// Usage
//
//	cg := tensor.NewCollinsGisin(ctx, symbols, axisOperators, measurements, tensor.Explicit)
//	pt := tensor.NewProbabilityTensor(cg, factory, tensor.Explicit)
//
//	views, err := pt.MeasurementToRange([]tensor.PMIndex{tensor.NewPMIndex(0, 0)}, nil)
//	if err != nil {
//		// handle *BadPT
//	}
//	for _, v := range views {
//		fmt.Println(v.SymbolPolynomial) // e.g. P(A0=0) = A0, P(A0=1) = 1 - A0
//	}
//
//	fc, err := tensor.NewFullCorrelator(cg, factory, tensor.Explicit) // BadFC if any measurement is non-binary
//
// ctx above is any SequenceBuilder -- in practice a *pauli.PauliContext,
// matched structurally rather than by import to avoid a dependency cycle
// between tensor and pauli.
//
// Complexity
//
//   - Shape.IndexToOffset/OffsetToIndex: O(rank).
//   - CollinsGisin materialize (Explicit mode): O(product of dims), one
//     symbol lookup per cell.
//   - ProbabilityTensor/FullCorrelator cgExpansion: the product over axes of
//     each axis's term count, before grouping by Collins-Gisin offset. A
//     probability axis contributes one term for the identity or an explicit
//     outcome, and 1+n terms for the complement of an n-operator
//     measurement; a full-correlator axis contributes one term for the
//     identity and two for a correlator, so at most O(2^rank).
//
// Errors
//
//   - BadTensorIndex: wrong-rank or out-of-range multi-index.
//   - BadCG: invalid Collins-Gisin access, including overlapping
//     free/fixed parties in a MeasurementToRange splice.
//   - BadPT / BadFC: invalid probability-tensor / full-correlator access;
//     BadFC also reports a non-binary measurement at construction.
//   - MissingComponent: an operation depended on a collaborator
//     (typically a named tensor) that was never registered.
package tensor
