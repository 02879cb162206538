// Package momentsys provides MatrixSystem, the single serialization point
// for one scenario's Pauli context, symbol table, and derived tensors.
// All structural mutation -- extending the symbol table, materializing a
// tensor -- happens under MatrixSystem's exclusive lock; inspection happens
// under its shared lock, matching the locking model of
// github.com/katalvlaran/lvlath/core's muVert/muEdgeAdj split.
//
// What
//
//   - MatrixSystem bundles a *pauli.PauliContext, an externally-owned
//     symbolic.SymbolTable and symbolic.PolynomialFactory, an optional
//     symbolic.Rulebook, and three keyed maps of lazily built tensors
//     (tensor.CollinsGisin, tensor.ProbabilityTensor, tensor.FullCorrelator).
//   - EnsureCollinsGisin/EnsureProbabilityTensor/EnsureFullCorrelator are
//     idempotent: calling Ensure* twice with the same key returns the same
//     tensor instance rather than rebuilding it.
//   - RefreshSymbols re-resolves every registered tensor's unresolved cells
//     in one pass, after the host extends the symbol table.
//
// Why
//
//   - A solver front-end builds several related tensors off one context
//     (a Collins-Gisin tensor, then a probability tensor and a full-
//     correlator tensor derived from it) and repeatedly extends the symbol
//     table as new operator products are discovered; MatrixSystem is the
//     one place that serializes "extend, then refresh" against concurrent
//     readers without making every tensor re-implement its own lock.
//   - One coarse RWMutex, not one per map, because EnsureProbabilityTensor,
//     EnsureFullCorrelator and RefreshSymbols each touch more than one of
//     the three maps' worth of invariants (a probability/full-correlator tensor reads its
//     parent Collins-Gisin tensor while both are nominally "under
//     construction") -- finer locking would just move the race, not remove it.
//
// Usage
//
//	ctx, err := pauli.NewChainContext(2, pauli.WithWrap())
//	ms := momentsys.NewMatrixSystem(ctx, symbols, symbolic.NewDefaultPolynomialFactory(1e-9))
//
//	cg := ms.EnsureCollinsGisin("chsh", axisOperators, measurements, tensor.Explicit)
//	pt, err := ms.EnsureProbabilityTensor("chsh-p", "chsh", tensor.Explicit)
//	if err != nil {
//		// handle *tensor.MissingComponent: "chsh" was never registered
//	}
//
//	// ... host extends the symbol table ...
//	ms.RefreshSymbols()
//
// Errors
//
//   - *tensor.MissingComponent: an EnsureProbabilityTensor/
//     EnsureFullCorrelator call named a Collins-Gisin key that was never
//     registered with EnsureCollinsGisin.
//   - *tensor.BadFC: propagated from EnsureFullCorrelator when the named
//     Collins-Gisin tensor has a non-binary measurement.
package momentsys
