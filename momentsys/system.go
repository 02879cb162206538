package momentsys

import (
	"sync"

	"github.com/ajpgarner/moment-sub006/dictionary"
	"github.com/ajpgarner/moment-sub006/pauli"
	"github.com/ajpgarner/moment-sub006/symbolic"
	"github.com/ajpgarner/moment-sub006/tensor"
)

// MatrixSystem bundles one scenario's Pauli context, externally-owned
// symbol table and polynomial factory, and a keyed set of lazily built
// derived tensors. Every structural mutation -- registering a new tensor,
// refreshing symbols -- takes muSystem exclusively; every inspection takes
// it shared. Within a system, operations serialize at this single lock;
// there is no finer-grained locking, per the spec's single-serialization-
// point concurrency model.
type MatrixSystem struct {
	muSystem sync.RWMutex

	context *pauli.PauliContext
	symbols symbolic.SymbolTable
	factory symbolic.PolynomialFactory
	rules   symbolic.Rulebook

	collinsGisin   map[string]*tensor.CollinsGisin
	probability    map[string]*tensor.ProbabilityTensor
	fullCorrelator map[string]*tensor.FullCorrelator
}

// NewMatrixSystem builds a system around an already-constructed context
// and the host's symbol table and polynomial factory. Neither collaborator
// is copied or mutated by the system itself; only read through the shared
// lock, or (for symbols) written to by the host between RefreshSymbols
// calls.
func NewMatrixSystem(context *pauli.PauliContext, symbols symbolic.SymbolTable, factory symbolic.PolynomialFactory) *MatrixSystem {
	return &MatrixSystem{
		context:        context,
		symbols:        symbols,
		factory:        factory,
		collinsGisin:   make(map[string]*tensor.CollinsGisin),
		probability:    make(map[string]*tensor.ProbabilityTensor),
		fullCorrelator: make(map[string]*tensor.FullCorrelator),
	}
}

// Context returns the system's Pauli context.
func (ms *MatrixSystem) Context() *pauli.PauliContext {
	ms.muSystem.RLock()
	defer ms.muSystem.RUnlock()
	return ms.context
}

// Symbols returns the system's symbol table.
func (ms *MatrixSystem) Symbols() symbolic.SymbolTable {
	ms.muSystem.RLock()
	defer ms.muSystem.RUnlock()
	return ms.symbols
}

// Rulebook returns the system's rulebook, if one has been set.
func (ms *MatrixSystem) Rulebook() (symbolic.Rulebook, bool) {
	ms.muSystem.RLock()
	defer ms.muSystem.RUnlock()
	return ms.rules, ms.rules != nil
}

// SetRulebook installs the host's rulebook for subsequent moment-rule
// completion. Replaces any previously installed rulebook.
func (ms *MatrixSystem) SetRulebook(rb symbolic.Rulebook) {
	ms.muSystem.Lock()
	defer ms.muSystem.Unlock()
	ms.rules = rb
}

// CollinsGisin returns the tensor registered under key, if any.
func (ms *MatrixSystem) CollinsGisin(key string) (*tensor.CollinsGisin, bool) {
	ms.muSystem.RLock()
	defer ms.muSystem.RUnlock()
	cg, ok := ms.collinsGisin[key]
	return cg, ok
}

// EnsureCollinsGisin returns the Collins-Gisin tensor registered under key,
// building and registering it first if absent. Construction happens under
// the exclusive lock: a tensor under construction is never visible to
// concurrent readers in a partially built state.
func (ms *MatrixSystem) EnsureCollinsGisin(key string, axisOperators [][]dictionary.Operator,
	measurements [][]tensor.MeasurementRange, mode tensor.StorageMode) *tensor.CollinsGisin {

	ms.muSystem.Lock()
	defer ms.muSystem.Unlock()
	if cg, ok := ms.collinsGisin[key]; ok {
		return cg
	}
	cg := tensor.NewCollinsGisin(ms.context, ms.symbols, axisOperators, measurements, mode)
	ms.collinsGisin[key] = cg
	return cg
}

// ProbabilityTensor returns the tensor registered under key, if any.
func (ms *MatrixSystem) ProbabilityTensor(key string) (*tensor.ProbabilityTensor, bool) {
	ms.muSystem.RLock()
	defer ms.muSystem.RUnlock()
	pt, ok := ms.probability[key]
	return pt, ok
}

// EnsureProbabilityTensor returns the probability tensor registered under
// key, building it from the named Collins-Gisin tensor first if absent.
// Fails with MissingComponent if cgKey names no registered tensor.
func (ms *MatrixSystem) EnsureProbabilityTensor(key, cgKey string, mode tensor.StorageMode) (*tensor.ProbabilityTensor, error) {
	ms.muSystem.Lock()
	defer ms.muSystem.Unlock()
	if pt, ok := ms.probability[key]; ok {
		return pt, nil
	}
	cg, ok := ms.collinsGisin[cgKey]
	if !ok {
		return nil, &tensor.MissingComponent{Component: cgKey}
	}
	pt := tensor.NewProbabilityTensor(cg, ms.factory, mode)
	ms.probability[key] = pt
	return pt, nil
}

// FullCorrelator returns the tensor registered under key, if any.
func (ms *MatrixSystem) FullCorrelator(key string) (*tensor.FullCorrelator, bool) {
	ms.muSystem.RLock()
	defer ms.muSystem.RUnlock()
	fc, ok := ms.fullCorrelator[key]
	return fc, ok
}

// EnsureFullCorrelator returns the full-correlator tensor registered under
// key, building it from the named Collins-Gisin tensor first if absent.
// Fails with MissingComponent if cgKey names no registered tensor, or with
// BadFC if that tensor's measurements are not all binary.
func (ms *MatrixSystem) EnsureFullCorrelator(key, cgKey string, mode tensor.StorageMode) (*tensor.FullCorrelator, error) {
	ms.muSystem.Lock()
	defer ms.muSystem.Unlock()
	if fc, ok := ms.fullCorrelator[key]; ok {
		return fc, nil
	}
	cg, ok := ms.collinsGisin[cgKey]
	if !ok {
		return nil, &tensor.MissingComponent{Component: cgKey}
	}
	fc, err := tensor.NewFullCorrelator(cg, ms.factory, mode)
	if err != nil {
		return nil, err
	}
	ms.fullCorrelator[key] = fc
	return fc, nil
}

// RefreshSymbols re-resolves every registered tensor's unresolved cells
// against the current symbol table. Call after the host extends the
// table. Every tensor observes the monotonic-resolution invariant: a cell
// never regresses from resolved to unresolved.
func (ms *MatrixSystem) RefreshSymbols() {
	ms.muSystem.Lock()
	defer ms.muSystem.Unlock()
	for _, cg := range ms.collinsGisin {
		cg.RefreshSymbols()
	}
	for _, pt := range ms.probability {
		pt.RefreshSymbols()
	}
	for _, fc := range ms.fullCorrelator {
		fc.RefreshSymbols()
	}
}
