package tensor

import (
	"fmt"
	"sync/atomic"

	"github.com/ajpgarner/moment-sub006/dictionary"
	"github.com/ajpgarner/moment-sub006/symbolic"
)

// SequenceBuilder produces the default-normalized OperatorSequence for a
// raw tuple of global operator ids, applying the owning scenario's
// multiplication rules. pauli.PauliContext satisfies this via its
// Sequence method.
type SequenceBuilder interface {
	Sequence(ops []dictionary.Operator, sign dictionary.Sign) dictionary.OperatorSequence
}

// StorageMode selects whether a tensor's cells are materialized at
// construction (Explicit) or synthesized on demand (Virtual).
type StorageMode int

const (
	// Explicit populates every cell at construction time.
	Explicit StorageMode = iota
	// Virtual synthesizes cells on demand and never caches them.
	Virtual
)

// MeasurementRange records where one party's measurement's operators sit
// along that party's Collins-Gisin axis: slots
// [FirstOperatorOffset+1, FirstOperatorOffset+OperatorCount] (axis slot 0
// is always the identity sentinel).
type MeasurementRange struct {
	FirstOperatorOffset int
	OperatorCount       int
}

type cgCell struct {
	sequence  dictionary.OperatorSequence
	hash      uint64
	symbolID  int
	basisReal int
	resolved  bool
}

// CGCellView is a read-only snapshot of one Collins-Gisin cell, as
// returned by MeasurementToRange: the sequence and hash are always
// present; SymbolID/BasisReal are meaningful only when Resolved is true.
type CGCellView struct {
	Index     []int
	Sequence  dictionary.OperatorSequence
	Hash      uint64
	SymbolID  int
	BasisReal int
	Resolved  bool
}

// CollinsGisin is the joint-operator-product tensor over parties: axis d
// has one identity slot (index 0) plus one slot per non-identity operator
// of party d.
type CollinsGisin struct {
	builder       SequenceBuilder
	symbols       symbolic.SymbolTable
	shape         Shape
	axisOperators [][]dictionary.Operator // per axis; slot 0 unused (sentinel)
	measurements  [][]MeasurementRange    // per axis (party)
	mode          StorageMode
	cells         []cgCell // column-major, populated iff mode == Explicit
	hasAllSymbols atomic.Bool
}

// NewCollinsGisin builds a CollinsGisin tensor. axisOperators[d] has
// length Dimensions[d] = operators_per_party[d]+1; axisOperators[d][0] is
// ignored (the identity sentinel). measurements[d] lists that party's
// measurements in the order MeasurementToRange's PMIndex.Mmt indexes them.
func NewCollinsGisin(builder SequenceBuilder, symbols symbolic.SymbolTable,
	axisOperators [][]dictionary.Operator, measurements [][]MeasurementRange, mode StorageMode) *CollinsGisin {

	dims := make([]int, len(axisOperators))
	for i, ops := range axisOperators {
		dims[i] = len(ops)
	}
	cg := &CollinsGisin{
		builder:       builder,
		symbols:       symbols,
		shape:         NewShape(dims),
		axisOperators: axisOperators,
		measurements:  measurements,
		mode:          mode,
	}
	if mode == Explicit {
		cg.materialize()
	}
	return cg
}

func (cg *CollinsGisin) operatorsForIndex(index []int) []dictionary.Operator {
	ops := make([]dictionary.Operator, 0, len(index))
	for d, v := range index {
		if v == 0 {
			continue
		}
		ops = append(ops, cg.axisOperators[d][v])
	}
	return ops
}

func (cg *CollinsGisin) materialize() {
	cg.cells = make([]cgCell, cg.shape.Size())
	allResolved := true
	next := cg.shape.Iterate()
	offset := 0
	for {
		index, ok := next()
		if !ok {
			break
		}
		seq := cg.builder.Sequence(cg.operatorsForIndex(index), dictionary.SignPositive)
		cell := cgCell{sequence: seq, hash: seq.Hash()}
		if info, found := cg.symbols.Where(seq); found {
			cell.symbolID = info.ID
			cell.basisReal = info.BasisReal
			cell.resolved = true
		} else {
			allResolved = false
		}
		cg.cells[offset] = cell
		offset++
	}
	cg.hasAllSymbols.Store(allResolved)
}

// Dimensions returns the per-axis extents.
func (cg *CollinsGisin) Dimensions() []int { return cg.shape.Dims }

// HasAllSymbols reports whether every cell has a resolved symbol, per the
// per-tensor atomic flag required by spec.md §5.
func (cg *CollinsGisin) HasAllSymbols() bool { return cg.hasAllSymbols.Load() }

// ValidateIndex reports BadTensorIndex if index is malformed for this
// tensor's shape.
func (cg *CollinsGisin) ValidateIndex(index []int) error { return cg.shape.ValidateIndex(index) }

// IndexToOffset computes the column-major linear offset of index.
func (cg *CollinsGisin) IndexToOffset(index []int) (int, error) { return cg.shape.IndexToOffset(index) }

// IndexToSequence returns the operator sequence at index, materializing it
// on demand in Virtual mode.
func (cg *CollinsGisin) IndexToSequence(index []int) (dictionary.OperatorSequence, error) {
	if err := cg.shape.ValidateIndex(index); err != nil {
		return dictionary.OperatorSequence{}, err
	}
	if cg.mode == Explicit {
		offset, err := cg.shape.IndexToOffset(index)
		if err != nil {
			return dictionary.OperatorSequence{}, err
		}
		return cg.cells[offset].sequence, nil
	}
	return cg.builder.Sequence(cg.operatorsForIndex(index), dictionary.SignPositive), nil
}

func (cg *CollinsGisin) cellView(index []int) (CGCellView, error) {
	seq, err := cg.IndexToSequence(index)
	if err != nil {
		return CGCellView{}, err
	}
	view := CGCellView{Index: append([]int(nil), index...), Sequence: seq, Hash: seq.Hash()}
	if cg.mode == Explicit {
		offset, _ := cg.shape.IndexToOffset(index)
		cell := cg.cells[offset]
		view.SymbolID, view.BasisReal, view.Resolved = cell.symbolID, cell.basisReal, cell.resolved
	} else if info, found := cg.symbols.Where(seq); found {
		view.SymbolID, view.BasisReal, view.Resolved = info.ID, info.BasisReal, true
	}
	return view, nil
}

// cellAtOffset returns the cell view at a known-valid column-major
// offset, for callers (ProbabilityTensor) that compute offsets directly
// rather than through a multi-index.
func (cg *CollinsGisin) cellAtOffset(offset int) (CGCellView, error) {
	return cg.cellView(cg.shape.OffsetToIndex(offset))
}

func (cg *CollinsGisin) measurementRange(idx PMIndex) (MeasurementRange, error) {
	if idx.Party < 0 || idx.Party >= len(cg.measurements) {
		return MeasurementRange{}, &BadCG{Detail: fmt.Sprintf("party %d out of range", idx.Party)}
	}
	party := cg.measurements[idx.Party]
	if idx.Mmt < 0 || idx.Mmt >= len(party) {
		return MeasurementRange{}, &BadCG{Detail: fmt.Sprintf("measurement %d out of range for party %d", idx.Mmt, idx.Party)}
	}
	return party[idx.Mmt], nil
}

// MeasurementToRange splices every combination of operators over the free
// measurements while holding each fixed outcome's axis at its chosen
// operator slot. Fails with BadCG if any index is out of bounds or a
// party appears in both lists.
func (cg *CollinsGisin) MeasurementToRange(free []PMIndex, fixed []PMOIndex) ([]CGCellView, error) {
	inFree := make(map[int]bool, len(free))
	for _, f := range free {
		inFree[f.Party] = true
	}
	for _, fx := range fixed {
		if inFree[fx.Party] {
			return nil, &BadCG{Detail: fmt.Sprintf("party %d present in both free and fixed measurements", fx.Party)}
		}
	}

	base := make([]int, cg.shape.Rank())
	for _, fx := range fixed {
		mr, err := cg.measurementRange(fx.PMIndex)
		if err != nil {
			return nil, err
		}
		if fx.Outcome < 0 || fx.Outcome >= mr.OperatorCount {
			return nil, &BadCG{Detail: fmt.Sprintf("outcome %d out of range for party %d mmt %d", fx.Outcome, fx.Party, fx.Mmt)}
		}
		base[fx.Party] = mr.FirstOperatorOffset + fx.Outcome + 1
	}

	freeDims := make([]int, len(free))
	freeRanges := make([]MeasurementRange, len(free))
	freeParties := make([]int, len(free))
	for i, f := range free {
		mr, err := cg.measurementRange(f)
		if err != nil {
			return nil, err
		}
		freeDims[i] = mr.OperatorCount
		freeRanges[i] = mr
		freeParties[i] = f.Party
	}

	freeShape := NewShape(freeDims)
	next := freeShape.Iterate()
	var out []CGCellView
	for {
		combo, ok := next()
		if !ok {
			break
		}
		index := append([]int(nil), base...)
		for i, c := range combo {
			index[freeParties[i]] = freeRanges[i].FirstOperatorOffset + c + 1
		}
		view, err := cg.cellView(index)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

// RefreshSymbols re-looks-up every unresolved Explicit cell against the
// symbol table. Call after the host extends the table. A no-op in Virtual
// mode (queries always resolve live).
func (cg *CollinsGisin) RefreshSymbols() {
	if cg.mode != Explicit {
		return
	}
	allResolved := true
	for i := range cg.cells {
		if cg.cells[i].resolved {
			continue
		}
		if info, found := cg.symbols.Where(cg.cells[i].sequence); found {
			cg.cells[i].symbolID = info.ID
			cg.cells[i].basisReal = info.BasisReal
			cg.cells[i].resolved = true
		} else {
			allResolved = false
		}
	}
	cg.hasAllSymbols.Store(allResolved)
}
