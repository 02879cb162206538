package tensor

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/ajpgarner/moment-sub006/dictionary"
	"github.com/ajpgarner/moment-sub006/symbolic"
)

// CGTerm is one monomial of a CGPolynomial: a signed multiple of a single
// Collins-Gisin cell, named by that cell's column-major offset.
type CGTerm struct {
	CGOffset    int
	Coefficient complex128
}

// CGPolynomial expresses a probability-tensor cell before symbol
// resolution, as a linear combination of Collins-Gisin cells. It survives
// even when some of those cells have no resolved symbol yet.
type CGPolynomial []CGTerm

// ptAxisMeasurement locates one measurement's outcome slots along a
// ProbabilityTensor party axis: [firstOutcomeSlot, firstOutcomeSlot+outcomes)
// where the last of those outcomes is the implicit complement.
type ptAxisMeasurement struct {
	mr               MeasurementRange
	firstOutcomeSlot int
	outcomes         int // = mr.OperatorCount + 1 (explicit outcomes plus one complement)
}

type ptCell struct {
	cgPoly     CGPolynomial
	symbolPoly symbolic.Polynomial
	resolved   bool
}

// PTCellView is a read-only snapshot of one probability-tensor cell.
// SymbolPolynomial is meaningful only when Resolved is true.
type PTCellView struct {
	Index            []int
	CGPolynomial     CGPolynomial
	SymbolPolynomial symbolic.Polynomial
	Resolved         bool
}

// ProbabilityTensor is the Collins-Gisin tensor's dual: each axis slot is
// either the identity (marginalize that party out) or one outcome of one
// of that party's measurements, with the measurement's final outcome
// always the implicit complement of the rest. Cell values are expressed by
// inclusion-exclusion over the underlying Collins-Gisin cells.
type ProbabilityTensor struct {
	cg               *CollinsGisin
	shape            Shape
	axisMeasurements [][]ptAxisMeasurement
	factory          symbolic.PolynomialFactory
	mode             StorageMode
	cells            []ptCell
	hasAllSymbols    atomic.Bool
}

// NewProbabilityTensor builds a ProbabilityTensor over cg's parties and
// measurements. Every measurement contributes OperatorCount explicit
// outcomes plus one implicit complement outcome.
func NewProbabilityTensor(cg *CollinsGisin, factory symbolic.PolynomialFactory, mode StorageMode) *ProbabilityTensor {
	axisMeasurements := make([][]ptAxisMeasurement, len(cg.measurements))
	dims := make([]int, len(cg.measurements))
	for d, mmts := range cg.measurements {
		cursor := 1 // slot 0 is the identity sentinel
		list := make([]ptAxisMeasurement, len(mmts))
		for m, mr := range mmts {
			outcomes := mr.OperatorCount + 1
			list[m] = ptAxisMeasurement{mr: mr, firstOutcomeSlot: cursor, outcomes: outcomes}
			cursor += outcomes
		}
		axisMeasurements[d] = list
		dims[d] = cursor
	}
	pt := &ProbabilityTensor{
		cg:               cg,
		shape:            NewShape(dims),
		axisMeasurements: axisMeasurements,
		factory:          factory,
		mode:             mode,
	}
	if mode == Explicit {
		pt.materialize()
	}
	return pt
}

// Dimensions returns the per-axis extents.
func (pt *ProbabilityTensor) Dimensions() []int { return pt.shape.Dims }

// HasAllSymbols reports whether every cell has a resolved symbol.
func (pt *ProbabilityTensor) HasAllSymbols() bool { return pt.hasAllSymbols.Load() }

// ValidateIndex reports BadTensorIndex if index is malformed for this
// tensor's shape.
func (pt *ProbabilityTensor) ValidateIndex(index []int) error { return pt.shape.ValidateIndex(index) }

type axisTerm struct {
	value int
	coeff complex128
}

// expandAxisValue rewrites one party's chosen probability-tensor slot as a
// linear combination of that party's Collins-Gisin axis slots: the
// identity slot for "marginalize", the operator itself for an explicit
// outcome, or identity-minus-every-explicit-outcome for the implicit
// complement.
func (pt *ProbabilityTensor) expandAxisValue(d, v int) []axisTerm {
	if v == 0 {
		return []axisTerm{{value: 0, coeff: 1}}
	}
	for _, m := range pt.axisMeasurements[d] {
		if v < m.firstOutcomeSlot || v >= m.firstOutcomeSlot+m.outcomes {
			continue
		}
		local := v - m.firstOutcomeSlot
		if local < m.outcomes-1 {
			return []axisTerm{{value: m.mr.FirstOperatorOffset + local + 1, coeff: 1}}
		}
		terms := make([]axisTerm, 0, m.outcomes)
		terms = append(terms, axisTerm{value: 0, coeff: 1})
		for j := 0; j < m.outcomes-1; j++ {
			terms = append(terms, axisTerm{value: m.mr.FirstOperatorOffset + j + 1, coeff: -1})
		}
		return terms
	}
	return nil
}

// cgExpansion rewrites a probability-tensor index as a CGPolynomial by
// taking the cartesian product of every axis's expandAxisValue terms and
// grouping by Collins-Gisin cell offset.
func (pt *ProbabilityTensor) cgExpansion(index []int) CGPolynomial {
	type partial struct {
		index []int
		coeff complex128
	}
	terms := []partial{{index: make([]int, pt.cg.shape.Rank()), coeff: 1}}
	for d, v := range index {
		axisTerms := pt.expandAxisValue(d, v)
		next := make([]partial, 0, len(terms)*len(axisTerms))
		for _, t := range terms {
			for _, at := range axisTerms {
				idx := append([]int(nil), t.index...)
				idx[d] = at.value
				next = append(next, partial{index: idx, coeff: t.coeff * at.coeff})
			}
		}
		terms = next
	}

	grouped := make(map[int]complex128, len(terms))
	order := make([]int, 0, len(terms))
	for _, t := range terms {
		offset, err := pt.cg.shape.IndexToOffset(t.index)
		if err != nil {
			continue
		}
		if _, seen := grouped[offset]; !seen {
			order = append(order, offset)
		}
		grouped[offset] += t.coeff
	}
	sort.Ints(order)

	poly := make(CGPolynomial, 0, len(order))
	for _, off := range order {
		poly = append(poly, CGTerm{CGOffset: off, Coefficient: grouped[off]})
	}
	return poly
}

func (pt *ProbabilityTensor) symbolPolyFromCG(cgPoly CGPolynomial) (symbolic.Polynomial, bool) {
	monomials := make([]symbolic.Monomial, 0, len(cgPoly))
	for _, term := range cgPoly {
		view, err := pt.cg.cellAtOffset(term.CGOffset)
		if err != nil || !view.Resolved {
			return nil, false
		}
		monomials = append(monomials, symbolic.Monomial{SymbolID: view.SymbolID, Coefficient: term.Coefficient})
	}
	return pt.factory.Build(monomials), true
}

func (pt *ProbabilityTensor) materialize() {
	pt.cells = make([]ptCell, pt.shape.Size())
	allResolved := true
	next := pt.shape.Iterate()
	offset := 0
	for {
		index, ok := next()
		if !ok {
			break
		}
		cgPoly := pt.cgExpansion(index)
		cell := ptCell{cgPoly: cgPoly}
		if sp, resolved := pt.symbolPolyFromCG(cgPoly); resolved {
			cell.symbolPoly = sp
			cell.resolved = true
		} else {
			allResolved = false
		}
		pt.cells[offset] = cell
		offset++
	}
	pt.hasAllSymbols.Store(allResolved)
}

func (pt *ProbabilityTensor) cellViewAt(index []int) (PTCellView, error) {
	if err := pt.shape.ValidateIndex(index); err != nil {
		return PTCellView{}, err
	}
	view := PTCellView{Index: append([]int(nil), index...)}
	if pt.mode == Explicit {
		offset, _ := pt.shape.IndexToOffset(index)
		cell := pt.cells[offset]
		view.CGPolynomial, view.SymbolPolynomial, view.Resolved = cell.cgPoly, cell.symbolPoly, cell.resolved
		return view, nil
	}
	cgPoly := pt.cgExpansion(index)
	view.CGPolynomial = cgPoly
	if sp, resolved := pt.symbolPolyFromCG(cgPoly); resolved {
		view.SymbolPolynomial, view.Resolved = sp, true
	}
	return view, nil
}

// OutcomeToElement returns the cell at a fully specified probability-tensor
// index, materializing it on demand in Virtual mode.
func (pt *ProbabilityTensor) OutcomeToElement(index []int) (PTCellView, error) {
	return pt.cellViewAt(index)
}

func (pt *ProbabilityTensor) axisMeasurementRange(idx PMIndex) (ptAxisMeasurement, error) {
	if idx.Party < 0 || idx.Party >= len(pt.axisMeasurements) {
		return ptAxisMeasurement{}, &BadPT{Detail: fmt.Sprintf("party %d out of range", idx.Party)}
	}
	party := pt.axisMeasurements[idx.Party]
	if idx.Mmt < 0 || idx.Mmt >= len(party) {
		return ptAxisMeasurement{}, &BadPT{Detail: fmt.Sprintf("measurement %d out of range for party %d", idx.Mmt, idx.Party)}
	}
	return party[idx.Mmt], nil
}

// MeasurementToRange splices every outcome combination of the free
// measurements (including each one's implicit complement) while holding
// each fixed outcome's axis at its chosen slot. Fails with BadPT if any
// index is out of bounds or a party appears in both lists.
func (pt *ProbabilityTensor) MeasurementToRange(free []PMIndex, fixed []PMOIndex) ([]PTCellView, error) {
	inFree := make(map[int]bool, len(free))
	for _, f := range free {
		inFree[f.Party] = true
	}
	for _, fx := range fixed {
		if inFree[fx.Party] {
			return nil, &BadPT{Detail: fmt.Sprintf("party %d present in both free and fixed measurements", fx.Party)}
		}
	}

	base := make([]int, pt.shape.Rank())
	for _, fx := range fixed {
		m, err := pt.axisMeasurementRange(fx.PMIndex)
		if err != nil {
			return nil, err
		}
		if fx.Outcome < 0 || fx.Outcome >= m.outcomes {
			return nil, &BadPT{Detail: fmt.Sprintf("outcome %d out of range for party %d mmt %d", fx.Outcome, fx.Party, fx.Mmt)}
		}
		base[fx.Party] = m.firstOutcomeSlot + fx.Outcome
	}

	freeDims := make([]int, len(free))
	freeMeasurements := make([]ptAxisMeasurement, len(free))
	freeParties := make([]int, len(free))
	for i, f := range free {
		m, err := pt.axisMeasurementRange(f)
		if err != nil {
			return nil, err
		}
		freeDims[i] = m.outcomes
		freeMeasurements[i] = m
		freeParties[i] = f.Party
	}

	freeShape := NewShape(freeDims)
	next := freeShape.Iterate()
	var out []PTCellView
	for {
		combo, ok := next()
		if !ok {
			break
		}
		index := append([]int(nil), base...)
		for i, c := range combo {
			index[freeParties[i]] = freeMeasurements[i].firstOutcomeSlot + c
		}
		view, err := pt.cellViewAt(index)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

// RefreshSymbols re-resolves every unresolved Explicit cell. A no-op in
// Virtual mode, where every OutcomeToElement call already resolves live.
func (pt *ProbabilityTensor) RefreshSymbols() {
	if pt.mode != Explicit {
		return
	}
	allResolved := true
	for i := range pt.cells {
		if pt.cells[i].resolved {
			continue
		}
		if sp, resolved := pt.symbolPolyFromCG(pt.cells[i].cgPoly); resolved {
			pt.cells[i].symbolPoly = sp
			pt.cells[i].resolved = true
		} else {
			allResolved = false
		}
	}
	pt.hasAllSymbols.Store(allResolved)
}

func (pt *ProbabilityTensor) identitySymbol() (int, bool) {
	idSeq := pt.cg.builder.Sequence(nil, dictionary.SignPositive)
	info, found := pt.cg.symbols.Where(idSeq)
	if !found {
		return 0, false
	}
	return info.ID, true
}

// ExplicitValueRules builds one "cell equals value" polynomial per
// (cell, value) pair, unconditionally: SymbolPolynomial(cell) - value*I.
// Requires every cell resolved and the identity sequence's symbol present
// in the table.
func (pt *ProbabilityTensor) ExplicitValueRules(cells []PTCellView, values []float64) ([]symbolic.Polynomial, error) {
	if len(cells) != len(values) {
		return nil, &BadPT{Detail: "cells and values length mismatch"}
	}
	idSymbol, ok := pt.identitySymbol()
	if !ok {
		return nil, &MissingComponent{Component: "identity symbol"}
	}
	rules := make([]symbolic.Polynomial, 0, len(cells))
	for i, cell := range cells {
		if !cell.Resolved {
			return nil, &BadPT{Detail: "cell has no resolved symbol"}
		}
		monomials := append(append([]symbolic.Monomial(nil), cell.SymbolPolynomial...),
			symbolic.Monomial{SymbolID: idSymbol, Coefficient: complex(-values[i], 0)})
		rules = append(rules, pt.factory.Build(monomials))
	}
	return rules, nil
}

// ExplicitValueRulesNormalized is ExplicitValueRules's division form: each
// equation is cross-multiplied by the normalization cell's polynomial
// instead of the bare identity, producing
// SymbolPolynomial(cell) - value*SymbolPolynomial(normalization).
func (pt *ProbabilityTensor) ExplicitValueRulesNormalized(cells []PTCellView, normalization PTCellView, values []float64) ([]symbolic.Polynomial, error) {
	if len(cells) != len(values) {
		return nil, &BadPT{Detail: "cells and values length mismatch"}
	}
	if !normalization.Resolved {
		return nil, &BadPT{Detail: "normalization cell has no resolved symbol"}
	}
	rules := make([]symbolic.Polynomial, 0, len(cells))
	for i, cell := range cells {
		if !cell.Resolved {
			return nil, &BadPT{Detail: "cell has no resolved symbol"}
		}
		monomials := append([]symbolic.Monomial(nil), cell.SymbolPolynomial...)
		for _, m := range normalization.SymbolPolynomial {
			monomials = append(monomials, symbolic.Monomial{
				SymbolID:    m.SymbolID,
				Coefficient: -complex(values[i], 0) * m.Coefficient,
				Conjugated:  m.Conjugated,
			})
		}
		rules = append(rules, pt.factory.Build(monomials))
	}
	return rules, nil
}

// ImplicitValueRule derives a measurement's complement-outcome rule by
// subtracting every explicit outcome's rule from the normalization rule,
// rather than evaluating the complement cell's own polynomial directly --
// matching the approach taken by
// original_source/cpp/lib_npatk/operators/locality/explicit_symbols.cpp,
// which the spec's distillation dropped (see SPEC_FULL.md's supplemented
// features).
func (pt *ProbabilityTensor) ImplicitValueRule(normalizationRule symbolic.Polynomial, explicitRules []symbolic.Polynomial) symbolic.Polynomial {
	monomials := append([]symbolic.Monomial(nil), normalizationRule...)
	for _, rule := range explicitRules {
		for _, m := range rule {
			monomials = append(monomials, symbolic.Monomial{
				SymbolID:    m.SymbolID,
				Coefficient: -m.Coefficient,
				Conjugated:  m.Conjugated,
			})
		}
	}
	return pt.factory.Build(monomials)
}
