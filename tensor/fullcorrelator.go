package tensor

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/ajpgarner/moment-sub006/symbolic"
)

type fcCell struct {
	cgPoly     CGPolynomial
	symbolPoly symbolic.Polynomial
	resolved   bool
}

// FCCellView is a read-only snapshot of one full-correlator cell.
type FCCellView struct {
	Index            []int
	CGPolynomial     CGPolynomial
	SymbolPolynomial symbolic.Polynomial
	Resolved         bool
}

// FullCorrelator is the joint ±1-correlator tensor over parties whose
// measurements are all binary: axis d has one identity slot plus one slot
// per party-d measurement. A single correlator <A_m> is 2*P(A_m=0)-1; a
// joint correlator over several parties is the product of their individual
// factors, expanded over Collins-Gisin cells.
type FullCorrelator struct {
	cg            *CollinsGisin
	shape         Shape
	factory       symbolic.PolynomialFactory
	mode          StorageMode
	cells         []fcCell
	hasAllSymbols atomic.Bool
}

// NewFullCorrelator builds a FullCorrelator over cg's parties. Fails with
// BadFC if any measurement does not have exactly one operator (is not
// binary).
func NewFullCorrelator(cg *CollinsGisin, factory symbolic.PolynomialFactory, mode StorageMode) (*FullCorrelator, error) {
	dims := make([]int, len(cg.measurements))
	for d, mmts := range cg.measurements {
		for m, mr := range mmts {
			if mr.OperatorCount != 1 {
				return nil, &BadFC{Detail: fmt.Sprintf("party %d measurement %d is not binary (%d operators)", d, m, mr.OperatorCount)}
			}
		}
		dims[d] = len(mmts) + 1
	}
	fc := &FullCorrelator{cg: cg, shape: NewShape(dims), factory: factory, mode: mode}
	if mode == Explicit {
		fc.materialize()
	}
	return fc, nil
}

// Dimensions returns the per-axis extents.
func (fc *FullCorrelator) Dimensions() []int { return fc.shape.Dims }

// HasAllSymbols reports whether every cell has a resolved symbol.
func (fc *FullCorrelator) HasAllSymbols() bool { return fc.hasAllSymbols.Load() }

func (fc *FullCorrelator) expandAxisValue(d, v int) []axisTerm {
	if v == 0 {
		return []axisTerm{{value: 0, coeff: 1}}
	}
	mr := fc.cg.measurements[d][v-1]
	opSlot := mr.FirstOperatorOffset + 1
	return []axisTerm{
		{value: opSlot, coeff: 2},
		{value: 0, coeff: -1},
	}
}

func (fc *FullCorrelator) cgExpansion(index []int) CGPolynomial {
	type partial struct {
		index []int
		coeff complex128
	}
	terms := []partial{{index: make([]int, fc.cg.shape.Rank()), coeff: 1}}
	for d, v := range index {
		axisTerms := fc.expandAxisValue(d, v)
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
		offset, err := fc.cg.shape.IndexToOffset(t.index)
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

func (fc *FullCorrelator) symbolPolyFromCG(cgPoly CGPolynomial) (symbolic.Polynomial, bool) {
	monomials := make([]symbolic.Monomial, 0, len(cgPoly))
	for _, term := range cgPoly {
		view, err := fc.cg.cellAtOffset(term.CGOffset)
		if err != nil || !view.Resolved {
			return nil, false
		}
		monomials = append(monomials, symbolic.Monomial{SymbolID: view.SymbolID, Coefficient: term.Coefficient})
	}
	return fc.factory.Build(monomials), true
}

func (fc *FullCorrelator) materialize() {
	fc.cells = make([]fcCell, fc.shape.Size())
	allResolved := true
	next := fc.shape.Iterate()
	offset := 0
	for {
		index, ok := next()
		if !ok {
			break
		}
		cgPoly := fc.cgExpansion(index)
		cell := fcCell{cgPoly: cgPoly}
		if sp, resolved := fc.symbolPolyFromCG(cgPoly); resolved {
			cell.symbolPoly = sp
			cell.resolved = true
		} else {
			allResolved = false
		}
		fc.cells[offset] = cell
		offset++
	}
	fc.hasAllSymbols.Store(allResolved)
}

func (fc *FullCorrelator) cellViewAt(index []int) (FCCellView, error) {
	if err := fc.shape.ValidateIndex(index); err != nil {
		return FCCellView{}, err
	}
	view := FCCellView{Index: append([]int(nil), index...)}
	if fc.mode == Explicit {
		offset, _ := fc.shape.IndexToOffset(index)
		cell := fc.cells[offset]
		view.CGPolynomial, view.SymbolPolynomial, view.Resolved = cell.cgPoly, cell.symbolPoly, cell.resolved
		return view, nil
	}
	cgPoly := fc.cgExpansion(index)
	view.CGPolynomial = cgPoly
	if sp, resolved := fc.symbolPolyFromCG(cgPoly); resolved {
		view.SymbolPolynomial, view.Resolved = sp, true
	}
	return view, nil
}

// MmtToElement packs a sparse list of (party, measurement) selections into
// a full axis index (unselected parties default to the identity slot) and
// returns that cell. Fails with BadFC if a party is named twice or a
// party/measurement index is out of range.
func (fc *FullCorrelator) MmtToElement(selections []PMIndex) (FCCellView, error) {
	index := make([]int, fc.shape.Rank())
	seen := make(map[int]bool, len(selections))
	for _, sel := range selections {
		if sel.Party < 0 || sel.Party >= fc.shape.Rank() {
			return FCCellView{}, &BadFC{Detail: fmt.Sprintf("party %d out of range", sel.Party)}
		}
		if seen[sel.Party] {
			return FCCellView{}, &BadFC{Detail: fmt.Sprintf("party %d named twice", sel.Party)}
		}
		seen[sel.Party] = true
		if sel.Mmt < 0 || sel.Mmt >= fc.shape.Dims[sel.Party]-1 {
			return FCCellView{}, &BadFC{Detail: fmt.Sprintf("measurement %d out of range for party %d", sel.Mmt, sel.Party)}
		}
		index[sel.Party] = sel.Mmt + 1
	}
	return fc.cellViewAt(index)
}

// RefreshSymbols re-resolves every unresolved Explicit cell. A no-op in
// Virtual mode.
func (fc *FullCorrelator) RefreshSymbols() {
	if fc.mode != Explicit {
		return
	}
	allResolved := true
	for i := range fc.cells {
		if fc.cells[i].resolved {
			continue
		}
		if sp, resolved := fc.symbolPolyFromCG(fc.cells[i].cgPoly); resolved {
			fc.cells[i].symbolPoly = sp
			fc.cells[i].resolved = true
		} else {
			allResolved = false
		}
	}
	fc.hasAllSymbols.Store(allResolved)
}
