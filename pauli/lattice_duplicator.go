package pauli

import "github.com/ajpgarner/moment-sub006/dictionary"

// LatticeDuplicator builds the basis of operator sequences that act
// non-trivially only on a fixed set of qubits ("sites"), and -- when the
// context has translational symmetry -- every translate of that basis
// under the orbit the symmetry admits. It accumulates into Output as it
// goes, mirroring the append-only build-up style of its source.
type LatticeDuplicator struct {
	ctx    *PauliContext
	output []dictionary.OperatorSequence
}

// NewLatticeDuplicator creates an empty duplicator over ctx.
func NewLatticeDuplicator(ctx *PauliContext) *LatticeDuplicator {
	return &LatticeDuplicator{ctx: ctx}
}

// Output returns every sequence appended so far. The caller must not
// mutate the returned slice.
func (d *LatticeDuplicator) Output() []dictionary.OperatorSequence { return d.output }

// OneQubitFill appends the three single-operator sequences X, Y, Z acting
// on qubitIndex.
func (d *LatticeDuplicator) OneQubitFill(qubitIndex int) {
	hasher := dictionary.ShortlexHasher{Alphabet: d.ctx.Alphabet()}
	for _, axis := range [3]Axis{AxisX, AxisY, AxisZ} {
		op := makeOperator(qubitIndex, axis)
		ops := []dictionary.Operator{op}
		d.output = append(d.output, dictionary.NewOperatorSequence(
			dictionary.ConstructRaw, ops, dictionary.SignPositive, d.ctx, hasher.Hash(ops)))
	}
}

// TwoQubitFill appends all nine sequences pairing an operator on qubitA
// with one on qubitB, in qubit order.
func (d *LatticeDuplicator) TwoQubitFill(qubitA, qubitB int) {
	lo, hi := qubitA, qubitB
	if lo > hi {
		lo, hi = hi, lo
	}
	for axisLo := 0; axisLo < 3; axisLo++ {
		for axisHi := 0; axisHi < 3; axisHi++ {
			ops := []dictionary.Operator{makeOperator(lo, Axis(axisLo)), makeOperator(hi, Axis(axisHi))}
			d.output = append(d.output, dictionary.NewOperatorSequence(
				dictionary.ConstructPresorted, ops, dictionary.SignPositive, d.ctx, 0))
		}
	}
}

// PermutationFill appends one sequence for every assignment of X/Y/Z to
// each of sites (in the order given), i.e. 3^len(sites) sequences for
// three or more sites; it special-cases 0, 1 and 2 sites against the
// dedicated fills above. It returns the half-open range of indices added
// to Output.
func (d *LatticeDuplicator) PermutationFill(sites []int) (start, end int) {
	start = len(d.output)
	d.appendPermutations(sites)
	return start, len(d.output)
}

func (d *LatticeDuplicator) appendPermutations(sites []int) {
	switch len(sites) {
	case 0:
		d.output = append(d.output, dictionary.Identity(d.ctx.Alphabet()))
	case 1:
		d.OneQubitFill(sites[0])
	case 2:
		d.TwoQubitFill(sites[0], sites[1])
	default:
		digits := make([]int, len(sites))
		for {
			ops := make([]dictionary.Operator, len(sites))
			for i, site := range sites {
				ops[i] = makeOperator(site, Axis(digits[i]))
			}
			d.output = append(d.output, d.ctx.Sequence(ops, dictionary.SignPositive))

			pos := len(digits) - 1
			for pos >= 0 {
				digits[pos]++
				if digits[pos] < 3 {
					break
				}
				digits[pos] = 0
				pos--
			}
			if pos < 0 {
				break
			}
		}
	}
}

// SymmetricalFill builds the permutation basis over sites, then every
// distinct translate of that basis admitted by the context's symmetry. In
// a non-wrapping context this delegates to WraplessSymmetricalFill; in a
// wrapping context it sweeps the SiteHasher's cyclic shifts. It returns
// the half-open range of indices added to Output, including the base
// permutation fill.
func (d *LatticeDuplicator) SymmetricalFill(sites []int) (start, end int) {
	if len(sites) == 0 {
		n := len(d.output)
		return n, n
	}
	if d.ctx.WrapMode() == WrapNone {
		return d.WraplessSymmetricalFill(sites)
	}

	hasher := d.ctx.hasherImpl
	start, baseEnd := d.PermutationFill(sites)

	baseHashes := make([]Datum, 0, baseEnd-start)
	for _, seq := range d.output[start:baseEnd] {
		baseHashes = append(baseHashes, hasher.Hash(seq.Operators()))
	}

	if d.ctx.IsLattice() {
		d.latticeSymmetricFill(hasher, baseHashes)
	} else {
		d.chainSymmetricFill(hasher, baseHashes)
	}
	return start, len(d.output)
}

func (d *LatticeDuplicator) chainSymmetricFill(hasher *SiteHasher, baseHashes []Datum) {
	for qubit := 1; qubit < hasher.qubits; qubit++ {
		for _, base := range baseHashes {
			ops := hasher.Unhash(hasher.CyclicShift(base, qubit))
			d.output = append(d.output, dictionary.NewOperatorSequence(
				dictionary.ConstructPresorted, ops, dictionary.SignPositive, d.ctx, 0))
		}
	}
}

// latticeSymmetricFill sweeps every (row, col) translate but the
// identity one: col over the row width, row over the column height.
func (d *LatticeDuplicator) latticeSymmetricFill(hasher *SiteHasher, baseHashes []Datum) {
	for col := 0; col < hasher.rowWidth; col++ {
		startRow := 0
		if col == 0 {
			startRow = 1
		}
		for row := startRow; row < hasher.columnHeight; row++ {
			for _, base := range baseHashes {
				ops := hasher.Unhash(hasher.LatticeShift(base, row, col))
				d.output = append(d.output, dictionary.NewOperatorSequence(
					dictionary.ConstructPresorted, ops, dictionary.SignPositive, d.ctx, 0))
			}
		}
	}
}

// WraplessSymmetricalFill is the non-wrapping counterpart to
// SymmetricalFill: sites are free to slide anywhere their bounding span
// still fits within the chain or lattice, with no cyclic identification
// at the edges. The source this is ported from left this case
// unimplemented; the sweep below follows the same base-then-translate
// structure as the wrapping path; it returns the half-open range of
// indices added to Output, including the base permutation fill.
func (d *LatticeDuplicator) WraplessSymmetricalFill(sites []int) (start, end int) {
	start = len(d.output)
	if len(sites) == 0 {
		return start, start
	}
	d.appendPermutations(sites)
	if d.ctx.IsLattice() {
		d.wraplessLatticeFill(sites)
	} else {
		d.wraplessChainFill(sites)
	}
	return start, len(d.output)
}

func minMax(values []int) (lo, hi int) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func (d *LatticeDuplicator) wraplessChainFill(sites []int) {
	minSite, maxSite := minMax(sites)
	span := maxSite - minSite
	lowDelta := -minSite
	highDelta := d.ctx.QubitCount() - 1 - maxSite
	for delta := lowDelta; delta <= highDelta; delta++ {
		if delta == 0 {
			continue
		}
		translated := make([]int, len(sites))
		for i, s := range sites {
			translated[i] = s + delta
		}
		d.appendPermutations(translated)
	}
	_ = span
}

func (d *LatticeDuplicator) wraplessLatticeFill(sites []int) {
	height := d.ctx.ColumnHeight()
	rows := make([]int, len(sites))
	cols := make([]int, len(sites))
	for i, s := range sites {
		rows[i] = s % height
		cols[i] = s / height
	}
	minRow, maxRow := minMax(rows)
	minCol, maxCol := minMax(cols)

	rowLow, rowHigh := -minRow, height-1-maxRow
	colLow, colHigh := -minCol, d.ctx.RowWidth()-1-maxCol

	for dc := colLow; dc <= colHigh; dc++ {
		for dr := rowLow; dr <= rowHigh; dr++ {
			if dr == 0 && dc == 0 {
				continue
			}
			translated := make([]int, len(sites))
			for i := range sites {
				translated[i] = (cols[i]+dc)*height + (rows[i] + dr)
			}
			d.appendPermutations(translated)
		}
	}
}
