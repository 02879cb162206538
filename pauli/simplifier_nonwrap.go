package pauli

import "github.com/ajpgarner/moment-sub006/dictionary"

// NonwrappingChainSimplifier moves the leftmost operator of a sequence to
// qubit 0 by constant subtraction; no search is needed because without
// wrapping, translation can only ever move the first operator leftward.
type NonwrappingChainSimplifier struct {
	ctx *PauliContext
}

func (s *NonwrappingChainSimplifier) chainMinimum(input []dictionary.Operator) int {
	if len(input) == 0 {
		return 0
	}
	return qubitOf(input[0])
}

// CanonicalSequence implements Simplifier.
func (s *NonwrappingChainSimplifier) CanonicalSequence(input []dictionary.Operator) []dictionary.Operator {
	offset := 3 * s.chainMinimum(input)
	if offset == 0 {
		return copyOperators(input)
	}
	out := make([]dictionary.Operator, len(input))
	for i, op := range input {
		out[i] = op - dictionary.Operator(offset)
	}
	return out
}

// IsCanonical implements Simplifier: canonical iff empty or the first
// operator is on qubit 0.
func (s *NonwrappingChainSimplifier) IsCanonical(input []dictionary.Operator) bool {
	if len(input) == 0 {
		return true
	}
	return input[0] <= 2
}

// ChainOffset implements Simplifier: a raw, non-wrapping qubit translation.
func (s *NonwrappingChainSimplifier) ChainOffset(input []dictionary.Operator, k int) []dictionary.Operator {
	out := make([]dictionary.Operator, len(input))
	for i, op := range input {
		out[i] = op + dictionary.Operator(3*k)
	}
	return out
}

// LatticeOffset implements Simplifier; a chain has no minor axis, so
// column offset is ignored and row offset behaves like ChainOffset.
func (s *NonwrappingChainSimplifier) LatticeOffset(input []dictionary.Operator, row, col int) []dictionary.Operator {
	return s.ChainOffset(input, row)
}

// ImplLabel implements Simplifier.
func (s *NonwrappingChainSimplifier) ImplLabel() int64 { return 0 }

// NonwrappingLatticeSimplifier moves a pattern into the lattice corner
// (column 0, with some operator on row 0) by constant subtraction.
type NonwrappingLatticeSimplifier struct {
	ctx            *PauliContext
	columnOpHeight int // 3 * column height, i.e. operator-id span of one column
}

// latticeMinimum returns (minRow, minCol): minCol is the column of the
// first operator (operators are sorted column-major), minRow is the
// minimum row over every operator in the sequence.
func (s *NonwrappingLatticeSimplifier) latticeMinimum(input []dictionary.Operator) (minRow, minCol int) {
	if len(input) == 0 {
		return 0, 0
	}
	minCol = int(input[0]) / s.columnOpHeight
	minRow = qubitOf(input[0]) % s.ctx.columnHeight
	for _, op := range input[1:] {
		row := qubitOf(op) % s.ctx.columnHeight
		if row < minRow {
			minRow = row
		}
	}
	return minRow, minCol
}

// CanonicalSequence implements Simplifier.
func (s *NonwrappingLatticeSimplifier) CanonicalSequence(input []dictionary.Operator) []dictionary.Operator {
	minRow, minCol := s.latticeMinimum(input)
	if minRow == 0 && minCol == 0 {
		return copyOperators(input)
	}
	offset := minCol*s.columnOpHeight + minRow*3
	out := make([]dictionary.Operator, len(input))
	for i, op := range input {
		out[i] = op - dictionary.Operator(offset)
	}
	return out
}

// IsCanonical implements Simplifier: canonical iff the first operator's
// column is 0 and at least one operator sits on row 0.
func (s *NonwrappingLatticeSimplifier) IsCanonical(input []dictionary.Operator) bool {
	if len(input) == 0 {
		return true
	}
	if int(input[0])/s.columnOpHeight > 0 {
		return false
	}
	for _, op := range input {
		if qubitOf(op)%s.ctx.columnHeight == 0 {
			return true
		}
	}
	return false
}

// ChainOffset implements Simplifier by treating k as a row translation.
func (s *NonwrappingLatticeSimplifier) ChainOffset(input []dictionary.Operator, k int) []dictionary.Operator {
	return s.LatticeOffset(input, k, 0)
}

// LatticeOffset implements Simplifier: a raw, non-wrapping lattice
// translation.
func (s *NonwrappingLatticeSimplifier) LatticeOffset(input []dictionary.Operator, row, col int) []dictionary.Operator {
	offset := col*s.columnOpHeight + row*3
	out := make([]dictionary.Operator, len(input))
	for i, op := range input {
		out[i] = op + dictionary.Operator(offset)
	}
	return out
}

// ImplLabel implements Simplifier.
func (s *NonwrappingLatticeSimplifier) ImplLabel() int64 { return -1 }
