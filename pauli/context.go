package pauli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ajpgarner/moment-sub006/dictionary"
)

// ErrBadPauliContext is raised when a PauliContext cannot be constructed
// for the requested geometry (wrapping requested for more qubits than the
// site hasher can address).
var ErrBadPauliContext = errors.New("pauli: bad context")

// WrapMode selects whether qubits at the edge of a chain/lattice are
// treated as adjacent to the opposite edge.
type WrapMode int

const (
	// WrapNone disables wrapping; translational symmetry is not modeled.
	WrapNone WrapMode = iota
	// Wrap enables cyclic/toroidal translational symmetry.
	Wrap
)

// SymmetryMode records whether translational symmetry is in effect. It is
// derived from WrapMode but kept distinct per the spec's data model so a
// future symmetry beyond translation has somewhere to live.
type SymmetryMode int

const (
	// SymmetryNone applies no equivalence beyond literal equality.
	SymmetryNone SymmetryMode = iota
	// SymmetryTranslational treats cyclic translates as equivalent.
	SymmetryTranslational
)

const maxSlides = 8
const qubitsPerSlide = 32
const maxWrappedQubits = maxSlides * qubitsPerSlide // 256

// PauliContext describes a 1D chain or 2D lattice of qubits under an
// optional translational symmetry, and owns the one concrete Simplifier
// selected for it at construction time.
type PauliContext struct {
	qubitCount   int
	columnHeight int // rows; for a chain this equals qubitCount
	rowWidth     int // columns; for a chain this is 1
	wrap         WrapMode
	symmetry     SymmetryMode
	simplifier   Simplifier
	hasherImpl   *SiteHasher // non-nil only when wrap == Wrap; backs LatticeDuplicator's symmetric fill
}

// PauliOption configures a PauliContext before construction.
type PauliOption func(*PauliContext)

// WithWrap enables cyclic/toroidal translational symmetry.
func WithWrap() PauliOption {
	return func(c *PauliContext) {
		c.wrap = Wrap
		c.symmetry = SymmetryTranslational
	}
}

// NewChainContext builds a PauliContext for a 1D chain of qubitCount
// qubits. WithWrap enables cyclic translation; qubitCount > 256 under
// WithWrap fails with ErrBadPauliContext.
func NewChainContext(qubitCount int, opts ...PauliOption) (*PauliContext, error) {
	return newContext(qubitCount, qubitCount, 1, opts...)
}

// NewLatticeContext builds a PauliContext for a 2D lattice of the given
// row count (column height) and column count (row width).
func NewLatticeContext(rows, cols int, opts ...PauliOption) (*PauliContext, error) {
	return newContext(rows*cols, rows, cols, opts...)
}

func newContext(qubitCount, columnHeight, rowWidth int, opts ...PauliOption) (*PauliContext, error) {
	c := &PauliContext{
		qubitCount:   qubitCount,
		columnHeight: columnHeight,
		rowWidth:     rowWidth,
		wrap:         WrapNone,
		symmetry:     SymmetryNone,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.wrap == WrapNone {
		c.simplifier = newNonwrappingSimplifier(c)
		return c, nil
	}

	if qubitCount > maxWrappedQubits {
		return nil, fmt.Errorf("%w: %d qubits exceeds %d-qubit wrapping limit", ErrBadPauliContext, qubitCount, maxWrappedQubits)
	}
	slides := (qubitCount + qubitsPerSlide - 1) / qubitsPerSlide
	if slides == 0 {
		slides = 1
	}
	hasher, err := newSiteHasher(c, slides)
	if err != nil {
		return nil, err
	}
	c.hasherImpl = hasher
	c.simplifier = newWrappingSimplifier(c, hasher)
	return c, nil
}

// Alphabet implements dictionary.Reducer: 3 operators per qubit (X, Y, Z).
func (c *PauliContext) Alphabet() int { return 3 * c.qubitCount }

// QubitCount returns the number of qubits in the scenario.
func (c *PauliContext) QubitCount() int { return c.qubitCount }

// ColumnHeight returns the lattice column height (== QubitCount for a chain).
func (c *PauliContext) ColumnHeight() int { return c.columnHeight }

// RowWidth returns the lattice row width (== 1 for a chain).
func (c *PauliContext) RowWidth() int { return c.rowWidth }

// IsLattice reports whether this context has more than one column.
func (c *PauliContext) IsLattice() bool { return c.rowWidth > 1 }

// WrapMode returns the configured wrap mode.
func (c *PauliContext) WrapMode() WrapMode { return c.wrap }

// SymmetryMode returns the configured symmetry mode.
func (c *PauliContext) SymmetryMode() SymmetryMode { return c.symmetry }

// SiteHasher returns the concrete Simplifier chosen at construction.
func (c *PauliContext) SiteHasher() Simplifier { return c.simplifier }

// SigmaX returns the canonical one-operator sequence for X on qubit q.
func (c *PauliContext) SigmaX(q int) dictionary.OperatorSequence { return c.sigma(q, AxisX) }

// SigmaY returns the canonical one-operator sequence for Y on qubit q.
func (c *PauliContext) SigmaY(q int) dictionary.OperatorSequence { return c.sigma(q, AxisY) }

// SigmaZ returns the canonical one-operator sequence for Z on qubit q.
func (c *PauliContext) SigmaZ(q int) dictionary.OperatorSequence { return c.sigma(q, AxisZ) }

func (c *PauliContext) sigma(q int, axis Axis) dictionary.OperatorSequence {
	op := makeOperator(q, axis)
	return dictionary.NewOperatorSequence(dictionary.ConstructDefault,
		[]dictionary.Operator{op}, dictionary.SignPositive, c, 0)
}

// Sequence builds the default-normalized operator sequence for a raw,
// possibly non-canonical, tuple of operators.
func (c *PauliContext) Sequence(ops []dictionary.Operator, sign dictionary.Sign) dictionary.OperatorSequence {
	return dictionary.NewOperatorSequence(dictionary.ConstructDefault, ops, sign, c, 0)
}

// ReduceDefault implements dictionary.Reducer: operators on distinct
// qubits commute freely, so we stable-sort by qubit (preserving relative
// order within a qubit) and then fold each qubit's run via the Pauli
// multiplication table.
func (c *PauliContext) ReduceDefault(ops []dictionary.Operator) ([]dictionary.Operator, dictionary.Sign) {
	if len(ops) == 0 {
		return nil, dictionary.SignPositive
	}
	order := make([]int, len(ops))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return qubitOf(ops[order[i]]) < qubitOf(ops[order[j]])
	})
	sorted := make([]dictionary.Operator, len(ops))
	for i, idx := range order {
		sorted[i] = ops[idx]
	}
	return foldRuns(sorted)
}

// ReducePresorted implements dictionary.Reducer for callers who assert
// that ops is already grouped into ascending-qubit runs.
func (c *PauliContext) ReducePresorted(ops []dictionary.Operator) ([]dictionary.Operator, dictionary.Sign) {
	return foldRuns(ops)
}

// foldRuns groups consecutive same-qubit operators and folds each run,
// assuming ops is already qubit-grouped (ascending or not -- grouping by
// consecutive equality is all that is required).
func foldRuns(ops []dictionary.Operator) ([]dictionary.Operator, dictionary.Sign) {
	result := make([]dictionary.Operator, 0, len(ops))
	overall := dictionary.SignPositive

	i := 0
	for i < len(ops) {
		j := i + 1
		qubit := qubitOf(ops[i])
		for j < len(ops) && qubitOf(ops[j]) == qubit {
			j++
		}
		axes := make([]Axis, j-i)
		for k := i; k < j; k++ {
			axes[k-i] = axisOf(ops[k])
		}
		axis, present, phase := foldQubitRun(axes)
		overall = overall.Combine(phase)
		if present {
			result = append(result, makeOperator(qubit, axis))
		}
		i = j
	}
	return result, overall
}
