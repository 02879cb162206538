package pauli

import (
	"fmt"
	"math/bits"

	"github.com/ajpgarner/moment-sub006/dictionary"
)

// Datum is a bit-packed Pauli hash: up to 8 64-bit slides, reverse
// lexicographic ordering (most significant slide last in index, i.e.
// Datum[K-1] is the most significant word). Only slides [0, K) are
// meaningful for a hasher built with K slides; the rest are always zero.
//
// Each qubit occupies 2 bits: I=00 (absent), X=01, Y=10, Z=11. I never
// appears in a Datum produced by Hash -- it is a placeholder meaning "no
// operator on this qubit", used implicitly by Unhash to skip qubits.
type Datum [maxSlides]uint64

// SiteHasher packs Pauli operator sequences into Datum values and rotates
// them under chain or lattice translation, for use by WrappingSimplifier.
// One instance is built per wrapping PauliContext and reused for the
// lifetime of that context.
type SiteHasher struct {
	qubits             int
	columnHeight       int
	rowWidth           int
	slides             int
	qubitsOnFinalSlide int
	finalSlideMask     uint64
	columnMask         uint64
}

func calcMaskFromBits(numBits int) uint64 {
	if numBits <= 0 || numBits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(numBits)) - 1
}

func calcMaskFromQubits(numQubits int) uint64 {
	return calcMaskFromBits(numQubits * 2)
}

func newSiteHasher(c *PauliContext, slides int) (*SiteHasher, error) {
	if slides < 1 || slides > maxSlides {
		return nil, fmt.Errorf("%w: slide count %d out of range [1,%d]", ErrBadPauliContext, slides, maxSlides)
	}
	qubitsOnFinal := ((c.qubitCount - 1) % qubitsPerSlide) + 1
	return &SiteHasher{
		qubits:             c.qubitCount,
		columnHeight:       c.columnHeight,
		rowWidth:           c.rowWidth,
		slides:             slides,
		qubitsOnFinalSlide: qubitsOnFinal,
		finalSlideMask:     calcMaskFromQubits(qubitsOnFinal),
		columnMask:         calcMaskFromQubits(c.columnHeight),
	}, nil
}

// Slides returns the number of meaningful 64-bit words in a Datum from
// this hasher.
func (h *SiteHasher) Slides() int { return h.slides }

// EmptyHash returns the hash of the empty operator sequence (all zero).
func (h *SiteHasher) EmptyHash() Datum { return Datum{} }

// Hash packs an operator sequence into its bit-field representation.
func (h *SiteHasher) Hash(ops []dictionary.Operator) Datum {
	var out Datum
	for _, op := range ops {
		qubit := qubitOf(op)
		axis := axisOf(op)
		slide := qubit / qubitsPerSlide
		offset := qubit % qubitsPerSlide
		out[slide] += (uint64(axis) + 1) << uint(offset*2)
	}
	return out
}

// Unhash reconstructs the operator tuple (in qubit order) from a Datum.
func (h *SiteHasher) Unhash(input Datum) []dictionary.Operator {
	var output []dictionary.Operator
	for slide := 0; slide < h.slides; slide++ {
		qubitNumber := slide * qubitsPerSlide
		cursor := input[slide]
		for cursor != 0 {
			qubitOffset := bits.TrailingZeros64(cursor) / 2
			cursor >>= uint(qubitOffset * 2)
			axis := Axis((cursor & 0x3) - 1)
			qubitNumber += qubitOffset
			output = append(output, makeOperator(qubitNumber, axis))
			cursor >>= 2
			qubitNumber++
		}
	}
	return output
}

// CyclicShift rotates a Datum by offset qubits along the chain (major)
// axis, treating the active 2*qubits-bit region as a ring.
func (h *SiteHasher) CyclicShift(input Datum, offset int) Datum {
	offset = offset % h.qubits
	if offset == 0 {
		return input
	}
	k := h.slides

	frontSlideOffset := offset / qubitsPerSlide
	frontBitOffset := uint(offset%qubitsPerSlide) * 2
	backOffsetQ := h.qubits - offset
	backSlideOffset := backOffsetQ / qubitsPerSlide
	backBitOffset := uint(backOffsetQ%qubitsPerSlide) * 2

	var output Datum

	if frontBitOffset == 0 {
		for idx := frontSlideOffset; idx < k; idx++ {
			output[idx] = input[idx-frontSlideOffset]
		}
	} else {
		frontBitAnti := 64 - frontBitOffset
		output[frontSlideOffset] = input[0] << frontBitOffset
		for idx := frontSlideOffset + 1; idx < k; idx++ {
			output[idx] = (input[idx-frontSlideOffset] << frontBitOffset) | (input[idx-frontSlideOffset-1] >> frontBitAnti)
		}
	}

	if backBitOffset == 0 {
		for idx := 0; idx < k-backSlideOffset; idx++ {
			output[idx] |= input[idx+backSlideOffset]
		}
	} else {
		backBitAnti := 64 - backBitOffset
		for idx := 0; idx < k-backSlideOffset-1; idx++ {
			output[idx] |= (input[idx+backSlideOffset] >> backBitOffset) | (input[idx+backSlideOffset+1] << backBitAnti)
		}
		output[k-backSlideOffset-1] |= input[k-1] >> backBitOffset
	}

	output[k-1] &= h.finalSlideMask
	return output
}

// colShift rotates by whole columns along the major axis.
func (h *SiteHasher) colShift(input Datum, offset int) Datum {
	return h.CyclicShift(input, (offset%h.rowWidth)*h.columnHeight)
}

// RowCyclicShift rotates every column independently by offset rows along
// the lattice minor axis.
func (h *SiteHasher) RowCyclicShift(input Datum, offset int) Datum {
	if h.rowWidth <= 1 || h.columnHeight == 0 {
		return input
	}
	offset = offset % h.columnHeight
	if offset == 0 {
		return input
	}
	bitOffset := uint(2 * offset)
	bitAnti := uint(2*h.columnHeight) - bitOffset

	var output Datum
	for column := 0; column < h.rowWidth; column++ {
		firstSlide := (column * h.columnHeight) / qubitsPerSlide
		offsetSlideOne := 2 * ((column * h.columnHeight) % qubitsPerSlide)
		offsetSlideTwo := 2 * (((column + 1) * h.columnHeight) % qubitsPerSlide)

		if offsetSlideTwo <= offsetSlideOne && offsetSlideTwo != 0 {
			remainder := h.columnHeight - offsetSlideTwo/2
			remainderMask := calcMaskFromBits(offsetSlideTwo)
			word := ((input[firstSlide] >> uint(offsetSlideOne)) & h.columnMask) |
				((input[firstSlide+1] & remainderMask) << uint(remainder*2))
			word = ((word << bitOffset) | (word >> bitAnti)) & h.columnMask
			output[firstSlide] |= word << uint(offsetSlideOne)
			output[firstSlide+1] = word >> uint(remainder*2)
		} else {
			word := (input[firstSlide] >> uint(offsetSlideOne)) & h.columnMask
			word = ((word << bitOffset) | (word >> bitAnti)) & h.columnMask
			output[firstSlide] |= word << uint(offsetSlideOne)
		}
	}
	return output
}

// LatticeShift composes a major-axis (column) shift with a minor-axis
// (row) shift.
func (h *SiteHasher) LatticeShift(input Datum, rowOffset, colOffset int) Datum {
	return h.RowCyclicShift(h.colShift(input, colOffset), rowOffset)
}

// ExtractColumn slices out the bits belonging to column c, handling
// columns that straddle a slide boundary.
func (h *SiteHasher) ExtractColumn(input Datum, column int) uint64 {
	firstSlide := (column * h.columnHeight) / qubitsPerSlide
	offsetSlideOne := 2 * ((column * h.columnHeight) % qubitsPerSlide)
	offsetSlideTwo := 2 * (((column + 1) * h.columnHeight) % qubitsPerSlide)

	output := (input[firstSlide] >> uint(offsetSlideOne)) & h.columnMask
	if offsetSlideTwo <= offsetSlideOne && offsetSlideTwo != 0 {
		remainder := h.columnHeight - offsetSlideTwo/2
		remainderMask := calcMaskFromBits(offsetSlideTwo)
		output |= (input[firstSlide+1] & remainderMask) << uint(remainder*2)
	}
	return output
}

// Less orders Datum values from most significant slide to least.
func (h *SiteHasher) Less(lhs, rhs Datum) bool {
	for idx := h.slides - 1; idx >= 0; idx-- {
		if lhs[idx] < rhs[idx] {
			return true
		}
		if lhs[idx] > rhs[idx] {
			return false
		}
	}
	return false
}

// CanonicalHash returns the minimum-orbit representative (restricted to
// translations that place some operator at the origin) and the hash of
// the input as supplied, per the §4.D search strategy.
func (h *SiteHasher) CanonicalHash(ops []dictionary.Operator) (minHash, actualHash Datum) {
	if len(ops) == 0 {
		return h.EmptyHash(), h.EmptyHash()
	}
	actualHash = h.Hash(ops)

	doneOnce := false
	for _, op := range ops {
		qubit := qubitOf(op)
		var candidate Datum
		if h.rowWidth > 1 {
			col := qubit / h.columnHeight
			row := qubit % h.columnHeight
			colShiftAmt := h.rowWidth - col
			rowShiftAmt := h.columnHeight - row
			candidate = h.LatticeShift(actualHash, rowShiftAmt, colShiftAmt)
		} else {
			shift := h.qubits - qubit
			candidate = h.CyclicShift(actualHash, shift)
		}
		if !doneOnce || h.Less(candidate, minHash) {
			minHash = candidate
			doneOnce = true
		}
	}
	return minHash, actualHash
}
