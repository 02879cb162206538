package pauli

import "github.com/ajpgarner/moment-sub006/dictionary"

// WrappingSimplifier selects the canonical representative of a translation
// orbit by bit-packing a sequence into a SiteHasher Datum, searching the
// restricted orbit (translations placing some operator at the origin), and
// unpacking the winner.
type WrappingSimplifier struct {
	ctx    *PauliContext
	hasher *SiteHasher
}

// CanonicalSequence implements Simplifier.
func (s *WrappingSimplifier) CanonicalSequence(input []dictionary.Operator) []dictionary.Operator {
	minHash, actualHash := s.hasher.CanonicalHash(input)
	if minHash == actualHash {
		return copyOperators(input)
	}
	return s.hasher.Unhash(minHash)
}

// IsCanonical implements Simplifier. The original C++ implementation
// compares with != here, which inverts the test; canonical means the
// orbit minimum already equals the input's own hash, so the correct
// comparison is ==.
func (s *WrappingSimplifier) IsCanonical(input []dictionary.Operator) bool {
	minHash, actualHash := s.hasher.CanonicalHash(input)
	return minHash == actualHash
}

// ChainOffset implements Simplifier via a hash/shift/unhash round trip.
func (s *WrappingSimplifier) ChainOffset(input []dictionary.Operator, k int) []dictionary.Operator {
	shifted := s.hasher.CyclicShift(s.hasher.Hash(input), k)
	return s.hasher.Unhash(shifted)
}

// LatticeOffset implements Simplifier via a hash/shift/unhash round trip.
func (s *WrappingSimplifier) LatticeOffset(input []dictionary.Operator, row, col int) []dictionary.Operator {
	shifted := s.hasher.LatticeShift(s.hasher.Hash(input), row, col)
	return s.hasher.Unhash(shifted)
}

// ImplLabel implements Simplifier, tagging the slide count in use.
func (s *WrappingSimplifier) ImplLabel() int64 { return int64(s.hasher.slides) }
