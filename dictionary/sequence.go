package dictionary

import (
	"errors"
)

// ErrAlphabetMismatch indicates an Operator value outside the Reducer's
// declared alphabet was supplied to a constructor.
var ErrAlphabetMismatch = errors.New("dictionary: operator outside alphabet")

// Reducer supplies the scenario-specific normalization rules that
// ConstructSequenceDefault and ConstructSequencePresorted call into.
// Implementations live alongside their scenario (see pauli.PauliContext).
type Reducer interface {
	// Alphabet returns the number of distinct operators in the scenario.
	Alphabet() int

	// ReduceDefault applies full normalization: commutation reordering,
	// idempotence, and multiplication-table folding. It returns the
	// canonical raw tuple and the phase accumulated while folding.
	ReduceDefault(ops []Operator) ([]Operator, Sign)

	// ReducePresorted assumes ops is already arranged so that commuting
	// operators are in their canonical relative order, and applies only
	// idempotence/multiplication folding.
	ReducePresorted(ops []Operator) ([]Operator, Sign)
}

// ConstructMode selects how much normalization OperatorSequence
// construction performs.
type ConstructMode int

const (
	// ConstructDefault runs full normalization (commutation, idempotence,
	// multiplication rules).
	ConstructDefault ConstructMode = iota
	// ConstructPresorted assumes commuting operators are already ordered;
	// only per-site reduction runs.
	ConstructPresorted
	// ConstructRaw performs no normalization; the caller asserts the
	// supplied hash is already correct for the supplied tuple.
	ConstructRaw
)

// OperatorSequence is a finite ordered tuple of operators plus a sign,
// hashed by the shortlex hasher of its alphabet. Values are immutable once
// constructed; two sequences are equal iff their canonical raw tuples and
// signs are equal.
type OperatorSequence struct {
	operators []Operator
	sign      Sign
	hash      uint64
	alphabet  int
}

// NewOperatorSequence constructs a sequence under the given mode. For
// ConstructRaw, suppliedHash is trusted verbatim; for the other two modes
// it is ignored and recomputed from the reduced tuple.
func NewOperatorSequence(mode ConstructMode, ops []Operator, sign Sign, reducer Reducer, suppliedHash uint64) OperatorSequence {
	switch mode {
	case ConstructRaw:
		return newRawSequence(ops, sign, reducer.Alphabet(), suppliedHash)
	case ConstructPresorted:
		reduced, phase := reducer.ReducePresorted(ops)
		return finishSequence(reduced, sign.Combine(phase), reducer.Alphabet())
	default:
		reduced, phase := reducer.ReduceDefault(ops)
		return finishSequence(reduced, sign.Combine(phase), reducer.Alphabet())
	}
}

func newRawSequence(ops []Operator, sign Sign, alphabet int, hash uint64) OperatorSequence {
	cp := append([]Operator(nil), ops...)
	return OperatorSequence{operators: cp, sign: sign, hash: hash, alphabet: alphabet}
}

// finishSequence applies the "impossible sequence" failure rule (empties
// the tuple and zeroes the sign) and computes the shortlex hash.
func finishSequence(ops []Operator, sign Sign, alphabet int) OperatorSequence {
	if sign == SignZero {
		return OperatorSequence{operators: nil, sign: SignZero, hash: 0, alphabet: alphabet}
	}
	hasher := ShortlexHasher{Alphabet: alphabet}
	return OperatorSequence{
		operators: append([]Operator(nil), ops...),
		sign:      sign,
		hash:      hasher.Hash(ops),
		alphabet:  alphabet,
	}
}

// Identity returns the empty operator sequence (hash 1 under the shortlex
// convention, sign Positive) for the given alphabet.
func Identity(alphabet int) OperatorSequence {
	return OperatorSequence{operators: nil, sign: SignPositive, hash: 1, alphabet: alphabet}
}

// Zero returns the annihilated sequence for the given alphabet.
func Zero(alphabet int) OperatorSequence {
	return OperatorSequence{operators: nil, sign: SignZero, hash: 0, alphabet: alphabet}
}

// Operators returns the canonical raw tuple. The caller must not mutate it.
func (s OperatorSequence) Operators() []Operator { return s.operators }

// Sign returns the sequence's phase marker.
func (s OperatorSequence) Sign() Sign { return s.sign }

// Hash returns the 64-bit shortlex hash of the canonical tuple.
func (s OperatorSequence) Hash() uint64 { return s.hash }

// Alphabet returns the alphabet size this sequence was built against.
func (s OperatorSequence) Alphabet() int { return s.alphabet }

// Len returns the number of operators in the canonical tuple.
func (s OperatorSequence) Len() int { return len(s.operators) }

// IsZero reports whether the sequence annihilated to zero.
func (s OperatorSequence) IsZero() bool { return s.sign == SignZero }

// IsIdentity reports whether the sequence is the empty, positively-signed
// tuple.
func (s OperatorSequence) IsIdentity() bool { return len(s.operators) == 0 && s.sign == SignPositive }

// Conjugate returns the sequence with its tuple order reversed and its
// sign conjugated -- the generic adjoint for any scenario where individual
// operators are self-adjoint (true for Pauli strings).
func (s OperatorSequence) Conjugate() OperatorSequence {
	reversed := make([]Operator, len(s.operators))
	for i, op := range s.operators {
		reversed[len(s.operators)-1-i] = op
	}
	return OperatorSequence{operators: reversed, sign: s.sign.Conjugate(), hash: s.hash, alphabet: s.alphabet}
}

// Equal reports whether two sequences have identical canonical tuples and
// signs.
func (s OperatorSequence) Equal(other OperatorSequence) bool {
	if s.sign != other.sign || s.hash != other.hash || len(s.operators) != len(other.operators) {
		return false
	}
	for i := range s.operators {
		if s.operators[i] != other.operators[i] {
			return false
		}
	}
	return true
}
