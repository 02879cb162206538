// Package dictionary defines the alphabet-agnostic operator and operator
// sequence types shared by every scenario (Pauli chains/lattices today,
// other alphabets in principle), plus the shortlex hash used to order and
// deduplicate sequences.
//
// Nothing in this package knows about Pauli matrices, lattices, or wrapping:
// scenario-specific reduction (commutation, idempotence, multiplication
// tables) is supplied by the caller through the Reducer interface at
// construction time. See package pauli for the concrete Pauli reducer.
package dictionary
