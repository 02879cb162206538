// Package moment is a moment-matrix toolkit for noncommutative polynomial
// optimization in quantum information: it canonicalizes Pauli operator
// strings under translational symmetry, deduplicates them into symbol
// table entries, and exposes the derived Collins-Gisin, probability, and
// full-correlator tensors a semidefinite-programming solver needs to
// represent a Bell-scenario or lattice-spin problem.
//
// Everything lives in subpackages:
//
//	dictionary/ — operators, operator sequences, the shortlex hasher
//	pauli/      — PauliContext, the bit-packed site hasher, moment simplifiers
//	symbolic/   — symbol table, polynomial, and rulebook interfaces
//	tensor/     — Collins-Gisin, probability, and full-correlator tensors
//	storage/    — the persistent signature-tagged object store
//	momentsys/  — MatrixSystem, the single-lock integration point
//
// This package itself holds no code; it documents the module for
// pkg.go.dev. A host front-end (not part of this module) owns the symbol
// table, the polynomial factory, and the SDP export step.
package moment
