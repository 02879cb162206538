package symbolic

import "github.com/ajpgarner/moment-sub006/dictionary"

// SymbolInfo is one symbol table entry: a de-duplicated canonical operator
// sequence, its conjugate, and the (real, imaginary) indices of its basis
// elements.
type SymbolInfo struct {
	ID                int
	Sequence          dictionary.OperatorSequence
	SequenceConjugate dictionary.OperatorSequence
	BasisReal         int
	BasisImag         int
}

// SymbolTable is the consumer-side contract for the symbol table the
// surrounding matrix system owns. The core never mutates it -- only reads
// through Where/Lookup/ToBasis under whatever lock the matrix system
// already holds.
type SymbolTable interface {
	// Where returns the symbol registered for seq's canonical tuple, if any.
	Where(seq dictionary.OperatorSequence) (SymbolInfo, bool)

	// Lookup returns the symbol registered under id, if any.
	Lookup(id int) (SymbolInfo, bool)

	// Size returns the number of symbols currently registered.
	Size() int

	// ToBasis returns the (real, imaginary) basis indices for id.
	ToBasis(id int) (real, imag int, ok bool)
}
