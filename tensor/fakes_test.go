package tensor

import (
	"sort"

	"github.com/ajpgarner/moment-sub006/dictionary"
	"github.com/ajpgarner/moment-sub006/symbolic"
)

// fakeReducer treats every operator as commuting and idempotence-free,
// which is all a CHSH-style locality fixture needs: operators from
// distinct parties always commute, and no party ever repeats an operator
// within one test sequence.
type fakeReducer struct{ alphabet int }

func (r fakeReducer) Alphabet() int { return r.alphabet }

func (r fakeReducer) ReduceDefault(ops []dictionary.Operator) ([]dictionary.Operator, dictionary.Sign) {
	sorted := append([]dictionary.Operator(nil), ops...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted, dictionary.SignPositive
}

func (r fakeReducer) ReducePresorted(ops []dictionary.Operator) ([]dictionary.Operator, dictionary.Sign) {
	return append([]dictionary.Operator(nil), ops...), dictionary.SignPositive
}

type fakeBuilder struct{ reducer fakeReducer }

func (b fakeBuilder) Sequence(ops []dictionary.Operator, sign dictionary.Sign) dictionary.OperatorSequence {
	return dictionary.NewOperatorSequence(dictionary.ConstructDefault, ops, sign, b.reducer, 0)
}

type fakeSymbolTable struct {
	byHash map[uint64]symbolic.SymbolInfo
}

func newFakeSymbolTable() *fakeSymbolTable {
	return &fakeSymbolTable{byHash: map[uint64]symbolic.SymbolInfo{}}
}

func (t *fakeSymbolTable) Where(seq dictionary.OperatorSequence) (symbolic.SymbolInfo, bool) {
	info, ok := t.byHash[seq.Hash()]
	return info, ok
}

func (t *fakeSymbolTable) Lookup(id int) (symbolic.SymbolInfo, bool) {
	for _, info := range t.byHash {
		if info.ID == id {
			return info, true
		}
	}
	return symbolic.SymbolInfo{}, false
}

func (t *fakeSymbolTable) Size() int { return len(t.byHash) }

func (t *fakeSymbolTable) ToBasis(id int) (int, int, bool) {
	info, ok := t.Lookup(id)
	return info.BasisReal, info.BasisImag, ok
}

// assign registers seq (building it via builder) under a fresh symbol id,
// or returns its existing id if an equal sequence was already assigned.
func (t *fakeSymbolTable) assign(builder fakeBuilder, ops []dictionary.Operator) dictionary.OperatorSequence {
	seq := builder.Sequence(ops, dictionary.SignPositive)
	if _, ok := t.byHash[seq.Hash()]; !ok {
		id := len(t.byHash)
		t.byHash[seq.Hash()] = symbolic.SymbolInfo{ID: id, Sequence: seq, BasisReal: id}
	}
	return seq
}

// chshFixture builds the two-party, two-binary-measurement scenario from
// the spec's CHSH scenarios: party axes [identity, mmt0 op, mmt1 op], all
// nine joint sequences pre-registered in the symbol table.
func chshFixture() (fakeBuilder, *fakeSymbolTable, [][]dictionary.Operator, [][]MeasurementRange) {
	const (
		a0 dictionary.Operator = 1
		a1 dictionary.Operator = 2
		b0 dictionary.Operator = 3
		b1 dictionary.Operator = 4
	)
	builder := fakeBuilder{reducer: fakeReducer{alphabet: 5}}
	symbols := newFakeSymbolTable()

	symbols.assign(builder, nil)
	symbols.assign(builder, []dictionary.Operator{a0})
	symbols.assign(builder, []dictionary.Operator{a1})
	symbols.assign(builder, []dictionary.Operator{b0})
	symbols.assign(builder, []dictionary.Operator{b1})
	symbols.assign(builder, []dictionary.Operator{a0, b0})
	symbols.assign(builder, []dictionary.Operator{a0, b1})
	symbols.assign(builder, []dictionary.Operator{a1, b0})
	symbols.assign(builder, []dictionary.Operator{a1, b1})

	axisOperators := [][]dictionary.Operator{
		{0, a0, a1},
		{0, b0, b1},
	}
	measurements := [][]MeasurementRange{
		{{FirstOperatorOffset: 0, OperatorCount: 1}, {FirstOperatorOffset: 1, OperatorCount: 1}},
		{{FirstOperatorOffset: 0, OperatorCount: 1}, {FirstOperatorOffset: 1, OperatorCount: 1}},
	}
	return builder, symbols, axisOperators, measurements
}
