package tensor

// IterTuple pairs N advance functions and steps them in lock-step,
// comparing only the first to decide when iteration ends -- the parallel
// multi-iterator pattern named in spec.md's design notes (§9, "Parallel
// iteration over tuples of iterators").
type IterTuple[T any] struct {
	sources []func() (T, bool)
}

// NewIterTuple builds an IterTuple over the given advance functions, each
// returning its next value and whether one was produced.
func NewIterTuple[T any](sources ...func() (T, bool)) *IterTuple[T] {
	return &IterTuple[T]{sources: sources}
}

// Next advances every source by one step and returns their values
// together, or (nil, false) once the first source is exhausted.
func (it *IterTuple[T]) Next() ([]T, bool) {
	if len(it.sources) == 0 {
		return nil, false
	}
	first, ok := it.sources[0]()
	if !ok {
		return nil, false
	}
	result := make([]T, len(it.sources))
	result[0] = first
	for i := 1; i < len(it.sources); i++ {
		v, _ := it.sources[i]()
		result[i] = v
	}
	return result, true
}
