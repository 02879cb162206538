package tensor

// Shape describes a column-major multi-dimensional index space: axis 0
// varies fastest, matching the source's Collins-Gisin/probability tensor
// storage order.
type Shape struct {
	Dims []int
}

// NewShape builds a Shape over the given per-axis extents.
func NewShape(dims []int) Shape {
	cp := append([]int(nil), dims...)
	return Shape{Dims: cp}
}

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s.Dims) }

// Size returns the total number of cells (product of all extents).
func (s Shape) Size() int {
	total := 1
	for _, d := range s.Dims {
		total *= d
	}
	return total
}

// ValidateIndex reports BadTensorIndex if index has the wrong rank or any
// component is out of bounds for its axis.
func (s Shape) ValidateIndex(index []int) error {
	if len(index) != len(s.Dims) {
		return &BadTensorIndex{Dims: s.Dims, Index: index, Reason: "rank mismatch"}
	}
	for d, v := range index {
		if v < 0 || v >= s.Dims[d] {
			return &BadTensorIndex{Dims: s.Dims, Index: index, Reason: "component out of range"}
		}
	}
	return nil
}

// IndexToOffset computes the column-major linear offset of index:
// sum_d index[d] * prod_{e<d} Dims[e].
func (s Shape) IndexToOffset(index []int) (int, error) {
	if err := s.ValidateIndex(index); err != nil {
		return 0, err
	}
	offset := 0
	stride := 1
	for d, v := range index {
		offset += v * stride
		stride *= s.Dims[d]
	}
	return offset, nil
}

// OffsetToIndex recovers the multi-index for a column-major linear offset
// known to be in range.
func (s Shape) OffsetToIndex(offset int) []int {
	index := make([]int, len(s.Dims))
	for d, extent := range s.Dims {
		index[d] = offset % extent
		offset /= extent
	}
	return index
}

// Iterate returns a closure yielding every index in the space exactly
// once, in column-major order, then (nil, false) forever after.
func (s Shape) Iterate() func() ([]int, bool) {
	if len(s.Dims) == 0 {
		done := false
		return func() ([]int, bool) {
			if done {
				return nil, false
			}
			done = true
			return []int{}, true
		}
	}
	current := make([]int, len(s.Dims))
	started := false
	exhausted := false
	for _, d := range s.Dims {
		if d == 0 {
			exhausted = true
		}
	}
	return func() ([]int, bool) {
		if exhausted {
			return nil, false
		}
		if !started {
			started = true
			return append([]int(nil), current...), true
		}
		for d := 0; d < len(current); d++ {
			current[d]++
			if current[d] < s.Dims[d] {
				return append([]int(nil), current...), true
			}
			current[d] = 0
		}
		exhausted = true
		return nil, false
	}
}
