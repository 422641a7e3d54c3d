package tensor

import "fmt"

// Reshape returns a tensor with the same data reinterpreted under a new
// shape. The element count must match. The returned tensor shares the
// underlying buffer with the receiver.
func (r *RawTensor) Reshape(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != r.NumElements() {
		return nil, fmt.Errorf("cannot reshape %v (%d elements) to %v (%d elements)",
			r.shape, r.NumElements(), shape, shape.NumElements())
	}
	return &RawTensor{
		data:   r.data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  r.dtype,
	}, nil
}

// MoveAxis returns a contiguous copy of the tensor with axis `from` moved to
// position `to`, all other axes keeping their relative order. Used by the
// Flatten layer to normalize channels-first inputs before collapsing.
func (r *RawTensor) MoveAxis(from, to int) (*RawTensor, error) {
	rank := r.shape.Rank()
	if from < 0 || from >= rank || to < 0 || to >= rank {
		return nil, fmt.Errorf("axis out of range: from=%d to=%d for rank %d", from, to, rank)
	}
	if from == to {
		return r.Clone(), nil
	}

	// Build the axis permutation.
	perm := make([]int, 0, rank)
	for i := 0; i < rank; i++ {
		if i != from {
			perm = append(perm, i)
		}
	}
	perm = append(perm[:to], append([]int{from}, perm[to:]...)...)

	newShape := make(Shape, rank)
	for i, ax := range perm {
		newShape[i] = r.shape[ax]
	}

	out, err := NewRaw(newShape, r.dtype)
	if err != nil {
		return nil, err
	}

	elemSize := r.dtype.Size()
	srcStrides := r.stride
	outStrides := out.stride

	// Walk every element of the output, mapping its multi-index back
	// through the permutation to the source offset.
	n := r.NumElements()
	idx := make([]int, rank)
	for flat := 0; flat < n; flat++ {
		rem := flat
		for d := 0; d < rank; d++ {
			idx[d] = rem / outStrides[d]
			rem %= outStrides[d]
		}
		srcOff := 0
		for d, ax := range perm {
			srcOff += idx[d] * srcStrides[ax]
		}
		copy(out.data[flat*elemSize:(flat+1)*elemSize],
			r.data[srcOff*elemSize:(srcOff+1)*elemSize])
	}
	return out, nil
}
