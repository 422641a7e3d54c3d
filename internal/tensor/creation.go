package tensor

import "fmt"

// FromFloat32 creates a Float32 tensor from a slice and shape.
// The data is copied; the tensor does not alias the input slice.
func FromFloat32(data []float32, shape Shape) (*RawTensor, error) {
	r, err := NewRaw(shape, Float32)
	if err != nil {
		return nil, err
	}
	if len(data) != r.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, r.NumElements())
	}
	copy(r.AsFloat32(), data)
	return r, nil
}

// FromFloat64 creates a Float64 tensor from a slice and shape.
// The data is copied; the tensor does not alias the input slice.
func FromFloat64(data []float64, shape Shape) (*RawTensor, error) {
	r, err := NewRaw(shape, Float64)
	if err != nil {
		return nil, err
	}
	if len(data) != r.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, r.NumElements())
	}
	copy(r.AsFloat64(), data)
	return r, nil
}

// FromInt32 creates an Int32 tensor from a slice and shape.
// The data is copied; the tensor does not alias the input slice.
func FromInt32(data []int32, shape Shape) (*RawTensor, error) {
	r, err := NewRaw(shape, Int32)
	if err != nil {
		return nil, err
	}
	if len(data) != r.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, r.NumElements())
	}
	copy(r.AsInt32(), data)
	return r, nil
}

// Scalar creates a rank-0 Float64 tensor holding a single value.
func Scalar(v float64) *RawTensor {
	r, err := NewRaw(Shape{}, Float64)
	if err != nil {
		panic(err) // empty shape is always valid
	}
	r.AsFloat64()[0] = v
	return r
}

// Vector creates a rank-1 Float64 tensor from a slice.
func Vector(data []float64) (*RawTensor, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot create a vector from an empty slice")
	}
	return FromFloat64(data, Shape{len(data)})
}
