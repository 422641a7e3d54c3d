// Copyright 2026 Kiln ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the tensor values flowing
// through Kiln evaluation runs.
//
// Fetched model outputs arrive as RawTensor values: CPU-resident, row-major
// buffers with runtime type information.
//
// Example:
//
//	vec, err := tensor.Vector([]float64{1, 0, 0})
//	loss := tensor.Scalar(0.25)
package tensor

import (
	"github.com/kiln-ml/kiln/internal/tensor"
)

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation.
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-initialized tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromFloat32 creates a Float32 tensor from a slice and shape.
func FromFloat32(data []float32, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat32(data, shape)
}

// FromFloat64 creates a Float64 tensor from a slice and shape.
func FromFloat64(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat64(data, shape)
}

// FromInt32 creates an Int32 tensor from a slice and shape.
func FromInt32(data []int32, shape Shape) (*RawTensor, error) {
	return tensor.FromInt32(data, shape)
}

// Scalar creates a rank-0 Float64 tensor holding a single value.
func Scalar(v float64) *RawTensor {
	return tensor.Scalar(v)
}

// Vector creates a rank-1 Float64 tensor from a slice.
func Vector(data []float64) (*RawTensor, error) {
	return tensor.Vector(data)
}
