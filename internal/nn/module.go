// Package nn implements the neural network layers carried by the Kiln
// evaluation framework.
//
// Only shape-transforming, parameter-free layers live here; trainable
// layers and autodiff belong to the training side of the stack.
package nn

import (
	"github.com/kiln-ml/kiln/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules are stateless with respect to inputs: Forward may be called any
// number of times with independently shaped batches.
type Module interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.RawTensor) (*tensor.RawTensor, error)
}
