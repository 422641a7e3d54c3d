package nn

import (
	"fmt"

	"github.com/kiln-ml/kiln/internal/tensor"
)

// DataFormat selects the channel ordering of an input tensor.
type DataFormat int

// Supported channel orderings.
const (
	// ChannelsLast lays inputs out as [batch, spatial..., channels].
	ChannelsLast DataFormat = iota
	// ChannelsFirst lays inputs out as [batch, channels, spatial...].
	ChannelsFirst
)

// String returns the conventional name of the data format.
func (f DataFormat) String() string {
	switch f {
	case ChannelsLast:
		return "channels_last"
	case ChannelsFirst:
		return "channels_first"
	default:
		return "unknown"
	}
}

// Flatten collapses all dimensions of the input except the batch dimension,
// producing [batch, features]. For channels-first inputs the channel axis is
// moved behind the spatial axes before collapsing, so the feature order
// matches the channels-last layout.
//
// Flatten is stateless and has no trainable parameters.
type Flatten struct {
	format DataFormat
}

// NewFlatten creates a Flatten layer for channels-last inputs.
func NewFlatten() *Flatten {
	return &Flatten{format: ChannelsLast}
}

// NewFlattenWithFormat creates a Flatten layer for the given channel ordering.
func NewFlattenWithFormat(format DataFormat) *Flatten {
	return &Flatten{format: format}
}

// Forward reshapes input to [batch, features].
func (f *Flatten) Forward(input *tensor.RawTensor) (*tensor.RawTensor, error) {
	shape := input.Shape()
	rank := shape.Rank()
	if rank == 0 {
		return nil, fmt.Errorf("flatten: input must have a batch dimension, got a scalar")
	}

	batch := shape[0]
	features := shape.NumElements() / batch

	x := input
	if f.format == ChannelsFirst && rank > 2 {
		moved, err := x.MoveAxis(1, rank-1)
		if err != nil {
			return nil, fmt.Errorf("flatten: %w", err)
		}
		x = moved
	}

	out, err := x.Reshape(tensor.Shape{batch, features})
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}
	return out, nil
}
