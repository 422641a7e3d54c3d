// Copyright 2026 Kiln ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for Kiln's neural network layers.
//
// Example:
//
//	flat := nn.NewFlatten()
//	out, err := flat.Forward(input) // [batch, h, w, c] -> [batch, h*w*c]
package nn

import (
	"github.com/kiln-ml/kiln/internal/nn"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// DataFormat selects the channel ordering of an input tensor.
type DataFormat = nn.DataFormat

// Channel ordering constants.
const (
	ChannelsLast  DataFormat = nn.ChannelsLast
	ChannelsFirst DataFormat = nn.ChannelsFirst
)

// Flatten collapses all non-batch dimensions to [batch, features].
type Flatten = nn.Flatten

// NewFlatten creates a Flatten layer for channels-last inputs.
func NewFlatten() *Flatten {
	return nn.NewFlatten()
}

// NewFlattenWithFormat creates a Flatten layer for the given channel ordering.
func NewFlattenWithFormat(format DataFormat) *Flatten {
	return nn.NewFlattenWithFormat(format)
}
