package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in         string
		wantOp     string
		wantTensor string
	}{
		{"loss", "loss", "loss:0"},
		{"loss:0", "loss", "loss:0"},
		{"tower0/accuracy:1", "tower0/accuracy", "tower0/accuracy:1"},
		{"scope/name", "scope/name", "scope/name:0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			op, tensor, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOp, op)
			assert.Equal(t, tt.wantTensor, tensor)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"", ":0", "loss:", "loss:x", "loss:00"} {
		t.Run(in, func(t *testing.T) {
			_, _, err := Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestOpAndTensorPanicOnMalformed(t *testing.T) {
	assert.Equal(t, "loss", Op("loss:0"))
	assert.Equal(t, "loss:0", Tensor("loss"))
	assert.Panics(t, func() { Op("loss:") })
	assert.Panics(t, func() { Tensor("") })
}
