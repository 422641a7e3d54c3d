package dataset

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiln-ml/kiln/internal/inference"
	"github.com/kiln-ml/kiln/internal/monitor"
	"github.com/kiln-ml/kiln/internal/tensor"
)

func writeBatches(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batches.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestJSONLSource(t *testing.T) {
	path := writeBatches(t, `{"loss:0": [0.5], "incorrect_vector:0": [1, 0, 0]}
{"loss:0": [0.25], "incorrect_vector:0": [0]}
`)

	src, err := OpenJSONL(path)
	require.NoError(t, err)
	defer src.Close()

	ctx := context.Background()

	b1, err := src.NextBatch(ctx)
	require.NoError(t, err)
	require.Contains(t, b1, "loss:0")
	assert.True(t, b1["loss:0"].IsScalar())
	assert.Equal(t, 0.5, b1["loss:0"].Float64Values()[0])
	assert.Equal(t, tensor.Shape{3}, b1["incorrect_vector:0"].Shape())

	b2, err := src.NextBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.25, b2["loss:0"].Float64Values()[0])
	assert.Equal(t, tensor.Shape{1}, b2["incorrect_vector:0"].Shape(),
		"length-1 values stay rank-1 so vector consumers accept a one-sample batch")
	assert.True(t, b2["loss:0"].IsScalar(),
		"a single-element vector still satisfies scalar consumers")

	_, err = src.NextBatch(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONLUnequalFinalBatch(t *testing.T) {
	// 1 wrong of 3, then a final batch of a single wrong sample: the
	// epoch must complete and report the dataset-exact error 2/4.
	path := writeBatches(t, `{"incorrect_vector:0": [1, 0, 0]}
{"incorrect_vector:0": [1]}
`)

	src, err := OpenJSONL(path)
	require.NoError(t, err)
	defer src.Close()

	errRate, err := inference.NewClassificationError("", "")
	require.NoError(t, err)

	hist := monitor.NewHistory()
	runner, err := inference.NewRunner(hist, errRate)
	require.NoError(t, err)
	require.NoError(t, runner.RunEpoch(context.Background(), src, 1))

	v, ok := hist.Latest("validation_error")
	require.True(t, ok)
	assert.Equal(t, 0.5, v)
}

func TestJSONLSourceRewind(t *testing.T) {
	path := writeBatches(t, `{"loss:0": [1]}
`)

	src, err := OpenJSONL(path)
	require.NoError(t, err)
	defer src.Close()

	ctx := context.Background()
	_, err = src.NextBatch(ctx)
	require.NoError(t, err)
	_, err = src.NextBatch(ctx)
	require.ErrorIs(t, err, io.EOF)

	require.NoError(t, src.Rewind())
	b, err := src.NextBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, b["loss:0"].Float64Values()[0])
}

func TestJSONLSourceSkipsBlankLines(t *testing.T) {
	path := writeBatches(t, `{"loss:0": [1]}

{"loss:0": [2]}
`)

	src, err := OpenJSONL(path)
	require.NoError(t, err)
	defer src.Close()

	ctx := context.Background()
	b1, err := src.NextBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, b1["loss:0"].Float64Values()[0])

	b2, err := src.NextBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, b2["loss:0"].Float64Values()[0])
}

func TestJSONLSourceMalformed(t *testing.T) {
	path := writeBatches(t, `not json
`)

	src, err := OpenJSONL(path)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.NextBatch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":1:")
}

func TestJSONLSourceEmptyVector(t *testing.T) {
	path := writeBatches(t, `{"loss:0": []}
`)

	src, err := OpenJSONL(path)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.NextBatch(context.Background())
	assert.Error(t, err)
}

func TestOpenJSONLMissing(t *testing.T) {
	_, err := OpenJSONL(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.Error(t, err)
}
