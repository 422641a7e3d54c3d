package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiln-ml/kiln/internal/tensor"
)

func scalar(t *testing.T, v float64) *tensor.RawTensor {
	t.Helper()
	return tensor.Scalar(v)
}

func vector(t *testing.T, data ...float64) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.Vector(data)
	require.NoError(t, err)
	return r
}

func TestScalarStatsMean(t *testing.T) {
	s, err := NewScalarStatsWithPrefix("prefix", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a:0", "b:0"}, s.Fetches())

	s.BeforeEpoch()
	require.NoError(t, s.OnFetches([]*tensor.RawTensor{scalar(t, 1), scalar(t, 3)}))
	require.NoError(t, s.OnFetches([]*tensor.RawTensor{scalar(t, 3), scalar(t, 5)}))

	summary := s.AfterEpoch()
	assert.Equal(t, map[string]float64{"prefix_a": 2.0, "prefix_b": 4.0}, summary)
}

func TestScalarStatsEmptyEpoch(t *testing.T) {
	s, err := NewScalarStats("loss")
	require.NoError(t, err)

	s.BeforeEpoch()
	assert.Nil(t, s.AfterEpoch(), "zero batches must skip the mean, not crash")
}

func TestScalarStatsKeys(t *testing.T) {
	// Default prefix, qualified tensor name: key uses the bare op name.
	s, err := NewScalarStats("tower0/loss:0")
	require.NoError(t, err)
	s.BeforeEpoch()
	require.NoError(t, s.OnFetches([]*tensor.RawTensor{scalar(t, 2)}))
	assert.Equal(t, map[string]float64{"validation_tower0/loss": 2.0}, s.AfterEpoch())

	// Empty prefix: bare op name alone.
	s, err = NewScalarStatsWithPrefix("", "loss")
	require.NoError(t, err)
	s.BeforeEpoch()
	require.NoError(t, s.OnFetches([]*tensor.RawTensor{scalar(t, 2)}))
	assert.Equal(t, map[string]float64{"loss": 2.0}, s.AfterEpoch())
}

func TestScalarStatsRejectsNonScalar(t *testing.T) {
	s, err := NewScalarStats("loss")
	require.NoError(t, err)
	s.BeforeEpoch()
	assert.Error(t, s.OnFetches([]*tensor.RawTensor{vector(t, 1, 2)}))
}

func TestScalarStatsEpochReset(t *testing.T) {
	s, err := NewScalarStatsWithPrefix("v", "x")
	require.NoError(t, err)

	s.BeforeEpoch()
	require.NoError(t, s.OnFetches([]*tensor.RawTensor{scalar(t, 10)}))
	assert.Equal(t, 10.0, s.AfterEpoch()["v_x"])

	s.BeforeEpoch()
	require.NoError(t, s.OnFetches([]*tensor.RawTensor{scalar(t, 2)}))
	assert.Equal(t, 2.0, s.AfterEpoch()["v_x"], "no carry-over between epochs")
}

func TestClassificationErrorWeighted(t *testing.T) {
	c, err := NewClassificationError("", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"incorrect_vector:0"}, c.Fetches())

	c.BeforeEpoch()
	// 1 wrong of 3, then 1 wrong of 1: exact error is 2/4 = 0.5,
	// not the unweighted per-batch mean of ~0.667.
	require.NoError(t, c.OnFetches([]*tensor.RawTensor{vector(t, 1, 0, 0)}))
	require.NoError(t, c.OnFetches([]*tensor.RawTensor{vector(t, 1)}))

	assert.Equal(t, map[string]float64{"validation_error": 0.5}, c.AfterEpoch())
}

func TestClassificationErrorRejectsNonVector(t *testing.T) {
	c, err := NewClassificationError("wrong", "err")
	require.NoError(t, err)

	matrix, err := tensor.FromFloat64([]float64{1, 0, 0, 1}, tensor.Shape{2, 2})
	require.NoError(t, err)

	c.BeforeEpoch()
	assert.Error(t, c.OnFetches([]*tensor.RawTensor{matrix}),
		"a 2-D wrong tensor is a graph construction bug and must fail fast")
}

func TestClassificationErrorEpochReset(t *testing.T) {
	c, err := NewClassificationError("wrong", "err")
	require.NoError(t, err)

	c.BeforeEpoch()
	require.NoError(t, c.OnFetches([]*tensor.RawTensor{vector(t, 1, 1)}))
	assert.Equal(t, 1.0, c.AfterEpoch()["err"])

	c.BeforeEpoch()
	require.NoError(t, c.OnFetches([]*tensor.RawTensor{vector(t, 0, 0)}))
	assert.Equal(t, 0.0, c.AfterEpoch()["err"], "counts must fully reset")
}

func TestBinaryClassificationStats(t *testing.T) {
	b, err := NewBinaryClassificationStatsWithPrefix("val", "pred", "label")
	require.NoError(t, err)
	assert.Equal(t, []string{"pred:0", "label:0"}, b.Fetches())

	b.BeforeEpoch()
	require.NoError(t, b.OnFetches([]*tensor.RawTensor{
		vector(t, 1, 0, 1, 0),
		vector(t, 1, 0, 0, 0),
	}))

	summary := b.AfterEpoch()
	assert.Equal(t, 0.5, summary["val_precision"])
	assert.Equal(t, 1.0, summary["val_recall"])
}

func TestBinaryClassificationStatsDefaultPrefix(t *testing.T) {
	b, err := NewBinaryClassificationStats("pred", "label")
	require.NoError(t, err)
	b.BeforeEpoch()
	summary := b.AfterEpoch()
	assert.Contains(t, summary, DefaultBinaryPrefix+"_precision")
	assert.Contains(t, summary, DefaultBinaryPrefix+"_recall")
}

func TestBinaryClassificationStatsEmptyPrefix(t *testing.T) {
	b, err := NewBinaryClassificationStatsWithPrefix("", "pred", "label")
	require.NoError(t, err)
	b.BeforeEpoch()
	summary := b.AfterEpoch()
	assert.Contains(t, summary, "precision")
	assert.Contains(t, summary, "recall")
}

func TestBinaryClassificationStatsPropagatesFeedErrors(t *testing.T) {
	b, err := NewBinaryClassificationStatsWithPrefix("val", "pred", "label")
	require.NoError(t, err)
	b.BeforeEpoch()
	assert.Error(t, b.OnFetches([]*tensor.RawTensor{
		vector(t, 1, 0),
		vector(t, 1),
	}))
}

func TestInferencerConstructionErrors(t *testing.T) {
	_, err := NewScalarStats()
	assert.Error(t, err, "no names")

	_, err = NewScalarStats("bad:name")
	assert.Error(t, err, "malformed name")

	_, err = NewClassificationError("bad:", "")
	assert.Error(t, err)

	_, err = NewBinaryClassificationStats("pred", "label:")
	assert.Error(t, err)
}
