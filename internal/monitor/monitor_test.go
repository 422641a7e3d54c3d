package monitor

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	h := NewHistory()

	_, ok := h.Latest("missing")
	assert.False(t, ok)

	h.PutScalar("val_error", 0.4)
	h.PutScalar("val_error", 0.3)
	h.PutScalar("val_precision", 0.9)

	v, ok := h.Latest("val_error")
	require.True(t, ok)
	assert.Equal(t, 0.3, v)
	assert.Equal(t, []float64{0.4, 0.3}, h.Series("val_error"))
	assert.ElementsMatch(t, []string{"val_error", "val_precision"}, h.Names())
}

func TestMonitorsFanOut(t *testing.T) {
	a := NewHistory()
	b := NewHistory()
	m := Monitors{a, b}

	m.PutScalar("x", 1.5)

	va, _ := a.Latest("x")
	vb, _ := b.Latest("x")
	assert.Equal(t, 1.5, va)
	assert.Equal(t, 1.5, vb)
}

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	w := NewJSONWriter(path)
	w.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	// Nothing buffered: no file written.
	require.NoError(t, w.FlushEpoch(1))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	w.PutScalar("val_error", 0.25)
	require.NoError(t, w.FlushEpoch(1))

	w.PutScalar("val_error", 0.2)
	require.NoError(t, w.FlushEpoch(2))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []jsonRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec jsonRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, sc.Err())

	require.Len(t, records, 2)
	assert.Equal(t, w.RunID(), records[0].RunID)
	assert.Equal(t, 1, records[0].Epoch)
	assert.Equal(t, 0.25, records[0].Metrics["val_error"])
	assert.Equal(t, 2, records[1].Epoch)
	assert.Equal(t, 0.2, records[1].Metrics["val_error"])
	assert.Equal(t, "2026-03-01T12:00:00Z", records[0].Time)
}

func TestPrometheusMonitor(t *testing.T) {
	reg := prometheus.NewRegistry()
	p, err := NewPrometheus(reg, "kiln")
	require.NoError(t, err)

	p.PutScalar("val_error", 0.125)
	p.PutScalar("val_error", 0.0625) // gauge keeps the latest value

	g := p.gauges.WithLabelValues("val_error")
	assert.Equal(t, 0.0625, testutil.ToFloat64(g))
}
