package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus exposes validation scalars as a gauge vector so long-running
// evaluation jobs can be scraped. Metric names become the "metric" label;
// the gauge holds the latest epoch's value.
type Prometheus struct {
	gauges *prometheus.GaugeVec
}

// NewPrometheus registers the validation gauge vector with reg and returns
// the monitor. Pass prometheus.DefaultRegisterer for the process default.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	gauges := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "validation_scalar",
			Help:      "Latest per-epoch validation metric value, labelled by metric name.",
		},
		[]string{"metric"},
	)
	if err := reg.Register(gauges); err != nil {
		return nil, err
	}
	return &Prometheus{gauges: gauges}, nil
}

// PutScalar updates the gauge for the metric.
func (p *Prometheus) PutScalar(name string, value float64) {
	p.gauges.WithLabelValues(name).Set(value)
}
