// Package metrics exports conditioning runs as Prometheus metrics.
//
// Recorder plugs into condition.WithRecorder (or worldgen.WithRecorder).
// Batch runs have no scrape endpoint, so WriteTextfile dumps a registry in
// the node_exporter textfile format instead.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/blobgraph/condition"
)

const namespace = "blobgraph"

// ErrNilRegisterer indicates NewRecorder was given a nil registry.
var ErrNilRegisterer = errors.New("metrics: registerer is nil")

// Recorder implements condition.Recorder on top of Prometheus collectors.
type Recorder struct {
	passes    prometheus.Counter
	surgery   *prometheus.CounterVec
	remaining prometheus.Gauge
	converged prometheus.Gauge
}

var _ condition.Recorder = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with reg.
// Registering twice on the same registry fails with the registry's error.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	r := &Recorder{
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "condition",
			Name:      "passes_total",
			Help:      "Conditioning passes executed.",
		}),
		surgery: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "condition",
			Name:      "surgery_total",
			Help:      "Surgery primitives applied, by kind.",
		}, []string{"kind"}),
		remaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "condition",
			Name:      "remaining_regions",
			Help:      "Regions still scheduled when the last run stopped.",
		}),
		converged: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "condition",
			Name:      "converged",
			Help:      "1 if the last run converged, 0 otherwise.",
		}),
	}
	for _, c := range []prometheus.Collector{r.passes, r.surgery, r.remaining, r.converged} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	// Pre-create every kind so zero counts are exported.
	for _, kind := range []string{condition.KindSplit, condition.KindRedistribute, condition.KindMerge, condition.KindPrune} {
		r.surgery.WithLabelValues(kind)
	}

	return r, nil
}

// ObservePass counts one pass.
func (r *Recorder) ObservePass(int, int) {
	r.passes.Inc()
}

// ObserveSurgery counts one primitive of the given kind.
func (r *Recorder) ObserveSurgery(kind string) {
	r.surgery.WithLabelValues(kind).Inc()
}

// ObserveResult sets the gauges from the final result.
func (r *Recorder) ObserveResult(res condition.Result) {
	r.remaining.Set(float64(len(res.Remaining)))
	if res.Status == condition.Converged {
		r.converged.Set(1)
	} else {
		r.converged.Set(0)
	}
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format. The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if g == nil {
		return fmt.Errorf("metrics: gatherer is nil")
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
