package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder accumulates benchmark measurements in a private Prometheus
// registry so that a run can be exported without touching global state.
type Recorder struct {
	registry  *prometheus.Registry
	durations *prometheus.HistogramVec
	elements  prometheus.Gauge
	chunks    prometheus.Gauge
	workers   prometheus.Gauge
	speedup   prometheus.Gauge
	mismatch  prometheus.Gauge
}

// NewRecorder creates a recorder with its metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "arraysum_summation_duration_seconds",
			Help:    "Wall-clock duration of one element-wise summation.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"strategy"}),
		elements: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arraysum_elements",
			Help: "Number of elements in each input sequence.",
		}),
		chunks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arraysum_chunks",
			Help: "Number of static chunks used by the parallel strategy.",
		}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arraysum_workers",
			Help: "Number of workers available to the parallel strategy.",
		}),
		speedup: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arraysum_speedup_ratio",
			Help: "Best sequential duration divided by best parallel duration.",
		}),
		mismatch: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arraysum_result_mismatch",
			Help: "1 if the strategies disagreed on the result, 0 otherwise.",
		}),
	}
	r.registry.MustRegister(r.durations, r.elements, r.chunks, r.workers, r.speedup, r.mismatch)
	return r
}

// Registry exposes the underlying registry so callers can add collectors
// before exporting.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// SetShape records the size of the workload.
func (r *Recorder) SetShape(elements, chunks, workers int) {
	r.elements.Set(float64(elements))
	r.chunks.Set(float64(chunks))
	r.workers.Set(float64(workers))
}

// ObserveDuration records one timed summation.
func (r *Recorder) ObserveDuration(strategy string, d time.Duration) {
	r.durations.WithLabelValues(strategy).Observe(d.Seconds())
}

// SetSpeedup records the sequential/parallel ratio.
func (r *Recorder) SetSpeedup(ratio float64) { r.speedup.Set(ratio) }

// SetMismatch records whether the strategies disagreed.
func (r *Recorder) SetMismatch(mismatch bool) {
	if mismatch {
		r.mismatch.Set(1)
		return
	}
	r.mismatch.Set(0)
}

// WriteTextfile writes the current values to path in the text exposition
// format, suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
