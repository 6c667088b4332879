// Package metrics records per-run measurements in a private Prometheus
// registry and exports them in the text exposition format, suitable for the
// node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "binomcalc"

// Recorder collects the measurements of one run.
type Recorder struct {
	registry      *prometheus.Registry
	stageDuration *prometheus.GaugeVec
	degree        prometheus.Gauge
	coefficients  prometheus.Gauge
	resultDigits  prometheus.Gauge
	heapAlloc     prometheus.Gauge
	totalAlloc    prometheus.Gauge
	persisted     prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry, so tests and
// repeated runs never collide on the global default registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		stageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration of each pipeline stage.",
		}, []string{"stage"}),
		degree: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "degree",
			Help:      "Exponent n of (x+1)^n.",
		}),
		coefficients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "coefficients",
			Help:      "Number of generated coefficients.",
		}),
		resultDigits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "result_digits",
			Help:      "Decimal digits of the evaluation result, sign excluded.",
		}),
		heapAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heap_alloc_bytes",
			Help:      "Heap bytes in use after the run.",
		}),
		totalAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_alloc_bytes",
			Help:      "Cumulative heap bytes allocated during the run.",
		}),
		persisted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report_persisted",
			Help:      "1 if the report was written to a file, 0 otherwise.",
		}),
	}
	r.registry.MustRegister(
		r.stageDuration, r.degree, r.coefficients, r.resultDigits,
		r.heapAlloc, r.totalAlloc, r.persisted,
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveStage records the duration of a stage.
func (r *Recorder) ObserveStage(stage string, d time.Duration) {
	r.stageDuration.WithLabelValues(stage).Set(d.Seconds())
}

// SetShape records the exponent, the number of coefficients and the size
// of the result.
func (r *Recorder) SetShape(n uint64, coefficients, resultDigits int) {
	r.degree.Set(float64(n))
	r.coefficients.Set(float64(coefficients))
	r.resultDigits.Set(float64(resultDigits))
}

// ObserveMemory records a memory snapshot.
func (r *Recorder) ObserveMemory(m MemorySnapshot) {
	r.heapAlloc.Set(float64(m.HeapAlloc))
	r.totalAlloc.Set(float64(m.TotalAlloc))
}

// SetPersisted records whether the report reached a file.
func (r *Recorder) SetPersisted(ok bool) {
	if ok {
		r.persisted.Set(1)
		return
	}
	r.persisted.Set(0)
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
