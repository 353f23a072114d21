package metrics

import (
	"time"

	"github.com/contre95/audiorename/src/music"
	"github.com/prometheus/client_golang/prometheus"
)

const outcomeError = "error"

// Recorder counts rename outcomes on a registry private to one run.
type Recorder struct {
	registry *prometheus.Registry
	files    *prometheus.CounterVec
	lastRun  prometheus.Gauge
}

// NewRecorder creates a Recorder with every outcome series initialized to zero.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "audiorename",
			Name:      "files_total",
			Help:      "Audio files processed, by rename outcome.",
		}, []string{"outcome"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "audiorename",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last rename run finished.",
		}),
	}
	r.registry.MustRegister(r.files, r.lastRun)

	for _, o := range []music.Outcome{music.Renamed, music.SkippedUnchanged, music.SkippedCollision} {
		r.files.WithLabelValues(o.String())
	}
	r.files.WithLabelValues(outcomeError)
	return r
}

// Observe counts one processed file. A non-nil err counts as an error regardless of outcome.
func (r *Recorder) Observe(outcome music.Outcome, err error) {
	if err != nil {
		r.files.WithLabelValues(outcomeError).Inc()
		return
	}
	r.files.WithLabelValues(outcome.String()).Inc()
}

// Finish stamps the end of the run.
func (r *Recorder) Finish(at time.Time) {
	r.lastRun.Set(float64(at.Unix()))
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
