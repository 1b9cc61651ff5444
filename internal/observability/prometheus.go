package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"cakecollate/pkg/domain"
)

// PrometheusRecorder keeps command metrics in a private registry. Short-lived
// processes flush it with WriteTextfile for the node exporter textfile collector.
type PrometheusRecorder struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
	entries  *prometheus.GaugeVec
}

// NewPrometheusRecorder registers the CakeCollate collectors on a new registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cakecollate",
			Name:      "commands_total",
			Help:      "Executed commands by command word and outcome.",
		}, []string{"command", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cakecollate",
			Name:      "command_duration_seconds",
			Help:      "Command execution time including persistence.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"command"}),
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "cakecollate",
			Name:      "store_entries",
			Help:      "Entries held after the last mutating command.",
		}, []string{"store"}),
	}
	r.registry.MustRegister(r.commands, r.duration, r.entries)
	return r
}

// Registry exposes the underlying registry.
func (r *PrometheusRecorder) Registry() *prometheus.Registry { return r.registry }

func (r *PrometheusRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	r.commands.WithLabelValues(operation, statusLabel(success)).Inc()
	r.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveSnapshot records the sizes of the order store and catalog.
func (r *PrometheusRecorder) ObserveSnapshot(snapshot domain.Snapshot) {
	r.entries.WithLabelValues("orders").Set(float64(len(snapshot.Orders)))
	r.entries.WithLabelValues("order_items").Set(float64(len(snapshot.OrderItems)))
}

// WriteTextfile writes every metric to path in the text exposition format.
func (r *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
