// Exposes log pipeline counters as Prometheus metrics
package metrics

import (
	"duplog/pkg/duplog"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "duplog"

// Reads pipeline counters on every scrape
type StatsFunc func() duplog.Stats

type Collector struct {
	stats StatsFunc

	received    *prometheus.Desc
	written     *prometheus.Desc
	duplicates  *prometheus.Desc
	aggregates  *prometheus.Desc
	writeErrors *prometheus.Desc
	panics      *prometheus.Desc
	queueDepth  *prometheus.Desc
}

// Creates collector over the given counter source
func NewCollector(stats StatsFunc) (collector *Collector) {
	collector = &Collector{
		stats: stats,
		received: prometheus.NewDesc(namespace+"_messages_received_total",
			"Messages taken off the queue by the pipeline", nil, nil),
		written: prometheus.NewDesc(namespace+"_messages_written_total",
			"Individual messages accepted by the writer", nil, nil),
		duplicates: prometheus.NewDesc(namespace+"_messages_duplicate_total",
			"Messages folded into an aggregate instead of written", nil, nil),
		aggregates: prometheus.NewDesc(namespace+"_aggregates_written_total",
			"Duplicate aggregates accepted by the writer", nil, nil),
		writeErrors: prometheus.NewDesc(namespace+"_write_errors_total",
			"Writer calls that returned an error", nil, nil),
		panics: prometheus.NewDesc(namespace+"_write_panics_total",
			"Writer calls that panicked", nil, nil),
		queueDepth: prometheus.NewDesc(namespace+"_queue_depth",
			"Messages waiting for the pipeline", nil, nil),
	}
	return
}

func (collector *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.received
	ch <- collector.written
	ch <- collector.duplicates
	ch <- collector.aggregates
	ch <- collector.writeErrors
	ch <- collector.panics
	ch <- collector.queueDepth
}

func (collector *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := collector.stats()

	ch <- prometheus.MustNewConstMetric(collector.received, prometheus.CounterValue, float64(stats.Received))
	ch <- prometheus.MustNewConstMetric(collector.written, prometheus.CounterValue, float64(stats.Written))
	ch <- prometheus.MustNewConstMetric(collector.duplicates, prometheus.CounterValue, float64(stats.Duplicates))
	ch <- prometheus.MustNewConstMetric(collector.aggregates, prometheus.CounterValue, float64(stats.Aggregates))
	ch <- prometheus.MustNewConstMetric(collector.writeErrors, prometheus.CounterValue, float64(stats.WriteErrors))
	ch <- prometheus.MustNewConstMetric(collector.panics, prometheus.CounterValue, float64(stats.Panics))
	ch <- prometheus.MustNewConstMetric(collector.queueDepth, prometheus.GaugeValue, float64(stats.QueueDepth))
}
