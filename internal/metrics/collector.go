package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// JobStats provides the metrics collector access to scheduler state.
type JobStats interface {
	JobCount() int
	LastRunTimes() map[string]time.Time
	LastSuccessTimes() map[string]time.Time
}

// Collector implements prometheus.Collector to read live scheduler
// gauges at scrape time.
type Collector struct {
	stats JobStats

	jobsRegistered *prometheus.Desc
	lastRun        *prometheus.Desc
	lastSuccess    *prometheus.Desc
}

// NewCollector creates a collector that reads live state at scrape time.
// stats may be nil when running in one-shot mode (gauges report 0).
func NewCollector(stats JobStats) *Collector {
	return &Collector{
		stats: stats,
		jobsRegistered: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "jobs_registered"),
			"Number of jobs registered with the scheduler.",
			nil, nil,
		),
		lastRun: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "job", "last_run_timestamp_seconds"),
			"Unix time of the job's most recent run.",
			[]string{"job"}, nil,
		),
		lastSuccess: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "job", "last_success_timestamp_seconds"),
			"Unix time of the job's most recent successful run.",
			[]string{"job"}, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.jobsRegistered
	ch <- c.lastRun
	ch <- c.lastSuccess
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.stats == nil {
		ch <- prometheus.MustNewConstMetric(c.jobsRegistered, prometheus.GaugeValue, 0)
		return
	}

	ch <- prometheus.MustNewConstMetric(c.jobsRegistered, prometheus.GaugeValue, float64(c.stats.JobCount()))
	for job, at := range c.stats.LastRunTimes() {
		ch <- prometheus.MustNewConstMetric(c.lastRun, prometheus.GaugeValue, float64(at.Unix()), job)
	}
	for job, at := range c.stats.LastSuccessTimes() {
		ch <- prometheus.MustNewConstMetric(c.lastSuccess, prometheus.GaugeValue, float64(at.Unix()), job)
	}
}
