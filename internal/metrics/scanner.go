// Package metrics exposes prometheus instrumentation for the block scanner.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockfinder7000",
		Subsystem: "scanner",
		Name:      "records_total",
		Help:      "Count of records decoded during scans.",
	}, []string{"network", "status"})

	scannerRecordDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockfinder7000",
		Subsystem: "scanner",
		Name:      "record_decode_duration_seconds",
		Help:      "Duration of decoding a single record.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scannerScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockfinder7000",
		Subsystem: "scanner",
		Name:      "scans_total",
		Help:      "Count of completed scans.",
	}, []string{"network", "status"})

	scannerScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockfinder7000",
		Subsystem: "scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of a whole scan.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Scanner records scan progress under a fixed network label.
type Scanner struct {
	network string
}

func NewScanner(network string) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

func (m Scanner) ObserveRecord(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerRecordsTotal.WithLabelValues(m.network, status).Inc()
	scannerRecordDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
}

func (m Scanner) ObserveScan(err error, height uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerScansTotal.WithLabelValues(m.network, status).Inc()
	scannerScanDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
}
