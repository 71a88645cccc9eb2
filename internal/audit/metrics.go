package audit

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"s3audit/internal/models"
)

// Metrics are the audit's prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	bucketsAudited *prometheus.CounterVec
	checkFailures  *prometheus.CounterVec
	auditDuration  prometheus.Histogram
	lastAudit      prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bucketsAudited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "s3audit",
				Name:      "buckets_audited_total",
				Help:      "Buckets audited, by fully-private outcome",
			},
			[]string{"fully_private"},
		),
		checkFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "s3audit",
				Name:      "check_failures_total",
				Help:      "Public access block queries that failed, by reason",
			},
			[]string{"reason"},
		),
		auditDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "s3audit",
				Name:      "audit_duration_seconds",
				Help:      "Wall time of a complete audit",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
			},
		),
		lastAudit: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "s3audit",
				Name:      "last_audit_timestamp_seconds",
				Help:      "Unix time of the last completed audit",
			},
		),
	}

	for _, kind := range models.FailureKinds {
		m.checkFailures.WithLabelValues(string(kind))
	}

	if reg != nil {
		reg.MustRegister(m.bucketsAudited, m.checkFailures, m.auditDuration, m.lastAudit)
	}
	return m
}

func (m *Metrics) observeCheck(r CheckResult) {
	if m == nil || !r.Failed() {
		return
	}
	m.checkFailures.WithLabelValues(string(r.Kind)).Inc()
}

func (m *Metrics) observeAudit(report models.Report, elapsed time.Duration) {
	if m == nil {
		return
	}
	for _, e := range report {
		m.bucketsAudited.WithLabelValues(strconv.FormatBool(e.FullyPrivate)).Inc()
	}
	m.auditDuration.Observe(elapsed.Seconds())
	m.lastAudit.SetToCurrentTime()
}
