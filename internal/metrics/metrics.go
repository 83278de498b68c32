package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

// MetricsSubsystem is a subsystem shared by all metrics exposed by this package.
const MetricsSubsystem = "power"

// Metrics contains metrics exposed by the scheduled jobs.
type Metrics struct {
	// Number of power snapshots taken.
	SnapshotsTaken metrics.Counter
	// Number of allocation rows frozen into snapshots.
	SnapshotAllocationRows metrics.Counter
	// Number of balance placeholders filled by the reconciler.
	BalancesFilled metrics.Counter
	// Number of balance placeholders left for a later cycle because the balance source lags.
	BalancesSkippedStale metrics.Gauge
	// Number of snapshots flagged synced.
	SnapshotsSynced metrics.Counter
	// Number of snapshots assigned to a round.
	SnapshotsAssigned metrics.Counter
	// Number of rank change notifications enqueued.
	RankChangesEnqueued metrics.Counter
	// Number of outbox events published.
	OutboxPublished metrics.Counter
	// Number of failed job cycles, labelled by job.
	JobFailures metrics.Counter
	// Duration of job cycles in seconds, labelled by job.
	JobDurationSeconds metrics.Histogram
	// The current round.
	CurrentRound metrics.Gauge
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
func PrometheusMetrics(namespace string) *Metrics {
	return &Metrics{
		SnapshotsTaken: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "snapshots_taken_total",
			Help:      "Number of power snapshots taken.",
		}, []string{}),
		SnapshotAllocationRows: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "snapshot_allocation_rows_total",
			Help:      "Number of allocation rows frozen into snapshots.",
		}, []string{}),
		BalancesFilled: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "balances_filled_total",
			Help:      "Number of balance placeholders filled.",
		}, []string{}),
		BalancesSkippedStale: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "balances_pending_stale",
			Help:      "Balance placeholders newer than the balance source's latest complete instant.",
		}, []string{}),
		SnapshotsSynced: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "snapshots_synced_total",
			Help:      "Number of snapshots flagged synced.",
		}, []string{}),
		SnapshotsAssigned: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "snapshots_assigned_total",
			Help:      "Number of snapshots assigned to a round.",
		}, []string{}),
		RankChangesEnqueued: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "rank_changes_enqueued_total",
			Help:      "Number of rank change notifications enqueued.",
		}, []string{}),
		OutboxPublished: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "outbox_published_total",
			Help:      "Number of outbox events published.",
		}, []string{}),
		JobFailures: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "job_failures_total",
			Help:      "Number of failed job cycles.",
		}, []string{"job"}),
		JobDurationSeconds: prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "job_duration_seconds",
			Help:      "Duration of job cycles.",
			Buckets:   stdprometheus.ExponentialBuckets(0.05, 2, 14),
		}, []string{"job"}),
		CurrentRound: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "current_round",
			Help:      "The current round.",
		}, []string{}),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		SnapshotsTaken:         discard.NewCounter(),
		SnapshotAllocationRows: discard.NewCounter(),
		BalancesFilled:         discard.NewCounter(),
		BalancesSkippedStale:   discard.NewGauge(),
		SnapshotsSynced:        discard.NewCounter(),
		SnapshotsAssigned:      discard.NewCounter(),
		RankChangesEnqueued:    discard.NewCounter(),
		OutboxPublished:        discard.NewCounter(),
		JobFailures:            discard.NewCounter(),
		JobDurationSeconds:     discard.NewHistogram(),
		CurrentRound:           discard.NewGauge(),
	}
}
