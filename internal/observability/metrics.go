package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for PoolLedger.
type Metrics struct {
	// --- Core Processing ---
	CoreOpsApplied  *prometheus.CounterVec
	CoreOpsRejected *prometheus.CounterVec
	CoreOpDuration  *prometheus.HistogramVec
	CoreEntries     *prometheus.CounterVec
	CoreSequence    prometheus.Gauge

	// --- Latency ---
	IngestToApply   *prometheus.HistogramVec
	NATSPullLatency *prometheus.HistogramVec
	PersistBatchDur prometheus.Histogram
	ProjectionUpdateDur *prometheus.HistogramVec

	// --- Channel & Backpressure ---
	ChannelSize         *prometheus.GaugeVec
	ChannelCapacity     *prometheus.GaugeVec
	ChannelUtilization  *prometheus.GaugeVec
	ProjectionDrops     *prometheus.CounterVec
	PublishDrops        prometheus.Counter
	PersistBackpressure prometheus.Counter

	// --- Idempotency & Ordering ---
	IdempotencyDuplicates *prometheus.CounterVec
	DedupLRUSize          prometheus.Gauge
	DedupLRUEvictions     prometheus.Counter
	OpSequenceGap         *prometheus.CounterVec
	OpOutOfOrder          *prometheus.CounterVec

	// --- Settlement ---
	SettlementRuns        *prometheus.CounterVec
	SettlementDistributed prometheus.Counter
	SettlementAppsRanked  prometheus.Histogram
	SettlementRewardDust  prometheus.Counter
	WindowResets          *prometheus.CounterVec
	PoolBalance           prometheus.Gauge

	// --- Persistence ---
	PersistOpsWritten     prometheus.Counter
	PersistEntriesWritten prometheus.Counter
	PersistBatchSize      prometheus.Histogram
	PersistErrors         *prometheus.CounterVec
	PersistRetry          prometheus.Counter
	PersistLastSequence   prometheus.Gauge

	// --- Snapshot ---
	SnapshotTaken     prometheus.Counter
	SnapshotDuration  prometheus.Histogram
	SnapshotSizeBytes prometheus.Gauge
	SnapshotLastSeq   prometheus.Gauge
	ReplayOpsTotal    prometheus.Counter
	ReplayDuration    prometheus.Gauge

	// --- Query API ---
	QueryRequests *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	latencyBuckets := []float64{
		0.000001, 0.000005, 0.00001, 0.000025, 0.00005,
		0.0001, 0.00025, 0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	ingestBuckets := []float64{
		0.00001, 0.000025, 0.00005, 0.0001, 0.00025,
		0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	return &Metrics{
		// Core Processing
		CoreOpsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_core_ops_applied_total",
			Help: "Operations accepted and applied by core",
		}, []string{"op_type"}),

		CoreOpsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_core_ops_rejected_total",
			Help: "Operations rejected (dedup, gap, precondition, authorization)",
		}, []string{"op_type", "reason"}),

		CoreOpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pool_core_op_apply_duration_seconds",
			Help:    "Time to apply a single operation in core",
			Buckets: latencyBuckets,
		}, []string{"op_type"}),

		CoreEntries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_core_entries_generated_total",
			Help: "Ledger entries generated",
		}, []string{"entry_type"}),

		CoreSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pool_core_sequence",
			Help: "Current global sequence number",
		}),

		// Latency
		IngestToApply: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pool_ingest_to_apply_seconds",
			Help:    "NATS receive to core apply complete",
			Buckets: ingestBuckets,
		}, []string{"op_type"}),

		NATSPullLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pool_nats_pull_latency_seconds",
			Help:    "NATS pull request latency",
			Buckets: ingestBuckets,
		}, []string{"subject"}),

		PersistBatchDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pool_persist_batch_duration_seconds",
			Help:    "Postgres batch write duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		ProjectionUpdateDur: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pool_projection_update_duration_seconds",
			Help:    "Projection table update duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"projection"}),

		// Channel & Backpressure
		ChannelSize: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pool_channel_size",
			Help: "Current items in channel",
		}, []string{"name"}),

		ChannelCapacity: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pool_channel_capacity",
			Help: "Channel capacity (constant)",
		}, []string{"name"}),

		ChannelUtilization: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pool_channel_utilization",
			Help: "Channel size / capacity (0.0-1.0)",
		}, []string{"name"}),

		ProjectionDrops: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_projection_drops_total",
			Help: "Outputs dropped due to full projection channel",
		}, []string{"projection"}),

		PublishDrops: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pool_publish_drops_total",
			Help: "Outputs dropped due to full publish channel",
		}),

		PersistBackpressure: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pool_persist_backpressure_total",
			Help: "Times core blocked on persist channel",
		}),

		// Idempotency & Ordering
		IdempotencyDuplicates: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_idempotency_duplicates_total",
			Help: "Duplicates caught (lru/postgres)",
		}, []string{"op_type", "tier"}),

		DedupLRUSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pool_dedup_lru_size",
			Help: "Current LRU occupancy",
		}),

		DedupLRUEvictions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pool_dedup_lru_evictions_total",
			Help: "LRU evictions",
		}),

		OpSequenceGap: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_op_sequence_gap_total",
			Help: "Source sequence gaps",
		}, []string{"partition"}),

		OpOutOfOrder: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_op_out_of_order_total",
			Help: "Out-of-order rejections",
		}, []string{"partition"}),

		// Settlement
		SettlementRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_settlement_runs_total",
			Help: "Settlement passes by outcome (distributed/empty_pool/zero_distribution/rate_limited)",
		}, []string{"outcome"}),

		SettlementDistributed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pool_settlement_distributed_total",
			Help: "Total micro-units deducted from the pool by settlements",
		}),

		SettlementAppsRanked: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pool_settlement_apps_ranked",
			Help:    "Applications entering the reward table per settlement",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		}),

		SettlementRewardDust: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pool_settlement_reward_dust_total",
			Help: "Micro-units lost to floor division during apportionment",
		}),

		WindowResets: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_window_resets_total",
			Help: "Earnings window resets fired",
		}, []string{"window"}),

		PoolBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pool_reservoir_balance",
			Help: "Current global pool register",
		}),

		// Persistence
		PersistOpsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pool_persist_ops_written_total",
			Help: "Operations written to Postgres",
		}),

		PersistEntriesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pool_persist_entries_written_total",
			Help: "Ledger entries written to Postgres",
		}),

		PersistBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pool_persist_batch_size",
			Help:    "Operations per batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),

		PersistErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_persist_errors_total",
			Help: "Persistence errors",
		}, []string{"error_type"}),

		PersistRetry: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pool_persist_retry_total",
			Help: "Persistence retries",
		}),

		PersistLastSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pool_persist_last_sequence",
			Help: "Last persisted sequence",
		}),

		// Snapshot
		SnapshotTaken: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pool_snapshot_taken_total",
			Help: "Snapshots created",
		}),

		SnapshotDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pool_snapshot_duration_seconds",
			Help:    "Snapshot creation time",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		}),

		SnapshotSizeBytes: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pool_snapshot_size_bytes",
			Help: "Last snapshot size",
		}),

		SnapshotLastSeq: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pool_snapshot_last_sequence",
			Help: "Sequence of last snapshot",
		}),

		ReplayOpsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pool_replay_ops_total",
			Help: "Operations replayed on startup",
		}),

		ReplayDuration: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pool_replay_duration_seconds",
			Help: "Total replay time",
		}),

		// Query API
		QueryRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_query_requests_total",
			Help: "Query requests",
		}, []string{"endpoint", "status"}),

		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pool_query_duration_seconds",
			Help:    "Query latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"endpoint"}),

		QueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pool_query_errors_total",
			Help: "Query errors",
		}, []string{"endpoint", "code"}),
	}
}

// SetChannelMetrics updates channel utilization metrics.
func (m *Metrics) SetChannelMetrics(name string, size, capacity int) {
	m.ChannelSize.WithLabelValues(name).Set(float64(size))
	m.ChannelCapacity.WithLabelValues(name).Set(float64(capacity))
	if capacity > 0 {
		m.ChannelUtilization.WithLabelValues(name).Set(float64(size) / float64(capacity))
	}
}
