// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	minerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "miner",
		Name:      "blocks_total",
		Help:      "Count of mining attempts by outcome.",
	}, []string{"chain", "status"})

	minerMineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powledger",
		Subsystem: "miner",
		Name:      "mine_duration_seconds",
		Help:      "Duration of a mining call including lock wait.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"chain", "status"})

	minerHashAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powledger",
		Subsystem: "miner",
		Name:      "hash_attempts",
		Help:      "Digests computed per mining call.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"chain"})

	minerBlockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powledger",
		Subsystem: "miner",
		Name:      "block_transactions",
		Help:      "Transactions drained per mining call.",
		Buckets:   prometheus.LinearBuckets(0, 1, 11),
	}, []string{"chain"})

	minerVerifyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "miner",
		Name:      "verify_total",
		Help:      "Count of ledger verifications by outcome.",
	}, []string{"chain", "status"})

	minerVerifyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powledger",
		Subsystem: "miner",
		Name:      "verify_duration_seconds",
		Help:      "Duration of a ledger verification.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	minerVerifiedBlocks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "powledger",
		Subsystem: "miner",
		Name:      "verified_blocks",
		Help:      "Number of blocks covered by the last verification.",
	}, []string{"chain"})
)

// Miner tracks metrics for the mining engine.
type Miner struct {
	chain string
}

// NewMiner constructs Miner metrics labeled with chain.
func NewMiner(chain string) *Miner {
	if chain == "" {
		chain = "unknown"
	}
	return &Miner{chain: chain}
}

// ObserveMine records a mining call outcome.
func (m Miner) ObserveMine(err error, transactions int, attempts uint64, started time.Time) {
	status := statusOf(err)
	minerBlocksTotal.WithLabelValues(m.chain, status).Inc()
	minerMineDuration.WithLabelValues(m.chain, status).Observe(time.Since(started).Seconds())
	minerHashAttempts.WithLabelValues(m.chain).Observe(float64(attempts))
	minerBlockTransactions.WithLabelValues(m.chain).Observe(float64(transactions))
}

// ObserveVerify records a ledger verification outcome.
func (m Miner) ObserveVerify(err error, blocks int, started time.Time) {
	status := statusOf(err)
	minerVerifyTotal.WithLabelValues(m.chain, status).Inc()
	minerVerifyDuration.WithLabelValues(m.chain, status).Observe(time.Since(started).Seconds())
	if err == nil {
		minerVerifiedBlocks.WithLabelValues(m.chain).Set(float64(blocks))
	}
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
