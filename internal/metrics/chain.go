package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	poolSubmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powledger",
		Subsystem: "pool",
		Name:      "submitted_total",
		Help:      "Count of transactions submitted to the pool.",
	}, []string{"chain"})

	poolSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "powledger",
		Subsystem: "pool",
		Name:      "size",
		Help:      "Pending transactions in the pool.",
	}, []string{"chain"})

	ledgerHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "powledger",
		Subsystem: "ledger",
		Name:      "height",
		Help:      "Number of sealed blocks in the ledger.",
	}, []string{"chain"})
)

// Chain tracks pool and ledger gauges for the chain facade.
type Chain struct {
	chain string
}

// NewChain constructs Chain metrics labeled with chain.
func NewChain(chain string) *Chain {
	if chain == "" {
		chain = "unknown"
	}
	return &Chain{chain: chain}
}

// ObserveSubmit counts a submitted transaction.
func (m Chain) ObserveSubmit() {
	poolSubmittedTotal.WithLabelValues(m.chain).Inc()
}

// SetPoolSize records the current pool size.
func (m Chain) SetPoolSize(n int) {
	poolSize.WithLabelValues(m.chain).Set(float64(n))
}

// SetHeight records the current ledger length.
func (m Chain) SetHeight(n int) {
	ledgerHeight.WithLabelValues(m.chain).Set(float64(n))
}
