// Package mempool holds transactions between submission and mining.
package mempool

import (
	"sync"

	"github.com/goodnatureofminers/powledger/internal/pow/model"
)

// Stats describes pool activity since creation.
type Stats struct {
	Size      int    `json:"size"`
	Submitted uint64 `json:"submitted"`
	Drained   uint64 `json:"drained"`
}

// Pool is a mutex-guarded stack of pending transactions.
// Drains take the most recently submitted transactions first.
type Pool struct {
	mu        sync.Mutex
	pending   []model.Transaction
	submitted uint64
	drained   uint64
}

// New constructs an empty Pool.
func New() *Pool {
	return &Pool{pending: make([]model.Transaction, 0)}
}

// Submit adds a transaction to the pool. It never fails.
func (p *Pool) Submit(tx model.Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending = append(p.pending, tx)
	p.submitted++
}

// SubmitTransfer builds a transaction from sender and recipient and submits it.
func (p *Pool) SubmitTransfer(sender, recipient string) {
	p.Submit(model.Transaction{Sender: sender, Recipient: recipient})
}

// DrainBatch removes up to max transactions, newest first.
func (p *Pool) DrainBatch(max int) []model.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	return (&Locked{p: p}).DrainBatch(max)
}

// Snapshot returns a copy of the pending transactions in submission order.
func (p *Pool) Snapshot() []model.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]model.Transaction, len(p.pending))
	copy(out, p.pending)
	return out
}

// Size returns the number of pending transactions.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Stats returns pool counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Stats{
		Size:      len(p.pending),
		Submitted: p.submitted,
		Drained:   p.drained,
	}
}

// Locked runs fn while holding the pool lock.
// The view passed to fn must not escape fn.
func (p *Pool) Locked(fn func(*Locked) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return fn(&Locked{p: p})
}

// Locked is a view of the pool valid only while its lock is held.
type Locked struct {
	p *Pool
}

// Len returns the number of pending transactions.
func (l *Locked) Len() int {
	return len(l.p.pending)
}

// DrainBatch removes up to max transactions, newest first.
func (l *Locked) DrainBatch(max int) []model.Transaction {
	n := len(l.p.pending)
	if max > n {
		max = n
	}
	if max <= 0 {
		return make([]model.Transaction, 0)
	}

	batch := make([]model.Transaction, 0, max)
	for i := n - 1; i >= n-max; i-- {
		batch = append(batch, l.p.pending[i])
		l.p.pending[i] = model.Transaction{}
	}
	l.p.pending = l.p.pending[:n-max]
	l.p.drained += uint64(max)

	return batch
}

// Restore puts a drained batch back so the next drain returns it in the same order.
func (l *Locked) Restore(batch []model.Transaction) {
	for i := len(batch) - 1; i >= 0; i-- {
		l.p.pending = append(l.p.pending, batch[i])
	}
	l.p.drained -= uint64(len(batch))
}
