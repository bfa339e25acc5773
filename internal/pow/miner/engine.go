package miner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/powledger/internal/pow/ledger"
	"github.com/goodnatureofminers/powledger/internal/pow/mempool"
	"github.com/goodnatureofminers/powledger/internal/pow/model"
	"go.uber.org/zap"
)

const defaultVerifyWorkers = 4

// Option customizes an Engine.
type Option func(*Engine)

// WithMaxTransactions sets the batch size drained per block.
func WithMaxTransactions(n int) Option {
	return func(e *Engine) { e.maxTransactions = n }
}

// WithMaxAttempts caps the nonce search. Zero means unbounded.
func WithMaxAttempts(n uint64) Option {
	return func(e *Engine) { e.maxAttempts = n }
}

// WithVerifyWorkers sets the parallelism of Verify.
func WithVerifyWorkers(n int) Option {
	return func(e *Engine) { e.verifyWorkers = n }
}

// Engine drains pool batches and seals them into ledger blocks.
type Engine struct {
	pool    *mempool.Pool
	ledger  *ledger.Ledger
	target  *Target
	metrics Metrics
	logger  *zap.Logger

	maxTransactions int
	maxAttempts     uint64
	verifyWorkers   int
	digest          func([]byte) string
}

// NewEngine builds an Engine over pool and ledger.
func NewEngine(
	pool *mempool.Pool,
	chain *ledger.Ledger,
	target *Target,
	metrics Metrics,
	logger *zap.Logger,
	opts ...Option,
) (*Engine, error) {
	if pool == nil {
		return nil, errors.New("pool is required")
	}
	if chain == nil {
		return nil, errors.New("ledger is required")
	}
	if target == nil {
		return nil, errors.New("target is required")
	}
	if metrics == nil {
		return nil, errors.New("miner metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	e := &Engine{
		pool:            pool,
		ledger:          chain,
		target:          target,
		metrics:         metrics,
		logger:          logger.With(zap.String("target", target.String())),
		maxTransactions: model.MaxTransactionsPerBlock,
		verifyWorkers:   defaultVerifyWorkers,
		digest:          Digest,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.maxTransactions <= 0 {
		return nil, fmt.Errorf("max transactions must be positive, got %d", e.maxTransactions)
	}

	return e, nil
}

// Target returns the engine's difficulty target.
func (e *Engine) Target() *Target {
	return e.target
}

// MaxTransactions returns the per-block batch bound.
func (e *Engine) MaxTransactions() int {
	return e.maxTransactions
}

// Mine drains a batch, searches for a qualifying nonce and appends the sealed
// block. An empty pool yields a block without transactions.
//
// The pool lock and then the ledger lock are held for the whole call, so
// concurrent Mine calls never interleave and submitters wait until the block
// is appended. On ErrHashParse the drained batch is dropped; on any other
// failure it is restored to the pool.
func (e *Engine) Mine() (model.Block, error) {
	started := time.Now()

	var (
		sealed model.Block
		batch  int
		proof  Proof
	)
	err := e.pool.Locked(func(pending *mempool.Locked) error {
		return e.ledger.Locked(func(chain *ledger.Locked) error {
			id, err := chain.NextID()
			if err != nil {
				return err
			}

			txs := pending.DrainBatch(e.maxTransactions)
			batch = len(txs)

			pre, err := NewPreimage(id, txs)
			if err != nil {
				pending.Restore(txs)
				return err
			}

			proof, err = search(pre, e.target, e.maxAttempts, e.digest)
			if err != nil {
				if !errors.Is(err, ErrHashParse) {
					pending.Restore(txs)
				}
				return err
			}

			candidate := model.Block{
				ID:           id,
				Transactions: txs,
				Nonce:        proof.Nonce,
				Hash:         proof.Hash,
			}
			if err := chain.Append(candidate); err != nil {
				pending.Restore(txs)
				return err
			}
			sealed = candidate.Clone()
			return nil
		})
	})
	e.metrics.ObserveMine(err, batch, proof.Attempts, started)

	if err != nil {
		e.logger.Error("mine block failed",
			zap.Error(err),
			zap.Int("transactions", batch),
			zap.Uint64("attempts", proof.Attempts),
		)
		return model.Block{}, fmt.Errorf("mine block: %w", err)
	}

	e.logger.Debug("block sealed",
		zap.Uint64("id", sealed.ID),
		zap.Int("transactions", len(sealed.Transactions)),
		zap.Uint64("nonce", sealed.Nonce),
		zap.String("hash", sealed.Hash),
		zap.Uint64("attempts", proof.Attempts),
		zap.Duration("took", time.Since(started)),
	)
	return sealed, nil
}

// Verify re-checks every block in the ledger.
func (e *Engine) Verify(ctx context.Context) error {
	started := time.Now()
	blocks := e.ledger.Blocks()

	err := VerifyChain(ctx, blocks, e.target, e.maxTransactions, e.verifyWorkers)
	e.metrics.ObserveVerify(err, len(blocks), started)
	return err
}
