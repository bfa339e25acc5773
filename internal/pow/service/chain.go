// Package service wires the pool, ledger and mining engine into a chain and
// runs the mining loop.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/powledger/internal/pow/ledger"
	"github.com/goodnatureofminers/powledger/internal/pow/mempool"
	"github.com/goodnatureofminers/powledger/internal/pow/miner"
	"github.com/goodnatureofminers/powledger/internal/pow/model"
	"go.uber.org/zap"
)

// ChainService is the in-process API of the ledger.
type ChainService struct {
	pool    *mempool.Pool
	ledger  *ledger.Ledger
	engine  Engine
	metrics ChainMetrics
	logger  *zap.Logger
}

// NewChainService builds a ChainService over existing components.
func NewChainService(
	pool *mempool.Pool,
	chain *ledger.Ledger,
	engine Engine,
	metrics ChainMetrics,
	logger *zap.Logger,
) (*ChainService, error) {
	if pool == nil || chain == nil {
		return nil, errors.New("pool and ledger are required")
	}
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	if metrics == nil {
		return nil, errors.New("chain metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &ChainService{
		pool:    pool,
		ledger:  chain,
		engine:  engine,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// NewChain builds a fresh pool, ledger and engine and wraps them.
func NewChain(
	target *miner.Target,
	minerMetrics miner.Metrics,
	chainMetrics ChainMetrics,
	logger *zap.Logger,
	opts ...miner.Option,
) (*ChainService, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	pool := mempool.New()
	chain := ledger.New()

	engine, err := miner.NewEngine(pool, chain, target, minerMetrics, logger.Named("miner"), opts...)
	if err != nil {
		return nil, fmt.Errorf("init engine: %w", err)
	}
	return NewChainService(pool, chain, engine, chainMetrics, logger.Named("chain"))
}

// SubmitTransaction adds a transfer to the pool. It never fails.
func (s *ChainService) SubmitTransaction(sender, recipient string) {
	s.pool.SubmitTransfer(sender, recipient)
	s.metrics.ObserveSubmit()
	s.metrics.SetPoolSize(s.pool.Size())
}

// Mine seals the next block. See miner.Engine.Mine.
func (s *ChainService) Mine() (model.Block, error) {
	block, err := s.engine.Mine()
	s.metrics.SetPoolSize(s.pool.Size())
	s.metrics.SetHeight(s.ledger.Len())
	return block, err
}

// Blocks returns a copy of all sealed blocks in order.
func (s *ChainService) Blocks() []model.Block {
	return s.ledger.Blocks()
}

// Pool returns a copy of the pending transactions.
func (s *ChainService) Pool() []model.Transaction {
	return s.pool.Snapshot()
}

// PendingCount returns the number of pending transactions.
func (s *ChainService) PendingCount() int {
	return s.pool.Size()
}

// Height returns the number of sealed blocks.
func (s *ChainService) Height() int {
	return s.ledger.Len()
}

// MaxTransactions returns the per-block batch bound.
func (s *ChainService) MaxTransactions() int {
	return s.engine.MaxTransactions()
}

// PoolStats returns pool counters.
func (s *ChainService) PoolStats() mempool.Stats {
	return s.pool.Stats()
}

// Verify re-checks every sealed block.
func (s *ChainService) Verify(ctx context.Context) error {
	if err := s.engine.Verify(ctx); err != nil {
		s.logger.Error("ledger verification failed", zap.Error(err), zap.Int("height", s.ledger.Len()))
		return fmt.Errorf("verify ledger: %w", err)
	}
	return nil
}

// ChainWork returns the expected total work behind the ledger.
func (s *ChainService) ChainWork() *big.Int {
	perBlock := s.engine.Target().Work()
	return perBlock.Mul(perBlock, big.NewInt(int64(s.ledger.Len())))
}
