package service

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/powledger/internal/clock"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// MinerConfig tunes the mining loop.
type MinerConfig struct {
	// RPS caps mining calls per second; zero means unlimited.
	RPS int
	// MineEmpty seals blocks even when the pool is empty.
	MineEmpty bool
	// IdleSleep is the wait after finding nothing to mine.
	IdleSleep time.Duration
}

// MinerService repeatedly mines blocks until its context is canceled.
// A running search is never interrupted; cancellation only stops new ones.
type MinerService struct {
	logger    *zap.Logger
	chain     Chain
	limiter   ratelimit.Limiter
	sleep     func(context.Context, time.Duration) error
	idleSleep time.Duration
	mineEmpty bool
	backoff   clock.Backoff
	failures  int
}

// NewMinerService builds a MinerService for chain.
func NewMinerService(chain Chain, cfg MinerConfig, logger *zap.Logger) (*MinerService, error) {
	if chain == nil {
		return nil, errors.New("chain is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.RPS < 0 {
		return nil, errors.New("miner rps must not be negative")
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	idle := cfg.IdleSleep
	if idle <= 0 {
		idle = idleSleepDuration
	}

	return &MinerService{
		logger:    logger,
		chain:     chain,
		limiter:   limiter,
		sleep:     clock.Sleep,
		idleSleep: idle,
		mineEmpty: cfg.MineEmpty,
		backoff:   clock.Backoff{Base: backoffBase, Max: backoffMax},
	}, nil
}

// Run starts the mining loop until the context is canceled.
func (s *MinerService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.failures++
			delay := s.backoff.Delay(s.failures)
			s.logger.Warn("mining iteration failed, backing off",
				zap.Error(err),
				zap.Int("failures", s.failures),
				zap.Duration("sleep", delay),
			)
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		s.failures = 0
	}
}

func (s *MinerService) run(ctx context.Context) error {
	s.limiter.Take()

	pending := s.chain.PendingCount()
	if pending == 0 && !s.mineEmpty {
		s.logger.Debug("pool empty; sleeping", zap.Duration("sleep", s.idleSleep))
		return s.sleep(ctx, s.idleSleep)
	}

	block, err := s.chain.Mine()
	if err != nil {
		s.logger.Error("mine failed", zap.Error(err), zap.Int("pending", pending))
		return err
	}

	s.logger.Info("block mined",
		zap.Uint64("id", block.ID),
		zap.Int("transactions", len(block.Transactions)),
		zap.Uint64("nonce", block.Nonce),
		zap.String("hash", block.Hash),
	)
	return nil
}
