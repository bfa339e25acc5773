// Package loadgen submits synthetic transfers to a chain.
package loadgen

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/goodnatureofminers/powledger/internal/pow/model"
	"github.com/goodnatureofminers/powledger/pkg/workerpool"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// DefaultAccounts are used when Config.Accounts is empty.
var DefaultAccounts = []string{"alice", "bob", "carol", "dave", "erin", "frank"}

// Submitter accepts transfers.
type Submitter interface {
	SubmitTransaction(sender, recipient string)
}

// Config describes a load run.
type Config struct {
	Transfers int
	Workers   int
	// RPS caps submissions per second across all workers; zero means unlimited.
	RPS      int
	Accounts []string
	Seed     int64
}

// Generator submits a fixed plan of transfers from several workers.
type Generator struct {
	submitter Submitter
	limiter   ratelimit.Limiter
	workers   int
	plan      []model.Transaction
	logger    *zap.Logger
}

// New builds a Generator and its transfer plan.
func New(submitter Submitter, cfg Config, logger *zap.Logger) (*Generator, error) {
	if submitter == nil {
		return nil, errors.New("submitter is required")
	}
	if cfg.Transfers < 0 || cfg.RPS < 0 {
		return nil, errors.New("transfers and rps must not be negative")
	}
	accounts := cfg.Accounts
	if len(accounts) == 0 {
		accounts = DefaultAccounts
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &Generator{
		submitter: submitter,
		limiter:   limiter,
		workers:   cfg.Workers,
		plan:      Plan(cfg.Transfers, accounts, cfg.Seed),
		logger:    logger,
	}, nil
}

// Plan returns n transfers between accounts, deterministic for a seed.
// Sender and recipient differ whenever more than one account exists.
func Plan(n int, accounts []string, seed int64) []model.Transaction {
	rng := rand.New(rand.NewSource(seed))
	out := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		s := rng.Intn(len(accounts))
		r := rng.Intn(len(accounts))
		if len(accounts) > 1 && r == s {
			r = (r + 1) % len(accounts)
		}
		out = append(out, model.Transaction{Sender: accounts[s], Recipient: accounts[r]})
	}
	return out
}

// Run submits the plan and returns when done or when ctx is canceled.
func (g *Generator) Run(ctx context.Context) error {
	started := time.Now()
	g.logger.Info("load started", zap.Int("transfers", len(g.plan)), zap.Int("workers", g.workers))

	err := workerpool.Each(ctx, g.workers, g.plan, func(ctx context.Context, _ int, tx model.Transaction) error {
		g.limiter.Take()
		if err := ctx.Err(); err != nil {
			return err
		}
		g.submitter.SubmitTransaction(tx.Sender, tx.Recipient)
		return nil
	})
	if err != nil {
		g.logger.Warn("load interrupted", zap.Error(err))
		return err
	}

	g.logger.Info("load finished", zap.Int("transfers", len(g.plan)), zap.Duration("took", time.Since(started)))
	return nil
}
