package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/powledger/internal/metrics"
	"github.com/goodnatureofminers/powledger/internal/pow/loadgen"
	"github.com/goodnatureofminers/powledger/internal/pow/miner"
	"github.com/goodnatureofminers/powledger/internal/pow/service"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Chain           string        `long:"chain" env:"POW_NODE_CHAIN" description:"chain label for logs and metrics" default:"devnet"`
	Target          string        `long:"target" env:"POW_NODE_TARGET" description:"difficulty target as hex"`
	MaxTransactions int           `long:"max-transactions" env:"POW_NODE_MAX_TRANSACTIONS" description:"transactions per block" default:"10"`
	MaxAttempts     uint64        `long:"max-attempts" env:"POW_NODE_MAX_ATTEMPTS" description:"nonce search cap, 0 for unbounded" default:"0"`
	MineRPS         int           `long:"mine-rps" env:"POW_NODE_MINE_RPS" description:"mining calls per second, 0 for unlimited" default:"2"`
	MineEmpty       bool          `long:"mine-empty" env:"POW_NODE_MINE_EMPTY" description:"seal blocks when the pool is empty"`
	IdleSleep       time.Duration `long:"idle-sleep" env:"POW_NODE_IDLE_SLEEP" description:"wait when there is nothing to mine" default:"500ms"`
	VerifyWorkers   int           `long:"verify-workers" env:"POW_NODE_VERIFY_WORKERS" description:"parallel block verifications" default:"4"`
	LoadTransfers   int           `long:"load-transfers" env:"POW_NODE_LOAD_TRANSFERS" description:"synthetic transfers to submit" default:"0"`
	LoadWorkers     int           `long:"load-workers" env:"POW_NODE_LOAD_WORKERS" description:"concurrent synthetic submitters" default:"4"`
	LoadRPS         int           `long:"load-rps" env:"POW_NODE_LOAD_RPS" description:"synthetic transfers per second, 0 for unlimited" default:"20"`
	LoadSeed        int64         `long:"load-seed" env:"POW_NODE_LOAD_SEED" description:"seed for the synthetic transfer plan" default:"1"`
	MetricsAddr     string        `long:"metrics-addr" env:"POW_NODE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger.With(zap.String("chain", cfg.Chain))); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("pow node failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	target := miner.DefaultTarget()
	if cfg.Target != "" {
		parsed, err := miner.ParseTarget(cfg.Target)
		if err != nil {
			return err
		}
		target = parsed
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	chain, err := service.NewChain(
		target,
		metrics.NewMiner(cfg.Chain),
		metrics.NewChain(cfg.Chain),
		logger,
		miner.WithMaxTransactions(cfg.MaxTransactions),
		miner.WithMaxAttempts(cfg.MaxAttempts),
		miner.WithVerifyWorkers(cfg.VerifyWorkers),
	)
	if err != nil {
		return fmt.Errorf("init chain: %w", err)
	}

	minerSvc, err := service.NewMinerService(chain, service.MinerConfig{
		RPS:       cfg.MineRPS,
		MineEmpty: cfg.MineEmpty,
		IdleSleep: cfg.IdleSleep,
	}, logger.Named("minerService"))
	if err != nil {
		return fmt.Errorf("init miner service: %w", err)
	}

	if cfg.LoadTransfers > 0 {
		gen, err := loadgen.New(chain, loadgen.Config{
			Transfers: cfg.LoadTransfers,
			Workers:   cfg.LoadWorkers,
			RPS:       cfg.LoadRPS,
			Seed:      cfg.LoadSeed,
		}, logger.Named("loadgen"))
		if err != nil {
			return fmt.Errorf("init load generator: %w", err)
		}
		go func() {
			if err := gen.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("load generator failed", zap.Error(err))
			}
		}()
	}

	logger.Info("mining started",
		zap.String("target", target.String()),
		zap.Uint32("bits", target.Bits()),
		zap.Int("max_transactions", chain.MaxTransactions()),
	)
	runErr := minerSvc.Run(ctx)

	verifyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := chain.Verify(verifyCtx); err != nil {
		return err
	}

	stats := chain.PoolStats()
	logger.Info("mining stopped",
		zap.Int("height", chain.Height()),
		zap.String("chain_work", chain.ChainWork().String()),
		zap.Int("pending", stats.Size),
		zap.Uint64("submitted", stats.Submitted),
		zap.Uint64("drained", stats.Drained),
	)
	return runErr
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
