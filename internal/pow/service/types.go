package service

import (
	"context"

	"github.com/goodnatureofminers/powledger/internal/pow/miner"
	"github.com/goodnatureofminers/powledger/internal/pow/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Engine interface {
		Mine() (model.Block, error)
		Verify(ctx context.Context) error
		Target() *miner.Target
		MaxTransactions() int
	}
	ChainMetrics interface {
		ObserveSubmit()
		SetPoolSize(n int)
		SetHeight(n int)
	}
	Chain interface {
		Mine() (model.Block, error)
		PendingCount() int
	}
)
