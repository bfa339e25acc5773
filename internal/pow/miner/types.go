package miner

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveMine(err error, transactions int, attempts uint64, started time.Time)
		ObserveVerify(err error, blocks int, started time.Time)
	}
)
