package miner

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/powledger/internal/pow/model"
	"github.com/goodnatureofminers/powledger/pkg/safe"
	"github.com/goodnatureofminers/powledger/pkg/workerpool"
)

// ErrInvalidBlock is returned by block and chain verification.
var ErrInvalidBlock = errors.New("invalid block")

// VerifyBlock checks that b is a well-formed sealed block at ledger position index.
// maxTransactions of zero skips the batch bound check.
func VerifyBlock(index int, b model.Block, target *Target, maxTransactions int) error {
	want, err := safe.Uint64(index)
	if err != nil {
		return fmt.Errorf("block position: %w", err)
	}
	if b.ID != want {
		return fmt.Errorf("block at position %d has id %d: %w", index, b.ID, ErrInvalidBlock)
	}
	if !b.Sealed() {
		return fmt.Errorf("block %d is not sealed: %w", b.ID, ErrInvalidBlock)
	}
	if maxTransactions > 0 && len(b.Transactions) > maxTransactions {
		return fmt.Errorf("block %d holds %d transactions, limit %d: %w",
			b.ID, len(b.Transactions), maxTransactions, ErrInvalidBlock)
	}

	pre, err := NewPreimage(b.ID, b.Transactions)
	if err != nil {
		return fmt.Errorf("block %d: %w", b.ID, err)
	}
	hash := Digest(pre.Bytes(b.Nonce))
	if hash != b.Hash {
		return fmt.Errorf("block %d hash mismatch: recorded %s, computed %s: %w", b.ID, b.Hash, hash, ErrInvalidBlock)
	}

	ok, err := target.Met(hash)
	if err != nil {
		return fmt.Errorf("block %d: %w", b.ID, err)
	}
	if !ok {
		return fmt.Errorf("block %d hash %s above target: %w", b.ID, hash, ErrInvalidBlock)
	}
	return nil
}

// VerifyChain verifies blocks in parallel and returns the first failure.
func VerifyChain(ctx context.Context, blocks []model.Block, target *Target, maxTransactions, workers int) error {
	return workerpool.Each(ctx, workers, blocks, func(_ context.Context, i int, b model.Block) error {
		return VerifyBlock(i, b, target, maxTransactions)
	})
}
