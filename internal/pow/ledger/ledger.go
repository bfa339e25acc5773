// Package ledger stores sealed blocks in an append-only sequence.
package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/powledger/internal/pow/model"
	"github.com/goodnatureofminers/powledger/pkg/safe"
)

var (
	// ErrOutOfOrder is returned when a block's ID does not match its ledger position.
	ErrOutOfOrder = errors.New("block id does not match ledger position")
	// ErrUnsealed is returned when appending a block without a proof-of-work hash.
	ErrUnsealed = errors.New("block is not sealed")
	// ErrNotFound is returned when a block id is past the ledger tip.
	ErrNotFound = errors.New("block not found")
)

// Ledger is a mutex-guarded, append-only list of sealed blocks.
type Ledger struct {
	mu     sync.RWMutex
	blocks []model.Block
}

// New constructs an empty Ledger.
func New() *Ledger {
	return &Ledger{blocks: make([]model.Block, 0)}
}

// Len returns the number of sealed blocks.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Blocks returns a deep copy of the ledger in order.
func (l *Ledger) Blocks() []model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Block, 0, len(l.blocks))
	for _, b := range l.blocks {
		out = append(out, b.Clone())
	}
	return out
}

// Block returns a copy of the block with the given id.
func (l *Ledger) Block(id uint64) (model.Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx, err := safe.Int(id)
	if err != nil || idx >= len(l.blocks) {
		return model.Block{}, fmt.Errorf("block %d: %w", id, ErrNotFound)
	}
	return l.blocks[idx].Clone(), nil
}

// Locked runs fn while holding the ledger write lock.
// The view passed to fn must not escape fn.
func (l *Ledger) Locked(fn func(*Locked) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return fn(&Locked{l: l})
}

// Locked is a view of the ledger valid only while its lock is held.
type Locked struct {
	l *Ledger
}

// Len returns the number of sealed blocks.
func (v *Locked) Len() int {
	return len(v.l.blocks)
}

// NextID returns the id the next appended block must carry.
func (v *Locked) NextID() (uint64, error) {
	return safe.Uint64(len(v.l.blocks))
}

// Append adds a sealed block at the tip.
func (v *Locked) Append(b model.Block) error {
	next, err := v.NextID()
	if err != nil {
		return err
	}
	if b.ID != next {
		return fmt.Errorf("append block %d at position %d: %w", b.ID, next, ErrOutOfOrder)
	}
	if !b.Sealed() {
		return fmt.Errorf("append block %d: %w", b.ID, ErrUnsealed)
	}

	v.l.blocks = append(v.l.blocks, b.Clone())
	return nil
}
