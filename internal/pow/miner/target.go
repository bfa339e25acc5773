// Package miner seals pool batches into blocks by proof-of-work.
package miner

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/blockchain"
)

// DifficultyTargetHex is the default target: leading nibble zero, so roughly
// one digest in sixteen qualifies.
const DifficultyTargetHex = "0fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

// ErrHashParse is returned when a digest is not a non-negative base-16 integer.
var ErrHashParse = errors.New("hash is not a valid hex integer")

var defaultTarget = sync.OnceValue(func() *Target {
	return MustParseTarget(DifficultyTargetHex)
})

// DefaultTarget returns the process-wide target built from DifficultyTargetHex.
func DefaultTarget() *Target {
	return defaultTarget()
}

// Target is an immutable proof-of-work threshold. A digest qualifies when its
// integer value is strictly less than the target.
type Target struct {
	n   *big.Int
	hex string
}

// ParseTarget builds a Target from a hex literal.
func ParseTarget(s string) (*Target, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	n, err := parseHex(s)
	if err != nil {
		return nil, fmt.Errorf("parse target %q: %w", s, err)
	}
	if n.Sign() == 0 {
		return nil, fmt.Errorf("parse target %q: target must be positive", s)
	}
	return &Target{n: n, hex: s}, nil
}

// MustParseTarget is ParseTarget that panics on malformed input.
func MustParseTarget(s string) *Target {
	t, err := ParseTarget(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Met reports whether the hex digest is below the target.
func (t *Target) Met(digest string) (bool, error) {
	n, err := parseHex(digest)
	if err != nil {
		return false, err
	}
	return n.Cmp(t.n) < 0, nil
}

// Int returns a copy of the target value.
func (t *Target) Int() *big.Int {
	return new(big.Int).Set(t.n)
}

// Bits returns the target in compact form.
func (t *Target) Bits() uint32 {
	return blockchain.BigToCompact(t.n)
}

// Work returns the expected number of digests needed to meet the target,
// computed from its compact form.
func (t *Target) Work() *big.Int {
	return blockchain.CalcWork(t.Bits())
}

func (t *Target) String() string {
	return t.hex
}

func parseHex(s string) (*big.Int, error) {
	if s == "" || s[0] == '-' || s[0] == '+' {
		return nil, fmt.Errorf("%q: %w", s, ErrHashParse)
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("%q: %w", s, ErrHashParse)
	}
	return n, nil
}
