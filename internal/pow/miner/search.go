package miner

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrAttemptsExhausted is returned when a capped search finds no qualifying nonce.
	ErrAttemptsExhausted = errors.New("proof-of-work attempts exhausted")
	// ErrNonceSpaceExhausted is returned when every uint64 nonce has been tried.
	ErrNonceSpaceExhausted = errors.New("nonce space exhausted")
)

// Proof is the outcome of a nonce search.
type Proof struct {
	Nonce    uint64
	Hash     string
	Attempts uint64
}

// Search tries nonces from zero upwards until the digest of the preimage is
// below target. maxAttempts of zero means no cap.
func Search(p Preimage, target *Target, maxAttempts uint64) (Proof, error) {
	return search(p, target, maxAttempts, Digest)
}

func search(p Preimage, target *Target, maxAttempts uint64, digest func([]byte) string) (Proof, error) {
	var proof Proof
	buf := make([]byte, 0, len(p.prefix)+21)

	for nonce := uint64(0); ; nonce++ {
		if maxAttempts > 0 && proof.Attempts >= maxAttempts {
			return proof, fmt.Errorf("after %d attempts: %w", proof.Attempts, ErrAttemptsExhausted)
		}

		buf = p.appendTo(buf[:0], nonce)
		hash := digest(buf)
		proof.Attempts++

		ok, err := target.Met(hash)
		if err != nil {
			return proof, fmt.Errorf("nonce %d: %w", nonce, err)
		}
		if ok {
			proof.Nonce = nonce
			proof.Hash = hash
			return proof, nil
		}
		if nonce == math.MaxUint64 {
			return proof, ErrNonceSpaceExhausted
		}
	}
}
