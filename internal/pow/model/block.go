package model

// Block is a batch of transactions sealed by proof-of-work.
// ID equals the block's position in the ledger.
type Block struct {
	ID           uint64
	Transactions []Transaction
	Nonce        uint64
	Hash         string
}

// Sealed reports whether the block carries a proof-of-work hash.
// Sealed blocks must not be mutated.
func (b Block) Sealed() bool {
	return b.Hash != ""
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	out := b
	out.Transactions = make([]Transaction, len(b.Transactions))
	copy(out.Transactions, b.Transactions)
	return out
}
