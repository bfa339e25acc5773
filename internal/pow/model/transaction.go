// Package model defines the ledger's value types.
package model

// MaxTransactionsPerBlock bounds the batch drained from the pool for one block.
const MaxTransactionsPerBlock = 10

// Transaction is a pending transfer between two identifiers.
type Transaction struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
}
