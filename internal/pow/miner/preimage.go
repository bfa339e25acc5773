package miner

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/powledger/internal/pow/model"
)

// Preimage is the canonical encoding of a block's id and transactions.
// Bytes completes it with a nonce:
//
//	{"id":<id>,"transactions":[...],"nonce":<nonce>}
//
// The hash field is never part of the preimage.
type Preimage struct {
	prefix []byte
}

// NewPreimage encodes the nonce-independent part of a block.
//
// Valid UTF-8 strings encode exactly as encoding/json does. Bytes that are not
// valid UTF-8 are written as \u00XX escapes instead of U+FFFD, so distinct
// transactions never share a preimage.
func NewPreimage(id uint64, txs []model.Transaction) (Preimage, error) {
	prefix := make([]byte, 0, 48+32*len(txs))
	prefix = append(prefix, `{"id":`...)
	prefix = strconv.AppendUint(prefix, id, 10)
	prefix = append(prefix, `,"transactions":[`...)

	var err error
	for i, tx := range txs {
		if i > 0 {
			prefix = append(prefix, ',')
		}
		prefix = append(prefix, `{"sender":`...)
		if prefix, err = appendString(prefix, tx.Sender); err != nil {
			return Preimage{}, fmt.Errorf("encode transaction %d sender: %w", i, err)
		}
		prefix = append(prefix, `,"recipient":`...)
		if prefix, err = appendString(prefix, tx.Recipient); err != nil {
			return Preimage{}, fmt.Errorf("encode transaction %d recipient: %w", i, err)
		}
		prefix = append(prefix, '}')
	}

	prefix = append(prefix, `],"nonce":`...)
	return Preimage{prefix: prefix}, nil
}

const lowerHex = "0123456789abcdef"

// appendString appends s as a JSON string literal. encoding/json never emits
// \u0080-\u00ff escapes for valid input, so the invalid-byte form is unambiguous.
func appendString(dst []byte, s string) ([]byte, error) {
	if utf8.ValidString(s) {
		enc, err := json.Marshal(s)
		if err != nil {
			return dst, err
		}
		return append(dst, enc...), nil
	}

	dst = append(dst, '"')
	for len(s) > 0 {
		n := validPrefix(s)
		if n == 0 {
			dst = append(dst, '\\', 'u', '0', '0', lowerHex[s[0]>>4], lowerHex[s[0]&0x0f])
			s = s[1:]
			continue
		}
		enc, err := json.Marshal(s[:n])
		if err != nil {
			return dst, err
		}
		dst = append(dst, enc[1:len(enc)-1]...)
		s = s[n:]
	}
	return append(dst, '"'), nil
}

// validPrefix returns the length of the longest valid UTF-8 prefix of s.
func validPrefix(s string) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		i += size
	}
	return i
}

// Bytes returns the full encoding for nonce.
func (p Preimage) Bytes(nonce uint64) []byte {
	return p.appendTo(make([]byte, 0, len(p.prefix)+21), nonce)
}

func (p Preimage) appendTo(dst []byte, nonce uint64) []byte {
	dst = append(dst, p.prefix...)
	dst = strconv.AppendUint(dst, nonce, 10)
	return append(dst, '}')
}

// Digest returns the lowercase hex SHA-256 of b.
func Digest(b []byte) string {
	return hex.EncodeToString(chainhash.HashB(b))
}
