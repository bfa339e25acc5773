package miner

import (
	"encoding/json"
	"testing"

	"github.com/goodnatureofminers/powledger/internal/pow/model"
	"github.com/stretchr/testify/require"
)

func TestPreimage_Bytes(t *testing.T) {
	tests := []struct {
		name  string
		id    uint64
		txs   []model.Transaction
		nonce uint64
		want  string
	}{
		{
			name: "empty batch encodes as array",
			id:   0,
			want: `{"id":0,"transactions":[],"nonce":0}`,
		},
		{
			name:  "transactions in order",
			id:    2,
			txs:   []model.Transaction{{Sender: "bob", Recipient: "alice"}, {Sender: "carol", Recipient: "dave"}},
			nonce: 17,
			want:  `{"id":2,"transactions":[{"sender":"bob","recipient":"alice"},{"sender":"carol","recipient":"dave"}],"nonce":17}`,
		},
		{
			name: "invalid utf-8 bytes are escaped",
			id:   1,
			txs:  []model.Transaction{{Sender: "a\xffb", Recipient: "\xc3"}},
			want: `{"id":1,"transactions":[{"sender":"a\u00ffb","recipient":"\u00c3"}],"nonce":0}`,
		},
		{
			name: "valid non-ascii stays raw",
			id:   1,
			txs:  []model.Transaction{{Sender: "ÿ", Recipient: "\ufffd"}},
			want: `{"id":1,"transactions":[{"sender":"ÿ","recipient":"` + "\ufffd" + `"}],"nonce":0}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pre, err := NewPreimage(tt.id, tt.txs)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(pre.Bytes(tt.nonce)))
		})
	}
}

func TestPreimage_MatchesStructEncoding(t *testing.T) {
	type encoded struct {
		ID           uint64              `json:"id"`
		Transactions []model.Transaction `json:"transactions"`
		Nonce        uint64              `json:"nonce"`
	}
	txs := []model.Transaction{{Sender: "a<b", Recipient: "\"quoted\""}}

	pre, err := NewPreimage(9, txs)
	require.NoError(t, err)

	for _, nonce := range []uint64{0, 1, 1 << 63} {
		want, err := json.Marshal(encoded{ID: 9, Transactions: txs, Nonce: nonce})
		require.NoError(t, err)
		require.Equal(t, string(want), string(pre.Bytes(nonce)))
	}
}

func TestPreimage_DistinctInvalidBytes(t *testing.T) {
	senders := []string{"\xff", "\xfe", "\ufffd", "ÿ"}
	seen := make(map[string]string, len(senders))
	for _, sender := range senders {
		pre, err := NewPreimage(0, []model.Transaction{{Sender: sender, Recipient: "alice"}})
		require.NoError(t, err)

		digest := Digest(pre.Bytes(0))
		prev, dup := seen[digest]
		require.False(t, dup, "senders %q and %q share a digest", prev, sender)
		seen[digest] = sender
	}
}

func TestDigest(t *testing.T) {
	const abc = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	require.Equal(t, abc, Digest([]byte("abc")))

	pre, err := NewPreimage(1, []model.Transaction{{Sender: "bob", Recipient: "alice"}})
	require.NoError(t, err)
	require.Equal(t, Digest(pre.Bytes(5)), Digest(pre.Bytes(5)))
	require.NotEqual(t, Digest(pre.Bytes(5)), Digest(pre.Bytes(6)))
}
