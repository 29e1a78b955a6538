package bitcoin

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/goodnatureofminers/xcp-crafter/pkg/safe"
)

const (
	// TxVersion is the version of every crafted transaction.
	TxVersion int32 = 1
	// TxLockTime is the lock time of every crafted transaction.
	TxLockTime uint32 = 0
)

// Serialize assembles inputs and outputs into raw transaction bytes:
//
//	version | varint(#in) | [txid(reversed) vout varint(len) scriptPubKey sequence]...
//	| varint(#out) | [value varint(len) script]... | locktime
//
// Each input carries its previous scriptPubKey in the script slot so that the node can
// sign the transaction. Outputs are written in the order given.
func Serialize(inputs []model.UnspentCoin, outputs []model.Output) ([]byte, error) {
	tx := wire.NewMsgTx(TxVersion)
	tx.LockTime = TxLockTime

	for i, coin := range inputs {
		if len(coin.TxID) != chainhash.MaxHashStringSize {
			return nil, fmt.Errorf("%w: input %d txid %q has %d hex chars", ErrMalformedInput, i, coin.TxID, len(coin.TxID))
		}
		hash, err := chainhash.NewHashFromStr(coin.TxID)
		if err != nil {
			return nil, fmt.Errorf("%w: input %d txid: %w", ErrMalformedInput, i, err)
		}
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(hash, coin.Vout), coin.ScriptPubKey, nil))
	}

	for i, out := range outputs {
		if len(out.Script) == 0 {
			return nil, fmt.Errorf("%w: output %d has empty script", ErrMalformedInput, i)
		}
		value, err := safe.Int64(out.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: output %d value: %w", ErrMalformedInput, i, err)
		}
		tx.AddTxOut(wire.NewTxOut(value, out.Script))
	}

	var buf bytes.Buffer
	buf.Grow(tx.SerializeSizeStripped())
	if err := tx.SerializeNoWitness(&buf); err != nil {
		return nil, fmt.Errorf("serialize transaction: %w", err)
	}
	return buf.Bytes(), nil
}

// Deserialize parses bytes produced by Serialize.
func Deserialize(raw []byte) (*wire.MsgTx, error) {
	tx := &wire.MsgTx{}
	if err := tx.DeserializeNoWitness(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("deserialize transaction: %w", err)
	}
	return tx, nil
}
