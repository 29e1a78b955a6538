package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
)

// OutputBuilder constructs destination, data and change outputs for one network.
type OutputBuilder struct {
	params *chaincfg.Params
}

// NewOutputBuilder constructs an OutputBuilder.
func NewOutputBuilder(params *chaincfg.Params) *OutputBuilder {
	return &OutputBuilder{params: params}
}

// Destination builds the pay-to-pubkey-hash output for the receiving address.
func (b *OutputBuilder) Destination(address string, amount uint64, emb Embedding) (model.Output, error) {
	return b.payToAddress(model.OutputDestination, address, amount, emb.DustFloor)
}

// Change builds the pay-to-pubkey-hash output returning leftover value.
func (b *OutputBuilder) Change(address string, amount uint64, emb Embedding) (model.Output, error) {
	return b.payToAddress(model.OutputChange, address, amount, emb.DustFloor)
}

// Data builds one data output per chunk, keeping chunk order.
func (b *OutputBuilder) Data(chunks [][]byte, emb Embedding, sourcePubKey []byte) ([]model.Output, error) {
	outputs := make([]model.Output, 0, len(chunks))
	for i, chunk := range chunks {
		script, err := emb.DataScript(chunk, sourcePubKey)
		if err != nil {
			return nil, fmt.Errorf("data output %d: %w", i, err)
		}
		outputs = append(outputs, model.Output{
			Kind:   model.OutputData,
			Amount: emb.DataValue,
			Chunk:  chunk,
			Script: script,
		})
	}
	return outputs, nil
}

func (b *OutputBuilder) payToAddress(kind model.OutputKind, address string, amount, floor uint64) (model.Output, error) {
	if amount < floor {
		return model.Output{}, fmt.Errorf("%w: %s amount %d, floor %d", ErrDustOutput, kind, amount, floor)
	}
	hash, err := DecodeAddress(address, b.params)
	if err != nil {
		return model.Output{}, fmt.Errorf("%s address %q: %w", kind, address, err)
	}
	script, err := PayToPubKeyHashScript(hash)
	if err != nil {
		return model.Output{}, err
	}
	return model.Output{
		Kind:    kind,
		Address: address,
		Amount:  amount,
		Script:  script,
	}, nil
}
