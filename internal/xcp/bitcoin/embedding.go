package bitcoin

import (
	"fmt"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
)

const (
	// NullDataChunkSize is the largest payload carried by one OP_RETURN output.
	NullDataChunkSize = 80
	// MultisigChunkSize leaves one byte of a compressed key slot for the length prefix.
	MultisigChunkSize = compressedPubKeyLen - 1
)

// DustPolicy holds the output values used when crafting transactions.
type DustPolicy struct {
	// Regular is the minimum value of a pay-to-pubkey-hash output in plain transfers.
	Regular uint64
	// Multisig is the value of every multisig data output and the minimum value of
	// pay-to-pubkey-hash outputs in multisig-carrying transactions.
	Multisig uint64
	// OpReturnValue is the value attached to an OP_RETURN data output.
	OpReturnValue uint64
}

// DefaultDustPolicy mirrors the relay defaults the protocol was deployed with.
var DefaultDustPolicy = DustPolicy{
	Regular:       5430,
	Multisig:      5430 * 2,
	OpReturnValue: 1,
}

// Embedding is an EmbeddingMode resolved against a DustPolicy.
type Embedding struct {
	Kind      model.EmbeddingKind
	ChunkSize int
	// MaxChunks limits the number of data outputs; zero means no limit.
	MaxChunks int
	DataValue uint64
	DustFloor uint64
	// PubKey is the explicit compressed source key for multisig, nil when it must be
	// fetched from the node.
	PubKey []byte
}

// Resolve selects the per-kind chunk size, values and script template for mode.
func (p DustPolicy) Resolve(mode model.EmbeddingMode) (Embedding, error) {
	switch mode.Kind {
	case model.NullData, "":
		return Embedding{
			Kind:      model.NullData,
			ChunkSize: NullDataChunkSize,
			MaxChunks: 1,
			DataValue: p.OpReturnValue,
			DustFloor: p.Regular,
		}, nil
	case model.DisguisedMultisig:
		emb := Embedding{
			Kind:      model.DisguisedMultisig,
			ChunkSize: MultisigChunkSize,
			DataValue: p.Multisig,
			DustFloor: p.Multisig,
		}
		if mode.PubKey != "" {
			key, err := ParsePubKey(mode.PubKey)
			if err != nil {
				return Embedding{}, err
			}
			emb.PubKey = key
		}
		return emb, nil
	default:
		return Embedding{}, fmt.Errorf("%w %q", ErrUnsupportedEmbedding, mode.Kind)
	}
}

// NeedsSourceKey reports whether data outputs require a source public key that has
// not been supplied.
func (e Embedding) NeedsSourceKey(chunks int) bool {
	return e.Kind == model.DisguisedMultisig && chunks > 0 && e.PubKey == nil
}

// DataScript returns the locking script carrying one chunk.
func (e Embedding) DataScript(chunk, sourcePubKey []byte) ([]byte, error) {
	switch e.Kind {
	case model.NullData:
		return NullDataScript(chunk), nil
	case model.DisguisedMultisig:
		return DisguisedMultisigScript(sourcePubKey, chunk)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedEmbedding, e.Kind)
	}
}
