package model

// EmbeddingKind selects how payload data is carried inside a transaction.
type EmbeddingKind string

var (
	// NullData stores the payload in a single OP_RETURN output.
	NullData EmbeddingKind = "nulldata"
	// DisguisedMultisig stores payload chunks as fake keys of 1-of-2 multisig outputs.
	DisguisedMultisig EmbeddingKind = "multisig"
)

// EmbeddingMode is the caller's embedding choice. PubKey is the hex encoded source
// public key; it is only read for DisguisedMultisig and, when empty, the key is
// derived from the source address through the node wallet.
type EmbeddingMode struct {
	Kind   EmbeddingKind
	PubKey string
}
