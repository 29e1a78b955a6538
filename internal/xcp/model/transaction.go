package model

import "encoding/hex"

// BuildRequest describes one transaction to craft. Amount is required when
// Destination is set; zero means the dust floor of the chosen embedding.
// ChangeAddress defaults to Source.
type BuildRequest struct {
	Source        string
	Destination   string
	Amount        uint64
	Fee           uint64
	Payload       []byte
	Mode          EmbeddingMode
	ChangeAddress string
}

// RawTransaction is an unsigned, serialized transaction candidate together with
// the inputs and outputs it was built from.
type RawTransaction struct {
	Version       int32
	LockTime      uint32
	Inputs        []UnspentCoin
	Outputs       []Output
	TotalIn       uint64
	TotalRequired uint64
	Change        uint64
	Bytes         []byte
}

// Hex returns the external representation of the serialized transaction.
func (t *RawTransaction) Hex() string {
	return hex.EncodeToString(t.Bytes)
}
