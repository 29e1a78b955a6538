package model

import "time"

// Broadcast is a journal record of a transaction accepted by the node.
type Broadcast struct {
	Coin        Coin
	Network     Network
	TxID        string
	Source      string
	Destination string
	Amount      uint64
	Fee         uint64
	Mode        EmbeddingKind
	PayloadHex  string
	UnsignedHex string
	CreatedAt   time.Time
}
