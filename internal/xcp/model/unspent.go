package model

// UnspentCoin is a spendable output owned by an address, as reported by a node or indexer.
type UnspentCoin struct {
	TxID          string
	Vout          uint32
	Address       string
	Amount        uint64
	ScriptPubKey  []byte
	Confirmations int64
}
