package transport

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
)

type buildRequest struct {
	Source        string `json:"source"`
	Destination   string `json:"destination,omitempty"`
	Amount        uint64 `json:"amount,omitempty"`
	Fee           uint64 `json:"fee"`
	PayloadHex    string `json:"payload_hex"`
	Mode          string `json:"mode,omitempty"`
	PubKey        string `json:"pubkey,omitempty"`
	ChangeAddress string `json:"change_address,omitempty"`
}

func (r buildRequest) toModel() (model.BuildRequest, error) {
	payload, err := hex.DecodeString(r.PayloadHex)
	if err != nil {
		return model.BuildRequest{}, fmt.Errorf("%w: payload_hex: %w", errBadRequest, err)
	}
	return model.BuildRequest{
		Source:        r.Source,
		Destination:   r.Destination,
		Amount:        r.Amount,
		Fee:           r.Fee,
		Payload:       payload,
		Mode:          model.EmbeddingMode{Kind: model.EmbeddingKind(r.Mode), PubKey: r.PubKey},
		ChangeAddress: r.ChangeAddress,
	}, nil
}

type batchRequest struct {
	Transactions []buildRequest `json:"transactions"`
}

type input struct {
	TxID   string `json:"txid"`
	Vout   uint32 `json:"vout"`
	Amount uint64 `json:"amount"`
}

type output struct {
	Kind      string `json:"kind"`
	Address   string `json:"address,omitempty"`
	Amount    uint64 `json:"amount"`
	ScriptHex string `json:"script_hex"`
}

type transactionResponse struct {
	TxID          string                     `json:"txid,omitempty"`
	UnsignedHex   string                     `json:"unsigned_hex"`
	Inputs        []input                    `json:"inputs"`
	Outputs       []output                   `json:"outputs"`
	TotalIn       uint64                     `json:"total_in"`
	TotalRequired uint64                     `json:"total_required"`
	Change        uint64                     `json:"change"`
	Decoded       *btcjson.TxRawDecodeResult `json:"decoded,omitempty"`
}

func newTransactionResponse(tx *model.RawTransaction) transactionResponse {
	resp := transactionResponse{
		UnsignedHex:   tx.Hex(),
		Inputs:        make([]input, 0, len(tx.Inputs)),
		Outputs:       make([]output, 0, len(tx.Outputs)),
		TotalIn:       tx.TotalIn,
		TotalRequired: tx.TotalRequired,
		Change:        tx.Change,
	}
	for _, in := range tx.Inputs {
		resp.Inputs = append(resp.Inputs, input{TxID: in.TxID, Vout: in.Vout, Amount: in.Amount})
	}
	for _, out := range tx.Outputs {
		resp.Outputs = append(resp.Outputs, output{
			Kind:      string(out.Kind),
			Address:   out.Address,
			Amount:    out.Amount,
			ScriptHex: hex.EncodeToString(out.Script),
		})
	}
	return resp
}

type batchItem struct {
	Transaction *transactionResponse `json:"transaction,omitempty"`
	Error       string               `json:"error,omitempty"`
}

type healthResponse struct {
	Status string    `json:"status"`
	Height int64     `json:"height,omitempty"`
	Hash   string    `json:"hash,omitempty"`
	TipAt  time.Time `json:"tip_at,omitzero"`
	Age    string    `json:"age,omitempty"`
	Error  string    `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
