// Package transport exposes the crafting services over HTTP/JSON.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/bitcoin"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/rpc"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/service"
	"go.uber.org/zap"
)

const (
	maxBodyBytes = 1 << 20
	maxBatchSize = 256
)

var errBadRequest = errors.New("bad request")

// TxHandler serves the build, send and health endpoints.
type TxHandler struct {
	builder Builder
	sender  Sender
	health  HealthChecker
	decoder Decoder
	logger  *zap.Logger
}

// NewTxHandler returns a TxHandler. decoder may be nil, which disables ?decode=1.
func NewTxHandler(builder Builder, sender Sender, health HealthChecker, decoder Decoder, logger *zap.Logger) *TxHandler {
	return &TxHandler{
		builder: builder,
		sender:  sender,
		health:  health,
		decoder: decoder,
		logger:  logger.Named("transport"),
	}
}

// Register mounts the handler routes on mux.
func (h *TxHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/transactions/build", h.Build)
	mux.HandleFunc("POST /v1/transactions/build-batch", h.BuildBatch)
	mux.HandleFunc("POST /v1/transactions/send", h.Send)
	mux.HandleFunc("GET /v1/node/health", h.Health)
}

func (h *TxHandler) Build(w http.ResponseWriter, r *http.Request) {
	var body buildRequest
	if err := decodeBody(w, r, &body); err != nil {
		h.fail(w, err)
		return
	}
	req, err := body.toModel()
	if err != nil {
		h.fail(w, err)
		return
	}

	tx, err := h.builder.Build(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	resp := newTransactionResponse(tx)
	if r.URL.Query().Get("decode") == "1" && h.decoder != nil {
		decoded, err := h.decoder.DecodeRawTransaction(r.Context(), resp.UnsignedHex)
		if err != nil {
			h.fail(w, err)
			return
		}
		resp.Decoded = decoded
	}
	h.write(w, http.StatusOK, resp)
}

// BuildBatch builds every transaction of the request independently; per-item
// failures are reported in place and do not fail the batch.
func (h *TxHandler) BuildBatch(w http.ResponseWriter, r *http.Request) {
	var body batchRequest
	if err := decodeBody(w, r, &body); err != nil {
		h.fail(w, err)
		return
	}
	if len(body.Transactions) == 0 || len(body.Transactions) > maxBatchSize {
		h.fail(w, fmt.Errorf("%w: batch must hold 1 to %d transactions", errBadRequest, maxBatchSize))
		return
	}

	reqs := make([]model.BuildRequest, 0, len(body.Transactions))
	for i, item := range body.Transactions {
		req, err := item.toModel()
		if err != nil {
			h.fail(w, fmt.Errorf("transaction %d: %w", i, err))
			return
		}
		reqs = append(reqs, req)
	}

	results := h.builder.BuildBatch(r.Context(), reqs)
	items := make([]batchItem, len(results))
	for i, res := range results {
		if res.Err != nil {
			items[i].Error = res.Err.Error()
			continue
		}
		tx := newTransactionResponse(res.Tx)
		items[i].Transaction = &tx
	}
	h.write(w, http.StatusOK, struct {
		Results []batchItem `json:"results"`
	}{Results: items})
}

func (h *TxHandler) Send(w http.ResponseWriter, r *http.Request) {
	var body buildRequest
	if err := decodeBody(w, r, &body); err != nil {
		h.fail(w, err)
		return
	}
	req, err := body.toModel()
	if err != nil {
		h.fail(w, err)
		return
	}

	txid, tx, err := h.sender.Send(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	resp := newTransactionResponse(tx)
	resp.TxID = txid
	h.write(w, http.StatusOK, resp)
}

func (h *TxHandler) Health(w http.ResponseWriter, r *http.Request) {
	st, err := h.health.Check(r.Context())
	resp := healthResponse{Status: "ok", Height: st.Height, Hash: st.Hash, TipAt: st.TipTime}
	if st.Age > 0 {
		resp.Age = st.Age.String()
	}
	if err != nil {
		resp.Status = "unhealthy"
		resp.Error = err.Error()
		h.write(w, http.StatusServiceUnavailable, resp)
		return
	}
	h.write(w, http.StatusOK, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return nil
}

func (h *TxHandler) fail(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}
	h.write(w, status, errorResponse{Error: err.Error()})
}

func (h *TxHandler) write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, service.ErrInvalidAddress),
		errors.Is(err, service.ErrUnexpectedAmount),
		errors.Is(err, service.ErrAmountOverflow),
		errors.Is(err, bitcoin.ErrPayloadTooLarge),
		errors.Is(err, bitcoin.ErrDustOutput),
		errors.Is(err, bitcoin.ErrUnsupportedEmbedding),
		errors.Is(err, bitcoin.ErrInvalidPubKey):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInsufficientFunds),
		errors.Is(err, rpc.ErrAddressNotOwned),
		errors.Is(err, rpc.ErrAddressIndexing):
		return http.StatusUnprocessableEntity
	case errors.Is(err, rpc.ErrWalletLocked):
		return http.StatusConflict
	case errors.Is(err, rpc.ErrNodeUnreachable):
		return http.StatusServiceUnavailable
	}

	var nodeErr *rpc.NodeError
	var httpErr *rpc.HTTPError
	if errors.As(err, &nodeErr) || errors.As(err, &httpErr) || errors.Is(err, service.ErrSigningIncomplete) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
