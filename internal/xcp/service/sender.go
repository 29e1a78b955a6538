package service

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"go.uber.org/zap"
)

// Sender builds, broadcasts and records transactions in one step.
type Sender struct {
	assembler   *Assembler
	transmitter *Transmitter
	recorder    Recorder
	coin        model.Coin
	network     model.Network
	now         func() time.Time
	logger      *zap.Logger
}

// NewSender constructs a Sender. recorder may be nil to skip journaling.
func NewSender(
	assembler *Assembler,
	transmitter *Transmitter,
	recorder Recorder,
	coin model.Coin,
	network model.Network,
	logger *zap.Logger,
) *Sender {
	return &Sender{
		assembler:   assembler,
		transmitter: transmitter,
		recorder:    recorder,
		coin:        coin,
		network:     network,
		now:         time.Now,
		logger:      logger,
	}
}

// Send builds req, broadcasts it and returns the node's transaction id. A journal
// failure is logged and does not fail an accepted broadcast.
func (s *Sender) Send(ctx context.Context, req model.BuildRequest) (string, *model.RawTransaction, error) {
	tx, err := s.assembler.Build(ctx, req)
	if err != nil {
		return "", nil, err
	}
	txid, err := s.transmitter.Transmit(ctx, tx.Hex())
	if err != nil {
		return "", tx, err
	}

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, s.broadcast(txid, req, tx)); err != nil {
			s.logger.Warn("broadcast not journaled", zap.String("txid", txid), zap.Error(err))
		}
	}
	return txid, tx, nil
}

func (s *Sender) broadcast(txid string, req model.BuildRequest, tx *model.RawTransaction) model.Broadcast {
	mode := req.Mode.Kind
	if mode == "" {
		mode = model.NullData
	}
	var amount uint64
	for _, out := range tx.Outputs {
		if out.Kind == model.OutputDestination {
			amount = out.Amount
		}
	}
	return model.Broadcast{
		Coin:        s.coin,
		Network:     s.network,
		TxID:        txid,
		Source:      req.Source,
		Destination: req.Destination,
		Amount:      amount,
		Fee:         req.Fee,
		Mode:        mode,
		PayloadHex:  hex.EncodeToString(req.Payload),
		UnsignedHex: tx.Hex(),
		CreatedAt:   s.now().UTC(),
	}
}
