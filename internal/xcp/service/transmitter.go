package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrSigningIncomplete reports that the node wallet could not sign every input.
var ErrSigningIncomplete = errors.New("transaction signing incomplete")

// Transmitter signs unsigned transactions with the node wallet and broadcasts them.
type Transmitter struct {
	signer Signer
	logger *zap.Logger
}

// NewTransmitter constructs a Transmitter.
func NewTransmitter(signer Signer, logger *zap.Logger) *Transmitter {
	return &Transmitter{signer: signer, logger: logger}
}

// Transmit signs unsignedHex and broadcasts it, returning the transaction id. Node
// rejections are returned as reported by the node.
func (t *Transmitter) Transmit(ctx context.Context, unsignedHex string) (string, error) {
	signed, err := t.signer.SignRawTransaction(ctx, unsignedHex)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}
	if !signed.Complete {
		return "", fmt.Errorf("%w: %d input errors", ErrSigningIncomplete, len(signed.Errors))
	}

	txid, err := t.signer.SendRawTransaction(ctx, signed.Hex)
	if err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	t.logger.Info("transaction broadcast", zap.String("txid", txid))
	return txid, nil
}
