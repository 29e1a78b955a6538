package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/goodnatureofminers/xcp-crafter/pkg/safe"
)

// ErrInsufficientFunds matches every *InsufficientFundsError.
var ErrInsufficientFunds = errors.New("insufficient funds")

// InsufficientFundsError reports how much was needed and how much the source holds.
type InsufficientFundsError struct {
	Needed uint64
	Have   uint64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: need %d satoshis, have %d", e.Needed, e.Have)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Selector picks coins to fund a transaction.
type Selector struct {
	source CoinSource
}

// NewSelector constructs a Selector reading coins from source.
func NewSelector(source CoinSource) *Selector {
	return &Selector{source: source}
}

// Select returns the shortest prefix, in source order, of the coins held by address
// whose total reaches required, along with that total.
func (s *Selector) Select(ctx context.Context, address string, required uint64) ([]model.UnspentCoin, uint64, error) {
	coins, err := s.source.Unspent(ctx, address)
	if err != nil {
		return nil, 0, fmt.Errorf("list unspent for %s: %w", address, err)
	}

	var (
		selected []model.UnspentCoin
		total    uint64
	)
	for _, coin := range coins {
		if coin.Address != address {
			continue
		}
		selected = append(selected, coin)
		if total, err = safe.Add(total, coin.Amount); err != nil {
			return nil, 0, fmt.Errorf("sum unspent for %s: %w", address, err)
		}
		if total >= required {
			return selected, total, nil
		}
	}
	return nil, 0, &InsufficientFundsError{Needed: required, Have: total}
}
