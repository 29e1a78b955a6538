package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/xcp-crafter/pkg/safe"
)

// Balances answers address balance queries.
type Balances struct {
	coins   CoinSource
	indexer BalanceSource
}

// NewBalances constructs Balances. With a nil indexer the balance is the sum of the
// address's unspent coins as listed by coins.
func NewBalances(coins CoinSource, indexer BalanceSource) *Balances {
	return &Balances{coins: coins, indexer: indexer}
}

func (b *Balances) Balance(ctx context.Context, address string) (uint64, error) {
	if b.indexer != nil {
		balance, err := b.indexer.Balance(ctx, address)
		if err != nil {
			return 0, fmt.Errorf("indexer balance for %s: %w", address, err)
		}
		return balance, nil
	}

	coins, err := b.coins.Unspent(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("list unspent for %s: %w", address, err)
	}
	var total uint64
	for _, c := range coins {
		if c.Address != address {
			continue
		}
		if total, err = safe.Add(total, c.Amount); err != nil {
			return 0, fmt.Errorf("sum unspent for %s: %w", address, err)
		}
	}
	return total, nil
}
