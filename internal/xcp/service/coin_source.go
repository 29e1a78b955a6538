package service

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/bitcoin"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/rpc"
)

// RoutedCoinSource reads coins of wallet-owned addresses from the node and falls back
// to an external indexer for every other address.
type RoutedCoinSource struct {
	wallet  NodeWallet
	indexer CoinSource
}

// NewRoutedCoinSource constructs a RoutedCoinSource. indexer may be nil, in which
// case foreign addresses fail with rpc.ErrAddressNotOwned.
func NewRoutedCoinSource(wallet NodeWallet, indexer CoinSource) *RoutedCoinSource {
	return &RoutedCoinSource{wallet: wallet, indexer: indexer}
}

// Unspent implements CoinSource.
func (r *RoutedCoinSource) Unspent(ctx context.Context, address string) ([]model.UnspentCoin, error) {
	info, err := r.wallet.ValidateAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("validate address: %w", err)
	}
	if info.IsMine {
		unspent, err := r.wallet.ListUnspent(ctx)
		if err != nil {
			return nil, err
		}
		return convertWalletUnspent(unspent)
	}
	if r.indexer == nil {
		return nil, fmt.Errorf("%w: %s", rpc.ErrAddressNotOwned, address)
	}
	return r.indexer.Unspent(ctx, address)
}

func convertWalletUnspent(unspent []btcjson.ListUnspentResult) ([]model.UnspentCoin, error) {
	coins := make([]model.UnspentCoin, 0, len(unspent))
	for _, u := range unspent {
		amount, err := bitcoin.BtcToSatoshis(u.Amount)
		if err != nil {
			return nil, fmt.Errorf("utxo %s:%d amount: %w", u.TxID, u.Vout, err)
		}
		script, err := hex.DecodeString(u.ScriptPubKey)
		if err != nil {
			return nil, fmt.Errorf("utxo %s:%d script: %w", u.TxID, u.Vout, err)
		}
		coins = append(coins, model.UnspentCoin{
			TxID:          u.TxID,
			Vout:          u.Vout,
			Address:       u.Address,
			Amount:        amount,
			ScriptPubKey:  script,
			Confirmations: u.Confirmations,
		})
	}
	return coins, nil
}
