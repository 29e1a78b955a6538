package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
)

// InfoResult is the subset of getinfo used to detect a locked wallet.
type InfoResult struct {
	Version       int32   `json:"version"`
	Blocks        int64   `json:"blocks"`
	Connections   int32   `json:"connections"`
	TestNet       bool    `json:"testnet"`
	RelayFee      float64 `json:"relayfee"`
	Errors        string  `json:"errors"`
	UnlockedUntil *int64  `json:"unlocked_until,omitempty"`
}

// ListUnspent returns the wallet's spendable outputs.
func (c *Client) ListUnspent(ctx context.Context) ([]btcjson.ListUnspentResult, error) {
	var res []btcjson.ListUnspentResult
	if err := c.callInto(ctx, &res, "listunspent"); err != nil {
		return nil, err
	}
	return res, nil
}

// ValidateAddress reports whether address is valid and owned by the wallet.
func (c *Client) ValidateAddress(ctx context.Context, address string) (*btcjson.ValidateAddressWalletResult, error) {
	var res btcjson.ValidateAddressWalletResult
	if err := c.callInto(ctx, &res, "validateaddress", address); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) validateAddress(ctx context.Context, address string) (*btcjson.ValidateAddressWalletResult, error) {
	raw, err := c.call(ctx, "validateaddress", []any{address})
	if err != nil {
		return nil, err
	}
	var res btcjson.ValidateAddressWalletResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode validateaddress result: %w", err)
	}
	return &res, nil
}

// DumpPrivKey returns the WIF encoded private key of an owned address.
func (c *Client) DumpPrivKey(ctx context.Context, address string) (string, error) {
	var wif string
	if err := c.callInto(ctx, &wif, "dumpprivkey", address); err != nil {
		return "", err
	}
	return wif, nil
}

// SignRawTransaction asks the wallet to sign every input it can.
func (c *Client) SignRawTransaction(ctx context.Context, txHex string) (*btcjson.SignRawTransactionResult, error) {
	var res btcjson.SignRawTransactionResult
	if err := c.callInto(ctx, &res, "signrawtransaction", txHex); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendRawTransaction broadcasts a signed transaction and returns its id.
func (c *Client) SendRawTransaction(ctx context.Context, txHex string) (string, error) {
	var txid string
	if err := c.callInto(ctx, &txid, "sendrawtransaction", txHex); err != nil {
		return "", err
	}
	return txid, nil
}

// GetBlockCount returns the height of the best chain.
func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	var count int64
	if err := c.callInto(ctx, &count, "getblockcount"); err != nil {
		return 0, err
	}
	return count, nil
}

// GetBlockHash returns the hash of the block at height.
func (c *Client) GetBlockHash(ctx context.Context, height int64) (string, error) {
	var hash string
	if err := c.callInto(ctx, &hash, "getblockhash", height); err != nil {
		return "", err
	}
	return hash, nil
}

// GetBlock returns the verbose header view of a block.
func (c *Client) GetBlock(ctx context.Context, hash string) (*btcjson.GetBlockVerboseResult, error) {
	var res btcjson.GetBlockVerboseResult
	if err := c.callInto(ctx, &res, "getblock", hash); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetRawTransaction returns the verbose form of a transaction.
func (c *Client) GetRawTransaction(ctx context.Context, txid string) (*btcjson.TxRawResult, error) {
	var res btcjson.TxRawResult
	if err := c.callInto(ctx, &res, "getrawtransaction", txid, 1); err != nil {
		return nil, err
	}
	return &res, nil
}

// DecodeRawTransaction decodes hex without broadcasting it.
func (c *Client) DecodeRawTransaction(ctx context.Context, txHex string) (*btcjson.TxRawDecodeResult, error) {
	var res btcjson.TxRawDecodeResult
	if err := c.callInto(ctx, &res, "decoderawtransaction", txHex); err != nil {
		return nil, err
	}
	return &res, nil
}

// WalletPassphrase unlocks the wallet for timeoutSeconds.
func (c *Client) WalletPassphrase(ctx context.Context, passphrase string, timeoutSeconds int64) error {
	_, err := c.Call(ctx, "walletpassphrase", passphrase, timeoutSeconds)
	return err
}

// GetInfo returns node and wallet state.
func (c *Client) GetInfo(ctx context.Context) (*InfoResult, error) {
	var res InfoResult
	if err := c.callInto(ctx, &res, "getinfo"); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) callInto(ctx context.Context, dst any, method string, params ...any) error {
	raw, err := c.Call(ctx, method, params...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}
