package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/rpc"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// CoinSource lists unspent coins that may belong to address.
	CoinSource interface {
		Unspent(ctx context.Context, address string) ([]model.UnspentCoin, error)
	}
	// BalanceSource reports an address balance in satoshis.
	BalanceSource interface {
		Balance(ctx context.Context, address string) (uint64, error)
	}
	NodeWallet interface {
		ListUnspent(ctx context.Context) ([]btcjson.ListUnspentResult, error)
		ValidateAddress(ctx context.Context, address string) (*btcjson.ValidateAddressWalletResult, error)
		DumpPrivKey(ctx context.Context, address string) (string, error)
	}
	KeyDumper interface {
		DumpPrivKey(ctx context.Context, address string) (string, error)
	}
	Signer interface {
		SignRawTransaction(ctx context.Context, txHex string) (*btcjson.SignRawTransactionResult, error)
		SendRawTransaction(ctx context.Context, txHex string) (string, error)
	}
	Wallet interface {
		GetInfo(ctx context.Context) (*rpc.InfoResult, error)
		WalletPassphrase(ctx context.Context, passphrase string, timeoutSeconds int64) error
	}
	ChainReader interface {
		GetBlockCount(ctx context.Context) (int64, error)
		GetBlockHash(ctx context.Context, height int64) (string, error)
		GetBlock(ctx context.Context, hash string) (*btcjson.GetBlockVerboseResult, error)
	}
	BroadcastRepository interface {
		InsertBroadcasts(ctx context.Context, broadcasts []model.Broadcast) error
	}
	// Recorder stores a broadcast for later inspection.
	Recorder interface {
		Record(ctx context.Context, broadcast model.Broadcast) error
	}
	BuildMetrics interface {
		Observe(mode string, err error, started time.Time)
	}
)
