package transport

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Builder interface {
		Build(ctx context.Context, req model.BuildRequest) (*model.RawTransaction, error)
		BuildBatch(ctx context.Context, reqs []model.BuildRequest) []service.BuildResult
	}
	Sender interface {
		Send(ctx context.Context, req model.BuildRequest) (string, *model.RawTransaction, error)
	}
	HealthChecker interface {
		Check(ctx context.Context) (service.NodeStatus, error)
	}
	// Decoder renders an unsigned transaction the way the node sees it.
	Decoder interface {
		DecodeRawTransaction(ctx context.Context, txHex string) (*btcjson.TxRawDecodeResult, error)
	}
)
