// Package app wires the node client, crafting services and journal from options
// shared by the gateway and the CLI.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/xcp-crafter/internal/metrics"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/bitcoin"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/indexer"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/repository/clickhouse"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/rpc"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/service"
	"github.com/goodnatureofminers/xcp-crafter/pkg/batcher"
	"go.uber.org/zap"
)

// Options are the go-flags settings every binary accepts.
type Options struct {
	Coin    model.Coin    `long:"coin" env:"XCP_COIN" description:"coin name" default:"BTC"`
	Network model.Network `long:"network" env:"XCP_NETWORK" description:"network name (mainnet, testnet, regtest, signet)" default:"testnet"`

	RPCURL         string        `long:"rpc-url" env:"XCP_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:18332"`
	RPCUser        string        `long:"rpc-user" env:"XCP_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"XCP_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCMaxAttempts int           `long:"rpc-max-attempts" env:"XCP_RPC_MAX_ATTEMPTS" description:"connection attempts per RPC call" default:"12"`
	RPCRetryDelay  time.Duration `long:"rpc-retry-delay" env:"XCP_RPC_RETRY_DELAY" description:"delay after a failed connection attempt" default:"5s"`
	RPCRateLimit   int           `long:"rpc-rate-limit" env:"XCP_RPC_RATE_LIMIT" description:"RPC calls per second, 0 for unlimited" default:"0"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"XCP_HTTP_TIMEOUT" description:"HTTP timeout for node and indexer requests" default:"30s"`

	InsightURL string `long:"insight-url" env:"XCP_INSIGHT_URL" description:"Insight API base URL for addresses the node wallet does not own"`

	DustRegular   uint64 `long:"dust-regular" env:"XCP_DUST_REGULAR" description:"minimum value of pay-to-pubkey-hash outputs" default:"5430"`
	DustMultisig  uint64 `long:"dust-multisig" env:"XCP_DUST_MULTISIG" description:"value of multisig data outputs" default:"10860"`
	OpReturnValue uint64 `long:"op-return-value" env:"XCP_OP_RETURN_VALUE" description:"value of the OP_RETURN data output" default:"1"`
	BuildWorkers  int    `long:"build-workers" env:"XCP_BUILD_WORKERS" description:"concurrent builds per batch" default:"4"`

	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"XCP_CLICKHOUSE_DSN" description:"ClickHouse DSN of the broadcast journal, empty to disable"`
	JournalFlushSize     int           `long:"journal-flush-size" env:"XCP_JOURNAL_FLUSH_SIZE" description:"broadcasts per journal insert" default:"100"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"XCP_JOURNAL_FLUSH_INTERVAL" description:"maximum delay before journal insert" default:"5s"`
}

// DustPolicy returns the output values configured by o.
func (o Options) DustPolicy() bitcoin.DustPolicy {
	return bitcoin.DustPolicy{
		Regular:       o.DustRegular,
		Multisig:      o.DustMultisig,
		OpReturnValue: o.OpReturnValue,
	}
}

// App holds the wired services of one network.
type App struct {
	RPC         *rpc.Client
	Assembler   *service.Assembler
	Transmitter *service.Transmitter
	Sender      *service.Sender
	Checker     *service.NodeChecker
	Unlocker    *service.WalletUnlocker
	Balances    *service.Balances
	// Repository is nil when no ClickHouse DSN is configured.
	Repository *clickhouse.Repository

	journal *service.Journal
	logger  *zap.Logger
}

// New wires the services described by opts. The journal starts with ctx and is
// flushed by Close.
func New(ctx context.Context, opts Options, logger *zap.Logger) (*App, error) {
	params, err := bitcoin.ChainParams(opts.Network)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("coin", string(opts.Coin)), zap.String("network", string(opts.Network)))

	client := rpc.NewClient(rpc.Config{
		URL:         opts.RPCURL,
		User:        opts.RPCUser,
		Password:    opts.RPCPassword,
		MaxAttempts: opts.RPCMaxAttempts,
		RetryDelay:  opts.RPCRetryDelay,
		Timeout:     opts.HTTPTimeout,
		RPS:         opts.RPCRateLimit,
	}, metrics.NewRPCClient(opts.Coin, opts.Network), logger)

	var (
		fallback service.CoinSource
		balances service.BalanceSource
	)
	if opts.InsightURL != "" {
		insight := indexer.NewInsight(opts.InsightURL, opts.HTTPTimeout, metrics.NewIndexer(opts.Coin, opts.Network))
		fallback, balances = insight, insight
	}
	coins := service.NewRoutedCoinSource(client, fallback)
	selector := service.NewSelector(coins)
	assembler := service.NewAssembler(
		params,
		opts.DustPolicy(),
		selector,
		client,
		metrics.NewAssembler(opts.Coin, opts.Network),
		opts.BuildWorkers,
	)
	transmitter := service.NewTransmitter(client, logger)

	a := &App{
		RPC:         client,
		Assembler:   assembler,
		Transmitter: transmitter,
		Checker:     service.NewNodeChecker(client),
		Unlocker:    service.NewWalletUnlocker(client, logger),
		Balances:    service.NewBalances(coins, balances),
		logger:      logger,
	}

	var recorder service.Recorder
	if opts.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(opts.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("init repository: %w", err)
		}
		a.Repository = repo
		a.journal = service.NewJournal(repo, batcher.Config{
			FlushSize:     opts.JournalFlushSize,
			FlushInterval: opts.JournalFlushInterval,
		}, metrics.NewJournal(opts.Coin, opts.Network), logger)
		a.journal.Start(ctx)
		recorder = a.journal
	}
	a.Sender = service.NewSender(assembler, transmitter, recorder, opts.Coin, opts.Network, logger)
	return a, nil
}

// Close flushes the journal and releases the repository connection.
func (a *App) Close() {
	if a.journal != nil {
		a.journal.Stop()
	}
	if a.Repository != nil {
		if err := a.Repository.Close(); err != nil {
			a.logger.Warn("close repository", zap.Error(err))
		}
	}
}
