package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/xcp-crafter/internal/app"
	"github.com/goodnatureofminers/xcp-crafter/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	app.Options

	RestAddr     string        `long:"rest-addr" env:"XCP_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	Passphrase   string        `long:"wallet-passphrase" env:"XCP_WALLET_PASSPHRASE" description:"unlock the node wallet on startup when it is locked"`
	WriteTimeout time.Duration `long:"write-timeout" env:"XCP_GATEWAY_WRITE_TIMEOUT" description:"HTTP write timeout, covers node retries" default:"90s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	a, err := app.New(ctx, cfg.Options, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.Passphrase != "" {
		unlocked, err := a.Unlocker.Unlock(ctx, cfg.Passphrase)
		if err != nil {
			return err
		}
		if unlocked {
			logger.Info("node wallet unlocked")
		}
	}

	mux := http.NewServeMux()
	transport.NewTxHandler(a.Assembler, a.Sender, a.Checker, a.RPC, logger).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
