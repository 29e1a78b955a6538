// Command xcp-craft builds, sends and inspects payload-carrying transactions
// against a Bitcoin node wallet.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/xcp-crafter/internal/app"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

// session is shared by the subcommands; the app is wired on first use so that
// --help never touches the node.
type session struct {
	ctx    context.Context
	opts   *app.Options
	logger *zap.Logger
	app    *app.App
}

func (s *session) open() (*app.App, error) {
	if s.app != nil {
		return s.app, nil
	}
	a, err := app.New(s.ctx, *s.opts, s.logger)
	if err != nil {
		return nil, err
	}
	s.app = a
	return a, nil
}

func (s *session) close() {
	if s.app != nil {
		s.app.Close()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := app.Options{}
	sess := &session{ctx: ctx, opts: &opts, logger: logger}
	defer sess.close()

	parser := newParser(&opts, sess, os.Stdout, os.Stdin)
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		sess.close()
		logger.Fatal("command failed", zap.Error(err))
	}
}
