// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop has been called.
var ErrStopped = context.Canceled

// Observer is notified after every flush attempt.
type Observer interface {
	ObserveFlush(size int, err error, started time.Time)
}

// Config controls batch size, cadence and throughput.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	// RPS limits flushes per second; zero disables the limit.
	RPS int
}

// Batcher buffers items and flushes them either by size or interval. Items still
// queued when the batcher stops are flushed before Stop returns, with a context that
// is no longer canceled by the parent.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	observer      Observer
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. observer may be nil.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, cfg Config, observer Observer) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, cfg.FlushSize*2),
		flushSize:     cfg.FlushSize,
		flushInterval: cfg.FlushInterval,
		rl:            rl,
		observer:      observer,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop stops the background flushing loop and waits for the final flush. It is safe
// to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(flushCtx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		started := time.Now()
		err := b.flushCallback(flushCtx, buf)
		if b.observer != nil {
			b.observer.ObserveFlush(len(buf), err, started)
		}
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	// drain moves whatever is still queued into buf, flushing full batches.
	drain := func(flushCtx context.Context) {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					flush(flushCtx)
				}
			default:
				flush(flushCtx)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain(context.WithoutCancel(ctx))
			return

		case <-b.stop:
			drain(context.WithoutCancel(ctx))
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
