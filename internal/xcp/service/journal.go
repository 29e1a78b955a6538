package service

import (
	"context"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/goodnatureofminers/xcp-crafter/pkg/batcher"
	"go.uber.org/zap"
)

// Journal queues broadcasts and writes them to the repository in batches.
type Journal struct {
	repo    BroadcastRepository
	batcher *batcher.Batcher[model.Broadcast]
}

// NewJournal constructs a Journal. observer may be nil.
func NewJournal(repo BroadcastRepository, cfg batcher.Config, observer batcher.Observer, logger *zap.Logger) *Journal {
	j := &Journal{repo: repo}
	j.batcher = batcher.New[model.Broadcast](logger.Named("journal"), j.flush, cfg, observer)
	return j
}

// Start begins background flushing.
func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop flushes pending broadcasts and stops the journal.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// Record implements Recorder.
func (j *Journal) Record(ctx context.Context, broadcast model.Broadcast) error {
	return j.batcher.Add(ctx, broadcast)
}

func (j *Journal) flush(ctx context.Context, broadcasts []model.Broadcast) error {
	return j.repo.InsertBroadcasts(ctx, broadcasts)
}
