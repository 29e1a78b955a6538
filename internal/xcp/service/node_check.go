package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/bitcoin"
)

// MaxTipAge is how old the best block may be before the node counts as behind.
const MaxTipAge = 2 * time.Hour

// ErrNodeBehind reports a best block older than MaxTipAge.
var ErrNodeBehind = errors.New("node is behind the network")

// NodeStatus describes the node's best block.
type NodeStatus struct {
	Height  int64
	Hash    string
	TipTime time.Time
	Age     time.Duration
}

// NodeChecker inspects the node's view of the chain.
type NodeChecker struct {
	chain  ChainReader
	maxAge time.Duration
	now    func() time.Time
}

// NewNodeChecker constructs a NodeChecker using MaxTipAge.
func NewNodeChecker(chain ChainReader) *NodeChecker {
	return &NodeChecker{chain: chain, maxAge: MaxTipAge, now: time.Now}
}

// Check returns the best block status, with ErrNodeBehind when the tip is stale.
func (c *NodeChecker) Check(ctx context.Context) (NodeStatus, error) {
	height, err := c.chain.GetBlockCount(ctx)
	if err != nil {
		return NodeStatus{}, fmt.Errorf("get block count: %w", err)
	}
	hash, err := c.chain.GetBlockHash(ctx, height)
	if err != nil {
		return NodeStatus{}, fmt.Errorf("get block hash %d: %w", height, err)
	}
	block, err := c.chain.GetBlock(ctx, hash)
	if err != nil {
		return NodeStatus{}, fmt.Errorf("get block %s: %w", hash, err)
	}

	tip := time.Unix(block.Time, 0)
	status := NodeStatus{Height: height, Hash: hash, TipTime: tip, Age: c.now().Sub(tip)}
	if status.Age > c.maxAge {
		return status, fmt.Errorf("%w: last block %s old", ErrNodeBehind, status.Age.Truncate(time.Second))
	}
	return status, nil
}

// Supply returns the satoshis issued up to the node's current height.
func (c *NodeChecker) Supply(ctx context.Context) (uint64, error) {
	height, err := c.chain.GetBlockCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	return bitcoin.Supply(height), nil
}
