// Package rpc implements a JSON-RPC client for a Bitcoin node wallet.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/xcp-crafter/internal/clock"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 12
	DefaultRetryDelay  = 5 * time.Second
	DefaultTimeout     = 30 * time.Second
)

// Config describes how to reach the node.
type Config struct {
	URL      string
	User     string
	Password string
	// MaxAttempts bounds connection attempts per call.
	MaxAttempts int
	// RetryDelay is slept after every failed connection attempt.
	RetryDelay time.Duration
	Timeout    time.Duration
	// RPS throttles outgoing calls; zero disables throttling.
	RPS int
}

// Client talks to the node. It is safe for concurrent use.
type Client struct {
	url         string
	user        string
	password    string
	httpClient  *http.Client
	maxAttempts int
	retryDelay  time.Duration
	sleep       clock.SleepFunc
	limiter     ratelimit.Limiter
	rpcMetrics  RPCMetrics
	logger      *zap.Logger
}

// NewClient constructs a Client sharing one keep-alive http.Client across calls.
func NewClient(cfg Config, rpcMetrics RPCMetrics, logger *zap.Logger) *Client {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Client{
		url:         cfg.URL,
		user:        cfg.User,
		password:    cfg.Password,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
		sleep:       clock.Sleep,
		limiter:     limiter,
		rpcMetrics:  rpcMetrics,
		logger:      logger.Named("rpc"),
	}
}

type request struct {
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
}

type response struct {
	Result json.RawMessage   `json:"result"`
	Error  *btcjson.RPCError `json:"error"`
}

// Call invokes method with positional params and returns the raw result.
func (c *Client) Call(ctx context.Context, method string, params ...any) (result json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(method, err, started)
	}()

	result, err = c.call(ctx, method, params)
	var rpcErr *btcjson.RPCError
	if !errors.As(err, &rpcErr) {
		return result, err
	}
	return nil, c.classify(ctx, method, rpcErr, params)
}

func (c *Client) call(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(request{Method: method, Params: params, JSONRPC: "2.0", ID: 0})
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", method, err)
	}

	resp, err := c.post(ctx, method, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusInternalServerError {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if decoded.Error != nil {
		return nil, decoded.Error
	}
	return decoded.Result, nil
}

// post sends body, retrying only failures to establish a connection. Once a request
// may have reached the node it is never re-sent.
func (c *Client) post(ctx context.Context, method string, body []byte) (*http.Response, error) {
	for attempt := 1; ; attempt++ {
		c.limiter.Take()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("build %s request: %w", method, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth(c.user, c.password)

		resp, err := c.httpClient.Do(req)
		if err == nil {
			if attempt > 1 {
				c.logger.Info("connection to node recovered", zap.String("method", method), zap.Int("attempt", attempt))
			}
			return resp, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !isDialError(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNodeUnreachable, method, err)
		}

		c.logger.Warn("connection to node failed",
			zap.String("method", method),
			zap.Int("attempt", attempt),
			zap.Int("limit", c.maxAttempts),
			zap.Error(err),
		)
		if err := c.sleep(ctx, c.retryDelay); err != nil {
			return nil, err
		}
		if attempt >= c.maxAttempts {
			return nil, fmt.Errorf("%w: %s: gave up after %d attempts: %w", ErrNodeUnreachable, method, attempt, err)
		}
	}
}

func isDialError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// addressKeyed lists the wallet methods whose first parameter is an address. Only
// these are resolved through the ownership lookup.
var addressKeyed = map[string]bool{
	"dumpprivkey": true,
}

// classify maps node error codes to the package errors. Code -4 on an address-keyed
// call is ambiguous between a locked wallet and a foreign address, so the address in
// params[0] is looked up. Parameters are never copied into the returned error.
func (c *Client) classify(ctx context.Context, method string, rpcErr *btcjson.RPCError, params []any) error {
	switch rpcErr.Code {
	case btcjson.ErrRPCInvalidAddressOrKey:
		return fmt.Errorf("%w: %s", ErrAddressIndexing, rpcErr.Message)
	case btcjson.ErrRPCWallet:
		if !addressKeyed[method] {
			break
		}
		address, ok := firstString(params)
		if !ok {
			break
		}
		owner, err := c.validateAddress(ctx, address)
		if err != nil {
			return fmt.Errorf("look up address ownership for %s: %w", method, err)
		}
		if owner.IsMine {
			return fmt.Errorf("%w: %s", ErrWalletLocked, rpcErr.Message)
		}
		if owner.IsValid && owner.Address != "" {
			return fmt.Errorf("%w: %s", ErrAddressNotOwned, owner.Address)
		}
		return fmt.Errorf("%w: %s", ErrAddressNotOwned, rpcErr.Message)
	}
	return &NodeError{Code: rpcErr.Code, Message: rpcErr.Message}
}

func firstString(params []any) (string, bool) {
	if len(params) == 0 {
		return "", false
	}
	s, ok := params[0].(string)
	return s, ok
}
