// Package indexer reads unspent outputs of arbitrary addresses from an Insight
// block explorer, for sources the node wallet does not own.
package indexer

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/bitcoin"
	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/goodnatureofminers/xcp-crafter/pkg/safe"
)

// ErrBadStatus reports a non-200 response from the explorer.
var ErrBadStatus = errors.New("insight returned bad status code")

type insightUnspent struct {
	Address       string  `json:"address"`
	TxID          string  `json:"txid"`
	Vout          int64   `json:"vout"`
	ScriptPubKey  string  `json:"scriptPubKey"`
	Amount        float64 `json:"amount"`
	Confirmations int64   `json:"confirmations"`
}

type insightAddress struct {
	Balance    float64 `json:"balance"`
	BalanceSat int64   `json:"balanceSat"`
}

// Insight queries the /api/addr endpoints of an Insight explorer.
type Insight struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
}

// NewInsight constructs an Insight client rooted at baseURL.
func NewInsight(baseURL string, timeout time.Duration, metrics Metrics) *Insight {
	return &Insight{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics,
	}
}

// Unspent returns the unspent outputs of address in explorer order.
func (i *Insight) Unspent(ctx context.Context, address string) (coins []model.UnspentCoin, err error) {
	started := time.Now()
	defer func() {
		i.metrics.Observe("insight_utxo", err, started)
	}()

	var raw []insightUnspent
	if err := i.get(ctx, "/api/addr/"+url.PathEscape(address)+"/utxo", &raw); err != nil {
		return nil, err
	}

	coins = make([]model.UnspentCoin, 0, len(raw))
	for _, u := range raw {
		coin, err := convertUnspent(u)
		if err != nil {
			return nil, fmt.Errorf("convert utxo %s:%d: %w", u.TxID, u.Vout, err)
		}
		coins = append(coins, coin)
	}
	return coins, nil
}

// Balance returns the confirmed balance of address in satoshis.
func (i *Insight) Balance(ctx context.Context, address string) (balance uint64, err error) {
	started := time.Now()
	defer func() {
		i.metrics.Observe("insight_balance", err, started)
	}()

	var raw insightAddress
	if err := i.get(ctx, "/api/addr/"+url.PathEscape(address), &raw); err != nil {
		return 0, err
	}
	return safe.Uint64(raw.BalanceSat)
}

func (i *Insight) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := i.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: %d", ErrBadStatus, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func convertUnspent(u insightUnspent) (model.UnspentCoin, error) {
	vout, err := safe.Uint32(u.Vout)
	if err != nil {
		return model.UnspentCoin{}, fmt.Errorf("vout: %w", err)
	}
	amount, err := bitcoin.BtcToSatoshis(u.Amount)
	if err != nil {
		return model.UnspentCoin{}, fmt.Errorf("amount: %w", err)
	}
	script, err := hex.DecodeString(u.ScriptPubKey)
	if err != nil {
		return model.UnspentCoin{}, fmt.Errorf("script: %w", err)
	}
	return model.UnspentCoin{
		TxID:          u.TxID,
		Vout:          vout,
		Address:       u.Address,
		Amount:        amount,
		ScriptPubKey:  script,
		Confirmations: u.Confirmations,
	}, nil
}
