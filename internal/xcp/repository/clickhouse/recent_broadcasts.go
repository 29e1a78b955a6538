package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
)

const recentBroadcastsQuery = `
SELECT
	coin,
	network,
	txid,
	source,
	destination,
	amount,
	fee,
	mode,
	payload_hex,
	unsigned_hex,
	created_at
FROM xcp_broadcasts FINAL
WHERE coin = ? AND network = ?
ORDER BY created_at DESC
LIMIT ?`

// RecentBroadcasts returns up to limit journaled broadcasts, newest first.
func (r *Repository) RecentBroadcasts(ctx context.Context, coin model.Coin, network model.Network, limit uint32) (result []model.Broadcast, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("recent_broadcasts", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, recentBroadcastsQuery, string(coin), string(network), limit)
	if err != nil {
		return nil, fmt.Errorf("query recent broadcasts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			b                   model.Broadcast
			coinCol, networkCol string
			modeCol             string
		)
		if err = rows.Scan(
			&coinCol,
			&networkCol,
			&b.TxID,
			&b.Source,
			&b.Destination,
			&b.Amount,
			&b.Fee,
			&modeCol,
			&b.PayloadHex,
			&b.UnsignedHex,
			&b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan broadcast: %w", err)
		}
		b.Coin = model.Coin(coinCol)
		b.Network = model.Network(networkCol)
		b.Mode = model.EmbeddingKind(modeCol)
		result = append(result, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate broadcasts: %w", err)
	}
	return result, nil
}
