package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
)

const insertBroadcastsQuery = `
INSERT INTO xcp_broadcasts (
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
) VALUES`

// InsertBroadcasts stores journal rows in ClickHouse.
func (r *Repository) InsertBroadcasts(ctx context.Context, broadcasts []model.Broadcast) (err error) {
	start := time.Now()
	defer func() {
		coin, network := labels(broadcasts)
		r.metrics.Observe("insert_broadcasts", coin, network, err, start)
	}()

	if len(broadcasts) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBroadcastsQuery)
	if err != nil {
		return fmt.Errorf("prepare broadcasts batch: %w", err)
	}

	for _, b := range broadcasts {
		if err = batch.Append(
			string(b.Coin),
			string(b.Network),
			b.TxID,
			b.Source,
			b.Destination,
			b.Amount,
			b.Fee,
			string(b.Mode),
			b.PayloadHex,
			b.UnsignedHex,
			b.CreatedAt,
		); err != nil {
			return fmt.Errorf("append broadcast %s: %w", b.TxID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert broadcasts: %w", err)
	}
	return nil
}

func labels(broadcasts []model.Broadcast) (model.Coin, model.Network) {
	if len(broadcasts) == 0 {
		return "", ""
	}
	return broadcasts[0].Coin, broadcasts[0].Network
}
