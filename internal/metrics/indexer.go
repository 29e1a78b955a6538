package metrics

import (
	"time"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "requests_total",
		Help:      "Count of block explorer requests.",
	}, []string{"operation", "coin", "network", "status"})
	indexerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "request_duration_seconds",
		Help:      "Duration of block explorer requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// Indexer tracks metrics for block explorer requests.
type Indexer struct {
	coin    string
	network string
}

func NewIndexer(coin model.Coin, network model.Network) *Indexer {
	c, n := chainLabels(coin, network)
	return &Indexer{coin: c, network: n}
}

func (m Indexer) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	indexerRequestsTotal.WithLabelValues(operation, m.coin, m.network, status).Inc()
	indexerRequestDuration.WithLabelValues(operation, m.coin, m.network, status).Observe(time.Since(started).Seconds())
}
