package metrics

import (
	"time"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	journalFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "flush_total",
		Help:      "Count of broadcast journal flushes.",
	}, []string{"coin", "network", "status"})
	journalFlushedItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "flushed_items_total",
		Help:      "Count of broadcasts handed to the journal repository.",
	}, []string{"coin", "network", "status"})
	journalFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "flush_duration_seconds",
		Help:      "Duration of broadcast journal flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})
)

// Journal tracks broadcast journal flushes.
type Journal struct {
	coin    string
	network string
}

func NewJournal(coin model.Coin, network model.Network) *Journal {
	c, n := chainLabels(coin, network)
	return &Journal{coin: c, network: n}
}

// ObserveFlush records a flush of size broadcasts.
func (m Journal) ObserveFlush(size int, err error, started time.Time) {
	status := statusLabel(err)
	journalFlushTotal.WithLabelValues(m.coin, m.network, status).Inc()
	journalFlushedItems.WithLabelValues(m.coin, m.network, status).Add(float64(size))
	journalFlushDuration.WithLabelValues(m.coin, m.network, status).Observe(time.Since(started).Seconds())
}
