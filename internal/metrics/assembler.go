package metrics

import (
	"time"

	"github.com/goodnatureofminers/xcp-crafter/internal/xcp/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "assembler",
		Name:      "builds_total",
		Help:      "Count of transaction builds by embedding mode.",
	}, []string{"coin", "network", "mode", "status"})
	buildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "assembler",
		Name:      "build_duration_seconds",
		Help:      "Duration of transaction builds, coin selection included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "mode", "status"})
)

// Assembler tracks transaction builds.
type Assembler struct {
	coin    string
	network string
}

func NewAssembler(coin model.Coin, network model.Network) *Assembler {
	c, n := chainLabels(coin, network)
	return &Assembler{coin: c, network: n}
}

// Observe records one build of the given embedding mode.
func (m Assembler) Observe(mode string, err error, started time.Time) {
	status := statusLabel(err)
	buildsTotal.WithLabelValues(m.coin, m.network, mode, status).Inc()
	buildDuration.WithLabelValues(m.coin, m.network, mode, status).Observe(time.Since(started).Seconds())
}
