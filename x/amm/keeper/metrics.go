package keeper

import (
	"math/big"
	"sync"
	"time"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

// Metrics holds the Prometheus instrumentation for the AMM module.
type Metrics struct {
	TradesTotal      *prometheus.CounterVec
	TradeVolumeQuote *prometheus.CounterVec
	TradeLatency     prometheus.Histogram

	PoolReserveBase  prometheus.Gauge
	PoolReserveQuote prometheus.Gauge
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers the AMM metrics (singleton pattern).
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			TradesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "simswap",
					Subsystem: types.ModuleName,
					Name:      "trades_total",
					Help:      "Total number of trades by direction and outcome",
				},
				[]string{"direction", "status"},
			),
			TradeVolumeQuote: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "simswap",
					Subsystem: types.ModuleName,
					Name:      "trade_volume_quote_total",
					Help:      "Cumulative traded volume in quote smallest units",
				},
				[]string{"direction"},
			),
			TradeLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "simswap",
					Subsystem: types.ModuleName,
					Name:      "trade_latency_seconds",
					Help:      "Trade execution latency",
					Buckets:   prometheus.DefBuckets,
				},
			),
			PoolReserveBase: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "simswap",
					Subsystem: types.ModuleName,
					Name:      "pool_reserve_base",
					Help:      "Current base-asset reserve in smallest units",
				},
			),
			PoolReserveQuote: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "simswap",
					Subsystem: types.ModuleName,
					Name:      "pool_reserve_quote",
					Help:      "Current quote-asset reserve in smallest units",
				},
			),
		}
	})
	return metrics
}

func (k Keeper) recordTrade(direction string, err error, start time.Time) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	k.metrics.TradesTotal.WithLabelValues(direction, status).Inc()
	k.metrics.TradeLatency.Observe(time.Since(start).Seconds())
}

// intToFloat lossily converts a reserve amount for gauge export. Precision
// above float64 range does not matter for dashboards.
func intToFloat(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
