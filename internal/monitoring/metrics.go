package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ordersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridsim_orders_total",
			Help: "Order intents submitted, by symbol and side",
		},
		[]string{"symbol", "side"},
	)

	orderOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridsim_order_outcomes_total",
			Help: "Terminal order notifications, by status",
		},
		[]string{"status"},
	)

	commissionTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gridsim_commission_total",
			Help: "Commission accumulated over all fills",
		},
	)

	portfolioValue = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gridsim_portfolio_value",
			Help: "Portfolio value at the last processed bar",
		},
	)

	volatilityGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gridsim_atr",
			Help: "Rolling average true range per symbol",
		},
		[]string{"symbol"},
	)
)

func init() {
	prometheus.MustRegister(ordersTotal)
	prometheus.MustRegister(orderOutcomes)
	prometheus.MustRegister(commissionTotal)
	prometheus.MustRegister(portfolioValue)
	prometheus.MustRegister(volatilityGauge)
}

// RecordOrder records a submitted order intent.
func RecordOrder(symbol, side string) {
	ordersTotal.WithLabelValues(symbol, side).Inc()
}

// RecordOutcome records a terminal order notification.
func RecordOutcome(status string, commission float64) {
	orderOutcomes.WithLabelValues(status).Inc()
	if commission > 0 {
		commissionTotal.Add(commission)
	}
}

// RecordPortfolioValue updates the portfolio value gauge.
func RecordPortfolioValue(value float64) {
	portfolioValue.Set(value)
}

// RecordVolatility updates the per-symbol ATR gauge.
func RecordVolatility(symbol string, atr float64) {
	volatilityGauge.WithLabelValues(symbol).Set(atr)
}

// Serve exposes /metrics on addr for the duration of the run. It returns
// immediately; the listener runs until the process exits.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		_ = http.ListenAndServe(addr, mux)
	}()
}
