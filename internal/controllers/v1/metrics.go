package v1

import (
	"strconv"

	"github.com/pockets-budget/backend/internal/payoff"
	"github.com/prometheus/client_golang/prometheus"
)

var planCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "payoff_plans_total",
		Help: "How many payoff plans were calculated, partitioned by strategy and whether all debts are paid off.",
	},
	[]string{"strategy", "converged"},
)

var planMonths = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "payoff_plan_months",
		Help:    "Months until all debts are paid off for calculated payoff plans.",
		Buckets: []float64{6, 12, 24, 36, 60, 120, 240, 360, 600, payoff.MaxMonths},
	},
	[]string{"strategy"},
)

// Metrics returns the Prometheus collectors of the v1 API.
func Metrics() []prometheus.Collector {
	return []prometheus.Collector{
		planCount,
		planMonths,
	}
}

func observePlan(s payoff.Strategy) {
	planCount.WithLabelValues(string(s.Type), strconv.FormatBool(s.Converged)).Inc()
	planMonths.WithLabelValues(string(s.Type)).Observe(float64(s.MonthsToPayoff))
}
