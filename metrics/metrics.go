// Package metrics provides Prometheus metrics collection for the dosing
// engine. It exports counters for tracking calculation volume and parser
// behavior:
//   - dosing_calculations_total: Counter with a form label
//   - dosing_estimates_total: Counter of estimate-flagged quantities
//   - dosing_frequency_unmatched_total: Counter of frequency parses with no match
//   - unit_conversions_total: Counter with a target unit label
//
// The core calculation and conversion functions stay pure; metrics are
// collected only through the instrumented wrappers in this package. All
// metrics are automatically registered with the Prometheus default registry
// during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	QuantityCalculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dosing_calculations_total",
			Help: "Total dispense quantity calculations",
		},
		[]string{"form"},
	)

	EstimateResultsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dosing_estimates_total",
			Help: "Calculations whose quantity is an upper-bound estimate",
		},
	)

	FrequencyUnmatchedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dosing_frequency_unmatched_total",
			Help: "Frequency parses that matched no catalog keyword",
		},
	)

	UnitConversionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unit_conversions_total",
			Help: "Unit conversions performed",
		},
		[]string{"unit"},
	)
)

func init() {
	prometheus.MustRegister(QuantityCalculationsTotal)
	prometheus.MustRegister(EstimateResultsTotal)
	prometheus.MustRegister(FrequencyUnmatchedTotal)
	prometheus.MustRegister(UnitConversionsTotal)
}
