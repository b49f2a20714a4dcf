// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package experiment

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	experimentLabel = "experiment"
	trialsLabel     = "trials"
)

var (
	experimentLabels = []string{experimentLabel}
	// Statistics of a run depend on its trial count.
	runLabels = []string{experimentLabel, trialsLabel}
)

// Metrics exports the outcome of every finished experiment. Counters are
// summed over every trial count an experiment ran with.
type Metrics struct {
	trials               *prometheus.CounterVec
	draws                *prometheus.CounterVec
	chiSquared           *prometheus.GaugeVec
	pValue               *prometheus.GaugeVec
	maxRelativeDeviation *prometheus.GaugeVec
	duration             *prometheus.GaugeVec
}

func NewMetrics(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		trials: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "trials",
				Help:      "Number of trials run",
			},
			experimentLabels,
		),
		draws: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "draws",
				Help:      "Number of random draws consumed",
			},
			experimentLabels,
		),
		chiSquared: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "chi_squared",
				Help:      "Pearson chi-squared statistic of the observed selection counts",
			},
			runLabels,
		),
		pValue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "p_value",
				Help:      "Chi-squared goodness of fit p-value",
			},
			runLabels,
		),
		maxRelativeDeviation: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "max_relative_deviation",
				Help:      "Largest relative deviation of an observed count from its expectation",
			},
			runLabels,
		),
		duration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "duration_seconds",
				Help:      "Time spent running the trials",
			},
			runLabels,
		),
	}

	err := errors.Join(
		registerer.Register(m.trials),
		registerer.Register(m.draws),
		registerer.Register(m.chiSquared),
		registerer.Register(m.pValue),
		registerer.Register(m.maxRelativeDeviation),
		registerer.Register(m.duration),
	)
	return m, err
}

// Observe records [result] and its [summary].
func (m *Metrics) Observe(result *Result, summary Summary) {
	perExperiment := prometheus.Labels{experimentLabel: result.Name}
	m.trials.With(perExperiment).Add(float64(result.Trials))
	m.draws.With(perExperiment).Add(float64(result.Draws))

	perRun := prometheus.Labels{
		experimentLabel: result.Name,
		trialsLabel:     strconv.Itoa(result.Trials),
	}
	m.chiSquared.With(perRun).Set(summary.ChiSquared)
	m.pValue.With(perRun).Set(summary.PValue)
	m.maxRelativeDeviation.With(perRun).Set(summary.MaxRelativeDeviation)
	m.duration.With(perRun).Set(result.Duration.Seconds())
}
