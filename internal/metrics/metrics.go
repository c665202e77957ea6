// Package metrics exposes the break-room counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/chillmcp/pkg/domain"
)

// Metrics holds the Prometheus collectors for the gate.
type Metrics struct {
	breaksTotal    *prometheus.CounterVec
	delaysTotal    prometheus.Counter
	stressLevel    prometheus.Gauge
	bossAlertLevel prometheus.Gauge
}

// New registers the collectors with reg and returns the set.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		breaksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chillmcp_breaks_total",
				Help: "Total number of break calls, by action name.",
			},
			[]string{"action"},
		),
		delaysTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "chillmcp_boss_delays_total",
				Help: "Total number of responses held back by a maxed boss alert.",
			},
		),
		stressLevel: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "chillmcp_stress_level",
				Help: "Stress Level after the most recent state update (0-100).",
			},
		),
		bossAlertLevel: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "chillmcp_boss_alert_level",
				Help: "Boss Alert Level after the most recent state update (0-5).",
			},
		),
	}
	reg.MustRegister(m.breaksTotal, m.delaysTotal, m.stressLevel, m.bossAlertLevel)
	return m
}

// Hooks adapts the collectors to the gate's observability hooks.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnBreak: func(res domain.BreakResult) {
			m.breaksTotal.WithLabelValues(res.Profile.Name).Inc()
			if res.Delayed {
				m.delaysTotal.Inc()
			}
			m.observe(res.Snapshot)
		},
		OnStatus: func(snap domain.Snapshot) {
			m.observe(snap)
		},
	}
}

func (m *Metrics) observe(snap domain.Snapshot) {
	m.stressLevel.Set(float64(snap.Stress))
	m.bossAlertLevel.Set(float64(snap.BossAlert))
}
