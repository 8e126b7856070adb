package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's prometheus collectors on a private registry so
// tests can run multiple servers without collector collisions.
type metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	estimations  prometheus.Counter
	projectOps   *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "buildwise_calculations_total",
			Help: "Calculator requests served, by material.",
		}, []string{"calculator"}),
		estimations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "buildwise_estimations_total",
			Help: "Material cost estimation requests served.",
		}),
		projectOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "buildwise_project_operations_total",
			Help: "Project storage operations served, by operation.",
		}, []string{"operation"}),
	}
	m.registry.MustRegister(m.calculations, m.estimations, m.projectOps)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
