package vkinit

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts bootstrap outcomes and diagnostic traffic. A nil *Metrics
// records nothing.
type Metrics struct {
	DiagnosticMessages *prometheus.CounterVec
	InstanceCreations  *prometheus.CounterVec
	LayerChecks        *prometheus.CounterVec
}

// NewMetrics creates the bootstrap metrics and registers them with reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DiagnosticMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vkinit_diagnostic_messages_total",
			Help: "Diagnostic messages delivered by the driver, by severity and category",
		}, []string{"severity", "category"}),
		InstanceCreations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vkinit_instance_creations_total",
			Help: "Instance creation attempts that reached the driver, by outcome",
		}, []string{"outcome"}),
		LayerChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vkinit_layer_checks_total",
			Help: "Validation layer checks, by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) diagnostic(msg DiagnosticMessage) {
	if m == nil {
		return
	}
	m.DiagnosticMessages.WithLabelValues(msg.Severity.String(), msg.Category.String()).Inc()
}

func (m *Metrics) layerCheck(err error) {
	if m == nil {
		return
	}
	var notFound *LayerNotFoundError
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNoLayersAvailable):
		outcome = "no_layers"
	case errors.As(err, &notFound):
		outcome = "layer_not_found"
	default:
		outcome = "error"
	}
	m.LayerChecks.WithLabelValues(outcome).Inc()
}

func (m *Metrics) instanceCreation(err error) {
	if m == nil {
		return
	}
	var rejected *InstanceCreationError
	outcome := "ok"
	switch {
	case err == nil:
	case errors.As(err, &rejected):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	m.InstanceCreations.WithLabelValues(outcome).Inc()
}
