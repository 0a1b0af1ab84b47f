package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ModelCollector bundles Prometheus metrics for the propagation model
// surface and provides helpers to wire them into HTTP handlers.
type ModelCollector struct {
	gatherer prometheus.Gatherer

	Evaluations   *prometheus.CounterVec
	EvalDurations *prometheus.HistogramVec

	RegisteredMaterials prometheus.Gauge
}

// NewModelCollector registers propagation metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewModelCollector(reg prometheus.Registerer) (*ModelCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "propagation_evaluations_total",
		Help: "Total number of model evaluations, labeled by Recommendation, model, and outcome.",
	}, []string{"recommendation", "model", "outcome"})
	evaluations, err := registerCounterVec(reg, evaluations, "propagation_evaluations_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "propagation_evaluation_duration_seconds",
		Help:    "Model evaluation latency in seconds, including request decode/encode.",
		Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05, 0.1},
	}, []string{"model"})
	durations, err = registerHistogramVec(reg, durations, "propagation_evaluation_duration_seconds")
	if err != nil {
		return nil, err
	}

	materials, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "propagation_registered_materials",
		Help: "Current number of material records in the coefficient knowledge base.",
	}), "propagation_registered_materials")
	if err != nil {
		return nil, err
	}

	return &ModelCollector{
		gatherer:            gatherer,
		Evaluations:         evaluations,
		EvalDurations:       durations,
		RegisteredMaterials: materials,
	}, nil
}

// ObserveEvaluation records one model evaluation.
func (c *ModelCollector) ObserveEvaluation(recommendation, modelName, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	if c.Evaluations != nil {
		c.Evaluations.WithLabelValues(recommendation, modelName, outcome).Inc()
	}
	if c.EvalDurations != nil {
		c.EvalDurations.WithLabelValues(modelName).Observe(elapsed.Seconds())
	}
}

// SetMaterialCount satisfies the MaterialKB count-change callback so the
// registry can drive the gauge directly from its mutators.
func (c *ModelCollector) SetMaterialCount(n int) {
	if c == nil || c.RegisteredMaterials == nil {
		return
	}
	c.RegisteredMaterials.Set(float64(n))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *ModelCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
