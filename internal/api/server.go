package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/signalsfoundry/itu-propagation/internal/logging"
	"github.com/signalsfoundry/itu-propagation/internal/observability"
	"github.com/signalsfoundry/itu-propagation/kb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/signalsfoundry/itu-propagation/internal/api"

const requestIDHeader = "X-Request-Id"

// Server exposes the propagation models over a small JSON/HTTP surface. All
// model state lives in the material knowledge base; the handlers themselves
// are stateless.
type Server struct {
	materials *kb.MaterialKB
	collector *observability.ModelCollector
	log       logging.Logger
}

// NewServer constructs the API server. collector may be nil to disable
// metrics; log may be nil for a silent server.
func NewServer(materials *kb.MaterialKB, collector *observability.ModelCollector, log logging.Logger) *Server {
	if materials == nil {
		materials = kb.NewMaterialKB()
	}
	if log == nil {
		log = logging.Noop()
	}
	return &Server{
		materials: materials,
		collector: collector,
		log:       log,
	}
}

// Routes returns the handler tree with per-endpoint instrumentation applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /v1/freespace", s.instrument("P.525", "freespace", s.handleFreeSpace))
	mux.Handle("POST /v1/water", s.instrument("P.527", "water", s.handleWater))
	mux.Handle("POST /v1/soil", s.instrument("P.527", "soil", s.handleSoil))
	mux.Handle("POST /v1/material", s.instrument("P.2040", "material", s.handleMaterial))
	mux.Handle("POST /v1/waveguide", s.instrument("P.2040", "waveguide", s.handleWaveguide))
	mux.HandleFunc("GET /v1/materials", s.handleListMaterials)
	return mux
}

// instrument wraps a model handler with request-ID logging, a server span,
// and evaluation metrics. It is the HTTP analogue of a unary interceptor
// chain: handlers return an outcome label rather than writing metrics
// themselves.
func (s *Server) instrument(recommendation, modelName string, h func(http.ResponseWriter, *http.Request) string) http.Handler {
	tracer := otel.Tracer(tracerName)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if incoming := r.Header.Get(requestIDHeader); incoming != "" {
			ctx = logging.ContextWithRequestID(ctx, incoming)
		}
		ctx, reqLog := logging.WithRequestLogger(ctx, s.log.With(logging.String("model", modelName)))

		ctx, span := tracer.Start(ctx, "Propagation/"+modelName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("propagation.recommendation", recommendation),
				attribute.String("propagation.model", modelName),
			),
		)
		defer span.End()

		start := time.Now()
		outcome := h(w, r.WithContext(ctx))
		elapsed := time.Since(start)

		span.SetAttributes(attribute.String("propagation.outcome", outcome))
		s.collector.ObserveEvaluation(recommendation, modelName, outcome, elapsed)

		if outcome != outcomeOK {
			reqLog.Debug(ctx, "model evaluation rejected", logging.String("outcome", outcome))
		}
	})
}

// handleListMaterials reports the registered material records, mainly for
// operators checking what a deployment has loaded.
func (s *Server) handleListMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.materials.ListMaterials())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
