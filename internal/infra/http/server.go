package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Spok95/canna-erp/internal/domain/packages"
	"github.com/Spok95/canna-erp/internal/domain/uoms"
	"github.com/Spok95/canna-erp/internal/domain/usableweights"
	"github.com/Spok95/canna-erp/internal/infra/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type UoMLister interface {
	List(ctx context.Context) ([]uoms.UnitOfMeasure, error)
}

type WeightStore interface {
	ReplaceAll(ctx context.Context, entries []usableweights.Entry) error
}

// Deps: всё, что нужно обработчикам. Metrics, Gatherer и WeightStore необязательны.
type Deps struct {
	Log         *slog.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	Converter   *packages.Converter
	Weights     *usableweights.Registry
	WeightStore WeightStore
	UoMs        UoMLister
}

type Server struct {
	srv *http.Server
}

func New(addr string, d Deps) *Server {
	return &Server{srv: &http.Server{
		Addr:              addr,
		Handler:           NewHandler(d),
		ReadHeaderTimeout: 10 * time.Second,
	}}
}

func NewHandler(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	a := &api{deps: d, validate: validator.New(validator.WithRequiredStructEnabled())}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if d.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	mux.HandleFunc("GET /api/uoms", a.listUoMs)
	mux.HandleFunc("POST /api/packages/split-preview", a.splitPreview)
	mux.HandleFunc("GET /api/usable-weights", a.listWeights)
	mux.HandleFunc("GET /api/usable-weights.xlsx", a.exportWeights)
	mux.HandleFunc("PUT /api/usable-weights", a.importWeights)

	return withRequestID(withAccessLog(d.Log, d.Metrics, mux))
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
