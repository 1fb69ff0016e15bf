package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/Spok95/canna-erp/internal/domain/packages"
	"github.com/Spok95/canna-erp/internal/domain/uoms"
	"github.com/Spok95/canna-erp/internal/domain/usableweights"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "canna"

type Metrics struct {
	SplitPreviews       *prometheus.CounterVec
	WeightImports       *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SplitPreviews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_previews_total",
			Help:      "Split previews computed, by outcome.",
		}, []string{"outcome"}),
		WeightImports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "usable_weight_imports_total",
			Help:      "Usable weight table loads and imports, by source and result.",
		}, []string{"source", "result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.SplitPreviews, m.WeightImports, m.HTTPRequests, m.HTTPRequestDuration)
	return m
}

// Outcome сводит ошибку Deduction/Preview к метке.
func Outcome(err error) string {
	var (
		unknownUnit   *uoms.UnknownUnitError
		incompatible  *uoms.IncompatibleUnitsError
		unknownWeight *usableweights.UnknownUsableWeightError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &unknownUnit):
		return "unknown_unit"
	case errors.As(err, &incompatible):
		return "incompatible_units"
	case errors.As(err, &unknownWeight):
		return "unknown_usable_weight"
	case errors.Is(err, packages.ErrNegativeQuantity):
		return "negative_quantity"
	case errors.Is(err, packages.ErrInvalidQuantity):
		return "invalid_quantity"
	default:
		return "error"
	}
}

func (m *Metrics) ObserveSplit(err error) {
	m.SplitPreviews.WithLabelValues(Outcome(err)).Inc()
}

func (m *Metrics) ObserveWeightImport(source string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.WeightImports.WithLabelValues(source, result).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, took time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(took.Seconds())
}
