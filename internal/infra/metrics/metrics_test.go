package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Spok95/canna-erp/internal/domain/packages"
	"github.com/Spok95/canna-erp/internal/domain/uoms"
	"github.com/Spok95/canna-erp/internal/domain/usableweights"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{&uoms.UnknownUnitError{Name: "x"}, "unknown_unit"},
		{fmt.Errorf("wrapped: %w", &uoms.IncompatibleUnitsError{From: uoms.Grams, To: uoms.Liters}), "incompatible_units"},
		{&usableweights.UnknownUsableWeightError{Form: "a", Modifier: "b"}, "unknown_usable_weight"},
		{packages.ErrNegativeQuantity, "negative_quantity"},
		{packages.ErrInvalidQuantity, "invalid_quantity"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Outcome(tt.err))
	}
}

func TestMetrics_Observe(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSplit(nil)
	m.ObserveSplit(nil)
	m.ObserveSplit(&uoms.UnknownUnitError{Name: "x"})
	m.ObserveWeightImport("xlsx", errors.New("bad header"))
	m.ObserveHTTP("GET", "/health", 200, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SplitPreviews.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SplitPreviews.WithLabelValues("unknown_unit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WeightImports.WithLabelValues("xlsx", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/health", "200")))
}
