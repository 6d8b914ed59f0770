package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"crm_assistencia/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := New()

	m.SaleCreated(decimal.RequireFromString("960.00"), 3)
	m.SaleCreated(decimal.RequireFromString("40.50"), 1)
	m.StockMoved(entities.MovementOut, 3)
	m.StockMoved(entities.MovementIn, 10)
	m.ServiceOrderStatusChanged(entities.ServiceOrderStatusAnalyzing, entities.ServiceOrderStatusFixed)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.salesTotal))
	assert.InDelta(t, 1000.50, testutil.ToFloat64(m.salesRevenue), 0.001)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.unitsSold))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.stockMovedUnits.WithLabelValues("out")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.stockMovedUnits.WithLabelValues("in")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.orderStatusChanges.WithLabelValues("analyzing", "fixed")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.SaleCreated(decimal.NewFromInt(10), 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "crm_sales_total 1"), body)
	assert.Contains(t, body, "go_goroutines")
}

func TestNew_IsolatedRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
