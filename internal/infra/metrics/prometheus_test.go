package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cellcontrol/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SaleCounters(t *testing.T) {
	reg := NewRegistry(true)

	reg.SaleCreated("loja-a", decimal.RequireFromString("150.50"), 2)
	reg.SaleCreated("loja-a", decimal.RequireFromString("200.00"), 1)
	reg.SaleDeleted("loja-a")

	assert.InDelta(t, 2, testutil.ToFloat64(reg.salesCreated.WithLabelValues("loja-a")), 0)
	assert.InDelta(t, 350.50, testutil.ToFloat64(reg.salesValue.WithLabelValues("loja-a")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(reg.salesDeleted.WithLabelValues("loja-a")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(reg.salesCreated.WithLabelValues("loja-b")), 0)
}

func TestRegistry_LoginAttempts(t *testing.T) {
	reg := NewRegistry(true)

	reg.LoginAttempt(service.LoginFailed)
	reg.LoginAttempt(service.LoginFailed)
	reg.LoginAttempt(service.LoginSucceeded)

	assert.InDelta(t, 2, testutil.ToFloat64(reg.logins.WithLabelValues(service.LoginFailed)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(reg.logins.WithLabelValues(service.LoginSucceeded)), 0)
}

func TestRegistry_Handler(t *testing.T) {
	reg := NewRegistry(true)
	reg.ObserveHTTP(http.MethodGet, "/:slug/api/models", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `cellcontrol_http_requests_total{method="GET",path="/:slug/api/models",status="200"} 1`)
	assert.Contains(t, string(body), "cellcontrol_http_request_duration_seconds_bucket")
}
