package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveStoreOp(t *testing.T) {
	before := testutil.ToFloat64(storeOps.WithLabelValues("invoice", "create", "error"))

	ObserveStoreOp("invoice", "create", "error", 3*time.Millisecond)

	after := testutil.ToFloat64(storeOps.WithLabelValues("invoice", "create", "error"))
	if after != before+1 {
		t.Fatalf("error counter = %v, want %v", after, before+1)
	}
}

func TestMiddlewareAndHandler(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	e.GET("/metrics", Handler())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ping status = %d", rec.Code)
	}

	got := testutil.ToFloat64(httpRequests.WithLabelValues("/ping", http.MethodGet, "200"))
	if got < 1 {
		t.Fatalf("requests_total for /ping = %v", got)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "tutordesk_http_requests_total") {
		t.Fatal("metrics output missing tutordesk_http_requests_total")
	}
}
