package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestProvider(t *testing.T, enabled bool) *MetricsProvider {
	t.Helper()
	mp, err := NewMetricsProvider(&MetricsConfig{
		Enabled:     enabled,
		ServiceName: "blog-backend-test",
		Path:        "/metrics",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewMetricsProvider() error = %v", err)
	}
	return mp
}

func TestMetricsProvider_RecordAndServe(t *testing.T) {
	mp := newTestProvider(t, true)
	defer mp.Shutdown(context.Background())

	ctx := context.Background()
	mp.RecordHTTPRequest(ctx, http.MethodGet, "/articles", http.StatusOK, 15*time.Millisecond)
	mp.RecordDBOperation(ctx, "articles.find", true, 3*time.Millisecond)
	mp.RecordDBOperation(ctx, "users.insert", false, 5*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	mp.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("metrics endpoint status = %d, want 200", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("metrics endpoint returned empty body")
	}
}

func TestMetricsProvider_Disabled(t *testing.T) {
	mp := newTestProvider(t, false)

	// Recording on a disabled provider is a no-op, not a panic
	mp.RecordHTTPRequest(context.Background(), http.MethodGet, "/articles", http.StatusOK, time.Millisecond)
	mp.RecordDBOperation(context.Background(), "articles.find", true, time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	mp.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("disabled metrics endpoint status = %d, want 404", w.Code)
	}

	if err := mp.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestMetricsMiddleware(t *testing.T) {
	mp := newTestProvider(t, true)
	defer mp.Shutdown(context.Background())

	router := gin.New()
	router.Use(MetricsMiddleware(mp))
	router.GET("/articles", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
