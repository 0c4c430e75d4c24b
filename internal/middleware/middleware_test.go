package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"school-assistant/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(handlers...)
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	return engine
}

func get(engine *gin.Engine, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	mw := New(&mockLogger{}, Config{})
	engine := newEngine(mw.RequestID(), mw.Logger())

	w := get(engine, nil)
	id := w.Header().Get(RequestIDHeader)
	if len(id) != 36 || w.Body.String() != id {
		t.Errorf("minted id = %q, body = %q", id, w.Body.String())
	}

	w = get(engine, map[string]string{RequestIDHeader: "abc-123"})
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" || w.Body.String() != "abc-123" {
		t.Errorf("propagated id = %q, body = %q", got, w.Body.String())
	}
}

func TestRateLimit(t *testing.T) {
	mw := New(&mockLogger{}, Config{RateLimitEnabled: true, RequestsPerMin: 20})
	engine := newEngine(mw.RateLimit())

	// burst is 20/10 = 2
	for i := 0; i < 2; i++ {
		if w := get(engine, nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, w.Code)
		}
	}
	if w := get(engine, nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(&mockLogger{}, Config{RequestsPerMin: 1})
	engine := newEngine(mw.RateLimit())

	for i := 0; i < 5; i++ {
		if w := get(engine, nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, w.Code)
		}
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := newRateLimiter(10, 0, 0)
	if !rl.Allow("a") {
		t.Fatal("first request for a should pass")
	}
	if rl.Allow("a") {
		t.Error("second immediate request for a should be limited")
	}
	if !rl.Allow("b") {
		t.Error("b has its own bucket")
	}
}
