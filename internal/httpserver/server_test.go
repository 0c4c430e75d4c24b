package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"school-assistant/internal/httpserver"
	"school-assistant/internal/middleware"
	"school-assistant/pkg/metrics"
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

type mockChat struct{ calls int }

func (m *mockChat) Chat(c *gin.Context) {
	m.calls++
	c.JSON(http.StatusOK, gin.H{"text": "ok"})
}

type mockTelegram struct{ calls int }

func (m *mockTelegram) HandleWebhook(c *gin.Context) {
	m.calls++
	c.Status(http.StatusOK)
}

func newServer(t *testing.T, checks map[string]httpserver.ReadinessCheck) (*httpserver.HTTPServer, *mockChat, *mockTelegram) {
	t.Helper()
	l := &mockLogger{}
	chat := &mockChat{}
	tg := &mockTelegram{}
	srv, err := httpserver.New(l, httpserver.Config{
		Logger:          l,
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     "test",
		Middleware:      middleware.New(l, middleware.Config{}),
		Metrics:         metrics.New(),
		ReadinessChecks: checks,
		ChatHandler:     chat,
		TelegramHandler: tg,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, chat, tg
}

func do(srv *httpserver.HTTPServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRoutes(t *testing.T) {
	srv, chat, tg := newServer(t, nil)

	for _, path := range []string{"/health", "/live", "/ready"} {
		if w := do(srv, http.MethodGet, path); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
		}
	}

	w := do(srv, http.MethodPost, "/api/v1/chat")
	if w.Code != http.StatusOK || chat.calls != 1 {
		t.Errorf("chat = %d, calls %d", w.Code, chat.calls)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Errorf("missing request id header")
	}

	if w := do(srv, http.MethodPost, "/webhook/telegram"); w.Code != http.StatusOK || tg.calls != 1 {
		t.Errorf("telegram = %d, calls %d", w.Code, tg.calls)
	}

	w = do(srv, http.MethodGet, "/metrics")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "school_assistant_http_request_duration_seconds") {
		t.Errorf("metrics = %d %.200s", w.Code, w.Body.String())
	}
}

func TestReadyCheck(t *testing.T) {
	srv, _, _ := newServer(t, map[string]httpserver.ReadinessCheck{
		"postgres": func(ctx context.Context) error { return nil },
		"redis":    func(ctx context.Context) error { return errors.New("connection refused") },
	})

	w := do(srv, http.MethodGet, "/ready")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"redis":"down"`) || !strings.Contains(body, `"postgres":"up"`) {
		t.Errorf("body = %s", body)
	}
}

func TestNew_Validation(t *testing.T) {
	l := &mockLogger{}
	tests := []struct {
		name string
		cfg  httpserver.Config
	}{
		{"no mode", httpserver.Config{Port: 8080, ChatHandler: &mockChat{}}},
		{"no port", httpserver.Config{Mode: gin.TestMode, ChatHandler: &mockChat{}}},
		{"no chat handler", httpserver.Config{Port: 8080, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := httpserver.New(l, tt.cfg); err == nil {
				t.Errorf("expected a validation error")
			}
		})
	}
}
