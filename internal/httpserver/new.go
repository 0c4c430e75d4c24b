package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	chatHTTP "school-assistant/internal/assistant/delivery/http"
	tgDelivery "school-assistant/internal/assistant/delivery/telegram"
	"school-assistant/internal/middleware"
	"school-assistant/pkg/log"
	"school-assistant/pkg/metrics"
)

const DefaultShutdownTimeout = 15 * time.Second

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	mw      middleware.Middleware
	metrics *metrics.Registry
	checks  map[string]ReadinessCheck

	// Assistant domain
	chatHandler     chatHTTP.Handler
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware      middleware.Middleware
	Metrics         *metrics.Registry
	ReadinessChecks map[string]ReadinessCheck

	// Assistant domain
	ChatHandler     chatHTTP.Handler
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		metrics:         cfg.Metrics,
		checks:          cfg.ReadinessChecks,
		chatHandler:     cfg.ChatHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
