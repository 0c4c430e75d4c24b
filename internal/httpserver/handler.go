package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "school-assistant/internal/assistant/delivery/http"
	"school-assistant/internal/model"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID(), srv.mw.Logger())
	if srv.metrics != nil {
		srv.gin.Use(srv.metrics.GinMiddleware())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP server mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the chat API and the Telegram webhook.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	chatHTTP.RegisterRoutes(api, srv.chatHandler, srv.mw.RateLimit())
	srv.l.Infof(ctx, "Chat route registered at POST /api/v1/chat")

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.mw.RateLimit(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
