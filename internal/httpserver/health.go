package httpserver

import (
	"context"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"school-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "school-assistant"

	readinessTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck runs every readiness check; any failure answers 503.
// @Summary Readiness Check
// @Description Check if the API and its data sources are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	names := make([]string, 0, len(srv.checks))
	for name := range srv.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := gin.H{}
	ready := true
	for _, name := range names {
		if err := srv.checks[name](ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s: %v", name, err)
			deps[name] = "down"
			ready = false
			continue
		}
		deps[name] = "up"
	}

	body := gin.H{
		"status":       "ready",
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	}
	if !ready {
		body["status"] = "not_ready"
		response.Unavailable(c, body)
		return
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
