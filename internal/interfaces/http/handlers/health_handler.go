package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backing service is reachable
type Pinger func(ctx context.Context) error

// HealthHandler reports process and dependency health
type HealthHandler struct {
	service string
	version string
	checks  map[string]Pinger
	timeNow func() time.Time
	started time.Time
}

// NewHealthHandler creates a health handler. checks may be empty.
func NewHealthHandler(service, version string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		service: service,
		version: version,
		checks:  checks,
		timeNow: time.Now,
		started: time.Now(),
	}
}

// Health GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	state := "ok"
	if status != http.StatusOK {
		state = "degraded"
	}
	c.JSON(status, gin.H{
		"status":       state,
		"service":      h.service,
		"version":      h.version,
		"uptime":       h.timeNow().Sub(h.started).Round(time.Second).String(),
		"dependencies": deps,
	})
}
