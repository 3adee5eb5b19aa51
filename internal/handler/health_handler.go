package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is a backend the health checks probe.
type Pinger interface {
	Ping(ctx context.Context) error
	Name() string
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	backends []Pinger
}

// NewHealthHandler creates a new HealthHandler over the given backends.
func NewHealthHandler(backends ...Pinger) *HealthHandler {
	return &HealthHandler{backends: backends}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Service  string            `json:"service"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

func (h *HealthHandler) probe(ctx context.Context) (map[string]string, bool) {
	services := make(map[string]string, len(h.backends))
	healthy := true
	for _, b := range h.backends {
		if err := b.Ping(ctx); err != nil {
			services[b.Name()] = "unhealthy"
			healthy = false
			continue
		}
		services[b.Name()] = "healthy"
	}
	return services, healthy
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to " + ServiceName,
		"version": Version,
	})
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.probe(c.Request.Context())
	if !healthy {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Service:  ServiceName,
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Service:  ServiceName,
		Version:  Version,
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if _, healthy := h.probe(c.Request.Context()); !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
