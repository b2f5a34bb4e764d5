package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"acts-service-go/internal/pkg/circuitbreaker"
)

// BreakerState состояние circuit breaker конвертера
type BreakerState interface {
	State() circuitbreaker.State
	IsHealthy() bool
}

// HealthHandler отвечает на проверки живости
type HealthHandler struct {
	version string
	breaker BreakerState
}

// NewHealthHandler breaker может быть nil, если PDF отключен
func NewHealthHandler(version string, breaker BreakerState) *HealthHandler {
	return &HealthHandler{version: version, breaker: breaker}
}

// Health GET /health. Открытый breaker не делает сервис нездоровым:
// DOCX продолжает работать, поэтому код ответа всегда 200.
func (h *HealthHandler) Health(c *gin.Context) {
	details := gin.H{"pdf": gin.H{"enabled": h.breaker != nil}}
	if h.breaker != nil {
		details["pdf"] = gin.H{
			"enabled": true,
			"status":  h.breaker.IsHealthy(),
			"state":   h.breaker.State().String(),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"version":   h.version,
		"timestamp": time.Now().Format(time.RFC3339),
		"details":   details,
	})
}
