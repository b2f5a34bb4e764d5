package api

import (
	"acts-service-go/internal/api/handlers"
	"acts-service-go/internal/domain/acts"
)

// Handlers содержит все обработчики API
type Handlers struct {
	Acts   *handlers.ActsHandler
	Health *handlers.HealthHandler
}

// NewHandlers создает обработчики. breaker nil, если PDF отключен.
func NewHandlers(service acts.Service, version string, breaker handlers.BreakerState) *Handlers {
	return &Handlers{
		Acts:   handlers.NewActsHandler(service),
		Health: handlers.NewHealthHandler(version, breaker),
	}
}
