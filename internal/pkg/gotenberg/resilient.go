package gotenberg

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"acts-service-go/internal/pkg/circuitbreaker"
	"acts-service-go/internal/pkg/retry"
)

// RetryConfig параметры повторов
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// ResilientConfig настройки клиента с retry и circuit breaker
type ResilientConfig struct {
	URL     string
	Timeout time.Duration
	Breaker circuitbreaker.Config
	Retry   RetryConfig
}

// ResilientClient комбинирует retry и circuit breaker механизмы.
// Каждая попытка проходит через circuit breaker, открытый breaker не повторяется.
type ResilientClient struct {
	client  *Client
	cb      *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
}

// NewResilientClient создает клиента с retry и circuit breaker
func NewResilientClient(cfg ResilientConfig, log *zap.Logger) *ResilientClient {
	if cfg.Breaker.Name == "" {
		cfg.Breaker.Name = "gotenberg"
	}
	// 4xx означает проблему с документом, а не с Gotenberg
	cfg.Breaker.IsFailure = func(err error) bool {
		var se *StatusError
		if errors.As(err, &se) {
			return se.Code >= 500
		}
		return !errors.Is(err, context.Canceled)
	}

	opts := []retry.Option{
		retry.WithRetryIf(func(err error) bool {
			return !errors.Is(err, circuitbreaker.ErrCircuitOpen) && retry.ShouldRetry(err)
		}),
	}
	if cfg.Retry.MaxAttempts > 0 {
		opts = append(opts, retry.WithMaxAttempts(cfg.Retry.MaxAttempts))
	}
	if cfg.Retry.InitialDelay > 0 {
		opts = append(opts, retry.WithInitialDelay(cfg.Retry.InitialDelay))
	}
	if cfg.Retry.MaxDelay > 0 {
		opts = append(opts, retry.WithMaxDelay(cfg.Retry.MaxDelay))
	}
	if cfg.Retry.BackoffFactor >= 1 {
		opts = append(opts, retry.WithBackoffFactor(cfg.Retry.BackoffFactor))
	}

	return &ResilientClient{
		client:  NewClient(cfg.URL, cfg.Timeout),
		cb:      circuitbreaker.NewCircuitBreaker(cfg.Breaker),
		retrier: retry.New("gotenberg_convert", log, opts...),
	}
}

// Convert конвертирует DOCX в PDF с повторами и circuit breaker
func (c *ResilientClient) Convert(ctx context.Context, fileName string, docx []byte) ([]byte, error) {
	var result []byte
	err := c.retrier.Do(ctx, func(ctx context.Context) error {
		return c.cb.Execute(ctx, func() error {
			var err error
			result, err = c.client.Convert(ctx, fileName, docx)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck проверяет Gotenberg в обход circuit breaker
func (c *ResilientClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}

// State возвращает текущее состояние Circuit Breaker
func (c *ResilientClient) State() circuitbreaker.State {
	return c.cb.State()
}

// IsHealthy возвращает true, если Circuit Breaker в здоровом состоянии
func (c *ResilientClient) IsHealthy() bool {
	return c.cb.IsHealthy()
}
