package retry

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"acts-service-go/internal/pkg/metrics"
)

// Operation представляет операцию, которую нужно повторить
type Operation func(ctx context.Context) error

// Retrier выполняет повторные попытки операции
type Retrier struct {
	config    *Config
	logger    *zap.Logger
	operation string
}

// New создает новый экземпляр Retrier
func New(operation string, logger *zap.Logger, opts ...Option) *Retrier {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Retrier{
		config:    config,
		logger:    logger.With(zap.String("operation", operation)),
		operation: operation,
	}
}

// Do выполняет операцию с повторными попытками
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	metrics.RetryCurrentAttempts.WithLabelValues(r.operation).Inc()
	defer metrics.RetryCurrentAttempts.WithLabelValues(r.operation).Dec()

	var lastErr error
	attempt := 1
	defer func() {
		metrics.RetryAttemptsDistribution.WithLabelValues(r.operation).Observe(float64(attempt))
	}()

	for ; attempt <= r.config.MaxAttempts; attempt++ {
		attemptStr := strconv.Itoa(attempt)
		attemptStart := time.Now()

		err := op(ctx)
		status := errorToStatus(ctx, err)
		metrics.RetryOperationDuration.WithLabelValues(r.operation, attemptStr, status).Observe(time.Since(attemptStart).Seconds())
		metrics.RetryAttemptsTotal.WithLabelValues(r.operation, attemptStr, status).Inc()

		if err == nil {
			if attempt > 1 {
				r.logger.Info("operation succeeded after retry", zap.Int("attempt", attempt))
			}
			return nil
		}

		lastErr = err
		metrics.RetryErrorsTotal.WithLabelValues(r.operation, classifyError(ctx, err), attemptStr).Inc()
		r.logger.Warn("retry attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", r.config.MaxAttempts),
			zap.Duration("duration", time.Since(attemptStart)),
			zap.Error(err),
		)

		// Если контекст отменен, прекращаем попытки
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if !r.shouldRetry(err) {
			return &RetryError{Attempt: attempt, OriginalError: err}
		}

		if attempt == r.config.MaxAttempts {
			break
		}

		delay := r.calculateDelay(attempt)
		metrics.RetryBackoffDuration.WithLabelValues(r.operation, attemptStr).Observe(delay.Seconds())

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return &RetryError{Attempt: r.config.MaxAttempts, OriginalError: lastErr}
}

func (r *Retrier) shouldRetry(err error) bool {
	if r.config.RetryIf != nil {
		return r.config.RetryIf(err)
	}
	return ShouldRetry(err)
}

// calculateDelay вычисляет задержку для следующей попытки
func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.InitialDelay)
	for i := 1; i < attempt; i++ {
		delay *= r.config.BackoffFactor
	}

	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	return time.Duration(delay)
}

// errorToStatus преобразует ошибку в статус для метрик
func errorToStatus(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return "success"
	case ctx.Err() != nil:
		return "cancelled"
	default:
		return "failed"
	}
}

// classifyError классифицирует ошибку для метрик
func classifyError(ctx context.Context, err error) string {
	switch {
	case ctx.Err() != nil:
		return "context_cancelled"
	case IsTimeout(err):
		return "timeout"
	case IsConnectionError(err):
		return "connection"
	case IsServerError(err):
		return "server_error"
	case IsValidationError(err):
		return "validation"
	default:
		return "unknown"
	}
}
