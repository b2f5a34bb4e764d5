package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// State представляет состояние Circuit Breaker
type State int

const (
	StateClosed   State = iota // Нормальное состояние, запросы проходят
	StateOpen                  // Состояние отказа, запросы блокируются
	StateHalfOpen              // Тестовое состояние, пропускается часть запросов
)

var (
	// ErrCircuitOpen возвращается, когда Circuit Breaker находится в открытом состоянии
	ErrCircuitOpen = errors.New("circuit breaker is open")

	circuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current state of the circuit breaker (0: Closed, 1: Open, 2: Half-Open)",
		},
		[]string{"name", "pod_name", "namespace"},
	)

	circuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests passed through circuit breaker",
		},
		[]string{"name", "pod_name", "namespace", "status"},
	)

	circuitBreakerRecoveryTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "circuit_breaker_recovery_duration_seconds",
			Help:    "Time taken to recover from Open to Closed state",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"name", "pod_name", "namespace"},
	)
)

// Config содержит настройки для Circuit Breaker
type Config struct {
	Name             string        // Имя для идентификации в метриках
	FailureThreshold int           // Количество ошибок до перехода в состояние Open
	ResetTimeout     time.Duration // Время до перехода из Open в Half-Open
	HalfOpenMaxCalls int           // Максимальное количество запросов в состоянии Half-Open
	SuccessThreshold int           // Количество успешных запросов для перехода из Half-Open в Closed
	PodName          string
	Namespace        string

	// IsFailure решает, считается ли ошибка отказом сервиса.
	// По умолчанию любая ошибка, кроме отмены контекста вызывающей стороной.
	IsFailure func(error) bool
}

// CircuitBreaker реализует паттерн Circuit Breaker
type CircuitBreaker struct {
	config Config
	labels prometheus.Labels

	mu              sync.Mutex
	state           State
	failures        int
	successes       int
	halfOpenCalls   int
	lastStateChange time.Time
	openedAt        time.Time
}

// NewCircuitBreaker создает новый экземпляр Circuit Breaker
func NewCircuitBreaker(config Config) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 5
	}
	if config.HalfOpenMaxCalls <= 0 {
		config.HalfOpenMaxCalls = 1
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = 1
	}
	if config.IsFailure == nil {
		config.IsFailure = defaultIsFailure
	}

	cb := &CircuitBreaker{
		config: config,
		labels: prometheus.Labels{
			"name":      config.Name,
			"pod_name":  config.PodName,
			"namespace": config.Namespace,
		},
		lastStateChange: time.Now(),
	}
	circuitBreakerState.With(cb.labels).Set(float64(StateClosed))
	return cb
}

func defaultIsFailure(err error) bool {
	return !errors.Is(err, context.Canceled)
}

// Execute выполняет функцию с учетом состояния Circuit Breaker
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !cb.allowRequest() {
		cb.count("rejected")
		return ErrCircuitOpen
	}

	err := fn()
	failed := err != nil && cb.config.IsFailure(err)
	cb.handleResult(failed)

	switch {
	case failed:
		cb.count("failure")
	case err != nil:
		cb.count("ignored")
	default:
		cb.count("success")
	}
	return err
}

func (cb *CircuitBreaker) count(status string) {
	circuitBreakerRequests.WithLabelValues(cb.config.Name, cb.config.PodName, cb.config.Namespace, status).Inc()
}

// allowRequest проверяет, можно ли выполнить запрос
func (cb *CircuitBreaker) allowRequest() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return true
	case StateOpen:
		if time.Since(cb.lastStateChange) < cb.config.ResetTimeout {
			return false
		}
		cb.setState(StateHalfOpen)
		cb.halfOpenCalls = 1
		return true
	case StateHalfOpen:
		if cb.halfOpenCalls >= cb.config.HalfOpenMaxCalls {
			return false
		}
		cb.halfOpenCalls++
		return true
	}
	return false
}

func (cb *CircuitBreaker) handleResult(failed bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		if !failed {
			cb.failures = 0
			return
		}
		cb.failures++
		if cb.failures >= cb.config.FailureThreshold {
			cb.setState(StateOpen)
		}
	case StateHalfOpen:
		if failed {
			cb.setState(StateOpen)
			return
		}
		cb.successes++
		if cb.successes >= cb.config.SuccessThreshold {
			cb.setState(StateClosed)
		}
	}
}

// setState меняет состояние и сбрасывает счетчики. Вызывается под mu.
func (cb *CircuitBreaker) setState(s State) {
	now := time.Now()
	if s == StateOpen && cb.state != StateOpen {
		cb.openedAt = now
	}
	if s == StateClosed && !cb.openedAt.IsZero() {
		circuitBreakerRecoveryTime.With(cb.labels).Observe(now.Sub(cb.openedAt).Seconds())
		cb.openedAt = time.Time{}
	}

	cb.state = s
	cb.lastStateChange = now
	cb.failures = 0
	cb.successes = 0
	cb.halfOpenCalls = 0
	circuitBreakerState.With(cb.labels).Set(float64(s))
}

// State возвращает текущее состояние Circuit Breaker
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// IsHealthy сервис принимает запросы: Closed или Half-Open со свободными слотами
func (cb *CircuitBreaker) IsHealthy() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return true
	case StateHalfOpen:
		return cb.halfOpenCalls < cb.config.HalfOpenMaxCalls
	default:
		return time.Since(cb.lastStateChange) >= cb.config.ResetTimeout
	}
}

// String возвращает строковое представление состояния
func (s State) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateOpen:
		return "Open"
	case StateHalfOpen:
		return "HalfOpen"
	default:
		return "Unknown"
	}
}
