// Package config собирает настройки сервиса из переменных окружения.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config содержит все настройки сервиса
type Config struct {
	Port           string
	LogLevel       string
	Version        string
	RequestTimeout time.Duration
	MaxBodyBytes   int64

	Acts      ActsConfig
	Gotenberg GotenbergConfig
	Breaker   BreakerConfig
	Tracing   TracingConfig

	LicenseKey string
	PodName    string
	Namespace  string
}

// ActsConfig оформление акта и кэш готовых документов
type ActsConfig struct {
	City           string
	ApproverTitle  string
	ImageMaxWidth  int
	ImageMaxHeight int
	CacheTTL       time.Duration
}

// GotenbergConfig конвертер DOCX в PDF. Пустой URL отключает PDF.
type GotenbergConfig struct {
	URL               string
	Timeout           time.Duration
	RetryMaxAttempts  int
	RetryInitialDelay time.Duration
	RetryMaxDelay     time.Duration
	RetryBackoff      float64
}

// BreakerConfig настройки circuit breaker для Gotenberg
type BreakerConfig struct {
	FailureThreshold int
	ResetTimeout     time.Duration
	HalfOpenMaxCalls int
	SuccessThreshold int
}

// TracingConfig экспорт трейсов по OTLP
type TracingConfig struct {
	ServiceName  string
	Endpoint     string
	Environment  string
	SamplingRate float64
}

// Load читает конфигурацию из окружения
func Load() *Config {
	return &Config{
		Port:           getEnvWithDefault("PORT", "8080"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		Version:        getEnvWithDefault("VERSION", "dev"),
		RequestTimeout: getEnvDurationWithDefault("ACTS_REQUEST_TIMEOUT", 60*time.Second),
		MaxBodyBytes:   int64(getEnvIntWithDefault("ACTS_MAX_BODY_BYTES", 32<<20)),

		Acts: ActsConfig{
			City:           os.Getenv("ACTS_CITY"),
			ApproverTitle:  os.Getenv("ACTS_APPROVER_TITLE"),
			ImageMaxWidth:  getEnvIntWithDefault("ACTS_IMAGE_MAX_WIDTH", 400),
			ImageMaxHeight: getEnvIntWithDefault("ACTS_IMAGE_MAX_HEIGHT", 300),
			CacheTTL:       getEnvDurationWithDefault("ACTS_CACHE_TTL", 10*time.Minute),
		},
		Gotenberg: GotenbergConfig{
			URL:               os.Getenv("GOTENBERG_URL"),
			Timeout:           getEnvDurationWithDefault("GOTENBERG_TIMEOUT", 30*time.Second),
			RetryMaxAttempts:  getEnvIntWithDefault("GOTENBERG_RETRY_MAX_ATTEMPTS", 3),
			RetryInitialDelay: getEnvDurationWithDefault("GOTENBERG_RETRY_INITIAL_DELAY", 100*time.Millisecond),
			RetryMaxDelay:     getEnvDurationWithDefault("GOTENBERG_RETRY_MAX_DELAY", 2*time.Second),
			RetryBackoff:      getEnvFloatWithDefault("GOTENBERG_RETRY_BACKOFF_FACTOR", 2),
		},
		Breaker: BreakerConfig{
			FailureThreshold: getEnvIntWithDefault("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			ResetTimeout:     getEnvDurationWithDefault("CIRCUIT_BREAKER_RESET_TIMEOUT", 10*time.Second),
			HalfOpenMaxCalls: getEnvIntWithDefault("CIRCUIT_BREAKER_HALF_OPEN_MAX_CALLS", 2),
			SuccessThreshold: getEnvIntWithDefault("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
		},
		Tracing: TracingConfig{
			ServiceName:  getEnvWithDefault("OTEL_SERVICE_NAME", "acts-service"),
			Endpoint:     os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Environment:  getEnvWithDefault("OTEL_ENVIRONMENT", "production"),
			SamplingRate: getEnvFloatWithDefault("OTEL_SAMPLING_RATE", 1),
		},

		LicenseKey: os.Getenv("UNIDOC_LICENSE_API_KEY"),
		PodName:    getEnvWithDefault("POD_NAME", os.Getenv("HOSTNAME")),
		Namespace:  os.Getenv("POD_NAMESPACE"),
	}
}

// getEnvWithDefault возвращает значение переменной окружения или значение по умолчанию
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntWithDefault возвращает целочисленное значение переменной окружения или значение по умолчанию
func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvDurationWithDefault возвращает значение длительности из переменной окружения или значение по умолчанию
func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
