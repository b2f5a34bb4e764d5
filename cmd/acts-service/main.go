package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"acts-service-go/internal/api"
	"acts-service-go/internal/api/handlers"
	"acts-service-go/internal/domain/acts"
	"acts-service-go/internal/pkg/cache"
	"acts-service-go/internal/pkg/circuitbreaker"
	"acts-service-go/internal/pkg/config"
	"acts-service-go/internal/pkg/docxgen"
	"acts-service-go/internal/pkg/gotenberg"
	"acts-service-go/internal/pkg/imagemeta"
	"acts-service-go/internal/pkg/logger"
	"acts-service-go/internal/pkg/tracing"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	// Инициализируем логгер
	if err := logger.Init(cfg.LogLevel); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// Инициализируем трейсинг
	shutdownTracer, err := tracing.InitTracer(context.Background(), tracing.Config{
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Tracing.Environment,
		CollectorURL:   cfg.Tracing.Endpoint,
		PodName:        cfg.PodName,
		Namespace:      cfg.Namespace,
		SamplingRate:   cfg.Tracing.SamplingRate,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(err))
		}
	}()

	if err := docxgen.SetupLicense(cfg.LicenseKey); err != nil {
		logger.Error("Failed to setup UniDoc license", zap.Error(err))
	}

	renderCache := cache.NewCache(cfg.Acts.CacheTTL, cache.NewMetrics(prometheus.DefaultRegisterer, "acts"))
	defer renderCache.Close()

	assembler := acts.NewAssembler(acts.Options{
		City:          cfg.Acts.City,
		ApproverTitle: cfg.Acts.ApproverTitle,
		PhotoBox:      imagemeta.Box{MaxWidth: cfg.Acts.ImageMaxWidth, MaxHeight: cfg.Acts.ImageMaxHeight},
	})
	opts := []acts.ServiceOption{
		acts.WithCache(renderCache),
		acts.WithLogger(logger.Log),
	}

	// PDF включается только при заданном GOTENBERG_URL
	var breaker handlers.BreakerState
	if cfg.Gotenberg.URL != "" {
		client := gotenberg.NewResilientClient(gotenberg.ResilientConfig{
			URL:     cfg.Gotenberg.URL,
			Timeout: cfg.Gotenberg.Timeout,
			Breaker: circuitbreaker.Config{
				Name:             "gotenberg",
				FailureThreshold: cfg.Breaker.FailureThreshold,
				ResetTimeout:     cfg.Breaker.ResetTimeout,
				HalfOpenMaxCalls: cfg.Breaker.HalfOpenMaxCalls,
				SuccessThreshold: cfg.Breaker.SuccessThreshold,
				PodName:          cfg.PodName,
				Namespace:        cfg.Namespace,
			},
			Retry: gotenberg.RetryConfig{
				MaxAttempts:   cfg.Gotenberg.RetryMaxAttempts,
				InitialDelay:  cfg.Gotenberg.RetryInitialDelay,
				MaxDelay:      cfg.Gotenberg.RetryMaxDelay,
				BackoffFactor: cfg.Gotenberg.RetryBackoff,
			},
		}, logger.Log)
		opts = append(opts, acts.WithConverter(client))
		breaker = client
		logger.Info("PDF conversion enabled", zap.String("gotenberg_url", cfg.Gotenberg.URL))
	} else {
		logger.Info("GOTENBERG_URL is not set, PDF conversion disabled")
	}

	service := acts.NewService(assembler, docxgen.NewSerializer(logger.Log), opts...)
	h := api.NewHandlers(service, cfg.Version, breaker)
	logger.Info("Handlers initialized")

	server := api.NewServer(h, api.Options{
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	})
	server.SetupRoutes()

	if err := server.Start(":" + cfg.Port); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
