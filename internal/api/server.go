// Package api HTTP-сервер сервиса актов.
package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"acts-service-go/internal/api/middleware"
	"acts-service-go/internal/pkg/logger"
	"acts-service-go/internal/pkg/tracing"
)

// Options лимиты HTTP-сервера
type Options struct {
	RequestTimeout  time.Duration
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

type Server struct {
	Router   *gin.Engine
	Handlers *Handlers
	opts     Options
	server   *http.Server
}

func NewServer(handlers *Handlers, opts Options) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 30 * time.Second
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(tracing.GinTracingMiddleware())
	router.Use(middleware.PrometheusMiddleware())
	router.Use(middleware.Logging())

	return &Server{
		Router:   router,
		Handlers: handlers,
		opts:     opts,
	}
}

func (s *Server) SetupRoutes() {
	// Health check для k8s
	s.Router.GET("/health", s.Handlers.Health.Health)

	// Метрики Prometheus
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.Router.Group("/api/v1")
	v1.Use(middleware.BodyLimit(s.opts.MaxBodyBytes), middleware.Timeout(s.opts.RequestTimeout))
	{
		v1.POST("/acts", s.Handlers.Acts.Generate)
		v1.POST("/acts/preview", s.Handlers.Acts.Preview)
	}
}

// Start запускает сервер и блокируется до сигнала завершения или ошибки
func (s *Server) Start(addr string) error {
	writeTimeout := 30 * time.Second
	if s.opts.RequestTimeout > 0 {
		writeTimeout = s.opts.RequestTimeout + 5*time.Second
	}
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		logger.Info("Received signal", zap.String("signal", sig.String()))
		return s.Stop()
	}
}

func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	logger.Info("Shutting down server")
	if err := s.server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}
	return nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
