// Package handlers HTTP-обработчики сервиса актов.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acts-service-go/internal/api/middleware"
	"acts-service-go/internal/domain/acts"
	"acts-service-go/internal/pkg/logger"
)

// ActsHandler обработчики генерации и предпросмотра актов
type ActsHandler struct {
	service acts.Service
}

// NewActsHandler создает обработчик поверх сервиса актов
func NewActsHandler(service acts.Service) *ActsHandler {
	return &ActsHandler{service: service}
}

// Generate POST /api/v1/acts?format=docx|pdf
func (h *ActsHandler) Generate(c *gin.Context) {
	start := time.Now()
	log := logger.WithContext(zap.String("request_id", c.GetString(middleware.RequestIDKey)))

	format, err := acts.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, ok := h.bind(c, log)
	if !ok {
		return
	}

	res, err := h.service.Generate(c.Request.Context(), in, format)
	if err != nil {
		h.fail(c, log, err)
		return
	}

	c.Header("Content-Disposition", contentDisposition(res.FileName))
	c.Header("X-Act-Appendix", strconv.FormatBool(res.Appendix))
	c.Header("X-Act-Cache", cacheStatus(res.Cached))
	c.Header("X-Generation-Time", strconv.FormatFloat(time.Since(start).Seconds(), 'f', 3, 64))
	c.Data(http.StatusOK, res.ContentType, res.Data)
}

// Preview POST /api/v1/acts/preview
func (h *ActsHandler) Preview(c *gin.Context) {
	log := logger.WithContext(zap.String("request_id", c.GetString(middleware.RequestIDKey)))

	in, ok := h.bind(c, log)
	if !ok {
		return
	}

	preview, err := h.service.Preview(c.Request.Context(), in)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

func (h *ActsHandler) bind(c *gin.Context, log *zap.Logger) (*acts.ActInput, bool) {
	var in acts.ActInput
	if err := c.ShouldBindJSON(&in); err != nil {
		log.Info("Failed to parse request",
			zap.Error(err),
			zap.String("content_type", c.GetHeader("Content-Type")),
		)
		status, msg := bindError(err)
		c.JSON(status, gin.H{"error": msg})
		return nil, false
	}
	return &in, true
}

func bindError(err error) (int, string) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge, "request body too large"
	case errors.Is(err, io.EOF):
		return http.StatusBadRequest, "empty request body"
	case strings.Contains(err.Error(), "invalid character"):
		return http.StatusBadRequest, "invalid JSON format"
	}
	return http.StatusBadRequest, fmt.Sprintf("invalid request format: %v", err)
}

func (h *ActsHandler) fail(c *gin.Context, log *zap.Logger, err error) {
	status := determineErrorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error("Failed to generate act", zap.Error(err), zap.Int("status", status))
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}

func determineErrorStatus(err error) int {
	switch {
	case errors.Is(err, acts.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, acts.ErrPDFUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		// клиент ушел, ответ никто не прочитает
		return 499
	}
	return http.StatusInternalServerError
}

// contentDisposition ASCII-имя для старых клиентов и filename* по RFC 5987
func contentDisposition(name string) string {
	fallback := "act"
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		fallback += name[i:]
	}
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, url.PathEscape(name))
}

func cacheStatus(cached bool) string {
	if cached {
		return "HIT"
	}
	return "MISS"
}
