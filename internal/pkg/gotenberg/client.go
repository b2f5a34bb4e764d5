// Package gotenberg клиент Gotenberg для конвертации DOCX в PDF.
package gotenberg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"acts-service-go/internal/pkg/metrics"
)

const convertPath = "/forms/libreoffice/convert"

// ErrEmptyDocument возвращается при попытке сконвертировать пустой файл
var ErrEmptyDocument = errors.New("empty document")

// StatusError неуспешный ответ Gotenberg
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("conversion failed with status %d: %s", e.Code, e.Body)
}

// StatusCode код ответа, используется классификатором retry
func (e *StatusError) StatusCode() int {
	return e.Code
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// Convert отправляет DOCX в Gotenberg и возвращает PDF
func (c *Client) Convert(ctx context.Context, fileName string, docx []byte) ([]byte, error) {
	if len(docx) == 0 {
		return nil, ErrEmptyDocument
	}

	start := time.Now()
	defer func() {
		metrics.GotenbergRequestDuration.WithLabelValues("convert").Observe(time.Since(start).Seconds())
	}()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("files", fileName)
	if err != nil {
		metrics.GotenbergRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(docx); err != nil {
		metrics.GotenbergRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to write file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		metrics.GotenbergRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+convertPath, body)
	if err != nil {
		metrics.GotenbergRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.GotenbergRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GotenbergRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.GotenbergRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	metrics.GotenbergRequestsTotal.WithLabelValues("success").Inc()
	return pdf, nil
}

// HealthCheck выполняет проверку здоровья сервиса Gotenberg
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: status code %d", resp.StatusCode)
	}
	return nil
}
