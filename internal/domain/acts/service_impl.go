package acts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"acts-service-go/internal/pkg/cache"
	"acts-service-go/internal/pkg/circuitbreaker"
	"acts-service-go/internal/pkg/docmodel"
	"acts-service-go/internal/pkg/metrics"
	"acts-service-go/internal/pkg/tracing"
)

// ServiceImpl собирает акт, сериализует его и при необходимости конвертирует в PDF
type ServiceImpl struct {
	validator  *Validator
	assembler  *Assembler
	serializer Serializer
	converter  Converter
	cache      *cache.Cache
	log        *zap.Logger
}

// ServiceOption настройка ServiceImpl
type ServiceOption func(*ServiceImpl)

// WithConverter включает PDF. Без конвертера запросы PDF завершаются ErrPDFUnavailable.
func WithConverter(c Converter) ServiceOption {
	return func(s *ServiceImpl) {
		s.converter = c
	}
}

// WithCache включает кэш готовых файлов
func WithCache(c *cache.Cache) ServiceOption {
	return func(s *ServiceImpl) {
		s.cache = c
	}
}

// WithLogger задает логгер сервиса
func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *ServiceImpl) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService создает сервис. nil assembler заменяется сборщиком с настройками по умолчанию.
func NewService(assembler *Assembler, serializer Serializer, opts ...ServiceOption) *ServiceImpl {
	if assembler == nil {
		assembler = NewAssembler(DefaultOptions())
	}
	s := &ServiceImpl{
		validator:  NewValidator(),
		assembler:  assembler,
		serializer: serializer,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PDFEnabled настроен ли конвертер
func (s *ServiceImpl) PDFEnabled() bool {
	return s.converter != nil
}

// Generate проверяет данные, собирает акт и возвращает файл в нужном формате
func (s *ServiceImpl) Generate(ctx context.Context, in *ActInput, format Format) (res *Result, err error) {
	ctx, span := tracing.StartSpan(ctx, "acts.Generate")
	defer span.End()

	log := s.log.With(
		zap.String("format", string(format)),
		zap.String("trace_id", tracing.GetTraceID(ctx)),
	)

	start := time.Now()
	actType := "unknown"
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
			tracing.RecordError(ctx, err)
		}
		metrics.ActGenerationTotal.WithLabelValues(actType, string(format), status).Inc()
		metrics.ActGenerationDuration.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())
	}()

	if format != FormatDOCX && format != FormatPDF {
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidInput, format)
	}
	if err := s.validator.Validate(in); err != nil {
		log.Info("Act input rejected", zap.Error(err))
		return nil, err
	}
	actType = string(in.ActType)
	if format == FormatPDF && s.converter == nil {
		return nil, ErrPDFUnavailable
	}

	prepared := PrepareParties(in)
	res = &Result{
		FileName:    FileName(prepared, string(format)),
		ContentType: format.ContentType(),
		Appendix:    Resolve(prepared.KitItems, prepared.Defects, len(prepared.Photos)).NeedsAppendix,
	}
	tracing.AddAttributes(ctx,
		attribute.String("act.type", actType),
		attribute.String("act.format", string(format)),
		attribute.Bool("act.appendix", res.Appendix),
		attribute.Int("act.photos", len(prepared.Photos)),
	)
	log = log.With(zap.String("act_type", actType), zap.String("file_name", res.FileName))

	var key string
	if s.cache.Enabled() {
		if key, err = cacheKey(prepared, format); err != nil {
			log.Warn("Failed to build cache key", zap.Error(err))
			key, err = "", nil
		}
	}
	if key != "" {
		if data, ok := s.cache.Get(ctx, key); ok {
			res.Data = data
			res.Cached = true
			tracing.AddEvent(ctx, "act.cache_hit")
			log.Debug("Act served from cache")
			return res, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := s.assembler.Build(prepared)
	s.countPhotos(prepared, doc)

	data, err := s.serializer.Serialize(doc)
	if err != nil {
		log.Error("Failed to serialize act", zap.Error(err))
		return nil, fmt.Errorf("failed to serialize act: %w", err)
	}
	tracing.AddEvent(ctx, "act.serialized", attribute.Int("act.docx_bytes", len(data)))

	if format == FormatPDF {
		docxName := FileName(prepared, string(FormatDOCX))
		data, err = s.convert(ctx, docxName, data)
		if err != nil {
			log.Error("Failed to convert act to PDF", zap.Error(err))
			return nil, err
		}
		tracing.AddEvent(ctx, "act.converted", attribute.Int("act.pdf_bytes", len(data)))
	}

	if key != "" {
		s.cache.Set(ctx, key, data)
	}

	res.Data = data
	metrics.ActFileSizeBytes.WithLabelValues(string(format)).Observe(float64(len(data)))
	metrics.ActAppendixTotal.WithLabelValues(strconv.FormatBool(res.Appendix)).Inc()
	log.Info("Act generated",
		zap.Bool("appendix", res.Appendix),
		zap.Int("size_bytes", len(data)),
		zap.Duration("duration", time.Since(start)),
	)
	return res, nil
}

func (s *ServiceImpl) convert(ctx context.Context, name string, docx []byte) ([]byte, error) {
	pdf, err := s.converter.Convert(ctx, name, docx)
	switch {
	case err == nil:
		return pdf, nil
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return nil, fmt.Errorf("%w: %w", ErrPDFUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return nil, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	return nil, fmt.Errorf("failed to convert to PDF: %w", err)
}

// countPhotos учитывает фото, не попавшие в документ из-за нечитаемого data URL
func (s *ServiceImpl) countPhotos(in *ActInput, doc *docmodel.Document) {
	if len(in.Photos) == 0 {
		return
	}
	embedded := len(doc.Images())
	metrics.ActPhotosTotal.WithLabelValues("embedded").Add(float64(embedded))
	if skipped := len(in.Photos) - embedded; skipped > 0 {
		metrics.ActPhotosTotal.WithLabelValues("skipped").Add(float64(skipped))
		s.log.Warn("Some photos were skipped", zap.Int("skipped", skipped))
	}
}

// Preview сводка по акту: формулировка, приложение и текст документа
func (s *ServiceImpl) Preview(ctx context.Context, in *ActInput) (*Preview, error) {
	ctx, span := tracing.StartSpan(ctx, "acts.Preview")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		tracing.RecordError(ctx, err)
		return nil, err
	}

	prepared := PrepareParties(in)
	res := Resolve(prepared.KitItems, prepared.Defects, len(prepared.Photos))
	doc := s.assembler.Build(prepared)
	tracing.AddAttributes(ctx,
		attribute.String("act.type", string(prepared.ActType)),
		attribute.Bool("act.appendix", res.NeedsAppendix),
	)

	return &Preview{
		Clause:        res.Clause,
		NeedsAppendix: res.NeedsAppendix,
		KitString:     KitString(prepared.KitItems),
		DefectLines:   DefectLines(prepared.KitItems, prepared.Defects),
		FileName:      FileName(prepared, string(FormatDOCX)),
		Text:          doc.Text(),
	}, nil
}

// cacheKey SHA-256 от JSON подготовленных данных и формата
func cacheKey(in *ActInput, format Format) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write(data)
	h.Write([]byte{0})
	h.Write([]byte(format))
	return hex.EncodeToString(h.Sum(nil)), nil
}
