package acts

import (
	"context"
	"fmt"
	"strings"

	"acts-service-go/internal/pkg/docmodel"
)

// Format формат выходного файла
type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// ParseFormat разбирает формат из запроса. Пустая строка означает DOCX.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatDOCX:
		return FormatDOCX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: unsupported format %q", ErrInvalidInput, s)
}

// ContentType MIME-тип файла
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

// Result готовый файл акта
type Result struct {
	Data        []byte
	FileName    string
	ContentType string
	Appendix    bool
	Cached      bool
}

// Preview сводка по акту без сборки файла
type Preview struct {
	Clause        string   `json:"clause"`
	NeedsAppendix bool     `json:"needsAppendix"`
	KitString     string   `json:"kitString"`
	DefectLines   []string `json:"defectLines,omitempty"`
	FileName      string   `json:"fileName"`
	Text          string   `json:"text"`
}

// Serializer превращает модель документа в DOCX
type Serializer interface {
	Serialize(doc *docmodel.Document) ([]byte, error)
}

// Converter конвертирует DOCX в PDF
type Converter interface {
	Convert(ctx context.Context, fileName string, docx []byte) ([]byte, error)
}

// Service генерация актов
type Service interface {
	Generate(ctx context.Context, in *ActInput, format Format) (*Result, error)
	Preview(ctx context.Context, in *ActInput) (*Preview, error)
}
