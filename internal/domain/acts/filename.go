package acts

import (
	"strings"
	"unicode"

	"acts-service-go/internal/pkg/textutil"
)

const (
	defaultNameToken = "документ"
	minNameToken     = 3
)

// FileName «акт_сдачи_ноутбука_Петров_№12.docx»
func FileName(in *ActInput, ext string) string {
	var b strings.Builder
	b.WriteString("акт_")
	b.WriteString(in.ActType.Genitive())
	b.WriteString("_ноутбука_")
	b.WriteString(nameToken(in))
	if n := strings.TrimSpace(in.ActNumber); n != "" {
		b.WriteString("_№")
		b.WriteString(n)
	}
	return sanitizeFileName(b.String()) + "." + strings.TrimPrefix(ext, ".")
}

// nameToken фамилия стороны, по которой называется файл:
// сдающий для акта сдачи, получающий для акта выдачи
func nameToken(in *ActInput) string {
	var candidates []string
	if in.IsSdacha() {
		candidates = []string{in.SurrendererLastNameInitials, in.SurrendererLabel}
	} else {
		candidates = []string{in.ReceiverLastNameInitials, in.ReceiverLabel}
	}
	for _, c := range candidates {
		if tok := textutil.FirstToken(c, minNameToken); tok != "" {
			return tok
		}
	}
	return defaultNameToken
}

func sanitizeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r), unicode.IsSpace(r), unicode.IsControl(r):
			return '_'
		}
		return r
	}, s)
}
