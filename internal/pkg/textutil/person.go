package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultRank звание по умолчанию для короткой подписи
const DefaultRank = "рядовой"

// Person данные о военнослужащем, из которых собираются подписи
type Person struct {
	FullName string `json:"fullName" yaml:"fullName"`
	Rank     string `json:"rank,omitempty" yaml:"rank"`
	Position string `json:"position,omitempty" yaml:"position"`
}

// IsZero сообщает, что данных о человеке нет
func (p Person) IsZero() bool {
	return strings.TrimSpace(p.FullName) == ""
}

// Initials возвращает «Фамилия И.О.» (или «Фамилия И.» для двух слов).
// Одно слово возвращается без изменений.
func Initials(fullName string) string {
	parts := strings.Fields(fullName)
	switch {
	case len(parts) >= 3:
		return parts[0] + " " + firstLetter(parts[1]) + "." + firstLetter(parts[2]) + "."
	case len(parts) == 2:
		return parts[0] + " " + firstLetter(parts[1]) + "."
	default:
		return fullName
	}
}

// InitialsWith как Initials, но с уже преобразованной фамилией
func InitialsWith(fullName string, lastName func(string) string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return lastName("")
	}
	parts[0] = lastName(parts[0])
	return Initials(strings.Join(parts, " "))
}

// LcFirst делает строчной первую букву, если это заглавная кириллица.
// В середине предложения должность и звание пишутся со строчной.
func LcFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !isUpperCyrillic(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Nominative «командир первого взвода лейтенант Халупа А.И.»
func Nominative(p Person) string {
	parts := make([]string, 0, 3)
	if p.Position != "" {
		parts = append(parts, LcFirst(p.Position))
	}
	if p.Rank != "" {
		parts = append(parts, LcFirst(p.Rank))
	}
	parts = append(parts, Initials(p.FullName))
	return NoWidows(strings.Join(parts, " "))
}

// ShortRank последнее слово звания («старший лейтенант» -> «лейтенант»)
func ShortRank(rank string) string {
	parts := strings.Fields(rank)
	if len(parts) == 0 {
		return DefaultRank
	}
	return parts[len(parts)-1]
}

// FirstToken первое слово не короче minRunes символов или пустая строка
func FirstToken(label string, minRunes int) string {
	for _, tok := range strings.Fields(label) {
		if utf8.RuneCountInString(tok) >= minRunes {
			return tok
		}
	}
	return ""
}

func firstLetter(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}

func isUpperCyrillic(r rune) bool {
	return (r >= 'А' && r <= 'Я') || r == 'Ё'
}
