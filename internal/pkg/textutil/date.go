package textutil

import (
	"fmt"
	"regexp"
	"strings"
)

// MonthsGenitive названия месяцев в родительном падеже
var MonthsGenitive = [12]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// RE2 не считает NBSP пробелом, поэтому он перечислен явно.
var datePattern = regexp.MustCompile(`^«([^»]+)»[\s\x{00A0}]+([^\s\x{00A0}]+)[\s\x{00A0}]+(.*)$`)

// DateParts разобранная дата вида «01» января 2026 г.
type DateParts struct {
	Day   string
	Month string
	Rest  string
}

// ParseDate разбирает строку даты. false означает, что строку нужно выводить как есть.
func ParseDate(s string) (DateParts, bool) {
	m := datePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return DateParts{}, false
	}
	return DateParts{Day: m[1], Month: m[2], Rest: m[3]}, true
}

// PlaceholderDate дата с пропусками для заполнения от руки
func PlaceholderDate(year string) string {
	return fmt.Sprintf("«___» ___________ %s г.", year)
}

// IsPlaceholderDate сообщает, что дата не задана и печатается бланком
func IsPlaceholderDate(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.Contains(s, "___")
}

// FormatFullDate собирает дату из дня, месяца (1-12) и года.
// При некорректных дне или месяце возвращает бланк.
func FormatFullDate(day, month int, year string) string {
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return PlaceholderDate(year)
	}
	return fmt.Sprintf("«%02d»%c%s%c%s%cг.", day, NBSP, MonthsGenitive[month-1], NBSP, year, NBSP)
}
