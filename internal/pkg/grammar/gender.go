// Package grammar склоняет звания, должности и фамилии в родительный падеж
// и определяет род наименований комплектующих.
package grammar

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Gender грамматический род
type Gender int

const (
	Neuter Gender = iota
	Masculine
	Feminine
)

// String возвращает короткое обозначение рода
func (g Gender) String() string {
	switch g {
	case Masculine:
		return "m"
	case Feminine:
		return "f"
	default:
		return "n"
	}
}

var itemGender = map[string]Gender{
	"ноутбук":             Masculine,
	"зарядное устройство": Neuter,
	"компьютерная мышь":   Feminine,
	"мышь":                Feminine,
	"сумка для ноутбука":  Feminine,
	"сумка":               Feminine,
	"usb-концентратор":    Masculine,
	"usb концентратор":    Masculine,
	"кабель питания":      Masculine,
	"кабель":              Masculine,
	"адаптер питания":     Masculine,
	"адаптер":             Masculine,
	"блок питания":        Masculine,
}

// Key приводит наименование к ключу словаря: NFC, без краевых пробелов, строчными.
// Буква «ё» из формы ввода иногда приходит как «е» + U+0308.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

// KnownGender возвращает род из словаря и признак того, что слово в нём есть
func KnownGender(name string) (Gender, bool) {
	g, ok := itemGender[Key(name)]
	return g, ok
}

// GenderOf возвращает род наименования. Неизвестные слова считаются средним родом.
func GenderOf(name string) Gender {
	g, _ := KnownGender(name)
	return g
}
