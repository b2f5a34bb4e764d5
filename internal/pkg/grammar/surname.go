package grammar

import (
	"strings"
	"unicode"
)

const (
	consonants       = "бвгджзклмнпрстфхцчшщ"
	hardBeforeO      = "кнлтрвхжшщзсдбпмф"
	sibilants        = "жшщч"
	unchangedEndings = "еэ"
)

// surnameRule срабатывает, если фамилия (строчными) подходит под match.
// cut - сколько последних букв заменить на add.
type surnameRule struct {
	match func(r []rune) bool
	cut   int
	add   string
}

// endsWith проверяет окончание и, если prev не пуст, букву перед ним
func endsWith(prev, suffix string) func(r []rune) bool {
	suf := []rune(suffix)
	return func(r []rune) bool {
		n := len(r) - len(suf)
		if n < 0 || string(r[n:]) != suffix {
			return false
		}
		if prev == "" {
			return true
		}
		return n > 0 && strings.ContainsRune(prev, r[n-1])
	}
}

func endsWithAny(set string) func(r []rune) bool {
	return func(r []rune) bool {
		return len(r) > 0 && strings.ContainsRune(set, r[len(r)-1])
	}
}

// Порядок важен: срабатывает первое совпадение.
var surnameRules = []surnameRule{
	{match: endsWith(hardBeforeO, "о")},
	{match: endsWithAny(unchangedEndings)},
	{match: endsWith("оеё", "в"), add: "а"},
	{match: endsWith("иы", "н"), add: "а"},
	{match: endsWith("", "ский"), cut: 4, add: "ского"},
	{match: endsWith("", "цкий"), cut: 4, add: "цкого"},
	{match: endsWith("", "жий"), cut: 3, add: "жего"},
	{match: endsWith("", "ный"), cut: 3, add: "ного"},
	{match: endsWith("", "ой"), cut: 2, add: "ого"},
	{match: endsWith("", "ий"), cut: 2, add: "его"},
	{match: endsWith(sibilants, "а"), cut: 1, add: "и"},
	{match: endsWith(consonants, "а"), cut: 1, add: "ы"},
	{match: endsWithAny(consonants), add: "а"},
}

// DeclineSurname ставит фамилию в родительный падеж.
// Несклоняемые и нераспознанные фамилии возвращаются как есть.
func DeclineSurname(surname string) string {
	if surname == "" {
		return surname
	}
	orig := []rune(surname)
	lower := []rune(strings.ToLower(surname))
	if len(lower) != len(orig) {
		return surname
	}

	for _, rule := range surnameRules {
		if !rule.match(lower) {
			continue
		}
		if rule.cut == 0 && rule.add == "" {
			return surname
		}
		add := rule.add
		if unicode.IsUpper(orig[len(orig)-1]) {
			add = strings.ToUpper(add)
		}
		return string(orig[:len(orig)-rule.cut]) + add
	}
	return surname
}
