package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"acts-service-go/internal/pkg/textutil"
)

// Звания, должности, порядковые и названия подразделений
var genitiveDict = map[string]string{
	"маршал":       "маршала",
	"генерал":      "генерала",
	"полковник":    "полковника",
	"подполковник": "подполковника",
	"майор":        "майора",
	"капитан":      "капитана",
	"лейтенант":    "лейтенанта",
	"прапорщик":    "прапорщика",
	"старшина":     "старшины",
	"сержант":      "сержанта",
	"ефрейтор":     "ефрейтора",
	"рядовой":      "рядового",
	"курсант":      "курсанта",
	"старший":      "старшего",
	"младший":      "младшего",
	"оператор":     "оператора",
	"командир":     "командира",
	"начальник":    "начальника",
	"заместитель":  "заместителя",
	"офицер":       "офицера",
	"специалист":   "специалиста",
	"инженер":      "инженера",
	"техник":       "техника",
	"связист":      "связиста",
	"программист":  "программиста",
	"аналитик":     "аналитика",
	"водитель":     "водителя",
	"механик":      "механика",
	"переводчик":   "переводчика",
	"первого":      "первого",
	"первый":       "первого",
	"второго":      "второго",
	"второй":       "второго",
	"третьего":     "третьего",
	"третий":       "третьего",
	"четвёртого":   "четвёртого",
	"роты":         "роты",
	"рота":         "роты",
	"взвода":       "взвода",
	"взвод":        "взвода",
	"батальона":    "батальона",
	"батальон":     "батальона",
	"полка":        "полка",
	"полк":         "полка",
	"дивизии":      "дивизии",
	"бригады":      "бригады",
}

type suffixRule struct {
	suffix  string
	replace string
	// keep оставляет окончание и дописывает replace
	keep bool
}

// Порядок важен: срабатывает первое совпадение.
var wordRules = []suffixRule{
	{suffix: "ый", replace: "ого"},
	{suffix: "ий", replace: "его"},
	{suffix: "ник", replace: "а", keep: true},
	{suffix: "ист", replace: "а", keep: true},
	{suffix: "ор", replace: "а", keep: true},
}

// GenitiveOf ищет слово в словаре. false означает, что слово словарю неизвестно
// и DeclineWord применит к нему правила окончаний.
func GenitiveOf(word string) (string, bool) {
	gen, ok := genitiveDict[Key(word)]
	return gen, ok
}

// DeclineWord ставит одно слово в родительный падеж
func DeclineWord(word string) string {
	w := strings.TrimSpace(word)
	if w == "" {
		return w
	}

	if gen, ok := GenitiveOf(w); ok {
		first, _ := utf8.DecodeRuneInString(w)
		if unicode.IsUpper(first) {
			return upperFirst(gen)
		}
		return gen
	}

	if out, ok := applyRules(w, wordRules); ok {
		return out
	}
	return w
}

// DeclinePhrase склоняет фразу пословно. Слова в скобках не трогаются.
func DeclinePhrase(phrase string) string {
	tokens := strings.Fields(phrase)
	for i, tok := range tokens {
		if strings.HasPrefix(tok, "(") {
			continue
		}
		tokens[i] = DeclineWord(tok)
	}
	return textutil.NoWidows(strings.Join(tokens, " "))
}

// Genitive «командира первого взвода лейтенанта Халупы А.И.»
func Genitive(p textutil.Person) string {
	parts := make([]string, 0, 3)
	if p.Position != "" {
		parts = append(parts, DeclinePhrase(textutil.LcFirst(p.Position)))
	}
	if p.Rank != "" {
		parts = append(parts, DeclinePhrase(textutil.LcFirst(p.Rank)))
	}
	parts = append(parts, textutil.InitialsWith(p.FullName, DeclineSurname))
	return textutil.NoWidows(strings.Join(parts, " "))
}

// applyRules применяет первое подходящее правило. Сравнение без учёта регистра,
// замена повторяет регистр последней буквы заменяемого окончания.
func applyRules(w string, rules []suffixRule) (string, bool) {
	lower := strings.ToLower(w)
	for _, r := range rules {
		if !strings.HasSuffix(lower, r.suffix) {
			continue
		}
		base := w
		if !r.keep {
			base = w[:len(w)-len(r.suffix)]
		}
		last, _ := utf8.DecodeLastRuneInString(w)
		repl := r.replace
		if unicode.IsUpper(last) {
			repl = strings.ToUpper(repl)
		}
		return base + repl, true
	}
	return w, false
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
