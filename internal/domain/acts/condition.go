package acts

import (
	"strings"

	"acts-service-go/internal/pkg/grammar"
	"acts-service-go/internal/pkg/textutil"
)

// Condition состояние позиции комплекта
type Condition string

const (
	ConditionOK        Condition = "ok"
	ConditionDefective Condition = "defective"
	ConditionAbsent    Condition = "absent"
	ConditionCosmetic  Condition = "cosmetic"
)

// Conditions все допустимые состояния
var Conditions = []Condition{ConditionOK, ConditionDefective, ConditionAbsent, ConditionCosmetic}

// Valid проверяет, что состояние из списка допустимых
func (c Condition) Valid() bool {
	switch c {
	case ConditionOK, ConditionDefective, ConditionAbsent, ConditionCosmetic:
		return true
	}
	return false
}

var conditionLabel = map[Condition]string{
	ConditionOK:        "Исправно",
	ConditionDefective: "Неисправно",
	ConditionAbsent:    "Отсутствует",
	ConditionCosmetic:  "Косм. дефекты",
}

var conditionAdjective = map[Condition]map[grammar.Gender]string{
	ConditionOK: {
		grammar.Masculine: "исправен",
		grammar.Feminine:  "исправна",
		grammar.Neuter:    "исправно",
	},
	ConditionDefective: {
		grammar.Masculine: "неисправен",
		grammar.Feminine:  "неисправна",
		grammar.Neuter:    "неисправно",
	},
	ConditionAbsent: {
		grammar.Masculine: "отсутствует",
		grammar.Feminine:  "отсутствует",
		grammar.Neuter:    "отсутствует",
	},
	ConditionCosmetic: {
		grammar.Masculine: "имеет косметические дефекты",
		grammar.Feminine:  "имеет косметические дефекты",
		grammar.Neuter:    "имеет косметические дефекты",
	},
}

// Итоговые формулировки о состоянии оборудования
const (
	ClauseDefective       = " – в неисправном состоянии (см. Приложение)"
	ClausePeripheryBroken = " – ноутбук в исправном состоянии; дефекты периферии указаны в Приложении"
	ClauseIncomplete      = " – ноутбук в исправном состоянии; передаётся в неполном комплекте"
	ClauseCosmetic        = " – ноутбук в исправном состоянии; отдельные позиции имеют косметические дефекты"
	ClauseWorking         = " – в исправном состоянии"
)

// ConditionLabel подпись состояния для интерфейса
func ConditionLabel(c Condition) string {
	return conditionLabel[c]
}

// ConditionAdjective прилагательное состояния, согласованное по роду
func ConditionAdjective(c Condition, g grammar.Gender) string {
	return conditionAdjective[c][g]
}

// ConditionPhrase « (неисправна)» для строки комплекта; пусто для исправных
func ConditionPhrase(c Condition, name string) string {
	if c == ConditionOK {
		return ""
	}
	return textutil.NoWidows(" (" + ConditionAdjective(c, grammar.GenderOf(name)) + ")")
}

// GoesToAppendix позиция попадает в перечень приложения
func GoesToAppendix(c Condition) bool {
	return c == ConditionDefective || c == ConditionAbsent || c == ConditionCosmetic
}

// KitString «ноутбук, мышь (неисправна), сумка (отсутствует)»
func KitString(items []KitItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Name+ConditionPhrase(it.Condition, it.Name))
	}
	return strings.Join(parts, ", ")
}

// Resolution итог по состоянию оборудования
type Resolution struct {
	Clause        string `json:"clause"`
	NeedsAppendix bool   `json:"needsAppendix"`
}

// Resolve выбирает одну формулировку о состоянии и решает, нужно ли приложение.
// Ветви проверяются по порядку, срабатывает первая.
func Resolve(items []KitItem, defects string, photoCount int) Resolution {
	hasDefects := strings.TrimSpace(defects) != ""

	var primaryBroken, peripheryDefective, peripheryAbsent, peripheryCosmetic, anyAppendix bool
	for _, it := range items {
		if GoesToAppendix(it.Condition) {
			anyAppendix = true
		}
		if it.IsPrimary() {
			if it.Condition != ConditionOK {
				primaryBroken = true
			}
			continue
		}
		switch it.Condition {
		case ConditionDefective:
			peripheryDefective = true
		case ConditionAbsent:
			peripheryAbsent = true
		case ConditionCosmetic:
			peripheryCosmetic = true
		}
	}

	var clause string
	switch {
	case primaryBroken || hasDefects:
		clause = ClauseDefective
	case peripheryDefective:
		clause = ClausePeripheryBroken
	case peripheryAbsent:
		clause = ClauseIncomplete
	case peripheryCosmetic:
		clause = ClauseCosmetic
	default:
		clause = ClauseWorking
	}

	return Resolution{
		Clause:        textutil.NoWidows(clause),
		NeedsAppendix: anyAppendix || hasDefects || photoCount > 0,
	}
}
