package textutil

import "unicode"

// NBSP неразрывный пробел
const NBSP = '\u00A0'

// NoWidows привязывает короткие слова (1-3 кириллические буквы) к следующему
// слову неразрывным пробелом, чтобы предлоги и союзы не оставались в конце строки.
// Количество символов не меняется: заменяется только один обычный пробел.
func NoWidows(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	changed := false
	for i := 0; i < len(runes); {
		if !isCyrillicLetter(runes[i]) || (i > 0 && !unicode.IsSpace(runes[i-1])) {
			i++
			continue
		}

		j := i
		for j < len(runes) && isCyrillicLetter(runes[j]) {
			j++
		}
		if j-i <= 3 && j < len(runes) && runes[j] == ' ' {
			runes[j] = NBSP
			changed = true
		}
		i = j
	}

	if !changed {
		return s
	}
	return string(runes)
}

func isCyrillicLetter(r rune) bool {
	return (r >= 'а' && r <= 'я') || (r >= 'А' && r <= 'Я') || r == 'ё' || r == 'Ё'
}
