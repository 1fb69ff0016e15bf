package names

import (
	"strings"

	"golang.org/x/text/cases"
)

// Key приводит имя к виду для сравнения: без регистра, без лишних пробелов.
// "  Fluid   Ounces " и "fluid ounces" дают один и тот же ключ.
func Key(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	// Caser хранит состояние, поэтому создаём новый на каждый вызов
	return cases.Fold().String(s)
}
