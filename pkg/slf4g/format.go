package slf4g

import (
	"fmt"
	"regexp"
	"strconv"
)

var placeholderRe = regexp.MustCompile(`\{(\d+)\}`)

// Format — подставляет args[N] вместо каждого {N}.
// Плейсхолдеры без соответствующего аргумента остаются как есть.
func Format(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		idx, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || idx >= len(args) {
			return match
		}
		return fmt.Sprint(args[idx])
	})
}

// FormatValue — как Format, но для произвольного значения: не-строки возвращаются без изменений.
func FormatValue(msg any, args ...any) any {
	s, ok := msg.(string)
	if !ok {
		return msg
	}
	return Format(s, args...)
}

// Sprint — строковое представление сообщения для бэкендов.
func Sprint(msg any, args ...any) string {
	switch m := msg.(type) {
	case string:
		return Format(m, args...)
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}
