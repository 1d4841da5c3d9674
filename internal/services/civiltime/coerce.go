package civiltime

import (
	"regexp"
	"strconv"
)

// timePattern извлекает время из произвольной строки: "11:00", "9.30",
// "около 14:15:30" и т.п. Секунды опциональны.
var timePattern = regexp.MustCompile(`(\d{1,2})[:.h](\d{2})(?::(\d{2}))?`)

// coerceTime приводит строку времени рождения к каноническим часам/минутам.
// Если ничего похожего на время не извлекается, подставляется полдень —
// известная потеря точности, наружу уходит флаг coerced.
func coerceTime(raw string) (hour, minute, second int, coerced bool) {
	m := timePattern.FindStringSubmatch(raw)
	if m == nil {
		return 12, 0, 0, true
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}

	if hour > 23 || minute > 59 || second > 59 {
		return 12, 0, 0, true
	}

	// точное совпадение с исходной строкой не требуется:
	// "примерно 11:00" — валидное время с точки зрения продукта
	return hour, minute, second, false
}
