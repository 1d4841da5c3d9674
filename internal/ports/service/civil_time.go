package service

import "github.com/admin/astro-services/chart-engine/internal/domain"

// ConversionReport что именно пришлось сделать при конвертации в UTC
type ConversionReport struct {
	Strategy      string // "tzdb" | "heuristic" | "naive"
	TimeCoerced   bool   // время рождения не распознано, подставлен полдень
	NaiveFallback bool   // конвертация упала, локальное время принято за UTC
}

// ICivilTimeConverter переводит локальные дату/время места рождения в UTC.
// Две стратегии (таблица таймзон и эвристика по стране) реализуют один и
// тот же интерфейс. Ошибка возвращается только для нечитаемой даты —
// всё остальное деградирует с флагом в отчёте.
type ICivilTimeConverter interface {
	ToUtc(localDate, localTime string, place domain.GeoPlace) (domain.UtcInstant, ConversionReport, error)
}
