package civiltime

import (
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

// seasonalOffset смещения страны от UTC в часах, летнее и зимнее
type seasonalOffset struct {
	Summer int
	Winter int
}

// countryOffsets таблица сезонных смещений по странам.
// Грубое приближение для окружений без tzdata: одна зона на страну,
// фиксированное летнее окно (см. isSummer).
var countryOffsets = map[string]seasonalOffset{
	"france":         {Summer: 2, Winter: 1},
	"germany":        {Summer: 2, Winter: 1},
	"spain":          {Summer: 2, Winter: 1},
	"italy":          {Summer: 2, Winter: 1},
	"united kingdom": {Summer: 1, Winter: 0},
	"portugal":       {Summer: 1, Winter: 0},
	"greece":         {Summer: 3, Winter: 2},
	"russia":         {Summer: 3, Winter: 3}, // без перехода с 2014 года
	"japan":          {Summer: 9, Winter: 9},
	"argentina":      {Summer: -3, Winter: -3},
}

// HeuristicConverter стратегия без базы таймзон: смещение выводится из
// страны и сезона. Летнее окно упрощено до [27 марта, 27 октября]
// включительно — для исторических дат это заведомо неточно.
type HeuristicConverter struct {
	log *slog.Logger
}

// NewHeuristic создаёт эвристический конвертер
func NewHeuristic(log *slog.Logger) service.ICivilTimeConverter {
	return &HeuristicConverter{log: log}
}

// ToUtc вычитает сезонное смещение страны из локального времени.
// Неизвестная страна деградирует до наивной конвертации с флагом.
func (c *HeuristicConverter) ToUtc(localDate, localTime string, place domain.GeoPlace) (domain.UtcInstant, service.ConversionReport, error) {
	report := service.ConversionReport{Strategy: "heuristic"}

	date, err := time.Parse(dateLayout, localDate)
	if err != nil {
		return domain.UtcInstant{}, report, fmt.Errorf("unparseable birth date %q: %w", localDate, err)
	}

	hour, minute, second, coerced := coerceTime(localTime)
	report.TimeCoerced = coerced
	if coerced {
		c.log.Debug("birth time coerced to noon", "raw", localTime)
	}

	offset, ok := countryOffsets[countryKey(place)]
	if !ok {
		c.log.Warn("no seasonal offset for country, using naive conversion",
			"country", place.Country,
			"place", place.Name,
		)
		report.Strategy = "naive"
		report.NaiveFallback = true
		return instantFrom(time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, time.UTC)), report, nil
	}

	offsetHours := offset.Winter
	if isSummer(int(date.Month()), date.Day()) {
		offsetHours = offset.Summer
	}

	// time.Date нормализует переполнение часов, перенос через границу
	// суток получается автоматически
	utc := time.Date(date.Year(), date.Month(), date.Day(), hour-offsetHours, minute, second, 0, time.UTC)
	return instantFrom(utc), report, nil
}

// isSummer относит дату к летнему окну [27 марта, 27 октября] включительно
func isSummer(month, day int) bool {
	if month < 3 || month > 10 {
		return false
	}
	if month == 3 {
		return day >= 27
	}
	if month == 10 {
		return day <= 27
	}
	return true
}

// countryKey страна для таблицы смещений: явное поле записи газетира
// либо последний сегмент имени места после запятой
func countryKey(place domain.GeoPlace) string {
	if place.Country != "" {
		return strings.ToLower(strings.TrimSpace(place.Country))
	}
	parts := strings.Split(place.Name, ",")
	return strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
}
