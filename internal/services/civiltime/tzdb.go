package civiltime

import (
	"fmt"
	"time"

	"log/slog"

	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

const dateLayout = "2006-01-02"

// TzdbConverter стратегия на основе базы таймзон IANA.
// Исторические переходы на летнее время обрабатываются точно —
// это предпочтительная стратегия, когда tzdata доступна.
type TzdbConverter struct {
	log *slog.Logger
}

// NewTzdb создаёт конвертер на основе базы таймзон
func NewTzdb(log *slog.Logger) service.ICivilTimeConverter {
	return &TzdbConverter{log: log}
}

// ToUtc интерпретирует (date, time) как локальное время place.TimezoneID
// и переводит в UTC. Нечитаемая дата — единственная жёсткая ошибка;
// всё остальное деградирует с флагом в отчёте.
func (c *TzdbConverter) ToUtc(localDate, localTime string, place domain.GeoPlace) (domain.UtcInstant, service.ConversionReport, error) {
	report := service.ConversionReport{Strategy: "tzdb"}

	date, err := time.Parse(dateLayout, localDate)
	if err != nil {
		return domain.UtcInstant{}, report, fmt.Errorf("unparseable birth date %q: %w", localDate, err)
	}

	hour, minute, second, coerced := coerceTime(localTime)
	report.TimeCoerced = coerced
	if coerced {
		c.log.Debug("birth time coerced to noon", "raw", localTime)
	}

	loc, err := time.LoadLocation(place.TimezoneID)
	if err != nil {
		// tzdata недоступна или идентификатор битый: локальное время
		// принимается за UTC, потребитель узнаёт об этом по флагу
		c.log.Warn("timezone lookup failed, using naive conversion",
			"error", err,
			"timezone_id", place.TimezoneID,
		)
		report.Strategy = "naive"
		report.NaiveFallback = true
		return instantFrom(time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, time.UTC)), report, nil
	}

	local := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, loc)
	return instantFrom(local.UTC()), report, nil
}

// instantFrom переводит time.Time в доменный момент UTC
func instantFrom(t time.Time) domain.UtcInstant {
	return domain.UtcInstant{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}
