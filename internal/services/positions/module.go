package positions

import (
	"context"
	"time"

	"log/slog"

	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

// Config настройки цепочки источников позиций
type Config struct {
	InterRequestDelay time.Duration `envconfig:"INTER_REQUEST_DELAY" default:"1s"` // пауза между планетами для rate-limited источников
}

// Service реализует IPositionsService: упорядоченная цепочка источников
// с переходом на следующий уровень при отказе. Источник не ретраится —
// худшая задержка ограничена суммой таймаутов по уровням.
type Service struct {
	providers []service.IPositionProvider
	delay     time.Duration
	log       *slog.Logger
}

// New создаёт сервис позиций. Порядок providers и есть порядок фоллбэков.
func New(cfg *Config, providers []service.IPositionProvider, log *slog.Logger) service.IPositionsService {
	delay := time.Second
	if cfg != nil && cfg.InterRequestDelay > 0 {
		delay = cfg.InterRequestDelay
	}
	return &Service{
		providers: providers,
		delay:     delay,
		log:       log,
	}
}

// FetchAll проходит по цепочке источников, пока хоть один не вернёт
// хотя бы одну планету. Частичный отказ внутри источника допустим:
// недоступные планеты помечаются, остальные сохраняются. Если исчерпаны
// все уровни, возвращаются детерминированные синтетические позиции.
func (s *Service) FetchAll(ctx context.Context, utc domain.UtcInstant, place domain.GeoPlace) (map[domain.Planet]domain.PlanetaryPosition, domain.SourceTier) {
	for _, provider := range s.providers {
		if ctx.Err() != nil {
			break
		}

		result, ok := s.fetchFromProvider(ctx, provider, utc, place)
		if ok {
			return result, provider.Tier()
		}

		s.log.Warn("position source failed, advancing to next tier",
			"source", provider.Name(),
			"tier", provider.Tier(),
		)
	}

	s.log.Warn("all position sources exhausted, returning mock data",
		"utc", utc.String(),
		"place", place.Name,
	)
	return mockPositions(utc), domain.TierMock
}

// fetchFromProvider опрашивает один источник по всем планетам.
// Источник считается отказавшим, только если не вернул ни одной планеты.
func (s *Service) fetchFromProvider(ctx context.Context, provider service.IPositionProvider, utc domain.UtcInstant, place domain.GeoPlace) (map[domain.Planet]domain.PlanetaryPosition, bool) {
	result := make(map[domain.Planet]domain.PlanetaryPosition, len(domain.Planets))
	succeeded := 0

	for i, planet := range domain.Planets {
		// rate-limited источники опрашиваются строго последовательно с паузой
		if provider.RateLimited() && i > 0 {
			select {
			case <-ctx.Done():
				return nil, false
			case <-time.After(s.delay):
			}
		}

		pos, err := provider.FetchPlanet(ctx, planet, utc, place)
		if err != nil {
			if ctx.Err() != nil {
				return nil, false
			}
			// отказ одной планеты не роняет остальные
			s.log.Debug("planet fetch failed",
				"source", provider.Name(),
				"planet", planet,
				"error", err,
			)
			result[planet] = domain.PlanetaryPosition{Planet: planet, Available: false}
			continue
		}

		pos.Planet = planet
		pos.Available = true
		result[planet] = pos
		succeeded++
	}

	if succeeded == 0 {
		return nil, false
	}

	s.log.Debug("positions fetched",
		"source", provider.Name(),
		"tier", provider.Tier(),
		"available", succeeded,
		"total", len(domain.Planets),
	)
	return result, true
}

// mockPositions детерминированные синтетические позиции: равномерная
// раскладка по кругу со сдвигом от дня месяца. Пригодны только для того,
// чтобы пайплайн дошёл до конца; потребитель видит их по флагу mock_data.
func mockPositions(utc domain.UtcInstant) map[domain.Planet]domain.PlanetaryPosition {
	result := make(map[domain.Planet]domain.PlanetaryPosition, len(domain.Planets))
	for i, planet := range domain.Planets {
		longitude := float64((i*33+utc.Day*7)%360) + 0.5
		result[planet] = domain.PlanetaryPosition{
			Planet:     planet,
			Longitude:  longitude,
			Latitude:   0,
			DistanceAU: 1,
			Available:  true,
		}
	}
	return result
}
