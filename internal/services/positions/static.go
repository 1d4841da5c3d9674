package positions

import (
	"context"

	"github.com/admin/astro-services/chart-engine/internal/astro"
	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

// meanElements средняя долгота на эпоху J2000 и среднее суточное движение.
// Линейная аппроксимация: без эксцентриситета и возмущений ошибка по
// долготе достигает нескольких градусов, для офлайн-уровня это приемлемо.
type meanElements struct {
	LongitudeAtEpoch float64 // градусы на J2000.0
	DailyMotion      float64 // градусы в сутки
	MeanDistanceAU   float64
}

var planetElements = map[domain.Planet]meanElements{
	domain.PlanetSun:     {280.4665, 0.98564736, 1.000},
	domain.PlanetMoon:    {218.3165, 13.17639648, 0.00257},
	domain.PlanetMercury: {252.2509, 4.09233445, 0.387},
	domain.PlanetVenus:   {181.9798, 1.60213034, 0.723},
	domain.PlanetMars:    {355.4330, 0.52402068, 1.524},
	domain.PlanetJupiter: {34.3515, 0.08308529, 5.203},
	domain.PlanetSaturn:  {50.0774, 0.03344414, 9.537},
	domain.PlanetUranus:  {314.0550, 0.01172834, 19.191},
	domain.PlanetNeptune: {304.3487, 0.00598103, 30.069},
	domain.PlanetPluto:   {238.9288, 0.00397557, 39.482},
}

// StaticProvider третий уровень цепочки: офлайн-аппроксимация по средним
// элементам орбит. Не ходит в сеть и не умеет отказывать, поэтому до
// синтетических mock-данных дело доходит только при отмене контекста.
type StaticProvider struct{}

// NewStaticProvider создаёт офлайн-провайдер
func NewStaticProvider() service.IPositionProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Name() string { return "static-mean-motion" }

func (p *StaticProvider) Tier() domain.SourceTier { return domain.TierStatic }

func (p *StaticProvider) RateLimited() bool { return false }

// FetchPlanet считает среднюю долготу планеты линейным движением от J2000
func (p *StaticProvider) FetchPlanet(ctx context.Context, planet domain.Planet, utc domain.UtcInstant, place domain.GeoPlace) (domain.PlanetaryPosition, error) {
	elements, ok := planetElements[planet]
	if !ok {
		return domain.PlanetaryPosition{}, domain.ErrSourceUnavailable
	}

	days := astro.JulianDay(utc) - astro.J2000
	longitude := astro.NormalizeDegrees(elements.LongitudeAtEpoch + elements.DailyMotion*days)

	return domain.PlanetaryPosition{
		Planet:     planet,
		Longitude:  longitude,
		Latitude:   0,
		DistanceAU: elements.MeanDistanceAU,
		Magnitude:  0,
	}, nil
}
