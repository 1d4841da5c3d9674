package positions

import (
	"context"
	"fmt"
	"strings"
	"time"

	ephemerisApiAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/ephemerisApi"
	"github.com/admin/astro-services/chart-engine/internal/astro"
	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

// SecondaryProvider второй уровень цепочки: внешний эфемеридный API.
// Источник чувствителен к частоте запросов, поэтому RateLimited=true —
// сервис позиций сериализует планеты с паузой.
type SecondaryProvider struct {
	client *ephemerisApiAdapter.Client
}

// NewSecondaryProvider создаёт провайдер поверх клиента эфемеридного API
func NewSecondaryProvider(client *ephemerisApiAdapter.Client) service.IPositionProvider {
	return &SecondaryProvider{client: client}
}

func (p *SecondaryProvider) Name() string { return "ephemeris-api" }

func (p *SecondaryProvider) Tier() domain.SourceTier { return domain.TierSecondary }

func (p *SecondaryProvider) RateLimited() bool { return true }

// FetchPlanet запрашивает эфемериду одной планеты и нормализует её
// на внутреннюю схему позиций
func (p *SecondaryProvider) FetchPlanet(ctx context.Context, planet domain.Planet, utc domain.UtcInstant, place domain.GeoPlace) (domain.PlanetaryPosition, error) {
	resp, err := p.client.FetchEphemeris(ctx, string(planet), utc.DateString(), utc.TimeString(), place.Longitude, place.Latitude)
	if err != nil {
		return domain.PlanetaryPosition{}, fmt.Errorf("failed to fetch ephemeris for %s: %w", planet, err)
	}

	for _, row := range resp.Rows {
		if !strings.EqualFold(row.Target, string(planet)) {
			continue
		}

		var sourceTS time.Time
		if row.EpochISO != "" {
			sourceTS, _ = time.Parse(time.RFC3339, row.EpochISO)
		}

		return domain.PlanetaryPosition{
			Planet:          planet,
			Longitude:       astro.NormalizeDegrees(row.EclLon),
			Latitude:        row.EclLat,
			DistanceAU:      row.DeltaAU,
			Magnitude:       row.VisualMag,
			SourceTimestamp: sourceTS,
		}, nil
	}

	return domain.PlanetaryPosition{}, fmt.Errorf("ephemeris response has no row for %s", planet)
}
