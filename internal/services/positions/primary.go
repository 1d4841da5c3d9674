package positions

import (
	"context"
	"fmt"
	"time"

	positionsApiAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/positionsApi"
	"github.com/admin/astro-services/chart-engine/internal/astro"
	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

// PrimaryProvider первый уровень цепочки: вычислительный микросервис позиций
type PrimaryProvider struct {
	client *positionsApiAdapter.Client
}

// NewPrimaryProvider создаёт провайдер поверх клиента микросервиса
func NewPrimaryProvider(client *positionsApiAdapter.Client) service.IPositionProvider {
	return &PrimaryProvider{client: client}
}

func (p *PrimaryProvider) Name() string { return "positions-api" }

func (p *PrimaryProvider) Tier() domain.SourceTier { return domain.TierPrimary }

func (p *PrimaryProvider) RateLimited() bool { return false }

// FetchPlanet запрашивает позицию одной планеты у микросервиса
func (p *PrimaryProvider) FetchPlanet(ctx context.Context, planet domain.Planet, utc domain.UtcInstant, place domain.GeoPlace) (domain.PlanetaryPosition, error) {
	req := positionsApiAdapter.ComputeRequest{
		Body: string(planet),
		Moment: positionsApiAdapter.MomentData{
			Year:   utc.Year,
			Month:  utc.Month,
			Day:    utc.Day,
			Hour:   utc.Hour,
			Minute: utc.Minute,
			Second: utc.Second,
		},
		Geo: positionsApiAdapter.GeoData{
			Longitude:  place.Longitude,
			Latitude:   place.Latitude,
			AltitudeKm: place.AltitudeKm,
		},
		ZodiacTyp: "Tropic",
		Precision: 2,
	}

	resp, err := p.client.ComputeBodyPosition(ctx, req)
	if err != nil {
		return domain.PlanetaryPosition{}, fmt.Errorf("failed to compute position for %s: %w", planet, err)
	}

	if resp.Status != "" && resp.Status != "success" {
		return domain.PlanetaryPosition{}, fmt.Errorf("positions API returned error: status=%s, code=%d, message=%s",
			resp.Status, resp.Code, resp.Message)
	}

	if resp.Data == nil {
		return domain.PlanetaryPosition{}, fmt.Errorf("positions API returned empty data for %s", planet)
	}

	var sourceTS time.Time
	if resp.Data.Timestamp != "" {
		// кривой timestamp не повод отбрасывать позицию
		sourceTS, _ = time.Parse(time.RFC3339, resp.Data.Timestamp)
	}

	return domain.PlanetaryPosition{
		Planet:          planet,
		Longitude:       astro.NormalizeDegrees(resp.Data.Longitude),
		Latitude:        resp.Data.Latitude,
		DistanceAU:      resp.Data.DistanceAU,
		Magnitude:       resp.Data.Magnitude,
		SourceTimestamp: sourceTS,
	}, nil
}
