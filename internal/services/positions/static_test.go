package positions

import (
	"context"
	"math"
	"testing"

	"github.com/admin/astro-services/chart-engine/internal/domain"
)

func TestStaticProviderCoversAllPlanets(t *testing.T) {
	provider := NewStaticProvider()

	for _, planet := range domain.Planets {
		pos, err := provider.FetchPlanet(context.Background(), planet, testUtc, testPlace)
		if err != nil {
			t.Fatalf("FetchPlanet(%s): %v", planet, err)
		}
		if pos.Longitude < 0 || pos.Longitude >= 360 {
			t.Errorf("%s longitude = %f, out of [0,360)", planet, pos.Longitude)
		}
		if pos.DistanceAU <= 0 {
			t.Errorf("%s distance = %f, want > 0", planet, pos.DistanceAU)
		}
	}
}

func TestStaticProviderDeterministic(t *testing.T) {
	provider := NewStaticProvider()

	a, err := provider.FetchPlanet(context.Background(), domain.PlanetSun, testUtc, testPlace)
	if err != nil {
		t.Fatal(err)
	}
	b, err := provider.FetchPlanet(context.Background(), domain.PlanetSun, testUtc, testPlace)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("positions differ between calls: %+v vs %+v", a, b)
	}
}

func TestStaticProviderSunAtEpoch(t *testing.T) {
	provider := NewStaticProvider()

	// на эпоху J2000 средняя долгота Солнца — табличное значение
	epoch := domain.UtcInstant{Year: 2000, Month: 1, Day: 1, Hour: 12}
	pos, err := provider.FetchPlanet(context.Background(), domain.PlanetSun, epoch, testPlace)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pos.Longitude-280.4665) > 1e-9 {
		t.Errorf("Sun longitude at J2000 = %f, want 280.4665", pos.Longitude)
	}
}

func TestStaticProviderSunYearlyMotion(t *testing.T) {
	provider := NewStaticProvider()

	start := domain.UtcInstant{Year: 2002, Month: 10, Day: 3, Hour: 9}
	later := domain.UtcInstant{Year: 2002, Month: 10, Day: 13, Hour: 9}

	a, _ := provider.FetchPlanet(context.Background(), domain.PlanetSun, start, testPlace)
	b, _ := provider.FetchPlanet(context.Background(), domain.PlanetSun, later, testPlace)

	// Солнце проходит примерно градус в сутки
	motion := math.Mod(b.Longitude-a.Longitude+360, 360)
	if math.Abs(motion-9.856) > 0.01 {
		t.Errorf("Sun motion over 10 days = %f, want ~9.856", motion)
	}
}
