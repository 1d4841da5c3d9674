package positions

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

var testUtc = domain.UtcInstant{Year: 2002, Month: 10, Day: 3, Hour: 9}

var testPlace = domain.GeoPlace{Name: "Paris, France", Longitude: 2.2667, Latitude: 48.8844}

// fakeProvider управляемый источник для тестов цепочки
type fakeProvider struct {
	name        string
	tier        domain.SourceTier
	rateLimited bool
	failPlanets map[domain.Planet]bool
	failAll     bool
	calls       int
}

func (f *fakeProvider) Name() string            { return f.name }
func (f *fakeProvider) Tier() domain.SourceTier { return f.tier }
func (f *fakeProvider) RateLimited() bool       { return f.rateLimited }

func (f *fakeProvider) FetchPlanet(ctx context.Context, planet domain.Planet, utc domain.UtcInstant, place domain.GeoPlace) (domain.PlanetaryPosition, error) {
	f.calls++
	if f.failAll || f.failPlanets[planet] {
		return domain.PlanetaryPosition{}, errors.New("source down")
	}
	return domain.PlanetaryPosition{
		Planet:    planet,
		Longitude: 100,
	}, nil
}

func newTestService(providers ...*fakeProvider) *Service {
	cfg := &Config{InterRequestDelay: time.Millisecond}
	svcProviders := make([]service.IPositionProvider, 0, len(providers))
	for _, p := range providers {
		svcProviders = append(svcProviders, p)
	}
	return New(cfg, svcProviders, slog.Default()).(*Service)
}

func TestFetchAllFirstTierSucceeds(t *testing.T) {
	primary := &fakeProvider{name: "primary", tier: domain.TierPrimary}
	secondary := &fakeProvider{name: "secondary", tier: domain.TierSecondary}

	result, tier := newTestService(primary, secondary).FetchAll(context.Background(), testUtc, testPlace)

	if tier != domain.TierPrimary {
		t.Fatalf("tier = %s, want primary", tier)
	}
	if len(result) != len(domain.Planets) {
		t.Fatalf("len(result) = %d, want %d", len(result), len(domain.Planets))
	}
	if secondary.calls != 0 {
		t.Errorf("secondary was called %d times, want 0", secondary.calls)
	}
	for _, planet := range domain.Planets {
		if !result[planet].Available {
			t.Errorf("%s is unavailable, want available", planet)
		}
	}
}

func TestFetchAllAdvancesTierOnTotalFailure(t *testing.T) {
	primary := &fakeProvider{name: "primary", tier: domain.TierPrimary, failAll: true}
	secondary := &fakeProvider{name: "secondary", tier: domain.TierSecondary}

	_, tier := newTestService(primary, secondary).FetchAll(context.Background(), testUtc, testPlace)

	if tier != domain.TierSecondary {
		t.Fatalf("tier = %s, want secondary", tier)
	}
	// отказавший источник не ретраится: ровно по одному вызову на планету
	if primary.calls != len(domain.Planets) {
		t.Errorf("primary calls = %d, want %d", primary.calls, len(domain.Planets))
	}
}

func TestFetchAllPartialFailureStaysOnTier(t *testing.T) {
	primary := &fakeProvider{
		name:        "primary",
		tier:        domain.TierPrimary,
		failPlanets: map[domain.Planet]bool{domain.PlanetMoon: true, domain.PlanetPluto: true},
	}

	result, tier := newTestService(primary).FetchAll(context.Background(), testUtc, testPlace)

	if tier != domain.TierPrimary {
		t.Fatalf("tier = %s, want primary", tier)
	}
	if result[domain.PlanetMoon].Available {
		t.Error("Moon should be unavailable")
	}
	if result[domain.PlanetPluto].Available {
		t.Error("Pluto should be unavailable")
	}
	if !result[domain.PlanetSun].Available {
		t.Error("Sun should be available")
	}
}

func TestFetchAllExhaustedReturnsMock(t *testing.T) {
	primary := &fakeProvider{name: "primary", tier: domain.TierPrimary, failAll: true}
	secondary := &fakeProvider{name: "secondary", tier: domain.TierSecondary, failAll: true}

	result, tier := newTestService(primary, secondary).FetchAll(context.Background(), testUtc, testPlace)

	if tier != domain.TierMock {
		t.Fatalf("tier = %s, want mock", tier)
	}
	// mock-карта всегда полная
	if len(result) != len(domain.Planets) {
		t.Fatalf("len(result) = %d, want %d", len(result), len(domain.Planets))
	}
	for _, planet := range domain.Planets {
		pos := result[planet]
		if !pos.Available {
			t.Errorf("%s is unavailable in mock data", planet)
		}
		if pos.Longitude < 0 || pos.Longitude >= 360 {
			t.Errorf("%s longitude = %f, out of [0,360)", planet, pos.Longitude)
		}
	}
}

func TestFetchAllMockIsDeterministic(t *testing.T) {
	a := mockPositions(testUtc)
	b := mockPositions(testUtc)
	for _, planet := range domain.Planets {
		if a[planet] != b[planet] {
			t.Errorf("mock positions for %s differ between calls", planet)
		}
	}
}

func TestFetchAllCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary := &fakeProvider{name: "primary", tier: domain.TierPrimary}

	result, tier := newTestService(primary).FetchAll(ctx, testUtc, testPlace)

	// при отменённом контексте источники не опрашиваются,
	// но результат всё равно полный
	if tier != domain.TierMock {
		t.Fatalf("tier = %s, want mock", tier)
	}
	if len(result) != len(domain.Planets) {
		t.Fatalf("len(result) = %d, want %d", len(result), len(domain.Planets))
	}
}

func TestFetchAllRateLimitedSerialized(t *testing.T) {
	delay := 5 * time.Millisecond
	limited := &fakeProvider{name: "limited", tier: domain.TierSecondary, rateLimited: true}

	svc := New(&Config{InterRequestDelay: delay}, []service.IPositionProvider{limited}, slog.Default()).(*Service)

	start := time.Now()
	_, tier := svc.FetchAll(context.Background(), testUtc, testPlace)
	elapsed := time.Since(start)

	if tier != domain.TierSecondary {
		t.Fatalf("tier = %s", tier)
	}
	// девять пауз между десятью планетами
	if minimum := delay * time.Duration(len(domain.Planets)-1); elapsed < minimum {
		t.Errorf("elapsed = %s, want at least %s", elapsed, minimum)
	}
}
