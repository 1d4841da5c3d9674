package places

import (
	"log/slog"
	"testing"

	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

func testGazetteer() []domain.GeoPlace {
	return []domain.GeoPlace{
		{Name: "Paris, France", Longitude: 2.3522, Latitude: 48.8566, TimezoneID: "Europe/Paris", Country: "France"},
		{Name: "London, United Kingdom", Longitude: -0.1276, Latitude: 51.5072, TimezoneID: "Europe/London", Country: "United Kingdom"},
		{Name: "New York, United States", Longitude: -74.0060, Latitude: 40.7128, TimezoneID: "America/New_York", Country: "United States"},
	}
}

func newTestResolver(t *testing.T) service.IPlaceResolver {
	t.Helper()
	return New(testGazetteer(), slog.Default())
}

func TestResolveExactMatch(t *testing.T) {
	resolver := newTestResolver(t)

	place, confidence := resolver.Resolve("Paris, France")
	if confidence != service.ConfidenceExact {
		t.Fatalf("confidence = %s, want exact", confidence)
	}
	if place.Name != "Paris, France" {
		t.Errorf("place = %s, want Paris, France", place.Name)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	resolver := newTestResolver(t)

	place, confidence := resolver.Resolve("pArIs, fRaNcE")
	if confidence != service.ConfidenceExact {
		t.Fatalf("confidence = %s, want exact", confidence)
	}
	if place.Name != "Paris, France" {
		t.Errorf("place = %s, want Paris, France", place.Name)
	}
}

func TestResolveTokenOverlap(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Paris", "Paris, France"},
		{"paris 15e arrondissement", "Paris, France"},
		{"London", "London, United Kingdom"},
		{"New York City", "New York, United States"},
	}

	resolver := newTestResolver(t)

	for _, tt := range tests {
		place, confidence := resolver.Resolve(tt.query)
		if confidence != service.ConfidencePartial {
			t.Errorf("Resolve(%q) confidence = %s, want partial", tt.query, confidence)
		}
		if place.Name != tt.want {
			t.Errorf("Resolve(%q) = %s, want %s", tt.query, place.Name, tt.want)
		}
	}
}

func TestResolveFallback(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"Atlantis",
		"xy", // короткие токены не матчатся
	}

	resolver := newTestResolver(t)

	for _, query := range tests {
		place, confidence := resolver.Resolve(query)
		if confidence != service.ConfidenceFallback {
			t.Errorf("Resolve(%q) confidence = %s, want fallback", query, confidence)
		}
		// дефолт — первая запись газетира
		if place.Name != "Paris, France" {
			t.Errorf("Resolve(%q) = %s, want default Paris, France", query, place.Name)
		}
	}
}

func TestResolveEmptyGazetteerUsesEmbedded(t *testing.T) {
	resolver := New(nil, slog.Default())

	place, confidence := resolver.Resolve("Tokyo")
	if confidence != service.ConfidencePartial {
		t.Fatalf("confidence = %s, want partial", confidence)
	}
	if place.TimezoneID != "Asia/Tokyo" {
		t.Errorf("timezone = %s, want Asia/Tokyo", place.TimezoneID)
	}
}

func TestMergePlacesSkipsDuplicates(t *testing.T) {
	base := testGazetteer()
	extended := []domain.GeoPlace{
		{Name: "paris, france"}, // дубликат в другом регистре
		{Name: "Berlin, Germany", Longitude: 13.4050, Latitude: 52.5200},
	}

	merged := mergePlaces(base, extended)
	if len(merged) != len(base)+1 {
		t.Fatalf("len(merged) = %d, want %d", len(merged), len(base)+1)
	}
	if merged[len(merged)-1].Name != "Berlin, Germany" {
		t.Errorf("last = %s, want Berlin, Germany", merged[len(merged)-1].Name)
	}
}
