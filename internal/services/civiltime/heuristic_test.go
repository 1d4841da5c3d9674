package civiltime

import (
	"log/slog"
	"testing"

	"github.com/admin/astro-services/chart-engine/internal/domain"
)

func francePlace() domain.GeoPlace {
	return domain.GeoPlace{
		Name:       "Paris, France",
		Longitude:  2.3522,
		Latitude:   48.8566,
		TimezoneID: "Europe/Paris",
		Country:    "France",
	}
}

func TestHeuristicFranceSummer(t *testing.T) {
	conv := NewHeuristic(slog.Default())

	utc, report, err := conv.ToUtc("2002-10-03", "11:00", francePlace())
	if err != nil {
		t.Fatalf("ToUtc: %v", err)
	}
	if report.Strategy != "heuristic" || report.TimeCoerced || report.NaiveFallback {
		t.Errorf("unexpected report: %+v", report)
	}

	// 3 октября внутри летнего окна, смещение 2 часа
	want := "2002-10-03 09:00:00"
	if utc.String() != want {
		t.Errorf("utc = %s, want %s", utc, want)
	}
}

func TestHeuristicFranceWinter(t *testing.T) {
	conv := NewHeuristic(slog.Default())

	utc, _, err := conv.ToUtc("2002-12-03", "11:00", francePlace())
	if err != nil {
		t.Fatalf("ToUtc: %v", err)
	}

	want := "2002-12-03 10:00:00"
	if utc.String() != want {
		t.Errorf("utc = %s, want %s", utc, want)
	}
}

func TestHeuristicDayBorrow(t *testing.T) {
	conv := NewHeuristic(slog.Default())

	// 01:00 летом во Франции — это 23:00 предыдущих суток UTC
	utc, _, err := conv.ToUtc("2002-06-15", "01:00", francePlace())
	if err != nil {
		t.Fatalf("ToUtc: %v", err)
	}

	want := "2002-06-14 23:00:00"
	if utc.String() != want {
		t.Errorf("utc = %s, want %s", utc, want)
	}
}

func TestHeuristicCoercesMissingTime(t *testing.T) {
	conv := NewHeuristic(slog.Default())

	utc, report, err := conv.ToUtc("2002-10-03", "unknown", francePlace())
	if err != nil {
		t.Fatalf("ToUtc: %v", err)
	}
	if !report.TimeCoerced {
		t.Error("TimeCoerced = false, want true")
	}

	want := "2002-10-03 10:00:00" // полдень минус 2 часа
	if utc.String() != want {
		t.Errorf("utc = %s, want %s", utc, want)
	}
}

func TestHeuristicUnknownCountryNaiveFallback(t *testing.T) {
	conv := NewHeuristic(slog.Default())

	place := domain.GeoPlace{Name: "Ulaanbaatar, Mongolia", Country: "Mongolia"}
	utc, report, err := conv.ToUtc("2002-10-03", "11:00", place)
	if err != nil {
		t.Fatalf("ToUtc: %v", err)
	}
	if !report.NaiveFallback || report.Strategy != "naive" {
		t.Errorf("unexpected report: %+v", report)
	}

	// локальное время принято за UTC
	want := "2002-10-03 11:00:00"
	if utc.String() != want {
		t.Errorf("utc = %s, want %s", utc, want)
	}
}

func TestHeuristicUnparseableDate(t *testing.T) {
	conv := NewHeuristic(slog.Default())

	if _, _, err := conv.ToUtc("03.10.2002", "11:00", francePlace()); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestHeuristicCountryFromPlaceName(t *testing.T) {
	conv := NewHeuristic(slog.Default())

	// страна не заполнена, берётся из имени места
	place := domain.GeoPlace{Name: "Lyon, France"}
	utc, report, err := conv.ToUtc("2002-10-03", "11:00", place)
	if err != nil {
		t.Fatalf("ToUtc: %v", err)
	}
	if report.NaiveFallback {
		t.Error("NaiveFallback = true, want false")
	}
	if utc.String() != "2002-10-03 09:00:00" {
		t.Errorf("utc = %s", utc)
	}
}

func TestIsSummerWindow(t *testing.T) {
	tests := []struct {
		month, day int
		want       bool
	}{
		{3, 26, false},
		{3, 27, true}, // граница включительно
		{6, 15, true},
		{10, 27, true}, // граница включительно
		{10, 28, false},
		{12, 1, false},
		{1, 15, false},
	}

	for _, tt := range tests {
		if got := isSummer(tt.month, tt.day); got != tt.want {
			t.Errorf("isSummer(%d, %d) = %v, want %v", tt.month, tt.day, got, tt.want)
		}
	}
}
