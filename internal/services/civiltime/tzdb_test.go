package civiltime

import (
	"log/slog"
	"testing"

	"github.com/admin/astro-services/chart-engine/internal/domain"
)

func TestTzdbParisSummer(t *testing.T) {
	conv := NewTzdb(slog.Default())

	utc, report, err := conv.ToUtc("2002-10-03", "11:00", francePlace())
	if err != nil {
		t.Fatalf("ToUtc: %v", err)
	}
	if report.Strategy != "tzdb" || report.NaiveFallback {
		t.Errorf("unexpected report: %+v", report)
	}

	// 3 октября 2002 в Париже ещё действует CEST (+2)
	want := "2002-10-03 09:00:00"
	if utc.String() != want {
		t.Errorf("utc = %s, want %s", utc, want)
	}
}

func TestTzdbParisWinter(t *testing.T) {
	conv := NewTzdb(slog.Default())

	utc, _, err := conv.ToUtc("2002-12-03", "11:00", francePlace())
	if err != nil {
		t.Fatalf("ToUtc: %v", err)
	}

	want := "2002-12-03 10:00:00"
	if utc.String() != want {
		t.Errorf("utc = %s, want %s", utc, want)
	}
}

func TestTzdbStrategiesAgreeOnFixture(t *testing.T) {
	// обе стратегии обязаны давать один и тот же результат
	// на эталонном примере, иначе их нельзя считать взаимозаменяемыми
	tzdb := NewTzdb(slog.Default())
	heuristic := NewHeuristic(slog.Default())

	a, _, err := tzdb.ToUtc("2002-10-03", "11:00", francePlace())
	if err != nil {
		t.Fatalf("tzdb: %v", err)
	}
	b, _, err := heuristic.ToUtc("2002-10-03", "11:00", francePlace())
	if err != nil {
		t.Fatalf("heuristic: %v", err)
	}

	if a != b {
		t.Errorf("tzdb = %s, heuristic = %s", a, b)
	}
}

func TestTzdbBadTimezoneNaiveFallback(t *testing.T) {
	conv := NewTzdb(slog.Default())

	place := domain.GeoPlace{Name: "Nowhere", TimezoneID: "Not/AZone"}
	utc, report, err := conv.ToUtc("2002-10-03", "11:00", place)
	if err != nil {
		t.Fatalf("ToUtc: %v", err)
	}
	if !report.NaiveFallback || report.Strategy != "naive" {
		t.Errorf("unexpected report: %+v", report)
	}
	if utc.String() != "2002-10-03 11:00:00" {
		t.Errorf("utc = %s", utc)
	}
}

func TestTzdbUnparseableDate(t *testing.T) {
	conv := NewTzdb(slog.Default())

	if _, _, err := conv.ToUtc("not-a-date", "11:00", francePlace()); err == nil {
		t.Error("expected error for unparseable date")
	}
}
