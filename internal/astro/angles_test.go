package astro

import (
	"errors"
	"math"
	"testing"

	"github.com/admin/astro-services/chart-engine/internal/domain"
)

func TestMidheaven(t *testing.T) {
	tests := []struct {
		lst  float64
		want float64
	}{
		{0, 0},
		{6, 90},
		{12, 180},
		{18, 270},
		{9.9443575097, 149.1653626455},
		{23.999, 359.985},
	}

	for _, tt := range tests {
		if got := Midheaven(tt.lst); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("Midheaven(%v) = %v, want %v", tt.lst, got, tt.want)
		}
	}
}

// TestAscendantReferenceChart контрольная карта: 2002-10-03 11:00 локального
// (09:00 UTC), Париж 2.2667E 48.8844N. Ожидаемый асцендент — Скорпион 12°50',
// ~222.83°. Этой картой зафиксирована конвенция знака в формуле асцендента.
func TestAscendantReferenceChart(t *testing.T) {
	jd := JulianDay(domain.UtcInstant{Year: 2002, Month: 10, Day: 3, Hour: 9})
	gst := GreenwichSiderealTime(jd)
	lst := LocalSiderealTime(gst, 2.2667)

	asc, err := Ascendant(lst, 48.8844, Obliquity)
	if err != nil {
		t.Fatalf("Ascendant returned error: %v", err)
	}

	if math.Abs(asc-222.8389) > 0.01 {
		t.Errorf("Ascendant = %v, want ~222.8389 (Scorpio 12°50')", asc)
	}

	place := Placement(asc)
	if place.Sign != "Scorpio" {
		t.Errorf("Ascendant sign = %s, want Scorpio", place.Sign)
	}
	if place.DegreesInSign != 12 || place.MinutesInSign != 50 {
		t.Errorf("Ascendant placement = %d°%d', want 12°50'", place.DegreesInSign, place.MinutesInSign)
	}
}

func TestAscendantEquator(t *testing.T) {
	// на экваторе tan(lat)=0 и асцендент зависит только от RAMC
	tests := []struct {
		lst  float64
		want float64
	}{
		{0, 90},
		{6, 180},
		{12, 270},
	}

	for _, tt := range tests {
		got, err := Ascendant(tt.lst, 0, Obliquity)
		if err != nil {
			t.Fatalf("Ascendant(%v, 0) error: %v", tt.lst, err)
		}
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("Ascendant(lst=%v, lat=0) = %v, want %v", tt.lst, got, tt.want)
		}
	}
}

func TestAscendantPolarClamp(t *testing.T) {
	// за ±89.9° широта прижимается: ошибка ErrNumericDomain, но без паники
	// и с валидным углом в [0,360)
	for _, lat := range []float64{89.95, 90, -89.99, -90} {
		got, err := Ascendant(9.9443575097, lat, Obliquity)
		if !errors.Is(err, domain.ErrNumericDomain) {
			t.Errorf("Ascendant(lat=%v) err = %v, want ErrNumericDomain", lat, err)
		}
		if got < 0 || got >= 360 || math.IsNaN(got) {
			t.Errorf("Ascendant(lat=%v) = %v, out of [0,360)", lat, got)
		}
	}

	// широта на самом пороге проходит без ошибки
	if _, err := Ascendant(9.9443575097, 89.9, Obliquity); err != nil {
		t.Errorf("Ascendant(lat=89.9) unexpected error: %v", err)
	}
}

func TestAscendantRange(t *testing.T) {
	for lst := 0.0; lst < 24; lst += 0.7 {
		for _, lat := range []float64{-66.5, -48.9, 0, 48.8844, 66.5} {
			got, err := Ascendant(lst, lat, Obliquity)
			if err != nil {
				t.Fatalf("Ascendant(%v, %v) error: %v", lst, lat, err)
			}
			if got < 0 || got >= 360 {
				t.Errorf("Ascendant(%v, %v) = %v, out of [0,360)", lst, lat, got)
			}
		}
	}
}
