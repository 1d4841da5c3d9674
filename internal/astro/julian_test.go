package astro

import (
	"math"
	"testing"

	"github.com/admin/astro-services/chart-engine/internal/domain"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name     string
		u        domain.UtcInstant
		expected float64
		tol      float64
	}{
		{
			name:     "J2000 epoch",
			u:        domain.UtcInstant{Year: 2000, Month: 1, Day: 1, Hour: 12},
			expected: 2451545.0,
			tol:      1e-9,
		},
		{
			name:     "unix epoch",
			u:        domain.UtcInstant{Year: 1970, Month: 1, Day: 1},
			expected: 2440587.5,
			tol:      1e-9,
		},
		{
			name:     "2024-01-01 00:00 UTC",
			u:        domain.UtcInstant{Year: 2024, Month: 1, Day: 1},
			expected: 2460310.5,
			tol:      1e-9,
		},
		{
			name:     "reference chart 2002-10-03 09:00 UTC",
			u:        domain.UtcInstant{Year: 2002, Month: 10, Day: 3, Hour: 9},
			expected: 2452550.875,
			tol:      1e-9,
		},
		{
			name:     "1800-01-01 midnight",
			u:        domain.UtcInstant{Year: 1800, Month: 1, Day: 1},
			expected: 2378496.5,
			tol:      1e-9,
		},
		{
			name:     "2200-12-31 noon",
			u:        domain.UtcInstant{Year: 2200, Month: 12, Day: 31, Hour: 12},
			expected: 2524958.0,
			tol:      1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDay(tt.u)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("JulianDay() = %v, want %v (±%v)", got, tt.expected, tt.tol)
			}
		})
	}
}

func TestJulianDayMonotonic(t *testing.T) {
	// последовательность моментов строго возрастает, JD обязан возрастать вместе с ней
	moments := []domain.UtcInstant{
		{Year: 1800, Month: 1, Day: 1},
		{Year: 1899, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59},
		{Year: 1900, Month: 1, Day: 1},
		{Year: 1999, Month: 2, Day: 28, Hour: 11, Minute: 30},
		{Year: 1999, Month: 2, Day: 28, Hour: 11, Minute: 30, Second: 1},
		{Year: 2000, Month: 2, Day: 29},
		{Year: 2002, Month: 10, Day: 3, Hour: 9},
		{Year: 2002, Month: 10, Day: 3, Hour: 9, Minute: 0, Second: 1},
		{Year: 2100, Month: 3, Day: 1},
		{Year: 2200, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59},
	}

	for i := 1; i < len(moments); i++ {
		a, b := moments[i-1], moments[i]
		if !a.Before(b) {
			t.Fatalf("test data not ordered at %d: %v !< %v", i, a, b)
		}
		if JulianDay(a) >= JulianDay(b) {
			t.Errorf("JulianDay not monotonic: %v (%v) >= %v (%v)",
				a, JulianDay(a), b, JulianDay(b))
		}
	}
}

func TestJulianDayLeapYears(t *testing.T) {
	// 1900 не високосный, 2000 високосный: 28 февраля + 1 день
	feb28_1900 := JulianDay(domain.UtcInstant{Year: 1900, Month: 2, Day: 28})
	mar01_1900 := JulianDay(domain.UtcInstant{Year: 1900, Month: 3, Day: 1})
	if diff := mar01_1900 - feb28_1900; math.Abs(diff-1) > 1e-9 {
		t.Errorf("1900: Mar 1 - Feb 28 = %v, want 1 (no leap day)", diff)
	}

	feb28_2000 := JulianDay(domain.UtcInstant{Year: 2000, Month: 2, Day: 28})
	mar01_2000 := JulianDay(domain.UtcInstant{Year: 2000, Month: 3, Day: 1})
	if diff := mar01_2000 - feb28_2000; math.Abs(diff-2) > 1e-9 {
		t.Errorf("2000: Mar 1 - Feb 28 = %v, want 2 (leap day)", diff)
	}
}
