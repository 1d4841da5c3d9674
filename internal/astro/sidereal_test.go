package astro

import (
	"math"
	"testing"
)

func TestGreenwichSiderealTime(t *testing.T) {
	tests := []struct {
		name     string
		jd       float64
		expected float64
		tol      float64
	}{
		{"J2000 anchor", 2451545.0, 18.697374558, 1e-9},
		{"unix epoch", 2440587.5, 6.6819736950, 1e-6},
		{"reference chart", 2452550.875, 9.7932441763, 1e-6},
		{"1800", 2378496.5, 6.6932668746, 1e-6},
		{"2200", 2524958.0, 18.6527132352, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GreenwichSiderealTime(tt.jd)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("GreenwichSiderealTime(%v) = %v, want %v", tt.jd, got, tt.expected)
			}
		})
	}
}

func TestGreenwichSiderealTimeRange(t *testing.T) {
	// включая JD до эпохи J2000, где сырой результат формулы отрицательный
	for jd := 2378496.5; jd < 2524958.0; jd += 997.25 {
		gst := GreenwichSiderealTime(jd)
		if gst < 0 || gst >= 24 {
			t.Fatalf("GreenwichSiderealTime(%v) = %v, out of [0,24)", jd, gst)
		}
	}
}

func TestLocalSiderealTime(t *testing.T) {
	tests := []struct {
		name     string
		gst      float64
		lon      float64
		expected float64
	}{
		{"greenwich", 12, 0, 12},
		{"paris", 9.7932441763, 2.2667, 9.9443575097},
		{"east wrap", 23.5, 120, 7.5},
		{"west wrap", 0.5, -120, 16.5},
		{"date line east", 12, 180, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalSiderealTime(tt.gst, tt.lon)
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("LocalSiderealTime(%v, %v) = %v, want %v", tt.gst, tt.lon, got, tt.expected)
			}
			if got < 0 || got >= 24 {
				t.Errorf("LST out of range: %v", got)
			}
		})
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{361, 1},
		{-1, 359},
		{-360, 0},
		{720.5, 0.5},
		{-725, 355},
	}

	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
