package astro

import (
	"math"
	"testing"
)

func TestBuildHouseSystem(t *testing.T) {
	hs := BuildHouseSystem(222.8389, 149.1654)

	if hs.SystemName != "Placidus" {
		t.Errorf("SystemName = %s, want Placidus", hs.SystemName)
	}
	if math.Abs(hs.Cusps[0].Longitude-222.8389) > 1e-9 {
		t.Errorf("house 1 cusp = %v, want ascendant 222.8389", hs.Cusps[0].Longitude)
	}
	if math.Abs(hs.Cusps[9].Longitude-149.1654) > 1e-9 {
		t.Errorf("house 10 cusp = %v, want MC 149.1654", hs.Cusps[9].Longitude)
	}

	// остальные куспиды идут с шагом 30° от асцендента
	for i, wantOffset := range map[int]float64{1: 30, 2: 60, 3: 90, 4: 120, 5: 150, 6: 180, 7: 210, 8: 240, 10: 300, 11: 330} {
		want := NormalizeDegrees(222.8389 + wantOffset)
		if math.Abs(hs.Cusps[i].Longitude-want) > 1e-9 {
			t.Errorf("house %d cusp = %v, want %v", i+1, hs.Cusps[i].Longitude, want)
		}
	}

	for i := 0; i < 12; i++ {
		if hs.Cusps[i].House != i+1 {
			t.Errorf("cusp %d has house number %d", i, hs.Cusps[i].House)
		}
	}
}

func TestHouseOfEqualPartition(t *testing.T) {
	// MC ровно на asc+270: куспиды делят круг на 12 равных дуг без зазоров
	hs := BuildHouseSystem(0, 270)

	for lon := 0.0; lon < 360; lon += 0.25 {
		want := int(lon/30) + 1
		if got := HouseOf(lon, hs); got != want {
			t.Fatalf("HouseOf(%v) = %d, want %d", lon, got, want)
		}
	}
}

func TestHouseOfWrapAround(t *testing.T) {
	hs := BuildHouseSystem(330, 240)

	tests := []struct {
		lon  float64
		want int
	}{
		{330, 1},
		{359.9, 1},
		{0, 2},   // дуга первого дома [330,360), второй начинается на 0°
		{29.9, 2},
		{100, 5},
		{329.9, 12},
	}

	for _, tt := range tests {
		if got := HouseOf(tt.lon, hs); got != tt.want {
			t.Errorf("HouseOf(%v) = %d, want %d", tt.lon, got, tt.want)
		}
	}
}

func TestHouseOfReferenceChart(t *testing.T) {
	hs := BuildHouseSystem(222.8389, 149.1654)

	// асцендент лежит в первом доме, MC — в десятом
	if got := HouseOf(hs.Ascendant, hs); got != 1 {
		t.Errorf("HouseOf(ascendant) = %d, want 1", got)
	}
	if got := HouseOf(hs.MC, hs); got != 10 {
		t.Errorf("HouseOf(MC) = %d, want 10", got)
	}

	// каждая долгота попадает ровно в один дом
	counts := make(map[int]int)
	for lon := 0.0; lon < 360; lon += 0.5 {
		h := HouseOf(lon, hs)
		if h < 1 || h > 12 {
			t.Fatalf("HouseOf(%v) = %d, out of 1..12", lon, h)
		}
		counts[h]++
	}
	for h := 1; h <= 12; h++ {
		if counts[h] == 0 {
			t.Errorf("house %d never matched", h)
		}
	}
}
