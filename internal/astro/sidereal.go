package astro

import "math"

// GreenwichSiderealTime возвращает гринвичское звёздное время в часах [0,24)
// для юлианской даты jd. Формула заякорена на J2000.0.
func GreenwichSiderealTime(jd float64) float64 {
	gst := 18.697374558 + 1.00273790935*24*(jd-J2000)
	return normalizeHours(gst)
}

// LocalSiderealTime возвращает местное звёздное время в часах [0,24).
// Долгота в градусах, восток положительный; перевод в часы делением на 15.
func LocalSiderealTime(gst, geoLongitude float64) float64 {
	return normalizeHours(gst + geoLongitude/15)
}

// normalizeHours нормализует часы в [0,24); отрицательные значения
// заворачиваются добавлением 24, отрицательный результат невозможен.
func normalizeHours(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// NormalizeDegrees нормализует угол в [0,360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
