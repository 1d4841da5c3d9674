// Package astro чистая вычислительная математика движка:
// юлианские дни, звёздное время, асцендент/MC, дома и знаки.
// Никакого I/O, все функции детерминированы и безопасны для любого потока.
package astro

import "github.com/admin/astro-services/chart-engine/internal/domain"

// J2000 юлианская дата эпохи J2000.0 (2000-01-01 12:00 UTC)
const J2000 = 2451545.0

// JulianDay переводит момент UTC в юлианскую дату с дробной частью.
// Целая часть считается стандартным григорианским алгоритмом (JDN привязан
// к полудню), поэтому доля суток сдвигается на -0.5: полночь даты D даёт
// ровно JDN(D) - 0.5, а 2000-01-01 12:00 UTC даёт ровно 2451545.0.
// Монотонно неубывающая по входному моменту.
func JulianDay(u domain.UtcInstant) float64 {
	a := (14 - u.Month) / 12
	y := u.Year + 4800 - a
	m := u.Month + 12*a - 3

	jdn := u.Day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	dayFrac := (float64(u.Hour) + float64(u.Minute)/60 + float64(u.Second)/3600) / 24

	return float64(jdn) + dayFrac - 0.5
}
