package astro

import (
	"math"

	"github.com/admin/astro-services/chart-engine/internal/domain"
)

// Obliquity наклон эклиптики к экватору, градусы (эпоха J2000)
const Obliquity = 23.4392911

// maxSafeLatitude за этим порогом tan(широты) расходится и формула
// асцендента теряет смысл; широта прижимается к порогу, результат
// помечается как деградированный.
const maxSafeLatitude = 89.9

// Midheaven возвращает эклиптическую долготу MC для местного звёздного
// времени lst (часы).
func Midheaven(lst float64) float64 {
	return NormalizeDegrees(lst * 15)
}

// Ascendant возвращает эклиптическую долготу асцендента [0,360) для
// местного звёздного времени lst (часы), географической широты latitude
// и наклона эклиптики obliquity (градусы).
//
// Квадрант выбирается через atan2(cos RAMC, -(sin RAMC·cos ε + tan φ·sin ε)):
// эта конвенция сверена с контрольной картой 2002-10-03 11:00 (Париж),
// асцендент Скорпион 12°50' (~222.83°). Зеркальная atan2(-cos, ...) даёт
// противоположную полуокружность и не используется.
//
// Вторым значением возвращается ErrNumericDomain, если широту пришлось
// прижать к ±89.9°; долгота при этом всё равно считается по прижатому
// значению, падать нельзя.
func Ascendant(lst, latitude, obliquity float64) (float64, error) {
	var err error
	if latitude > maxSafeLatitude {
		latitude = maxSafeLatitude
		err = domain.ErrNumericDomain
	} else if latitude < -maxSafeLatitude {
		latitude = -maxSafeLatitude
		err = domain.ErrNumericDomain
	}

	ramc := degToRad(lst * 15)
	latRad := degToRad(latitude)
	oblRad := degToRad(obliquity)

	num := math.Cos(ramc)
	den := -(math.Sin(ramc)*math.Cos(oblRad) + math.Tan(latRad)*math.Sin(oblRad))

	asc := radToDeg(math.Atan2(num, den))

	return NormalizeDegrees(asc), err
}
