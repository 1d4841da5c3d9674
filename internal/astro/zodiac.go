package astro

import (
	"math"

	"github.com/admin/astro-services/chart-engine/internal/domain"
)

// signNames двенадцать знаков зодиака, 0 = Овен (0°-30°)
var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignOf возвращает знак зодиака для эклиптической долготы.
// Долгота предварительно нормализуется, отрицательные и >360 значения допустимы.
func SignOf(longitude float64) string {
	normalized := NormalizeDegrees(longitude)
	idx := int(normalized / 30)
	if idx > 11 {
		// возможно только при normalized == 360 из-за плавающей точки
		idx = 0
	}
	return signNames[idx]
}

// DegreesInSign возвращает целые градусы [0,30) и минуты [0,60) внутри знака.
// Минуты округляются; перенос при 60 минутах поднимает градус,
// перенос при 30 градусах уводит в следующий знак (что учитывает Placement).
func DegreesInSign(longitude float64) (degrees, minutes int) {
	normalized := NormalizeDegrees(longitude)
	inSign := math.Mod(normalized, 30)

	degrees = int(inSign)
	minutes = int(math.Round((inSign - float64(degrees)) * 60))

	if minutes == 60 {
		minutes = 0
		degrees++
	}
	if degrees == 30 {
		degrees = 0
	}
	return degrees, minutes
}

// Placement собирает ZodiacPlacement для долготы. Перенос минут на границе
// знака (29°59.5'+) корректно перекатывается в нулевой градус следующего знака.
func Placement(longitude float64) domain.ZodiacPlacement {
	normalized := NormalizeDegrees(longitude)

	inSign := math.Mod(normalized, 30)
	degrees := int(inSign)
	minutes := int(math.Round((inSign - float64(degrees)) * 60))

	signIdx := int(normalized / 30)
	if signIdx > 11 {
		signIdx = 0
	}

	if minutes == 60 {
		minutes = 0
		degrees++
	}
	if degrees == 30 {
		degrees = 0
		signIdx = (signIdx + 1) % 12
	}

	return domain.ZodiacPlacement{
		Sign:          signNames[signIdx],
		DegreesInSign: degrees,
		MinutesInSign: minutes,
	}
}
