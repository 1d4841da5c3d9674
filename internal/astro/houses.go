package astro

import "github.com/admin/astro-services/chart-engine/internal/domain"

// houseSystemName исторически система называется Placidus, хотя куспиды
// считаются равнодомной аппроксимацией от асцендента. Метка сохранена
// ради совместимости с уже сохранёнными картами.
const houseSystemName = "Placidus"

// BuildHouseSystem строит полный набор из 12 куспидов.
// Куспид 1 дома — асцендент, куспид 10 дома — MC, остальные десять
// раскладываются с фиксированным шагом 30° от асцендента.
func BuildHouseSystem(ascendant, mc float64) domain.HouseSystem {
	hs := domain.HouseSystem{
		SystemName: houseSystemName,
		Ascendant:  NormalizeDegrees(ascendant),
		MC:         NormalizeDegrees(mc),
	}

	for i := 0; i < 12; i++ {
		house := i + 1
		var lon float64
		switch house {
		case 1:
			lon = hs.Ascendant
		case 10:
			lon = hs.MC
		default:
			lon = NormalizeDegrees(hs.Ascendant + float64(i)*30)
		}
		hs.Cusps[i] = domain.HouseCusp{House: house, Longitude: lon}
	}

	hs.AscPlace = Placement(hs.Ascendant)
	hs.MCPlace = Placement(hs.MC)

	return hs
}

// HouseOf возвращает номер дома для эклиптической долготы.
// Дом i — полуинтервал [cusp_i, cusp_{i+1}) на окружности; если следующий
// куспид численно меньше текущего, он продлевается на 360.
// Если ни один интервал не подошёл (вырожденная система), возвращается 1 —
// определённый запасной ответ вместо паники.
func HouseOf(longitude float64, hs domain.HouseSystem) int {
	lon := NormalizeDegrees(longitude)

	for i := 0; i < 12; i++ {
		start := hs.Cusps[i].Longitude
		end := hs.Cusps[(i+1)%12].Longitude

		if end <= start {
			end += 360
		}

		if lon >= start && lon < end {
			return hs.Cusps[i].House
		}
		// тот же интервал, но с точкой, перешедшей через 0°
		if lon+360 >= start && lon+360 < end {
			return hs.Cusps[i].House
		}
	}

	return 1
}
