package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Planet идентификатор небесного тела в карте
type Planet string

const (
	PlanetSun     Planet = "Sun"
	PlanetMoon    Planet = "Moon"
	PlanetMercury Planet = "Mercury"
	PlanetVenus   Planet = "Venus"
	PlanetMars    Planet = "Mars"
	PlanetJupiter Planet = "Jupiter"
	PlanetSaturn  Planet = "Saturn"
	PlanetUranus  Planet = "Uranus"
	PlanetNeptune Planet = "Neptune"
	PlanetPluto   Planet = "Pluto"
)

// Planets полный набор тел, для которых считается карта.
// Порядок фиксированный: источники опрашиваются именно в этой последовательности.
var Planets = []Planet{
	PlanetSun, PlanetMoon, PlanetMercury, PlanetVenus, PlanetMars,
	PlanetJupiter, PlanetSaturn, PlanetUranus, PlanetNeptune, PlanetPluto,
}

// GeoPlace запись газетира: место рождения с координатами и таймзоной.
// Загружается один раз при старте процесса и больше не изменяется.
type GeoPlace struct {
	Name       string  `json:"name" db:"name"`
	Longitude  float64 `json:"longitude" db:"longitude"`   // градусы, восток положительный [-180,180]
	Latitude   float64 `json:"latitude" db:"latitude"`     // градусы [-90,90]
	AltitudeKm float64 `json:"altitude_km" db:"altitude_km"`
	TimezoneID string  `json:"timezone_id" db:"timezone_id"` // IANA, например "Europe/Paris"
	Country    string  `json:"country" db:"country"`
}

// CivilBirthMoment входные данные запроса: локальные дата/время и место рождения
type CivilBirthMoment struct {
	LocalDate string   `json:"local_date"` // "2006-01-02"
	LocalTime string   `json:"local_time"` // "15:04" или "15:04:05", допускается мусор
	Place     GeoPlace `json:"place"`
}

// UtcInstant момент времени в UTC, всегда 24-часовой.
// Единственная форма времени, которую потребляют вычислительные компоненты:
// вся логика таймзон остаётся в конвертере.
type UtcInstant struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// DateString возвращает дату в формате "2006-01-02"
func (u UtcInstant) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", u.Year, u.Month, u.Day)
}

// TimeString возвращает время в формате "15:04:05"
func (u UtcInstant) TimeString() string {
	return fmt.Sprintf("%02d:%02d:%02d", u.Hour, u.Minute, u.Second)
}

func (u UtcInstant) String() string {
	return u.DateString() + " " + u.TimeString()
}

// Before сравнивает два момента
func (u UtcInstant) Before(other UtcInstant) bool {
	a := [6]int{u.Year, u.Month, u.Day, u.Hour, u.Minute, u.Second}
	b := [6]int{other.Year, other.Month, other.Day, other.Hour, other.Minute, other.Second}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// ZodiacPlacement положение в знаке: знак плюс градусы/минуты внутри знака.
// Всегда вычисляется заново из эклиптической долготы, никогда не кэшируется отдельно.
type ZodiacPlacement struct {
	Sign          string `json:"sign"`
	DegreesInSign int    `json:"degrees_in_sign"` // [0,30)
	MinutesInSign int    `json:"minutes_in_sign"` // [0,60)
}

// HouseCusp куспид одного дома
type HouseCusp struct {
	House     int     `json:"house"`     // 1..12
	Longitude float64 `json:"longitude"` // эклиптическая долгота [0,360)
}

// HouseSystem полный набор из 12 куспидов. Создаётся атомарно на карту,
// частично заполненного состояния не бывает.
type HouseSystem struct {
	SystemName string          `json:"system_name"`
	Ascendant  float64         `json:"ascendant"`
	MC         float64         `json:"mc"`
	Cusps      [12]HouseCusp   `json:"cusps"`
	AscPlace   ZodiacPlacement `json:"ascendant_placement"`
	MCPlace    ZodiacPlacement `json:"mc_placement"`
}

// PlanetaryPosition позиция одной планеты от одного источника.
// Недоступность источника выражается явно через Available=false,
// а не нулевой долготой, которую можно спутать с 0° Овна.
type PlanetaryPosition struct {
	Planet          Planet    `json:"planet"`
	Longitude       float64   `json:"longitude"` // эклиптическая долгота [0,360)
	Latitude        float64   `json:"latitude"`  // эклиптическая широта, градусы
	DistanceAU      float64   `json:"distance_au"`
	Magnitude       float64   `json:"magnitude"`
	SourceTimestamp time.Time `json:"source_timestamp"`
	Available       bool      `json:"available"`
}

// PlacedPlanet позиция планеты вместе со знаком и домом
type PlacedPlanet struct {
	Position  PlanetaryPosition `json:"position"`
	Placement ZodiacPlacement   `json:"placement"`
	House     int               `json:"house"`
}

// SourceTier уровень источника позиций, с которого получены данные
type SourceTier string

const (
	TierPrimary   SourceTier = "primary"   // вычислительный микросервис
	TierSecondary SourceTier = "secondary" // внешний эфемеридный API
	TierStatic    SourceTier = "static"    // офлайн-аппроксимация
	TierMock      SourceTier = "mock"      // все источники исчерпаны
)

// Diagnostics машиночитаемые флаги деградации, протаскиваются до потребителя.
// Движок никогда не роняет запрос из-за плохих входных данных —
// он деградирует и помечает результат.
type Diagnostics struct {
	PlaceFallback    bool `json:"place_fallback"`     // место не найдено, подставлен дефолт
	TimeCoerced      bool `json:"time_coerced"`       // время рождения приведено к 12:00
	NaiveUTCFallback bool `json:"naive_utc_fallback"` // конвертация таймзоны упала, локальное время принято за UTC
	DegradedAngles   bool `json:"degraded_angles"`    // числовая проблема (широта у полюса), подставлен сентинел
	MockData         bool `json:"mock_data"`          // позиции планет полностью синтетические
}

// Degraded признак того, что хоть одна ветка вычисления сработала по запасному пути
func (d Diagnostics) Degraded() bool {
	return d.PlaceFallback || d.TimeCoerced || d.NaiveUTCFallback || d.DegradedAngles || d.MockData
}

// ChartAngles итоговый результат движка: дома плюс размещённые планеты.
// Потребители (рендеринг, персистентность) обращаются с ним как с read-only.
type ChartAngles struct {
	RequestID   uuid.UUID               `json:"request_id"`
	Utc         UtcInstant              `json:"utc"`
	JulianDay   float64                 `json:"julian_day"`
	GST         float64                 `json:"gst_hours"` // [0,24)
	LST         float64                 `json:"lst_hours"` // [0,24)
	Place       GeoPlace                `json:"place"`
	Houses      HouseSystem             `json:"houses"`
	Planets     map[Planet]PlacedPlanet `json:"planets"`
	Source      SourceTier              `json:"source"`
	Diagnostics Diagnostics             `json:"diagnostics"`
}
