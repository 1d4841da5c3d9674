package positionsApi

// ComputeRequest запрос на расчёт позиции одного тела
type ComputeRequest struct {
	Body      string     `json:"body"` // "Sun", "Moon", ...
	Moment    MomentData `json:"moment"`
	Geo       GeoData    `json:"geo"`
	ZodiacTyp string     `json:"zodiac_type"` // "Tropic" для тропического
	Precision int        `json:"precision"`
}

// MomentData момент UTC в запросе
type MomentData struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second,omitempty"`
}

// GeoData координаты наблюдателя в запросе
type GeoData struct {
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
	AltitudeKm float64 `json:"altitude_km,omitempty"`
}

// ComputeResponse ответ микросервиса позиций
type ComputeResponse struct {
	Status  string        `json:"status"`
	Code    int           `json:"code,omitempty"`
	Message string        `json:"message,omitempty"`
	Data    *PositionData `json:"data,omitempty"`
	RawJSON string        `json:"-"` // Оригинальный JSON ответ для логов
}

// PositionData позиция тела в ответе
type PositionData struct {
	Body       string  `json:"body"`
	Longitude  float64 `json:"longitude"` // эклиптическая долгота, градусы
	Latitude   float64 `json:"latitude"`  // эклиптическая широта, градусы
	DistanceAU float64 `json:"distance_au"`
	Magnitude  float64 `json:"magnitude"`
	Timestamp  string  `json:"timestamp,omitempty"`
}
