package ephemerisApi

// EphemerisResponse ответ эфемеридного API.
// Формат отличается от вычислительного микросервиса: плоский список строк,
// нормализация на общую схему делается в сервисе позиций.
type EphemerisResponse struct {
	Rows    []EphemerisRow `json:"rows"`
	Error   string         `json:"error,omitempty"`
	RawJSON string         `json:"-"`
}

// EphemerisRow одна строка эфемериды
type EphemerisRow struct {
	Target    string  `json:"target"`
	EclLon    float64 `json:"ecl_lon"`
	EclLat    float64 `json:"ecl_lat"`
	DeltaAU   float64 `json:"delta_au"`
	VisualMag float64 `json:"visual_mag"`
	EpochISO  string  `json:"epoch"`
}
