package chartController

// ComputeChartReq запрос на расчёт карты
type ComputeChartReq struct {
	PlaceName string `json:"place_name"`
	BirthDate string `json:"birth_date" binding:"required"` // "2006-01-02"
	BirthTime string `json:"birth_time"`                    // "15:04", допускается мусор
}
