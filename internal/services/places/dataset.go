package places

import "github.com/admin/astro-services/chart-engine/internal/domain"

// embeddedGazetteer минимальный встроенный газетир на случай, когда ни БД,
// ни S3 недоступны при старте. Первая запись — дефолтное место резолвера.
var embeddedGazetteer = []domain.GeoPlace{
	{Name: "Paris, France", Longitude: 2.3522, Latitude: 48.8566, AltitudeKm: 0.035, TimezoneID: "Europe/Paris", Country: "France"},
	{Name: "London, United Kingdom", Longitude: -0.1276, Latitude: 51.5072, AltitudeKm: 0.011, TimezoneID: "Europe/London", Country: "United Kingdom"},
	{Name: "New York, United States", Longitude: -74.0060, Latitude: 40.7128, AltitudeKm: 0.010, TimezoneID: "America/New_York", Country: "United States"},
	{Name: "Moscow, Russia", Longitude: 37.6173, Latitude: 55.7558, AltitudeKm: 0.156, TimezoneID: "Europe/Moscow", Country: "Russia"},
	{Name: "Berlin, Germany", Longitude: 13.4050, Latitude: 52.5200, AltitudeKm: 0.034, TimezoneID: "Europe/Berlin", Country: "Germany"},
	{Name: "Madrid, Spain", Longitude: -3.7038, Latitude: 40.4168, AltitudeKm: 0.657, TimezoneID: "Europe/Madrid", Country: "Spain"},
	{Name: "Rome, Italy", Longitude: 12.4964, Latitude: 41.9028, AltitudeKm: 0.021, TimezoneID: "Europe/Rome", Country: "Italy"},
	{Name: "Tokyo, Japan", Longitude: 139.6917, Latitude: 35.6895, AltitudeKm: 0.040, TimezoneID: "Asia/Tokyo", Country: "Japan"},
	{Name: "Sydney, Australia", Longitude: 151.2093, Latitude: -33.8688, AltitudeKm: 0.058, TimezoneID: "Australia/Sydney", Country: "Australia"},
	{Name: "Buenos Aires, Argentina", Longitude: -58.3816, Latitude: -34.6037, AltitudeKm: 0.025, TimezoneID: "America/Argentina/Buenos_Aires", Country: "Argentina"},
}
