package ephemerisApi

// Config конфигурация внешнего эфемеридного API (второй уровень цепочки).
// Источник чувствителен к частоте запросов: запросы по планетам
// сериализуются с паузой RequestDelayMillis.
type Config struct {
	BaseURL            string `envconfig:"BASE_URL"`
	ApiKey             string `envconfig:"API_KEY"`
	RequestDelayMillis int    `envconfig:"REQUEST_DELAY" default:"1000"` // пауза между планетами, мс
}
