package app

import (
	"fmt"

	server "github.com/admin/astro-services/chart-engine/internal/adapters/primary/http"
	alerterAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/alerter"
	ephemerisApiAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/ephemerisApi"
	kafkaAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/kafka"
	positionsApiAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/positionsApi"
	"github.com/admin/astro-services/chart-engine/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/storage/s3"
	"github.com/admin/astro-services/chart-engine/internal/pkg/logger"
	"github.com/admin/astro-services/chart-engine/internal/services/civiltime"
	"github.com/admin/astro-services/chart-engine/internal/services/positions"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres     *pg.Config                  `envconfig:"POSTGRES"`
	Log          *logger.Config              `envconfig:"LOG"`
	Server       *server.Config              `envconfig:"APISERVER"`
	Redis        *redisAdapter.Config        `envconfig:"REDIS"`
	S3           *s3Adapter.Config           `envconfig:"S3"`
	PositionsAPI *positionsApiAdapter.Config `envconfig:"POSITIONS_API"`
	EphemerisAPI *ephemerisApiAdapter.Config `envconfig:"EPHEMERIS_API"`
	CivilTime    *civiltime.Config           `envconfig:"CIVIL_TIME"`
	Positions    *positions.Config           `envconfig:"POSITIONS"`
	Gazetteer    GazetteerConfig             `envconfig:"GAZETTEER"`
	Kafka        kafkaAdapter.KafkaConfigs   `envconfig:"KAFKA"`
	Alerter      *alerterAdapter.Config      `envconfig:"ALERTER"`
}

// GazetteerConfig настройки загрузки газетира
type GazetteerConfig struct {
	DatasetPath string `envconfig:"DATASET_PATH"` // путь расширенного CSV в S3, пусто - не грузим
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	// Загружаем Kafka конфигурацию вручную
	// (envconfig не умеет автоматически определять размер слайса)
	if err := cfg.Kafka.Load(envPrefix); err != nil {
		return nil, fmt.Errorf("failed to load kafka config: %w", err)
	}

	return cfg, nil
}
