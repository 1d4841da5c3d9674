package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/admin/astro-services/chart-engine/internal/adapters/primary/http"
	chartController "github.com/admin/astro-services/chart-engine/internal/adapters/primary/http/controllers/chart"
	healthcheckController "github.com/admin/astro-services/chart-engine/internal/adapters/primary/http/controllers/healthcheck"
	kafkaConsumerAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/primary/kafka"
	kafkaHandlers "github.com/admin/astro-services/chart-engine/internal/adapters/primary/kafka/handlers"
	alerterAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/alerter"
	ephemerisApiAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/ephemerisApi"
	kafkaAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/kafka"
	positionsApiAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/positionsApi"
	"github.com/admin/astro-services/chart-engine/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/astro-services/chart-engine/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/astro-services/chart-engine/internal/adapters/secondary/storage/s3"
	"github.com/admin/astro-services/chart-engine/internal/ports/cache"
	"github.com/admin/astro-services/chart-engine/internal/ports/kafka"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
	"github.com/admin/astro-services/chart-engine/internal/ports/storage"
	gazetteerRepo "github.com/admin/astro-services/chart-engine/internal/repository/gazetteer"
	alerterService "github.com/admin/astro-services/chart-engine/internal/services/alerter"
	"github.com/admin/astro-services/chart-engine/internal/services/civiltime"
	jobScheduler "github.com/admin/astro-services/chart-engine/internal/services/jobs"
	"github.com/admin/astro-services/chart-engine/internal/services/places"
	"github.com/admin/astro-services/chart-engine/internal/services/positions"
	chartUsecase "github.com/admin/astro-services/chart-engine/internal/usecases/chart"
	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	DB             *sqlx.DB
	HTTPServer     *http.Server
	ChartService   *chartUsecase.Service
	KafkaProducers map[string]*kafkaAdapter.Producer
	KafkaConsumers map[string]*kafkaConsumerAdapter.Consumer
	Cache          cache.Cache
	JobScheduler   *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	externalServices := a.initExternalServices()

	placeResolver := a.initPlaceResolver(ctx, db, externalServices.S3)
	timeConverter := civiltime.New(a.Cfg.CivilTime, a.Log)
	positionsService := a.initPositions()

	kafkaProducers, err := a.initKafkaProducers()
	if err != nil {
		return nil, fmt.Errorf("failed to init kafka producers: %w", err)
	}

	chartService := a.initUseCases(placeResolver, timeConverter, positionsService, externalServices.Cache, kafkaProducers)

	kafkaConsumers, err := a.initKafkaConsumers(chartService)
	if err != nil {
		return nil, fmt.Errorf("failed to init kafka consumers: %w", err)
	}

	httpServer := a.initHTTP(db, chartService)
	scheduler := a.initJobScheduler(externalServices.Alerter, positionsService, placeResolver, externalServices.Cache)

	return &Dependencies{
		DB:             db,
		HTTPServer:     httpServer,
		ChartService:   chartService,
		KafkaProducers: kafkaProducers,
		KafkaConsumers: kafkaConsumers,
		Cache:          externalServices.Cache,
		JobScheduler:   scheduler,
	}, nil
}

// externalServices содержит внешние сервисы (опциональные)
type externalServices struct {
	Alerter service.IAlerterService
	Cache   cache.Cache
	S3      storage.IS3Client
}

// initExternalServices инициализирует внешние сервисы (Alerter, Cache, S3)
func (a *App) initExternalServices() *externalServices {
	services := &externalServices{}

	// Alerter - опциональный
	if a.Cfg.Alerter != nil {
		alerterClient := alerterAdapter.NewClient(a.Cfg.Alerter, a.Log)
		services.Alerter = alerterService.New(alerterClient)
	}

	// Redis Cache - опциональный, без Redis мемоизация живёт в памяти процесса
	if a.Cfg.Redis != nil {
		redisClient, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			a.Log.Warn("failed to init redis cache, falling back to in-memory cache", "error", err)
			services.Cache = inmemory.NewCache()
		} else {
			services.Cache = redisAdapter.NewClient(redisClient)
			a.Log.Info("redis cache connected successfully")
		}
	} else {
		services.Cache = inmemory.NewCache()
		a.Log.Info("redis is not configured, using in-memory cache")
	}

	// S3 - опциональный, нужен только для расширенного газетира
	if a.Cfg.S3 != nil {
		minioClient, err := a.Cfg.S3.NewClient()
		if err != nil {
			a.Log.Warn("failed to init s3 client, continuing without extended gazetteer", "error", err)
		} else {
			services.S3 = s3Adapter.NewClient(minioClient, a.Cfg.S3.Bucket, a.Log)
			a.Log.Info("s3 client connected successfully")
		}
	}

	return services
}

// initPlaceResolver загружает газетир и создаёт резолвер мест
func (a *App) initPlaceResolver(ctx context.Context, db *sqlx.DB, s3 storage.IS3Client) service.IPlaceResolver {
	repo := gazetteerRepo.New(pg.NewDB(db), a.Log)
	gazetteer := places.LoadGazetteer(ctx, repo, s3, a.Cfg.Gazetteer.DatasetPath, a.Log)

	a.Log.Info("gazetteer ready", "places", len(gazetteer))
	return places.New(gazetteer, a.Log)
}

// initPositions собирает цепочку источников позиций в порядке фоллбэков
func (a *App) initPositions() service.IPositionsService {
	providers := make([]service.IPositionProvider, 0, 3)

	if a.Cfg.PositionsAPI != nil && a.Cfg.PositionsAPI.BaseURL != "" {
		client := positionsApiAdapter.NewClient(a.Cfg.PositionsAPI, a.Log)
		providers = append(providers, positions.NewPrimaryProvider(client))
	} else {
		a.Log.Warn("positions API is not configured, primary tier disabled")
	}

	if a.Cfg.EphemerisAPI != nil && a.Cfg.EphemerisAPI.BaseURL != "" {
		client := ephemerisApiAdapter.NewClient(a.Cfg.EphemerisAPI, a.Log)
		providers = append(providers, positions.NewSecondaryProvider(client))
	} else {
		a.Log.Warn("ephemeris API is not configured, secondary tier disabled")
	}

	// офлайн-уровень есть всегда
	providers = append(providers, positions.NewStaticProvider())

	return positions.New(a.Cfg.Positions, providers, a.Log)
}

// initKafkaProducers инициализирует Kafka producers
func (a *App) initKafkaProducers() (map[string]*kafkaAdapter.Producer, error) {
	producers := make(map[string]*kafkaAdapter.Producer)

	for _, kafkaCfg := range a.Cfg.Kafka.List {
		// Producer: есть topic, но нет consumer group
		if kafkaCfg.Config.Topic != "" && kafkaCfg.Config.ConsumerGroup == "" {
			prod, err := kafkaAdapter.NewProducer(kafkaCfg.Config, a.Log)
			if err != nil {
				a.Log.Warn("failed to create kafka producer", "error", err, "name", kafkaCfg.Name)
				continue
			}
			producers[kafkaCfg.Name] = prod
		}
	}

	return producers, nil
}

// initKafkaConsumers инициализирует Kafka consumers
func (a *App) initKafkaConsumers(chartService *chartUsecase.Service) (map[string]*kafkaConsumerAdapter.Consumer, error) {
	consumers := make(map[string]*kafkaConsumerAdapter.Consumer)

	for _, kafkaCfg := range a.Cfg.Kafka.List {
		if kafkaCfg.Config.ConsumerGroup == "" {
			continue
		}

		handler := a.createHandlerForTopic(kafkaCfg.Name, chartService)
		if handler == nil {
			a.Log.Warn("no handler for kafka topic, skipping consumer", "name", kafkaCfg.Name)
			continue
		}

		consumer, err := kafkaConsumerAdapter.NewConsumer(kafkaCfg.Config, handler, a.Log)
		if err != nil {
			a.Log.Warn("failed to create kafka consumer", "error", err, "name", kafkaCfg.Name)
			continue
		}
		consumers[kafkaCfg.Name] = consumer
	}

	return consumers, nil
}

// createHandlerForTopic создаёт handler для указанного топика Kafka
func (a *App) createHandlerForTopic(topicName string, chartService *chartUsecase.Service) kafka.MessageHandler {
	switch topicName {
	case "chart_requests":
		return kafkaHandlers.NewChartRequestHandler(chartService, a.Log)
	default:
		a.Log.Warn("unknown kafka topic, using default handler", "topic", topicName)
		return nil
	}
}

// initUseCases инициализирует UseCases приложения
func (a *App) initUseCases(
	placeResolver service.IPlaceResolver,
	timeConverter service.ICivilTimeConverter,
	positionsService service.IPositionsService,
	cacheClient cache.Cache,
	kafkaProducers map[string]*kafkaAdapter.Producer,
) *chartUsecase.Service {
	var anglesProducer kafka.IKafkaProducer
	if prod, ok := kafkaProducers["chart_angles"]; ok {
		anglesProducer = prod
	}

	return chartUsecase.New(
		placeResolver,
		timeConverter,
		positionsService,
		cacheClient,    // может быть nil
		anglesProducer, // может быть nil
		a.Log,
	)
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(db *sqlx.DB, chartService *chartUsecase.Service) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(db, a.Log),
		chartController.New(chartService, a.Log),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initJobScheduler инициализирует планировщик джоб
func (a *App) initJobScheduler(
	alerterSvc service.IAlerterService,
	positionsService service.IPositionsService,
	placeResolver service.IPlaceResolver,
	cacheClient cache.Cache,
) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log, alerterSvc)

	// Регистрируем джобу прогрева позиций (если кеш включен)
	if cacheClient != nil {
		warmup := jobScheduler.NewPositionsWarmup(positionsService, placeResolver, cacheClient, a.Log)
		scheduler.Register(warmup)
		a.Log.Info("positions warmup job registered")
	}

	return scheduler
}
