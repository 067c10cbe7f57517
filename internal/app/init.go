package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/admin/tg-bots/jyotish-engine/internal/adapters/primary/http"
	adminController "github.com/admin/tg-bots/jyotish-engine/internal/adapters/primary/http/controllers/admin"
	engineController "github.com/admin/tg-bots/jyotish-engine/internal/adapters/primary/http/controllers/engine"
	healthcheckController "github.com/admin/tg-bots/jyotish-engine/internal/adapters/primary/http/controllers/healthcheck"
	kafkaConsumerAdapter "github.com/admin/tg-bots/jyotish-engine/internal/adapters/primary/kafka"
	kafkaHandlers "github.com/admin/tg-bots/jyotish-engine/internal/adapters/primary/kafka/handlers"
	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/ephem"
	kafkaAdapter "github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/kafka"
	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/storage/s3"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/cache"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/ephemeris"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/kafka"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/repository"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/storage"
	chartRepo "github.com/admin/tg-bots/jyotish-engine/internal/repository/chart"
	jobScheduler "github.com/admin/tg-bots/jyotish-engine/internal/services/jobs"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/chart"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/dasha"
	jyotishUsecase "github.com/admin/tg-bots/jyotish-engine/internal/usecases/jyotish"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/rules"
	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	DB             *sqlx.DB
	HTTPServer     *http.Server
	Engine         *jyotishUsecase.Service
	Cache          cache.Cache
	KafkaProducers map[string]*kafkaAdapter.Producer
	KafkaConsumers map[string]*kafkaConsumerAdapter.Consumer
	JobScheduler   *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	repo := chartRepo.New(pg.NewDB(db), a.Log)
	cacheClient := a.initCache()
	s3Client := a.initS3()

	provider, err := a.initEphemeris(ctx, s3Client)
	if err != nil {
		return nil, fmt.Errorf("failed to init ephemeris: %w", err)
	}

	engine := jyotishUsecase.New(
		chart.New(provider),
		dasha.New(provider),
		rules.New(provider),
		repo,
		cacheClient, // может быть nil
		a.Log,
	)

	kafkaProducers, kafkaConsumers := a.initKafka(engine)
	httpServer := a.initHTTP(db, engine, repo)
	scheduler := a.initJobScheduler(engine, cacheClient)

	return &Dependencies{
		DB:             db,
		HTTPServer:     httpServer,
		Engine:         engine,
		Cache:          cacheClient,
		KafkaProducers: kafkaProducers,
		KafkaConsumers: kafkaConsumers,
		JobScheduler:   scheduler,
	}, nil
}

// initPostgres инициализирует подключение к PostgreSQL и запускает миграции
func (a *App) initPostgres() (*sqlx.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(db, a.Log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// initCache инициализирует кэш: Redis, если включён, иначе процессный
// in-memory (тёплые ключи и кэш карт живут до рестарта)
func (a *App) initCache() cache.Cache {
	if a.Cfg.Redis == nil || !a.Cfg.Redis.Enabled {
		a.Log.Info("redis cache disabled, using in-process cache")
		return inmemory.NewCache()
	}

	redisClient, err := a.Cfg.Redis.NewConnection()
	if err != nil {
		a.Log.Warn("failed to init redis cache, falling back to in-process cache", "error", err)
		return inmemory.NewCache()
	}

	a.Log.Info("redis cache connected successfully")
	return redisAdapter.NewClient(redisClient)
}

// initS3 инициализирует S3-клиент для доставки файлов эфемерид;
// подсистема опциональна
func (a *App) initS3() storage.IS3Client {
	if a.Cfg.S3 == nil || !a.Cfg.S3.Enabled {
		return nil
	}

	minioClient, err := a.Cfg.S3.NewClient()
	if err != nil {
		a.Log.Warn("failed to init s3 client, continuing without ephemeris hydration", "error", err)
		return nil
	}

	a.Log.Info("s3 connected successfully", "bucket", a.Cfg.S3.Bucket)
	return s3Adapter.NewClient(minioClient, a.Cfg.S3.Bucket, a.Log)
}

// initEphemeris докачивает файлы VSOP87 из S3 (если он настроен) и
// выбирает провайдера эфемерид
func (a *App) initEphemeris(ctx context.Context, s3Client storage.IS3Client) (ephemeris.IProvider, error) {
	cfg := a.Cfg.Ephemeris
	if cfg == nil {
		cfg = &ephem.Config{}
	}

	if s3Client != nil {
		if err := ephem.HydrateData(ctx, s3Client, cfg, a.Log); err != nil {
			a.Log.Warn("failed to hydrate vsop87 data", "error", err)
		}
	}

	return ephem.New(cfg, a.Log)
}

// initKafka инициализирует Kafka producers и consumers.
// Producer без consumer group пишет в топик ответов; consumer с
// consumer group читает запросы и требует producer ответов
func (a *App) initKafka(engine *jyotishUsecase.Service) (
	producers map[string]*kafkaAdapter.Producer,
	consumers map[string]*kafkaConsumerAdapter.Consumer,
) {
	producers = make(map[string]*kafkaAdapter.Producer)
	consumers = make(map[string]*kafkaConsumerAdapter.Consumer)

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

	for _, kafkaCfg := range a.Cfg.Kafka.List {
		// Consumer: есть consumer group
		if kafkaCfg.Config.ConsumerGroup == "" {
			continue
		}

		handler := a.createHandlerForTopic(kafkaCfg.Name, engine, producers)
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

	return producers, consumers
}

// createHandlerForTopic создаёт handler для указанного топика Kafka
func (a *App) createHandlerForTopic(
	topicName string,
	engine *jyotishUsecase.Service,
	producers map[string]*kafkaAdapter.Producer,
) kafka.MessageHandler {
	switch topicName {
	case "chart_requests":
		responses, ok := producers["chart_responses"]
		if !ok {
			a.Log.Warn("chart_requests consumer needs a chart_responses producer")
			return nil
		}
		return kafkaHandlers.NewChartRequestHandler(engine, responses, a.Log)
	default:
		a.Log.Warn("unknown kafka topic, no handler", "topic", topicName)
		return nil
	}
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(
	db *sqlx.DB,
	engine *jyotishUsecase.Service,
	repo repository.IChartRepo,
) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(db, a.Log),
		engineController.New(engine, a.Log),
		adminController.New(engine, repo, a.Log),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initJobScheduler инициализирует планировщик джоб; джоба прогрева
// кеша регистрируется только при включённом кэше
func (a *App) initJobScheduler(
	engine *jyotishUsecase.Service,
	cacheClient cache.Cache,
) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log)

	if cacheClient != nil {
		positionsUpdater := jobScheduler.NewPositionsUpdater(engine, a.Log)
		scheduler.Register(positionsUpdater)
		a.Log.Info("positions updater job registered")
	}

	return scheduler
}
