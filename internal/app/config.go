package app

import (
	"fmt"

	server "github.com/admin/tg-bots/jyotish-engine/internal/adapters/primary/http"
	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/ephem"
	kafkaAdapter "github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/kafka"
	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/storage/s3"
	"github.com/admin/tg-bots/jyotish-engine/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config конфигурация сервиса. Postgres обязателен (лог карт), Redis,
// S3 и Kafka включаются флагами своих секций
type Config struct {
	Postgres  *pg.Config                `envconfig:"POSTGRES"`
	Log       *logger.Config            `envconfig:"LOG"`
	Server    *server.Config            `envconfig:"APISERVER"`
	Ephemeris *ephem.Config             `envconfig:"EPHEMERIS"`
	Redis     *redisAdapter.Config      `envconfig:"REDIS"`
	S3        *s3Adapter.Config         `envconfig:"S3"`
	Kafka     kafkaAdapter.KafkaConfigs `envconfig:"KAFKA"`
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
