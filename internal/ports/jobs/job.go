package jobs

import (
	"context"
	"time"
)

// Job периодическая задача обслуживания кэша и данных движка
type Job interface {
	// Name имя джобы для логов и алертов
	Name() string
	// NextRun ближайший момент запуска после now
	NextRun(now time.Time) time.Time
	// Run одно выполнение; ошибка ретраится планировщиком
	Run(ctx context.Context) error
}
