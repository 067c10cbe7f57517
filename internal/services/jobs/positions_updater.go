package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	jyotishUsecase "github.com/admin/tg-bots/jyotish-engine/internal/usecases/jyotish"
)

const name = "positions-updater"

// runHour локальный час запуска: до восхода, чтобы панчанга дня уже
// лежала в кеше к первым утренним запросам
const runHour = 5

// PositionsUpdater джоба ежедневного прогрева кеша: текущие позиции
// планет и панчанга дня для опорной точки
type PositionsUpdater struct {
	engine   *jyotishUsecase.Service
	log      *slog.Logger
	location *time.Location
}

// NewPositionsUpdater создаёт новую джобу прогрева кеша
func NewPositionsUpdater(engine *jyotishUsecase.Service, log *slog.Logger) *PositionsUpdater {
	location, _ := time.LoadLocation("Asia/Kolkata")
	if location == nil {
		location = time.UTC
	}

	return &PositionsUpdater{
		engine:   engine,
		log:      log,
		location: location,
	}
}

func (j *PositionsUpdater) Name() string {
	return name
}

// NextRun вычисляет следующее время запуска
func (j *PositionsUpdater) NextRun(now time.Time) time.Time {
	nowLocal := now.In(j.location)

	next := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), runHour, 0, 0, 0, j.location)
	if next.Before(nowLocal) || next.Equal(nowLocal) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Run обновляет оба тёплых ключа; ошибка любого из них ретраится целиком
func (j *PositionsUpdater) Run(ctx context.Context) error {
	now := time.Now().In(j.location)

	if err := j.engine.UpdateCachedPositions(ctx, now); err != nil {
		return fmt.Errorf("failed to update cached positions: %w", err)
	}

	if err := j.engine.UpdateCachedPanchang(ctx, now); err != nil {
		return fmt.Errorf("failed to update cached panchang: %w", err)
	}

	return nil
}
