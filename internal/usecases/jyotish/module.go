// Пакет jyotish собирает чистые расчётные юзкейсы в фасад движка.
// Кэш Redis, лог карт в Postgres и прогрев ежедневных ключей живут
// здесь; сама математика — в пакетах chart, dasha, rules и match.
package jyotish

import (
	"log/slog"

	"github.com/admin/tg-bots/jyotish-engine/internal/ports/cache"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/repository"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/chart"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/dasha"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/rules"
)

// Service фасад движка для HTTP-контроллеров и Kafka-обработчиков;
// реализует service.IEngineService
type Service struct {
	Charts    *chart.Service
	Dashas    *dasha.Service
	Rules     *rules.Service
	ChartRepo repository.IChartRepo
	Cache     cache.Cache
	Log       *slog.Logger
}

// New создаёт фасад движка; chartRepo и cacheClient могут быть nil,
// тогда соответствующий слой жизненного цикла карты пропускается
func New(
	charts *chart.Service,
	dashas *dasha.Service,
	rulesService *rules.Service,
	chartRepo repository.IChartRepo,
	cacheClient cache.Cache,
	log *slog.Logger,
) *Service {
	return &Service{
		Charts:    charts,
		Dashas:    dashas,
		Rules:     rulesService,
		ChartRepo: chartRepo,
		Cache:     cacheClient,
		Log:       log,
	}
}
