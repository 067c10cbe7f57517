package ephem

import (
	"log/slog"

	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/ephem/analytic"
	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/ephem/vsop87"
	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/ephemeris"
)

var supportedImplementations = []string{"auto", "vsop87", "analytic"}

// New выбирает и инициализирует провайдера эфемерид. Недоступность
// данных VSOP87 — это явная проверка с результатом, а не пойманная
// ошибка времени выполнения: в режиме auto она даёт осознанный откат к
// аналитике (все карты получают пометку reduced_precision), в строгом
// режиме vsop87 — отказ старта.
func New(cfg *Config, log *slog.Logger) (ephemeris.IProvider, error) {
	switch cfg.Implementation {
	case "", "auto":
		if err := vsop87.CheckData(cfg.DataDir); err != nil {
			log.Warn("vsop87 data unavailable, using analytic ephemeris",
				"error", err,
				"data_dir", cfg.DataDir,
			)
			return analytic.New(), nil
		}
		return vsop87.New(cfg.DataDir)
	case "vsop87":
		return vsop87.New(cfg.DataDir)
	case "analytic":
		return analytic.New(), nil
	default:
		return nil, domain.NewUnsupportedConfigurationError(
			"ephemeris.implementation", cfg.Implementation, supportedImplementations)
	}
}
