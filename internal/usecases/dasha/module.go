package dasha

import (
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/ephemeris"
)

// Service построение 120-летней Вимшоттари-даши от натальной Луны.
// Провайдер эфемерид нужен только для долготы Луны на момент рождения,
// дальше таймлайн раскладывается арифметически.
type Service struct {
	Provider ephemeris.IProvider
}

// New создаёт расчётчик даш поверх провайдера эфемерид
func New(provider ephemeris.IProvider) *Service {
	return &Service{Provider: provider}
}
