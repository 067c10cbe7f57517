package chart

import (
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/ephemeris"
)

// Service расчёт натальных карт и панчанги. Не держит состояния кроме
// провайдера эфемерид, выбранного на старте процесса; все методы
// детерминированы и безопасны для конкурентных вызовов.
type Service struct {
	Provider ephemeris.IProvider
}

// New создаёт расчётчик карт поверх провайдера эфемерид
func New(provider ephemeris.IProvider) *Service {
	return &Service{Provider: provider}
}
