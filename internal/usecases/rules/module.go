package rules

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/ephemeris"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/chart"
)

// Rule одно правило анализа карты. Реестр закрыт: набор правил
// собирается на старте процесса и в рантайме не меняется.
type Rule interface {
	ID() string
	// NeedsHouses true для правил, которым нужны Лагна и дома; при
	// неизвестном времени рождения такие правила пропускаются
	NeedsHouses() bool
	Evaluate(c *domain.ChartData, asOf *time.Time) (*domain.RuleFinding, error)
}

// transitSignFunc сидерический знак транзитной грахи на момент времени
type transitSignFunc func(p domain.Planet, at time.Time, model domain.Ayanamsa) (domain.Sign, error)

// Service прогон реестра правил по готовой карте. Провайдер эфемерид
// нужен только правилам с транзитным входом (Саде Сати).
type Service struct {
	Provider ephemeris.IProvider

	registry []Rule
}

// New собирает сервис с полным реестром йог и дош
func New(provider ephemeris.IProvider) *Service {
	s := &Service{Provider: provider}
	s.registry = append(yogaRules(), doshaRules(s.transitSign)...)
	return s
}

// Rules копия реестра в порядке оценки
func (s *Service) Rules() []Rule {
	out := make([]Rule, len(s.registry))
	copy(out, s.registry)
	return out
}

func (s *Service) transitSign(p domain.Planet, at time.Time, model domain.Ayanamsa) (domain.Sign, error) {
	instant := at.UTC()
	pos, err := s.Provider.Position(p, instant)
	if err != nil {
		return 0, fmt.Errorf("failed to compute transit position of %s: %w", p, err)
	}
	ayanamsa, err := chart.AyanamsaValueJD(model, julian.TimeToJD(instant))
	if err != nil {
		return 0, err
	}
	return domain.SignFromLongitude(chart.Sidereal(pos.TropicalLongitude, ayanamsa)), nil
}
