// Пакет match сводит совместимость двух карт рождения по восьми кутам
// (Аштакут-милан) на основе положений Луны сторон.
package match

import (
	"fmt"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/chart"
)

// Service юзкейс подбора совместимости
type Service struct {
	Charts *chart.Service
}

// New конструктор юзкейса совместимости
func New(charts *chart.Service) *Service {
	return &Service{Charts: charts}
}

// MatchCharts считает карты обеих сторон и сводит Аштакут; первый
// аргумент — рождение невесты, второй — жениха
func (s *Service) MatchCharts(bride, groom domain.BirthDetails) (*domain.CompatibilityScore, error) {
	brideChart, err := s.Charts.ComputeChart(bride)
	if err != nil {
		return nil, fmt.Errorf("failed to compute bride chart: %w", err)
	}

	groomChart, err := s.Charts.ComputeChart(groom)
	if err != nil {
		return nil, fmt.Errorf("failed to compute groom chart: %w", err)
	}

	return Score(brideChart, groomChart)
}
