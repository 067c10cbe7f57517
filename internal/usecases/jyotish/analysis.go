package jyotish

import (
	"context"
	"fmt"
	"time"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/match"
)

// ComputePanchang панчанга на дату и место; результат не персистится
func (s *Service) ComputePanchang(_ context.Context, req domain.PanchangRequest) (*domain.PanchangData, error) {
	return s.Charts.ComputePanchang(req)
}

// ComputeDasha таймлайн Вимшоттари; пересчитывается по требованию и
// не персистится
func (s *Service) ComputeDasha(_ context.Context, birth domain.BirthDetails) (*domain.DashaTimeline, error) {
	return s.Dashas.ComputeDasha(birth)
}

// EvaluateRules берёт карту через жизненный цикл ComputeChart и
// прогоняет по ней реестр правил
func (s *Service) EvaluateRules(ctx context.Context, birth domain.BirthDetails, asOf *time.Time) (*domain.RulesOutput, error) {
	chartData, err := s.ComputeChart(ctx, birth)
	if err != nil {
		return nil, err
	}

	return s.Rules.EvaluateRules(chartData, asOf)
}

// MatchCharts считает карты сторон через жизненный цикл ComputeChart
// и сводит Аштакут; первый аргумент — невеста
func (s *Service) MatchCharts(ctx context.Context, bride, groom domain.BirthDetails) (*domain.CompatibilityScore, error) {
	brideChart, err := s.ComputeChart(ctx, bride)
	if err != nil {
		return nil, fmt.Errorf("failed to compute bride chart: %w", err)
	}

	groomChart, err := s.ComputeChart(ctx, groom)
	if err != nil {
		return nil, fmt.Errorf("failed to compute groom chart: %w", err)
	}

	return match.Score(brideChart, groomChart)
}
