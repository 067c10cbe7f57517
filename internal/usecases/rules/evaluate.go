package rules

import (
	"errors"
	"fmt"
	"time"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

// errNeedsAsOf правило требует явной даты транзита
var errNeedsAsOf = errors.New("rule requires an explicit as-of date")

// EvaluateRules прогоняет карту через весь реестр. Возвращаются все
// совпавшие правила без ранжирования. Правила, которым нужны дома, при
// неизвестном времени рождения не оцениваются и попадают в Skipped;
// то же происходит с транзитными правилами без asOf.
func (s *Service) EvaluateRules(c *domain.ChartData, asOf *time.Time) (*domain.RulesOutput, error) {
	if c == nil || len(c.Planets) == 0 {
		return nil, domain.NewValidationError("chart", "computed chart with planet positions is required")
	}

	out := &domain.RulesOutput{
		ChartFingerprint: c.Birth.Fingerprint(),
		Dignities:        dignities(c),
		Yogas:            []domain.RuleFinding{},
		Doshas:           []domain.RuleFinding{},
		ReducedPrecision: c.ReducedPrecision,
	}

	for _, r := range s.registry {
		if r.NeedsHouses() && !c.TimeKnown {
			out.Skipped = append(out.Skipped, r.ID())
			continue
		}
		finding, err := r.Evaluate(c, asOf)
		if errors.Is(err, errNeedsAsOf) {
			out.Skipped = append(out.Skipped, r.ID())
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate rule %s: %w", r.ID(), err)
		}
		if finding == nil {
			continue
		}
		if finding.Kind == domain.RuleDosha {
			out.Doshas = append(out.Doshas, *finding)
		} else {
			out.Yogas = append(out.Yogas, *finding)
		}
	}
	return out, nil
}

// dignities достоинства всех грах карты в фиксированном порядке
func dignities(c *domain.ChartData) []domain.DignityResult {
	out := make([]domain.DignityResult, 0, len(domain.Planets))
	for _, p := range domain.Planets {
		pos, ok := c.Position(p)
		if !ok {
			continue
		}
		out = append(out, domain.DignityResult{
			Planet:  p,
			Sign:    pos.Sign,
			Dignity: domain.DignityOf(p, pos.Sign),
			Combust: pos.Combust,
		})
	}
	return out
}
