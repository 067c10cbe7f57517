package rules

import (
	"fmt"
	"time"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

// doshaRules реестр дош; резолвер транзитов нужен Саде Сати
func doshaRules(transit transitSignFunc) []Rule {
	return []Rule{
		manglik(),
		kaalSarp(),
		sadeSati(transit),
	}
}

// manglikHouses дома Марса, дающие дошу, от Лагны и от Луны
var manglikHouses = map[int]bool{1: true, 4: true, 7: true, 8: true, 12: true}

// manglik Марс в 1, 4, 7, 8 или 12-м доме от Лагны либо от Луны.
// Совпадение по обеим точкам отсчёта поднимает серьёзность; Марс в
// собственном знаке отменяет дошу, и отмена фиксируется в находке.
func manglik() Rule {
	return rule{
		id: "manglik",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			mars, ok := c.Position(domain.Mars)
			if !ok {
				return nil, nil
			}

			var ev []string
			fromMoon := domain.HouseOf(mars.Sign, c.MoonPosition().Sign)
			if manglikHouses[fromMoon] {
				ev = append(ev, fmt.Sprintf("Mars in the %s from Moon", ordinal(fromMoon)))
			}
			if c.TimeKnown && manglikHouses[mars.House] {
				ev = append(ev, fmt.Sprintf("Mars in house %d from Lagna", mars.House))
			}
			if len(ev) == 0 {
				return nil, nil
			}

			severity := domain.SeverityModerate
			if len(ev) == 2 {
				severity = domain.SeverityHigh
			}
			f := &domain.RuleFinding{
				RuleID:     "manglik",
				Name:       "Manglik Dosha",
				Kind:       domain.RuleDosha,
				Evidence:   ev,
				Severity:   severity,
				Confidence: domain.ConfidenceCertain,
			}
			if mars.InOwnSign(mars.Sign) {
				f.Cancelled = true
				f.Severity = domain.SeverityNone
				f.CancellationReason = fmt.Sprintf("Mars occupies its own sign %s", mars.SignName)
			}
			return f, nil
		},
	}
}

// kaalSarpAxisOrb близость к оси узлов, ломающая полную охваченность
const kaalSarpAxisOrb = 3.0

// kaalSarp все семь грах по одну сторону оси Раху–Кету. Грахи в орбисе
// оси понижают серьёзность и уверенность, а не снимают дошу.
func kaalSarp() Rule {
	seven := []domain.Planet{
		domain.Sun, domain.Moon, domain.Mars, domain.Mercury,
		domain.Jupiter, domain.Venus, domain.Saturn,
	}
	return rule{
		id: "kaal_sarp",
		evaluate: func(c *domain.ChartData, _ *time.Time) (*domain.RuleFinding, error) {
			rahu, ok := c.Position(domain.Rahu)
			if !ok {
				return nil, nil
			}

			forward, backward := 0, 0
			var onAxis []string
			for _, p := range seven {
				pos, ok := c.Position(p)
				if !ok {
					return nil, nil
				}
				d := norm360(pos.Longitude - rahu.Longitude)
				nearAxis := d < kaalSarpAxisOrb || d > 360-kaalSarpAxisOrb ||
					(d > 180-kaalSarpAxisOrb && d < 180+kaalSarpAxisOrb)
				switch {
				case nearAxis:
					onAxis = append(onAxis, fmt.Sprintf("%s within %.0f° of the nodal axis", p, kaalSarpAxisOrb))
				case d < 180:
					forward++
				default:
					backward++
				}
			}
			if forward > 0 && backward > 0 {
				return nil, nil
			}

			ketu, _ := c.Position(domain.Ketu)
			ev := []string{fmt.Sprintf("all seven grahas on one side of the Rahu–Ketu axis (%s / %s)",
				rahu.SignName, ketu.SignName)}
			severity, confidence := domain.SeverityHigh, domain.ConfidenceCertain
			if len(onAxis) > 0 {
				severity, confidence = domain.SeverityLow, domain.ConfidenceProbable
				ev = append(ev, onAxis...)
			}
			return &domain.RuleFinding{
				RuleID:     "kaal_sarp",
				Name:       "Kaal Sarp Dosha",
				Kind:       domain.RuleDosha,
				Evidence:   ev,
				Severity:   severity,
				Confidence: confidence,
			}, nil
		},
	}
}

// sadeSati транзитный Сатурн в 12-м, 1-м или 2-м знаке от натальной
// Луны. Момент транзита задаётся явно вызывающей стороной; без него
// правило попадает в Skipped.
func sadeSati(transit transitSignFunc) Rule {
	return rule{
		id: "sade_sati",
		evaluate: func(c *domain.ChartData, asOf *time.Time) (*domain.RuleFinding, error) {
			if asOf == nil {
				return nil, errNeedsAsOf
			}
			moonSign := c.MoonPosition().Sign
			saturnSign, err := transit(domain.Saturn, *asOf, c.Ayanamsa)
			if err != nil {
				return nil, err
			}

			var phase string
			var severity domain.Severity
			switch domain.HouseOf(saturnSign, moonSign) {
			case 12:
				phase, severity = "first", domain.SeverityModerate
			case 1:
				phase, severity = "peak", domain.SeverityHigh
			case 2:
				phase, severity = "last", domain.SeverityModerate
			default:
				return nil, nil
			}

			at := asOf.UTC()
			return &domain.RuleFinding{
				RuleID: "sade_sati",
				Name:   "Sade Sati",
				Kind:   domain.RuleDosha,
				Evidence: []string{fmt.Sprintf("transiting Saturn in %s, %s from natal Moon in %s (%s phase)",
					saturnSign, ordinal(domain.HouseOf(saturnSign, moonSign)), moonSign, phase)},
				Severity:   severity,
				Confidence: domain.ConfidenceCertain,
				AsOf:       &at,
			}, nil
		},
	}
}
