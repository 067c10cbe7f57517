package dasha

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/chart"
)

// cycleSpan длительность полного цикла в наносекундах
var cycleSpan = time.Duration(domain.VimshottariCycleYears * domain.DashaYearDays * 24 * float64(time.Hour))

// sublevel следующий уровень вложенности; пратьянтар — последний
var sublevel = map[domain.DashaLevel]domain.DashaLevel{
	domain.DashaMaha:  domain.DashaAntar,
	domain.DashaAntar: domain.DashaPratyantar,
}

// ComputeDasha строит Вимшоттари-дашу: махадаши с антар- и
// пратьянтар-периодами на 120 лет от момента рождения. Первая махадаша
// укорочена на пройденную долю натальной накшатры Луны, остаток её
// управителя закрывает цикл в конце.
func (s *Service) ComputeDasha(birth domain.BirthDetails) (*domain.DashaTimeline, error) {
	b := birth.Normalized()
	if err := b.Validate(); err != nil {
		return nil, err
	}

	instant, err := b.UTCInstant()
	if err != nil {
		return nil, err
	}

	ayanamsa, err := chart.AyanamsaValueJD(b.Ayanamsa, julian.TimeToJD(instant))
	if err != nil {
		return nil, err
	}

	moon, err := s.Provider.Position(domain.Moon, instant)
	if err != nil {
		return nil, fmt.Errorf("failed to compute Moon position: %w", err)
	}

	sidMoon := chart.Sidereal(moon.TropicalLongitude, ayanamsa)
	nak, pada := domain.NakshatraFromLongitude(sidMoon)

	elapsed := (sidMoon - float64(nak)*domain.NakshatraSpan) / domain.NakshatraSpan
	if elapsed < 0 {
		elapsed = 0
	} else if elapsed > 1 {
		elapsed = 1
	}

	lord := nak.Lord()
	tl := &domain.DashaTimeline{
		BirthFingerprint: b.Fingerprint(),
		MoonNakshatra: domain.NakshatraData{
			Index: nak,
			Name:  nak.String(),
			Lord:  lord,
			Pada:  pada,
		},
		ElapsedFraction:  elapsed,
		Start:            instant,
		End:              instant.Add(cycleSpan),
		ReducedPrecision: s.Provider.Reduced(),
	}
	tl.Periods = slicePeriods(tl.Start, tl.End, mahaSpans(lord, elapsed), domain.DashaMaha, "")
	return tl, nil
}

// weighted граха с её долей цикла в годах
type weighted struct {
	lord  domain.Planet
	years float64
}

// cycleFrom полный цикл из девяти грах, начиная с указанной
func cycleFrom(lord domain.Planet) []weighted {
	start := 0
	for i, p := range domain.VimshottariOrder {
		if p == lord {
			start = i
			break
		}
	}
	out := make([]weighted, 0, len(domain.VimshottariOrder))
	for k := range domain.VimshottariOrder {
		p := domain.VimshottariOrder[(start+k)%len(domain.VimshottariOrder)]
		out = append(out, weighted{lord: p, years: domain.VimshottariYears[p]})
	}
	return out
}

// mahaSpans последовательность махадаш: остаток первой, восемь полных и
// хвост управителя первой, замыкающий 120 лет
func mahaSpans(lord domain.Planet, elapsed float64) []weighted {
	full := domain.VimshottariYears[lord]
	spans := make([]weighted, 0, 10)
	spans = append(spans, weighted{lord: lord, years: (1 - elapsed) * full})
	spans = append(spans, cycleFrom(lord)[1:]...)
	if elapsed > 0 {
		spans = append(spans, weighted{lord: lord, years: elapsed * full})
	}
	return spans
}

// slicePeriods режет окно [start, end) на смежные периоды пропорционально
// весам. Каждая граница считается от накопленной доли целого окна, так
// что ошибка округления не накапливается, а последний период всегда
// заканчивается ровно на границе родителя.
func slicePeriods(start, end time.Time, spans []weighted, level domain.DashaLevel, parentKey string) []domain.DashaPeriod {
	window := end.Sub(start)
	total := 0.0
	for _, sp := range spans {
		total += sp.years
	}

	periods := make([]domain.DashaPeriod, 0, len(spans))
	cum := 0.0
	prev := start
	for i, sp := range spans {
		cum += sp.years
		boundary := end
		if i < len(spans)-1 {
			boundary = start.Add(time.Duration(cum / total * float64(window)))
		}

		key := sp.lord.Abbr()
		if parentKey != "" {
			key = parentKey + "." + key
		}
		p := domain.DashaPeriod{
			Level:  level,
			Planet: sp.lord,
			Start:  prev,
			End:    boundary,
			Key:    key,
			Parent: parentKey,
		}
		if next, ok := sublevel[level]; ok {
			p.SubPeriods = slicePeriods(p.Start, p.End, cycleFrom(sp.lord), next, key)
		}
		periods = append(periods, p)
		prev = boundary
	}
	return periods
}
