package dasha

import (
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/ephem/analytic"
	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/ephemeris"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/chart"
)

func ptr[T any](v T) *T { return &v }

func delhiBirth() domain.BirthDetails {
	return domain.BirthDetails{
		Name:      "test",
		Date:      "1990-05-15",
		Time:      ptr("10:30"),
		Latitude:  ptr(28.6139),
		Longitude: ptr(77.2090),
		Timezone:  "+05:30",
	}
}

// fixedMoon отдаёт Луну на заданной сидерической долготе Лахири,
// чтобы управлять стартовой накшатрой в тестах
type fixedMoon struct {
	sidereal float64
}

func (f fixedMoon) Position(_ domain.Planet, instant time.Time) (ephemeris.BodyPosition, error) {
	ayanamsa, err := chart.AyanamsaValueJD(domain.AyanamsaLahiri, julian.TimeToJD(instant))
	if err != nil {
		return ephemeris.BodyPosition{}, err
	}
	return ephemeris.BodyPosition{TropicalLongitude: ayanamsa + f.sidereal, SpeedPerDay: 13.2}, nil
}

func (f fixedMoon) SiderealTime(time.Time, float64) (float64, error) { return 0, nil }
func (f fixedMoon) Name() string                                     { return "fixed" }
func (f fixedMoon) Reduced() bool                                    { return false }

func yearsDuration(years float64) time.Duration {
	return time.Duration(years * domain.DashaYearDays * 24 * float64(time.Hour))
}

func TestComputeDashaFullFirstMaha(t *testing.T) {
	// Луна в самом начале Ашвини: пройденная доля нулевая, первая
	// махадаша Кету идёт целиком, цикл состоит из девяти полных периодов
	tl, err := New(fixedMoon{sidereal: 0}).ComputeDasha(delhiBirth())
	require.NoError(t, err)

	require.Equal(t, domain.Nakshatra(0), tl.MoonNakshatra.Index)
	require.Equal(t, domain.Ketu, tl.MoonNakshatra.Lord)
	require.Zero(t, tl.ElapsedFraction)
	require.Equal(t, cycleSpan, tl.End.Sub(tl.Start))

	require.Len(t, tl.Periods, 9)
	for i, p := range tl.Periods {
		require.Equal(t, domain.VimshottariOrder[i], p.Planet)
		require.Equal(t, domain.DashaMaha, p.Level)
		require.Equal(t, p.Planet.Abbr(), p.Key)
		require.Empty(t, p.Parent)
		want := yearsDuration(domain.VimshottariYears[p.Planet])
		require.InDelta(t, float64(want), float64(p.Duration()), float64(time.Second))
	}
	require.True(t, tl.Periods[0].Start.Equal(tl.Start))
	require.True(t, tl.Periods[8].End.Equal(tl.End))
}

func TestComputeDashaMidNakshatra(t *testing.T) {
	// Луна на 20°: середина Бхарани, управитель Венера. Половина её
	// 20-летнего периода уже пройдена, хвост замыкает цикл
	tl, err := New(fixedMoon{sidereal: 20}).ComputeDasha(delhiBirth())
	require.NoError(t, err)

	require.Equal(t, domain.Nakshatra(1), tl.MoonNakshatra.Index)
	require.Equal(t, domain.Venus, tl.MoonNakshatra.Lord)
	require.InDelta(t, 0.5, tl.ElapsedFraction, 1e-9)

	require.Len(t, tl.Periods, 10)
	first := tl.Periods[0]
	last := tl.Periods[9]
	require.Equal(t, domain.Venus, first.Planet)
	require.Equal(t, domain.Venus, last.Planet)
	require.Equal(t, domain.Sun, tl.Periods[1].Planet)

	half := yearsDuration(10)
	require.InDelta(t, float64(half), float64(first.Duration()), float64(time.Second))
	require.InDelta(t, float64(half), float64(last.Duration()), float64(time.Second))

	require.True(t, first.Start.Equal(tl.Start))
	require.True(t, last.End.Equal(tl.End))
	require.Equal(t, cycleSpan, tl.End.Sub(tl.Start))
}

func TestComputeDashaTreeInvariants(t *testing.T) {
	tl, err := New(fixedMoon{sidereal: 20}).ComputeDasha(delhiBirth())
	require.NoError(t, err)

	next := map[domain.DashaLevel]domain.DashaLevel{
		domain.DashaMaha:  domain.DashaAntar,
		domain.DashaAntar: domain.DashaPratyantar,
	}

	var walk func(p domain.DashaPeriod)
	walk = func(p domain.DashaPeriod) {
		if p.Level == domain.DashaPratyantar {
			require.Empty(t, p.SubPeriods)
			return
		}
		subs := p.SubPeriods
		require.Len(t, subs, 9)
		require.Equal(t, p.Planet, subs[0].Planet)
		require.True(t, subs[0].Start.Equal(p.Start))
		require.True(t, subs[8].End.Equal(p.End))

		var sum time.Duration
		for i, sub := range subs {
			require.Equal(t, next[p.Level], sub.Level)
			require.Equal(t, p.Key, sub.Parent)
			require.Equal(t, p.Key+"."+sub.Planet.Abbr(), sub.Key)
			require.False(t, sub.End.Before(sub.Start))
			if i > 0 {
				require.True(t, sub.Start.Equal(subs[i-1].End))
			}
			sum += sub.Duration()
			walk(sub)
		}
		require.InDelta(t, float64(p.Duration()), float64(sum), float64(time.Second))
	}

	for _, p := range tl.Periods {
		walk(p)
	}
}

func TestComputeDashaActiveChain(t *testing.T) {
	tl, err := New(fixedMoon{sidereal: 20}).ComputeDasha(delhiBirth())
	require.NoError(t, err)

	// в момент рождения действует цепочка управителя стартовой накшатры
	atBirth := tl.Active(tl.Start)
	require.Len(t, atBirth, 3)
	require.Equal(t, "Ve", atBirth[0].Key)
	require.Equal(t, "Ve.Ve", atBirth[1].Key)
	require.Equal(t, "Ve.Ve.Ve", atBirth[2].Key)

	at := tl.Start.Add(5 * 365 * 24 * time.Hour)
	chain := tl.Active(at)
	require.Len(t, chain, 3)
	require.Equal(t, domain.DashaMaha, chain[0].Level)
	require.Equal(t, domain.DashaAntar, chain[1].Level)
	require.Equal(t, domain.DashaPratyantar, chain[2].Level)
	for _, p := range chain {
		require.True(t, p.Contains(at))
	}
	require.Equal(t, chain[0].Key+"."+chain[1].Planet.Abbr(), chain[1].Key)

	require.Empty(t, tl.Active(tl.End))
	require.Empty(t, tl.Active(tl.Start.Add(-time.Hour)))
}

func TestComputeDashaRealProvider(t *testing.T) {
	svc := New(analytic.New())

	tl, err := svc.ComputeDasha(delhiBirth())
	require.NoError(t, err)

	require.True(t, tl.MoonNakshatra.Index.IsValid())
	require.Equal(t, tl.MoonNakshatra.Lord, tl.Periods[0].Planet)
	require.GreaterOrEqual(t, len(tl.Periods), 9)
	require.LessOrEqual(t, len(tl.Periods), 10)
	require.True(t, tl.ReducedPrecision)
	require.NotEmpty(t, tl.BirthFingerprint)

	require.True(t, tl.Periods[0].Start.Equal(tl.Start))
	require.True(t, tl.Periods[len(tl.Periods)-1].End.Equal(tl.End))
	for i := 1; i < len(tl.Periods); i++ {
		require.True(t, tl.Periods[i].Start.Equal(tl.Periods[i-1].End))
	}

	again, err := svc.ComputeDasha(delhiBirth())
	require.NoError(t, err)
	require.Equal(t, tl, again)
}

func TestComputeDashaValidation(t *testing.T) {
	svc := New(fixedMoon{})

	b := delhiBirth()
	b.Timezone = ""
	_, err := svc.ComputeDasha(b)
	require.Error(t, err)
	require.True(t, domain.IsLocationUnresolvedError(err))

	b = delhiBirth()
	b.Date = "15-05-1990"
	_, err = svc.ComputeDasha(b)
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err))
}
