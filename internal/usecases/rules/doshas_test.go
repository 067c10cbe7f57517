package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

func TestManglikFromMoon(t *testing.T) {
	c := testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Aries),
		domain.Mars: mid(domain.Cancer),
	})
	out := evaluate(t, c, nil)
	f := findFinding(out.Doshas, "manglik")
	require.NotNil(t, f)
	require.Equal(t, domain.SeverityModerate, f.Severity)
	require.False(t, f.Cancelled)
	require.Len(t, f.Evidence, 1)
	require.Contains(t, f.Evidence[0], "from Moon")
}

func TestManglikBothBases(t *testing.T) {
	c := withLagna(testChart(map[domain.Planet]float64{
		domain.Moon: 105,
		domain.Mars: 100,
	}), domain.Cancer)
	out := evaluate(t, c, nil)
	f := findFinding(out.Doshas, "manglik")
	require.NotNil(t, f)
	require.Equal(t, domain.SeverityHigh, f.Severity)
	require.Len(t, f.Evidence, 2)
	require.False(t, f.Cancelled)
}

func TestManglikOwnSignCancellation(t *testing.T) {
	// Марс в своём Скорпионе в 8-м доме: доша фиксируется, но отменена
	c := withLagna(testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Gemini),
		domain.Mars: mid(domain.Scorpio),
	}), domain.Aries)
	out := evaluate(t, c, nil)
	f := findFinding(out.Doshas, "manglik")
	require.NotNil(t, f)
	require.True(t, f.Cancelled)
	require.Equal(t, domain.SeverityNone, f.Severity)
	require.Contains(t, f.CancellationReason, "Scorpio")
	require.NotEmpty(t, f.Evidence)
}

func TestManglikAbsent(t *testing.T) {
	c := testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Aries),
		domain.Mars: mid(domain.Gemini), // 3-й от Луны
	})
	out := evaluate(t, c, nil)
	require.Nil(t, findFinding(out.Doshas, "manglik"))
}

func kaalSarpBase() map[domain.Planet]float64 {
	return map[domain.Planet]float64{
		domain.Rahu:    10,
		domain.Ketu:    190,
		domain.Sun:     30,
		domain.Moon:    60,
		domain.Mars:    90,
		domain.Mercury: 120,
		domain.Jupiter: 140,
		domain.Venus:   160,
		domain.Saturn:  170,
	}
}

func TestKaalSarpComplete(t *testing.T) {
	out := evaluate(t, testChart(kaalSarpBase()), nil)
	f := findFinding(out.Doshas, "kaal_sarp")
	require.NotNil(t, f)
	require.Equal(t, domain.SeverityHigh, f.Severity)
	require.Equal(t, domain.ConfidenceCertain, f.Confidence)
}

func TestKaalSarpAxisOrb(t *testing.T) {
	positions := kaalSarpBase()
	positions[domain.Moon] = 12 // в 2° от Раху
	out := evaluate(t, testChart(positions), nil)
	f := findFinding(out.Doshas, "kaal_sarp")
	require.NotNil(t, f)
	require.Equal(t, domain.SeverityLow, f.Severity)
	require.Equal(t, domain.ConfidenceProbable, f.Confidence)
	require.GreaterOrEqual(t, len(f.Evidence), 2)
}

func TestKaalSarpBroken(t *testing.T) {
	positions := kaalSarpBase()
	positions[domain.Saturn] = 250 // по другую сторону оси
	out := evaluate(t, testChart(positions), nil)
	require.Nil(t, findFinding(out.Doshas, "kaal_sarp"))
}

func TestSadeSatiPhases(t *testing.T) {
	// июнь 2023: транзитный Сатурн в сидерическом Водолее
	asOf := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	// Луна в Рыбах: Сатурн в 12-м от неё, первая фаза
	c := testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Pisces),
	})
	out := evaluate(t, c, &asOf)
	f := findFinding(out.Doshas, "sade_sati")
	require.NotNil(t, f)
	require.Equal(t, domain.SeverityModerate, f.Severity)
	require.Contains(t, f.Evidence[0], "first phase")
	require.NotNil(t, f.AsOf)
	require.True(t, f.AsOf.Equal(asOf))

	// Луна в Водолее: Сатурн над натальной Луной, пик
	c = testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Aquarius),
	})
	out = evaluate(t, c, &asOf)
	f = findFinding(out.Doshas, "sade_sati")
	require.NotNil(t, f)
	require.Equal(t, domain.SeverityHigh, f.Severity)
	require.Contains(t, f.Evidence[0], "peak phase")

	// Луна во Льве: Сатурн в 7-м, Саде Сати нет
	c = testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Leo),
	})
	out = evaluate(t, c, &asOf)
	require.Nil(t, findFinding(out.Doshas, "sade_sati"))
	require.NotContains(t, out.Skipped, "sade_sati")
}

func TestSadeSatiSkippedWithoutAsOf(t *testing.T) {
	c := testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Pisces),
	})
	out := evaluate(t, c, nil)
	require.Nil(t, findFinding(out.Doshas, "sade_sati"))
	require.Contains(t, out.Skipped, "sade_sati")
}
