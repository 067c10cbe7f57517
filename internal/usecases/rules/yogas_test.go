package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

func TestGajaKesari(t *testing.T) {
	c := testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Aries),
		domain.Jupiter: mid(domain.Cancer),
	})
	out := evaluate(t, c, nil)
	f := findFinding(out.Yogas, "gaja_kesari")
	require.NotNil(t, f)
	require.Equal(t, domain.ConfidenceCertain, f.Confidence)
	require.Contains(t, f.Evidence[0], "4th from Moon")

	c = testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Aries),
		domain.Jupiter: mid(domain.Leo),
	})
	out = evaluate(t, c, nil)
	require.Nil(t, findFinding(out.Yogas, "gaja_kesari"))
}

func TestBudhaditya(t *testing.T) {
	c := testChart(map[domain.Planet]float64{
		domain.Sun:     100,
		domain.Moon:    mid(domain.Aries),
		domain.Mercury: 110,
	})
	out := evaluate(t, c, nil)
	f := findFinding(out.Yogas, "budhaditya")
	require.NotNil(t, f)
	require.Contains(t, f.Evidence[0], "Cancer")

	c = testChart(map[domain.Planet]float64{
		domain.Sun:     100,
		domain.Moon:    mid(domain.Aries),
		domain.Mercury: 125,
	})
	out = evaluate(t, c, nil)
	require.Nil(t, findFinding(out.Yogas, "budhaditya"))
}

func TestChandraMangala(t *testing.T) {
	conj := testChart(map[domain.Planet]float64{
		domain.Moon: 45,
		domain.Mars: 50,
	})
	out := evaluate(t, conj, nil)
	require.NotNil(t, findFinding(out.Yogas, "chandra_mangala"))

	opp := testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Taurus),
		domain.Mars: mid(domain.Scorpio),
	})
	out = evaluate(t, opp, nil)
	f := findFinding(out.Yogas, "chandra_mangala")
	require.NotNil(t, f)
	require.Contains(t, f.Evidence[0], "opposite")

	none := testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Taurus),
		domain.Mars: mid(domain.Leo),
	})
	out = evaluate(t, none, nil)
	require.Nil(t, findFinding(out.Yogas, "chandra_mangala"))
}

func TestMahapurusha(t *testing.T) {
	// Юпитер экзальтирован в Раке в 1-м доме: Хамса
	c := withLagna(testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Libra),
		domain.Jupiter: mid(domain.Cancer),
	}), domain.Cancer)
	out := evaluate(t, c, nil)
	f := findFinding(out.Yogas, "hamsa")
	require.NotNil(t, f)
	require.Contains(t, f.Evidence[0], "exalted")

	// Марс в своём Скорпионе в 4-м доме от Льва: Ручака
	c = withLagna(testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Libra),
		domain.Mars: mid(domain.Scorpio),
	}), domain.Leo)
	out = evaluate(t, c, nil)
	f = findFinding(out.Yogas, "ruchaka")
	require.NotNil(t, f)
	require.Contains(t, f.Evidence[0], "own sign")

	// вне кендры йоги нет
	c = withLagna(testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Libra),
		domain.Jupiter: mid(domain.Cancer),
	}), domain.Leo)
	out = evaluate(t, c, nil)
	require.Nil(t, findFinding(out.Yogas, "hamsa"))
}

func TestNeechaBhanga(t *testing.T) {
	// Юпитер в падении в Козероге, его управитель Сатурн в 4-м от Луны
	c := testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Aries),
		domain.Jupiter: mid(domain.Capricorn),
		domain.Saturn:  mid(domain.Cancer),
	})
	out := evaluate(t, c, nil)
	f := findFinding(out.Yogas, "neecha_bhanga")
	require.NotNil(t, f)
	require.Equal(t, domain.ConfidenceProbable, f.Confidence)

	// канселлера нет: Сатурн в 5-м, Марс (экзальтирует в Козероге) в 6-м
	c = testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Aries),
		domain.Jupiter: mid(domain.Capricorn),
		domain.Saturn:  mid(domain.Leo),
		domain.Mars:    mid(domain.Virgo),
	})
	out = evaluate(t, c, nil)
	require.Nil(t, findFinding(out.Yogas, "neecha_bhanga"))
}

func TestVipareeta(t *testing.T) {
	// Лагна Овен: Меркурий (6-й дом, Дева) в 6-м, Марс (8-й, Скорпион)
	// в 8-м, Юпитер (12-й, Рыбы) в 12-м
	c := withLagna(testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Gemini),
		domain.Mercury: mid(domain.Virgo),
		domain.Mars:    mid(domain.Scorpio),
		domain.Jupiter: mid(domain.Pisces),
	}), domain.Aries)
	out := evaluate(t, c, nil)

	require.NotNil(t, findFinding(out.Yogas, "harsha"))
	require.NotNil(t, findFinding(out.Yogas, "sarala"))
	require.NotNil(t, findFinding(out.Yogas, "vimala"))
}

func TestRajaYoga(t *testing.T) {
	// Лагна Овен: Венера (7-й дом) и Юпитер (9-й) в соединении
	c := withLagna(testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Aries),
		domain.Venus:   70,
		domain.Jupiter: 75,
	}), domain.Aries)
	out := evaluate(t, c, nil)
	f := findFinding(out.Yogas, "raja_yoga")
	require.NotNil(t, f)
	require.Contains(t, f.Evidence[0], "Venus")
	require.Contains(t, f.Evidence[0], "Jupiter")
}

func TestDhanaYoga(t *testing.T) {
	// Лагна Овен: Венера, управитель 2-го, в 11-м доме
	c := withLagna(testChart(map[domain.Planet]float64{
		domain.Moon:  mid(domain.Aries),
		domain.Venus: mid(domain.Aquarius),
	}), domain.Aries)
	out := evaluate(t, c, nil)
	f := findFinding(out.Yogas, "dhana_yoga")
	require.NotNil(t, f)
	require.Contains(t, f.Evidence[0], "lord of house 2")
}

func TestLakshmiYoga(t *testing.T) {
	// Лагна Телец: Сатурн, управитель 9-го (Козерог), в своём знаке в 9-м
	c := withLagna(testChart(map[domain.Planet]float64{
		domain.Moon:   mid(domain.Taurus),
		domain.Saturn: mid(domain.Capricorn),
	}), domain.Taurus)
	out := evaluate(t, c, nil)
	require.NotNil(t, findFinding(out.Yogas, "lakshmi_yoga"))
}

func TestSaraswatiYoga(t *testing.T) {
	c := withLagna(testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Libra),
		domain.Jupiter: mid(domain.Cancer),  // 4-й дом
		domain.Venus:   mid(domain.Leo),     // 5-й
		domain.Mercury: mid(domain.Aries),   // 1-й
	}), domain.Aries)
	out := evaluate(t, c, nil)
	f := findFinding(out.Yogas, "saraswati_yoga")
	require.NotNil(t, f)
	require.Len(t, f.Evidence, 3)
}

func TestAmalaYoga(t *testing.T) {
	c := testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Aries),
		domain.Jupiter: mid(domain.Capricorn),
	})
	out := evaluate(t, c, nil)
	f := findFinding(out.Yogas, "amala_yoga")
	require.NotNil(t, f)
	require.Contains(t, f.Evidence[0], "from Moon")

	// вредитель в том же доме ломает йогу
	c = testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Aries),
		domain.Jupiter: mid(domain.Capricorn),
		domain.Saturn:  mid(domain.Capricorn) + 5,
	})
	out = evaluate(t, c, nil)
	require.Nil(t, findFinding(out.Yogas, "amala_yoga"))
}

func TestKartari(t *testing.T) {
	shubha := testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Taurus),
		domain.Venus:   mid(domain.Gemini),
		domain.Jupiter: mid(domain.Aries),
	})
	out := evaluate(t, shubha, nil)
	require.NotNil(t, findFinding(out.Yogas, "shubha_kartari"))

	paap := testChart(map[domain.Planet]float64{
		domain.Moon:   mid(domain.Taurus),
		domain.Saturn: mid(domain.Gemini),
		domain.Mars:   mid(domain.Aries),
	})
	out = evaluate(t, paap, nil)
	f := findFinding(out.Yogas, "paap_kartari")
	require.NotNil(t, f)
	require.Equal(t, domain.SeverityModerate, f.Severity)
}

func TestKemadruma(t *testing.T) {
	lonely := testChart(map[domain.Planet]float64{
		domain.Sun:     mid(domain.Aries),
		domain.Moon:    mid(domain.Aries),
		domain.Mars:    mid(domain.Leo),
		domain.Mercury: mid(domain.Virgo),
		domain.Jupiter: mid(domain.Sagittarius),
		domain.Venus:   mid(domain.Virgo),
		domain.Saturn:  mid(domain.Leo),
	})
	out := evaluate(t, lonely, nil)
	f := findFinding(out.Yogas, "kemadruma")
	require.NotNil(t, f)
	require.False(t, f.Cancelled)
	require.Equal(t, domain.SeverityModerate, f.Severity)

	// грахa в кендре от Луны смягчает йогу
	softened := testChart(map[domain.Planet]float64{
		domain.Sun:     mid(domain.Aries),
		domain.Moon:    mid(domain.Aries),
		domain.Mars:    mid(domain.Leo),
		domain.Mercury: mid(domain.Virgo),
		domain.Jupiter: mid(domain.Libra),
		domain.Venus:   mid(domain.Virgo),
		domain.Saturn:  mid(domain.Leo),
	})
	out = evaluate(t, softened, nil)
	f = findFinding(out.Yogas, "kemadruma")
	require.NotNil(t, f)
	require.True(t, f.Cancelled)
	require.Equal(t, domain.SeverityNone, f.Severity)
	require.Contains(t, f.CancellationReason, "kendra")

	// сосед во 2-м от Луны — йоги нет вовсе
	flanked := testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Aries),
		domain.Mars: mid(domain.Taurus),
	})
	out = evaluate(t, flanked, nil)
	require.Nil(t, findFinding(out.Yogas, "kemadruma"))
}

func TestMoonFlankYogas(t *testing.T) {
	sunaphaChart := testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Taurus),
		domain.Mars: mid(domain.Gemini),
	})
	out := evaluate(t, sunaphaChart, nil)
	require.NotNil(t, findFinding(out.Yogas, "sunapha"))
	require.Nil(t, findFinding(out.Yogas, "anapha"))
	require.Nil(t, findFinding(out.Yogas, "durudhura"))

	anaphaChart := testChart(map[domain.Planet]float64{
		domain.Moon: mid(domain.Taurus),
		domain.Mars: mid(domain.Aries),
	})
	out = evaluate(t, anaphaChart, nil)
	require.Nil(t, findFinding(out.Yogas, "sunapha"))
	require.NotNil(t, findFinding(out.Yogas, "anapha"))

	durudhuraChart := testChart(map[domain.Planet]float64{
		domain.Moon:   mid(domain.Taurus),
		domain.Mars:   mid(domain.Gemini),
		domain.Saturn: mid(domain.Aries),
	})
	out = evaluate(t, durudhuraChart, nil)
	require.Nil(t, findFinding(out.Yogas, "sunapha"))
	require.Nil(t, findFinding(out.Yogas, "anapha"))
	require.NotNil(t, findFinding(out.Yogas, "durudhura"))
}

func TestSunFlankYogas(t *testing.T) {
	vesiChart := testChart(map[domain.Planet]float64{
		domain.Sun:   mid(domain.Leo),
		domain.Moon:  mid(domain.Taurus),
		domain.Venus: mid(domain.Virgo),
	})
	out := evaluate(t, vesiChart, nil)
	require.NotNil(t, findFinding(out.Yogas, "vesi"))

	vasiChart := testChart(map[domain.Planet]float64{
		domain.Sun:   mid(domain.Leo),
		domain.Moon:  mid(domain.Taurus),
		domain.Venus: mid(domain.Cancer),
	})
	out = evaluate(t, vasiChart, nil)
	require.NotNil(t, findFinding(out.Yogas, "vasi"))

	bothChart := testChart(map[domain.Planet]float64{
		domain.Sun:     mid(domain.Leo),
		domain.Moon:    mid(domain.Taurus),
		domain.Venus:   mid(domain.Virgo),
		domain.Mercury: mid(domain.Cancer),
	})
	out = evaluate(t, bothChart, nil)
	require.NotNil(t, findFinding(out.Yogas, "ubhayachari"))
}

func TestAdhiYoga(t *testing.T) {
	c := testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Aries),
		domain.Mercury: mid(domain.Virgo),
		domain.Jupiter: mid(domain.Libra),
		domain.Venus:   mid(domain.Scorpio),
	})
	out := evaluate(t, c, nil)
	f := findFinding(out.Yogas, "adhi_yoga")
	require.NotNil(t, f)
	require.Len(t, f.Evidence, 3)
}

func TestParivartana(t *testing.T) {
	c := testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Aries),
		domain.Mercury: mid(domain.Libra),
		domain.Venus:   mid(domain.Gemini),
	})
	out := evaluate(t, c, nil)
	f := findFinding(out.Yogas, "parivartana")
	require.NotNil(t, f)
	require.Len(t, f.Evidence, 1)
	require.Contains(t, f.Evidence[0], "exchanges signs")
}

func TestGuruChandala(t *testing.T) {
	c := testChart(map[domain.Planet]float64{
		domain.Moon:    mid(domain.Aries),
		domain.Jupiter: 100,
		domain.Rahu:    110,
	})
	out := evaluate(t, c, nil)
	f := findFinding(out.Yogas, "guru_chandala")
	require.NotNil(t, f)
	require.Equal(t, domain.SeverityModerate, f.Severity)
}
