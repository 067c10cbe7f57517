package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/ephem/analytic"
	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/chart"
)

// moonChart карта с единственной Луной на заданной сидерической долготе
func moonChart(lon float64) *domain.ChartData {
	sign := domain.SignFromLongitude(lon)
	nak, pada := domain.NakshatraFromLongitude(lon)

	return &domain.ChartData{
		Ayanamsa:    domain.AyanamsaLahiri,
		HouseSystem: domain.HouseWholeSign,
		Planets: []domain.PlanetPosition{{
			Planet:    domain.Moon,
			Longitude: lon,
			Sign:      sign,
			SignName:  sign.String(),
			Nakshatra: nak,
			Pada:      pada,
		}},
	}
}

func findKuta(t *testing.T, score *domain.CompatibilityScore, name string) domain.KutaScore {
	t.Helper()
	for _, k := range score.Kutas {
		if k.Kuta == name {
			return k
		}
	}
	t.Fatalf("kuta %q not found", name)
	return domain.KutaScore{}
}

func TestScoreIdenticalMoons(t *testing.T) {
	// обе Луны в середине Овна, накшатра Бхарани, одна пада
	score, err := Score(moonChart(15), moonChart(15))
	require.NoError(t, err)

	require.Len(t, score.Kutas, 8)

	wantOrder := []string{"varna", "vashya", "tara", "yoni", "graha_maitri", "gana", "bhakoot", "nadi"}
	maxSum := 0.0
	for i, k := range score.Kutas {
		require.Equal(t, wantOrder[i], k.Kuta)
		require.GreaterOrEqual(t, k.Points, 0.0)
		require.LessOrEqual(t, k.Points, k.MaxPoints)
		maxSum += k.MaxPoints
	}
	require.Equal(t, domain.AshtakootMaxTotal, maxSum)

	// все куты максимальны, кроме нади: одна накшатра и одна пада
	require.Equal(t, 28.0, score.Total)
	require.Equal(t, domain.VerdictGood, score.Verdict)
	require.Equal(t, 0.0, findKuta(t, score, "nadi").Points)

	require.Equal(t, domain.Aries, score.Bride.Sign)
	require.Equal(t, "Aries", score.Bride.SignName)
	require.Equal(t, domain.Nakshatra(1), score.Groom.Nakshatra)
}

func TestNadiExceptionSameNakshatraDifferentPada(t *testing.T) {
	// обе Луны в Ашвини, но пады разные: нади-дефект снимается
	score, err := Score(moonChart(2), moonChart(5))
	require.NoError(t, err)

	nadi := findKuta(t, score, "nadi")
	require.Equal(t, 8.0, nadi.Points)
	require.True(t, nadi.ExceptionApplied)
	require.Contains(t, nadi.ExceptionReason, "pada")
	require.Contains(t, nadi.ExceptionReason, "Ashwini")

	require.Equal(t, 36.0, score.Total)
	require.Equal(t, domain.VerdictExcellent, score.Verdict)
}

func TestNadiSameNadiDifferentNakshatra(t *testing.T) {
	// Ашвини и Пунарвасу — обе Аади-нади, исключение не действует
	score, err := Score(moonChart(2), moonChart(85))
	require.NoError(t, err)

	nadi := findKuta(t, score, "nadi")
	require.Equal(t, 0.0, nadi.Points)
	require.False(t, nadi.ExceptionApplied)
	require.Empty(t, nadi.ExceptionReason)
}

func TestNadiDifferentNadi(t *testing.T) {
	// Ашвини (Аади) и Бхарани (Мадхья)
	score, err := Score(moonChart(2), moonChart(15))
	require.NoError(t, err)

	require.Equal(t, 8.0, findKuta(t, score, "nadi").Points)
}

func TestBhakootPairs(t *testing.T) {
	tests := []struct {
		name       string
		bride      float64
		groom      float64
		wantPoints float64
	}{
		{"shashtashtaka 6/8", 15, 165, 0},
		{"dwirdwadasha 2/12", 15, 45, 0},
		{"distance 5/9 keeps points", 15, 135, 7},
		{"opposite signs keep points", 15, 195, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := Score(moonChart(tt.bride), moonChart(tt.groom))
			require.NoError(t, err)
			require.Equal(t, tt.wantPoints, findKuta(t, score, "bhakoot").Points)
		})
	}
}

func TestVarnaDependsOnOrder(t *testing.T) {
	cancer, leo := moonChart(105), moonChart(135)

	// невеста-брахман и жених-кшатрий: жених ниже по варне
	score, err := Score(cancer, leo)
	require.NoError(t, err)
	require.Equal(t, 0.0, findKuta(t, score, "varna").Points)

	// в обратном порядке варна жениха не ниже
	score, err = Score(leo, cancer)
	require.NoError(t, err)
	require.Equal(t, 1.0, findKuta(t, score, "varna").Points)
}

func TestVashyaGroups(t *testing.T) {
	// Овен (четвероногие) и Лев (дикие): взаимный ноль
	score, err := Score(moonChart(15), moonChart(135))
	require.NoError(t, err)
	require.Equal(t, 0.0, findKuta(t, score, "vashya").Points)

	// Близнецы и Рак: человек и водные — 0.5
	score, err = Score(moonChart(75), moonChart(105))
	require.NoError(t, err)
	require.Equal(t, 0.5, findKuta(t, score, "vashya").Points)
}

func TestTaraCountsBothDirections(t *testing.T) {
	// от Ашвини к Криттике третья тара (Випат), обратно — восьмая
	score, err := Score(moonChart(5), moonChart(30))
	require.NoError(t, err)

	tara := findKuta(t, score, "tara")
	require.Equal(t, 1.5, tara.Points)
	require.Contains(t, tara.Detail, "tara 3")
}

func TestTaraBothFavorable(t *testing.T) {
	// Ашвини и Бхарани: тары 2 и 9, обе благоприятны
	score, err := Score(moonChart(5), moonChart(15))
	require.NoError(t, err)
	require.Equal(t, 3.0, findKuta(t, score, "tara").Points)
}

func TestYoniHostilePair(t *testing.T) {
	// Уттара Пхалгуни (корова) и Читра (тигр)
	score, err := Score(moonChart(150), moonChart(175))
	require.NoError(t, err)

	yoni := findKuta(t, score, "yoni")
	require.Equal(t, 0.0, yoni.Points)
	require.Contains(t, yoni.Detail, "Cow")
	require.Contains(t, yoni.Detail, "Tiger")
}

func TestGanaDependsOnOrder(t *testing.T) {
	ashwini := moonChart(5)      // дева-гана
	bharani := moonChart(15)     // манушья-гана
	dhanishtha := moonChart(300) // ракшаса-гана

	score, err := Score(ashwini, dhanishtha)
	require.NoError(t, err)
	require.Equal(t, 1.0, findKuta(t, score, "gana").Points)

	score, err = Score(dhanishtha, bharani)
	require.NoError(t, err)
	require.Equal(t, 0.0, findKuta(t, score, "gana").Points)

	score, err = Score(bharani, dhanishtha)
	require.NoError(t, err)
	require.Equal(t, 0.0, findKuta(t, score, "gana").Points)
}

func TestGrahaMaitri(t *testing.T) {
	tests := []struct {
		name       string
		bride      float64
		groom      float64
		wantPoints float64
	}{
		{"mutual friends Moon and Sun", 105, 135, 5},
		{"same lord both Aries and Scorpio", 15, 225, 5},
		{"neutral and enemy Moon and Saturn", 105, 285, 0.5},
		{"mutual enemies Sun and Venus", 135, 45, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := Score(moonChart(tt.bride), moonChart(tt.groom))
			require.NoError(t, err)
			require.Equal(t, tt.wantPoints, findKuta(t, score, "graha_maitri").Points)
		})
	}
}

func TestScoreValidation(t *testing.T) {
	_, err := Score(nil, moonChart(15))
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err))

	noMoon := &domain.ChartData{Planets: []domain.PlanetPosition{{Planet: domain.Sun}}}
	_, err = Score(noMoon, moonChart(15))
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err))
}

func TestMatchChartsEndToEnd(t *testing.T) {
	service := New(chart.New(analytic.New()))

	bride := domain.BirthDetails{
		Date:      "1992-03-10",
		Time:      ptr("08:15"),
		Latitude:  ptr(28.6139),
		Longitude: ptr(77.2090),
		Timezone:  "Asia/Kolkata",
	}
	groom := domain.BirthDetails{
		Date:      "1990-05-15",
		Time:      ptr("10:30"),
		Latitude:  ptr(28.6139),
		Longitude: ptr(77.2090),
		Timezone:  "Asia/Kolkata",
	}

	score, err := service.MatchCharts(bride, groom)
	require.NoError(t, err)

	require.Len(t, score.Kutas, 8)
	require.GreaterOrEqual(t, score.Total, 0.0)
	require.LessOrEqual(t, score.Total, score.MaxTotal)
	require.Equal(t, domain.AshtakootMaxTotal, score.MaxTotal)
	require.NotEmpty(t, score.Verdict)
	require.True(t, score.ReducedPrecision)
	require.True(t, score.Bride.Sign.IsValid())
	require.True(t, score.Groom.Sign.IsValid())

	// стороны не взаимозаменяемы: сводка привязана к порядку аргументов
	swapped, err := service.MatchCharts(groom, bride)
	require.NoError(t, err)
	require.Equal(t, score.Bride, swapped.Groom)
	require.Equal(t, score.Groom, swapped.Bride)

	again, err := service.MatchCharts(bride, groom)
	require.NoError(t, err)
	require.Equal(t, score, again)
}

func TestMatchChartsValidation(t *testing.T) {
	service := New(chart.New(analytic.New()))

	_, err := service.MatchCharts(domain.BirthDetails{}, domain.BirthDetails{})
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err))
}

func ptr[T any](v T) *T { return &v }
