// Package astrotime содержит общие временные шкалы и среднюю долготу
// лунного узла, используемые обоими провайдерами эфемерид.
package astrotime

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
)

// DecimalYear год с дробной частью по месяцу, как в полиномах ΔT
func DecimalYear(t time.Time) float64 {
	return float64(t.Year()) + (float64(t.Month())-0.5)/12
}

// DeltaTSeconds разница TT-UT1 в секундах по полиномам Эспенака-Миюса;
// вне табличных интервалов — долгопериодическая парабола
func DeltaTSeconds(t time.Time) float64 {
	y := DecimalYear(t)
	switch {
	case y >= 1900 && y < 1920:
		u := y - 1900
		return -2.79 + 1.494119*u - 0.0598939*u*u + 0.0061966*u*u*u - 0.000197*u*u*u*u
	case y >= 1920 && y < 1941:
		u := y - 1920
		return 21.20 + 0.84493*u - 0.076100*u*u + 0.0020936*u*u*u
	case y >= 1941 && y < 1961:
		u := y - 1950
		return 29.07 + 0.407*u - u*u/233 + u*u*u/2547
	case y >= 1961 && y < 1986:
		u := y - 1975
		return 45.45 + 1.067*u - u*u/260 - u*u*u/718
	case y >= 1986 && y < 2005:
		u := y - 2000
		return 63.86 + 0.3345*u - 0.060374*u*u + 0.0017275*u*u*u +
			0.000651814*u*u*u*u + 0.00002373599*u*u*u*u*u
	case y >= 2005 && y < 2050:
		u := y - 2000
		return 62.92 + 0.32217*u + 0.005589*u*u
	case y >= 2050 && y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}

// JD юлианская дата по UT
func JD(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// JDE юлианская эфемеридная дата (шкала TT)
func JDE(t time.Time) float64 {
	return JD(t) + DeltaTSeconds(t)/86400
}

// JulianCenturies юлианские столетия от J2000
func JulianCenturies(jde float64) float64 {
	return (jde - base.J2000) / base.JulianCentury
}

// MeanLunarNodeDeg средняя долгота восходящего узла Луны (Раху) в
// градусах относительно равноденствия даты; движение всегда попятное
func MeanLunarNodeDeg(T float64) float64 {
	node := 125.0445479 - 1934.1362891*T + 0.0020754*T*T +
		T*T*T/467441 - T*T*T*T/60616000
	return base.PMod(node, 360)
}

// MeanLunarNodeSpeed скорость среднего узла, градусы/сутки
func MeanLunarNodeSpeed(T float64) float64 {
	dPerCentury := -1934.1362891 + 2*0.0020754*T + 3*T*T/467441 - 4*T*T*T/60616000
	return dPerCentury / base.JulianCentury
}
