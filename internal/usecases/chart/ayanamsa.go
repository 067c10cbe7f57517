package chart

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

// ayanamsaJ2000 величина аянамсы на эпоху J2000.0 в градусах
var ayanamsaJ2000 = map[domain.Ayanamsa]float64{
	domain.AyanamsaLahiri:       23.85317,
	domain.AyanamsaRaman:        22.4636,
	domain.AyanamsaKrishnamurti: 23.7571,
	domain.AyanamsaFaganBradley: 24.7366,
}

// прецессия по долготе, секунды дуги за юлианское столетие (IAU 2006)
const (
	precessionRate  = 5028.796195
	precessionRate2 = 1.1054348
)

// AyanamsaValueJD аянамса модели в градусах на юлианскую дату
func AyanamsaValueJD(model domain.Ayanamsa, jd float64) (float64, error) {
	base0, ok := ayanamsaJ2000[model]
	if !ok {
		return 0, domain.NewUnsupportedConfigurationError("ayanamsa", string(model), domain.SupportedAyanamsas)
	}
	T := (jd - base.J2000) / base.JulianCentury
	drift := (precessionRate*T + precessionRate2*T*T) / 3600.0
	return base0 + drift, nil
}

// AyanamsaValue аянамса модели в градусах на момент UTC
func AyanamsaValue(model domain.Ayanamsa, instant time.Time) (float64, error) {
	return AyanamsaValueJD(model, julian.TimeToJD(instant.UTC()))
}

// Sidereal переводит тропическую долготу в сидерическую
func Sidereal(tropicalLon, ayanamsa float64) float64 {
	return norm360(tropicalLon - ayanamsa)
}

// norm360 приводит угол к [0,360)
func norm360(deg float64) float64 {
	return base.PMod(deg, 360)
}
