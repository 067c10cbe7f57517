package chart

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

// separation угловое расстояние между долготами, 0..180
func separation(a, b float64) float64 {
	d := math.Abs(norm360(a - b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ComputeChart строит полную карту для проверенных данных рождения.
// В режиме "время неизвестно" Лагна и дома не считаются, позиции
// берутся на подставной локальный час.
func (s *Service) ComputeChart(birth domain.BirthDetails) (*domain.ChartData, error) {
	birth = birth.Normalized()
	if err := birth.Validate(); err != nil {
		return nil, err
	}

	instant, err := birth.UTCInstant()
	if err != nil {
		return nil, err
	}
	jd := julian.TimeToJD(instant)

	ayanamsa, err := AyanamsaValueJD(birth.Ayanamsa, jd)
	if err != nil {
		return nil, err
	}

	chart := &domain.ChartData{
		Birth:            birth,
		Ayanamsa:         birth.Ayanamsa,
		HouseSystem:      birth.HouseSystem,
		AyanamsaValue:    ayanamsa,
		TimeKnown:        birth.HasTime(),
		ReducedPrecision: s.Provider.Reduced(),
	}

	positions, err := s.planetPositions(instant, ayanamsa)
	if err != nil {
		return nil, err
	}
	chart.Planets = positions

	if !birth.HasTime() {
		return chart, nil
	}

	lst, err := s.Provider.SiderealTime(instant, *birth.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sidereal time: %w", err)
	}
	eps := trueObliquityDeg(jd)

	tropAsc := ascendantTropical(lst, *birth.Latitude, eps)
	sidAsc := Sidereal(tropAsc, ayanamsa)
	ascSign := domain.SignFromLongitude(sidAsc)
	ascNak, ascPada := domain.NakshatraFromLongitude(sidAsc)
	chart.Ascendant = &domain.Ascendant{
		Longitude:    sidAsc,
		Sign:         ascSign,
		SignName:     ascSign.String(),
		DegreeInSign: sidAsc - float64(ascSign-1)*30,
		Nakshatra:    ascNak,
		Pada:         ascPada,
	}

	var cusps [12]float64
	switch birth.HouseSystem {
	case domain.HouseWholeSign:
		cusps = wholeSignCusps(ascSign)
	case domain.HouseEqual:
		cusps = equalCusps(sidAsc)
	case domain.HousePlacidus:
		tropical, err := placidusCusps(lst, *birth.Latitude, eps)
		if err != nil {
			return nil, err
		}
		for i, c := range tropical {
			cusps[i] = Sidereal(c, ayanamsa)
		}
	default:
		return nil, domain.NewUnsupportedConfigurationError(
			"house_system", string(birth.HouseSystem), domain.SupportedHouseSystems)
	}
	chart.Houses = buildHouses(birth.HouseSystem, ascSign, cusps)

	for i := range chart.Planets {
		if birth.HouseSystem == domain.HouseWholeSign {
			chart.Planets[i].House = houseBySignCount(chart.Planets[i].Sign, ascSign)
		} else {
			chart.Planets[i].House = houseOfLongitude(chart.Planets[i].Longitude, cusps)
		}
	}

	return chart, nil
}
