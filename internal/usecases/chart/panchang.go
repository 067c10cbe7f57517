package chart

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

// ComputePanchang пять членов панчанги на дату и место. Титхи и карана
// считаются от элонгации Луны и не зависят от аянамсы; накшатра и
// нитья-йога — по сидерическим долготам в модели Лахири.
func (s *Service) ComputePanchang(req domain.PanchangRequest) (*domain.PanchangData, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	instant, err := req.Instant()
	if err != nil {
		return nil, err
	}
	jd := julian.TimeToJD(instant)

	ayanamsa, err := AyanamsaValueJD(domain.AyanamsaLahiri, jd)
	if err != nil {
		return nil, err
	}

	sun, err := s.Provider.Position(domain.Sun, instant)
	if err != nil {
		return nil, fmt.Errorf("failed to compute Sun position: %w", err)
	}
	moon, err := s.Provider.Position(domain.Moon, instant)
	if err != nil {
		return nil, fmt.Errorf("failed to compute Moon position: %w", err)
	}

	elongation := norm360(moon.TropicalLongitude - sun.TropicalLongitude)
	tithiIdx := int(elongation / 12)
	if tithiIdx > 29 {
		tithiIdx = 29
	}
	karanaIdx := int(elongation / 6)
	if karanaIdx > 59 {
		karanaIdx = 59
	}

	sidSun := Sidereal(sun.TropicalLongitude, ayanamsa)
	sidMoon := Sidereal(moon.TropicalLongitude, ayanamsa)

	yogaIdx := int(norm360(sidSun+sidMoon) / domain.NakshatraSpan)
	if yogaIdx > 26 {
		yogaIdx = 26
	}

	nak, pada := domain.NakshatraFromLongitude(sidMoon)

	localDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, domain.NewValidationError("date", err.Error())
	}

	return &domain.PanchangData{
		Date:      req.Date,
		Time:      req.Time,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timezone:  req.Timezone,
		Tithi:     domain.TithiFromIndex(tithiIdx),
		Nakshatra: domain.NakshatraData{
			Index: nak,
			Name:  nak.String(),
			Lord:  nak.Lord(),
			Pada:  pada,
		},
		Yoga:             domain.PanchangYogaFromIndex(yogaIdx),
		Karana:           domain.KaranaFromIndex(karanaIdx),
		Vara:             domain.VaraFromWeekday(localDate.Weekday()),
		ReducedPrecision: s.Provider.Reduced(),
	}, nil
}
