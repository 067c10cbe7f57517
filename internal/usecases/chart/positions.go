package chart

import (
	"fmt"
	"time"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/ephemeris"
)

// planetPositions позиции девяти грах на момент времени при заданном
// значении аянамсы; порядок фиксированный
func (s *Service) planetPositions(instant time.Time, ayanamsa float64) ([]domain.PlanetPosition, error) {
	raw := make(map[domain.Planet]ephemeris.BodyPosition, len(domain.Planets))
	for _, p := range domain.Planets {
		pos, err := s.Provider.Position(p, instant)
		if err != nil {
			return nil, fmt.Errorf("failed to compute %s position: %w", p, err)
		}
		raw[p] = pos
	}

	sunTropical := raw[domain.Sun].TropicalLongitude

	positions := make([]domain.PlanetPosition, 0, len(domain.Planets))
	for _, p := range domain.Planets {
		pos := raw[p]
		lon := Sidereal(pos.TropicalLongitude, ayanamsa)
		sign := domain.SignFromLongitude(lon)
		nak, pada := domain.NakshatraFromLongitude(lon)

		retro := pos.SpeedPerDay < 0 && !p.NeverRetrograde()
		combust := false
		if p != domain.Sun {
			if orb := domain.CombustionOrb(p, retro); orb > 0 {
				combust = separation(pos.TropicalLongitude, sunTropical) < orb
			}
		}

		positions = append(positions, domain.PlanetPosition{
			Planet:       p,
			Longitude:    lon,
			Latitude:     pos.Latitude,
			Sign:         sign,
			SignName:     sign.String(),
			DegreeInSign: lon - float64(sign-1)*30,
			Nakshatra:    nak,
			Pada:         pada,
			SpeedPerDay:  pos.SpeedPerDay,
			Retrograde:   retro,
			Combust:      combust,
		})
	}

	return positions, nil
}

// PositionsAt снимок сидерических позиций всех грах на момент времени.
// Дома не считаются, место наблюдения не требуется; снимок идёт в кэш
// текущих позиций
func (s *Service) PositionsAt(at time.Time, model domain.Ayanamsa) ([]domain.PlanetPosition, error) {
	at = at.UTC()

	ayanamsa, err := AyanamsaValue(model, at)
	if err != nil {
		return nil, err
	}

	return s.planetPositions(at, ayanamsa)
}
