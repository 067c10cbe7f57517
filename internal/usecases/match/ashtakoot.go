package match

import (
	"fmt"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

// Score сводит Аштакут-милан по двум готовым картам; первая карта —
// невеста, вторая — жених. Порядок сторон значим для варны и ганы.
func Score(bride, groom *domain.ChartData) (*domain.CompatibilityScore, error) {
	bMoon, err := moonOf(bride, "bride")
	if err != nil {
		return nil, err
	}

	gMoon, err := moonOf(groom, "groom")
	if err != nil {
		return nil, err
	}

	kutas := []domain.KutaScore{
		varnaKuta(bMoon, gMoon),
		vashyaKuta(bMoon, gMoon),
		taraKuta(bMoon, gMoon),
		yoniKuta(bMoon, gMoon),
		maitriKuta(bMoon, gMoon),
		ganaKuta(bMoon, gMoon),
		bhakootKuta(bMoon, gMoon),
		nadiKuta(bMoon, gMoon),
	}

	total := 0.0
	for _, k := range kutas {
		total += k.Points
	}

	return &domain.CompatibilityScore{
		Bride:            moonSummary(bMoon),
		Groom:            moonSummary(gMoon),
		Kutas:            kutas,
		Total:            total,
		MaxTotal:         domain.AshtakootMaxTotal,
		Verdict:          domain.VerdictForTotal(total),
		ReducedPrecision: bride.ReducedPrecision || groom.ReducedPrecision,
	}, nil
}

func moonOf(c *domain.ChartData, side string) (domain.PlanetPosition, error) {
	if c == nil || len(c.Planets) == 0 {
		return domain.PlanetPosition{}, domain.NewValidationError(side, "computed chart is required")
	}

	moon, ok := c.Position(domain.Moon)
	if !ok {
		return domain.PlanetPosition{}, domain.NewValidationError(side, "chart has no Moon position")
	}

	return moon, nil
}

func moonSummary(pos domain.PlanetPosition) domain.MoonSummary {
	return domain.MoonSummary{
		Sign:      pos.Sign,
		SignName:  pos.SignName,
		Nakshatra: pos.Nakshatra,
		Pada:      pos.Pada,
	}
}

func varnaKuta(bride, groom domain.PlanetPosition) domain.KutaScore {
	bv, gv := varnaOfSign(bride.Sign), varnaOfSign(groom.Sign)

	points := 0.0
	if gv >= bv {
		points = 1
	}

	return domain.KutaScore{
		Kuta:      "varna",
		Points:    points,
		MaxPoints: 1,
		Detail:    fmt.Sprintf("bride %s, groom %s", bv, gv),
	}
}

func vashyaKuta(bride, groom domain.PlanetPosition) domain.KutaScore {
	bv, gv := vashyaOfSign(bride.Sign), vashyaOfSign(groom.Sign)

	return domain.KutaScore{
		Kuta:      "vashya",
		Points:    vashyaPoints[bv][gv],
		MaxPoints: 2,
		Detail:    fmt.Sprintf("bride %s, groom %s", bv, gv),
	}
}

// taraNumber тара, отсчитанная от накшатры from к накшатре to, 1..9
func taraNumber(from, to domain.Nakshatra) int {
	count := (int(to)-int(from)+27)%27 + 1

	tara := count % 9
	if tara == 0 {
		tara = 9
	}

	return tara
}

func taraKuta(bride, groom domain.PlanetPosition) domain.KutaScore {
	fromBride := taraNumber(bride.Nakshatra, groom.Nakshatra)
	fromGroom := taraNumber(groom.Nakshatra, bride.Nakshatra)

	points := 0.0
	if !taraBad[fromBride] {
		points += 1.5
	}
	if !taraBad[fromGroom] {
		points += 1.5
	}

	return domain.KutaScore{
		Kuta:      "tara",
		Points:    points,
		MaxPoints: 3,
		Detail:    fmt.Sprintf("tara %d counted from bride, %d from groom", fromBride, fromGroom),
	}
}

func yoniKuta(bride, groom domain.PlanetPosition) domain.KutaScore {
	by, gy := bride.Nakshatra.Yoni(), groom.Nakshatra.Yoni()

	return domain.KutaScore{
		Kuta:      "yoni",
		Points:    yoniPoints[yoniIndex[by]][yoniIndex[gy]],
		MaxPoints: 4,
		Detail:    fmt.Sprintf("bride %s, groom %s", by, gy),
	}
}

func maitriKuta(bride, groom domain.PlanetPosition) domain.KutaScore {
	bl, gl := bride.Sign.Lord(), groom.Sign.Lord()

	detail := fmt.Sprintf("Moon sign lords %s and %s", bl, gl)
	if bl == gl {
		return domain.KutaScore{Kuta: "graha_maitri", Points: 5, MaxPoints: 5, Detail: detail + " (same lord)"}
	}

	r1, r2 := bl.RelationTo(gl), gl.RelationTo(bl)

	var points float64
	switch {
	case r1 == domain.RelationFriend && r2 == domain.RelationFriend:
		points = 5
	case r1 == domain.RelationFriend && r2 == domain.RelationNeutral,
		r1 == domain.RelationNeutral && r2 == domain.RelationFriend:
		points = 4
	case r1 == domain.RelationNeutral && r2 == domain.RelationNeutral:
		points = 3
	case r1 == domain.RelationFriend && r2 == domain.RelationEnemy,
		r1 == domain.RelationEnemy && r2 == domain.RelationFriend:
		points = 1
	case r1 == domain.RelationNeutral && r2 == domain.RelationEnemy,
		r1 == domain.RelationEnemy && r2 == domain.RelationNeutral:
		points = 0.5
	default:
		points = 0
	}

	return domain.KutaScore{
		Kuta:      "graha_maitri",
		Points:    points,
		MaxPoints: 5,
		Detail:    fmt.Sprintf("%s (%s and %s)", detail, r1, r2),
	}
}

func ganaKuta(bride, groom domain.PlanetPosition) domain.KutaScore {
	bg, gg := bride.Nakshatra.Gana(), groom.Nakshatra.Gana()

	return domain.KutaScore{
		Kuta:      "gana",
		Points:    ganaPoints[ganaIndex[bg]][ganaIndex[gg]],
		MaxPoints: 6,
		Detail:    fmt.Sprintf("bride %s, groom %s", bg, gg),
	}
}

func bhakootKuta(bride, groom domain.PlanetPosition) domain.KutaScore {
	d1 := domain.SignDistance(bride.Sign, groom.Sign)
	d2 := domain.SignDistance(groom.Sign, bride.Sign)

	points := 7.0
	if (d1 == 6 && d2 == 8) || (d1 == 8 && d2 == 6) || (d1 == 2 && d2 == 12) || (d1 == 12 && d2 == 2) {
		points = 0
	}

	return domain.KutaScore{
		Kuta:      "bhakoot",
		Points:    points,
		MaxPoints: 7,
		Detail:    fmt.Sprintf("sign distance %d and %d", d1, d2),
	}
}

func nadiKuta(bride, groom domain.PlanetPosition) domain.KutaScore {
	bn, gn := bride.Nakshatra.Nadi(), groom.Nakshatra.Nadi()

	score := domain.KutaScore{
		Kuta:      "nadi",
		MaxPoints: 8,
		Detail:    fmt.Sprintf("bride %s nadi, groom %s nadi", bn, gn),
	}

	if bn != gn {
		score.Points = 8
		return score
	}

	if bride.Nakshatra == groom.Nakshatra && bride.Pada != groom.Pada {
		score.Points = 8
		score.ExceptionApplied = true
		score.ExceptionReason = fmt.Sprintf(
			"same nakshatra %s but different padas (%d and %d)",
			bride.Nakshatra, bride.Pada, groom.Pada,
		)
		return score
	}

	return score
}
