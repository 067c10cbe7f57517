package rules

import (
	"fmt"
	"math"
	"time"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

// rule замыкание с метаданными; все правила реестра построены на нём
type rule struct {
	id          string
	needsHouses bool
	evaluate    func(c *domain.ChartData, asOf *time.Time) (*domain.RuleFinding, error)
}

func (r rule) ID() string        { return r.id }
func (r rule) NeedsHouses() bool { return r.needsHouses }

func (r rule) Evaluate(c *domain.ChartData, asOf *time.Time) (*domain.RuleFinding, error) {
	return r.evaluate(c, asOf)
}

// yogaFinding каркас находки-йоги; Severity у благоприятных йог
// остаётся none
func yogaFinding(id, name string, evidence []string, conf domain.Confidence) *domain.RuleFinding {
	return &domain.RuleFinding{
		RuleID:     id,
		Name:       name,
		Kind:       domain.RuleYoga,
		Evidence:   evidence,
		Severity:   domain.SeverityNone,
		Confidence: conf,
	}
}

var (
	kendras  = map[int]bool{1: true, 4: true, 7: true, 10: true}
	trikonas = map[int]bool{1: true, 5: true, 9: true}
)

// houseLord управитель дома n по знаку на куспиде
func houseLord(c *domain.ChartData, n int) domain.Planet {
	return c.Houses[n-1].Lord
}

// occupantsFrom грахи из выборки include, стоящие в доме n от знака ref
func occupantsFrom(c *domain.ChartData, ref domain.Sign, n int, include func(domain.Planet) bool) []domain.PlanetPosition {
	var out []domain.PlanetPosition
	for _, pos := range c.Planets {
		if !include(pos.Planet) {
			continue
		}
		if domain.HouseOf(pos.Sign, ref) == n {
			out = append(out, pos)
		}
	}
	return out
}

func benefic(p domain.Planet) bool { return p.IsNaturalBenefic() }
func malefic(p domain.Planet) bool { return p.IsNaturalMalefic() }

// taraGraha пять планет без светил и узлов; именно они учитываются в
// йогах обрамления Луны и Солнца
func taraGraha(p domain.Planet) bool {
	return p != domain.Sun && p != domain.Moon && !p.IsNode()
}

// describe позиция грахи для Evidence
func describe(pos domain.PlanetPosition) string {
	if pos.House > 0 {
		return fmt.Sprintf("%s in %s (house %d)", pos.Planet, pos.SignName, pos.House)
	}
	return fmt.Sprintf("%s in %s", pos.Planet, pos.SignName)
}

// ordinal английский порядковый суффикс для номеров домов 1..12
func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", n)
}

// separation угловое расстояние между долготами, 0..180
func separation(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// norm360 приводит угол к [0,360)
func norm360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
