// Package vsop87 точный провайдер эфемерид: положения планет по полной
// теории VSOP87, Луна по усечённому ряду ELP, узлы по средней долготе.
// Требует файлы VSOP87B.* на диске; их отсутствие обнаруживается явной
// проверкой до старта.
package vsop87

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/pkg/astrotime"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/ephemeris"
)

const (
	kmPerAU = 149597870.7
	// lightTimeDays световое время на одну а.е. в сутках
	lightTimeDays = 0.0057755183
	// speedStepDays шаг центральной разности для скоростей
	speedStepDays = 0.5
)

// vsopFiles имена файлов данных для нужных тел
var vsopFiles = map[int]string{
	pp.Mercury: "VSOP87B.mer",
	pp.Venus:   "VSOP87B.ven",
	pp.Earth:   "VSOP87B.ear",
	pp.Mars:    "VSOP87B.mar",
	pp.Jupiter: "VSOP87B.jup",
	pp.Saturn:  "VSOP87B.sat",
}

// planetIndex тела, считаемые по VSOP87 напрямую
var planetIndex = map[domain.Planet]int{
	domain.Mercury: pp.Mercury,
	domain.Venus:   pp.Venus,
	domain.Mars:    pp.Mars,
	domain.Jupiter: pp.Jupiter,
	domain.Saturn:  pp.Saturn,
}

// CheckData проверяет наличие всех файлов VSOP87B в каталоге
func CheckData(dataDir string) error {
	for _, name := range vsopFiles {
		p := filepath.Join(dataDir, name)
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("vsop87 data file %s is not readable: %w", p, err)
		}
	}
	return nil
}

// DataFiles имена всех файлов данных VSOP87B в стабильном порядке
func DataFiles() []string {
	names := make([]string, 0, len(vsopFiles))
	for _, name := range vsopFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Provider реализация ephemeris.IProvider поверх VSOP87.
// После загрузки рядов не держит изменяемого состояния.
type Provider struct {
	earth  *pp.V87Planet
	bodies map[int]*pp.V87Planet
}

// New загружает ряды VSOP87 из каталога
func New(dataDir string) (*Provider, error) {
	bodies := make(map[int]*pp.V87Planet, len(vsopFiles))
	for ibody := range vsopFiles {
		v, err := pp.LoadPlanetPath(ibody, dataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load vsop87 series for body %d: %w", ibody, err)
		}
		bodies[ibody] = v
	}
	return &Provider{
		earth:  bodies[pp.Earth],
		bodies: bodies,
	}, nil
}

func (p *Provider) Name() string  { return "vsop87" }
func (p *Provider) Reduced() bool { return false }

// Position тропические эклиптические координаты тела на момент UTC
func (p *Provider) Position(body domain.Planet, instant time.Time) (ephemeris.BodyPosition, error) {
	jde := astrotime.JDE(instant)

	lon, lat, dist, err := p.apparent(body, jde)
	if err != nil {
		return ephemeris.BodyPosition{}, err
	}

	before, _, _, err := p.apparent(body, jde-speedStepDays)
	if err != nil {
		return ephemeris.BodyPosition{}, err
	}
	after, _, _, err := p.apparent(body, jde+speedStepDays)
	if err != nil {
		return ephemeris.BodyPosition{}, err
	}

	return ephemeris.BodyPosition{
		TropicalLongitude: lon,
		Latitude:          lat,
		Distance:          dist,
		SpeedPerDay:       signedDelta(after, before) / (2 * speedStepDays),
	}, nil
}

// apparent видимая геоцентрическая долгота, широта и расстояние тела
func (p *Provider) apparent(body domain.Planet, jde float64) (lonDeg, latDeg, distAU float64, err error) {
	switch body {
	case domain.Sun:
		lam, bet, r := solar.ApparentVSOP87(p.earth, jde)
		return base.PMod(lam.Deg(), 360), bet.Deg(), r, nil

	case domain.Moon:
		lam, bet, distKm := moonposition.Position(jde)
		dPsi, _ := nutation.Nutation(jde)
		return base.PMod(lam.Deg()+dPsi.Deg(), 360), bet.Deg(), distKm / kmPerAU, nil

	case domain.Rahu:
		T := astrotime.JulianCenturies(jde)
		return astrotime.MeanLunarNodeDeg(T), 0, 0, nil

	case domain.Ketu:
		T := astrotime.JulianCenturies(jde)
		return base.PMod(astrotime.MeanLunarNodeDeg(T)+180, 360), 0, 0, nil
	}

	ibody, ok := planetIndex[body]
	if !ok {
		return 0, 0, 0, fmt.Errorf("unknown ephemeris body %q", body)
	}
	lon, lat, dist := p.planetApparent(ibody, jde)
	return lon, lat, dist, nil
}

// planetApparent геоцентрическое видимое положение планеты: разность
// гелиоцентрических векторов с одной итерацией светового времени и
// нутацией по долготе
func (p *Provider) planetApparent(ibody int, jde float64) (lonDeg, latDeg, distAU float64) {
	ex, ey, ez := heliocentricRect(p.earth, jde)

	var dx, dy, dz, dist float64
	tau := 0.0
	for i := 0; i < 2; i++ {
		px, py, pz := heliocentricRect(p.bodies[ibody], jde-tau)
		dx, dy, dz = px-ex, py-ey, pz-ez
		dist = math.Sqrt(dx*dx + dy*dy + dz*dz)
		tau = lightTimeDays * dist
	}

	lon = math.Atan2(dy, dx) * 180 / math.Pi
	lat = math.Atan2(dz, math.Hypot(dx, dy)) * 180 / math.Pi

	dPsi, _ := nutation.Nutation(jde)
	return base.PMod(lon+dPsi.Deg(), 360), lat, dist
}

// heliocentricRect прямоугольные эклиптические координаты равноденствия
// даты
func heliocentricRect(v *pp.V87Planet, jde float64) (x, y, z float64) {
	L, B, R := v.Position(jde)
	cb := math.Cos(B.Rad())
	x = R * cb * math.Cos(L.Rad())
	y = R * cb * math.Sin(L.Rad())
	z = R * math.Sin(B.Rad())
	return x, y, z
}

// SiderealTime видимое местное звёздное время в градусах
func (p *Provider) SiderealTime(instant time.Time, longitudeDeg float64) (float64, error) {
	gast := sidereal.Apparent(astrotime.JD(instant))
	gastDeg := float64(gast) / 240 // 86400 секунд времени = 360°
	return base.PMod(gastDeg+longitudeDeg, 360), nil
}

// signedDelta разность долгот в диапазоне (-180,180]
func signedDelta(a, b float64) float64 {
	d := base.PMod(a-b, 360)
	if d > 180 {
		d -= 360
	}
	return d
}
