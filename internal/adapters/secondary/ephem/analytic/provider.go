// Package analytic упрощённый провайдер эфемерид: средние кеплеровы
// элементы с основными возмущениями. Не требует внешних данных; точность
// порядка угловых минут, поэтому все производные результаты помечаются
// флагом reduced_precision.
package analytic

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/sidereal"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/pkg/astrotime"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/ephemeris"
)

const (
	// epochJD эпоха элементов: 2000 января 0.0
	epochJD = 2451543.5
	// earthRadiusAU средний радиус Земли в а.е., для расстояния до Луны
	earthRadiusAU = 6371.0 / 149597870.7

	speedStepDays = 0.5
)

// Provider реализация ephemeris.IProvider на средних элементах
type Provider struct{}

func New() *Provider { return &Provider{} }

func (p *Provider) Name() string  { return "analytic" }
func (p *Provider) Reduced() bool { return true }

func rad(d float64) float64 { return d * math.Pi / 180 }
func deg(r float64) float64 { return r * 180 / math.Pi }

func sind(d float64) float64 { return math.Sin(rad(d)) }
func cosd(d float64) float64 { return math.Cos(rad(d)) }

// orbit средние кеплеровы элементы на момент d суток от эпохи
type orbit struct {
	N float64 // долгота восходящего узла
	i float64 // наклонение
	w float64 // аргумент перигелия
	a float64 // большая полуось, а.е. (для Луны — радиусы Земли)
	e float64 // эксцентриситет
	M float64 // средняя аномалия
}

func sunOrbit(d float64) orbit {
	return orbit{
		N: 0, i: 0,
		w: 282.9404 + 4.70935e-5*d,
		a: 1.0,
		e: 0.016709 - 1.151e-9*d,
		M: 356.0470 + 0.9856002585*d,
	}
}

func moonOrbit(d float64) orbit {
	return orbit{
		N: 125.1228 - 0.0529538083*d,
		i: 5.1454,
		w: 318.0634 + 0.1643573223*d,
		a: 60.2666,
		e: 0.054900,
		M: 115.3654 + 13.0649929509*d,
	}
}

func planetOrbit(body domain.Planet, d float64) (orbit, bool) {
	switch body {
	case domain.Mercury:
		return orbit{
			N: 48.3313 + 3.24587e-5*d,
			i: 7.0047 + 5.00e-8*d,
			w: 29.1241 + 1.01444e-5*d,
			a: 0.387098,
			e: 0.205635 + 5.59e-10*d,
			M: 168.6562 + 4.0923344368*d,
		}, true
	case domain.Venus:
		return orbit{
			N: 76.6799 + 2.46590e-5*d,
			i: 3.3946 + 2.75e-8*d,
			w: 54.8910 + 1.38374e-5*d,
			a: 0.723330,
			e: 0.006773 - 1.302e-9*d,
			M: 48.0052 + 1.6021302244*d,
		}, true
	case domain.Mars:
		return orbit{
			N: 49.5574 + 2.11081e-5*d,
			i: 1.8497 - 1.78e-8*d,
			w: 286.5016 + 2.92961e-5*d,
			a: 1.523688,
			e: 0.093405 + 2.516e-9*d,
			M: 18.6021 + 0.5240207766*d,
		}, true
	case domain.Jupiter:
		return orbit{
			N: 100.4542 + 2.76854e-5*d,
			i: 1.3030 - 1.557e-7*d,
			w: 273.8777 + 1.64505e-5*d,
			a: 5.20256,
			e: 0.048498 + 4.469e-9*d,
			M: 19.8950 + 0.0830853001*d,
		}, true
	case domain.Saturn:
		return orbit{
			N: 113.6634 + 2.38980e-5*d,
			i: 2.4886 - 1.081e-7*d,
			w: 339.3939 + 2.97661e-5*d,
			a: 9.55475,
			e: 0.055546 - 9.499e-9*d,
			M: 316.9670 + 0.0334442282*d,
		}, true
	}
	return orbit{}, false
}

// solveKepler эксцентрическая аномалия итерацией Ньютона, аргументы и
// результат в градусах
func solveKepler(M, e float64) float64 {
	Mr := rad(base.PMod(M, 360))
	E := Mr + e*math.Sin(Mr)*(1+e*math.Cos(Mr))
	for i := 0; i < 20; i++ {
		dE := (E - e*math.Sin(E) - Mr) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-10 {
			break
		}
	}
	return deg(E)
}

// heliocentric положение тела на своей орбите в эклиптических
// прямоугольных координатах (для Луны — геоцентрических)
func (o orbit) heliocentric() (x, y, z, r float64) {
	E := solveKepler(o.M, o.e)
	xv := o.a * (cosd(E) - o.e)
	yv := o.a * math.Sqrt(1-o.e*o.e) * sind(E)
	v := deg(math.Atan2(yv, xv))
	r = math.Hypot(xv, yv)

	u := v + o.w // аргумент широты
	x = r * (cosd(o.N)*cosd(u) - sind(o.N)*sind(u)*cosd(o.i))
	y = r * (sind(o.N)*cosd(u) + cosd(o.N)*sind(u)*cosd(o.i))
	z = r * sind(u) * sind(o.i)
	return x, y, z, r
}

// sunLongitude истинная геоцентрическая долгота Солнца и расстояние
func sunLongitude(d float64) (lon, r float64) {
	o := sunOrbit(d)
	E := solveKepler(o.M, o.e)
	xv := cosd(E) - o.e
	yv := math.Sqrt(1-o.e*o.e) * sind(E)
	v := deg(math.Atan2(yv, xv))
	return base.PMod(v+o.w, 360), math.Hypot(xv, yv)
}

// moonPosition геоцентрическая долгота и широта Луны с основными
// возмущениями: эвекция, вариация, годичное уравнение и далее по списку
func moonPosition(d float64) (lon, lat, distER float64) {
	mo := moonOrbit(d)
	so := sunOrbit(d)

	x, y, z, r := mo.heliocentric()
	lon = base.PMod(deg(math.Atan2(y, x)), 360)
	lat = deg(math.Atan2(z, math.Hypot(x, y)))

	Ls := base.PMod(so.M+so.w, 360)      // средняя долгота Солнца
	Lm := base.PMod(mo.M+mo.w+mo.N, 360) // средняя долгота Луны
	Ms := so.M
	Mm := mo.M
	D := Lm - Ls      // средняя элонгация
	F := Lm - mo.N    // аргумент широты

	lon += -1.274*sind(Mm-2*D) +
		0.658*sind(2*D) -
		0.186*sind(Ms) -
		0.059*sind(2*Mm-2*D) -
		0.057*sind(Mm-2*D+Ms) +
		0.053*sind(Mm+2*D) +
		0.046*sind(2*D-Ms) +
		0.041*sind(Mm-Ms) -
		0.035*sind(D) -
		0.031*sind(Mm+Ms) -
		0.015*sind(2*F-2*D) +
		0.011*sind(Mm-4*D)

	lat += -0.173*sind(F-2*D) -
		0.055*sind(Mm-F-2*D) -
		0.046*sind(Mm+F-2*D) +
		0.033*sind(F+2*D) +
		0.017*sind(2*Mm+F)

	return base.PMod(lon, 360), lat, r
}

// jupiterSaturnPerturbations поправки к долготам Юпитера и Сатурна от
// их взаимного резонанса
func jupiterSaturnPerturbations(body domain.Planet, d float64) (dLon, dLat float64) {
	Mj := jupiterM(d)
	Ms := saturnM(d)
	switch body {
	case domain.Jupiter:
		dLon = -0.332*sind(2*Mj-5*Ms-67.6) -
			0.056*sind(2*Mj-2*Ms+21) +
			0.042*sind(3*Mj-5*Ms+21) -
			0.036*sind(Mj-2*Ms) +
			0.022*cosd(Mj-Ms) +
			0.023*sind(2*Mj-3*Ms+52) -
			0.016*sind(Mj-5*Ms-69)
	case domain.Saturn:
		dLon = 0.812*sind(2*Mj-5*Ms-67.6) -
			0.229*cosd(2*Mj-4*Ms-2) +
			0.119*sind(Mj-2*Ms-3) +
			0.046*sind(2*Mj-6*Ms-69) +
			0.014*sind(Mj-3*Ms+32)
		dLat = -0.020*cosd(2*Mj-4*Ms-2) +
			0.018*sind(2*Mj-6*Ms-49)
	}
	return dLon, dLat
}

func jupiterM(d float64) float64 { return 19.8950 + 0.0830853001*d }
func saturnM(d float64) float64  { return 316.9670 + 0.0334442282*d }

// geocentric видимые геоцентрические координаты тела на d суток от эпохи
func geocentric(body domain.Planet, d float64) (lon, lat, dist float64, err error) {
	switch body {
	case domain.Sun:
		lon, r := sunLongitude(d)
		return lon, 0, r, nil

	case domain.Moon:
		lon, lat, distER := moonPosition(d)
		return lon, lat, distER * earthRadiusAU, nil

	case domain.Rahu:
		T := (d + epochJD - base.J2000) / base.JulianCentury
		return astrotime.MeanLunarNodeDeg(T), 0, 0, nil

	case domain.Ketu:
		T := (d + epochJD - base.J2000) / base.JulianCentury
		return base.PMod(astrotime.MeanLunarNodeDeg(T)+180, 360), 0, 0, nil
	}

	o, ok := planetOrbit(body, d)
	if !ok {
		return 0, 0, 0, fmt.Errorf("unknown ephemeris body %q", body)
	}

	xh, yh, zh, _ := o.heliocentric()

	dLon, dLat := jupiterSaturnPerturbations(body, d)
	if dLon != 0 || dLat != 0 {
		hLon := deg(math.Atan2(yh, xh)) + dLon
		hLat := deg(math.Atan2(zh, math.Hypot(xh, yh))) + dLat
		hr := math.Sqrt(xh*xh + yh*yh + zh*zh)
		xh = hr * cosd(hLon) * cosd(hLat)
		yh = hr * sind(hLon) * cosd(hLat)
		zh = hr * sind(hLat)
	}

	sLon, sr := sunLongitude(d)
	xg := xh + sr*cosd(sLon)
	yg := yh + sr*sind(sLon)
	zg := zh

	lon = base.PMod(deg(math.Atan2(yg, xg)), 360)
	lat = deg(math.Atan2(zg, math.Hypot(xg, yg)))
	dist = math.Sqrt(xg*xg + yg*yg + zg*zg)
	return lon, lat, dist, nil
}

// Position тропические координаты тела на момент UTC
func (p *Provider) Position(body domain.Planet, instant time.Time) (ephemeris.BodyPosition, error) {
	d := astrotime.JDE(instant) - epochJD

	lon, lat, dist, err := geocentric(body, d)
	if err != nil {
		return ephemeris.BodyPosition{}, err
	}
	before, _, _, err := geocentric(body, d-speedStepDays)
	if err != nil {
		return ephemeris.BodyPosition{}, err
	}
	after, _, _, err := geocentric(body, d+speedStepDays)
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

// SiderealTime видимое местное звёздное время в градусах
func (p *Provider) SiderealTime(instant time.Time, longitudeDeg float64) (float64, error) {
	gast := sidereal.Apparent(astrotime.JD(instant))
	gastDeg := float64(gast) / 240
	return base.PMod(gastDeg+longitudeDeg, 360), nil
}

func signedDelta(a, b float64) float64 {
	d := base.PMod(a-b, 360)
	if d > 180 {
		d -= 360
	}
	return d
}
