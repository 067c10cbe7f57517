package chart

import (
	"math"

	"github.com/soniakeys/meeus/v3/nutation"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

func rad(deg float64) float64 { return deg * math.Pi / 180 }
func deg(rad float64) float64 { return rad * 180 / math.Pi }

// trueObliquityDeg истинный наклон эклиптики на юлианскую эфемеридную дату
func trueObliquityDeg(jde float64) float64 {
	_, deltaEps := nutation.Nutation(jde)
	return nutation.MeanObliquity(jde).Deg() + deltaEps.Deg()
}

// ascendantTropical тропическая долгота Лагны по местному звёздному
// времени (RAMC, градусы), широте и наклону эклиптики
func ascendantTropical(ramcDeg, latDeg, epsDeg float64) float64 {
	ramc, lat, eps := rad(ramcDeg), rad(latDeg), rad(epsDeg)
	asc := math.Atan2(
		math.Cos(ramc),
		-(math.Sin(ramc)*math.Cos(eps) + math.Tan(lat)*math.Sin(eps)),
	)
	return norm360(deg(asc))
}

// mcTropical тропическая долгота середины неба
func mcTropical(ramcDeg, epsDeg float64) float64 {
	ramc, eps := rad(ramcDeg), rad(epsDeg)
	mc := math.Atan2(math.Sin(ramc), math.Cos(ramc)*math.Cos(eps))
	return norm360(deg(mc))
}

// eclipticLonOfRA долгота точки эклиптики с прямым восхождением ra
func eclipticLonOfRA(raDeg, epsDeg float64) float64 {
	ra, eps := rad(raDeg), rad(epsDeg)
	lon := math.Atan2(math.Sin(ra), math.Cos(ra)*math.Cos(eps))
	return norm360(deg(lon))
}

// placidusPolarLimit широта, выше которой плацидовы куспиды не определены
func placidusPolarLimit(epsDeg float64) float64 {
	return 90 - epsDeg
}

// placidusIntermediate ищет куспид итерацией по прямому восхождению:
// точка делит свою полудугу в отношении fraction. seedOffset — стартовое
// приближение от RAMC; belowHorizon false для домов 11 и 12, true для
// домов 2 и 3.
func placidusIntermediate(ramcDeg, latDeg, epsDeg, seedOffset, fraction float64, belowHorizon bool) (float64, error) {
	lat, eps := rad(latDeg), rad(epsDeg)

	ra := ramcDeg + seedOffset
	for i := 0; i < 30; i++ {
		lon := eclipticLonOfRA(ra, epsDeg)
		delta := math.Asin(math.Sin(eps) * math.Sin(rad(lon)))

		x := -math.Tan(lat) * math.Tan(delta)
		if x < -1 || x > 1 {
			return 0, domain.NewValidationError("latitude",
				"placidus cusps are undefined at this latitude, use whole_sign or equal")
		}
		semiDiurnal := deg(math.Acos(x)) // дневная полудуга
		var target float64
		if belowHorizon {
			semiNocturnal := 180 - semiDiurnal
			target = semiDiurnal + fraction*semiNocturnal
		} else {
			target = fraction * semiDiurnal
		}

		next := ramcDeg + target
		if math.Abs(next-ra) < 1e-9 {
			ra = next
			break
		}
		ra = next
	}

	return eclipticLonOfRA(ra, epsDeg), nil
}

// placidusCusps двенадцать тропических куспидов Плацида; широты за
// полярным пределом — ошибка, а не молчаливый откат к другой системе
func placidusCusps(ramcDeg, latDeg, epsDeg float64) ([12]float64, error) {
	var cusps [12]float64

	if math.Abs(latDeg) >= placidusPolarLimit(epsDeg) {
		return cusps, domain.NewValidationError("latitude",
			"placidus cusps are undefined at polar latitudes, use whole_sign or equal")
	}

	asc := ascendantTropical(ramcDeg, latDeg, epsDeg)
	mc := mcTropical(ramcDeg, epsDeg)

	c11, err := placidusIntermediate(ramcDeg, latDeg, epsDeg, 30, 1.0/3, false)
	if err != nil {
		return cusps, err
	}
	c12, err := placidusIntermediate(ramcDeg, latDeg, epsDeg, 60, 2.0/3, false)
	if err != nil {
		return cusps, err
	}
	c2, err := placidusIntermediate(ramcDeg, latDeg, epsDeg, 120, 1.0/3, true)
	if err != nil {
		return cusps, err
	}
	c3, err := placidusIntermediate(ramcDeg, latDeg, epsDeg, 150, 2.0/3, true)
	if err != nil {
		return cusps, err
	}

	cusps[0] = asc
	cusps[1] = c2
	cusps[2] = c3
	cusps[3] = norm360(mc + 180)
	cusps[4] = norm360(c11 + 180)
	cusps[5] = norm360(c12 + 180)
	cusps[6] = norm360(asc + 180)
	cusps[7] = norm360(c2 + 180)
	cusps[8] = norm360(c3 + 180)
	cusps[9] = mc
	cusps[10] = c11
	cusps[11] = c12

	return cusps, nil
}

// equalCusps куспиды равнодомной системы от Лагны
func equalCusps(ascLon float64) [12]float64 {
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = norm360(ascLon + float64(i)*30)
	}
	return cusps
}

// wholeSignCusps куспиды целознаковой системы: начала знаков от
// восходящего
func wholeSignCusps(ascSign domain.Sign) [12]float64 {
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = norm360(float64(int(ascSign)-1+i) * 30)
	}
	return cusps
}

// houseOfLongitude дом долготы по куспидам: интервал [cusp_i, cusp_i+1)
// по ходу зодиака
func houseOfLongitude(lon float64, cusps [12]float64) int {
	for i := 0; i < 12; i++ {
		next := cusps[(i+1)%12]
		width := norm360(next - cusps[i])
		offset := norm360(lon - cusps[i])
		if offset < width {
			return i + 1
		}
	}
	// возможно только при вырожденных куспидах
	return 1
}

// houseBySignCount дом по счёту знаков от восходящего
func houseBySignCount(sign, ascSign domain.Sign) int {
	return domain.SignDistance(ascSign, sign)
}

// buildHouses двенадцать домов с их знаками и управителями
func buildHouses(system domain.HouseSystem, ascSign domain.Sign, cusps [12]float64) []domain.HouseData {
	houses := make([]domain.HouseData, 12)
	for i := 0; i < 12; i++ {
		var sign domain.Sign
		if system == domain.HouseWholeSign {
			sign = domain.Sign((int(ascSign)-1+i)%12 + 1)
		} else {
			sign = domain.SignFromLongitude(cusps[i])
		}
		houses[i] = domain.HouseData{
			Number: i + 1,
			Sign:   sign,
			Lord:   sign.Lord(),
			Cusp:   cusps[i],
		}
	}
	return houses
}
