package domain

// PlanetPosition положение одной грахи в карте
type PlanetPosition struct {
	Planet       Planet    `json:"planet"`
	Longitude    float64   `json:"longitude"` // сидерическая, [0,360)
	Latitude     float64   `json:"latitude"`  // эклиптическая широта
	Sign         Sign      `json:"sign"`
	SignName     string    `json:"sign_name"`
	DegreeInSign float64   `json:"degree_in_sign"` // [0,30)
	Nakshatra    Nakshatra `json:"nakshatra"`
	Pada         int       `json:"pada"` // 1..4
	House        int       `json:"house,omitempty"`
	SpeedPerDay  float64   `json:"speed_per_day"`
	Retrograde   bool      `json:"retrograde"`
	Combust      bool      `json:"combust"`
}

// NakshatraInfo производные данные накшатры для вывода
func (p PlanetPosition) NakshatraInfo() NakshatraData {
	return NakshatraData{
		Index: p.Nakshatra,
		Name:  p.Nakshatra.String(),
		Lord:  p.Nakshatra.Lord(),
		Pada:  p.Pada,
	}
}

// NakshatraData имя, управитель и пада накшатры; всегда выводится из
// долготы, отдельно не хранится
type NakshatraData struct {
	Index Nakshatra `json:"index"`
	Name  string    `json:"name"`
	Lord  Planet    `json:"lord"`
	Pada  int       `json:"pada"`
}

// HouseData один дом карты
type HouseData struct {
	Number int     `json:"number"` // 1..12
	Sign   Sign    `json:"sign"`
	Lord   Planet  `json:"lord"`
	Cusp   float64 `json:"cusp"` // сидерическая долгота куспида
}

// Ascendant Лагна: восходящий знак и градус
type Ascendant struct {
	Longitude    float64 `json:"longitude"`
	Sign         Sign    `json:"sign"`
	SignName     string  `json:"sign_name"`
	DegreeInSign float64 `json:"degree_in_sign"`
	Nakshatra    Nakshatra `json:"nakshatra"`
	Pada         int       `json:"pada"`
}

// ChartData полная натальная карта. Считается один раз на тройку
// (рождение, аянамса, система домов) и далее неизменна; все срезы
// упорядочены, чтобы сериализация была побайтово воспроизводимой.
type ChartData struct {
	Birth       BirthDetails `json:"birth"`
	Ayanamsa    Ayanamsa     `json:"ayanamsa"`
	HouseSystem HouseSystem  `json:"house_system"`

	// AyanamsaValue применённая поправка в градусах на момент рождения
	AyanamsaValue float64 `json:"ayanamsa_value"`

	// TimeKnown false в режиме "время неизвестно": Ascendant и Houses
	// пусты, поле House у планет не заполняется
	TimeKnown bool `json:"time_known"`

	Ascendant *Ascendant       `json:"ascendant,omitempty"`
	Planets   []PlanetPosition `json:"planets"` // фиксированный порядок: Сурья..Кету
	Houses    []HouseData      `json:"houses,omitempty"`

	// ReducedPrecision true, если позиции считал упрощённый провайдер
	ReducedPrecision bool `json:"reduced_precision"`
}

// Position позиция планеты в карте (ok=false, если тело не найдено)
func (c *ChartData) Position(p Planet) (PlanetPosition, bool) {
	for _, pos := range c.Planets {
		if pos.Planet == p {
			return pos, true
		}
	}
	return PlanetPosition{}, false
}

// MoonPosition положение Луны; паникует при пустой карте, собранной мимо
// движка — в собранных движком картах Луна есть всегда
func (c *ChartData) MoonPosition() PlanetPosition {
	pos, ok := c.Position(Moon)
	if !ok {
		panic("chart has no Moon position")
	}
	return pos
}

// HouseOf дом, считая от знака from, в котором стоит знак s
func HouseOf(s, from Sign) int {
	return SignDistance(from, s)
}

// PlanetsInHouse перечисляет грахи, занимающие дом n
func (c *ChartData) PlanetsInHouse(n int) []Planet {
	var out []Planet
	for _, pos := range c.Planets {
		if pos.House == n {
			out = append(out, pos.Planet)
		}
	}
	return out
}
