package domain

// Planet один из девяти грах ведической астрологии
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu"
	Ketu    Planet = "Ketu"
)

// Planets фиксированный порядок тел в карте (Сурья ... Кету)
var Planets = [9]Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

func (p Planet) IsValid() bool {
	switch p {
	case Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu:
		return true
	}
	return false
}

// IsNode возвращает true для теневых планет (лунных узлов)
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// NeverRetrograde тела, для которых ретроградность не отмечается:
// Солнце и Луна не бывают ретроградными, узлы движутся ретроградно всегда,
// поэтому по конвенции флаг для них не ставится.
func (p Planet) NeverRetrograde() bool {
	switch p {
	case Sun, Moon, Rahu, Ketu:
		return true
	}
	return false
}

// IsNaturalBenefic естественный благодетель (упрощённая конвенция без учёта
// фазы Луны и аффликции Меркурия)
func (p Planet) IsNaturalBenefic() bool {
	switch p {
	case Jupiter, Venus, Mercury, Moon:
		return true
	}
	return false
}

// IsNaturalMalefic естественный вредитель
func (p Planet) IsNaturalMalefic() bool {
	switch p {
	case Sun, Mars, Saturn, Rahu, Ketu:
		return true
	}
	return false
}

// Sign знак зодиака (раши), 1 = Овен ... 12 = Рыбы
type Sign int

const (
	Aries Sign = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) IsValid() bool {
	return s >= Aries && s <= Pisces
}

func (s Sign) String() string {
	if !s.IsValid() {
		return "?"
	}
	return signNames[s-1]
}

// Lord возвращает управителя знака
func (s Sign) Lord() Planet {
	return signLords[s-1]
}

// signLords классические управители знаков (без внешних планет)
var signLords = [12]Planet{
	Mars,    // Овен
	Venus,   // Телец
	Mercury, // Близнецы
	Moon,    // Рак
	Sun,     // Лев
	Mercury, // Дева
	Venus,   // Весы
	Mars,    // Скорпион
	Jupiter, // Стрелец
	Saturn,  // Козерог
	Saturn,  // Водолей
	Jupiter, // Рыбы
}

// SignFromLongitude переводит долготу [0,360) в знак
func SignFromLongitude(lon float64) Sign {
	return Sign(int(lon/30.0) + 1)
}

// SignDistance расстояние от знака a до знака b при счёте вперёд, 1..12
// (знак сам от себя — 1, как считают дома от Лагны)
func SignDistance(from, to Sign) int {
	d := (int(to) - int(from)) % 12
	if d < 0 {
		d += 12
	}
	return d + 1
}

// OwnSigns собственные знаки планеты
func (p Planet) OwnSigns() []Sign {
	switch p {
	case Sun:
		return []Sign{Leo}
	case Moon:
		return []Sign{Cancer}
	case Mars:
		return []Sign{Aries, Scorpio}
	case Mercury:
		return []Sign{Gemini, Virgo}
	case Jupiter:
		return []Sign{Sagittarius, Pisces}
	case Venus:
		return []Sign{Taurus, Libra}
	case Saturn:
		return []Sign{Capricorn, Aquarius}
	}
	return nil
}

// InOwnSign планета в собственном знаке
func (p Planet) InOwnSign(s Sign) bool {
	for _, own := range p.OwnSigns() {
		if own == s {
			return true
		}
	}
	return false
}

// exaltationSigns знаки экзальтации; дебилитация — противоположный знак.
// Для узлов принята конвенция Телец/Скорпион (варианты по разным текстам
// существуют, выбор зафиксирован в DESIGN.md).
var exaltationSigns = map[Planet]Sign{
	Sun:     Aries,
	Moon:    Taurus,
	Mars:    Capricorn,
	Mercury: Virgo,
	Jupiter: Cancer,
	Venus:   Pisces,
	Saturn:  Libra,
	Rahu:    Taurus,
	Ketu:    Scorpio,
}

// ExaltationSign знак экзальтации (ok=false, если не определён)
func (p Planet) ExaltationSign() (Sign, bool) {
	s, ok := exaltationSigns[p]
	return s, ok
}

// DebilitationSign знак дебилитации — седьмой от знака экзальтации
func (p Planet) DebilitationSign() (Sign, bool) {
	s, ok := exaltationSigns[p]
	if !ok {
		return 0, false
	}
	d := Sign(int(s) + 6)
	if d > Pisces {
		d -= 12
	}
	return d, true
}

// Relation естественное отношение планеты к другой планете
type Relation int

const (
	RelationEnemy Relation = iota - 1
	RelationNeutral
	RelationFriend
)

func (r Relation) String() string {
	switch r {
	case RelationFriend:
		return "friend"
	case RelationEnemy:
		return "enemy"
	}
	return "neutral"
}

// naturalFriends таблица найсаргика-майтри: друзья и враги каждой грахи,
// все остальные — нейтралы. Отношения узлов — по распространённой конвенции.
var naturalFriends = map[Planet][]Planet{
	Sun:     {Moon, Mars, Jupiter},
	Moon:    {Sun, Mercury},
	Mars:    {Sun, Moon, Jupiter},
	Mercury: {Sun, Venus},
	Jupiter: {Sun, Moon, Mars},
	Venus:   {Mercury, Saturn},
	Saturn:  {Mercury, Venus},
	Rahu:    {Mercury, Venus, Saturn},
	Ketu:    {Mars, Venus, Saturn},
}

var naturalEnemies = map[Planet][]Planet{
	Sun:     {Venus, Saturn},
	Moon:    {},
	Mars:    {Mercury},
	Mercury: {Moon},
	Jupiter: {Mercury, Venus},
	Venus:   {Sun, Moon},
	Saturn:  {Sun, Moon, Mars},
	Rahu:    {Sun, Moon, Mars},
	Ketu:    {Sun, Moon},
}

// RelationTo отношение p к other по таблице естественной дружбы
func (p Planet) RelationTo(other Planet) Relation {
	if p == other {
		return RelationFriend
	}
	for _, f := range naturalFriends[p] {
		if f == other {
			return RelationFriend
		}
	}
	for _, e := range naturalEnemies[p] {
		if e == other {
			return RelationEnemy
		}
	}
	return RelationNeutral
}

// CombustionOrb порог сожжения в градусах от Солнца; 0 — не сжигается.
// Классические значения; для ретроградных Меркурия и Венеры порог уже.
func CombustionOrb(p Planet, retrograde bool) float64 {
	switch p {
	case Moon:
		return 12
	case Mars:
		return 17
	case Mercury:
		if retrograde {
			return 12
		}
		return 14
	case Jupiter:
		return 11
	case Venus:
		if retrograde {
			return 8
		}
		return 10
	case Saturn:
		return 15
	}
	return 0
}
