package match

import "github.com/admin/tg-bots/jyotish-engine/internal/domain"

// varna сословие знака Луны; водные знаки старше огненных, огненные —
// земных, земные — воздушных
type varna int

const (
	varnaShudra varna = iota
	varnaVaishya
	varnaKshatriya
	varnaBrahmin
)

var varnaNames = [4]string{"Shudra", "Vaishya", "Kshatriya", "Brahmin"}

func (v varna) String() string { return varnaNames[v] }

func varnaOfSign(s domain.Sign) varna {
	switch s {
	case domain.Cancer, domain.Scorpio, domain.Pisces:
		return varnaBrahmin
	case domain.Aries, domain.Leo, domain.Sagittarius:
		return varnaKshatriya
	case domain.Taurus, domain.Virgo, domain.Capricorn:
		return varnaVaishya
	default:
		return varnaShudra
	}
}

// vashya группа подчинения знака Луны
type vashya int

const (
	vashyaChatushpada vashya = iota
	vashyaManava
	vashyaJala
	vashyaVana
	vashyaKeeta
)

var vashyaNames = [5]string{"Chatushpada", "Manava", "Jala", "Vana", "Keeta"}

func (v vashya) String() string { return vashyaNames[v] }

func vashyaOfSign(s domain.Sign) vashya {
	switch s {
	case domain.Aries, domain.Taurus:
		return vashyaChatushpada
	case domain.Gemini, domain.Virgo, domain.Libra, domain.Sagittarius, domain.Aquarius:
		return vashyaManava
	case domain.Cancer, domain.Capricorn, domain.Pisces:
		return vashyaJala
	case domain.Leo:
		return vashyaVana
	default:
		return vashyaKeeta
	}
}

// vashyaPoints баллы по группам сторон; матрица симметрична
var vashyaPoints = [5][5]float64{
	{2, 1, 1, 0, 1},
	{1, 2, 0.5, 0, 1},
	{1, 0.5, 2, 1, 1},
	{0, 0, 1, 2, 0},
	{1, 1, 1, 0, 2},
}

// taraBad неблагоприятные тары: Випат, Пратьяри, Найдхана
var taraBad = map[int]bool{3: true, 5: true, 7: true}

// yoniIndex порядок животных в матрице йони
var yoniIndex = map[domain.Yoni]int{
	domain.YoniHorse:    0,
	domain.YoniElephant: 1,
	domain.YoniSheep:    2,
	domain.YoniSerpent:  3,
	domain.YoniDog:      4,
	domain.YoniCat:      5,
	domain.YoniRat:      6,
	domain.YoniCow:      7,
	domain.YoniBuffalo:  8,
	domain.YoniTiger:    9,
	domain.YoniDeer:     10,
	domain.YoniMonkey:   11,
	domain.YoniMongoose: 12,
	domain.YoniLion:     13,
}

// yoniPoints симметричная матрица совместимости животных, 0..4
var yoniPoints = [14][14]float64{
	{4, 2, 2, 3, 2, 2, 2, 1, 0, 1, 3, 3, 2, 1},
	{2, 4, 3, 3, 2, 2, 2, 2, 3, 1, 2, 3, 2, 0},
	{2, 3, 4, 2, 1, 2, 1, 3, 3, 1, 2, 0, 3, 1},
	{3, 3, 2, 4, 2, 1, 1, 1, 1, 2, 2, 2, 0, 2},
	{2, 2, 1, 2, 4, 2, 1, 2, 2, 1, 0, 2, 1, 1},
	{2, 2, 2, 1, 2, 4, 0, 2, 2, 1, 2, 3, 2, 1},
	{2, 2, 1, 1, 1, 0, 4, 2, 2, 2, 2, 2, 1, 2},
	{1, 2, 3, 1, 2, 2, 2, 4, 3, 0, 3, 2, 2, 1},
	{0, 3, 3, 1, 2, 2, 2, 3, 4, 1, 2, 2, 2, 1},
	{1, 1, 1, 2, 1, 1, 2, 0, 1, 4, 1, 1, 2, 1},
	{3, 2, 2, 2, 0, 2, 2, 3, 2, 1, 4, 2, 2, 1},
	{3, 3, 0, 2, 2, 3, 2, 2, 2, 1, 2, 4, 3, 2},
	{2, 2, 3, 0, 1, 2, 1, 2, 2, 2, 2, 3, 4, 2},
	{1, 0, 1, 2, 1, 1, 2, 1, 1, 1, 1, 2, 2, 4},
}

// ganaIndex порядок ган в матрице
var ganaIndex = map[domain.Gana]int{
	domain.GanaDeva:     0,
	domain.GanaManushya: 1,
	domain.GanaRakshasa: 2,
}

// ganaPoints баллы по ганам, строки — невеста, столбцы — жених;
// матрица несимметрична
var ganaPoints = [3][3]float64{
	{6, 5, 1},
	{6, 6, 0},
	{1, 0, 6},
}
