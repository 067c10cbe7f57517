package domain

// Nakshatra номер лунной стоянки, 0 = Ашвини ... 26 = Ревати.
// Каждая накшатра занимает 13°20' сидерической эклиптики и делится
// на четыре пады по 3°20'.
type Nakshatra int

const (
	NakshatraSpan = 360.0 / 27.0 // 13°20'
	PadaSpan      = NakshatraSpan / 4.0
)

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

func (n Nakshatra) IsValid() bool {
	return n >= 0 && n <= 26
}

func (n Nakshatra) String() string {
	if !n.IsValid() {
		return "?"
	}
	return nakshatraNames[n]
}

// Number порядковый номер 1..27, как принято в панчангах
func (n Nakshatra) Number() int {
	return int(n) + 1
}

// nakshatraLords управители накшатр в порядке Вимшоттари:
// цикл Кету-Венера-Солнце-Луна-Марс-Раху-Юпитер-Сатурн-Меркурий
// повторяется трижды начиная с Ашвини.
var nakshatraLords = [9]Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// Lord управитель накшатры по схеме Вимшоттари
func (n Nakshatra) Lord() Planet {
	return nakshatraLords[int(n)%9]
}

// NakshatraFromLongitude накшатра и пада (1..4) по сидерической долготе
func NakshatraFromLongitude(lon float64) (Nakshatra, int) {
	n := Nakshatra(int(lon / NakshatraSpan))
	if n > 26 {
		n = 26
	}
	pada := int((lon-float64(n)*NakshatraSpan)/PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	return n, pada
}

// Gana темперамент накшатры для гана-куты
type Gana string

const (
	GanaDeva     Gana = "Deva"
	GanaManushya Gana = "Manushya"
	GanaRakshasa Gana = "Rakshasa"
)

// ganaByNakshatra классификация по ганам
var ganaByNakshatra = [27]Gana{
	GanaDeva,     // Ашвини
	GanaManushya, // Бхарани
	GanaRakshasa, // Криттика
	GanaManushya, // Рохини
	GanaDeva,     // Мригашира
	GanaManushya, // Ардра
	GanaDeva,     // Пунарвасу
	GanaDeva,     // Пушья
	GanaRakshasa, // Ашлеша
	GanaRakshasa, // Магха
	GanaManushya, // Пурва Пхалгуни
	GanaManushya, // Уттара Пхалгуни
	GanaDeva,     // Хаста
	GanaRakshasa, // Читра
	GanaDeva,     // Свати
	GanaRakshasa, // Вишакха
	GanaDeva,     // Анурадха
	GanaRakshasa, // Джьештха
	GanaRakshasa, // Мула
	GanaManushya, // Пурва Ашадха
	GanaManushya, // Уттара Ашадха
	GanaDeva,     // Шравана
	GanaRakshasa, // Дхаништха
	GanaRakshasa, // Шатабхиша
	GanaManushya, // Пурва Бхадрапада
	GanaManushya, // Уттара Бхадрапада
	GanaDeva,     // Ревати
}

func (n Nakshatra) Gana() Gana {
	return ganaByNakshatra[n]
}

// Nadi конституция накшатры для нади-куты
type Nadi string

const (
	NadiAadi   Nadi = "Aadi"
	NadiMadhya Nadi = "Madhya"
	NadiAntya  Nadi = "Antya"
)

// nadiByNakshatra цикл Ади-Мадхья-Антья-Антья-Мадхья-Ади по шесть накшатр
var nadiByNakshatra = [27]Nadi{
	NadiAadi, NadiMadhya, NadiAntya, NadiAntya, NadiMadhya, NadiAadi,
	NadiAadi, NadiMadhya, NadiAntya, NadiAntya, NadiMadhya, NadiAadi,
	NadiAadi, NadiMadhya, NadiAntya, NadiAntya, NadiMadhya, NadiAadi,
	NadiAadi, NadiMadhya, NadiAntya, NadiAntya, NadiMadhya, NadiAadi,
	NadiAadi, NadiMadhya, NadiAntya,
}

func (n Nakshatra) Nadi() Nadi {
	return nadiByNakshatra[n]
}

// Yoni животный символ накшатры для йони-куты
type Yoni string

const (
	YoniHorse    Yoni = "Horse"
	YoniElephant Yoni = "Elephant"
	YoniSheep    Yoni = "Sheep"
	YoniSerpent  Yoni = "Serpent"
	YoniDog      Yoni = "Dog"
	YoniCat      Yoni = "Cat"
	YoniRat      Yoni = "Rat"
	YoniCow      Yoni = "Cow"
	YoniBuffalo  Yoni = "Buffalo"
	YoniTiger    Yoni = "Tiger"
	YoniDeer     Yoni = "Deer"
	YoniMonkey   Yoni = "Monkey"
	YoniMongoose Yoni = "Mongoose"
	YoniLion     Yoni = "Lion"
)

// yoniByNakshatra животное каждой накшатры (пол в куте не участвует,
// матрица совместимости симметрична)
var yoniByNakshatra = [27]Yoni{
	YoniHorse,    // Ашвини
	YoniElephant, // Бхарани
	YoniSheep,    // Криттика
	YoniSerpent,  // Рохини
	YoniSerpent,  // Мригашира
	YoniDog,      // Ардра
	YoniCat,      // Пунарвасу
	YoniSheep,    // Пушья
	YoniCat,      // Ашлеша
	YoniRat,      // Магха
	YoniRat,      // Пурва Пхалгуни
	YoniCow,      // Уттара Пхалгуни
	YoniBuffalo,  // Хаста
	YoniTiger,    // Читра
	YoniBuffalo,  // Свати
	YoniTiger,    // Вишакха
	YoniDeer,     // Анурадха
	YoniDeer,     // Джьештха
	YoniDog,      // Мула
	YoniMonkey,   // Пурва Ашадха
	YoniMongoose, // Уттара Ашадха
	YoniMonkey,   // Шравана
	YoniLion,     // Дхаништха
	YoniHorse,    // Шатабхиша
	YoniLion,     // Пурва Бхадрапада
	YoniCow,      // Уттара Бхадрапада
	YoniElephant, // Ревати
}

func (n Nakshatra) Yoni() Yoni {
	return yoniByNakshatra[n]
}
