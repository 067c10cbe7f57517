package domain

import "time"

// Paksha половина лунного месяца
type Paksha string

const (
	PakshaShukla  Paksha = "Shukla"  // растущая Луна
	PakshaKrishna Paksha = "Krishna" // убывающая
)

// tithiNames имена титх внутри пакши; пятнадцатая — Пурнима либо Амавасья
var tithiNames = [14]string{
	"Pratipada", "Dvitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi",
}

// Tithi лунные сутки, индекс 0..29 от новолуния
type Tithi struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Paksha Paksha `json:"paksha"`
}

// TithiFromIndex имя и пакша по индексу титхи
func TithiFromIndex(idx int) Tithi {
	t := Tithi{Index: idx}
	inPaksha := idx % 15
	if idx < 15 {
		t.Paksha = PakshaShukla
	} else {
		t.Paksha = PakshaKrishna
	}
	switch {
	case inPaksha < 14:
		t.Name = tithiNames[inPaksha]
	case t.Paksha == PakshaShukla:
		t.Name = "Purnima"
	default:
		t.Name = "Amavasya"
	}
	return t
}

// yogaNames 27 нитья-йог панчанги
var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// PanchangYoga нитья-йога (сумма долгот Солнца и Луны), индекс 0..26
type PanchangYoga struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

func PanchangYogaFromIndex(idx int) PanchangYoga {
	return PanchangYoga{Index: idx, Name: yogaNames[idx]}
}

// movableKaranas семь подвижных каран, цикл повторяется восемь раз
var movableKaranas = [7]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
}

// Karana половина титхи, индекс 0..59 внутри лунного месяца
type Karana struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// KaranaFromIndex имя караны: первая половина Пратипады и три последних
// полутитхи месяца — неподвижные караны, остальные 56 — цикл подвижных
func KaranaFromIndex(idx int) Karana {
	k := Karana{Index: idx}
	switch {
	case idx == 0:
		k.Name = "Kimstughna"
	case idx <= 56:
		k.Name = movableKaranas[(idx-1)%7]
	case idx == 57:
		k.Name = "Shakuni"
	case idx == 58:
		k.Name = "Chatushpada"
	default:
		k.Name = "Naga"
	}
	return k
}

// varaNames дни недели, начиная с воскресенья, и их управители
var varaNames = [7]string{
	"Ravivara", "Somavara", "Mangalavara", "Budhavara",
	"Guruvara", "Shukravara", "Shanivara",
}

var varaLords = [7]Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// Vara день недели по локальному календарю
type Vara struct {
	Index int    `json:"index"` // 0 = воскресенье
	Name  string `json:"name"`
	Lord  Planet `json:"lord"`
}

func VaraFromWeekday(wd time.Weekday) Vara {
	return Vara{Index: int(wd), Name: varaNames[wd], Lord: varaLords[wd]}
}

// PanchangRequest дата и место для расчёта панчанги. Время опционально:
// без него берётся fallbackHour локального дня.
type PanchangRequest struct {
	Date      string   `json:"date"`
	Time      *string  `json:"time,omitempty"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Timezone  string   `json:"timezone"`
}

// Validate переиспользует проверки BirthDetails в режиме без времени
func (r PanchangRequest) Validate() error {
	b := BirthDetails{
		Date:      r.Date,
		Time:      r.Time,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timezone:  r.Timezone,
		TimeUnknown: r.Time == nil,
	}
	return b.Validate()
}

// Instant момент расчёта в UTC
func (r PanchangRequest) Instant() (time.Time, error) {
	b := BirthDetails{
		Date:      r.Date,
		Time:      r.Time,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timezone:  r.Timezone,
		TimeUnknown: r.Time == nil,
	}
	return b.UTCInstant()
}

// PanchangData пять членов панчанги на дату и место
type PanchangData struct {
	Date     string  `json:"date"` // локальная дата YYYY-MM-DD
	Time     *string `json:"time,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`

	Tithi     Tithi         `json:"tithi"`
	Nakshatra NakshatraData `json:"nakshatra"` // накшатра Луны
	Yoga      PanchangYoga  `json:"yoga"`
	Karana    Karana        `json:"karana"`
	Vara      Vara          `json:"vara"`

	ReducedPrecision bool `json:"reduced_precision"`
}
