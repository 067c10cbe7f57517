package domain

import "time"

// DashaLevel уровень вложенности периода Вимшоттари
type DashaLevel string

const (
	DashaMaha       DashaLevel = "maha"
	DashaAntar      DashaLevel = "antar"
	DashaPratyantar DashaLevel = "pratyantar"
)

// VimshottariOrder фиксированный порядок махадаш; цикл начинается с
// управителя натальной накшатры Луны
var VimshottariOrder = [9]Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// VimshottariYears полные годы каждой грахи; сумма равна 120
var VimshottariYears = map[Planet]float64{
	Ketu:    7,
	Venus:   20,
	Sun:     6,
	Moon:    10,
	Mars:    7,
	Rahu:    18,
	Jupiter: 16,
	Saturn:  19,
	Mercury: 17,
}

const (
	// VimshottariCycleYears длительность полного цикла
	VimshottariCycleYears = 120.0
	// DashaYearDays год даша-календаря в сутках
	DashaYearDays = 365.25
)

// planetAbbr короткие коды грах для ключей периодов
var planetAbbr = map[Planet]string{
	Sun: "Su", Moon: "Mo", Mars: "Ma", Mercury: "Me", Jupiter: "Ju",
	Venus: "Ve", Saturn: "Sa", Rahu: "Ra", Ketu: "Ke",
}

// Abbr двухбуквенный код планеты (Su, Mo, ...)
func (p Planet) Abbr() string {
	return planetAbbr[p]
}

// DashaPeriod один период Вимшоттари. Периоды одного уровня внутри
// родителя смежны, не пересекаются и в сумме покрывают родительский
// интервал.
type DashaPeriod struct {
	Level  DashaLevel `json:"level"`
	Planet Planet     `json:"planet"`
	Start  time.Time  `json:"start"`
	End    time.Time  `json:"end"`

	// Key путь периода вида "Ve", "Ve.Su", "Ve.Su.Mo"
	Key string `json:"key"`
	// Parent ключ родительского периода, пусто для махадаши
	Parent string `json:"parent,omitempty"`

	SubPeriods []DashaPeriod `json:"sub_periods,omitempty"`
}

// Duration длительность периода
func (d DashaPeriod) Duration() time.Duration {
	return d.End.Sub(d.Start)
}

// Contains попадает ли момент в период (включая начало, исключая конец)
func (d DashaPeriod) Contains(t time.Time) bool {
	return !t.Before(d.Start) && t.Before(d.End)
}

// DashaTimeline полный 120-летний цикл от рождения
type DashaTimeline struct {
	BirthFingerprint string        `json:"birth_fingerprint"`
	MoonNakshatra    NakshatraData `json:"moon_nakshatra"`
	// ElapsedFraction пройденная доля натальной накшатры Луны (0..1)
	ElapsedFraction float64       `json:"elapsed_fraction"`
	Start           time.Time     `json:"start"` // момент рождения
	End             time.Time     `json:"end"`   // рождение + 120 лет
	Periods         []DashaPeriod `json:"periods"`

	ReducedPrecision bool `json:"reduced_precision"`
}

// Active возвращает цепочку периодов (маха, антар, пратьянтар),
// действующих в момент t; nil, если момент вне цикла
func (tl *DashaTimeline) Active(t time.Time) []DashaPeriod {
	var chain []DashaPeriod
	periods := tl.Periods
	for len(periods) > 0 {
		var found *DashaPeriod
		for i := range periods {
			if periods[i].Contains(t) {
				found = &periods[i]
				break
			}
		}
		if found == nil {
			break
		}
		chain = append(chain, *found)
		periods = found.SubPeriods
	}
	return chain
}
