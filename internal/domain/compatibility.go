package domain

// VerdictBand итоговая оценка совместимости по порогам из таблицы
type VerdictBand string

const (
	VerdictNotRecommended VerdictBand = "not_recommended"
	VerdictAverage        VerdictBand = "average"
	VerdictGood           VerdictBand = "good"
	VerdictExcellent      VerdictBand = "excellent"
)

// AshtakootMaxTotal максимум суммы восьми кут
const AshtakootMaxTotal = 36.0

// VerdictForTotal фиксированные пороги: ниже 18 — не рекомендуется,
// 18..24 — средне, выше 24 до 32 — хорошо, выше 32 — отлично
func VerdictForTotal(total float64) VerdictBand {
	switch {
	case total < 18:
		return VerdictNotRecommended
	case total <= 24:
		return VerdictAverage
	case total <= 32:
		return VerdictGood
	default:
		return VerdictExcellent
	}
}

// KutaScore результат одной куты
type KutaScore struct {
	Kuta      string  `json:"kuta"`
	Points    float64 `json:"points"`
	MaxPoints float64 `json:"max_points"`

	// Detail классификации сторон, давшие балл,
	// например "bride gana Deva, groom gana Manushya"
	Detail string `json:"detail"`

	// ExceptionApplied классическое исключение переопределило базовый
	// счёт; причина фиксируется всегда
	ExceptionApplied bool   `json:"exception_applied,omitempty"`
	ExceptionReason  string `json:"exception_reason,omitempty"`
}

// MoonSummary лунные данные одной стороны, по которым считаются куты
type MoonSummary struct {
	Sign      Sign      `json:"sign"`
	SignName  string    `json:"sign_name"`
	Nakshatra Nakshatra `json:"nakshatra"`
	Pada      int       `json:"pada"`
}

// CompatibilityScore результат Аштакут-милан двух карт. Стороны
// обозначены как невеста (первая карта) и жених (вторая) — порядок
// аргументов значим для Варна- и Тара-кут.
type CompatibilityScore struct {
	Bride MoonSummary `json:"bride"`
	Groom MoonSummary `json:"groom"`

	Kutas []KutaScore `json:"kutas"` // восемь кут в каноническом порядке

	Total    float64     `json:"total"`
	MaxTotal float64     `json:"max_total"`
	Verdict  VerdictBand `json:"verdict"`

	ReducedPrecision bool `json:"reduced_precision"`
}
