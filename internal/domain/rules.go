package domain

import "time"

// Dignity достоинство планеты в знаке
type Dignity string

const (
	DignityOwn         Dignity = "own"
	DignityExalted     Dignity = "exalted"
	DignityDebilitated Dignity = "debilitated"
	DignityFriendly    Dignity = "friendly"
	DignityInimical    Dignity = "inimical"
	DignityNeutral     Dignity = "neutral"
)

// DignityOf достоинство планеты в знаке: экзальтация и дебилитация
// старше собственного знака, далее отношение к управителю знака
func DignityOf(p Planet, s Sign) Dignity {
	if ex, ok := p.ExaltationSign(); ok && ex == s {
		return DignityExalted
	}
	if deb, ok := p.DebilitationSign(); ok && deb == s {
		return DignityDebilitated
	}
	if p.InOwnSign(s) {
		return DignityOwn
	}
	switch p.RelationTo(s.Lord()) {
	case RelationFriend:
		return DignityFriendly
	case RelationEnemy:
		return DignityInimical
	}
	return DignityNeutral
}

// DignityResult достоинство одной грахи в карте
type DignityResult struct {
	Planet  Planet  `json:"planet"`
	Sign    Sign    `json:"sign"`
	Dignity Dignity `json:"dignity"`
	Combust bool    `json:"combust,omitempty"`
}

// Severity серьёзность находки
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// Confidence уверенность: certain для точных предикатов, probable когда
// сработал орбис соединения или аспекта
type Confidence string

const (
	ConfidenceCertain  Confidence = "certain"
	ConfidenceProbable Confidence = "probable"
)

// RuleKind категория правила
type RuleKind string

const (
	RuleYoga  RuleKind = "yoga"
	RuleDosha RuleKind = "dosha"
)

// RuleFinding сработавшее правило с доказательной базой. Cancelled
// отмечает классическое исключение: правило сработало, но условие
// отмены зафиксировано, а не скрыто.
type RuleFinding struct {
	RuleID string   `json:"rule_id"`
	Name   string   `json:"name"`
	Kind   RuleKind `json:"kind"`

	// Evidence ссылки на элементы карты, давшие совпадение,
	// например "Moon in house 4", "Mars conjunct Sun (orb 2.1)"
	Evidence []string `json:"evidence"`

	Severity   Severity   `json:"severity"`
	Confidence Confidence `json:"confidence"`

	Cancelled          bool   `json:"cancelled,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`

	// AsOf момент транзита для правил с временным входом (Саде Сати)
	AsOf *time.Time `json:"as_of,omitempty"`
}

// RulesOutput результат прогона всего реестра правил по карте
type RulesOutput struct {
	ChartFingerprint string `json:"chart_fingerprint"`

	Dignities []DignityResult `json:"dignities"`
	Yogas     []RuleFinding   `json:"yogas"`
	Doshas    []RuleFinding   `json:"doshas"`

	// Skipped правила, пропущенные из-за неизвестного времени рождения
	Skipped []string `json:"skipped,omitempty"`

	ReducedPrecision bool `json:"reduced_precision"`
}
