package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Ayanamsa модель прецессионной поправки (тропический -> сидерический зодиак)
type Ayanamsa string

const (
	AyanamsaLahiri       Ayanamsa = "lahiri"
	AyanamsaRaman        Ayanamsa = "raman"
	AyanamsaKrishnamurti Ayanamsa = "krishnamurti"
	AyanamsaFaganBradley Ayanamsa = "fagan_bradley"
)

// SupportedAyanamsas список поддерживаемых моделей для сообщений об ошибках
var SupportedAyanamsas = []string{
	string(AyanamsaLahiri),
	string(AyanamsaRaman),
	string(AyanamsaKrishnamurti),
	string(AyanamsaFaganBradley),
}

func (a Ayanamsa) IsValid() bool {
	switch a {
	case AyanamsaLahiri, AyanamsaRaman, AyanamsaKrishnamurti, AyanamsaFaganBradley:
		return true
	}
	return false
}

// HouseSystem система домификации
type HouseSystem string

const (
	HouseWholeSign HouseSystem = "whole_sign"
	HouseEqual     HouseSystem = "equal"
	HousePlacidus  HouseSystem = "placidus"
)

var SupportedHouseSystems = []string{
	string(HouseWholeSign),
	string(HouseEqual),
	string(HousePlacidus),
}

func (h HouseSystem) IsValid() bool {
	switch h {
	case HouseWholeSign, HouseEqual, HousePlacidus:
		return true
	}
	return false
}

const (
	birthDateLayout = "2006-01-02"
	birthTimeLayout = "15:04"

	// fallbackHour локальный час, подставляемый при неизвестном времени
	// рождения: приближение восхода, по которому считаются положения
	// планет и панчанга. Дома и Лагна в этом режиме не считаются.
	fallbackHour = 6

	minBirthYear = 1600
	maxBirthYear = 2400
)

// BirthDetails неизменяемые входные данные рождения. Координаты и таймзона
// должны быть уже разрешены внешним геокодером — движок сам их не ищет.
type BirthDetails struct {
	Name      string   `json:"name,omitempty"`
	Date      string   `json:"date"`           // YYYY-MM-DD, локальная дата
	Time      *string  `json:"time,omitempty"` // HH:MM, локальное время; nil -- время неизвестно
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Timezone  string   `json:"timezone"` // IANA-имя или смещение вида +05:30

	Ayanamsa    Ayanamsa    `json:"ayanamsa,omitempty"`     // по умолчанию lahiri
	HouseSystem HouseSystem `json:"house_system,omitempty"` // по умолчанию whole_sign

	// TimeUnknown явный режим "время неизвестно": Time обязан быть nil,
	// правила, зависящие от домов, отключаются
	TimeUnknown bool `json:"time_unknown,omitempty"`
}

// Normalized копия с подставленными значениями по умолчанию
func (b BirthDetails) Normalized() BirthDetails {
	if b.Ayanamsa == "" {
		b.Ayanamsa = AyanamsaLahiri
	}
	if b.HouseSystem == "" {
		b.HouseSystem = HouseWholeSign
	}
	return b
}

// Validate проверяет поля и возвращает первую найденную ошибку
func (b BirthDetails) Validate() error {
	if b.Date == "" {
		return NewValidationError("date", "birth date is required")
	}

	d, err := time.Parse(birthDateLayout, b.Date)
	if err != nil {
		return NewValidationError("date", fmt.Sprintf("expected %s format: %v", birthDateLayout, err))
	}
	if y := d.Year(); y < minBirthYear || y >= maxBirthYear {
		return NewValidationError("date", fmt.Sprintf("year %d outside supported range %d..%d", y, minBirthYear, maxBirthYear-1))
	}

	if b.Time == nil && !b.TimeUnknown {
		return NewValidationError("time", "birth time is required unless time_unknown is set")
	}
	if b.Time != nil {
		if b.TimeUnknown {
			return NewValidationError("time_unknown", "time_unknown cannot be combined with an explicit time")
		}
		if _, err := time.Parse(birthTimeLayout, *b.Time); err != nil {
			return NewValidationError("time", fmt.Sprintf("expected %s format: %v", birthTimeLayout, err))
		}
	}

	if b.Latitude == nil || b.Longitude == nil || b.Timezone == "" {
		return NewLocationUnresolvedError()
	}
	if *b.Latitude < -90 || *b.Latitude > 90 {
		return NewValidationError("latitude", "must be within [-90, 90]")
	}
	if *b.Longitude < -180 || *b.Longitude > 180 {
		return NewValidationError("longitude", "must be within [-180, 180]")
	}
	if _, err := b.Location(); err != nil {
		return NewValidationError("timezone", err.Error())
	}

	if b.Ayanamsa != "" && !b.Ayanamsa.IsValid() {
		return NewUnsupportedConfigurationError("ayanamsa", string(b.Ayanamsa), SupportedAyanamsas)
	}
	if b.HouseSystem != "" && !b.HouseSystem.IsValid() {
		return NewUnsupportedConfigurationError("house_system", string(b.HouseSystem), SupportedHouseSystems)
	}

	return nil
}

// Location таймзона места рождения: IANA-имя либо фиксированное смещение
func (b BirthDetails) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return nil, fmt.Errorf("timezone is empty")
	}
	if off, ok := parseUTCOffset(b.Timezone); ok {
		return time.FixedZone("UTC"+b.Timezone, off), nil
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", b.Timezone, err)
	}
	return loc, nil
}

// parseUTCOffset разбирает смещение вида +05:30 / -03:00 в секунды
func parseUTCOffset(s string) (int, bool) {
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return 0, false
	}
	h, err := strconv.Atoi(s[1:3])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(s[4:6])
	if err != nil || h > 14 || m > 59 {
		return 0, false
	}
	off := h*3600 + m*60
	if s[0] == '-' {
		off = -off
	}
	return off, true
}

// LocalTime локальный момент рождения; при неизвестном времени
// подставляется fallbackHour
func (b BirthDetails) LocalTime() (time.Time, error) {
	loc, err := b.Location()
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse(birthDateLayout, b.Date)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute := fallbackHour, 0
	if b.Time != nil {
		t, err := time.Parse(birthTimeLayout, *b.Time)
		if err != nil {
			return time.Time{}, err
		}
		hour, minute = t.Hour(), t.Minute()
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc), nil
}

// UTCInstant момент рождения в UTC
func (b BirthDetails) UTCInstant() (time.Time, error) {
	local, err := b.LocalTime()
	if err != nil {
		return time.Time{}, err
	}
	return local.UTC(), nil
}

// HasTime известно ли время рождения
func (b BirthDetails) HasTime() bool {
	return b.Time != nil
}

// Fingerprint детерминированный ключ тройки (рождение, аянамса, система
// домов) для кэша и лога карт. Имя в ключ не входит.
func (b BirthDetails) Fingerprint() string {
	n := b.Normalized()

	var sb strings.Builder
	sb.WriteString(n.Date)
	sb.WriteByte('|')
	if n.Time != nil {
		sb.WriteString(*n.Time)
	} else {
		sb.WriteString("unknown")
	}
	sb.WriteByte('|')
	if n.Latitude != nil {
		sb.WriteString(strconv.FormatFloat(*n.Latitude, 'f', -1, 64))
	}
	sb.WriteByte('|')
	if n.Longitude != nil {
		sb.WriteString(strconv.FormatFloat(*n.Longitude, 'f', -1, 64))
	}
	sb.WriteByte('|')
	sb.WriteString(n.Timezone)
	sb.WriteByte('|')
	sb.WriteString(string(n.Ayanamsa))
	sb.WriteByte('|')
	sb.WriteString(string(n.HouseSystem))

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}
