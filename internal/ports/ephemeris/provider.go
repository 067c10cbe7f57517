package ephemeris

import (
	"time"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

// BodyPosition тропическое эклиптическое положение тела на момент времени
type BodyPosition struct {
	TropicalLongitude float64 // градусы, [0,360)
	Latitude          float64 // градусы
	Distance          float64 // а.е. (для Луны тоже в а.е.)
	SpeedPerDay       float64 // градусы/сутки по долготе, отрицательная при ретро-движении
}

// IProvider источник эфемеридных положений. Реализация выбирается один
// раз на старте процесса: точная (VSOP87) либо упрощённая аналитическая.
// После загрузки справочных данных все методы чистые и потокобезопасные.
type IProvider interface {
	// Position тропические координаты тела на момент UTC
	Position(body domain.Planet, instant time.Time) (BodyPosition, error)

	// SiderealTime локальное звёздное время в градусах [0,360) для
	// момента UTC и восточной долготы; нужно системам домов, отличным
	// от целознаковой
	SiderealTime(instant time.Time, longitudeDeg float64) (float64, error)

	// Name имя реализации для логов и метаданных
	Name() string

	// Reduced true для упрощённой реализации: все производные данные
	// помечаются флагом reduced_precision
	Reduced() bool
}
