package service

import (
	"context"
	"time"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

// IEngineService фасад расчётного движка для HTTP-контроллеров и
// Kafka-обработчиков. Все операции детерминированы: один и тот же вход
// даёт побайтово одинаковый результат.
type IEngineService interface {
	// ComputeChart возвращает карту для тройки (рождение, аянамса,
	// система домов): из кэша, из лога карт либо свежим расчётом
	ComputeChart(ctx context.Context, birth domain.BirthDetails) (*domain.ChartData, error)

	// ComputePanchang пять членов панчанги на дату и место
	ComputePanchang(ctx context.Context, req domain.PanchangRequest) (*domain.PanchangData, error)

	// ComputeDasha 120-летний цикл Вимшоттари от рождения
	ComputeDasha(ctx context.Context, birth domain.BirthDetails) (*domain.DashaTimeline, error)

	// EvaluateRules прогоняет реестр правил; asOf нужен только
	// транзитным правилам и всегда передаётся явно
	EvaluateRules(ctx context.Context, birth domain.BirthDetails, asOf *time.Time) (*domain.RulesOutput, error)

	// MatchCharts Аштакут-милан двух карт; порядок аргументов значим
	MatchCharts(ctx context.Context, bride, groom domain.BirthDetails) (*domain.CompatibilityScore, error)
}
