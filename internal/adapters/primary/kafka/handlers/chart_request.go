package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	kafkaPorts "github.com/admin/tg-bots/jyotish-engine/internal/ports/kafka"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/service"
)

const (
	sectionChart = "chart"
	sectionDasha = "dasha"
	sectionRules = "rules"

	asOfDateLayout = "2006-01-02"
)

var supportedSections = []string{sectionChart, sectionDasha, sectionRules}

// ChartRequestHandler обрабатывает запросы расчёта от ботов-коллабораторов:
// считает запрошенные секции и отвечает в топик ответов по request_id.
// Некорректный запрос получает ответ с ошибкой и не ретраится
type ChartRequestHandler struct {
	Engine   service.IEngineService
	Producer kafkaPorts.IKafkaProducer
	Log      *slog.Logger
}

// NewChartRequestHandler создаёт новый handler для запросов расчёта
func NewChartRequestHandler(engine service.IEngineService, producer kafkaPorts.IKafkaProducer, log *slog.Logger) kafkaPorts.MessageHandler {
	return &ChartRequestHandler{
		Engine:   engine,
		Producer: producer,
		Log:      log,
	}
}

// HandleMessage обрабатывает один запрос расчёта
func (h *ChartRequestHandler) HandleMessage(ctx context.Context, key string, value []byte) error {
	var request ChartRequestMessage
	if err := json.Unmarshal(value, &request); err != nil {
		h.Log.Warn("malformed chart request skipped",
			"error", err,
			"key", key,
		)
		return domain.WrapBusinessError(fmt.Errorf("failed to unmarshal chart request: %w", err))
	}

	requestID, err := uuid.Parse(request.RequestID)
	if err != nil {
		h.Log.Warn("chart request without valid request_id skipped",
			"error", err,
			"key", key,
		)
		return domain.WrapBusinessError(fmt.Errorf("invalid request_id: %w", err))
	}

	sections := request.Sections
	if len(sections) == 0 {
		sections = []string{sectionChart}
	}

	asOf, err := request.asOfTime()
	if err != nil {
		return h.answerError(ctx, requestID, sectionRules, err)
	}

	h.Log.Debug("processing chart request",
		"request_id", requestID,
		"sections", sections,
		"birth_date", request.Birth.Date,
	)

	for _, section := range sections {
		result, err := h.computeSection(ctx, section, request.Birth, asOf)
		if err != nil {
			if isRequestError(err) {
				return h.answerError(ctx, requestID, section, err)
			}
			return fmt.Errorf("failed to compute section %s: %w", section, err)
		}

		payload, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal section %s: %w", section, err)
		}

		if err := h.Producer.SendChartResponse(ctx, requestID, section, payload); err != nil {
			return fmt.Errorf("failed to send chart response: %w", err)
		}
	}

	return nil
}

// computeSection один вызов движка на секцию запроса
func (h *ChartRequestHandler) computeSection(ctx context.Context, section string, birth domain.BirthDetails, asOf *time.Time) (interface{}, error) {
	switch section {
	case sectionChart:
		return h.Engine.ComputeChart(ctx, birth)
	case sectionDasha:
		return h.Engine.ComputeDasha(ctx, birth)
	case sectionRules:
		return h.Engine.EvaluateRules(ctx, birth, asOf)
	default:
		return nil, domain.NewUnsupportedConfigurationError("section", section, supportedSections)
	}
}

// answerError отвечает ошибкой бизнес-уровня; такие запросы не ретраятся
func (h *ChartRequestHandler) answerError(ctx context.Context, requestID uuid.UUID, section string, cause error) error {
	h.Log.Info("chart request rejected",
		"request_id", requestID,
		"section", section,
		"error", cause,
	)
	if err := h.Producer.SendChartError(ctx, requestID, section, errorCode(cause), cause.Error()); err != nil {
		return fmt.Errorf("failed to send chart error: %w", err)
	}
	return nil
}

// isRequestError ошибки, в которых виноват сам запрос: ответ отправляется,
// повторная доставка не имеет смысла
func isRequestError(err error) bool {
	return domain.IsValidationError(err) ||
		domain.IsLocationUnresolvedError(err) ||
		domain.IsUnsupportedConfigurationError(err)
}

// errorCode машинчитаемый код для поля code в ответе
func errorCode(err error) string {
	switch {
	case domain.IsValidationError(err):
		return "validation_error"
	case domain.IsLocationUnresolvedError(err):
		return "location_unresolved"
	case domain.IsUnsupportedConfigurationError(err):
		return "unsupported_configuration"
	default:
		return "internal_error"
	}
}

// ChartRequestMessage структура запроса расчёта
type ChartRequestMessage struct {
	RequestID string              `json:"request_id"`
	Sections  []string            `json:"sections,omitempty"` // chart | dasha | rules; пусто — только chart
	Birth     domain.BirthDetails `json:"birth"`
	AsOfDate  *string             `json:"as_of_date,omitempty"` // YYYY-MM-DD, дата оценки транзитных правил
}

// asOfTime дата оценки транзитных правил как момент UTC
func (m ChartRequestMessage) asOfTime() (*time.Time, error) {
	if m.AsOfDate == nil {
		return nil, nil
	}
	t, err := time.Parse(asOfDateLayout, *m.AsOfDate)
	if err != nil {
		return nil, domain.NewValidationError("as_of_date", fmt.Sprintf("expected %s format: %v", asOfDateLayout, err))
	}
	return &t, nil
}
