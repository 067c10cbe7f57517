package kafka

import (
	"context"

	"github.com/google/uuid"
)

// IKafkaProducer интерфейс для отправки сообщений в Kafka
type IKafkaProducer interface {
	// SendChartResponse отправляет результат расчёта в топик ответов;
	// kind — вид результата (chart, panchang, dasha, rules, match)
	SendChartResponse(ctx context.Context, requestID uuid.UUID, kind string, payload []byte) error
	// SendChartError отправляет ошибку расчёта в тот же топик
	SendChartError(ctx context.Context, requestID uuid.UUID, kind string, code string, message string) error
	// Send отправляет произвольное сообщение
	Send(ctx context.Context, key string, value []byte) error
	// Close закрывает producer
	Close() error
}
