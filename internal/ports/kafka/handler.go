package kafka

import "context"

// MessageHandler обработчик сообщения из топика; key — ключ
// партиционирования (для запросов карт — request_id), value — тело
type MessageHandler interface {
	HandleMessage(ctx context.Context, key string, value []byte) error
}
