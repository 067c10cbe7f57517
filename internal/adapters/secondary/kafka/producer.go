package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const sourceHeader = "jyotish_engine"

// Producer реализация Kafka producer для топика ответов
type Producer struct {
	producer sarama.SyncProducer
	cfg      *Config
	log      *slog.Logger
}

// NewProducer создаёт новый Kafka producer
func NewProducer(cfg *Config, log *slog.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	// Настройка безопасности (если указано)
	if cfg.SecurityProtocol == "SASL_SSL" || cfg.SecurityProtocol == "SASL_PLAINTEXT" {
		config.Net.SASL.Enable = true
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		if cfg.SASLMechanism == "SCRAM-SHA-256" {
			config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		}
		config.Net.SASL.User = cfg.SASLUsername
		config.Net.SASL.Password = cfg.SASLPassword
		// TLS только для SASL_SSL
		if cfg.SecurityProtocol == "SASL_SSL" {
			config.Net.TLS.Enable = true
		}
	}

	producer, err := sarama.NewSyncProducer(cfg.GetBrokers(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer created",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
	)

	return &Producer{
		producer: producer,
		cfg:      cfg,
		log:      log,
	}, nil
}

// SendChartResponse отправляет результат расчёта в топик ответов.
// В value кладётся конверт со статусом и самим результатом (raw JSON без
// экранирования), request_id и вид результата дублируются в headers
func (p *Producer) SendChartResponse(ctx context.Context, requestID uuid.UUID, kind string, payload []byte) error {
	if !json.Valid(payload) {
		return fmt.Errorf("payload for kind %s is not valid JSON", kind)
	}

	valueData := map[string]interface{}{
		"status": "ok",
		"kind":   kind,
		"data":   json.RawMessage(payload),
	}
	valueBytes, err := json.Marshal(valueData)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.cfg.Topic,
		Key:     sarama.StringEncoder(requestID.String()),
		Value:   sarama.ByteEncoder(valueBytes),
		Headers: p.responseHeaders(requestID, kind),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Debug("kafka send failed",
			"error", err,
			"topic", p.cfg.Topic,
			"key", requestID.String(),
			"kind", kind,
		)
		return fmt.Errorf("kafka send failed [topic=%s, key=%s]: %w",
			p.cfg.Topic, requestID.String(), err)
	}

	p.log.Debug("chart response sent to kafka",
		"topic", p.cfg.Topic,
		"partition", partition,
		"offset", offset,
		"key", requestID.String(),
		"kind", kind,
	)

	return nil
}

// SendChartError отправляет ошибку расчёта в топик ответов тем же
// конвертом, что и успешный ответ, но со status=error и кодом ошибки
func (p *Producer) SendChartError(ctx context.Context, requestID uuid.UUID, kind string, code string, message string) error {
	valueData := map[string]interface{}{
		"status":  "error",
		"kind":    kind,
		"code":    code,
		"message": message,
	}
	valueBytes, err := json.Marshal(valueData)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.cfg.Topic,
		Key:     sarama.StringEncoder(requestID.String()),
		Value:   sarama.ByteEncoder(valueBytes),
		Headers: p.responseHeaders(requestID, kind),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Debug("kafka send error response failed",
			"error", err,
			"topic", p.cfg.Topic,
			"key", requestID.String(),
			"kind", kind,
			"code", code,
		)
		return fmt.Errorf("kafka send error response failed [topic=%s, key=%s]: %w",
			p.cfg.Topic, requestID.String(), err)
	}

	p.log.Debug("chart error sent to kafka",
		"topic", p.cfg.Topic,
		"partition", partition,
		"offset", offset,
		"key", requestID.String(),
		"kind", kind,
		"code", code,
	)

	return nil
}

func (p *Producer) responseHeaders(requestID uuid.UUID, kind string) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{
			Key:   []byte("request_id"),
			Value: []byte(requestID.String()),
		},
		{
			Key:   []byte("kind"),
			Value: []byte(kind),
		},
		{
			Key:   []byte("source"),
			Value: []byte(sourceHeader),
		},
	}
}

// Send отправляет произвольное сообщение
func (p *Producer) Send(ctx context.Context, key string, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: p.cfg.Topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		// Debug для технических деталей
		p.log.Debug("kafka send failed",
			"error", err,
			"topic", p.cfg.Topic,
			"key", key,
		)
		// Оборачиваем с техническими деталями
		return fmt.Errorf("kafka send failed [topic=%s, key=%s]: %w",
			p.cfg.Topic, key, err)
	}

	p.log.Debug("message sent to kafka",
		"topic", p.cfg.Topic,
		"partition", partition,
		"offset", offset,
		"key", key,
	)

	return nil
}

// Close закрывает producer
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	p.log.Info("kafka producer closed")
	return nil
}
