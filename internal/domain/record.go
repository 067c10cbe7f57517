package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChartJSON сериализованная карта для хранения в БД (JSONB) и передачи
// в Kafka
type ChartJSON []byte

// MarshalJSON отдаёт сохранённую карту как есть, без base64
func (c ChartJSON) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("null"), nil
	}
	return c, nil
}

func (c *ChartJSON) UnmarshalJSON(data []byte) error {
	*c = append((*c)[0:0], data...)
	return nil
}

// ChartRecord строка лога карт: одна запись на тройку
// (рождение, аянамса, система домов), после вставки неизменна
type ChartRecord struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Fingerprint      string    `json:"fingerprint" db:"fingerprint"`
	Ayanamsa         string    `json:"ayanamsa" db:"ayanamsa"`
	HouseSystem      string    `json:"house_system" db:"house_system"`
	Chart            ChartJSON `json:"chart" db:"chart"`
	ReducedPrecision bool      `json:"reduced_precision" db:"reduced_precision"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
