package repository

import (
	"context"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/persistence"
	"github.com/google/uuid"
)

// IChartRepo интерфейс лога рассчитанных карт
type IChartRepo interface {
	Create(ctx context.Context, record *domain.ChartRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ChartRecord, error)
	GetByFingerprint(ctx context.Context, fingerprint string) (*domain.ChartRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ChartRecord, error)

	BeginTx(ctx context.Context) (persistence.Transaction, error)
	WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error

	CreateTx(ctx context.Context, tx persistence.Transaction, record *domain.ChartRecord) error
	GetByFingerprintTx(ctx context.Context, tx persistence.Transaction, fingerprint string) (*domain.ChartRecord, error)
}
