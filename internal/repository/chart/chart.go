package chartRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	ports "github.com/admin/tg-bots/jyotish-engine/internal/ports/repository"

	"log/slog"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/persistence"
	"github.com/google/uuid"
)

type chartColumns struct {
	TableName        string
	ID               string
	Fingerprint      string
	Ayanamsa         string
	HouseSystem      string
	Chart            string
	ReducedPrecision string
	CreatedAt        string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns chartColumns
}

// New создаёт новый репозиторий лога карт
func New(db persistence.Persistence, log *slog.Logger) ports.IChartRepo {
	cols := chartColumns{
		TableName:        "chart_log",
		ID:               "id",
		Fingerprint:      "fingerprint",
		Ayanamsa:         "ayanamsa",
		HouseSystem:      "house_system",
		Chart:            "chart",
		ReducedPrecision: "reduced_precision",
		CreatedAt:        "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.Fingerprint,
		r.columns.Ayanamsa,
		r.columns.HouseSystem,
		r.columns.Chart,
		r.columns.ReducedPrecision,
		r.columns.CreatedAt)
}

// Create вставляет запись лога карт
func (r *Repository) Create(ctx context.Context, record *domain.ChartRecord) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.columns.TableName,
		r.allColumns())
	err := r.db.ExecContext(ctx, query,
		record.ID,
		record.Fingerprint,
		record.Ayanamsa,
		record.HouseSystem,
		record.Chart,
		record.ReducedPrecision,
		record.CreatedAt)
	if err != nil {
		r.Log.Error("failed to create chart record",
			"error", err,
			"record_id", record.ID,
			"fingerprint", record.Fingerprint)
		return fmt.Errorf("failed to create chart record: %w", err)
	}
	r.Log.Debug("chart record created",
		"record_id", record.ID,
		"fingerprint", record.Fingerprint)
	return nil
}

// GetByID получает запись лога карт по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ChartRecord, error) {
	var record domain.ChartRecord
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID)
	err := r.db.GetContext(ctx, &record, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("chart record not found", "record_id", id)
			return nil, domain.ErrChartNotFound
		}
		r.Log.Error("failed to get chart record by id",
			"error", err,
			"record_id", id)
		return nil, fmt.Errorf("failed to get chart record by id: %w", err)
	}
	return &record, nil
}

// GetByFingerprint получает запись по отпечатку тройки
// (рождение, аянамса, система домов)
func (r *Repository) GetByFingerprint(ctx context.Context, fingerprint string) (*domain.ChartRecord, error) {
	var record domain.ChartRecord
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.Fingerprint)
	err := r.db.GetContext(ctx, &record, query, fingerprint)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChartNotFound
		}
		r.Log.Error("failed to get chart record by fingerprint",
			"error", err,
			"fingerprint", fingerprint)
		return nil, fmt.Errorf("failed to get chart record by fingerprint: %w", err)
	}
	r.Log.Debug("chart record retrieved", "fingerprint", fingerprint, "record_id", record.ID)
	return &record, nil
}

// ListRecent получает последние записи лога карт
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*domain.ChartRecord, error) {
	var records []*domain.ChartRecord
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.CreatedAt)
	err := r.db.SelectContext(ctx, &records, query, limit)
	if err != nil {
		r.Log.Error("failed to list recent chart records",
			"error", err,
			"limit", limit)
		return nil, fmt.Errorf("failed to list recent chart records: %w", err)
	}
	r.Log.Debug("recent chart records retrieved", "count", len(records))
	return records, nil
}

// BeginTx явно начинает транзакцию
func (r *Repository) BeginTx(ctx context.Context) (persistence.Transaction, error) {
	return r.db.BeginTxx(ctx)
}

// WithTransaction выполняет функцию в транзакции с автоматическим commit/rollback
func (r *Repository) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return r.db.WithTransaction(ctx, fn)
}

// CreateTx вставляет запись лога карт в транзакции
func (r *Repository) CreateTx(ctx context.Context, tx persistence.Transaction, record *domain.ChartRecord) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.columns.TableName,
		r.allColumns())
	err := tx.ExecContext(ctx, query,
		record.ID,
		record.Fingerprint,
		record.Ayanamsa,
		record.HouseSystem,
		record.Chart,
		record.ReducedPrecision,
		record.CreatedAt)
	if err != nil {
		r.Log.Error("failed to create chart record in transaction",
			"error", err,
			"record_id", record.ID,
			"fingerprint", record.Fingerprint)
		return fmt.Errorf("failed to create chart record in transaction: %w", err)
	}
	r.Log.Debug("chart record created in transaction",
		"record_id", record.ID,
		"fingerprint", record.Fingerprint)
	return nil
}

// GetByFingerprintTx получает запись по отпечатку в транзакции
func (r *Repository) GetByFingerprintTx(ctx context.Context, tx persistence.Transaction, fingerprint string) (*domain.ChartRecord, error) {
	var record domain.ChartRecord
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.Fingerprint)
	err := tx.GetContext(ctx, &record, query, fingerprint)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChartNotFound
		}
		r.Log.Error("failed to get chart record by fingerprint in transaction",
			"error", err,
			"fingerprint", fingerprint)
		return nil, fmt.Errorf("failed to get chart record by fingerprint in transaction: %w", err)
	}
	return &record, nil
}
