package jyotish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/cache"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/persistence"
)

const (
	chartCacheKeyPrefix = "jyotish:chart:"

	// карта для тройки (рождение, аянамса, дома) неизменна, поэтому
	// TTL ограничивает только объём кэша, а не свежесть
	chartCacheTTL = 30 * 24 * time.Hour
)

// ComputeChart жизненный цикл карты: Redis, затем лог карт, затем
// свежий расчёт с записью в лог и обратным заполнением кэша
func (s *Service) ComputeChart(ctx context.Context, birth domain.BirthDetails) (*domain.ChartData, error) {
	birth = birth.Normalized()
	if err := birth.Validate(); err != nil {
		return nil, err
	}

	fingerprint := birth.Fingerprint()

	if chartData := s.cachedChart(ctx, fingerprint); chartData != nil {
		return chartData, nil
	}

	if chartData, payload := s.loggedChart(ctx, fingerprint); chartData != nil {
		s.cacheChart(ctx, fingerprint, payload)
		return chartData, nil
	}

	chartData, err := s.Charts.ComputeChart(birth)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(chartData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}

	if err := s.persistChart(ctx, fingerprint, chartData, payload); err != nil {
		return nil, err
	}

	s.cacheChart(ctx, fingerprint, payload)

	return chartData, nil
}

// cachedChart карта из Redis; любой сбой кэша деградирует до промаха
func (s *Service) cachedChart(ctx context.Context, fingerprint string) *domain.ChartData {
	if s.Cache == nil {
		return nil
	}

	raw, err := s.Cache.Get(ctx, chartCacheKeyPrefix+fingerprint)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.Log.Warn("failed to read chart from cache",
				"error", err,
				"fingerprint", fingerprint,
			)
		}
		return nil
	}

	var chartData domain.ChartData
	if err := json.Unmarshal([]byte(raw), &chartData); err != nil {
		s.Log.Warn("failed to decode cached chart",
			"error", err,
			"fingerprint", fingerprint,
		)
		return nil
	}

	return &chartData
}

// loggedChart карта из лога карт вместе с сохранённым JSON; сбой
// чтения лога деградирует до пересчёта
func (s *Service) loggedChart(ctx context.Context, fingerprint string) (*domain.ChartData, domain.ChartJSON) {
	if s.ChartRepo == nil {
		return nil, nil
	}

	record, err := s.ChartRepo.GetByFingerprint(ctx, fingerprint)
	if err != nil {
		if !errors.Is(err, domain.ErrChartNotFound) {
			s.Log.Warn("failed to read chart log",
				"error", err,
				"fingerprint", fingerprint,
			)
		}
		return nil, nil
	}

	var chartData domain.ChartData
	if err := json.Unmarshal(record.Chart, &chartData); err != nil {
		s.Log.Warn("failed to decode logged chart",
			"error", err,
			"fingerprint", fingerprint,
			"record_id", record.ID,
		)
		return nil, nil
	}

	return &chartData, record.Chart
}

// persistChart вставляет запись лога карт; повторная вставка той же
// тройки подавляется проверкой под транзакцией
func (s *Service) persistChart(ctx context.Context, fingerprint string, chartData *domain.ChartData, payload domain.ChartJSON) error {
	if s.ChartRepo == nil {
		return nil
	}

	record := &domain.ChartRecord{
		ID:               uuid.New(),
		Fingerprint:      fingerprint,
		Ayanamsa:         string(chartData.Ayanamsa),
		HouseSystem:      string(chartData.HouseSystem),
		Chart:            payload,
		ReducedPrecision: chartData.ReducedPrecision,
		CreatedAt:        time.Now().UTC(),
	}

	err := s.ChartRepo.WithTransaction(ctx, func(ctx context.Context, tx persistence.Transaction) error {
		existing, err := s.ChartRepo.GetByFingerprintTx(ctx, tx, fingerprint)
		if err != nil && !errors.Is(err, domain.ErrChartNotFound) {
			return err
		}
		if existing != nil {
			return nil
		}
		return s.ChartRepo.CreateTx(ctx, tx, record)
	})
	if err != nil {
		return fmt.Errorf("failed to persist chart: %w", err)
	}

	s.Log.Info("chart persisted",
		"record_id", record.ID,
		"fingerprint", fingerprint,
		"reduced_precision", record.ReducedPrecision,
	)

	return nil
}

func (s *Service) cacheChart(ctx context.Context, fingerprint string, payload domain.ChartJSON) {
	if s.Cache == nil {
		return
	}

	key := chartCacheKeyPrefix + fingerprint
	if err := s.Cache.Set(ctx, key, string(payload), chartCacheTTL); err != nil {
		s.Log.Warn("failed to cache chart",
			"error", err,
			"fingerprint", fingerprint,
			"cache_key", key,
		)
		return
	}

	s.Log.Debug("chart cached",
		"fingerprint", fingerprint,
		"cache_key", key,
		"ttl", chartCacheTTL,
	)
}
