package jyotish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

const (
	positionsCacheKey = "jyotish:positions:current"
	panchangCacheKey  = "jyotish:panchang:today"
	warmCacheTTL      = 25 * time.Hour
)

// Опорная точка для панчанги "на сегодня" — Удджайн, нулевой меридиан
// классической индийской астрономии
const (
	referenceLatitude  = 23.1765
	referenceLongitude = 75.7885
	referenceTimezone  = "Asia/Kolkata"
)

// UpdateCachedPositions обновляет снимок текущих сидерических позиций
// грах в кэше
func (s *Service) UpdateCachedPositions(ctx context.Context, at time.Time) error {
	if s.Cache == nil {
		s.Log.Warn("cache is not configured, skipping positions update")
		return nil
	}

	positions, err := s.Charts.PositionsAt(at, domain.AyanamsaLahiri)
	if err != nil {
		return fmt.Errorf("failed to compute current positions: %w", err)
	}

	payload, err := json.Marshal(positions)
	if err != nil {
		return fmt.Errorf("failed to encode positions: %w", err)
	}

	if err := s.Cache.Set(ctx, positionsCacheKey, string(payload), warmCacheTTL); err != nil {
		return fmt.Errorf("failed to cache positions: %w", err)
	}

	return nil
}

// UpdateCachedPanchang обновляет панчангу текущего дня для опорной
// точки
func (s *Service) UpdateCachedPanchang(ctx context.Context, now time.Time) error {
	if s.Cache == nil {
		s.Log.Warn("cache is not configured, skipping panchang update")
		return nil
	}

	loc, err := time.LoadLocation(referenceTimezone)
	if err != nil {
		return fmt.Errorf("failed to load reference timezone: %w", err)
	}

	lat, lon := referenceLatitude, referenceLongitude
	req := domain.PanchangRequest{
		Date:      now.In(loc).Format("2006-01-02"),
		Latitude:  &lat,
		Longitude: &lon,
		Timezone:  referenceTimezone,
	}

	panchang, err := s.Charts.ComputePanchang(req)
	if err != nil {
		return fmt.Errorf("failed to compute panchang: %w", err)
	}

	payload, err := json.Marshal(panchang)
	if err != nil {
		return fmt.Errorf("failed to encode panchang: %w", err)
	}

	if err := s.Cache.Set(ctx, panchangCacheKey, string(payload), warmCacheTTL); err != nil {
		return fmt.Errorf("failed to cache panchang: %w", err)
	}

	return nil
}
