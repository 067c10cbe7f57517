package jyotish

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/ephem/analytic"
	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/cache"
	"github.com/admin/tg-bots/jyotish-engine/internal/ports/persistence"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/chart"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/dasha"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/rules"
)

// fakeCache кэш в памяти со счётчиками обращений
type fakeCache struct {
	data map[string]string
	gets int
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.gets++
	v, ok := c.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.sets++
	c.data[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := c.data[key]
	return ok, nil
}

func (c *fakeCache) Close() error { return nil }

type fakeTx struct{}

func (fakeTx) GetContext(context.Context, interface{}, string, ...interface{}) error { return nil }
func (fakeTx) SelectContext(context.Context, interface{}, string, ...interface{}) error {
	return nil
}
func (fakeTx) ExecContext(context.Context, string, ...interface{}) error   { return nil }
func (fakeTx) NamedExecContext(context.Context, string, interface{}) error { return nil }
func (fakeTx) Commit() error                                               { return nil }
func (fakeTx) Rollback() error                                             { return nil }

// fakeChartRepo лог карт в памяти со счётчиками обращений
type fakeChartRepo struct {
	byFingerprint map[string]*domain.ChartRecord
	created       int
	reads         int
}

func newFakeChartRepo() *fakeChartRepo {
	return &fakeChartRepo{byFingerprint: map[string]*domain.ChartRecord{}}
}

func (r *fakeChartRepo) Create(_ context.Context, record *domain.ChartRecord) error {
	r.created++
	r.byFingerprint[record.Fingerprint] = record
	return nil
}

func (r *fakeChartRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ChartRecord, error) {
	for _, rec := range r.byFingerprint {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, domain.ErrChartNotFound
}

func (r *fakeChartRepo) GetByFingerprint(_ context.Context, fingerprint string) (*domain.ChartRecord, error) {
	r.reads++
	rec, ok := r.byFingerprint[fingerprint]
	if !ok {
		return nil, domain.ErrChartNotFound
	}
	return rec, nil
}

func (r *fakeChartRepo) ListRecent(_ context.Context, limit int) ([]*domain.ChartRecord, error) {
	out := make([]*domain.ChartRecord, 0, limit)
	for _, rec := range r.byFingerprint {
		if len(out) == limit {
			break
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeChartRepo) BeginTx(context.Context) (persistence.Transaction, error) {
	return fakeTx{}, nil
}

func (r *fakeChartRepo) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return fn(ctx, fakeTx{})
}

func (r *fakeChartRepo) CreateTx(ctx context.Context, _ persistence.Transaction, record *domain.ChartRecord) error {
	return r.Create(ctx, record)
}

func (r *fakeChartRepo) GetByFingerprintTx(_ context.Context, _ persistence.Transaction, fingerprint string) (*domain.ChartRecord, error) {
	rec, ok := r.byFingerprint[fingerprint]
	if !ok {
		return nil, domain.ErrChartNotFound
	}
	return rec, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFacade(repo *fakeChartRepo, cacheStore *fakeCache) *Service {
	provider := analytic.New()
	service := New(chart.New(provider), dasha.New(provider), rules.New(provider), nil, nil, testLogger())
	if repo != nil {
		service.ChartRepo = repo
	}
	if cacheStore != nil {
		service.Cache = cacheStore
	}
	return service
}

func delhiBirth() domain.BirthDetails {
	return domain.BirthDetails{
		Date:      "1990-05-15",
		Time:      ptr("10:30"),
		Latitude:  ptr(28.6139),
		Longitude: ptr(77.2090),
		Timezone:  "Asia/Kolkata",
	}
}

func TestComputeChartLifecycle(t *testing.T) {
	repo := newFakeChartRepo()
	cacheStore := newFakeCache()
	service := newFacade(repo, cacheStore)
	ctx := context.Background()

	first, err := service.ComputeChart(ctx, delhiBirth())
	require.NoError(t, err)
	require.Equal(t, 1, repo.created)
	require.Equal(t, 1, cacheStore.sets)
	require.Contains(t, cacheStore.data, chartCacheKeyPrefix+first.Birth.Fingerprint())

	record := repo.byFingerprint[first.Birth.Fingerprint()]
	require.NotNil(t, record)
	require.Equal(t, string(domain.AyanamsaLahiri), record.Ayanamsa)
	require.Equal(t, string(domain.HouseWholeSign), record.HouseSystem)
	require.NotEmpty(t, record.Chart)

	// повторный запрос обслуживается кэшем без новых вставок
	second, err := service.ComputeChart(ctx, delhiBirth())
	require.NoError(t, err)
	require.Equal(t, 1, repo.created)
	require.Equal(t, 1, cacheStore.sets)
	require.Equal(t, first.Planets, second.Planets)
	require.Equal(t, first.Birth.Fingerprint(), second.Birth.Fingerprint())

	// после потери кэша карта приходит из лога и кэш заполняется заново
	cacheStore.data = map[string]string{}
	third, err := service.ComputeChart(ctx, delhiBirth())
	require.NoError(t, err)
	require.Equal(t, 1, repo.created)
	require.Equal(t, 2, cacheStore.sets)
	require.Equal(t, first.Planets, third.Planets)
}

func TestComputeChartWithoutInfra(t *testing.T) {
	provider := analytic.New()
	service := New(chart.New(provider), dasha.New(provider), rules.New(provider), nil, nil, testLogger())

	chartData, err := service.ComputeChart(context.Background(), delhiBirth())
	require.NoError(t, err)
	require.Len(t, chartData.Planets, 9)
	require.NotNil(t, chartData.Ascendant)
}

func TestComputeChartValidation(t *testing.T) {
	repo := newFakeChartRepo()
	cacheStore := newFakeCache()
	service := newFacade(repo, cacheStore)

	_, err := service.ComputeChart(context.Background(), domain.BirthDetails{Date: "not-a-date"})
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err))
	require.Zero(t, repo.created)
	require.Zero(t, cacheStore.sets)
}

func TestEvaluateRulesSharesChartLifecycle(t *testing.T) {
	repo := newFakeChartRepo()
	cacheStore := newFakeCache()
	service := newFacade(repo, cacheStore)
	ctx := context.Background()

	out, err := service.EvaluateRules(ctx, delhiBirth(), nil)
	require.NoError(t, err)
	require.Len(t, out.Dignities, 9)
	require.Equal(t, 1, repo.created)

	// карта уже в кэше: вторая оценка не пишет в лог
	_, err = service.EvaluateRules(ctx, delhiBirth(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, repo.created)
}

func TestMatchChartsSharesChartLifecycle(t *testing.T) {
	repo := newFakeChartRepo()
	cacheStore := newFakeCache()
	service := newFacade(repo, cacheStore)
	ctx := context.Background()

	bride := delhiBirth()
	groom := delhiBirth()
	groom.Date = "1992-03-10"

	score, err := service.MatchCharts(ctx, bride, groom)
	require.NoError(t, err)
	require.Len(t, score.Kutas, 8)
	require.Equal(t, 2, repo.created)

	_, err = service.MatchCharts(ctx, bride, groom)
	require.NoError(t, err)
	require.Equal(t, 2, repo.created)
}

func TestComputeDashaAndPanchangDelegate(t *testing.T) {
	service := newFacade(newFakeChartRepo(), newFakeCache())
	ctx := context.Background()

	timeline, err := service.ComputeDasha(ctx, delhiBirth())
	require.NoError(t, err)
	require.NotEmpty(t, timeline.Periods)

	lat, lon := 28.6139, 77.2090
	panchang, err := service.ComputePanchang(ctx, domain.PanchangRequest{
		Date:      "2024-04-23",
		Latitude:  &lat,
		Longitude: &lon,
		Timezone:  "Asia/Kolkata",
	})
	require.NoError(t, err)
	require.NotEmpty(t, panchang.Vara.Name)
}

func TestUpdateCachedPositions(t *testing.T) {
	cacheStore := newFakeCache()
	service := newFacade(newFakeChartRepo(), cacheStore)

	err := service.UpdateCachedPositions(context.Background(), time.Date(2024, 4, 23, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Contains(t, cacheStore.data, positionsCacheKey)

	// без кэша прогрев тихо пропускается
	bare := newFacade(nil, nil)
	require.NoError(t, bare.UpdateCachedPositions(context.Background(), time.Now()))
}

func TestUpdateCachedPanchang(t *testing.T) {
	cacheStore := newFakeCache()
	service := newFacade(newFakeChartRepo(), cacheStore)

	err := service.UpdateCachedPanchang(context.Background(), time.Date(2024, 4, 23, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Contains(t, cacheStore.data, panchangCacheKey)
}

func ptr[T any](v T) *T { return &v }
