// Package inmemory процессный кэш на случай работы без Redis: тёплые
// ключи и кэш карт живут до рестарта процесса.
package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/admin/tg-bots/jyotish-engine/internal/ports/cache"
)

type entry struct {
	value     string
	expiresAt time.Time // нулевое время — без срока
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Cache in-memory реализация кэша с поддержкой TTL
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCache создаёт новый in-memory кэш
func NewCache() cache.Cache {
	return &Cache{
		entries: make(map[string]entry),
	}
}

// Get возвращает значение по ключу; просроченные записи удаляются лениво
func (c *Cache) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %s", cache.ErrCacheMiss, key)
	}
	if e.expired(time.Now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", fmt.Errorf("%w: %s", cache.ErrCacheMiss, key)
	}

	return e.value, nil
}

// Set сохраняет значение; ttl <= 0 означает без срока
func (c *Cache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

// Delete удаляет ключ
func (c *Cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Exists проверяет наличие непросроченного ключа
func (c *Cache) Exists(_ context.Context, key string) (bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || e.expired(time.Now()) {
		return false, nil
	}
	return true, nil
}

// Close очищает кэш
func (c *Cache) Close() error {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
	return nil
}
