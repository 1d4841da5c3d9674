package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/admin/astro-services/chart-engine/internal/ports/cache"
)

// entry значение кэша со сроком жизни
type entry struct {
	value     string
	expiresAt time.Time
}

// Cache in-memory реализация cache.Cache для окружений без Redis.
// Протухшие записи вычищаются лениво при чтении.
type Cache struct {
	mu   sync.RWMutex
	data map[string]entry
}

// NewCache создаёт новый in-memory кэш
func NewCache() cache.Cache {
	return &Cache{
		data: make(map[string]entry),
	}
}

// Get получает значение по ключу
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("key not found: %s", key)
	}

	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return "", fmt.Errorf("key not found: %s", key)
	}

	return e.value, nil
}

// Set сохраняет значение с TTL (ttl <= 0 означает без срока)
func (c *Cache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.data[key] = e
	c.mu.Unlock()
	return nil
}

// Delete удаляет значение по ключу
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
	return nil
}

// Exists проверяет наличие ключа
func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	if _, err := c.Get(ctx, key); err != nil {
		return false, nil
	}
	return true, nil
}

// Close ничего не освобождает, оставлен для симметрии с Redis клиентом
func (c *Cache) Close() error {
	return nil
}
