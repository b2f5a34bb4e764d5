// Package cache TTL-кэш готовых документов в памяти.
package cache

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"acts-service-go/internal/pkg/tracing"
)

type item struct {
	value      []byte
	expiration int64
}

func (i *item) expired(now int64) bool {
	return now > i.expiration
}

// Cache кэш с поддержкой TTL. Нулевой TTL отключает кэширование.
type Cache struct {
	items   sync.Map
	ttl     time.Duration
	metrics *Metrics

	mu    sync.Mutex
	count int
	size  int

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewCache создает кэш и запускает периодическую очистку.
// Вызывающая сторона обязана вызвать Close.
func NewCache(ttl time.Duration, m *Metrics) *Cache {
	if m == nil {
		m = NewMetrics(nil, "default")
	}
	c := &Cache{
		ttl:     ttl,
		metrics: m,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	if ttl > 0 {
		go c.cleanupLoop()
	} else {
		close(c.done)
	}
	return c
}

// Enabled сообщает, сохраняет ли кэш значения
func (c *Cache) Enabled() bool {
	return c != nil && c.ttl > 0
}

// Set добавляет значение в кэш
func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if !c.Enabled() {
		return
	}
	_, span := tracing.StartSpan(ctx, "Cache.Set")
	defer span.End()
	span.SetAttributes(attribute.String("cache.key", key), attribute.Int("cache.size", len(value)))

	prev, loaded := c.items.Swap(key, &item{
		value:      value,
		expiration: time.Now().Add(c.ttl).UnixNano(),
	})

	c.mu.Lock()
	if loaded {
		c.size -= len(prev.(*item).value)
	} else {
		c.count++
	}
	c.size += len(value)
	c.report()
	c.mu.Unlock()
}

// Get получает значение из кэша
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	_, span := tracing.StartSpan(ctx, "Cache.Get")
	defer span.End()
	span.SetAttributes(attribute.String("cache.key", key))

	v, ok := c.items.Load(key)
	if !ok {
		c.metrics.Misses.Inc()
		span.AddEvent("Cache miss")
		return nil, false
	}

	it := v.(*item)
	if it.expired(time.Now().UnixNano()) {
		c.remove(key, it)
		c.metrics.Misses.Inc()
		span.AddEvent("Cache entry expired")
		return nil, false
	}

	c.metrics.Hits.Inc()
	span.AddEvent("Cache hit")
	return it.value, true
}

// Close останавливает фоновую очистку
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	<-c.done
}

// remove удаляет запись, только если она не была заменена конкурентным Set
func (c *Cache) remove(key string, it *item) {
	if !c.items.CompareAndDelete(key, it) {
		return
	}
	c.mu.Lock()
	c.count--
	c.size -= len(it.value)
	c.report()
	c.mu.Unlock()
}

func (c *Cache) report() {
	c.metrics.Items.Set(float64(c.count))
	c.metrics.Bytes.Set(float64(c.size))
}

func (c *Cache) cleanupLoop() {
	defer close(c.done)

	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *Cache) cleanup() {
	now := time.Now().UnixNano()
	c.items.Range(func(key, value any) bool {
		if it := value.(*item); it.expired(now) {
			c.remove(key.(string), it)
		}
		return true
	})
}
