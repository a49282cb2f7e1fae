package providers

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"datecalc/internal/structures"
)

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *mapCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.data[key]
	return val, ok
}

func (c *mapCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

func TestMetricsCacheProvider(t *testing.T) {
	metrics := &recordingMetrics{}
	cache := &MetricsCacheProvider{
		inner:   &mapCache{data: make(map[string][]byte)},
		metrics: metrics,
	}

	_, ok := cache.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 1, metrics.cacheMisses)
	assert.Equal(t, 0, metrics.cacheHits)

	cache.Set("key", []byte("value"))

	val, ok := cache.Get("key")
	assert.True(t, ok)
	assert.Equal(t, []byte("value"), val)
	assert.Equal(t, 1, metrics.cacheHits)
	assert.Equal(t, 1, metrics.cacheMisses)
}

func TestNewInstrumentedCacheProvider_DisabledSkipsWrapping(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: false},
	}
	cache := NewInstrumentedCacheProvider(conf, nullLogger{}, &recordingMetrics{})

	assert.IsType(t, &noopCache{}, cache)
}

func TestNewInstrumentedCacheProvider_Enabled(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: true, Size: 1, TTL: time.Minute},
	}
	metrics := &recordingMetrics{}
	cache := NewInstrumentedCacheProvider(conf, nullLogger{}, metrics)

	assert.IsType(t, &MetricsCacheProvider{}, cache)

	_, ok := cache.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, metrics.cacheMisses)
}
