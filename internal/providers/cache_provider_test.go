package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"datecalc/internal/structures"
)

type nullLogger struct{}

func (nullLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nullLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (nullLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nullLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (nullLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nullLogger) Close()                                        {}

func TestCacheProvider(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: true, Size: 1, TTL: time.Minute},
	}
	cache := NewCacheProvider(conf, nullLogger{})

	_, ok := cache.Get("diff:gregorian:2020-01-15:2023-03-20:15")
	assert.False(t, ok)

	cache.Set("diff:gregorian:2020-01-15:2023-03-20:15", []byte(`{"years":3}`))

	val, ok := cache.Get("diff:gregorian:2020-01-15:2023-03-20:15")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"years":3}`), val)
}

func TestCacheProvider_Disabled(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: false},
	}
	cache := NewCacheProvider(conf, nullLogger{})

	cache.Set("key", []byte("value"))
	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestCacheProvider_ZeroSizeFallsBackToNoop(t *testing.T) {
	conf := &structures.Config{
		Cache: structures.CacheConfig{Enabled: true, Size: 0},
	}
	cache := NewCacheProvider(conf, nullLogger{})

	cache.Set("key", []byte("value"))
	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestUnsafeStringToBytes(t *testing.T) {
	assert.Nil(t, unsafeStringToBytes(""))
	assert.Equal(t, []byte("key"), unsafeStringToBytes("key"))
}
