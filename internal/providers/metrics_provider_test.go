package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"datecalc/internal/engine"
	"datecalc/internal/models"
	"datecalc/internal/structures"
)

type stubService struct {
	historySize int
}

func (s *stubService) ComputeDifference(_, _ time.Time, _ engine.DateUnit) (*models.DifferenceResult, error) {
	return nil, nil
}
func (s *stubService) AddToDate(_ time.Time, _, _, _ int) (*models.OffsetResult, error) {
	return nil, nil
}
func (s *stubService) SubtractFromDate(_ time.Time, _, _, _ int) (*models.OffsetResult, error) {
	return nil, nil
}
func (s *stubService) CalendarID() string                    { return "gregorian" }
func (s *stubService) GetHistory() []*models.HistoryRecord   { return nil }
func (s *stubService) ClearHistory()                         {}
func (s *stubService) GetHistorySize() int                   { return s.historySize }
func (s *stubService) PruneExpired() []*models.HistoryRecord { return nil }
func (s *stubService) GetSnapshot() *models.Storage          { return &models.Storage{} }
func (s *stubService) PutRecords(_ []*models.HistoryRecord)  {}

func TestNewMetricsProvider_Disabled(t *testing.T) {
	conf := &structures.Config{Metrics: structures.MetricsConfig{Enabled: false}}
	m := NewMetricsProvider(conf, &stubService{})

	assert.IsType(t, &noopMetrics{}, m)

	// all calls are no-ops and must not panic
	m.IncRequestsTotal("/difference", 200)
	m.ObserveRequestDuration("/difference", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(time.Millisecond)
	m.IncCalculations(models.OpAdd)
	m.IncOutOfRange()
}

// Registers against the default prometheus registry, so the enabled
// provider is built exactly once across the package tests.
func TestNewMetricsProvider_Enabled(t *testing.T) {
	conf := &structures.Config{Metrics: structures.MetricsConfig{Enabled: true}}
	m := NewMetricsProvider(conf, &stubService{historySize: 3})

	assert.IsType(t, &MetricsProvider{}, m)

	m.IncRequestsTotal("/difference", 200)
	m.IncRequestsTotal("/add", 404)
	m.ObserveRequestDuration("/difference", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(time.Millisecond)
	m.IncCalculations(models.OpDifference)
	m.IncOutOfRange()
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{204, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, httpStatusBucket(tt.code))
	}
}
