package testutil

import (
	"sync"
	"time"

	"datecalc/internal/engine"
	"datecalc/internal/models"
	"datecalc/internal/providers"
	"datecalc/internal/services"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockCalculatorService implements services.CalculatorServiceInterface.
type MockCalculatorService struct {
	mu               sync.Mutex
	Calendar         string
	DifferenceResult *models.DifferenceResult
	OffsetResult     *models.OffsetResult
	Err              error
	HistoryRecords   []*models.HistoryRecord
	DifferenceCalls  int
	AddCalls         int
	SubtractCalls    int
	ClearCalls       int
	PutRecordsCalls  [][]*models.HistoryRecord
	PruneResult      []*models.HistoryRecord
}

var _ services.CalculatorServiceInterface = (*MockCalculatorService)(nil)

func (m *MockCalculatorService) ComputeDifference(_, _ time.Time, _ engine.DateUnit) (*models.DifferenceResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DifferenceCalls++
	return m.DifferenceResult, m.Err
}

func (m *MockCalculatorService) AddToDate(_ time.Time, _, _, _ int) (*models.OffsetResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls++
	return m.OffsetResult, m.Err
}

func (m *MockCalculatorService) SubtractFromDate(_ time.Time, _, _, _ int) (*models.OffsetResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SubtractCalls++
	return m.OffsetResult, m.Err
}

func (m *MockCalculatorService) CalendarID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Calendar == "" {
		return "gregorian"
	}
	return m.Calendar
}

func (m *MockCalculatorService) GetHistory() []*models.HistoryRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.HistoryRecords
}

func (m *MockCalculatorService) ClearHistory() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	m.HistoryRecords = nil
}

func (m *MockCalculatorService) GetHistorySize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.HistoryRecords)
}

func (m *MockCalculatorService) PruneExpired() []*models.HistoryRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PruneResult
}

func (m *MockCalculatorService) GetSnapshot() *models.Storage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &models.Storage{Records: append([]*models.HistoryRecord(nil), m.HistoryRecords...)}
}

func (m *MockCalculatorService) PutRecords(records []*models.HistoryRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutRecordsCalls = append(m.PutRecordsCalls, records)
	m.HistoryRecords = records
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu                 sync.Mutex
	Requests           int
	CacheHits          int
	CacheMisses        int
	Persistence        int
	CalculationsByOp   map[string]int
	OutOfRange         int
	RequestDurations   int
	LastRequestStatus  int
	LastRequestPath    string
	LastRequestElapsed time.Duration
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
	m.LastRequestPath = endpoint
	m.LastRequestStatus = status
}

func (m *MockMetrics) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestDurations++
	m.LastRequestElapsed = duration
}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persistence++
}

func (m *MockMetrics) IncCalculations(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CalculationsByOp == nil {
		m.CalculationsByOp = make(map[string]int)
	}
	m.CalculationsByOp[op]++
}

func (m *MockMetrics) IncOutOfRange() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OutOfRange++
}
