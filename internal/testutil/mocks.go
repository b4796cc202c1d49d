package testutil

import (
	"context"
	"sync"
	"time"

	"ctfwatch/internal/models"
	"ctfwatch/internal/providers"
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

// HasLevel reports whether any recorded entry carries the given level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu            sync.Mutex
	EventsFetched int
	NewEvents     int
	Notifications map[string]int
	WatchlistSize int
	BaselineSize  int
	Sweeps        int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}

func (m *MockMetrics) AddEventsFetched(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EventsFetched += count
}

func (m *MockMetrics) AddNewEvents(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NewEvents += count
}

func (m *MockMetrics) IncNotifications(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Notifications == nil {
		m.Notifications = make(map[string]int)
	}
	m.Notifications[kind]++
}

func (m *MockMetrics) ObserveSweepDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sweeps++
}

func (m *MockMetrics) SetWatchlistSize(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WatchlistSize = count
}

func (m *MockMetrics) SetBaselineSize(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BaselineSize = count
}

// MockNotifier implements notify.Notifier and records messages.
type MockNotifier struct {
	mu       sync.Mutex
	Messages []string
}

func (m *MockNotifier) Notify(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, text)
}

func (m *MockNotifier) Sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Messages))
	copy(out, m.Messages)
	return out
}

// MockClient implements ctftime.ClientInterface with injectable behavior.
type MockClient struct {
	Events    []models.RawEvent
	EventsErr error
	TeamData  *models.Team
	TeamErr   error
	TopData   []models.TopTeam
	TopErr    error
}

func (m *MockClient) FetchEvents(_ context.Context, _ int) ([]models.RawEvent, error) {
	return m.Events, m.EventsErr
}

func (m *MockClient) FetchTeam(_ context.Context, _ string) (*models.Team, error) {
	return m.TeamData, m.TeamErr
}

func (m *MockClient) FetchTopTeams(_ context.Context, _ int) ([]models.TopTeam, error) {
	return m.TopData, m.TopErr
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

// MockCompressor implements storage.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
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
