package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	errorCount    map[string]int64
	mutationCount map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:  make(map[string]int64),
		errorCount:    make(map[string]int64),
		mutationCount: make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordMutation counts entity mutations by collection and event kind.
func (m *Metrics) RecordMutation(entityType, kind string) {
	if m == nil {
		return
	}
	key := entityType + "|" + kind
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutationCount[key]++
}

// MutationCounts returns a copy of the mutation counters.
func (m *Metrics) MutationCounts() map[string]int64 {
	return m.snapshot(func(m *Metrics) map[string]int64 { return m.mutationCount })
}

// RequestCounts returns a copy of the request counters.
func (m *Metrics) RequestCounts() map[string]int64 {
	return m.snapshot(func(m *Metrics) map[string]int64 { return m.requestCount })
}

// ErrorCounts returns a copy of the error counters.
func (m *Metrics) ErrorCounts() map[string]int64 {
	return m.snapshot(func(m *Metrics) map[string]int64 { return m.errorCount })
}

func (m *Metrics) snapshot(pick func(*Metrics) map[string]int64) map[string]int64 {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	src := pick(m)
	out := make(map[string]int64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
