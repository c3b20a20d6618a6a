package status

import (
	"sync"
	"sync/atomic"
)

// maxLabelLen bounds label values such as the last game over cause
const maxLabelLen = 32

// Label is an atomically replaced short string; zero value is empty
type Label struct {
	ptr atomic.Pointer[string]
}

// Store replaces the value, truncating to maxLabelLen bytes
func (l *Label) Store(val string) {
	if len(val) > maxLabelLen {
		val = val[:maxLabelLen]
	}
	l.ptr.Store(&val)
}

// Load returns the current value
func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// Mean tracks a running average of observed samples
type Mean struct {
	mu    sync.Mutex
	n     int64
	value float64
}

// Observe folds one sample into the average
func (m *Mean) Observe(x float64) {
	m.mu.Lock()
	m.n++
	m.value += (x - m.value) / float64(m.n)
	m.mu.Unlock()
}

// Value returns the current average, 0 with no samples
func (m *Mean) Value() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}
