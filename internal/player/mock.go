// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Mock is a test double for Controller. It records every command and
// lets tests emit events into the coordinator.
type Mock struct {
	mu sync.Mutex

	loadCalls      []string
	loadErr        error
	playCalls      int
	pauseCalls     int
	seekCalls      []time.Duration
	volumeCalls    []float64
	muteCalls      []bool
	enterFSCalls   int
	exitFSCalls    int
	events         chan Event
	closed         bool
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		events: make(chan Event, 64),
	}
}

func (m *Mock) Load(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, url)
	return m.loadErr
}

func (m *Mock) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, pos)
}

func (m *Mock) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumeCalls = append(m.volumeCalls, v)
}

func (m *Mock) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muteCalls = append(m.muteCalls, muted)
}

func (m *Mock) EnterFullscreen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enterFSCalls++
}

func (m *Mock) ExitFullscreen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exitFSCalls++
}

func (m *Mock) Events() <-chan Event {
	return m.events
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.events)
	}
	return nil
}

// Test helpers

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) VolumeCalls() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.volumeCalls...)
}

func (m *Mock) MuteCalls() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bool(nil), m.muteCalls...)
}

func (m *Mock) EnterFullscreenCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enterFSCalls
}

func (m *Mock) ExitFullscreenCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exitFSCalls
}

// Emit delivers an event to the consumer (non-blocking; drops when the
// buffer is full, mirroring a slow subscriber).
func (m *Mock) Emit(ev Event) {
	select {
	case m.events <- ev:
	default:
	}
}

// EmitStatus is shorthand for emitting a StatusEvent.
func (m *Mock) EmitStatus(s Status) {
	m.Emit(StatusEvent{Status: s})
}
