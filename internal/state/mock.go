package state

import "sync"

// Mock is an in-memory Interface for tests.
type Mock struct {
	mu        sync.Mutex
	saved     *ShellState
	saveCalls int
	closed    bool
}

// NewMock creates a mock state manager.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Get() (*ShellState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return nil, nil
	}
	s := *m.saved
	return &s, nil
}

func (m *Mock) Save(s ShellState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = &s
	m.saveCalls++
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SaveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCalls
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// SetSaved seeds the state returned by Get.
func (m *Mock) SetSaved(s ShellState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = &s
}
