package browser

import "sync"

// Stub is a Browser for tests and headless environments: navigations
// succeed immediately and tests can inject events.
type Stub struct {
	mu        sync.Mutex
	navCalls  []string
	events    chan Event
	closeOnce sync.Once
}

// NewStub creates a stub browser.
func NewStub() *Stub {
	return &Stub{events: make(chan Event, 32)}
}

func (s *Stub) Navigate(url string) error {
	s.mu.Lock()
	s.navCalls = append(s.navCalls, url)
	s.mu.Unlock()
	s.Emit(LoadFinished{URL: url})
	return nil
}

func (s *Stub) Events() <-chan Event {
	return s.events
}

func (s *Stub) Close() error {
	s.closeOnce.Do(func() { close(s.events) })
	return nil
}

// Test helpers

func (s *Stub) NavigateCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.navCalls...)
}

// Emit injects an event (non-blocking).
func (s *Stub) Emit(ev Event) {
	select {
	case s.events <- ev:
	default:
	}
}
