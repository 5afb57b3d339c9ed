package notify

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"
)

// mockNotifier records notifications and lets tests simulate taps.
type mockNotifier struct {
	mu          sync.Mutex
	sent        []Notification
	nextID      uint32
	taps        chan uint32
	unavailable bool
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{taps: make(chan uint32, 8)}
}

func (m *mockNotifier) Notify(n Notification) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, n)
	m.nextID++
	return m.nextID, nil
}

func (m *mockNotifier) Close(_ uint32) error { return nil }

func (m *mockNotifier) Taps() <-chan uint32 { return m.taps }

func (m *mockNotifier) Available() bool { return !m.unavailable }

func (m *mockNotifier) Sent() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.sent...)
}

func (m *mockNotifier) SimulateTap(id uint32) {
	m.taps <- id
}

func TestSchedule_DeliversAfterDelay(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		n := newMockNotifier()
		s := NewScheduler(n, nil)
		defer s.Close()

		if _, err := s.Schedule(Reminder{Title: "Continue watching", Delay: 5 * time.Second}); err != nil {
			t.Fatalf("Schedule: %v", err)
		}

		time.Sleep(4 * time.Second)
		if got := len(n.Sent()); got != 0 {
			t.Errorf("delivered %d notifications before delay elapsed, want 0", got)
		}

		time.Sleep(1100 * time.Millisecond)
		sent := n.Sent()
		if len(sent) != 1 {
			t.Fatalf("delivered %d notifications, want 1", len(sent))
		}
		if sent[0].Title != "Continue watching" {
			t.Errorf("Title = %q, want the reminder title", sent[0].Title)
		}
		if s.Pending() != 0 {
			t.Errorf("Pending = %d after delivery, want 0", s.Pending())
		}
	})
}

func TestSchedule_DelayOutOfRange_Rejected(t *testing.T) {
	n := newMockNotifier()
	s := NewScheduler(n, nil)
	defer s.Close()

	for _, delay := range []time.Duration{0, 500 * time.Millisecond, 11 * time.Second, -time.Second} {
		if _, err := s.Schedule(Reminder{Title: "x", Delay: delay}); err == nil {
			t.Errorf("Schedule with delay %v = nil, want error", delay)
		}
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d after rejected schedules, want 0", s.Pending())
	}
}

func TestSchedule_UnavailableNotifier_Rejected(t *testing.T) {
	n := newMockNotifier()
	n.unavailable = true
	s := NewScheduler(n, nil)
	defer s.Close()

	if _, err := s.Schedule(Reminder{Title: "x", Delay: 2 * time.Second}); err == nil {
		t.Error("Schedule on unavailable notifier = nil, want error")
	}
}

func TestCancel_DropsPendingReminder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		n := newMockNotifier()
		s := NewScheduler(n, nil)
		defer s.Close()

		id, err := s.Schedule(Reminder{Title: "x", Delay: 5 * time.Second})
		if err != nil {
			t.Fatalf("Schedule: %v", err)
		}
		if !s.Cancel(id) {
			t.Error("Cancel = false, want true")
		}

		time.Sleep(time.Minute)
		if got := len(n.Sent()); got != 0 {
			t.Errorf("delivered %d notifications after cancel, want 0", got)
		}
	})
}

func TestClose_PendingTimersNeverFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		n := newMockNotifier()
		s := NewScheduler(n, nil)

		for range 3 {
			if _, err := s.Schedule(Reminder{Title: "x", Delay: 2 * time.Second}); err != nil {
				t.Fatalf("Schedule: %v", err)
			}
		}
		s.Close()
		s.Close() // idempotent

		time.Sleep(time.Minute)
		if got := len(n.Sent()); got != 0 {
			t.Errorf("delivered %d notifications after close, want 0", got)
		}
	})
}

func TestTap_RoutesTargetToCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		n := newMockNotifier()
		var mu sync.Mutex
		var targets []string
		s := NewScheduler(n, func(target string) {
			mu.Lock()
			targets = append(targets, target)
			mu.Unlock()
		})
		defer s.Close()

		if _, err := s.Schedule(Reminder{Title: "x", Delay: time.Second, Target: "watch"}); err != nil {
			t.Fatalf("Schedule: %v", err)
		}
		time.Sleep(1100 * time.Millisecond)

		n.SimulateTap(1)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		if len(targets) != 1 || targets[0] != "watch" {
			t.Errorf("tap targets = %v, want [watch]", targets)
		}
	})
}

func TestTap_UnknownNotification_Ignored(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		n := newMockNotifier()
		called := false
		s := NewScheduler(n, func(string) { called = true })
		defer s.Close()

		n.SimulateTap(99)
		synctest.Wait()

		if called {
			t.Error("tap callback invoked for unknown notification")
		}
	})
}
