// internal/notify/scheduler.go
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Reminder delay bounds. Anything outside is rejected before any timer
// is armed.
const (
	MinReminderDelay = 1 * time.Second
	MaxReminderDelay = 10 * time.Second
)

// Reminder is a delayed notification whose tap navigates to a screen.
type Reminder struct {
	Title  string
	Body   string
	Delay  time.Duration // in [MinReminderDelay, MaxReminderDelay]
	Target string        // screen name carried back on tap
}

// Scheduler arms one timer per scheduled reminder and routes taps on
// delivered notifications back to the supplied callback. A timer firing
// after Close is a no-op.
type Scheduler struct {
	mu       sync.Mutex
	notifier Notifier
	onTap    func(target string)

	pending map[string]*time.Timer // reminder id -> armed timer
	sent    map[uint32]string      // notification id -> target screen

	done   chan struct{}
	closed bool
}

// NewScheduler creates a scheduler delivering through n. onTap is
// invoked (from the scheduler's goroutine) with the reminder's target
// each time the user taps a delivered notification; it may be nil.
func NewScheduler(n Notifier, onTap func(target string)) *Scheduler {
	s := &Scheduler{
		notifier: n,
		onTap:    onTap,
		pending:  make(map[string]*time.Timer),
		sent:     make(map[uint32]string),
		done:     make(chan struct{}),
	}
	if n.Taps() != nil {
		go s.watchTaps()
	}
	return s
}

// Schedule validates the reminder and arms its delivery timer,
// returning the reminder's ID. Scheduling on an unavailable notifier
// fails without arming anything.
func (s *Scheduler) Schedule(r Reminder) (string, error) {
	if r.Delay < MinReminderDelay || r.Delay > MaxReminderDelay {
		return "", fmt.Errorf("schedule reminder: delay %v out of range [%v, %v]",
			r.Delay, MinReminderDelay, MaxReminderDelay)
	}
	if !s.notifier.Available() {
		return "", fmt.Errorf("schedule reminder: notifications unavailable")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", fmt.Errorf("schedule reminder: scheduler closed")
	}

	id := uuid.NewString()
	s.pending[id] = time.AfterFunc(r.Delay, func() {
		s.deliver(id, r)
	})
	return id, nil
}

// deliver fires when a reminder's delay elapses.
func (s *Scheduler) deliver(id string, r Reminder) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if _, ok := s.pending[id]; !ok {
		// Canceled between fire and lock acquisition.
		s.mu.Unlock()
		return
	}
	delete(s.pending, id)
	s.mu.Unlock()

	nid, err := s.notifier.Notify(Notification{
		Title:   r.Title,
		Body:    r.Body,
		Timeout: -1,
		Urgency: UrgencyNormal,
	})
	if err != nil || nid == 0 {
		return
	}

	s.mu.Lock()
	if !s.closed {
		s.sent[nid] = r.Target
	}
	s.mu.Unlock()
}

// Cancel drops a pending reminder. Returns false when it already fired
// or never existed.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer, ok := s.pending[id]
	if !ok {
		return false
	}
	timer.Stop()
	delete(s.pending, id)
	return true
}

// CancelAll drops every pending reminder.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
}

// Pending returns the number of armed reminders.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close cancels all pending reminders and stops tap watching. Safe to
// call more than once.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
	s.mu.Unlock()
	close(s.done)
}

// watchTaps routes notification activations to the tap callback.
func (s *Scheduler) watchTaps() {
	taps := s.notifier.Taps()
	for {
		select {
		case nid, ok := <-taps:
			if !ok {
				return
			}
			s.mu.Lock()
			target, known := s.sent[nid]
			delete(s.sent, nid)
			s.mu.Unlock()
			if known && s.onTap != nil {
				s.onTap(target)
			}
		case <-s.done:
			return
		}
	}
}
