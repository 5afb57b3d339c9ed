package playback

import (
	"errors"
	"testing"

	"github.com/afontaine/marquee/internal/orientation"
)

func TestToggleFullscreen_RequestsPresentation_NoLockYet(t *testing.T) {
	c, p, l := newTestCoordinator(t)

	c.ToggleFullscreen()

	if got := c.FullscreenState(); got != EnteringFullscreen {
		t.Errorf("FullscreenState = %v, want EnteringFullscreen", got)
	}
	if p.EnterFullscreenCalls() != 1 {
		t.Errorf("EnterFullscreenCalls = %d, want 1", p.EnterFullscreenCalls())
	}
	// No lock until the player confirms presentation.
	if calls := l.LockCalls(); len(calls) != 0 {
		t.Errorf("LockCalls = %v before WillPresent, want none", calls)
	}
}

func TestWillPresent_CommitsAndLocksLandscapeOnce(t *testing.T) {
	c, _, l := newTestCoordinator(t)

	c.ToggleFullscreen()
	c.HandleWillPresent()

	if got := c.FullscreenState(); got != Fullscreen {
		t.Errorf("FullscreenState = %v, want Fullscreen", got)
	}
	calls := l.LockCalls()
	if len(calls) != 1 || calls[0] != orientation.Landscape {
		t.Errorf("LockCalls = %v, want exactly one Landscape lock", calls)
	}
}

func TestWillPresent_DuplicateEvents_Idempotent(t *testing.T) {
	c, _, l := newTestCoordinator(t)

	c.ToggleFullscreen()
	c.HandleWillPresent()
	c.HandleWillPresent()
	c.HandleWillPresent()

	if calls := l.LockCalls(); len(calls) != 1 {
		t.Errorf("LockCalls = %v after duplicate WillPresent, want one", calls)
	}
}

func TestWillDismiss_CommitsAndLocksPortraitOnce(t *testing.T) {
	c, _, l := newTestCoordinator(t)

	c.ToggleFullscreen()
	c.HandleWillPresent()
	c.ToggleFullscreen()
	c.HandleWillDismiss()
	c.HandleWillDismiss()

	if got := c.FullscreenState(); got != Windowed {
		t.Errorf("FullscreenState = %v, want Windowed", got)
	}
	calls := l.LockCalls()
	want := []orientation.Orientation{orientation.Landscape, orientation.Portrait}
	if len(calls) != len(want) {
		t.Fatalf("LockCalls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("LockCalls[%d] = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestToggleFullscreen_WhileTransitionPending_Ignored(t *testing.T) {
	c, p, _ := newTestCoordinator(t)

	c.ToggleFullscreen()
	c.ToggleFullscreen()
	c.ToggleFullscreen()

	if p.EnterFullscreenCalls() != 1 {
		t.Errorf("EnterFullscreenCalls = %d, want 1 (pending toggles ignored)", p.EnterFullscreenCalls())
	}
	if p.ExitFullscreenCalls() != 0 {
		t.Errorf("ExitFullscreenCalls = %d, want 0", p.ExitFullscreenCalls())
	}
}

func TestWillPresent_LockFailure_RetainsFullscreenState(t *testing.T) {
	c, _, l := newTestCoordinator(t)
	l.SetLockError(errors.New("rotation unsupported"))

	c.ToggleFullscreen()
	c.HandleWillPresent()

	// Orientation lock is best-effort; presentation state is never reverted.
	if got := c.FullscreenState(); got != Fullscreen {
		t.Errorf("FullscreenState = %v after lock failure, want Fullscreen", got)
	}
}

func TestWillPresent_HostInitiated_Honored(t *testing.T) {
	c, _, l := newTestCoordinator(t)

	// No pending request: the host presented on its own.
	c.HandleWillPresent()

	if got := c.FullscreenState(); got != Fullscreen {
		t.Errorf("FullscreenState = %v, want Fullscreen", got)
	}
	calls := l.LockCalls()
	if len(calls) != 1 || calls[0] != orientation.Landscape {
		t.Errorf("LockCalls = %v, want one Landscape lock", calls)
	}
}

func TestWillDismiss_WhileWindowed_NoLock(t *testing.T) {
	c, _, l := newTestCoordinator(t)

	c.HandleWillDismiss()

	if calls := l.LockCalls(); len(calls) != 0 {
		t.Errorf("LockCalls = %v for dismiss without entry edge, want none", calls)
	}
}

func TestFullscreen_AlternatingEdges_OneLockEach(t *testing.T) {
	c, _, l := newTestCoordinator(t)

	for range 3 {
		c.HandleWillPresent()
		c.HandleWillDismiss()
	}

	calls := l.LockCalls()
	if len(calls) != 6 {
		t.Fatalf("LockCalls = %v, want 6 (one per edge)", calls)
	}
	for i, call := range calls {
		want := orientation.Landscape
		if i%2 == 1 {
			want = orientation.Portrait
		}
		if call != want {
			t.Errorf("LockCalls[%d] = %v, want %v", i, call, want)
		}
	}
}
