// internal/playback/fullscreen.go
package playback

import "github.com/afontaine/marquee/internal/orientation"

// ToggleFullscreen requests a fullscreen transition. The synchronizer
// does not assume success: it waits in the Entering/Exiting state for
// the player's own lifecycle event before committing and locking the
// orientation. Toggles while a transition is pending are ignored.
func (c *Coordinator) ToggleFullscreen() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	prev := c.fullscreen
	switch c.fullscreen {
	case Windowed:
		c.fullscreen = EnteringFullscreen
		c.player.EnterFullscreen()
	case Fullscreen:
		c.fullscreen = ExitingFullscreen
		c.player.ExitFullscreen()
	case EnteringFullscreen, ExitingFullscreen:
		// Transition pending; wait for the player's lifecycle event.
		return
	}
	c.showControlsLocked()
	c.sendFullscreenLocked(prev)
}

// HandleWillPresent commits the Fullscreen state and issues exactly one
// landscape lock. Duplicate events for an already-committed edge are
// idempotent. Host-initiated presentations (no pending request) are
// honored the same way.
func (c *Coordinator) HandleWillPresent() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.fullscreen == Fullscreen {
		return
	}
	prev := c.fullscreen
	c.fullscreen = Fullscreen
	// Best-effort: a lock failure never reverts the presentation state.
	if err := c.locker.Lock(orientation.Landscape); err != nil {
		c.logOrientationFailure(orientation.Landscape, err)
	}
	c.sendFullscreenLocked(prev)
}

// HandleWillDismiss commits the Windowed state and issues exactly one
// portrait lock, with the same idempotence and best-effort rules as
// HandleWillPresent.
func (c *Coordinator) HandleWillDismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.fullscreen == Windowed {
		return
	}
	prev := c.fullscreen
	c.fullscreen = Windowed
	if err := c.locker.Lock(orientation.Portrait); err != nil {
		c.logOrientationFailure(orientation.Portrait, err)
	}
	c.sendFullscreenLocked(prev)
}

// FullscreenState returns the synchronizer's current state.
func (c *Coordinator) FullscreenState() FullscreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fullscreen
}

func (c *Coordinator) sendFullscreenLocked(prev FullscreenState) {
	cur := c.fullscreen
	c.notify(func(sub *Subscription) {
		sub.sendFullscreen(FullscreenChange{Previous: prev, Current: cur})
	})
}
