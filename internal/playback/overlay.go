// internal/playback/overlay.go
package playback

import "time"

// Overlay visibility machine:
//
//	Hidden -> FadingIn(200ms) -> Visible -> FadingOut(500ms) -> Hidden
//
// At most one timer is ever pending. Every arm bumps a generation
// counter and every fire compares its generation against the current
// one, so a timer that fires after cancellation (or after Close) is a
// guaranteed no-op.
const (
	overlayFadeIn  = 200 * time.Millisecond
	overlayFadeOut = 500 * time.Millisecond
	overlayQuiet   = 3 * time.Second
)

// ShowControls reveals the control overlay (fading in when it was
// hidden) and, when playback is active, restarts the auto-hide quiet
// period. While paused nothing is armed: controls never auto-hide when
// there is nothing to wait out.
func (c *Coordinator) ShowControls() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showControlsLocked()
}

func (c *Coordinator) showControlsLocked() {
	if c.closed {
		return
	}
	c.cancelOverlayTimerLocked()
	switch c.overlay {
	case OverlayHidden, OverlayFadingOut:
		c.setOverlayLocked(OverlayFadingIn)
		c.armOverlayTimerLocked(overlayFadeIn)
	case OverlayFadingIn:
		// Restart the fade clock.
		c.armOverlayTimerLocked(overlayFadeIn)
	case OverlayVisible:
		if c.playing {
			c.armOverlayTimerLocked(overlayQuiet)
		}
	}
}

// Tap handles a tap on the video surface: reveal when hidden or mid
// fade-out; immediate fade-out when visible and playing. While paused a
// tap only reveals; there is no auto-hide to toggle against.
func (c *Coordinator) Tap() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	switch c.overlay {
	case OverlayHidden, OverlayFadingOut:
		c.showControlsLocked()
	case OverlayVisible, OverlayFadingIn:
		if !c.playing {
			c.showControlsLocked()
			return
		}
		c.cancelOverlayTimerLocked()
		c.setOverlayLocked(OverlayFadingOut)
		c.armOverlayTimerLocked(overlayFadeOut)
	}
}

// OverlayPhase returns the overlay machine's current phase.
func (c *Coordinator) OverlayPhase() OverlayPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.overlay
}

// armOverlayTimerLocked arms the single overlay timer. The caller must
// have canceled any pending timer first (cancel happens-before arm).
func (c *Coordinator) armOverlayTimerLocked(d time.Duration) {
	c.overlayGen++
	gen := c.overlayGen
	c.overlayTimer = time.AfterFunc(d, func() {
		c.overlayTimerFired(gen)
	})
}

// cancelOverlayTimerLocked stops the pending timer and bumps the
// generation so an in-flight fire that beat Stop is dropped.
func (c *Coordinator) cancelOverlayTimerLocked() {
	if c.overlayTimer != nil {
		c.overlayTimer.Stop()
		c.overlayTimer = nil
	}
	c.overlayGen++
}

// overlayTimerFired advances the overlay machine one phase. Stale
// generations (canceled timers, timers outlived by Close) do nothing.
func (c *Coordinator) overlayTimerFired(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.overlayGen {
		return
	}
	c.overlayTimer = nil
	switch c.overlay {
	case OverlayFadingIn:
		c.setOverlayLocked(OverlayVisible)
		if c.playing {
			// The quiet period is measured from ShowControls, so the
			// fade already consumed part of it.
			c.armOverlayTimerLocked(overlayQuiet - overlayFadeIn)
		}
	case OverlayVisible:
		c.setOverlayLocked(OverlayFadingOut)
		c.armOverlayTimerLocked(overlayFadeOut)
	case OverlayFadingOut:
		c.setOverlayLocked(OverlayHidden)
	case OverlayHidden:
	}
}

func (c *Coordinator) setOverlayLocked(p OverlayPhase) {
	if c.overlay == p {
		return
	}
	c.overlay = p
	c.notify(func(sub *Subscription) {
		sub.sendOverlay(OverlayChange{Phase: p})
	})
}
