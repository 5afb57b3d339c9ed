// internal/playback/scrub.go
package playback

import "time"

// Scrub gesture machine: Idle -> Dragging -> Idle.
//
// While a gesture is active it exclusively owns the displayed position;
// status snapshots may not overwrite it. Drag updates never reach the
// player: one seek command is issued on commit, nothing on cancel.

// BeginScrub starts a scrub gesture: playback is paused so audio does
// not race ahead of the displayed position, and the gesture takes
// ownership of the displayed position seeded from its current value.
// No-op when a gesture is already active.
func (c *Coordinator) BeginScrub() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.pos.owner == ownerUserDriven {
		return
	}
	c.scrubOrigin = c.pos.value
	c.pos.owner = ownerUserDriven
	c.player.Pause()
	c.showControlsLocked()
}

// Scrub updates the user-driven displayed position (clamped). It never
// touches the player. No-op when no gesture is active.
func (c *Coordinator) Scrub(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.pos.owner != ownerUserDriven {
		return
	}
	c.pos.value = clampPosition(pos, c.duration)
	c.showControlsLocked()
	p, d := c.pos.value, c.duration
	c.notify(func(sub *Subscription) {
		sub.sendPosition(PositionChange{Position: p, Duration: d})
	})
}

// CommitScrub ends the gesture: the pending position is clamped, one
// seek command is issued, playback resumes, and ownership returns to
// Reported with the committed value displayed until the next snapshot
// lands. No-op when no gesture is active.
func (c *Coordinator) CommitScrub() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.pos.owner != ownerUserDriven {
		return
	}
	target := clampPosition(c.pos.value, c.duration)
	c.pos = displayed{owner: ownerReported, value: target}
	c.player.SeekTo(target)
	c.player.Play()
	c.showControlsLocked()
	d := c.duration
	c.notify(func(sub *Subscription) {
		sub.sendPosition(PositionChange{Position: target, Duration: d})
	})
}

// CancelScrub drops the pending position and restores the displayed
// position from before the gesture. No player command is issued.
func (c *Coordinator) CancelScrub() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pos.owner != ownerUserDriven {
		return
	}
	c.pos = displayed{owner: ownerReported, value: c.scrubOrigin}
	p, d := c.pos.value, c.duration
	c.notify(func(sub *Subscription) {
		sub.sendPosition(PositionChange{Position: p, Duration: d})
	})
}

// SkipForward seeks 10s forward from the displayed position.
func (c *Coordinator) SkipForward() {
	c.skip(SkipStep)
}

// SkipBack seeks 10s back from the displayed position.
func (c *Coordinator) SkipBack() {
	c.skip(-SkipStep)
}

// SeekTo issues a direct, non-gestural seek to pos (clamped). Used by
// the MPRIS adapter; inhibited under the same conditions as skip.
func (c *Coordinator) SeekTo(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skipToLocked(pos)
}

// skip is a direct, non-gestural seek relative to the displayed
// position. Inhibited while the duration is still unknown (there is no
// bound to clamp against) and while a gesture owns the position.
func (c *Coordinator) skip(delta time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skipToLocked(c.pos.value + delta)
}

func (c *Coordinator) skipToLocked(target time.Duration) {
	if c.closed || c.duration <= 0 || c.pos.owner == ownerUserDriven {
		return
	}
	target = clampPosition(target, c.duration)
	c.pos.value = target
	c.player.SeekTo(target)
	c.showControlsLocked()
	d := c.duration
	c.notify(func(sub *Subscription) {
		sub.sendPosition(PositionChange{Position: target, Duration: d})
	})
}
