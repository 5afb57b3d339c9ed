// internal/playback/status.go
package playback

import "github.com/afontaine/marquee/internal/player"

// HandleStatus ingests a periodic player status snapshot.
//
// Duration, playing and buffering always update. The reported position
// is adopted only while no scrub gesture owns the displayed position.
// A finished stream forces playing=false and issues exactly one
// rewind-for-replay seek; no pause command is sent because the backend
// already halts at end of stream.
func (c *Coordinator) HandleStatus(s player.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	s = s.Clamped()

	wasPlaying := c.playing
	wasBuffering := c.buffering
	prevPos := c.pos.value
	prevDur := c.duration

	c.duration = s.Duration
	c.playing = s.Playing
	c.buffering = s.Buffering

	if c.pos.owner == ownerReported {
		c.pos.value = s.Position
	}

	if s.Finished {
		c.playing = false
		c.player.SeekTo(0)
		if c.pos.owner == ownerReported {
			c.pos.value = 0
		}
	}

	// The auto-hide quiet period only makes sense while playing: pausing
	// cancels a pending hide, resuming with the overlay up re-arms it.
	if wasPlaying && !c.playing && c.overlay == OverlayVisible {
		c.cancelOverlayTimerLocked()
	}
	if !wasPlaying && c.playing && c.overlay == OverlayVisible && c.overlayTimer == nil {
		c.armOverlayTimerLocked(overlayQuiet)
	}

	if c.playing != wasPlaying || c.buffering != wasBuffering {
		playing, buffering := c.playing, c.buffering
		c.notify(func(sub *Subscription) {
			sub.sendState(StateChange{Playing: playing, Buffering: buffering})
		})
	}
	if c.pos.value != prevPos || c.duration != prevDur {
		pos, dur := c.pos.value, c.duration
		c.notify(func(sub *Subscription) {
			sub.sendPosition(PositionChange{Position: pos, Duration: dur})
		})
	}
}
