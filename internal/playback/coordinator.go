// Package playback implements the watch screen's playback coordinator:
// a single state machine reconciling player status snapshots, scrub
// gestures, fullscreen/orientation transitions and the overlay
// auto-hide timer into one consistent UI state.
//
// All entities here are transient and owned exclusively by one screen
// instance; nothing survives Close.
package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/afontaine/marquee/internal/log"
	"github.com/afontaine/marquee/internal/orientation"
	"github.com/afontaine/marquee/internal/player"
	"github.com/afontaine/marquee/internal/stream"
)

// Coordinator owns all mutable playback UI state for the watch screen.
//
// Methods are called from the UI loop, the player event pump and timer
// callbacks; a single mutex serializes them. No method blocks: player
// commands are fire-and-observe, their effect shows up in later status
// snapshots or lifecycle events.
type Coordinator struct {
	mu sync.Mutex

	player player.Controller
	locker orientation.Locker

	source      string
	pos         displayed
	scrubOrigin time.Duration // displayed position when the gesture began
	duration    time.Duration
	playing     bool
	buffering   bool
	volume      float64
	muted       bool
	errText     string

	fullscreen FullscreenState

	overlay      OverlayPhase
	overlayGen   uint64 // bumped on every arm/cancel; stale fires compare against it
	overlayTimer *time.Timer

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates a coordinator around the given player and orientation
// locker and starts consuming the player's event stream. The overlay
// starts visible; nothing is armed until playback starts.
func New(p player.Controller, l orientation.Locker) *Coordinator {
	c := &Coordinator{
		player:     p,
		locker:     l,
		volume:     1,
		fullscreen: Windowed,
		overlay:    OverlayVisible,
	}
	go c.pump()
	return c
}

// pump forwards player events to the handlers in arrival order. It
// exits when the player closes its event channel.
func (c *Coordinator) pump() {
	for ev := range c.player.Events() {
		switch e := ev.(type) {
		case player.StatusEvent:
			c.HandleStatus(e.Status)
		case player.WillPresentEvent:
			c.HandleWillPresent()
		case player.WillDismissEvent:
			c.HandleWillDismiss()
		case player.ErrorEvent:
			c.HandleError(e.Desc)
		}
	}
}

// UI returns a snapshot of the current UI state.
func (c *Coordinator) UI() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uiLocked()
}

func (c *Coordinator) uiLocked() UIState {
	return UIState{
		Source:     c.source,
		Position:   c.pos.value,
		Duration:   c.duration,
		Playing:    c.playing,
		Buffering:  c.buffering,
		Volume:     c.volume,
		Muted:      c.muted,
		Scrubbing:  c.pos.owner == ownerUserDriven,
		Fullscreen: c.fullscreen,
		Overlay:    c.overlay,
		Err:        c.errText,
	}
}

// Position returns the displayed position.
func (c *Coordinator) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos.value
}

// Duration returns the known stream duration (0 until known).
func (c *Coordinator) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// Playing returns the displayed playing flag.
func (c *Coordinator) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// LoadStream validates raw and, on success, adopts it as the stream
// source: playback state resets to {position 0, duration unknown,
// paused, buffering}, any scrub gesture is destroyed and the overlay is
// shown. Rejection mutates nothing.
func (c *Coordinator) LoadStream(raw string) error {
	url, err := stream.Normalize(raw)
	if err != nil {
		return fmt.Errorf("load stream: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("load stream: coordinator closed")
	}

	c.source = url
	c.pos = displayed{owner: ownerReported, value: 0}
	c.duration = 0
	c.playing = false
	c.buffering = true
	c.errText = ""

	if err := c.player.Load(url); err != nil {
		c.buffering = false
		c.errText = err.Error()
		return fmt.Errorf("load stream: %w", err)
	}

	c.showControlsLocked()
	c.notify(func(s *Subscription) {
		s.sendSource(SourceChange{URL: url})
		s.sendPosition(PositionChange{Position: 0, Duration: 0})
		s.sendState(StateChange{Playing: false, Buffering: true})
	})
	return nil
}

// Source returns the current stream source URL ("" before the first load).
func (c *Coordinator) Source() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source
}

// Play requests playback to resume. The playing flag flips when the
// next status snapshot confirms it.
func (c *Coordinator) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.player.Play()
	c.showControlsLocked()
}

// Pause requests playback to pause.
func (c *Coordinator) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.player.Pause()
	c.showControlsLocked()
}

// TogglePlay pauses when playing and plays when paused.
func (c *Coordinator) TogglePlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.playing {
		c.player.Pause()
	} else {
		c.player.Play()
	}
	c.showControlsLocked()
}

// SetVolume clamps v to [0, 1], forwards it to the player and treats
// the change as a control interaction.
func (c *Coordinator) SetVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	c.volume = v
	c.player.SetVolume(v)
	c.showControlsLocked()
}

// Volume returns the current volume in [0, 1].
func (c *Coordinator) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// ToggleMute flips the mute flag.
func (c *Coordinator) ToggleMute() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.muted = !c.muted
	c.player.SetMuted(c.muted)
	c.showControlsLocked()
}

// HandleError ingests a player-reported playback error: the message is
// surfaced in the UI state, the coordinator resets to paused with any
// gesture destroyed, and nothing is retried.
func (c *Coordinator) HandleError(desc string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.errText = desc
	c.playing = false
	c.buffering = false
	if c.pos.owner == ownerUserDriven {
		c.pos = displayed{owner: ownerReported, value: c.scrubOrigin}
	}
	c.player.Pause()
	c.notify(func(s *Subscription) {
		s.sendError(ErrorEvent{Desc: desc})
		s.sendState(StateChange{Playing: false, Buffering: false})
	})
}

// ClearError drops the displayed error message.
func (c *Coordinator) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errText = ""
}

// Close tears the coordinator down: the overlay timer is canceled, any
// gesture is destroyed, one pause command is issued and subscriptions
// are closed. Safe to call more than once; timers firing afterwards are
// no-ops.
func (c *Coordinator) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.cancelOverlayTimerLocked()
	if c.pos.owner == ownerUserDriven {
		c.pos = displayed{owner: ownerReported, value: c.scrubOrigin}
	}
	c.player.Pause()
	c.mu.Unlock()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	return nil
}

// Subscribe creates a new event subscription.
func (c *Coordinator) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// notify runs fn for every live subscription. Sends are non-blocking so
// holding the state mutex around this is fine.
func (c *Coordinator) notify(fn func(*Subscription)) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		fn(sub)
	}
}

// logger is shared by the handlers for best-effort failure reporting.
func (c *Coordinator) logOrientationFailure(o orientation.Orientation, err error) {
	log.L().WithError(err).WithField("orientation", o.String()).
		Warn("orientation lock failed")
}
