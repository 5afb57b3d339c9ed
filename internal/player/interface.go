// internal/player/interface.go
package player

import "time"

// Controller defines the player contract for dependency injection and
// testing. Commands are fire-and-observe: their effect is visible only
// through later events, never synchronously.
type Controller interface {
	// Load replaces the current media source and leaves the player paused
	// at position zero. It fails only on immediate transport errors;
	// source-level failures arrive later as ErrorEvents.
	Load(url string) error

	Play()
	Pause()
	SeekTo(pos time.Duration)
	SetVolume(v float64) // clamped to [0, 1]
	SetMuted(muted bool)

	EnterFullscreen()
	ExitFullscreen()

	// Events delivers status ticks, fullscreen lifecycle events, and
	// errors in arrival order. The channel is closed by Close.
	Events() <-chan Event

	Close() error
}

// Verify implementations at compile time.
var (
	_ Controller = (*Mpv)(nil)
	_ Controller = (*Mock)(nil)
)
