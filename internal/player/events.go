package player

// Event is implemented by everything the player can report.
type Event interface {
	playerEvent()
}

// StatusEvent carries a periodic status snapshot.
type StatusEvent struct {
	Status Status
}

// WillPresentEvent signals that the player is about to present its
// fullscreen surface. Emitted for both requested and host-initiated
// presentations.
type WillPresentEvent struct{}

// WillDismissEvent signals that the fullscreen surface is about to be
// dismissed.
type WillDismissEvent struct{}

// ErrorEvent reports a playback failure (network, demuxer, decoder).
// The player survives it; the coordinator decides what the user sees.
type ErrorEvent struct {
	Desc string
}

func (StatusEvent) playerEvent()      {}
func (WillPresentEvent) playerEvent() {}
func (WillDismissEvent) playerEvent() {}
func (ErrorEvent) playerEvent()       {}
