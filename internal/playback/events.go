package playback

import "time"

// StateChange is emitted when the displayed playing/buffering flags change.
type StateChange struct {
	Playing   bool
	Buffering bool
}

// PositionChange is emitted when the displayed position or the known
// duration changes, whether from a status snapshot or a scrub update.
type PositionChange struct {
	Position time.Duration
	Duration time.Duration
}

// FullscreenChange is emitted on every fullscreen state transition,
// including the intermediate Entering/Exiting states.
type FullscreenChange struct {
	Previous FullscreenState
	Current  FullscreenState
}

// OverlayChange is emitted on every overlay phase transition.
type OverlayChange struct {
	Phase OverlayPhase
}

// SourceChange is emitted when a new stream source is adopted.
type SourceChange struct {
	URL string
}

// ErrorEvent is emitted when the player reports a playback failure.
// The coordinator has already reset itself to paused/Idle.
type ErrorEvent struct {
	Desc string
}
