// internal/playback/state.go
package playback

import "time"

// SkipStep is the distance of a non-gestural skip seek.
const SkipStep = 10 * time.Second

// FullscreenState tracks the fullscreen/orientation synchronizer.
//
// State machine:
//
//	            ToggleFullscreen          WillPresent
//	Windowed ---------------------> EnteringFullscreen ----+
//	    ^                                                  |
//	    |                                                  v
//	    +---- ExitingFullscreen <--------------------- Fullscreen
//	       WillDismiss           ToggleFullscreen
//
// Orientation lock commands are issued only on the WillPresent and
// WillDismiss edges, never on toggle requests: presentation is not
// assumed to succeed until the player confirms it.
type FullscreenState int

const (
	Windowed FullscreenState = iota
	EnteringFullscreen
	Fullscreen
	ExitingFullscreen
)

// String returns the state name.
func (s FullscreenState) String() string {
	switch s {
	case Windowed:
		return "Windowed"
	case EnteringFullscreen:
		return "EnteringFullscreen"
	case Fullscreen:
		return "Fullscreen"
	case ExitingFullscreen:
		return "ExitingFullscreen"
	default:
		return "Unknown"
	}
}

// Presented returns true while the fullscreen surface is up.
func (s FullscreenState) Presented() bool {
	return s == Fullscreen || s == ExitingFullscreen
}

// OverlayPhase tracks the control overlay's visibility machine.
type OverlayPhase int

const (
	OverlayHidden OverlayPhase = iota
	OverlayFadingIn
	OverlayVisible
	OverlayFadingOut
)

// String returns the phase name.
func (p OverlayPhase) String() string {
	switch p {
	case OverlayHidden:
		return "Hidden"
	case OverlayFadingIn:
		return "FadingIn"
	case OverlayVisible:
		return "Visible"
	case OverlayFadingOut:
		return "FadingOut"
	default:
		return "Unknown"
	}
}

// Showing returns true when the overlay should be rendered at all.
func (p OverlayPhase) Showing() bool {
	return p != OverlayHidden
}

// positionOwner tags who currently owns the displayed position.
type positionOwner int

const (
	ownerReported   positionOwner = iota // last player status snapshot
	ownerUserDriven                      // scrub gesture in progress
)

// displayed is the displayed-position value together with its owner.
// While a scrub gesture is active it exclusively owns the value; status
// snapshots may write it only in the Reported variant.
type displayed struct {
	owner positionOwner
	value time.Duration
}

// UIState is a point-in-time snapshot of everything the watch screen
// renders. It is a value copy; mutating it has no effect.
type UIState struct {
	Source    string
	Position  time.Duration
	Duration  time.Duration
	Playing   bool
	Buffering bool
	Volume    float64
	Muted     bool
	Scrubbing bool

	Fullscreen FullscreenState
	Overlay    OverlayPhase

	// Err is the last player-reported error, empty when none.
	Err string
}

// clampPosition forces pos into [0, duration]. With an unknown duration
// only the lower bound applies.
func clampPosition(pos, duration time.Duration) time.Duration {
	if pos < 0 {
		return 0
	}
	if duration > 0 && pos > duration {
		return duration
	}
	return pos
}
