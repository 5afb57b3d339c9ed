package app

import (
	"github.com/afontaine/marquee/internal/browser"
	"github.com/afontaine/marquee/internal/playback"
	"github.com/afontaine/marquee/internal/stream"
)

// Playback event messages, one per subscription channel.
type (
	PlaybackStateMsg    playback.StateChange
	PlaybackPositionMsg playback.PositionChange
	FullscreenMsg       playback.FullscreenChange
	OverlayMsg          playback.OverlayChange
	SourceMsg           playback.SourceChange
	PlaybackErrorMsg    playback.ErrorEvent
)

// PlaybackClosedMsg signals that the coordinator shut down.
type PlaybackClosedMsg struct{}

// BrowserEventMsg wraps one event from the embedded browser.
type BrowserEventMsg struct {
	Event browser.Event
}

// BrowserClosedMsg signals that the browser's event channel closed.
type BrowserClosedMsg struct{}

// NavigateResultMsg reports a navigation request that failed before it
// even started. Load outcomes arrive as browser events.
type NavigateResultMsg struct {
	URL string
	Err error
}

// LoadResultMsg reports the outcome of handing a stream URL to the
// coordinator.
type LoadResultMsg struct {
	URL string
	Err error
}

// ProbeResultMsg carries the outcome of probing a stream URL.
type ProbeResultMsg struct {
	Result *stream.ProbeResult
	Err    error
}

// ReminderScheduledMsg reports the outcome of scheduling a reminder.
type ReminderScheduledMsg struct {
	ID  string
	Err error
}

// ReminderTappedMsg is sent from outside the program when the user taps
// a delivered reminder notification.
type ReminderTappedMsg struct {
	Target string
}
