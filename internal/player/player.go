// Package player defines the media player contract consumed by the playback
// coordinator, together with the mpv-backed implementation and a mock for
// tests. The player renders video in its own surface; this package only
// carries commands in and status out.
package player

import "time"

// Status is a point-in-time snapshot of the player, delivered on every
// status tick (at least once per second while media is loaded).
//
// Position is authoritative only when no scrub gesture is in progress;
// the coordinator decides whether to adopt it.
type Status struct {
	Position  time.Duration
	Duration  time.Duration // 0 until known
	Playing   bool
	Buffering bool
	Finished  bool // playback just reached end of stream
}

// Clamped returns the status with Position forced into [0, Duration].
// With an unknown duration only the lower bound applies.
func (s Status) Clamped() Status {
	if s.Position < 0 {
		s.Position = 0
	}
	if s.Duration > 0 && s.Position > s.Duration {
		s.Position = s.Duration
	}
	return s
}
