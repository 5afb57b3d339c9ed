//go:build linux

// Package mpris exposes playback over the MPRIS D-Bus interface so
// desktop media keys and applets can drive the watch screen.
package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/afontaine/marquee/internal/playback"
)

// Adapter connects the playback coordinator to MPRIS over D-Bus.
type Adapter struct {
	coord  *playback.Coordinator
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(coord *playback.Coordinator) (*Adapter, error) {
	a := &Adapter{coord: coord}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{coord: coord}

	a.server = server.NewServer("marquee", rootAdapter, playerAdapter)

	// Listen blocks; run it in background.
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Marquee", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"application/vnd.apple.mpegurl", "video/mp4"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	coord *playback.Coordinator
}

func (p *playerAdapter) Next() error {
	p.coord.SkipForward()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.coord.SkipBack()
	return nil
}

func (p *playerAdapter) Pause() error {
	p.coord.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.coord.TogglePlay()
	return nil
}

func (p *playerAdapter) Stop() error {
	// Streams have no stop distinct from pause.
	p.coord.Pause()
	return nil
}

func (p *playerAdapter) Play() error {
	p.coord.Play()
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	target := p.coord.Position() + time.Duration(offset)*time.Microsecond
	p.coord.SeekTo(target)
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.coord.SeekTo(time.Duration(position) * time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(uri string) error {
	return p.coord.LoadStream(uri)
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	ui := p.coord.UI()
	switch {
	case ui.Source == "":
		return types.PlaybackStatusStopped, nil
	case ui.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	ui := p.coord.UI()
	if ui.Source == "" {
		return types.Metadata{}, nil
	}

	return types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(ui.Source)),
		Length:  types.Microseconds(ui.Duration.Microseconds()),
		Title:   ui.Source,
		Url:     ui.Source,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	ui := p.coord.UI()
	if ui.Muted {
		return 0, nil
	}
	return ui.Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.coord.SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.coord.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	// Next/Previous map to skip seeks, which need a known duration.
	return p.coord.Duration() > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.coord.Duration() > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.coord.Source() != "", nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.coord.Duration() > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(source string) string {
	h := fnv.New64a()
	h.Write([]byte(source))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
