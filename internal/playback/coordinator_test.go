package playback

import (
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/afontaine/marquee/internal/orientation"
	"github.com/afontaine/marquee/internal/player"
)

func TestLoadStream_InvalidURL_MutatesNothing(t *testing.T) {
	c, p, _ := newTestCoordinator(t)
	c.HandleStatus(player.Status{Position: 30 * time.Second, Duration: 120 * time.Second, Playing: true})
	before := c.UI()

	tests := []string{
		"not-a-url",
		"ftp://host/file.m3u8",
		"",
		"   ",
		"https://",
	}
	for _, raw := range tests {
		if err := c.LoadStream(raw); err == nil {
			t.Errorf("LoadStream(%q) = nil, want error", raw)
		}
	}

	after := c.UI()
	if after != before {
		t.Errorf("UI state mutated by rejected loads:\nbefore %+v\nafter  %+v", before, after)
	}
	if calls := p.LoadCalls(); len(calls) != 0 {
		t.Errorf("LoadCalls = %v, want none", calls)
	}
}

func TestLoadStream_Valid_ResetsPlaybackState(t *testing.T) {
	c, p, _ := newTestCoordinator(t)
	c.HandleStatus(player.Status{Position: 30 * time.Second, Duration: 120 * time.Second, Playing: true})

	if err := c.LoadStream("https://host/new.m3u8"); err != nil {
		t.Fatalf("LoadStream: %v", err)
	}

	ui := c.UI()
	if ui.Position != 0 {
		t.Errorf("Position = %v after load, want 0", ui.Position)
	}
	if ui.Duration != 0 {
		t.Errorf("Duration = %v after load, want 0 (unknown)", ui.Duration)
	}
	if ui.Playing {
		t.Error("Playing = true after load, want false")
	}
	if !ui.Buffering {
		t.Error("Buffering = false after load, want true")
	}
	if ui.Source != "https://host/new.m3u8" {
		t.Errorf("Source = %q, want the normalized URL", ui.Source)
	}
	calls := p.LoadCalls()
	if len(calls) != 1 || calls[0] != "https://host/new.m3u8" {
		t.Errorf("LoadCalls = %v, want one load of the URL", calls)
	}
}

func TestLoadStream_DestroysActiveGesture(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	c.HandleStatus(player.Status{Position: 30 * time.Second, Duration: 120 * time.Second})
	c.BeginScrub()

	if err := c.LoadStream("https://host/new.m3u8"); err != nil {
		t.Fatalf("LoadStream: %v", err)
	}

	if c.UI().Scrubbing {
		t.Error("Scrubbing = true after load, want gesture destroyed")
	}
	// Ticks are adopted again.
	c.HandleStatus(player.Status{Position: 3 * time.Second, Duration: 90 * time.Second, Playing: true})
	if got := c.Position(); got != 3*time.Second {
		t.Errorf("Position = %v, want 3s from the new stream", got)
	}
}

func TestLoadStream_PlayerLoadFailure_Surfaced(t *testing.T) {
	c, p, _ := newTestCoordinator(t)
	p.SetLoadError(errors.New("transport gone"))

	err := c.LoadStream("https://host/broken.m3u8")
	if err == nil {
		t.Fatal("LoadStream = nil, want error")
	}
	ui := c.UI()
	if ui.Err == "" {
		t.Error("UI.Err empty after load failure, want message")
	}
	if ui.Buffering {
		t.Error("Buffering = true after load failure, want false")
	}
}

func TestHandleError_ResetsToPausedIdle(t *testing.T) {
	c, p, _ := newTestCoordinator(t)
	c.HandleStatus(player.Status{Position: 30 * time.Second, Duration: 120 * time.Second, Playing: true})
	c.BeginScrub()

	c.HandleError("segment fetch failed")

	ui := c.UI()
	if ui.Err != "segment fetch failed" {
		t.Errorf("UI.Err = %q, want the reported description", ui.Err)
	}
	if ui.Playing {
		t.Error("Playing = true after error, want false")
	}
	if ui.Scrubbing {
		t.Error("Scrubbing = true after error, want gesture destroyed")
	}
	if p.PauseCalls() == 0 {
		t.Error("PauseCalls = 0 after error, want a pause issued")
	}
}

func TestSetVolume_Clamps(t *testing.T) {
	c, p, _ := newTestCoordinator(t)

	c.SetVolume(1.7)
	c.SetVolume(-0.3)
	c.SetVolume(0.5)

	calls := p.VolumeCalls()
	want := []float64{1, 0, 0.5}
	if len(calls) != len(want) {
		t.Fatalf("VolumeCalls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("VolumeCalls[%d] = %v, want %v", i, calls[i], want[i])
		}
	}
	if got := c.Volume(); got != 0.5 {
		t.Errorf("Volume = %v, want 0.5", got)
	}
}

func TestToggleMute_FlipsFlag(t *testing.T) {
	c, p, _ := newTestCoordinator(t)

	c.ToggleMute()
	if !c.UI().Muted {
		t.Error("Muted = false after first toggle, want true")
	}
	c.ToggleMute()
	if c.UI().Muted {
		t.Error("Muted = true after second toggle, want false")
	}
	calls := p.MuteCalls()
	if len(calls) != 2 || !calls[0] || calls[1] {
		t.Errorf("MuteCalls = %v, want [true false]", calls)
	}
}

func TestClose_Idempotent_IssuesOnePause(t *testing.T) {
	c, p, _ := newTestCoordinator(t)
	c.HandleStatus(player.Status{Position: time.Second, Duration: 60 * time.Second, Playing: true})

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if p.PauseCalls() != 1 {
		t.Errorf("PauseCalls = %d, want 1 (teardown pause issued once)", p.PauseCalls())
	}
}

func TestClose_CommandsAfterwardsAreNoOps(t *testing.T) {
	c, p, _ := newTestCoordinator(t)
	_ = c.Close()
	seeksBefore := len(p.SeekCalls())

	c.Play()
	c.Pause()
	c.SkipForward()
	c.BeginScrub()
	c.ToggleFullscreen()
	c.ShowControls()
	c.Tap()

	if got := len(p.SeekCalls()); got != seeksBefore {
		t.Errorf("seeks issued after close: %d", got-seeksBefore)
	}
	if p.PlayCalls() != 0 {
		t.Errorf("PlayCalls = %d after close, want 0", p.PlayCalls())
	}
	if p.EnterFullscreenCalls() != 0 {
		t.Errorf("EnterFullscreenCalls = %d after close, want 0", p.EnterFullscreenCalls())
	}
}

func TestPump_DeliversPlayerEventsInOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := player.NewMock()
		l := orientation.NewMock()
		c := New(p, l)
		defer func() { _ = c.Close(); _ = p.Close() }()

		p.EmitStatus(player.Status{Position: 5 * time.Second, Duration: 60 * time.Second, Playing: true})
		p.Emit(player.WillPresentEvent{})
		p.EmitStatus(player.Status{Position: 6 * time.Second, Duration: 60 * time.Second, Playing: true})
		synctest.Wait()

		ui := c.UI()
		if ui.Position != 6*time.Second {
			t.Errorf("Position = %v, want 6s", ui.Position)
		}
		if ui.Fullscreen != Fullscreen {
			t.Errorf("Fullscreen = %v, want Fullscreen", ui.Fullscreen)
		}
		if calls := l.LockCalls(); len(calls) != 1 || calls[0] != orientation.Landscape {
			t.Errorf("LockCalls = %v, want one Landscape lock", calls)
		}
	})
}

func TestPump_ErrorEvent_Surfaced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := player.NewMock()
		c := New(p, orientation.NewMock())
		defer func() { _ = c.Close(); _ = p.Close() }()

		p.Emit(player.ErrorEvent{Desc: "network down"})
		synctest.Wait()

		if got := c.UI().Err; got != "network down" {
			t.Errorf("UI.Err = %q, want the error description", got)
		}
	})
}
