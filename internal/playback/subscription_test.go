package playback

import (
	"testing"
	"testing/synctest"
	"time"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendState(StateChange{Playing: true})
		sub.sendPosition(PositionChange{Position: 30 * time.Second, Duration: 120 * time.Second})
		sub.sendFullscreen(FullscreenChange{Previous: Windowed, Current: EnteringFullscreen})
		sub.sendOverlay(OverlayChange{Phase: OverlayFadingOut})
		sub.sendSource(SourceChange{URL: "https://host/a.m3u8"})
		sub.sendError(ErrorEvent{Desc: "boom"})

		if e := <-sub.StateChanged; !e.Playing {
			t.Errorf("StateChanged.Playing = false, want true")
		}
		if e := <-sub.PositionChanged; e.Position != 30*time.Second {
			t.Errorf("PositionChanged.Position = %v, want 30s", e.Position)
		}
		if e := <-sub.FullscreenChanged; e.Current != EnteringFullscreen {
			t.Errorf("FullscreenChanged.Current = %v, want EnteringFullscreen", e.Current)
		}
		if e := <-sub.OverlayChanged; e.Phase != OverlayFadingOut {
			t.Errorf("OverlayChanged.Phase = %v, want FadingOut", e.Phase)
		}
		if e := <-sub.SourceChanged; e.URL != "https://host/a.m3u8" {
			t.Errorf("SourceChanged.URL = %q, want the sent URL", e.URL)
		}
		if e := <-sub.Error; e.Desc != "boom" {
			t.Errorf("Error.Desc = %q, want boom", e.Desc)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	// Fill buffer past capacity
	for range eventBufferSize + 5 {
		sub.sendOverlay(OverlayChange{Phase: OverlayVisible})
	}

	count := 0
	for {
		select {
		case <-sub.OverlayChanged:
			count++
		default:
			if count != eventBufferSize {
				t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
			}
			return
		}
	}
}

func TestCoordinatorSubscribe_EventsDelivered(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	sub := c.Subscribe()

	startPlaying(c)

	select {
	case e := <-sub.StateChanged:
		if !e.Playing {
			t.Errorf("StateChanged.Playing = false, want true")
		}
	default:
		t.Fatal("no StateChanged event delivered")
	}
	select {
	case e := <-sub.PositionChanged:
		if e.Position != time.Second {
			t.Errorf("PositionChanged.Position = %v, want 1s", e.Position)
		}
	default:
		t.Fatal("no PositionChanged event delivered")
	}
}
