package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/afontaine/marquee/internal/browser"
	"github.com/afontaine/marquee/internal/notify"
	"github.com/afontaine/marquee/internal/playback"
	"github.com/afontaine/marquee/internal/stream"
)

// waitForChannel creates a command that waits for a value from a channel
// and converts it to a message. onResult receives the value and a boolean
// indicating if the channel is still open.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

func (m Model) watchPlaybackState() tea.Cmd {
	return waitForChannel(m.sub.StateChanged, func(e playback.StateChange, ok bool) tea.Msg {
		if !ok {
			return PlaybackClosedMsg{}
		}
		return PlaybackStateMsg(e)
	})
}

func (m Model) watchPosition() tea.Cmd {
	return waitForChannel(m.sub.PositionChanged, func(e playback.PositionChange, ok bool) tea.Msg {
		if !ok {
			return PlaybackClosedMsg{}
		}
		return PlaybackPositionMsg(e)
	})
}

func (m Model) watchFullscreen() tea.Cmd {
	return waitForChannel(m.sub.FullscreenChanged, func(e playback.FullscreenChange, ok bool) tea.Msg {
		if !ok {
			return PlaybackClosedMsg{}
		}
		return FullscreenMsg(e)
	})
}

func (m Model) watchOverlay() tea.Cmd {
	return waitForChannel(m.sub.OverlayChanged, func(e playback.OverlayChange, ok bool) tea.Msg {
		if !ok {
			return PlaybackClosedMsg{}
		}
		return OverlayMsg(e)
	})
}

func (m Model) watchSource() tea.Cmd {
	return waitForChannel(m.sub.SourceChanged, func(e playback.SourceChange, ok bool) tea.Msg {
		if !ok {
			return PlaybackClosedMsg{}
		}
		return SourceMsg(e)
	})
}

func (m Model) watchPlaybackError() tea.Cmd {
	return waitForChannel(m.sub.Error, func(e playback.ErrorEvent, ok bool) tea.Msg {
		if !ok {
			return PlaybackClosedMsg{}
		}
		return PlaybackErrorMsg(e)
	})
}

func (m Model) watchBrowser() tea.Cmd {
	return waitForChannel(m.Browser.Events(), func(e browser.Event, ok bool) tea.Msg {
		if !ok {
			return BrowserClosedMsg{}
		}
		return BrowserEventMsg{Event: e}
	})
}

// navigateCmd asks the browser to load a page. The load outcome arrives
// separately as a browser event.
func navigateCmd(b browser.Browser, url string) tea.Cmd {
	return func() tea.Msg {
		return NavigateResultMsg{URL: url, Err: b.Navigate(url)}
	}
}

// loadStreamCmd hands a stream URL to the coordinator.
func loadStreamCmd(c *playback.Coordinator, url string) tea.Cmd {
	return func() tea.Msg {
		return LoadResultMsg{URL: url, Err: c.LoadStream(url)}
	}
}

// probeCmd fetches and decodes an HLS playlist off the UI goroutine.
func probeCmd(url string) tea.Cmd {
	return func() tea.Msg {
		result, err := stream.Probe(context.Background(), url)
		return ProbeResultMsg{Result: result, Err: err}
	}
}

// scheduleReminderCmd arms a delayed notification.
func scheduleReminderCmd(s *notify.Scheduler, r notify.Reminder) tea.Cmd {
	return func() tea.Msg {
		id, err := s.Schedule(r)
		return ReminderScheduledMsg{ID: id, Err: err}
	}
}
