package app

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/afontaine/marquee/internal/browser"
	"github.com/afontaine/marquee/internal/errmsg"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case PlaybackStateMsg:
		m.UI = m.Coord.UI()
		return m, m.watchPlaybackState()

	case PlaybackPositionMsg:
		m.UI = m.Coord.UI()
		return m, m.watchPosition()

	case FullscreenMsg:
		m.UI = m.Coord.UI()
		return m, m.watchFullscreen()

	case OverlayMsg:
		m.UI = m.Coord.UI()
		return m, m.watchOverlay()

	case SourceMsg:
		m.UI = m.Coord.UI()
		m.StreamTitle = ""
		m.Live = false
		m.saveState()
		return m, tea.Batch(m.watchSource(), probeCmd(msg.URL))

	case PlaybackErrorMsg:
		m.UI = m.Coord.UI()
		m.ErrorMsg = msg.Desc
		return m, m.watchPlaybackError()

	case PlaybackClosedMsg:
		return m, tea.Quit

	case BrowserEventMsg:
		return m.handleBrowserEvent(msg.Event)

	case BrowserClosedMsg:
		// Browser gone; the portal screen degrades to URL entry only.
		m.PortalLoading = false
		return m, nil

	case NavigateResultMsg:
		if msg.Err != nil {
			m.PortalLoading = false
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpPortalNavigate, msg.URL, msg.Err)
		}
		return m, nil

	case LoadResultMsg:
		if msg.Err != nil {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpStreamLoad, msg.URL, msg.Err)
			return m, nil
		}
		m.ErrorMsg = ""
		m.Screen = ScreenWatch
		m.UI = m.Coord.UI()
		m.saveState()
		return m, nil

	case ProbeResultMsg:
		return m.handleProbeResult(msg)

	case ReminderScheduledMsg:
		if msg.Err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpReminderSchedule, msg.Err)
		} else {
			m.StatusMsg = "Reminder scheduled"
		}
		return m, nil

	case ReminderTappedMsg:
		m.Screen = screenFromName(msg.Target)
		m.saveState()
		return m, nil
	}

	return m, nil
}

func (m Model) handleBrowserEvent(ev browser.Event) (tea.Model, tea.Cmd) {
	switch ev := ev.(type) {
	case browser.LoadFinished:
		m.PortalLoading = false
		m.PageTitle = ev.Title
		m.StatusMsg = ""

	case browser.LoadFailed:
		m.PortalLoading = false
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpPortalNavigate, ev.URL, errDesc(ev.Desc))

	case browser.StreamFound:
		if !m.hasStream(ev.URL) {
			m.FoundStreams = append(m.FoundStreams, ev)
		}
	}
	return m, m.watchBrowser()
}

func (m Model) handleProbeResult(msg ProbeResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Probes are advisory; mp4 sources and odd servers fail here
		// without affecting playback.
		m.StatusMsg = ""
		return m, nil
	}
	m.Live = msg.Result.Live
	switch {
	case msg.Result.Master && len(msg.Result.Variants) > 0:
		m.StatusMsg = "Best rendition: " + msg.Result.Variants[0].Label()
	case msg.Result.Live:
		m.StatusMsg = "Live stream"
	}
	return m, nil
}

func errDesc(desc string) error {
	return errors.New(desc)
}

func (m Model) hasStream(url string) bool {
	for _, s := range m.FoundStreams {
		if s.URL == url {
			return true
		}
	}
	return false
}
