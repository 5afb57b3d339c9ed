package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/afontaine/marquee/internal/notify"
)

// scrubStep is the position change per arrow press during a scrub
// gesture. Distinct from playback.SkipStep: skips commit immediately,
// scrub steps only move the preview.
const scrubStep = 5 * time.Second

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.InputPurpose != inputNone {
		return m.handleInputKey(msg)
	}

	// Global bindings first.
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		if m.Screen == ScreenPortal {
			m.Screen = ScreenWatch
		} else {
			m.Screen = ScreenPortal
		}
		m.StatusMsg = ""
		m.saveState()
		return m, nil
	}

	if m.Screen == ScreenWatch {
		return m.handleWatchKey(msg)
	}
	return m.handlePortalKey(msg)
}

func (m Model) handleWatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.UI.Scrubbing {
		return m.handleScrubKey(msg)
	}

	var save bool
	switch msg.String() {
	case " ":
		m.Coord.TogglePlay()
		m.Coord.ShowControls()

	case "enter":
		m.Coord.Tap()

	case "f":
		m.Coord.ToggleFullscreen()

	case "left", "h":
		m.Coord.SkipBack()
		m.Coord.ShowControls()

	case "right", "l":
		m.Coord.SkipForward()
		m.Coord.ShowControls()

	case "s":
		m.Coord.BeginScrub()
		m.Coord.ShowControls()

	case "+", "=":
		m.Coord.SetVolume(m.Coord.Volume() + 0.05)
		m.Coord.ShowControls()
		save = true

	case "-":
		m.Coord.SetVolume(m.Coord.Volume() - 0.05)
		m.Coord.ShowControls()
		save = true

	case "m":
		m.Coord.ToggleMute()
		m.Coord.ShowControls()
		save = true

	case "u":
		m.InputPurpose = inputStreamURL
		m.Input.SetValue(m.UI.Source)
		m.Input.Focus()
		return m, textinput.Blink

	case "c":
		m.Coord.ClearError()
		m.ErrorMsg = ""
	}

	m.UI = m.Coord.UI()
	if save {
		m.saveState()
	}
	return m, nil
}

// handleScrubKey runs while a scrub gesture owns the displayed position.
func (m Model) handleScrubKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.Coord.Scrub(m.Coord.Position() - scrubStep)

	case "right", "l":
		m.Coord.Scrub(m.Coord.Position() + scrubStep)

	case "enter", "s":
		m.Coord.CommitScrub()

	case "esc":
		m.Coord.CancelScrub()
	}

	m.UI = m.Coord.UI()
	return m, nil
}

func (m Model) handlePortalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "o":
		m.InputPurpose = inputPortalURL
		m.Input.SetValue(m.PortalURL)
		m.Input.Focus()
		return m, textinput.Blink

	case "r":
		if m.PortalURL != "" {
			m.PortalLoading = true
			m.FoundStreams = nil
			m.StreamCursor = 0
			return m, navigateCmd(m.Browser, m.PortalURL)
		}

	case "up", "k":
		if m.StreamCursor > 0 {
			m.StreamCursor--
		}

	case "down", "j":
		if m.StreamCursor < len(m.FoundStreams)-1 {
			m.StreamCursor++
		}

	case "enter":
		if len(m.FoundStreams) > 0 {
			return m, loadStreamCmd(m.Coord, m.FoundStreams[m.StreamCursor].URL)
		}

	case "n":
		reminder := notify.Reminder{
			Title:  "Marquee",
			Body:   "Your stream is waiting",
			Delay:  m.Cfg.ReminderDelay(),
			Target: ScreenWatch.String(),
		}
		return m, scheduleReminderCmd(m.Scheduler, reminder)

	case "c":
		m.ErrorMsg = ""
		m.StatusMsg = ""
	}

	return m, nil
}

// handleInputKey runs while the URL input box is focused.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.Input.Value()
		purpose := m.InputPurpose
		m.InputPurpose = inputNone
		m.Input.Blur()

		switch purpose {
		case inputStreamURL:
			return m, loadStreamCmd(m.Coord, value)
		case inputPortalURL:
			m.PortalURL = value
			m.PortalLoading = true
			m.FoundStreams = nil
			m.StreamCursor = 0
			m.saveState()
			return m, navigateCmd(m.Browser, value)
		}
		return m, nil

	case "esc":
		m.InputPurpose = inputNone
		m.Input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}
