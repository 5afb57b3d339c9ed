// Package app is the bubbletea shell: a portal screen hosting the
// embedded browser and a watch screen hosting playback.
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/afontaine/marquee/internal/browser"
	"github.com/afontaine/marquee/internal/config"
	"github.com/afontaine/marquee/internal/notify"
	"github.com/afontaine/marquee/internal/playback"
	"github.com/afontaine/marquee/internal/state"
	"github.com/afontaine/marquee/internal/ui/styles"
)

// Screen identifies which of the two screens is active.
type Screen int

const (
	ScreenPortal Screen = iota
	ScreenWatch
)

// String returns the screen name as persisted in shell state.
func (s Screen) String() string {
	if s == ScreenWatch {
		return "watch"
	}
	return "portal"
}

// screenFromName maps a persisted screen name back to a Screen.
func screenFromName(name string) Screen {
	if name == "watch" {
		return ScreenWatch
	}
	return ScreenPortal
}

// inputPurpose says what the text input box is collecting.
type inputPurpose int

const (
	inputNone inputPurpose = iota
	inputStreamURL
	inputPortalURL
)

// Deps are the long-lived components the shell drives. The shell owns
// none of them; main wires and tears them down.
type Deps struct {
	Coord     *playback.Coordinator
	Browser   browser.Browser
	Scheduler *notify.Scheduler
	StateMgr  state.Interface
}

// Model is the root application model.
type Model struct {
	Screen Screen
	Cfg    *config.Config

	Coord     *playback.Coordinator
	Browser   browser.Browser
	Scheduler *notify.Scheduler
	StateMgr  state.Interface

	sub *playback.Subscription

	// Latest playback snapshot, refreshed on every coordinator event.
	UI playback.UIState

	// Portal screen state.
	PortalURL     string
	PageTitle     string
	PortalLoading bool
	FoundStreams  []browser.StreamFound
	StreamCursor  int

	// Watch screen state.
	StreamTitle string
	Live        bool

	StatusMsg string
	ErrorMsg  string

	Input        textinput.Model
	InputPurpose inputPurpose

	Spinner spinner.Model

	Width  int
	Height int
}

// New creates the shell model and restores persisted state.
func New(cfg *config.Config, deps Deps) Model {
	input := textinput.New()
	input.Placeholder = "https://"
	input.CharLimit = 2048
	input.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.T().S().Warning

	m := Model{
		Screen:    ScreenPortal,
		Cfg:       cfg,
		Coord:     deps.Coord,
		Browser:   deps.Browser,
		Scheduler: deps.Scheduler,
		StateMgr:  deps.StateMgr,
		sub:       deps.Coord.Subscribe(),
		UI:        deps.Coord.UI(),
		PortalURL: cfg.PortalURL,
		Input:     input,
		Spinner:   sp,
	}

	if saved, err := deps.StateMgr.Get(); err == nil && saved != nil {
		if saved.PortalURL != "" {
			m.PortalURL = saved.PortalURL
		}
		if saved.Volume > 0 {
			deps.Coord.SetVolume(saved.Volume)
		}
		if saved.Muted {
			deps.Coord.ToggleMute()
		}
		m.Screen = screenFromName(saved.LastScreen)
		m.UI = deps.Coord.UI()
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.watchPlaybackState(),
		m.watchPosition(),
		m.watchFullscreen(),
		m.watchOverlay(),
		m.watchSource(),
		m.watchPlaybackError(),
		m.watchBrowser(),
		m.Spinner.Tick,
	}
	if m.PortalURL != "" {
		cmds = append(cmds, navigateCmd(m.Browser, m.PortalURL))
	}
	return tea.Batch(cmds...)
}

// saveState persists the bits of shell state that survive restarts.
// The manager debounces, so calling this on every change is fine.
func (m Model) saveState() {
	m.StateMgr.Save(state.ShellState{
		PortalURL:  m.PortalURL,
		StreamURL:  m.UI.Source,
		Volume:     m.UI.Volume,
		Muted:      m.UI.Muted,
		LastScreen: m.Screen.String(),
	})
}
