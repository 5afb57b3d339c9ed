package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/afontaine/marquee/internal/browser"
	"github.com/afontaine/marquee/internal/config"
	"github.com/afontaine/marquee/internal/notify"
	"github.com/afontaine/marquee/internal/orientation"
	"github.com/afontaine/marquee/internal/playback"
	"github.com/afontaine/marquee/internal/player"
	"github.com/afontaine/marquee/internal/state"
)

type testEnv struct {
	model   Model
	player  *player.Mock
	browser *browser.Stub
	state   *state.Mock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	p := player.NewMock()
	coord := playback.New(p, orientation.NewMock())
	b := browser.NewStub()
	sched := notify.NewScheduler(notify.NewUnavailable(), nil)
	st := state.NewMock()

	t.Cleanup(func() {
		sched.Close()
		coord.Close()
		p.Close()
		b.Close()
	})

	cfg := &config.Config{}
	m := New(cfg, Deps{Coord: coord, Browser: b, Scheduler: sched, StateMgr: st})
	m.Width = 80
	m.Height = 24

	return &testEnv{model: m, player: p, browser: b, state: st}
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestNew_RestoresSavedState(t *testing.T) {
	p := player.NewMock()
	coord := playback.New(p, orientation.NewMock())
	st := state.NewMock()
	st.SetSaved(state.ShellState{
		PortalURL:  "https://portal.example",
		Volume:     0.4,
		Muted:      true,
		LastScreen: "watch",
	})
	b := browser.NewStub()
	sched := notify.NewScheduler(notify.NewUnavailable(), nil)
	t.Cleanup(func() {
		sched.Close()
		coord.Close()
		p.Close()
		b.Close()
	})

	m := New(&config.Config{PortalURL: "https://config.example"}, Deps{
		Coord: coord, Browser: b, Scheduler: sched, StateMgr: st,
	})

	if m.Screen != ScreenWatch {
		t.Errorf("Screen = %v, want ScreenWatch", m.Screen)
	}
	if m.PortalURL != "https://portal.example" {
		t.Errorf("PortalURL = %q, want saved value over config", m.PortalURL)
	}
	if m.UI.Volume != 0.4 {
		t.Errorf("Volume = %v, want restored 0.4", m.UI.Volume)
	}
	if !m.UI.Muted {
		t.Error("Muted = false, want restored true")
	}
}

func TestTab_SwitchesScreenAndPersists(t *testing.T) {
	env := newTestEnv(t)

	m := update(t, env.model, key("tab"))
	if m.Screen != ScreenWatch {
		t.Fatalf("Screen = %v after tab, want ScreenWatch", m.Screen)
	}

	saved, _ := env.state.Get()
	if saved == nil || saved.LastScreen != "watch" {
		t.Errorf("saved state = %+v, want LastScreen watch", saved)
	}

	m = update(t, m, key("tab"))
	if m.Screen != ScreenPortal {
		t.Errorf("Screen = %v after second tab, want ScreenPortal", m.Screen)
	}
}

func TestWatchKeys_DriveCoordinator(t *testing.T) {
	env := newTestEnv(t)
	if err := env.model.Coord.LoadStream("https://cdn.example/live.m3u8"); err != nil {
		t.Fatalf("LoadStream: %v", err)
	}
	m := env.model
	m.Screen = ScreenWatch
	m.UI = m.Coord.UI()

	m = update(t, m, key(" "))
	if env.player.PlayCalls() != 1 {
		t.Errorf("PlayCalls = %d after space on paused stream, want 1", env.player.PlayCalls())
	}

	m = update(t, m, key("m"))
	if !m.UI.Muted {
		t.Error("Muted = false after m key")
	}

	m = update(t, m, key("f"))
	if m.UI.Fullscreen != playback.EnteringFullscreen {
		t.Errorf("Fullscreen = %v after f key, want EnteringFullscreen", m.UI.Fullscreen)
	}
}

func TestVolumeKeys_ClampAndSave(t *testing.T) {
	env := newTestEnv(t)
	m := env.model
	m.Screen = ScreenWatch

	for range 30 {
		m = update(t, m, key("+"))
	}
	if m.UI.Volume != 1.0 {
		t.Errorf("Volume = %v after many increments, want clamped 1.0", m.UI.Volume)
	}
	if env.state.SaveCalls() == 0 {
		t.Error("volume changes were not persisted")
	}
}

func TestScrubKeys_CommitSeeksOnce(t *testing.T) {
	env := newTestEnv(t)
	if err := env.model.Coord.LoadStream("https://cdn.example/vod.m3u8"); err != nil {
		t.Fatalf("LoadStream: %v", err)
	}
	env.player.EmitStatus(player.Status{
		Position: 60 * time.Second,
		Duration: 600 * time.Second,
		Playing:  true,
	})
	waitFor(t, func() bool { return env.model.Coord.Duration() == 600*time.Second })

	m := env.model
	m.Screen = ScreenWatch
	m.UI = m.Coord.UI()

	m = update(t, m, key("s"))
	if !m.UI.Scrubbing {
		t.Fatal("Scrubbing = false after s key")
	}

	m = update(t, m, key("right"))
	m = update(t, m, key("right"))
	if got := m.UI.Position; got != 70*time.Second {
		t.Errorf("scrub position = %v, want 70s", got)
	}

	m = update(t, m, key("enter"))
	if m.UI.Scrubbing {
		t.Error("Scrubbing = true after commit")
	}
	if calls := env.player.SeekCalls(); len(calls) != 1 || calls[0] != 70*time.Second {
		t.Errorf("SeekCalls = %v, want one seek to 70s", calls)
	}
}

func TestScrubEsc_CancelsWithoutSeek(t *testing.T) {
	env := newTestEnv(t)
	if err := env.model.Coord.LoadStream("https://cdn.example/vod.m3u8"); err != nil {
		t.Fatalf("LoadStream: %v", err)
	}
	env.player.EmitStatus(player.Status{
		Position: 60 * time.Second,
		Duration: 600 * time.Second,
		Playing:  true,
	})
	waitFor(t, func() bool { return env.model.Coord.Duration() == 600*time.Second })

	m := env.model
	m.Screen = ScreenWatch
	m.UI = m.Coord.UI()

	m = update(t, m, key("s"))
	m = update(t, m, key("right"))
	m = update(t, m, key("esc"))

	if m.UI.Scrubbing {
		t.Error("Scrubbing = true after esc")
	}
	if calls := env.player.SeekCalls(); len(calls) != 0 {
		t.Errorf("SeekCalls = %v after cancel, want none", calls)
	}
}

func TestBrowserEvents_CollectStreamsAndTitle(t *testing.T) {
	env := newTestEnv(t)
	m := env.model

	m = update(t, m, BrowserEventMsg{Event: browser.LoadFinished{
		URL: "https://portal.example", Title: "Portal Home",
	}})
	if m.PageTitle != "Portal Home" {
		t.Errorf("PageTitle = %q", m.PageTitle)
	}

	found := browser.StreamFound{URL: "https://cdn.example/live.m3u8", Kind: browser.StreamHLS}
	m = update(t, m, BrowserEventMsg{Event: found})
	m = update(t, m, BrowserEventMsg{Event: found})
	if len(m.FoundStreams) != 1 {
		t.Errorf("FoundStreams = %d entries, want deduplicated 1", len(m.FoundStreams))
	}
}

func TestLoadFailed_SurfacesError(t *testing.T) {
	env := newTestEnv(t)
	m := update(t, env.model, BrowserEventMsg{Event: browser.LoadFailed{
		URL: "https://portal.example", Desc: "net::ERR_NAME_NOT_RESOLVED",
	}})
	if !strings.Contains(m.ErrorMsg, "ERR_NAME_NOT_RESOLVED") {
		t.Errorf("ErrorMsg = %q, want load failure surfaced", m.ErrorMsg)
	}
}

func TestLoadResult_SwitchesToWatch(t *testing.T) {
	env := newTestEnv(t)
	if err := env.model.Coord.LoadStream("https://cdn.example/live.m3u8"); err != nil {
		t.Fatalf("LoadStream: %v", err)
	}

	m := update(t, env.model, LoadResultMsg{URL: "https://cdn.example/live.m3u8"})
	if m.Screen != ScreenWatch {
		t.Errorf("Screen = %v after successful load, want ScreenWatch", m.Screen)
	}
}

func TestLoadResult_ErrorStaysOnScreen(t *testing.T) {
	env := newTestEnv(t)
	m := update(t, env.model, LoadResultMsg{
		URL: "ftp://bad", Err: errors.New("unsupported scheme"),
	})
	if m.Screen != ScreenPortal {
		t.Errorf("Screen = %v after failed load, want ScreenPortal", m.Screen)
	}
	if m.ErrorMsg == "" {
		t.Error("ErrorMsg empty after failed load")
	}
}

func TestReminderTapped_SwitchesScreen(t *testing.T) {
	env := newTestEnv(t)
	m := update(t, env.model, ReminderTappedMsg{Target: "watch"})
	if m.Screen != ScreenWatch {
		t.Errorf("Screen = %v after reminder tap, want ScreenWatch", m.Screen)
	}
}

func TestReminder_UnavailableNotifierSurfacesError(t *testing.T) {
	env := newTestEnv(t)
	env.model.Cfg.Reminder.DelaySeconds = 5

	_, cmd := env.model.handlePortalKey(key("n"))
	if cmd == nil {
		t.Fatal("n key produced no command")
	}
	msg, ok := cmd().(ReminderScheduledMsg)
	if !ok {
		t.Fatalf("command produced %T, want ReminderScheduledMsg", cmd())
	}
	if msg.Err == nil {
		t.Error("scheduling on unavailable notifier succeeded, want error")
	}
}

func TestView_RendersBothScreens(t *testing.T) {
	env := newTestEnv(t)
	m := env.model

	if v := m.View(); !strings.Contains(v, "Portal") {
		t.Error("portal view missing header")
	}

	m.Screen = ScreenWatch
	if v := m.View(); !strings.Contains(v, "No stream loaded") {
		t.Error("watch view missing empty-state text")
	}
}

func TestURLInput_EnterLoadsStream(t *testing.T) {
	env := newTestEnv(t)
	m := env.model
	m.Screen = ScreenWatch

	m = update(t, m, key("u"))
	if m.InputPurpose != inputStreamURL {
		t.Fatal("u key did not open the URL input")
	}

	m.Input.SetValue("https://cdn.example/live.m3u8")
	next, cmd := m.handleInputKey(key("enter"))
	m = next.(Model)
	if m.InputPurpose != inputNone {
		t.Error("input still active after enter")
	}
	if cmd == nil {
		t.Fatal("enter produced no load command")
	}
	if msg, ok := cmd().(LoadResultMsg); !ok || msg.Err != nil {
		t.Errorf("load command result = %+v, want successful LoadResultMsg", msg)
	}
}

// waitFor polls for an asynchronous condition from the coordinator pump.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}
