package main

import (
	"fmt"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/afontaine/marquee/internal/app"
	"github.com/afontaine/marquee/internal/browser"
	"github.com/afontaine/marquee/internal/config"
	"github.com/afontaine/marquee/internal/icons"
	"github.com/afontaine/marquee/internal/log"
	"github.com/afontaine/marquee/internal/mpris"
	"github.com/afontaine/marquee/internal/notify"
	"github.com/afontaine/marquee/internal/orientation"
	"github.com/afontaine/marquee/internal/playback"
	"github.com/afontaine/marquee/internal/player"
	"github.com/afontaine/marquee/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := log.Init(log.Options{
		Level:   cfg.Log.Level,
		JSON:    cfg.Log.JSON,
		Disable: cfg.Log.Disabled,
	}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	mpv, err := player.NewMpv(cfg.MpvBinary())
	if err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}
	defer mpv.Close()

	var locker orientation.Locker = orientation.NewStub()
	if cfg.HasDisplayOutput() {
		locker = orientation.NewXrandr(cfg.Display.XrandrOutput)
	}

	coord := playback.New(mpv, locker)
	defer coord.Close()

	web, err := browser.NewChrome(cfg.Browser.ChromeBinary)
	if err != nil {
		log.L().WithError(err).Warn("browser unavailable, portal degrades to URL entry")
		web = nil
	}

	notifier, err := notify.New()
	if err != nil {
		log.L().WithError(err).Warn("notifications unavailable")
		notifier = notify.NewUnavailable()
	}

	mprisAdapter, err := mpris.New(coord)
	if err != nil {
		log.L().WithError(err).Warn("mpris unavailable")
	} else {
		defer mprisAdapter.Close()
	}

	var b browser.Browser = browser.NewStub()
	if web != nil {
		b = web
		defer web.Close()
	}

	// The scheduler's tap callback runs on its own goroutine and the
	// program does not exist yet when the scheduler is built.
	var program atomic.Pointer[tea.Program]
	scheduler := notify.NewScheduler(notifier, func(target string) {
		if p := program.Load(); p != nil {
			p.Send(app.ReminderTappedMsg{Target: target})
		}
	})
	defer scheduler.Close()

	m := app.New(cfg, app.Deps{
		Coord:     coord,
		Browser:   b,
		Scheduler: scheduler,
		StateMgr:  stateMgr,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	program.Store(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
