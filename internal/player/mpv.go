// internal/player/mpv.go
package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/afontaine/marquee/internal/log"
)

const (
	mpvConnectRetries = 50
	mpvConnectDelay   = 100 * time.Millisecond
)

// Mpv drives an external mpv process over its JSON IPC socket. Observed
// properties are folded into Status snapshots; fullscreen property
// flips become the WillPresent/WillDismiss lifecycle events.
type Mpv struct {
	cmd    *exec.Cmd
	conn   net.Conn
	socket string

	writeMu sync.Mutex

	statusMu sync.Mutex
	status   Status

	events    chan Event
	closeOnce sync.Once

	wasFullscreen bool
}

// NewMpv launches mpv idle with an IPC socket and connects to it.
// bin is the mpv binary ("mpv" when empty).
func NewMpv(bin string) (*Mpv, error) {
	if bin == "" {
		bin = "mpv"
	}
	socket := filepath.Join(os.TempDir(), fmt.Sprintf("marquee-mpv-%d.sock", os.Getpid()))

	cmd := exec.Command(bin,
		"--idle=yes",
		"--no-terminal",
		"--force-window=yes",
		"--keep-open=yes",
		"--input-ipc-server="+socket,
	)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start mpv: %w", err)
	}

	conn, err := connectMpv(socket)
	if err != nil {
		_ = cmd.Process.Kill()
		return nil, err
	}

	m := &Mpv{
		cmd:    cmd,
		conn:   conn,
		socket: socket,
		events: make(chan Event, 64),
	}

	for i, prop := range []string{
		"time-pos", "duration", "pause", "paused-for-cache", "eof-reached", "fullscreen",
	} {
		m.command("observe_property", i+1, prop)
	}

	go m.readLoop()
	return m, nil
}

// connectMpv waits for the IPC socket to appear; mpv creates it shortly
// after startup.
func connectMpv(socket string) (net.Conn, error) {
	var lastErr error
	for range mpvConnectRetries {
		conn, err := net.Dial("unix", socket)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		time.Sleep(mpvConnectDelay)
	}
	return nil, fmt.Errorf("connect to mpv ipc: %w", lastErr)
}

// command writes one fire-and-observe IPC command. Errors are logged
// only: command effects are observed through property changes, and a
// dead socket surfaces in the read loop.
func (m *Mpv) command(args ...any) {
	payload, err := json.Marshal(map[string]any{"command": args})
	if err != nil {
		log.L().WithError(err).Warn("mpv: encode command")
		return
	}
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	if _, err := m.conn.Write(append(payload, '\n')); err != nil {
		log.L().WithError(err).Warn("mpv: write command")
	}
}

func (m *Mpv) Load(url string) error {
	// Leave the player paused at zero; playback starts explicitly.
	m.command("set_property", "pause", true)
	m.command("loadfile", url)
	return nil
}

func (m *Mpv) Play() { m.command("set_property", "pause", false) }

func (m *Mpv) Pause() { m.command("set_property", "pause", true) }

func (m *Mpv) SeekTo(pos time.Duration) {
	m.command("seek", pos.Seconds(), "absolute")
}

func (m *Mpv) SetVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	m.command("set_property", "volume", v*100)
}

func (m *Mpv) SetMuted(muted bool) {
	m.command("set_property", "mute", muted)
}

func (m *Mpv) EnterFullscreen() {
	m.command("set_property", "fullscreen", true)
}

func (m *Mpv) ExitFullscreen() {
	m.command("set_property", "fullscreen", false)
}

func (m *Mpv) Events() <-chan Event {
	return m.events
}

// Close quits mpv and releases the socket. Safe to call more than once.
func (m *Mpv) Close() error {
	m.closeOnce.Do(func() {
		m.command("quit")
		_ = m.conn.Close()
		_ = m.cmd.Wait()
		_ = os.Remove(m.socket)
	})
	return nil
}

// mpvMessage is the subset of mpv IPC messages we care about.
type mpvMessage struct {
	Event  string `json:"event"`
	Name   string `json:"name"`
	Data   any    `json:"data"`
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

// readLoop parses IPC messages and emits player events in arrival
// order. It exits when the socket closes and is the only closer of the
// event channel, so emits can never hit a closed channel.
func (m *Mpv) readLoop() {
	defer close(m.events)
	scanner := bufio.NewScanner(m.conn)
	for scanner.Scan() {
		var msg mpvMessage
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			continue
		}
		switch msg.Event {
		case "property-change":
			m.handleProperty(msg.Name, msg.Data)
		case "end-file":
			if msg.Reason == "error" {
				m.emit(ErrorEvent{Desc: "playback failed (stream or network error)"})
			}
		}
	}
}

// handleProperty folds one observed property into the status snapshot
// and emits the resulting StatusEvent. Fullscreen flips become
// lifecycle events instead.
func (m *Mpv) handleProperty(name string, data any) {
	if name == "fullscreen" {
		fs, _ := data.(bool)
		if fs == m.wasFullscreen {
			return
		}
		m.wasFullscreen = fs
		if fs {
			m.emit(WillPresentEvent{})
		} else {
			m.emit(WillDismissEvent{})
		}
		return
	}

	m.statusMu.Lock()
	switch name {
	case "time-pos":
		if secs, ok := data.(float64); ok {
			m.status.Position = time.Duration(secs * float64(time.Second))
		}
	case "duration":
		if secs, ok := data.(float64); ok {
			m.status.Duration = time.Duration(secs * float64(time.Second))
		}
	case "pause":
		if paused, ok := data.(bool); ok {
			m.status.Playing = !paused
		}
	case "paused-for-cache":
		if buffering, ok := data.(bool); ok {
			m.status.Buffering = buffering
		}
	case "eof-reached":
		eof, _ := data.(bool)
		m.status.Finished = eof
	}
	status := m.status
	// Finished is edge-triggered for consumers; report it once.
	m.status.Finished = false
	m.statusMu.Unlock()

	m.emit(StatusEvent{Status: status})
}

// emit delivers an event without ever blocking the read loop.
func (m *Mpv) emit(ev Event) {
	select {
	case m.events <- ev:
	default:
		log.L().Debug("mpv: dropping event, consumer behind")
	}
}
