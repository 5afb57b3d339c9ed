// Package state persists the shell's small bits of cross-session
// state (last portal URL, last stream URL, volume, mute, last screen)
// in a sqlite database under the XDG data directory.
//
// Playback position is deliberately never persisted: the watch screen
// always starts a stream from the beginning.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "marquee"
	dbFileName   = "marquee.db"
	saveDebounce = 500 * time.Millisecond
)

// ShellState is the single persisted row.
type ShellState struct {
	PortalURL  string
	StreamURL  string
	Volume     float64
	Muted      bool
	LastScreen string
}

// Interface is the persistence contract consumed by the shell.
type Interface interface {
	Get() (*ShellState, error)
	Save(s ShellState)
	Close() error
}

// Verify implementations at compile time.
var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)

// Manager is the sqlite-backed implementation. Saves are debounced:
// only the last state written within the debounce window hits disk, and
// Close flushes whatever is still pending.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *ShellState
}

// Open opens the database at its XDG data path.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenAt(dbPath)
}

// OpenAt opens the database at an explicit path (used by tests).
func OpenAt(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Close stops the debounce timer, flushes any pending state and closes
// the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		_ = saveShell(m.db, *pending)
	}

	return m.db.Close()
}

// Get returns the persisted state, or nil when nothing was saved yet.
func (m *Manager) Get() (*ShellState, error) {
	return getShell(m.db)
}

// Save schedules s for writing after the debounce window; a newer Save
// within the window replaces it.
func (m *Manager) Save(s ShellState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveShell(m.db, *pending)
		}
	})
}
