package state

import (
	"database/sql"

	"github.com/afontaine/marquee/internal/db"
)

const currentSchemaVersion = 1

func initSchema(sqlDB *sql.DB) error {
	_, err := sqlDB.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS shell_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			portal_url TEXT,
			stream_url TEXT,
			volume REAL NOT NULL DEFAULT 1.0,
			muted INTEGER NOT NULL DEFAULT 0,
			last_screen TEXT
		);
	`)
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}

func getShell(sqlDB *sql.DB) (*ShellState, error) {
	row := sqlDB.QueryRow(`
		SELECT portal_url, stream_url, volume, muted, last_screen
		FROM shell_state WHERE id = 1
	`)

	var s ShellState
	var portal, streamURL, screen sql.NullString
	err := row.Scan(&portal, &streamURL, &s.Volume, &s.Muted, &screen)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.PortalURL = db.NullStringValue(portal)
	s.StreamURL = db.NullStringValue(streamURL)
	s.LastScreen = db.NullStringValue(screen)
	return &s, nil
}

func saveShell(sqlDB *sql.DB, s ShellState) error {
	return db.WithTx(sqlDB, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO shell_state (id, portal_url, stream_url, volume, muted, last_screen)
			VALUES (1, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				portal_url = excluded.portal_url,
				stream_url = excluded.stream_url,
				volume = excluded.volume,
				muted = excluded.muted,
				last_screen = excluded.last_screen
		`, s.PortalURL, s.StreamURL, s.Volume, s.Muted, s.LastScreen)
		return err
	})
}
