// Package log configures the shared application logger. The TUI owns
// the terminal, so everything is written to a file under the XDG state
// directory; stdout/stderr are never touched.
package log

import (
	"io"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

const appName = "marquee"

var (
	logger *logrus.Logger
	once   sync.Once
)

// Options controls logger initialization.
type Options struct {
	Level   string // logrus level name, "info" when empty or invalid
	JSON    bool   // JSON formatter instead of text
	Disable bool   // discard everything
}

// Init configures the shared logger. Safe to call once at startup;
// before Init, L returns a logger that discards everything.
func Init(opts Options) error {
	var initErr error
	once.Do(func() {
		l := logrus.New()
		l.SetOutput(io.Discard)

		if opts.Disable {
			logger = l
			return
		}

		level, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			level = logrus.InfoLevel
		}
		l.SetLevel(level)

		if opts.JSON {
			l.SetFormatter(&logrus.JSONFormatter{})
		}

		path, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
		if err != nil {
			initErr = err
			logger = l
			return
		}
		file, err := openLogFile(path)
		if err != nil {
			initErr = err
			logger = l
			return
		}
		l.SetOutput(file)
		logger = l
	})
	return initErr
}

// L returns the shared logger, a discarding one before Init.
func L() *logrus.Logger {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return logger
}
