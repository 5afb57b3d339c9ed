package log

import "os"

// openLogFile opens the log file for appending, creating it if needed.
func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
