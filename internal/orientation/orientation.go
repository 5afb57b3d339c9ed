// Package orientation abstracts display orientation locking. Locking is
// best-effort from the caller's perspective: failures are reported but
// callers are expected to log and move on.
package orientation

// Orientation is a lockable display orientation.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "Portrait"
	case Landscape:
		return "Landscape"
	default:
		return "Unknown"
	}
}

// Locker locks the display to an orientation.
type Locker interface {
	Lock(o Orientation) error
}

// Verify implementations at compile time.
var (
	_ Locker = (*Xrandr)(nil)
	_ Locker = (*Stub)(nil)
	_ Locker = (*Mock)(nil)
)
