//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"

	"github.com/afontaine/marquee/internal/log"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// dbusNotifier sends notifications via D-Bus and watches the
// ActionInvoked signal for taps.
type dbusNotifier struct {
	conn *dbus.Conn
	obj  dbus.BusObject
	taps chan uint32
}

// New creates a Notifier that sends desktop notifications via D-Bus.
// Returns a no-op notifier if D-Bus is unavailable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		// D-Bus not available, degrade gracefully
		log.L().WithError(err).Warn("session bus unavailable, notifications disabled")
		return &stubNotifier{}, nil //nolint:nilerr // graceful fallback when D-Bus unavailable
	}

	n := &dbusNotifier{
		conn: conn,
		obj:  conn.Object(dbusNotifyDest, dbusNotifyPath),
		taps: make(chan uint32, 8),
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(dbusNotifyPath),
		dbus.WithMatchInterface(dbusNotifyInterface),
		dbus.WithMatchMember("ActionInvoked"),
	); err != nil {
		log.L().WithError(err).Warn("cannot watch notification actions, taps disabled")
		return n, nil
	}

	signals := make(chan *dbus.Signal, 16)
	conn.Signal(signals)
	go n.watchSignals(signals)

	return n, nil
}

// watchSignals forwards default-action invocations as taps.
func (n *dbusNotifier) watchSignals(signals chan *dbus.Signal) {
	for sig := range signals {
		if sig.Name != dbusNotifyInterface+".ActionInvoked" || len(sig.Body) < 2 {
			continue
		}
		id, okID := sig.Body[0].(uint32)
		action, okAction := sig.Body[1].(string)
		if !okID || !okAction || action != "default" {
			continue
		}
		select {
		case n.taps <- id:
		default:
		}
	}
}

// Notify sends a notification via D-Bus with a default action so the
// server reports taps back through ActionInvoked.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant("marquee"),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		"Marquee",
		notif.ReplacesID,
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{"default", "Open"},
		hints,
		notif.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Close closes a notification by ID.
func (n *dbusNotifier) Close(id uint32) error {
	call := n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id)
	return call.Err
}

func (n *dbusNotifier) Taps() <-chan uint32 { return n.taps }

func (n *dbusNotifier) Available() bool { return true }
