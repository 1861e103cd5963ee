//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

// dbusNotifier sends notifications via D-Bus.
type dbusNotifier struct {
	client DBusClient
}

// New creates a Notifier that sends desktop notifications via D-Bus.
// Returns a no-op notifier if D-Bus is unavailable.
func New(logger *zap.Logger) Notifier {
	client, err := NewStdDBusClient()
	if err != nil {
		logger.Warn("D-Bus session bus unavailable, notifications disabled", zap.Error(err))
		return &stubNotifier{}
	}
	return &dbusNotifier{client: client}
}

// Notify sends a notification via D-Bus.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(appName),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.client.Call("Notify",
		appName,
		notif.ReplacesID,
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
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
	return n.client.Call("CloseNotification", id).Err
}

// Disconnect closes the private bus connection.
func (n *dbusNotifier) Disconnect() error {
	return n.client.Close()
}
