package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// DBusClient defines the interface for D-Bus operations.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/genricoloni/traympd/internal/notify DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// Call invokes a method of the notification daemon
	// method: The member name (e.g., "Notify", "CloseNotification")
	Call(method string, args ...any) *dbus.Call
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// NewStdDBusClient opens a private session bus connection to the notification daemon
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{
		conn: conn,
		obj:  conn.Object(dbusNotifyDest, dbusNotifyPath),
	}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// Call invokes a method on org.freedesktop.Notifications
func (c *StdDBusClient) Call(method string, args ...any) *dbus.Call {
	return c.obj.Call(dbusNotifyInterface+"."+method, 0, args...)
}
