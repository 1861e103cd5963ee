// Package notify shows desktop notifications over D-Bus.
package notify

import (
	"sync"

	"go.uber.org/zap"
)

const appName = "traympd"

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
	// Disconnect releases the bus connection.
	Disconnect() error
}

// Desktop shows "now playing" style notifications, each replacing the previous one
type Desktop struct {
	logger   *zap.Logger
	notifier Notifier

	mu     sync.Mutex
	lastID uint32
}

// NewDesktop wraps notifier
func NewDesktop(logger *zap.Logger, notifier Notifier) *Desktop {
	return &Desktop{
		logger:   logger,
		notifier: notifier,
	}
}

// Show replaces the previous notification with a new one.
// Failures are logged; notifications are best effort.
func (d *Desktop) Show(title, body string) {
	d.send(Notification{Title: title, Body: body, Timeout: -1, Urgency: UrgencyNormal})
}

// ShowError shows a critical notification that stays until dismissed
func (d *Desktop) ShowError(title, body string) {
	d.send(Notification{Title: title, Body: body, Icon: "dialog-error", Timeout: 0, Urgency: UrgencyCritical})
}

func (d *Desktop) send(n Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n.ReplacesID = d.lastID
	id, err := d.notifier.Notify(n)
	if err != nil {
		d.logger.Warn("Failed to show notification", zap.String("title", n.Title), zap.Error(err))
		return
	}
	d.lastID = id
	d.logger.Debug("Notification shown", zap.Uint32("id", id), zap.String("title", n.Title))
}

// Shutdown closes the last notification and the bus connection
func (d *Desktop) Shutdown() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.lastID != 0 {
		if err := d.notifier.Close(d.lastID); err != nil {
			d.logger.Debug("Failed to close notification", zap.Error(err))
		}
		d.lastID = 0
	}
	return d.notifier.Disconnect()
}

// stubNotifier is used when D-Bus is unavailable.
type stubNotifier struct{}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (s *stubNotifier) Close(_ uint32) error {
	return nil
}

func (s *stubNotifier) Disconnect() error {
	return nil
}
