package domain

import (
	"context"
	"time"
)

// Session is one live connection to the playback server.
// Implementations must make Close safe to call on an already broken connection.
//
//go:generate mockgen -destination=mocks/domain_mock.go -package=mocks github.com/genricoloni/traympd/internal/domain Session,Dialer,PreferencesStore,Presenter
type Session interface {
	// CurrentStatus queries whether the server is playing (Playing) or not (Paused)
	CurrentStatus(ctx context.Context) (PlaybackState, error)

	// CurrentTrack queries the song the server is on
	CurrentTrack(ctx context.Context) (TrackInfo, error)

	// Pause, Resume and Next are transport commands; failures are returned, never retried
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Next(ctx context.Context) error

	// Events returns the change feed. It is closed once the session is closed.
	Events() <-chan Event

	// Close releases the connection. It is idempotent.
	Close() error
}

// Dialer opens sessions
type Dialer interface {
	// Dial connects to host:port and arms the event subscription
	// Failures are returned as *ConnectionError
	Dial(ctx context.Context, host string, port int) (Session, error)
}

// PreferencesStore persists the connection settings
type PreferencesStore interface {
	// Load returns the saved preferences, or defaults for absent keys
	Load() (Preferences, error)

	// Save persists p durably before returning
	Save(p Preferences) error
}

// Presenter renders state onto the tray.
// The core never touches rendering primitives directly.
type Presenter interface {
	SetIcon(id IconID)
	SetTooltip(text string)
	SetMenuItemEnabled(id MenuItemID, enabled bool)
	Notify(title, body string)

	// OnPrimaryAction registers the callback for the tray's primary action
	OnPrimaryAction(callback func())

	// OnMenuCommand registers the callback for a menu entry
	OnMenuCommand(id MenuItemID, callback func())
}

// Config defines the interface for application configuration
type Config interface {
	// GetPrefsPath returns the preferences file location
	GetPrefsPath() string

	// GetDialTimeout bounds a single connect attempt
	GetDialTimeout() time.Duration

	// GetKeepAlive returns the ping interval of a live session
	GetKeepAlive() time.Duration

	// GetPassword returns the server password, empty for none
	GetPassword() string

	// GetAutoReconnect reports whether a lost session is retried with backoff
	GetAutoReconnect() bool

	// GetReconnectMax caps the backoff delay between retries
	GetReconnectMax() time.Duration
}
