package domain

import (
	"fmt"
	"net"
	"path"
	"strconv"
	"strings"
)

// PlaybackState represents the tray-visible state of the remote player
type PlaybackState int

const (
	// StateUnset is the sentinel before the first connection attempt
	StateUnset PlaybackState = iota
	// StateDisconnected indicates there is no live session
	StateDisconnected
	// StatePlaying indicates the server is playing
	StatePlaying
	// StatePaused indicates the server is paused or stopped
	StatePaused
)

// String returns the state name.
func (s PlaybackState) String() string {
	switch s {
	case StateUnset:
		return "Unset"
	case StateDisconnected:
		return "Disconnected"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// EventKind identifies an asynchronous notification from a session
type EventKind int

const (
	EventPlayerStarted EventKind = iota
	EventPlayerUnpaused
	EventPlayerStopped
	EventPlayerPaused
	EventSongChanged
	EventConnectionLost
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventPlayerStarted:
		return "PlayerStarted"
	case EventPlayerUnpaused:
		return "PlayerUnpaused"
	case EventPlayerStopped:
		return "PlayerStopped"
	case EventPlayerPaused:
		return "PlayerPaused"
	case EventSongChanged:
		return "SongChanged"
	case EventConnectionLost:
		return "ConnectionLost"
	default:
		return "Unknown"
	}
}

// Event is emitted by a Session when the server reports a change
type Event struct {
	Kind EventKind
	// Err carries the cause of a connection loss
	Err error
}

// TargetState returns the state a state-determining event drives to.
// Track changes are not state-determining and return false.
func (e Event) TargetState() (PlaybackState, bool) {
	switch e.Kind {
	case EventPlayerStarted, EventPlayerUnpaused:
		return StatePlaying, true
	case EventPlayerStopped, EventPlayerPaused:
		return StatePaused, true
	case EventConnectionLost:
		return StateDisconnected, true
	default:
		return StateUnset, false
	}
}

// TrackInfo describes the song the server is currently on
type TrackInfo struct {
	// ID is the server-side song id, empty when unknown
	ID     string
	Artist string
	Title  string
	// Name is the stream name reported for radio streams
	Name string
	File string
}

// Text composes the "artist - title" line used for tooltips and notifications.
func (t TrackInfo) Text() string {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = strings.TrimSpace(t.Name)
	}
	if title == "" && t.File != "" {
		title = path.Base(t.File)
	}

	parts := make([]string, 0, 2)
	if artist := strings.TrimSpace(t.Artist); artist != "" {
		parts = append(parts, artist)
	}
	if title != "" {
		parts = append(parts, title)
	}
	if len(parts) == 0 {
		return TooltipPlaying
	}
	return strings.Join(parts, " - ")
}

// Key identifies the track for notification dedupe.
func (t TrackInfo) Key() string {
	if t.ID != "" {
		return "id:" + t.ID
	}
	return "text:" + t.Text()
}

// Tooltip texts for states that do not query the server
const (
	TooltipDisconnected = "Disconnected"
	TooltipPlaying      = "Playing"
	TooltipPaused       = "Paused"
)

// Preferences holds the user-editable connection settings
type Preferences struct {
	Host                 string
	Port                 int
	NotificationsEnabled bool
}

const (
	DefaultHost = "localhost"
	DefaultPort = 6600
)

// DefaultPreferences returns the settings used when nothing is saved.
func DefaultPreferences() Preferences {
	return Preferences{
		Host:                 DefaultHost,
		Port:                 DefaultPort,
		NotificationsEnabled: true,
	}
}

// Validate checks the host and the port range.
func (p Preferences) Validate() error {
	if strings.TrimSpace(p.Host) == "" {
		return fmt.Errorf("%w: empty host", ErrInvalidPreferences)
	}
	if !ValidPort(p.Port) {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidPreferences, p.Port)
	}
	return nil
}

// ServerChanged reports whether other points at a different server.
func (p Preferences) ServerChanged(other Preferences) bool {
	return p.Host != other.Host || p.Port != other.Port
}

// Addr returns the host:port dial address.
func (p Preferences) Addr() string {
	return JoinAddr(p.Host, p.Port)
}

// ValidPort reports whether port is a usable TCP port.
func ValidPort(port int) bool {
	return port >= 1 && port <= 65535
}

// JoinAddr builds a dial address from a host and a port.
func JoinAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// IconID names one of the tray icon images
type IconID string

const (
	IconDisconnected IconID = "disconnected"
	IconPause        IconID = "pause"
	IconPlay         IconID = "play"
)

// AllIcons lists every icon the tray can show.
func AllIcons() []IconID {
	return []IconID{IconDisconnected, IconPause, IconPlay}
}
