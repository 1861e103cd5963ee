package session

import (
	"github.com/fhs/gompd/v2/mpd"
)

// Client defines the MPD command operations a session drives.
// This abstraction allows us to mock the server in tests.
//
//go:generate mockgen -destination=mocks/client_mock.go -package=mocks github.com/genricoloni/traympd/internal/session Client
type Client interface {
	// Ping checks the connection is still usable
	Ping() error

	// Status returns the "status" command attributes (state, songid, ...)
	Status() (mpd.Attrs, error)

	// CurrentSong returns the "currentsong" command attributes
	CurrentSong() (mpd.Attrs, error)

	// Pause pauses (true) or unpauses (false) playback
	Pause(pause bool) error

	// Play starts playback at pos, or resumes when pos is negative
	Play(pos int) error

	// Next skips to the next song
	Next() error

	// Close closes the connection
	Close() error
}

// Watcher delivers idle notifications from the server
type Watcher interface {
	// Events emits the name of each changed subsystem
	Events() <-chan string

	// Errors emits failures of the idle connection
	Errors() <-chan error

	// Close stops watching and closes the idle connection
	Close() error
}

// watchedSubsystems are the idle subsystems that can change the tray state
var watchedSubsystems = []string{"player", "playlist"}

// dialClient opens the command connection, authenticating when a password is set
func dialClient(network, addr, password string) (Client, error) {
	if password == "" {
		return mpd.Dial(network, addr)
	}
	return mpd.DialAuthenticated(network, addr, password)
}

// dialWatcher opens the idle connection
func dialWatcher(network, addr, password string) (Watcher, error) {
	w, err := mpd.NewWatcher(network, addr, password, watchedSubsystems...)
	if err != nil {
		return nil, err
	}
	return &mpdWatcher{w: w}, nil
}

// mpdWatcher adapts *mpd.Watcher, whose channels are struct fields
type mpdWatcher struct {
	w *mpd.Watcher
}

func (m *mpdWatcher) Events() <-chan string {
	return m.w.Event
}

func (m *mpdWatcher) Errors() <-chan error {
	return m.w.Error
}

// Close drains both channels while the watcher shuts down, since the
// watcher goroutine blocks on sends nobody reads once the session stopped.
func (m *mpdWatcher) Close() error {
	stop := make(chan struct{})
	go func() {
		events, errs := m.w.Event, m.w.Error
		for events != nil || errs != nil {
			select {
			case <-stop:
				return
			case _, ok := <-events:
				if !ok {
					events = nil
				}
			case _, ok := <-errs:
				if !ok {
					errs = nil
				}
			}
		}
	}()

	err := m.w.Close()
	close(stop)
	return err
}
