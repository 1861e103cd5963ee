package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/genricoloni/traympd/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	eventBufferSize = 16

	// watcherCloseTimeout bounds the idle connection shutdown, which waits for the server's reply
	watcherCloseTimeout = 2 * time.Second
)

var (
	errSessionClosed = errors.New("session closed")
	errWatcherClosed = errors.New("idle watcher closed")
	errCloseTimeout  = errors.New("idle watcher close timed out")
)

// MPDSession is one live connection to an MPD server: a command client
// plus an idle watcher feeding the event channel.
type MPDSession struct {
	logger    *zap.Logger
	addr      string
	keepAlive time.Duration

	mu      sync.Mutex // serializes commands on client
	client  Client
	watcher Watcher

	statusMu sync.Mutex
	last     snapshot

	events    chan domain.Event
	done      chan struct{}
	wg        sync.WaitGroup // tracks producer goroutines
	lostOnce  sync.Once
	closeOnce sync.Once
	closeErr  error

	watcherCloseTimeout time.Duration
}

// Verify MPDSession implements domain.Session at compile time.
var _ domain.Session = (*MPDSession)(nil)

func newSession(logger *zap.Logger, addr string, client Client, watcher Watcher, keepAlive time.Duration) *MPDSession {
	return &MPDSession{
		logger:    logger.With(zap.String("addr", addr)),
		addr:      addr,
		keepAlive: keepAlive,
		client:    client,
		watcher:   watcher,
		events:    make(chan domain.Event, eventBufferSize),
		done:      make(chan struct{}),

		watcherCloseTimeout: watcherCloseTimeout,
	}
}

// start seeds the status snapshot and launches the producer goroutines
func (s *MPDSession) start() error {
	attrs, err := s.client.Status()
	if err != nil {
		return &domain.ConnectionError{Op: "status", Addr: s.addr, Err: err}
	}
	s.last = snapshotFromAttrs(attrs)

	s.wg.Add(1)
	go s.watchLoop()

	if s.keepAlive > 0 {
		s.wg.Add(1)
		go s.keepAliveLoop()
	}

	s.logger.Info("MPD session established", zap.String("state", s.last.State))
	return nil
}

// Events returns the change feed of this session
func (s *MPDSession) Events() <-chan domain.Event {
	return s.events
}

// CurrentStatus queries whether the server is playing.
// It leaves the event baseline alone: only the watch loop advances it,
// so events already queued are always followed by the diff that supersedes them.
func (s *MPDSession) CurrentStatus(ctx context.Context) (domain.PlaybackState, error) {
	cur, err := s.queryStatus(ctx)
	if err != nil {
		return domain.StateDisconnected, err
	}
	return cur.playbackState(), nil
}

// CurrentTrack queries the song the server is on
func (s *MPDSession) CurrentTrack(ctx context.Context) (domain.TrackInfo, error) {
	var track domain.TrackInfo
	err := s.command(ctx, "currentsong", func(c Client) error {
		attrs, err := c.CurrentSong()
		if err != nil {
			return err
		}
		track = trackFromAttrs(attrs)
		return nil
	})
	return track, err
}

// Pause pauses playback
func (s *MPDSession) Pause(ctx context.Context) error {
	return s.command(ctx, "pause", func(c Client) error {
		return c.Pause(true)
	})
}

// Resume resumes playback, or starts it when the player is stopped
func (s *MPDSession) Resume(ctx context.Context) error {
	return s.command(ctx, "play", func(c Client) error {
		return c.Play(-1)
	})
}

// Next skips to the next song
func (s *MPDSession) Next(ctx context.Context) error {
	return s.command(ctx, "next", func(c Client) error {
		return c.Next()
	})
}

// Close stops the producers and closes both connections.
// It is idempotent and safe on a broken socket; errors are combined, never panicked on.
func (s *MPDSession) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)

		// The client is closed without taking mu: a producer stuck in a
		// command on a dead socket holds it, and only the close releases it.
		clientErr := s.client.Close()
		watcherErr := s.closeWatcher()

		// Producers must be gone before the channel closes
		s.wg.Wait()
		close(s.events)
		s.closeErr = multierr.Combine(watcherErr, clientErr)

		if s.closeErr != nil {
			s.logger.Debug("MPD session closed with errors", zap.Error(s.closeErr))
		} else {
			s.logger.Debug("MPD session closed")
		}
	})
	return s.closeErr
}

// closeWatcher closes the idle connection, giving up after watcherCloseTimeout
func (s *MPDSession) closeWatcher() error {
	result := make(chan error, 1)
	go func() {
		result <- s.watcher.Close()
	}()

	select {
	case err := <-result:
		return err
	case <-time.After(s.watcherCloseTimeout):
		return errCloseTimeout
	}
}

// command runs fn against the client, mapping failures to *domain.ConnectionError
func (s *MPDSession) command(ctx context.Context, op string, fn func(Client) error) error {
	if err := ctx.Err(); err != nil {
		return &domain.ConnectionError{Op: op, Addr: s.addr, Err: err}
	}

	select {
	case <-s.done:
		return &domain.ConnectionError{Op: op, Addr: s.addr, Err: errSessionClosed}
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.client); err != nil {
		return &domain.ConnectionError{Op: op, Addr: s.addr, Err: err}
	}
	return nil
}

func (s *MPDSession) queryStatus(ctx context.Context) (snapshot, error) {
	var cur snapshot
	err := s.command(ctx, "status", func(c Client) error {
		attrs, err := c.Status()
		if err != nil {
			return err
		}
		cur = snapshotFromAttrs(attrs)
		return nil
	})
	return cur, err
}

// watchLoop turns idle notifications into events until the session closes or the connection is lost
func (s *MPDSession) watchLoop() {
	defer s.wg.Done()

	events := s.watcher.Events()
	errs := s.watcher.Errors()

	for {
		select {
		case <-s.done:
			return

		case subsystem, ok := <-events:
			if !ok {
				s.markLost(errWatcherClosed)
				return
			}
			s.logger.Debug("Idle event received", zap.String("subsystem", subsystem))

			if err := s.refresh(); err != nil {
				if s.lostAfter(err) {
					return
				}
			}

		case err, ok := <-errs:
			if !ok {
				s.markLost(errWatcherClosed)
				return
			}
			s.logger.Warn("Idle watcher error", zap.Error(err))
			if s.lostAfter(err) {
				return
			}
		}
	}
}

// keepAliveLoop pings the command connection so the server does not drop it as idle
func (s *MPDSession) keepAliveLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if err := s.ping(); err != nil {
				s.markLost(err)
				return
			}
		}
	}
}

// refresh queries the status and emits the events implied by the change
func (s *MPDSession) refresh() error {
	cur, err := s.queryStatus(context.Background())
	if err != nil {
		return err
	}

	s.statusMu.Lock()
	prev := s.last
	s.last = cur
	s.statusMu.Unlock()

	if !cur.known() {
		s.logger.Debug("Ignoring unknown player state", zap.String("state", cur.State))
	}

	for _, ev := range diffStatus(prev, cur) {
		s.emit(ev)
	}
	return nil
}

// lostAfter pings after a failure and reports whether the connection is gone
func (s *MPDSession) lostAfter(cause error) bool {
	if err := s.ping(); err != nil {
		s.markLost(multierr.Append(cause, err))
		return true
	}
	return false
}

func (s *MPDSession) ping() error {
	return s.command(context.Background(), "ping", func(c Client) error {
		return c.Ping()
	})
}

// markLost emits ConnectionLost once per session
func (s *MPDSession) markLost(cause error) {
	s.lostOnce.Do(func() {
		select {
		case <-s.done:
			return
		default:
		}

		s.logger.Warn("MPD connection lost", zap.Error(cause))
		s.emit(domain.Event{
			Kind: domain.EventConnectionLost,
			Err:  &domain.ConnectionError{Op: "watch", Addr: s.addr, Err: cause},
		})
	})
}

// emit delivers an event unless the session is closing
func (s *MPDSession) emit(ev domain.Event) {
	select {
	case s.events <- ev:
		s.logger.Debug("Session event emitted", zap.Stringer("event", ev.Kind))
	case <-s.done:
	}
}
