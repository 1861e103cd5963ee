package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/genricoloni/traympd/internal/domain"
	"go.uber.org/zap"
)

const (
	notificationTitle = "Now Playing"

	initialRetryInterval = 2 * time.Second
)

// Engine owns the playback state and the session.
// It turns session events and tray commands into state transitions and renders them on the presenter.
type Engine struct {
	logger    *zap.Logger
	cfg       domain.Config
	dialer    domain.Dialer
	presenter domain.Presenter
	store     domain.PreferencesStore

	ctx    context.Context // canceled by Stop, aborts in-flight dials
	cancel context.CancelFunc

	// mu guards everything below; entry actions run under it
	mu           sync.Mutex
	prefs        domain.Preferences
	state        domain.PlaybackState
	session      domain.Session
	lastNotified string // track key of the last notification in this session
	backoff      *backoff.ExponentialBackOff
	retry        *time.Timer
	retryGen     uint64
	stopped      bool
}

// NewEngine creates a new engine in the Unset state
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	dialer domain.Dialer,
	presenter domain.Presenter,
	store domain.PreferencesStore,
) *Engine {
	ctx, cancel := context.WithCancel(context.Background())

	b := backoff.NewExponentialBackOff()
	b.MaxInterval = cfg.GetReconnectMax()
	b.InitialInterval = min(initialRetryInterval, b.MaxInterval)
	b.MaxElapsedTime = 0
	b.Reset()

	return &Engine{
		logger:    logger,
		cfg:       cfg,
		dialer:    dialer,
		presenter: presenter,
		store:     store,
		ctx:       ctx,
		cancel:    cancel,
		prefs:     domain.DefaultPreferences(),
		state:     domain.StateUnset,
		backoff:   b,
	}
}

// Start loads the preferences, binds the tray callbacks and connects in the background.
// It returns immediately (non-blocking).
func (e *Engine) Start(_ context.Context) error {
	e.logger.Info("Engine starting...")

	prefs, err := e.store.Load()
	if err != nil {
		e.logger.Warn("Could not load preferences, using defaults", zap.Error(err))
		prefs = domain.DefaultPreferences()
	}

	e.mu.Lock()
	e.prefs = prefs
	e.mu.Unlock()

	e.bindCallbacks()

	go func() {
		if err := e.Reconnect(e.ctx); err != nil {
			e.logger.Info("Initial connection failed", zap.Error(err))
		}
	}()
	return nil
}

// Stop cancels any pending retry and closes the session
func (e *Engine) Stop(_ context.Context) error {
	e.logger.Info("Engine stopping...")
	e.cancel()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopped = true
	e.cancelRetryLocked()
	if e.session != nil {
		e.closeSessionLocked()
	}
	return nil
}

// State returns the current playback state
func (e *Engine) State() domain.PlaybackState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Preferences returns the preferences in use
func (e *Engine) Preferences() domain.Preferences {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prefs
}

// Reconnect drops the current session and connects again.
// Failures leave the engine Disconnected and are returned as *domain.ConnectionError.
func (e *Engine) Reconnect(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reconnectLocked(ctx)
}

// UpdatePreferences validates, persists and applies p.
// Only a host or port change reconnects; an identical update does nothing.
func (e *Engine) UpdatePreferences(ctx context.Context, p domain.Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if p == e.prefs {
		e.logger.Debug("Preferences unchanged")
		return nil
	}

	if err := e.store.Save(p); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	old := e.prefs
	e.prefs = p
	e.logger.Info("Preferences updated",
		zap.String("addr", p.Addr()),
		zap.Bool("notifications", p.NotificationsEnabled))

	if !old.ServerChanged(p) {
		return nil
	}
	return e.reconnectLocked(ctx)
}

// PrimaryAction runs the current state's action: reconnect, pause or resume
func (e *Engine) PrimaryAction(ctx context.Context) error {
	e.mu.Lock()
	state := e.state
	e.mu.Unlock()

	action := EntryActionsFor(state).Action
	e.logger.Debug("Primary action", zap.Stringer("state", state), zap.Stringer("action", action))

	switch action {
	case ActionPause:
		return e.Pause(ctx)
	case ActionResume:
		return e.Resume(ctx)
	default:
		return e.Reconnect(ctx)
	}
}

// Pause sends the pause command. The resulting event drives the transition.
func (e *Engine) Pause(ctx context.Context) error {
	sess, err := e.currentSession("pause")
	if err != nil {
		return err
	}
	return sess.Pause(ctx)
}

// Resume sends the play command
func (e *Engine) Resume(ctx context.Context) error {
	sess, err := e.currentSession("play")
	if err != nil {
		return err
	}
	return sess.Resume(ctx)
}

// Next skips to the next song
func (e *Engine) Next(ctx context.Context) error {
	sess, err := e.currentSession("next")
	if err != nil {
		return err
	}
	return sess.Next(ctx)
}

// currentSession returns the live session. Commands run outside the lock so
// a slow server never stalls event handling; a session closed meanwhile fails the command.
func (e *Engine) currentSession(op string) (domain.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil, &domain.ConnectionError{Op: op, Addr: e.prefs.Addr(), Err: domain.ErrNotConnected}
	}
	return e.session, nil
}

// bindCallbacks registers the tray callbacks. Each runs on its own goroutine.
func (e *Engine) bindCallbacks() {
	e.presenter.OnPrimaryAction(e.dispatch("primary", e.PrimaryAction))
	e.presenter.OnMenuCommand(domain.MenuPlay, e.dispatch("play", e.Resume))
	e.presenter.OnMenuCommand(domain.MenuPause, e.dispatch("pause", e.Pause))
	e.presenter.OnMenuCommand(domain.MenuNext, e.dispatch("next", e.Next))
	e.presenter.OnMenuCommand(domain.MenuReconnect, e.dispatch("reconnect", e.Reconnect))
}

func (e *Engine) dispatch(name string, fn func(context.Context) error) func() {
	return func() {
		go func() {
			if err := fn(e.ctx); err != nil {
				e.logger.Warn("Tray command failed", zap.String("command", name), zap.Error(err))
			}
		}()
	}
}

// reconnectLocked keeps mu across the dial and the first status query, so a
// click arriving meanwhile waits for the outcome instead of racing it.
func (e *Engine) reconnectLocked(ctx context.Context) error {
	if e.stopped {
		return nil
	}
	e.cancelRetryLocked()

	if e.session != nil {
		e.closeSessionLocked()
		e.enterLocked(domain.StateDisconnected)
	}

	prefs := e.prefs
	sess, err := e.dialer.Dial(ctx, prefs.Host, prefs.Port)
	if err != nil {
		e.logger.Warn("Connection failed", zap.String("addr", prefs.Addr()), zap.Error(err))
		e.enterLocked(domain.StateDisconnected)
		e.scheduleRetryLocked()
		return err
	}

	status, err := sess.CurrentStatus(ctx)
	if err != nil {
		e.logger.Warn("Initial status query failed", zap.String("addr", prefs.Addr()), zap.Error(err))
		if closeErr := sess.Close(); closeErr != nil {
			e.logger.Warn("Failed to close session", zap.Error(&domain.CloseError{Err: closeErr}))
		}
		e.enterLocked(domain.StateDisconnected)
		e.scheduleRetryLocked()
		return err
	}

	e.session = sess
	e.lastNotified = ""
	e.backoff.Reset()
	go e.forward(sess)

	e.logger.Info("Connected", zap.String("addr", prefs.Addr()), zap.Stringer("status", status))
	e.enterLocked(status)
	return nil
}

// closeSessionLocked drops the session. Close failures are logged, never returned.
func (e *Engine) closeSessionLocked() {
	sess := e.session
	e.session = nil
	e.lastNotified = ""

	if err := sess.Close(); err != nil {
		e.logger.Warn("Failed to close session", zap.Error(&domain.CloseError{Err: err}))
	}
}

// forward feeds one session's events to the engine until the session closes
func (e *Engine) forward(sess domain.Session) {
	for ev := range sess.Events() {
		e.handleEvent(sess, ev)
	}
}

func (e *Engine) handleEvent(sess domain.Session, ev domain.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if sess != e.session {
		e.logger.Debug("Dropping event from stale session", zap.Stringer("event", ev.Kind))
		return
	}

	e.logger.Debug("Session event", zap.Stringer("event", ev.Kind), zap.Stringer("state", e.state))

	if ev.Kind == domain.EventConnectionLost {
		e.logger.Warn("Connection lost", zap.Error(ev.Err))
		e.closeSessionLocked()
		e.enterLocked(domain.StateDisconnected)
		e.scheduleRetryLocked()
		return
	}

	if target, ok := ev.TargetState(); ok {
		e.enterLocked(target)
		return
	}

	if ev.Kind == domain.EventSongChanged {
		if e.state != domain.StatePlaying {
			e.logger.Debug("Ignoring track change while not playing", zap.Stringer("state", e.state))
			return
		}
		e.refreshTrackLocked()
	}
}

// enterLocked runs the entry actions of target unless it is already the current state
func (e *Engine) enterLocked(target domain.PlaybackState) {
	if target == e.state {
		return
	}

	e.logger.Info("State transition", zap.Stringer("from", e.state), zap.Stringer("to", target))
	e.state = target

	actions := EntryActionsFor(target)
	lookup := e.trackLookupLocked()

	e.presenter.SetIcon(actions.Icon)
	e.presenter.SetTooltip(actions.Tooltip(lookup))
	for _, item := range domain.Menu() {
		if item.Enabled != nil {
			e.presenter.SetMenuItemEnabled(item.ID, item.Enabled(target))
		}
	}

	if target == domain.StatePlaying {
		e.notifyLocked(lookup)
	}
}

// refreshTrackLocked updates the tooltip and notification after a track change
func (e *Engine) refreshTrackLocked() {
	lookup := e.trackLookupLocked()
	e.presenter.SetTooltip(EntryActionsFor(domain.StatePlaying).Tooltip(lookup))
	e.notifyLocked(lookup)
}

// notifyLocked shows the track once per distinct track and session
func (e *Engine) notifyLocked(lookup TrackLookup) {
	if !e.prefs.NotificationsEnabled {
		return
	}

	track, err := lookup()
	if err != nil {
		e.logger.Debug("Skipping notification, track unavailable", zap.Error(err))
		return
	}

	key := track.Key()
	if key == e.lastNotified {
		return
	}
	e.lastNotified = key
	e.presenter.Notify(notificationTitle, track.Text())
}

// trackLookupLocked returns a lookup that queries the session at most once
func (e *Engine) trackLookupLocked() TrackLookup {
	var (
		done  bool
		track domain.TrackInfo
		err   error
	)
	sess := e.session
	return func() (domain.TrackInfo, error) {
		if done {
			return track, err
		}
		done = true
		if sess == nil {
			err = domain.ErrNotConnected
			return track, err
		}
		track, err = sess.CurrentTrack(e.ctx)
		if err != nil {
			e.logger.Warn("Track query failed", zap.Error(err))
		}
		return track, err
	}
}

// scheduleRetryLocked arms a reconnect after the next backoff delay
func (e *Engine) scheduleRetryLocked() {
	if e.stopped || !e.cfg.GetAutoReconnect() {
		return
	}

	delay := e.backoff.NextBackOff()
	if delay == backoff.Stop {
		return
	}

	e.cancelRetryLocked()
	gen := e.retryGen
	e.retry = time.AfterFunc(delay, func() {
		e.retryReconnect(gen)
	})
	e.logger.Info("Reconnect scheduled", zap.Duration("delay", delay))
}

func (e *Engine) retryReconnect(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Superseded by a manual reconnect, a newer retry or Stop
	if gen != e.retryGen || e.stopped {
		return
	}
	if err := e.reconnectLocked(e.ctx); err != nil {
		e.logger.Debug("Reconnect attempt failed", zap.Error(err))
	}
}

func (e *Engine) cancelRetryLocked() {
	if e.retry != nil {
		e.retry.Stop()
		e.retry = nil
	}
	e.retryGen++
}
