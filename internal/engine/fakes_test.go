package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/genricoloni/traympd/internal/domain"
	"github.com/genricoloni/traympd/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type testConfig struct {
	autoReconnect bool
	reconnectMax  time.Duration
}

func (c testConfig) GetPrefsPath() string { return "" }
func (c testConfig) GetDialTimeout() time.Duration { return time.Second }
func (c testConfig) GetKeepAlive() time.Duration { return 0 }
func (c testConfig) GetPassword() string { return "" }
func (c testConfig) GetAutoReconnect() bool { return c.autoReconnect }
func (c testConfig) GetReconnectMax() time.Duration {
	if c.reconnectMax == 0 {
		return time.Minute
	}
	return c.reconnectMax
}

// fakeSession is a scripted domain.Session
type fakeSession struct {
	mu        sync.Mutex
	status    domain.PlaybackState
	statusErr error
	track     domain.TrackInfo
	trackErr  error
	closeErr  error

	events    chan domain.Event
	closeOnce sync.Once

	closed, paused, resumed, skipped, trackQueries int
}

func newFakeSession(status domain.PlaybackState, track domain.TrackInfo) *fakeSession {
	return &fakeSession{
		status: status,
		track:  track,
		events: make(chan domain.Event, 8),
	}
}

func (s *fakeSession) CurrentStatus(context.Context) (domain.PlaybackState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.statusErr
}

func (s *fakeSession) CurrentTrack(context.Context) (domain.TrackInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trackQueries++
	return s.track, s.trackErr
}

func (s *fakeSession) Pause(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused++
	return nil
}

func (s *fakeSession) Resume(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumed++
	return nil
}

func (s *fakeSession) Next(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipped++
	return nil
}

func (s *fakeSession) Events() <-chan domain.Event {
	return s.events
}

func (s *fakeSession) Close() error {
	s.mu.Lock()
	s.closed++
	err := s.closeErr
	s.mu.Unlock()

	s.closeOnce.Do(func() { close(s.events) })
	return err
}

func (s *fakeSession) setTrack(track domain.TrackInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.track = track
}

func (s *fakeSession) counts() (closed, paused, resumed, skipped int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed, s.paused, s.resumed, s.skipped
}

// recordingPresenter records every rendering call
type recordingPresenter struct {
	mu            sync.Mutex
	icons         []domain.IconID
	tooltips      []string
	enabled       map[domain.MenuItemID]bool
	enabledCalls  int
	notifications []string
	primary       func()
	commands      map[domain.MenuItemID]func()
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{
		enabled:  make(map[domain.MenuItemID]bool),
		commands: make(map[domain.MenuItemID]func()),
	}
}

func (p *recordingPresenter) SetIcon(id domain.IconID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.icons = append(p.icons, id)
}

func (p *recordingPresenter) SetTooltip(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tooltips = append(p.tooltips, text)
}

func (p *recordingPresenter) SetMenuItemEnabled(id domain.MenuItemID, enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled[id] = enabled
	p.enabledCalls++
}

func (p *recordingPresenter) Notify(title, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifications = append(p.notifications, body)
}

func (p *recordingPresenter) OnPrimaryAction(callback func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.primary = callback
}

func (p *recordingPresenter) OnMenuCommand(id domain.MenuItemID, callback func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.commands[id] = callback
}

type presenterSnapshot struct {
	icons         int
	tooltips      int
	enabledCalls  int
	notifications int
	lastIcon      domain.IconID
	lastTooltip   string
}

func (p *recordingPresenter) snapshot() presenterSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := presenterSnapshot{
		icons:         len(p.icons),
		tooltips:      len(p.tooltips),
		enabledCalls:  p.enabledCalls,
		notifications: len(p.notifications),
	}
	if len(p.icons) > 0 {
		s.lastIcon = p.icons[len(p.icons)-1]
	}
	if len(p.tooltips) > 0 {
		s.lastTooltip = p.tooltips[len(p.tooltips)-1]
	}
	return s
}

func (p *recordingPresenter) notified() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.notifications...)
}

func (p *recordingPresenter) isEnabled(id domain.MenuItemID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled[id]
}

type testEngine struct {
	*Engine
	presenter *recordingPresenter
	dialer    *mocks.MockDialer
	store     *mocks.MockPreferencesStore
}

func newTestEngine(t *testing.T, cfg testConfig) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)

	te := &testEngine{
		presenter: newRecordingPresenter(),
		dialer:    mocks.NewMockDialer(ctrl),
		store:     mocks.NewMockPreferencesStore(ctrl),
	}
	te.Engine = NewEngine(zap.NewNop(), cfg, te.dialer, te.presenter, te.store)

	// Runs before the controller's own cleanup
	t.Cleanup(func() {
		_ = te.Stop(context.Background())
	})
	return te
}

// connect runs a successful reconnect onto sess
func (te *testEngine) connect(t *testing.T, sess domain.Session) {
	t.Helper()
	te.dialer.EXPECT().Dial(gomock.Any(), domain.DefaultHost, domain.DefaultPort).Return(sess, nil)
	if err := te.Reconnect(context.Background()); err != nil {
		t.Fatalf("Reconnect() error: %v", err)
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timeout waiting for %s", what)
}
