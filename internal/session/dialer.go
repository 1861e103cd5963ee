package session

import (
	"context"
	"strings"

	"github.com/genricoloni/traympd/internal/domain"
	"go.uber.org/zap"
)

// Dialer opens MPD sessions
type Dialer struct {
	logger *zap.Logger
	cfg    domain.Config

	// Connection factories, replaced in tests
	dialClient  func(network, addr, password string) (Client, error)
	dialWatcher func(network, addr, password string) (Watcher, error)
}

// Verify Dialer implements domain.Dialer at compile time.
var _ domain.Dialer = (*Dialer)(nil)

// NewDialer creates a dialer using the gompd client
func NewDialer(logger *zap.Logger, cfg domain.Config) *Dialer {
	return &Dialer{
		logger:      logger,
		cfg:         cfg,
		dialClient:  dialClient,
		dialWatcher: dialWatcher,
	}
}

// Dial connects to the server and arms the event subscription.
// A host starting with "/" is treated as a unix socket path and port is ignored.
// A dial that outlives the configured timeout is abandoned; its late result is closed.
func (d *Dialer) Dial(ctx context.Context, host string, port int) (domain.Session, error) {
	network, addr := dialTarget(host, port)

	if timeout := d.cfg.GetDialTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		session *MPDSession
		err     error
	}
	resCh := make(chan result, 1)

	d.logger.Info("Connecting to MPD", zap.String("network", network), zap.String("addr", addr))

	go func() {
		s, err := d.open(network, addr)
		resCh <- result{session: s, err: err}
	}()

	select {
	case res := <-resCh:
		if res.err != nil {
			return nil, &domain.ConnectionError{Op: "connect", Addr: addr, Err: res.err}
		}
		return res.session, nil

	case <-ctx.Done():
		go func() {
			if res := <-resCh; res.session != nil {
				if err := res.session.Close(); err != nil {
					d.logger.Debug("Failed to close abandoned session", zap.Error(err))
				}
			}
		}()
		return nil, &domain.ConnectionError{Op: "connect", Addr: addr, Err: ctx.Err()}
	}
}

// open dials both connections and starts the session
func (d *Dialer) open(network, addr string) (*MPDSession, error) {
	password := d.cfg.GetPassword()

	client, err := d.dialClient(network, addr, password)
	if err != nil {
		return nil, err
	}

	watcher, err := d.dialWatcher(network, addr, password)
	if err != nil {
		if closeErr := client.Close(); closeErr != nil {
			d.logger.Debug("Failed to close command connection", zap.Error(closeErr))
		}
		return nil, err
	}

	s := newSession(d.logger, addr, client, watcher, d.cfg.GetKeepAlive())
	if err := s.start(); err != nil {
		if closeErr := s.Close(); closeErr != nil {
			d.logger.Debug("Failed to close half-open session", zap.Error(closeErr))
		}
		return nil, err
	}
	return s, nil
}

// dialTarget picks the network for host
func dialTarget(host string, port int) (network, addr string) {
	if strings.HasPrefix(host, "/") {
		return "unix", host
	}
	return "tcp", domain.JoinAddr(host, port)
}
