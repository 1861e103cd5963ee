package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fhs/gompd/v2/mpd"
	"github.com/genricoloni/traympd/internal/domain"
	"github.com/genricoloni/traympd/internal/session/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type testConfig struct {
	dialTimeout time.Duration
	password    string
}

func (c testConfig) GetPrefsPath() string { return "" }
func (c testConfig) GetDialTimeout() time.Duration { return c.dialTimeout }
func (c testConfig) GetKeepAlive() time.Duration { return 0 }
func (c testConfig) GetPassword() string { return c.password }
func (c testConfig) GetAutoReconnect() bool { return false }
func (c testConfig) GetReconnectMax() time.Duration { return time.Minute }

func TestDialTarget(t *testing.T) {
	tests := []struct {
		host        string
		port        int
		wantNetwork string
		wantAddr    string
	}{
		{"localhost", 6600, "tcp", "localhost:6600"},
		{"192.168.1.10", 6601, "tcp", "192.168.1.10:6601"},
		{"::1", 6600, "tcp", "[::1]:6600"},
		{"/run/mpd/socket", 6600, "unix", "/run/mpd/socket"},
	}
	for _, tt := range tests {
		network, addr := dialTarget(tt.host, tt.port)
		if network != tt.wantNetwork || addr != tt.wantAddr {
			t.Errorf("dialTarget(%q, %d) = (%q, %q), want (%q, %q)",
				tt.host, tt.port, network, addr, tt.wantNetwork, tt.wantAddr)
		}
	}
}

func TestDialer_Dial(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		setupMock   func(*mocks.MockClient)
		clientErr   error
		watcherErr  error
		wantErr     bool
		wantSession bool
	}{
		{
			name:     "Success",
			password: "secret",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().Status().Return(mpd.Attrs{"state": "play", "songid": "1"}, nil)
				m.EXPECT().Close().Return(nil)
			},
			wantSession: true,
		},
		{
			name:      "Server unreachable",
			setupMock: func(m *mocks.MockClient) {},
			clientErr: fmt.Errorf("dial tcp: connection refused"),
			wantErr:   true,
		},
		{
			name: "Watcher fails, command connection closed",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().Close().Return(nil)
			},
			watcherErr: fmt.Errorf("ACK [4@0] {idle} you don't have permission"),
			wantErr:    true,
		},
		{
			name: "Initial status fails, both connections closed",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().Status().Return(nil, fmt.Errorf("EOF"))
				m.EXPECT().Close().Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setupMock(client)
			watcher := newFakeWatcher()

			d := NewDialer(zap.NewNop(), testConfig{dialTimeout: time.Second, password: tt.password})
			d.dialClient = func(network, addr, password string) (Client, error) {
				if network != "tcp" || addr != "localhost:6600" {
					t.Errorf("dialClient(%q, %q)", network, addr)
				}
				if password != tt.password {
					t.Errorf("password = %q, want %q", password, tt.password)
				}
				if tt.clientErr != nil {
					return nil, tt.clientErr
				}
				return client, nil
			}
			d.dialWatcher = func(network, addr, password string) (Watcher, error) {
				if tt.watcherErr != nil {
					return nil, tt.watcherErr
				}
				return watcher, nil
			}

			sess, err := d.Dial(context.Background(), "localhost", 6600)

			if tt.wantErr {
				var connErr *domain.ConnectionError
				if !errors.As(err, &connErr) {
					t.Fatalf("expected ConnectionError, got %v", err)
				}
				if connErr.Addr != "localhost:6600" {
					t.Errorf("Addr = %q", connErr.Addr)
				}
				if sess != nil {
					t.Error("expected nil session on failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if sess == nil {
				t.Fatal("expected a session")
			}
			if err := sess.Close(); err != nil {
				t.Errorf("Close() error: %v", err)
			}
			if watcher.closeCount() != 1 {
				t.Errorf("watcher closed %d times, want 1", watcher.closeCount())
			}
		})
	}
}

func TestDialer_DialTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Status().Return(mpd.Attrs{"state": "stop"}, nil)

	closed := make(chan struct{})
	client.EXPECT().Close().DoAndReturn(func() error {
		close(closed)
		return nil
	})

	release := make(chan struct{})
	d := NewDialer(zap.NewNop(), testConfig{dialTimeout: 20 * time.Millisecond})
	d.dialClient = func(network, addr, password string) (Client, error) {
		<-release
		return client, nil
	}
	d.dialWatcher = func(network, addr, password string) (Watcher, error) {
		return newFakeWatcher(), nil
	}

	_, err := d.Dial(context.Background(), "localhost", 6600)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Dial() = %v, want deadline exceeded", err)
	}

	// The late connection must not leak
	close(release)
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Timeout: abandoned session was not closed")
	}
}
