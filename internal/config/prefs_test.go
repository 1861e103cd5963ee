package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/genricoloni/traympd/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return &FileStore{
		logger: zap.NewNop(),
		path:   filepath.Join(t.TempDir(), "traympd", prefsFileName),
	}
}

func writePrefs(t *testing.T, s *FileStore, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(s.path), 0o755))
	require.NoError(t, os.WriteFile(s.path, []byte(content), 0o644))
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	prefs, err := s.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.Preferences{Host: "localhost", Port: 6600, NotificationsEnabled: true}, prefs)
}

func TestFileStore_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.Preferences
	}{
		{
			name:    "all keys",
			content: "[mpd]\nhost = \"music.lan\"\nport = 6601\nnotifications = false\n",
			want:    domain.Preferences{Host: "music.lan", Port: 6601, NotificationsEnabled: false},
		},
		{
			name:    "absent keys use defaults",
			content: "[mpd]\nhost = \"music.lan\"\n",
			want:    domain.Preferences{Host: "music.lan", Port: 6600, NotificationsEnabled: true},
		},
		{
			name:    "empty file",
			content: "",
			want:    domain.DefaultPreferences(),
		},
		{
			name:    "port out of range",
			content: "[mpd]\nport = 99999\n",
			want:    domain.DefaultPreferences(),
		},
		{
			name:    "blank host",
			content: "[mpd]\nhost = \"  \"\nport = 6602\n",
			want:    domain.Preferences{Host: "localhost", Port: 6602, NotificationsEnabled: true},
		},
		{
			name:    "unix socket host",
			content: "[mpd]\nhost = \"/run/mpd/socket\"\n",
			want:    domain.Preferences{Host: "/run/mpd/socket", Port: 6600, NotificationsEnabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			writePrefs(t, s, tt.content)

			prefs, err := s.Load()

			require.NoError(t, err)
			assert.Equal(t, tt.want, prefs)
		})
	}
}

func TestFileStore_LoadMalformed(t *testing.T) {
	s := newTestStore(t)
	writePrefs(t, s, "[mpd\nhost = ")

	prefs, err := s.Load()

	assert.Error(t, err)
	assert.Equal(t, domain.DefaultPreferences(), prefs)
}

func TestFileStore_SaveRoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := domain.Preferences{Host: "192.168.1.20", Port: 6700, NotificationsEnabled: false}

	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(s.path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(domain.Preferences{Host: "a", Port: 1, NotificationsEnabled: true}))
	require.NoError(t, s.Save(domain.Preferences{Host: "b", Port: 2, NotificationsEnabled: false}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Preferences{Host: "b", Port: 2, NotificationsEnabled: false}, got)
}

func TestFileStore_EnsureExists(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.EnsureExists())
	_, err := os.Stat(s.path)
	require.NoError(t, err)

	// An existing file is left alone
	custom := domain.Preferences{Host: "music.lan", Port: 6600, NotificationsEnabled: true}
	require.NoError(t, s.Save(custom))
	require.NoError(t, s.EnsureExists())

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}
