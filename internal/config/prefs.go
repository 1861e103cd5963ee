package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/genricoloni/traympd/internal/domain"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// Keys of the [mpd] section
const (
	keyHost          = "mpd.host"
	keyPort          = "mpd.port"
	keyNotifications = "mpd.notifications"
)

// FileStore keeps the preferences in a TOML file:
//
//	[mpd]
//	host = "localhost"
//	port = 6600
//	notifications = true
type FileStore struct {
	logger *zap.Logger
	path   string
	mu     sync.Mutex // serializes writers
}

// Verify FileStore implements domain.PreferencesStore at compile time.
var _ domain.PreferencesStore = (*FileStore)(nil)

// NewFileStore creates a store backed by the configured preferences file
func NewFileStore(logger *zap.Logger, cfg domain.Config) *FileStore {
	return &FileStore{
		logger: logger,
		path:   cfg.GetPrefsPath(),
	}
}

// Path returns the preferences file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the preferences. A missing file or key yields the default value.
func (s *FileStore) Load() (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("No preferences file, using defaults", zap.String("path", s.path))
		return prefs, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(s.path), toml.Parser()); err != nil {
		return prefs, fmt.Errorf("load preferences %s: %w", s.path, err)
	}

	if host := strings.TrimSpace(k.String(keyHost)); host != "" {
		prefs.Host = host
	}

	if k.Exists(keyPort) {
		port := k.Int(keyPort)
		if domain.ValidPort(port) {
			prefs.Port = port
		} else {
			s.logger.Warn("Invalid port in preferences, using default",
				zap.String("value", k.String(keyPort)),
				zap.Int("default", domain.DefaultPort))
		}
	}

	if k.Exists(keyNotifications) {
		prefs.NotificationsEnabled = k.Bool(keyNotifications)
	}

	return prefs, nil
}

// Save writes p durably: temp file, fsync, rename.
func (s *FileStore) Save(p domain.Preferences) error {
	k := koanf.New(".")
	for key, val := range map[string]any{
		keyHost:          p.Host,
		keyPort:          p.Port,
		keyNotifications: p.NotificationsEnabled,
	} {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("encode preferences: %w", err)
		}
	}

	data, err := k.Marshal(toml.Parser())
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("save preferences %s: %w", s.path, err)
	}

	s.logger.Info("Preferences saved", zap.String("path", s.path))
	return nil
}

// EnsureExists writes the defaults when no preferences file exists yet
func (s *FileStore) EnsureExists() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return s.Save(domain.DefaultPreferences())
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
