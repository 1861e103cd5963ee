package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/genricoloni/traympd/internal/domain"
	"go.uber.org/zap"
)

const (
	appName       = "traympd"
	prefsFileName = "preferences.toml"

	defaultDialTimeout  = 5 * time.Second
	defaultKeepAlive    = 30 * time.Second
	defaultReconnectMax = time.Minute
)

// AppConfig holds application configuration
type AppConfig struct {
	logger        *zap.Logger
	prefsPath     string
	dialTimeout   time.Duration
	keepAlive     time.Duration
	password      string
	autoReconnect bool
	reconnectMax  time.Duration
}

// Verify AppConfig implements domain.Config at compile time.
var _ domain.Config = (*AppConfig)(nil)

// NewAppConfig creates a new application configuration instance
func NewAppConfig(logger *zap.Logger) *AppConfig {
	// Read from environment variables or use defaults
	prefsPath := os.Getenv("TRAYMPD_PREFS_FILE")
	if prefsPath == "" {
		prefsPath = defaultPrefsPath(logger)
	}
	prefsPath = expandPath(os.ExpandEnv(prefsPath))

	cfg := &AppConfig{
		logger:        logger,
		prefsPath:     prefsPath,
		dialTimeout:   envDuration(logger, "TRAYMPD_DIAL_TIMEOUT", defaultDialTimeout),
		keepAlive:     envDuration(logger, "TRAYMPD_KEEPALIVE", defaultKeepAlive),
		password:      os.Getenv("MPD_PASSWORD"),
		autoReconnect: envBool(logger, "TRAYMPD_RECONNECT", true),
		reconnectMax:  envDuration(logger, "TRAYMPD_RECONNECT_MAX", defaultReconnectMax),
	}

	logger.Info("Configuration loaded",
		zap.String("prefsPath", cfg.prefsPath),
		zap.Duration("dialTimeout", cfg.dialTimeout),
		zap.Duration("keepAlive", cfg.keepAlive),
		zap.Bool("autoReconnect", cfg.autoReconnect),
		zap.Bool("password", cfg.password != ""))

	return cfg
}

// GetPrefsPath returns the preferences file location
func (c *AppConfig) GetPrefsPath() string {
	return c.prefsPath
}

// GetDialTimeout returns the connect timeout
func (c *AppConfig) GetDialTimeout() time.Duration {
	return c.dialTimeout
}

// GetKeepAlive returns the session ping interval, zero disables it
func (c *AppConfig) GetKeepAlive() time.Duration {
	return c.keepAlive
}

// GetPassword returns the MPD password
func (c *AppConfig) GetPassword() string {
	return c.password
}

// GetAutoReconnect reports whether lost sessions are retried
func (c *AppConfig) GetAutoReconnect() bool {
	return c.autoReconnect
}

// GetReconnectMax returns the longest delay between retries
func (c *AppConfig) GetReconnectMax() time.Duration {
	return c.reconnectMax
}

// defaultPrefsPath resolves the preferences file under the XDG config dir, creating the directory
func defaultPrefsPath(logger *zap.Logger) string {
	path, err := xdg.ConfigFile(filepath.Join(appName, prefsFileName))
	if err != nil {
		logger.Warn("Could not create config directory", zap.Error(err))
		return filepath.Join(xdg.ConfigHome, appName, prefsFileName)
	}
	return path
}

func envDuration(logger *zap.Logger, key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		logger.Warn("Invalid duration, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Duration("default", def))
		return def
	}
	return d
}

func envBool(logger *zap.Logger, key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("Invalid boolean, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Bool("default", def))
		return def
	}
	return b
}

// expandPath expands a leading ~ to the home directory
func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
