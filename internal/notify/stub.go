//go:build !linux

package notify

import "go.uber.org/zap"

// New returns a no-op notifier on non-Linux platforms.
func New(logger *zap.Logger) Notifier {
	logger.Info("Desktop notifications are only supported on Linux")
	return &stubNotifier{}
}
