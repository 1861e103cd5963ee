package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/genricoloni/traympd/internal/config"
	"github.com/genricoloni/traympd/internal/domain"
	"github.com/genricoloni/traympd/internal/engine"
	"github.com/genricoloni/traympd/internal/icons"
	"github.com/genricoloni/traympd/internal/notify"
	"github.com/genricoloni/traympd/internal/session"
	"github.com/genricoloni/traympd/internal/tray"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const stopTimeout = 5 * time.Second

// AppOptions is the dependency graph of the tray client
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		fx.Annotate(
			config.NewFileStore,
			fx.As(fx.Self()),
			fx.As(new(domain.PreferencesStore)),
			fx.As(new(tray.PreferencesFile)),
		),
		fx.Annotate(session.NewDialer, fx.As(new(domain.Dialer))),
		fx.Annotate(icons.NewSet, fx.As(new(tray.IconSource))),
		notify.New,
		fx.Annotate(notify.NewDesktop, fx.As(fx.Self()), fx.As(new(tray.Notifier))),
		fx.Annotate(tray.NewSystrayBackend, fx.As(new(tray.Backend))),
		fx.Annotate(tray.NewTray, fx.As(fx.Self()), fx.As(new(domain.Presenter))),
		engine.NewEngine,
		newPrefsWatcher,
	),
	fx.Invoke(registerHooks),
)

func main() {
	var t *tray.Tray

	app := fx.New(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
		fx.Populate(&t),
	)
	if err := app.Err(); err != nil {
		reportStartupFailure(err)
		os.Exit(1)
	}

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		t.Quit()
	}()

	var startErr error
	t.Run(
		func() {
			// The tray is only usable from here on, so the graph starts inside the ready callback
			if startErr = app.Start(ctx); startErr != nil {
				t.Quit()
			}
		},
		func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
			defer stopCancel()
			if err := app.Stop(stopCtx); err != nil {
				fmt.Fprintf(os.Stderr, "traympd: shutdown: %v\n", err)
			}
		},
	)

	if startErr != nil {
		reportStartupFailure(startErr)
		os.Exit(1)
	}
}

// newLogger creates a new zap logger instance.
// TRAYMPD_DEBUG switches to the human readable development logger.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("TRAYMPD_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// newPrefsWatcher reloads the preferences file into the engine when it changes on disk
func newPrefsWatcher(logger *zap.Logger, store *config.FileStore, eng *engine.Engine) *config.PrefsWatcher {
	return config.NewPrefsWatcher(logger, store, store.Path(), eng.UpdatePreferences)
}

type hookParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.Logger
	Tray      *tray.Tray
	Engine    *engine.Engine
	Watcher   *config.PrefsWatcher
	Desktop   *notify.Desktop
}

// registerHooks sets up application lifecycle hooks
func registerHooks(p hookParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Tray.Build(); err != nil {
				return err
			}
			if err := p.Engine.Start(ctx); err != nil {
				return err
			}
			if err := p.Watcher.Start(); err != nil {
				p.Logger.Warn("Preferences file will not be watched", zap.Error(err))
			}
			p.Logger.Info("traympd started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Info("Shutting down")
			err := multierr.Combine(
				p.Watcher.Stop(),
				p.Engine.Stop(ctx),
			)
			p.Tray.Stop()
			err = multierr.Append(err, p.Desktop.Shutdown())
			_ = p.Logger.Sync()
			return err
		},
	})
}

// reportStartupFailure logs a fatal initialization error and shows it on the desktop when possible
func reportStartupFailure(err error) {
	fmt.Fprintf(os.Stderr, "traympd: failed to start: %v\n", err)

	logger, logErr := newLogger()
	if logErr != nil {
		logger = zap.NewNop()
	}
	logger.Error("Initialization failed", zap.Error(err))

	desktop := notify.NewDesktop(logger, notify.New(logger))
	desktop.ShowError("traympd failed to start", err.Error())
	_ = desktop.Shutdown()
	_ = logger.Sync()
}
