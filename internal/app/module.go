// Package app wires the terminal application together with fx.
package app

import (
	"context"
	"fmt"

	"github.com/matheus3301/flowchat/internal/activity"
	"github.com/matheus3301/flowchat/internal/bus"
	"github.com/matheus3301/flowchat/internal/config"
	"github.com/matheus3301/flowchat/internal/conversation"
	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/matheus3301/flowchat/internal/locale"
	"github.com/matheus3301/flowchat/internal/lock"
	"github.com/matheus3301/flowchat/internal/logging"
	"github.com/matheus3301/flowchat/internal/nav"
	"github.com/matheus3301/flowchat/internal/prefs"
	"github.com/matheus3301/flowchat/internal/profile"
	"github.com/matheus3301/flowchat/internal/state"
	"github.com/matheus3301/flowchat/internal/store"
	"github.com/matheus3301/flowchat/internal/tui"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved profile passed to the fx module.
type Params struct {
	Profile string
}

// Module returns the fx module for the terminal app, composing all providers
// and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("flowchat",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideLock,
			provideStore,
			providePrefs,
			provideBus,
			provideNav,
			provideRecorder,
			provideLocale,
			provideDetector,
			provideState,
			provideTUI,
		),
		fx.Invoke(registerLifecycle),
	)
}

// NewStoreFactory returns the conversation store builder used on sign-in:
// the seeded demo chats, owned by whoever signs in.
func NewStoreFactory(format conversation.TimeFormatter, b *bus.Bus) state.StoreFactory {
	return func(owner identity.User) *conversation.Store {
		return conversation.NewSeededStore(owner, format, b)
	}
}

func provideConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(profile.ConfigPath())
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(logging.Options{
		Path:    profile.LogPath(p.Profile),
		Profile: p.Profile,
		Level:   cfg.LogLevel,
	})
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := profile.EnsureDir(p.Profile); err != nil {
		return nil, err
	}
	l, err := lock.Acquire(profile.Dir(p.Profile))
	if err != nil {
		return nil, err
	}
	logger.Info("profile lock acquired")
	return l, nil
}

// provideStore depends on the lock so the database is only opened by its
// holder.
func provideStore(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	path := profile.DBPath(p.Profile)
	db, result, err := store.OpenMigrated(path)
	if err != nil {
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", path))
	return db, nil
}

func providePrefs(db *store.DB, logger *zap.Logger) *prefs.Prefs {
	return prefs.New(db, logger)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideNav(b *bus.Bus) *nav.Machine {
	return nav.NewMachine(b)
}

func provideRecorder(b *bus.Bus, logger *zap.Logger) *activity.Recorder {
	return activity.NewRecorder(b, logger.Named("activity"))
}

func provideLocale(cfg *config.Config, logger *zap.Logger) (*locale.Localizer, error) {
	loc, err := locale.New(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("load locale: %w", err)
	}
	logger.Info("locale resolved", zap.String("requested", cfg.Locale), zap.Stringer("locale", loc.Tag()))
	return loc, nil
}

func provideDetector() prefs.Detector {
	return prefs.DetectTerminal
}

func provideState(pr *prefs.Prefs, m *nav.Machine, b *bus.Bus, logger *zap.Logger, detect prefs.Detector, loc *locale.Localizer) (*state.App, error) {
	st := state.New(pr, m, b, logger, detect, NewStoreFactory(loc, b))
	if err := st.Boot(); err != nil {
		return nil, fmt.Errorf("boot: %w", err)
	}
	logger.Info("booted", zap.String("page", string(st.Page())), zap.String("theme", string(st.Theme())))
	return st, nil
}

func provideTUI(p Params, st *state.App, loc *locale.Localizer, b *bus.Bus, logger *zap.Logger) *tui.App {
	return tui.NewApp(st, loc, b, logger, p.Profile)
}

func registerLifecycle(lc fx.Lifecycle, sd fx.Shutdowner, ui *tui.App, rec *activity.Recorder, db *store.DB, lk *lock.Lock, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			rec.Start(context.Background())
			go func() {
				if err := ui.Run(); err != nil {
					logger.Error("terminal UI failed", zap.Error(err))
					_ = sd.Shutdown(fx.ExitCode(1))
					return
				}
				_ = sd.Shutdown()
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			ui.Stop()
			rec.Stop()
			stats := rec.Stats()
			logger.Info("session activity",
				zap.Int("sent", stats.MessagesSent),
				zap.Int("read", stats.MessagesRead),
				zap.Int("page_changes", stats.PageChanges))
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
