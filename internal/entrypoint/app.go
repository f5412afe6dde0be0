package entrypoint

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/audaroky/internal/achievements"
	"github.com/mrlokans/audaroky/internal/cache"
	"github.com/mrlokans/audaroky/internal/config"
	"github.com/mrlokans/audaroky/internal/credentials"
	"github.com/mrlokans/audaroky/internal/dictionary"
	"github.com/mrlokans/audaroky/internal/gateway"
	http_controllers "github.com/mrlokans/audaroky/internal/http"
	"github.com/mrlokans/audaroky/internal/kvstore"
	"github.com/mrlokans/audaroky/internal/llm"
	"github.com/mrlokans/audaroky/internal/progress"
	"github.com/mrlokans/audaroky/internal/scheduler"
	"github.com/mrlokans/audaroky/internal/services"
	"github.com/mrlokans/audaroky/internal/streak"
	"github.com/mrlokans/audaroky/internal/tasks"
	"github.com/mrlokans/audaroky/internal/translator"
	"github.com/mrlokans/audaroky/internal/xp"
)

// App holds every long-lived component of the server. The CLI builds the same
// App and uses the parts it needs.
type App struct {
	Config  *config.Config
	Version string
	Logger  *zap.Logger

	Store        kvstore.Store
	Credentials  *credentials.Store
	Cache        *cache.Cache
	Gateway      *gateway.Client
	Translator   *translator.Translator
	XP           *xp.Ledger
	Stats        *achievements.StatsStore
	Achievements *achievements.Engine
	Streak       *streak.Tracker
	Progress     *progress.Engine
	Reader       *services.Reader
	Generator    llm.Generator

	// Set by EnableBackground
	Tasks  *tasks.Client
	Pruner *scheduler.CachePruneScheduler

	closers []func() error
}

// Build validates cfg and wires the store, the translation client and the
// gamification engines.
func Build(cfg *config.Config, version string, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	store, closeStore, err := OpenStore(cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	app := &App{Config: cfg, Version: version, Logger: logger, Store: store}
	app.closers = append(app.closers, closeStore)

	sealer, err := newSealer(cfg.Credentials, logger)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Credentials = credentials.New(store, sealer)

	app.Gateway = gateway.New(gateway.Config{
		URL:            cfg.GatewayURL(),
		Attempts:       cfg.Gateway.Attempts,
		AttemptTimeout: cfg.Gateway.AttemptTimeout,
		Backoff:        cfg.Gateway.Backoff,
	}, app.Credentials, logger.Named("gateway"))

	app.Cache = cache.New(store, logger.Named("cache"), cache.WithMaxAge(cfg.Cache.MaxAge))
	dict := dictionary.NewRussian()
	app.Translator = translator.New(app.Gateway, app.Cache, dict, logger.Named("translator"))

	loc, err := cfg.Location()
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	app.XP = xp.NewLedger(store, logger.Named("xp"))
	app.Stats = achievements.NewStatsStore(store, app.XP)
	app.Achievements = achievements.NewEngine(store, app.Stats, app.XP, logger.Named("achievements"))
	app.Streak = streak.NewTracker(store, app.Stats, streak.WithLocation(loc))
	app.Progress = progress.NewEngine(store)
	app.Generator = llm.NewOpenAICompatible(cfg.LLM.BaseURL, cfg.LLM.Model)

	app.Reader = services.NewReader(services.ReaderDeps{
		Translator:   app.Translator,
		Credentials:  readerCredentials(cfg, app.Credentials),
		XP:           app.XP,
		Stats:        app.Stats,
		Achievements: app.Achievements,
		Streak:       app.Streak,
		Progress:     app.Progress,
		Pairs:        dict,
		Logger:       logger.Named("reader"),
	})

	return app, nil
}

// readerCredentials counts the server's fallback key only when the gateway
// targets this server's own proxy.
func readerCredentials(cfg *config.Config, store *credentials.Store) credentials.WithServerKey {
	return credentials.WithServerKey{
		Store:     store,
		ServerKey: cfg.Gateway.URL == "" && cfg.LLM.ServerAPIKey != "",
	}
}

func newSealer(cfg config.Credentials, logger *zap.Logger) (*credentials.Sealer, error) {
	switch {
	case cfg.EncryptionKey != "":
		sealer, err := credentials.NewSealerFromBase64(cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("invalid credential encryption key: %w", err)
		}
		return sealer, nil
	case cfg.Passphrase != "":
		return credentials.NewSealerFromPassphrase(cfg.Passphrase)
	}
	logger.Warn("credential encryption key not set, API key is stored as plain text")
	return nil, nil
}

// EnableBackground opens the task queue when enabled and starts it along with
// the cache prune scheduler. Both stop when ctx is cancelled or on Shutdown.
func (a *App) EnableBackground(ctx context.Context) error {
	if a.Config.Tasks.Enabled {
		client, err := tasks.NewClient(a.Config.Tasks.DatabasePath, tasks.Config{
			Workers:         a.Config.Tasks.Workers,
			ReleaseAfter:    a.Config.Tasks.ReleaseAfter,
			CleanupInterval: a.Config.Tasks.CleanupInterval,
		}, a.Logger.Named("tasks"))
		if err != nil {
			return fmt.Errorf("failed to initialize task queue: %w", err)
		}
		client.Register(tasks.NewWarmTranslationsQueue(a.Translator, a.Logger.Named("tasks")))
		client.Start(ctx)
		a.Tasks = client
		a.closers = append(a.closers, client.Close)
	}

	a.Pruner = scheduler.NewCachePruneScheduler(a.Cache, a.Config.Cache.PruneSchedule, a.Logger.Named("scheduler"))
	if err := a.Pruner.Start(ctx); err != nil {
		return fmt.Errorf("failed to start cache prune scheduler: %w", err)
	}
	return nil
}

// Router builds the HTTP router from the wired components.
func (a *App) Router() *gin.Engine {
	cfg := http_controllers.RouterConfig{
		Reader:       a.Reader,
		Levels:       a.Progress,
		XP:           a.XP,
		Credentials:  a.Credentials,
		Generator:    a.Generator,
		ServerAPIKey: a.Config.LLM.ServerAPIKey,
		TaskClient:   a.Tasks,
		Version:      a.Version,
		Logger:       a.Logger.Named("http"),
	}
	if p, ok := a.Store.(http_controllers.Pinger); ok {
		cfg.Store = p
	}
	return http_controllers.NewRouter(cfg)
}

// Shutdown stops background work, waiting for running tasks until ctx expires.
func (a *App) Shutdown(ctx context.Context) {
	if a.Pruner != nil {
		a.Pruner.Stop()
	}
	if a.Tasks != nil {
		a.Tasks.Stop(ctx)
	}
}

// Close releases the store and the task database, newest first.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
