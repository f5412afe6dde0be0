package entrypoint

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mrlokans/audaroky/internal/config"
	"github.com/mrlokans/audaroky/internal/database"
	"github.com/mrlokans/audaroky/internal/kvstore"
)

// OpenStore returns the key-value backend selected by cfg.Backend together
// with a function releasing it.
func OpenStore(cfg config.Store, logger *zap.Logger) (kvstore.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.StoreBackendSQLite, "":
		db, err := database.NewDatabase(cfg.DatabasePath, logger)
		if err != nil {
			return nil, noop, err
		}
		return db, db.Close, nil

	case config.StoreBackendSQL:
		store, err := kvstore.NewSQLStore(cfg.SQLDriver, cfg.SQLDSN)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("sql store initialized", zap.String("driver", cfg.SQLDriver))
		return store, store.Close, nil

	case config.StoreBackendRedis:
		store := kvstore.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := store.Ping(); err != nil {
			_ = store.Close()
			return nil, noop, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("redis store initialized", zap.String("addr", cfg.RedisAddr))
		return store, store.Close, nil

	case config.StoreBackendMemory:
		logger.Warn("using in-memory store, progress is lost on restart")
		return kvstore.NewMemoryStore(), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
