package factory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SIA-BookingService/internal/config"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/kv"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/memory"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/postgres"
	redisStore "github.com/m04kA/SIA-BookingService/internal/infra/storage/redis"
)

// Open выбирает драйвер хранилища по [storage].driver и подключается к нему.
// Для postgres таблица создается, если её нет.
func Open(ctx context.Context, cfg config.StorageConfig, log Logger) (kv.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn("Storage: using in-memory driver, data is lost on restart")
		return memory.NewStore(), nil

	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}

		store := postgres.NewStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("Storage: connected to postgres (host=%s, port=%d, db=%s)",
			cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
		return store, nil

	case config.DriverRedis:
		client, err := redisStore.NewClient(ctx, redisStore.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		log.Info("Storage: connected to redis (addr=%s, db=%d, prefix=%q)", cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Prefix)
		return redisStore.NewStore(client, cfg.Redis.Prefix), nil
	}

	return nil, fmt.Errorf("%w: %q", kv.ErrUnknownDriver, cfg.Driver)
}
