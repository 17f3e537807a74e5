package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SmartWash-BookingService/internal/api/handlers/health"
	"github.com/m04kA/SmartWash-BookingService/internal/config"
	"github.com/m04kA/SmartWash-BookingService/internal/infra/storage/kv"
	"github.com/m04kA/SmartWash-BookingService/internal/infra/storage/kv/memstore"
	"github.com/m04kA/SmartWash-BookingService/internal/infra/storage/kv/pgstore"
	"github.com/m04kA/SmartWash-BookingService/internal/infra/storage/kv/redisstore"
	"github.com/m04kA/SmartWash-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SmartWash-BookingService/pkg/logger"
	"github.com/m04kA/SmartWash-BookingService/pkg/metrics"
	"github.com/m04kA/SmartWash-BookingService/pkg/txmanager"
)

// storage выбранное хранилище и всё, что нужно закрыть при остановке
type storage struct {
	store  kv.TransactionalStore
	pinger health.Pinger
	close  func()
}

// openStorage создает хранилище по storage.backend
// metricsCollector может быть nil
func openStorage(
	ctx context.Context,
	cfg *config.Config,
	metricsCollector *metrics.Metrics,
	stopCh <-chan struct{},
	log *logger.Logger,
) (*storage, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg.Database, metricsCollector, stopCh, log)
	case config.BackendRedis:
		return openRedis(ctx, cfg.Redis, log)
	default:
		log.Info("Using in-memory storage, data is lost on restart")
		return &storage{store: memstore.New(), close: func() {}}, nil
	}
}

func openPostgres(
	ctx context.Context,
	cfg config.DatabaseConfig,
	metricsCollector *metrics.Metrics,
	stopCh <-chan struct{},
	log *logger.Logger,
) (*storage, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
	if err := wrappedDB.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)

	store := pgstore.New(wrappedDB, txmanager.NewTransactionManager(wrappedDB))
	if err := store.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &storage{
		store:  store,
		pinger: wrappedDB,
		close:  func() { _ = db.Close() },
	}, nil
}

func openRedis(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	store := redisstore.New(client, cfg.KeyPrefix).WithMaxRetries(cfg.MaxRetries)
	if err := store.PingContext(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d, prefix=%s)", cfg.Addr, cfg.DB, cfg.KeyPrefix)

	return &storage{
		store:  store,
		pinger: store,
		close:  func() { _ = client.Close() },
	}, nil
}
