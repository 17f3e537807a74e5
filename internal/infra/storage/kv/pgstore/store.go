package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SmartWash-BookingService/internal/infra/storage/kv"
	"github.com/m04kA/SmartWash-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SmartWash-BookingService/pkg/psqlbuilder"
)

const tableName = "kv_records"

// DefaultMaxRetries количество повторов транзакции при ошибке сериализации
const DefaultMaxRetries = 3

// serializationFailure SQLSTATE конфликта SERIALIZABLE-транзакций
const serializationFailure pq.ErrorCode = "40001"

const createTableQuery = `CREATE TABLE IF NOT EXISTS kv_records (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Store хранилище записей в таблице kv_records PostgreSQL
type Store struct {
	db         DBExecutor
	txManager  TransactionManager
	maxRetries int
}

// New создает хранилище. db - *dbmetrics.DB, txManager - *txmanager.TransactionManager над тем же db
func New(db DBExecutor, txManager TransactionManager) *Store {
	return &Store{db: db, txManager: txManager, maxRetries: DefaultMaxRetries}
}

// EnsureSchema создает таблицу, если её нет
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", kv.ErrWrite, err)
	}
	return nil
}

// Get читает запись. Внутри транзакции строка блокируется (FOR UPDATE)
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	selectBuilder := psqlbuilder.Select("value").
		From(tableName).
		Where(squirrel.Eq{"key": key})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - build select query: %v", kv.ErrRead, err)
	}

	var value []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - scan value for key=%s: %w", kv.ErrRead, key, err)
	}

	return value, true, nil
}

// Set вставляет или перезаписывает запись
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("key", "value", "updated_at").
		Values(key, string(value), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", kv.ErrWrite, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert for key=%s: %w", kv.ErrWrite, key, err)
	}

	return nil
}

// Do выполняет fn в сериализуемой транзакции
// При конфликте сериализации (40001) транзакция повторяется до maxRetries раз
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if dbmetrics.IsInTransaction(ctx) {
		return s.txManager.DoSerializable(ctx, fn)
	}

	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		err = s.txManager.DoSerializable(ctx, fn)
		if !isSerializationFailure(err) {
			return err
		}
	}

	return fmt.Errorf("%w: Do - serialization failure %d times: %v", kv.ErrTransaction, s.maxRetries+1, err)
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == serializationFailure
}
