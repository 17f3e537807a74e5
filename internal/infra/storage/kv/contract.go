package kv

import (
	"context"
	"time"
)

// Store хранилище записей ключ -> значение (JSON)
// Если в контексте есть транзакция, открытая через Do того же хранилища, операции выполняются в ней
type Store interface {
	// Get возвращает значение и true, либо nil и false, если ключа нет
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set перезаписывает значение целиком
	Set(ctx context.Context, key string, value []byte) error
}

// TxManager выполняет fn атомарно: применяются либо все записи fn, либо ни одной
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransactionalStore хранилище с поддержкой транзакций
type TransactionalStore interface {
	Store
	TxManager
}

// Metrics метрики операций хранилища
type Metrics interface {
	ObserveStorage(backend, operation string, err error, started time.Time)
}
