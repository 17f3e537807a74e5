package memstore

import (
	"context"
	"sync"
)

type txKey struct{}

// txState записи, накопленные внутри транзакции
type txState struct {
	owner  *Store
	staged map[string][]byte
}

// Store хранилище в памяти процесса
// Транзакции выполняются последовательно; записи внутри транзакции применяются только при успешном завершении fn
type Store struct {
	txMu sync.Mutex

	mu   sync.RWMutex
	data map[string][]byte
}

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get возвращает копию значения
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	if tx := s.txFromContext(ctx); tx != nil {
		if v, ok := tx.staged[key]; ok {
			return clone(v), true, nil
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return clone(v), true, nil
}

// Set перезаписывает значение (внутри транзакции запись откладывается до commit)
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if tx := s.txFromContext(ctx); tx != nil {
		tx.staged[key] = clone(value)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = clone(value)
	return nil
}

// Do выполняет fn в транзакции. Вложенный вызов присоединяется к внешней транзакции
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txFromContext(ctx) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	tx := &txState{owner: s, staged: make(map[string][]byte)}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range tx.staged {
		s.data[k] = v
	}

	return nil
}

func (s *Store) txFromContext(ctx context.Context) *txState {
	tx, ok := ctx.Value(txKey{}).(*txState)
	if !ok || tx.owner != s {
		return nil
	}
	return tx
}

func clone(v []byte) []byte {
	if v == nil {
		return nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out
}
