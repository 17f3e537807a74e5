package kv

import (
	"context"
	"time"
)

// InstrumentedStore декоратор, который пишет метрики каждой операции
type InstrumentedStore struct {
	next    TransactionalStore
	backend string
	metrics Metrics
}

// Instrument оборачивает хранилище метриками
func Instrument(next TransactionalStore, backend string, m Metrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, backend: backend, metrics: m}
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	defer func(started time.Time) { s.metrics.ObserveStorage(s.backend, "get", err, started) }(time.Now())
	return s.next.Get(ctx, key)
}

func (s *InstrumentedStore) Set(ctx context.Context, key string, value []byte) (err error) {
	defer func(started time.Time) { s.metrics.ObserveStorage(s.backend, "set", err, started) }(time.Now())
	return s.next.Set(ctx, key, value)
}

func (s *InstrumentedStore) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func(started time.Time) { s.metrics.ObserveStorage(s.backend, "tx", err, started) }(time.Now())
	return s.next.Do(ctx, fn)
}
