package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SmartWash-BookingService/internal/infra/storage/kv"
)

// DefaultMaxRetries количество повторов транзакции при конфликте WATCH
const DefaultMaxRetries = 3

type txKey struct{}

type txState struct {
	owner  *Store
	tx     *redis.Tx
	staged map[string][]byte
	order  []string
}

// Store хранилище записей в Redis
// Транзакции: читаемые ключи ставятся под WATCH, записи отправляются одним MULTI/EXEC
type Store struct {
	client     *redis.Client
	prefix     string
	maxRetries int
}

// New создает хранилище; prefix добавляется ко всем ключам (например "smartwash:")
func New(client *redis.Client, prefix string) *Store {
	return &Store{
		client:     client,
		prefix:     prefix,
		maxRetries: DefaultMaxRetries,
	}
}

// WithMaxRetries задаёт число повторов транзакции при конфликте WATCH (n <= 0 оставляет значение по умолчанию)
func (s *Store) WithMaxRetries(n int) *Store {
	if n > 0 {
		s.maxRetries = n
	}
	return s
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

// PingContext проверяет соединение
func (s *Store) PingContext(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var cmd *redis.StringCmd

	if tx := s.txFromContext(ctx); tx != nil {
		if v, ok := tx.staged[key]; ok {
			return v, true, nil
		}
		if err := tx.tx.Watch(ctx, s.key(key)).Err(); err != nil {
			return nil, false, fmt.Errorf("%w: Get - watch key=%s: %v", kv.ErrRead, key, err)
		}
		cmd = tx.tx.Get(ctx, s.key(key))
	} else {
		cmd = s.client.Get(ctx, s.key(key))
	}

	value, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - key=%s: %v", kv.ErrRead, key, err)
	}

	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if tx := s.txFromContext(ctx); tx != nil {
		if _, ok := tx.staged[key]; !ok {
			tx.order = append(tx.order, key)
		}
		tx.staged[key] = value
		return nil
	}

	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - key=%s: %v", kv.ErrWrite, key, err)
	}
	return nil
}

// Do выполняет fn в оптимистичной транзакции, при конфликте повторяет до maxRetries раз
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txFromContext(ctx) != nil {
		return fn(ctx)
	}

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			state := &txState{owner: s, tx: tx, staged: make(map[string][]byte)}

			if err := fn(context.WithValue(ctx, txKey{}, state)); err != nil {
				return err
			}
			if len(state.order) == 0 {
				return nil
			}

			_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				for _, k := range state.order {
					pipe.Set(ctx, s.key(k), state.staged[k], 0)
				}
				return nil
			})
			return err
		})

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return fmt.Errorf("%w: Do - watched keys changed %d times", kv.ErrTransaction, s.maxRetries+1)
}

func (s *Store) txFromContext(ctx context.Context) *txState {
	tx, ok := ctx.Value(txKey{}).(*txState)
	if !ok || tx.owner != s {
		return nil
	}
	return tx
}
