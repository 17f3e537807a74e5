package redisstore

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SmartWash-BookingService/internal/infra/storage/kv"
)

func newStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, "smartwash:"), mr
}

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)

	_, found, err := s.Get(ctx, "smartwash_bookings")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "smartwash_bookings", []byte(`[]`)))

	raw, err := mr.Get("smartwash:smartwash_bookings")
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)

	v, found, err := s.Get(ctx, "smartwash_bookings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(v))
}

func TestStore_DoCommit(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)

	err := s.Do(ctx, func(txCtx context.Context) error {
		if _, _, err := s.Get(txCtx, "a"); err != nil {
			return err
		}
		if err := s.Set(txCtx, "a", []byte("1")); err != nil {
			return err
		}

		v, found, err := s.Get(txCtx, "a")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "1", string(v))

		return s.Set(txCtx, "b", []byte("2"))
	})
	require.NoError(t, err)

	a, _ := mr.Get("smartwash:a")
	b, _ := mr.Get("smartwash:b")
	assert.Equal(t, "1", a)
	assert.Equal(t, "2", b)
}

func TestStore_DoRollback(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)

	boom := errors.New("boom")
	err := s.Do(ctx, func(txCtx context.Context) error {
		require.NoError(t, s.Set(txCtx, "a", []byte("1")))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("smartwash:a"))
}

func TestStore_DoRetriesOnConflict(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)
	require.NoError(t, mr.Set("smartwash:counter", "0"))

	attempts := 0
	err := s.Do(ctx, func(txCtx context.Context) error {
		attempts++
		if _, _, err := s.Get(txCtx, "counter"); err != nil {
			return err
		}
		if attempts == 1 {
			// конкурентная запись после WATCH
			require.NoError(t, mr.Set("smartwash:counter", "changed"))
		}
		return s.Set(txCtx, "counter", []byte("mine"))
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	v, _ := mr.Get("smartwash:counter")
	assert.Equal(t, "mine", v)
}

func TestStore_GetError(t *testing.T) {
	s, mr := newStore(t)
	mr.Close()

	_, _, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, kv.ErrRead)
}
