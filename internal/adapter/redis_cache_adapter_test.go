package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"studydeck/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectGet("key").SetVal("value")

	val, err := cacheAdapter.Get(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, "value", val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_GetMissMapsToCacheMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectGet("missing").RedisNil()

	_, err := cacheAdapter.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_GetServerError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectGet("key").SetErr(errors.New("connection reset"))

	_, err := cacheAdapter.Get(context.Background(), "key")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrCacheMiss))
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectSet("key", "value", time.Minute).SetVal("OK")

	err := cacheAdapter.Set(context.Background(), "key", "value", time.Minute)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectDel("key").SetVal(1)

	err := cacheAdapter.Delete(context.Background(), "key")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, cacheAdapter.Ping(context.Background()))
}
