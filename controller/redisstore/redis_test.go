package redisstore

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/controller/testsuite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var store *RedisStore
var server *miniredis.Miniredis

func TestMain(m *testing.M) {
	// Use REDIS_URL to run against a real redis, otherwise spin up miniredis.
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		server = miniredis.NewMiniRedis()
		if err := server.Start(); err != nil {
			fmt.Println("unable to start local redis instance")
			os.Exit(1)
		}
		redisURL = fmt.Sprintf("redis://%s", server.Addr())
	}

	s, err := NewRedisStore(redisURL)
	if err != nil {
		fmt.Println("unable to connect redis store", err)
		os.Exit(1)
	}
	store = s

	retCode := m.Run()

	store.Close()
	if server != nil {
		server.Close()
	}
	os.Exit(retCode)
}

func resetRedisServer(t *testing.T) {
	if server == nil {
		// this means we're running against an actual redis instance, so instead flush all keys
		err := store.client.FlushAll().Err()
		require.NoError(t, err)
		return
	}
	server.FlushAll()
}

func TestRedisStore(t *testing.T) {
	var opts []testsuite.Option
	if server != nil {
		// miniredis drops its lock while a Lua script runs, so concurrent
		// puts can interleave. Set REDIS_URL to cover them on a real redis.
		opts = append(opts, testsuite.SkipConcurrentWriters("miniredis does not run scripts atomically"))
	}
	testsuite.Suite(t, store, func() { resetRedisServer(t) }, opts...)
}

func TestPutHighScoreSequential(t *testing.T) {
	resetRedisServer(t)
	ctx := context.Background()

	for _, score := range []int{3, 11, 7, 11, 2, 15, 1} {
		require.NoError(t, store.PutHighScore(ctx, "sequential", score))
	}
	score, err := store.GetHighScore(ctx, "sequential")
	require.NoError(t, err)
	require.Equal(t, 15, score)
}

func TestKeysArePrefixed(t *testing.T) {
	resetRedisServer(t)
	ctx := context.Background()

	err := store.PutHighScore(ctx, controller.DefaultHighScoreKey, 5)
	assert.NoError(t, err)

	raw, err := store.client.Get(keyPrefix + controller.DefaultHighScoreKey).Int()
	assert.NoError(t, err)
	assert.Equal(t, 5, raw)
}

func TestGarbageValue(t *testing.T) {
	resetRedisServer(t)
	ctx := context.Background()

	err := store.client.Set(keyPrefix+"garbage", "not a number", 0).Err()
	require.NoError(t, err)

	_, err = store.GetHighScore(ctx, "garbage")
	assert.Error(t, err)
	assert.NotEqual(t, controller.ErrNotFound, err)
}

func TestNewRedisStoreBadURL(t *testing.T) {
	_, err := NewRedisStore("not-a-url://")
	assert.Error(t, err)
}

var _ controller.Store = &RedisStore{}
