package redis_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/pkg/db/redis"
)

func configFor(t *testing.T, s *miniredis.Miniredis) *redis.Config {
	t.Helper()

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := redis.DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	return cfg
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("connects and round-trips values", func(t *testing.T) {
		s := miniredis.RunT(t)
		client, err := redis.NewClient(ctx, configFor(t, s))
		require.NoError(t, err)
		defer func() { assert.NoError(t, client.Close()) }()

		require.NoError(t, client.Set(ctx, "k", "v", time.Minute))
		got, err := client.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
		assert.Greater(t, s.TTL("k"), time.Duration(0))

		_, err = client.Get(ctx, "absent")
		assert.True(t, redis.IsNil(err))

		n, err := client.Incr(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		n, err = client.Incr(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("unreachable server", func(t *testing.T) {
		cfg := redis.DefaultConfig()
		cfg.Host = "127.0.0.1"
		cfg.Port = 1
		cfg.DialTimeout = 100 * time.Millisecond

		client, err := redis.NewClient(ctx, cfg)
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), redis.ErrConnect)
	})
}

func TestConfigAddr(t *testing.T) {
	cfg := &redis.Config{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", cfg.Addr())
}
