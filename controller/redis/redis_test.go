package redis

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/battlesnakeio/holosnake/controller"
	"github.com/battlesnakeio/holosnake/controller/testsuite"
	"github.com/dlsteuer/miniredis"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/require"
)

var store *Store
var server *miniredis.Miniredis

func TestStoreSuite(t *testing.T) {
	testsuite.Suite(t, store, func() { resetRedisServer(t) })
}

func TestStoresDecimalString(t *testing.T) {
	resetRedisServer(t)

	require.NoError(t, store.PutHighScore(context.Background(), 31))
	if server != nil {
		v, err := server.Get(HighScoreKey)
		require.NoError(t, err)
		require.Equal(t, "31", v)
	}
}

func TestGarbageValue(t *testing.T) {
	resetRedisServer(t)

	require.NoError(t, store.client.Set(HighScoreKey, "lots", 0).Err())
	_, err := store.GetHighScore(context.Background())
	require.Error(t, err)
	require.Equal(t, 0, controller.NewScoreKeeper(store).LoadHighScore())
}

func TestMain(m *testing.M) {
	redisURL := os.Getenv("REDIS_URL")
	if len(redisURL) == 0 {
		// Setup server
		server = miniredis.NewMiniRedis()
		err := server.Start()
		if err != nil {
			fmt.Println("unable to start local redis instance")
			os.Exit(1)
		}
		redisURL = fmt.Sprintf("redis://%s", server.Addr())
	}

	// Setup store
	s, err := NewStore(redisURL)
	if err != nil {
		fmt.Println("unable to connect redis store")
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
		redisURL := os.Getenv("REDIS_URL")
		o, err := redis.ParseURL(redisURL)
		require.NoError(t, err)
		client := redis.NewClient(o)
		defer client.Close()
		err = client.FlushAll().Err()
		require.NoError(t, err)
		return
	}
	server.FlushAll()
}
