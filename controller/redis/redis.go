package redis

import (
	"context"

	"github.com/battlesnakeio/holosnake/controller"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// HighScoreKey is the key holding the high score.
const HighScoreKey = "holosnake:highscore"

// Store is a high score store backed by redis.
type Store struct {
	client *redis.Client
}

// NewStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewStore(connectURL string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	return &Store{client: client}, nil
}

// GetHighScore reads the stored high score.
func (rs *Store) GetHighScore(ctx context.Context) (int, error) {
	score, err := rs.client.Get(HighScoreKey).Int64()
	if err == redis.Nil {
		return 0, controller.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to get high score")
	}
	return int(score), nil
}

// PutHighScore overwrites the stored high score.
func (rs *Store) PutHighScore(ctx context.Context, score int) error {
	err := rs.client.Set(HighScoreKey, score, 0).Err()
	return errors.Wrap(err, "unable to set high score")
}

// Close closes the underlying client.
func (rs *Store) Close() error {
	return rs.client.Close()
}
