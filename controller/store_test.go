package controller

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestInMemStore(t *testing.T) {
	ctx := context.Background()
	s := InstrumentStore(InMemStore())

	_, err := s.GetHighScore(ctx)
	require.Equal(t, ErrNotFound, err)

	require.NoError(t, s.PutHighScore(ctx, 12))
	score, err := s.GetHighScore(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, score)

	require.NoError(t, s.PutHighScore(ctx, 3))
	score, err = s.GetHighScore(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, score)
}

type brokenStore struct{ puts int }

func (b *brokenStore) GetHighScore(context.Context) (int, error) {
	return 0, errors.New("disk on fire")
}

func (b *brokenStore) PutHighScore(context.Context, int) error {
	b.puts++
	return errors.New("disk on fire")
}

func TestScoreKeeper(t *testing.T) {
	k := NewScoreKeeper(InMemStore())
	require.Equal(t, 0, k.LoadHighScore())
	k.SaveHighScore(9)
	require.Equal(t, 9, k.LoadHighScore())
}

func TestScoreKeeperSwallowsFailures(t *testing.T) {
	b := &brokenStore{}
	k := NewScoreKeeper(b)
	require.Equal(t, 0, k.LoadHighScore())
	k.SaveHighScore(4)
	require.Equal(t, 1, b.puts)
}

func TestScoreKeeperNotFoundWrapped(t *testing.T) {
	k := NewScoreKeeper(notFoundStore{})
	require.Equal(t, 0, k.LoadHighScore())
}

type notFoundStore struct{}

func (notFoundStore) GetHighScore(context.Context) (int, error) {
	return 0, errors.Wrap(ErrNotFound, "reading highscore.json")
}

func (notFoundStore) PutHighScore(context.Context, int) error { return nil }
