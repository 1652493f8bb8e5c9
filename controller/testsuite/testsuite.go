package testsuite

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/battlesnakeio/holosnake/controller"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func testStoreEmpty(t *testing.T, s controller.Store) {
	ctx := context.Background()

	// Nothing saved yet.
	score, err := s.GetHighScore(ctx)
	require.Equal(t, controller.ErrNotFound, errors.Cause(err))
	require.Equal(t, 0, score)
}

func testStoreHighScore(t *testing.T, s controller.Store) {
	ctx := context.Background()

	// Save and read back.
	err := s.PutHighScore(ctx, 7)
	require.Nil(t, err)
	score, err := s.GetHighScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 7, score)

	// Overwrite, a lower score is stored as given.
	err = s.PutHighScore(ctx, 2)
	require.Nil(t, err)
	score, err = s.GetHighScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 2, score)

	// Reset to zero is a saved value, not a missing one.
	err = s.PutHighScore(ctx, 0)
	require.Nil(t, err)
	score, err = s.GetHighScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 0, score)
}

func testStoreConcurrentWriters(t *testing.T, s controller.Store) {
	ctx := context.Background()

	var failed uint32 // How many writes errored.
	var wg sync.WaitGroup
	wg.Add(20)

	for i := 0; i < 20; i++ {
		go func(score int) {
			if err := s.PutHighScore(ctx, score); err != nil {
				atomic.AddUint32(&failed, 1)
			}
			wg.Done()
		}(i + 1)
	}

	wg.Wait()

	require.Equal(t, uint32(0), failed)

	// One of the writes won.
	score, err := s.GetHighScore(ctx)
	require.Nil(t, err)
	require.True(t, score >= 1 && score <= 20)
}

// Suite will execute the store testsuite.
func Suite(t *testing.T, s controller.Store, pretest func()) {
	s = controller.InstrumentStore(s)
	t.Run("Empty", func(t *testing.T) { pretest(); testStoreEmpty(t, s) })
	t.Run("HighScore", func(t *testing.T) { pretest(); testStoreHighScore(t, s) })
	t.Run("ConcurrentWriters", func(t *testing.T) { pretest(); testStoreConcurrentWriters(t, s) })
}
