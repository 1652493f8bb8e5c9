package controller

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when no high score has been saved yet.
var ErrNotFound = errors.New("controller: high score not found")

// Store is the interface to the high score backend.
type Store interface {
	GetHighScore(ctx context.Context) (int, error)
	PutHighScore(ctx context.Context, score int) error
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{}
}

type inmem struct {
	score int
	saved bool
	lock  sync.Mutex
}

func (in *inmem) GetHighScore(ctx context.Context) (int, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if !in.saved {
		return 0, ErrNotFound
	}
	return in.score, nil
}

func (in *inmem) PutHighScore(ctx context.Context, score int) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	in.score = score
	in.saved = true
	return nil
}
