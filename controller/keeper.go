package controller

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StoreTimeout bounds each high score call made from the frame loop.
var StoreTimeout = 2 * time.Second

// ScoreKeeper adapts a Store to the simulation. Failures never reach the
// caller: a load that fails reads as 0 and a save that fails is logged.
type ScoreKeeper struct {
	Store Store
}

// NewScoreKeeper returns a keeper backed by s.
func NewScoreKeeper(s Store) *ScoreKeeper {
	return &ScoreKeeper{Store: s}
}

// LoadHighScore returns the saved high score, or 0.
func (k *ScoreKeeper) LoadHighScore() int {
	ctx, cancel := context.WithTimeout(context.Background(), StoreTimeout)
	defer cancel()

	score, err := k.Store.GetHighScore(ctx)
	if err != nil {
		if errors.Cause(err) != ErrNotFound {
			log.WithError(err).Warn("unable to load high score")
		}
		return 0
	}
	return score
}

// SaveHighScore persists score.
func (k *ScoreKeeper) SaveHighScore(score int) {
	ctx, cancel := context.WithTimeout(context.Background(), StoreTimeout)
	defer cancel()

	if err := k.Store.PutHighScore(ctx, score); err != nil {
		log.WithError(err).WithField("score", score).Warn("unable to save high score")
		return
	}
	log.WithField("score", score).Info("high score saved")
}
