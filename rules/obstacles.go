package rules

import (
	"time"

	"github.com/battlesnakeio/holosnake/layout"
	log "github.com/sirupsen/logrus"
)

const (
	// MaxObstacles caps the number of live timed obstacles.
	MaxObstacles = 3
	// ObstacleAttempts is the placement budget for a single obstacle.
	ObstacleAttempts = 200
	// ObstacleMinLifetime and ObstacleMaxLifetime bound the whole number of
	// seconds an obstacle stays on the board.
	ObstacleMinLifetime = 5
	ObstacleMaxLifetime = 10
)

// Obstacle is a timed wall. ID is unique within one Obstacles set.
type Obstacle struct {
	ID     int         `json:"id"`
	Rect   layout.Rect `json:"rect"`
	Expiry time.Time   `json:"expiry"`
}

// Obstacles is the live set of timed obstacles, ordered by creation.
type Obstacles struct {
	rng       layout.Rand
	bounds    layout.Bounds
	footprint layout.Footprint
	live      []Obstacle
	nextID    int
}

// NewObstacles creates an empty set placing obstacles of the given size.
func NewObstacles(rng layout.Rand, size layout.Size) *Obstacles {
	return &Obstacles{
		rng:       rng,
		bounds:    WallBounds,
		footprint: layout.Footprint{Size: size},
		nextID:    1,
	}
}

// Spawn places a new obstacle clear of avoid. Nothing is spawned when the
// live cap is reached or when no clear position is found within
// ObstacleAttempts samples.
func (o *Obstacles) Spawn(now time.Time, avoid []layout.Rect) (Obstacle, bool) {
	if len(o.live) >= MaxObstacles {
		return Obstacle{}, false
	}
	res := layout.PlaceSingleAvoiding(o.rng, o.bounds, o.footprint, avoid, ObstacleAttempts)
	if res.Degraded {
		log.WithFields(log.Fields{
			"Kind":     "obstacle",
			"Attempts": res.Attempts,
		}).Warn("no clear position, obstacle not spawned")
		return Obstacle{}, false
	}

	lifetime := ObstacleMinLifetime + o.rng.Intn(ObstacleMaxLifetime-ObstacleMinLifetime+1)
	obs := Obstacle{
		ID:     o.nextID,
		Rect:   o.footprint.At(res.Position),
		Expiry: now.Add(time.Duration(lifetime) * time.Second),
	}
	o.nextID++
	o.live = append(o.live, obs)
	log.WithFields(log.Fields{
		"ObstacleID": obs.ID,
		"Rect":       obs.Rect,
		"Expiry":     obs.Expiry,
	}).Debug("obstacle spawned")
	return obs, true
}

// Prune removes every obstacle whose expiry is at or before now and returns
// the removed ones.
func (o *Obstacles) Prune(now time.Time) []Obstacle {
	var expired []Obstacle
	kept := o.live[:0]
	for _, obs := range o.live {
		if !obs.Expiry.After(now) {
			expired = append(expired, obs)
			continue
		}
		kept = append(kept, obs)
	}
	o.live = kept
	for _, obs := range expired {
		log.WithField("ObstacleID", obs.ID).Debug("obstacle expired")
	}
	return expired
}

// Live returns a copy of the live obstacles.
func (o *Obstacles) Live() []Obstacle {
	return append([]Obstacle{}, o.live...)
}

// Rects returns the rectangles of the live obstacles.
func (o *Obstacles) Rects() []layout.Rect {
	rects := make([]layout.Rect, 0, len(o.live))
	for _, obs := range o.live {
		rects = append(rects, obs.Rect)
	}
	return rects
}

// Len is the number of live obstacles.
func (o *Obstacles) Len() int { return len(o.live) }

// Clear removes every obstacle. IDs keep increasing.
func (o *Obstacles) Clear() { o.live = nil }
