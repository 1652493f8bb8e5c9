package rules

import (
	"math/rand"
	"time"

	"github.com/battlesnakeio/holosnake/layout"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// Tuning constants for a round.
const (
	InitialAllowedLength = 150.0
	FoodGrowth           = 25.0
	SpeedIncrement       = 0.02
	ObstacleSpawnChance  = 0.5

	InvincibilityWindow = 5 * time.Second
	InactivityTimeout   = 2 * time.Second
	GameOverGrace       = 3 * time.Second
	MinMovement         = 10.0

	// HeadSmoothing is the weight kept from the previous smoothed head.
	HeadSmoothing = 0.8

	// SelfCollisionMinScore is the score below which the trail can be crossed.
	SelfCollisionMinScore = 7
	// SelfCollisionTolerance is the contour distance that counts as a touch.
	SelfCollisionTolerance = 1.0
	// SelfCollisionSkipRecent is how many of the newest trail points are left
	// out of the self-collision polygon.
	SelfCollisionSkipRecent = 2

	MaxWalls            = 12
	WallsPerLevel       = 2
	WallAttemptsPerWall = 20
	FoodAttempts        = 100
)

// Placement bounds in arena coordinates.
var (
	WallBounds = layout.Bounds{MinX: 200, MaxX: 1000, MinY: 200, MaxY: 600}
	FoodBounds = layout.Bounds{MinX: 100, MaxX: 1000, MinY: 100, MaxY: 600}
)

// ScoreKeeper loads and saves the persisted high score. Implementations
// swallow their own failures.
type ScoreKeeper interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

type noScores struct{}

func (noScores) LoadHighScore() int { return 0 }
func (noScores) SaveHighScore(int)  {}

// State is the observable state of a simulation.
type State int

const (
	// StateActive is a round in progress.
	StateActive State = iota
	// StateGameOver is the grace period after a round ended.
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game-over"
	}
	return "active"
}

// Config holds what a simulation needs from its surroundings. Sprite sizes
// are injected, the simulation never loads assets.
type Config struct {
	Level    int
	FoodSize layout.Size
	WallSize layout.Size
	Rand     layout.Rand
	Scores   ScoreKeeper
	Notifier Notifier
}

// Snapshot is an immutable view of a simulation for renderers.
type Snapshot struct {
	SessionID     string         `json:"sessionId"`
	Level         int            `json:"level"`
	Trail         []layout.Point `json:"trail"`
	Head          layout.Point   `json:"head"`
	Food          layout.Point   `json:"food"`
	FoodRect      layout.Rect    `json:"foodRect"`
	FoodDegraded  bool           `json:"foodDegraded"`
	Walls         []layout.Rect  `json:"walls"`
	Obstacles     []Obstacle     `json:"obstacles"`
	Score         int            `json:"score"`
	HighScore     int            `json:"highScore"`
	AllowedLength float64        `json:"allowedLength"`
	CurrentLength float64        `json:"currentLength"`
	SpeedFactor   float64        `json:"speedFactor"`
	Invincible    bool           `json:"invincible"`
	GameOver      bool           `json:"gameOver"`
	Cause         string         `json:"cause,omitempty"`
}

// Simulation is one snake session at a fixed level. It is driven by Update
// once per frame and is not safe for concurrent use.
type Simulation struct {
	ID    string
	Level int

	rng       layout.Rand
	scores    ScoreKeeper
	notifier  Notifier
	food      layout.Footprint
	wall      layout.Footprint
	obstacles *Obstacles

	trail         Trail
	allowedLength float64
	speedFactor   float64

	smoothed    layout.Point
	hasSmoothed bool
	prevHead    layout.Point
	hasPrev     bool

	foodPoint     layout.Point
	foodPlacement layout.PlacementResult
	walls         []layout.Rect

	score     int
	highScore int
	state     State
	cause     string

	sessionStart time.Time
	gameOverTime time.Time
	lastMovement time.Time
	invincible   bool
}

// NewSimulation creates an active round starting at now. Level defaults to 1.
func NewSimulation(cfg Config, now time.Time) *Simulation {
	if cfg.Level < 1 {
		cfg.Level = 1
	}
	if cfg.Scores == nil {
		cfg.Scores = noScores{}
	}
	if cfg.Notifier == nil {
		cfg.Notifier = Discard
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(now.UnixNano()))
	}
	s := &Simulation{
		ID:        uuid.NewV4().String(),
		Level:     cfg.Level,
		rng:       cfg.Rand,
		scores:    cfg.Scores,
		notifier:  cfg.Notifier,
		food:      layout.Footprint{Size: cfg.FoodSize, Anchor: layout.Center},
		wall:      layout.Footprint{Size: cfg.WallSize},
		obstacles: NewObstacles(cfg.Rand, cfg.WallSize),
		highScore: cfg.Scores.LoadHighScore(),
	}
	s.startRound(now)
	s.logger().WithField("HighScore", s.highScore).Info("game started")
	return s
}

func (s *Simulation) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"SessionID": s.ID,
		"Level":     s.Level,
	})
}

func (s *Simulation) startRound(now time.Time) {
	s.trail.Reset()
	s.allowedLength = InitialAllowedLength
	s.speedFactor = 1.0
	s.hasSmoothed = false
	s.hasPrev = false
	s.score = 0
	s.state = StateActive
	s.cause = ""
	s.obstacles.Clear()
	s.generatePermanentWalls()
	s.relocateFood()
	s.sessionStart = now
	s.lastMovement = now
	s.gameOverTime = time.Time{}
	s.invincible = true
}

// generatePermanentWalls places min(level*2, 12) mutually non-overlapping
// walls, fewer if the attempt budget runs out.
func (s *Simulation) generatePermanentWalls() {
	count := s.Level * WallsPerLevel
	if count > MaxWalls {
		count = MaxWalls
	}
	positions := layout.PlaceNonOverlapping(s.rng, count, WallBounds, s.wall, nil, count*WallAttemptsPerWall)
	if len(positions) < count {
		s.logger().WithFields(log.Fields{
			"Kind":   "wall",
			"Wanted": count,
			"Placed": len(positions),
		}).Warn("placement degraded")
	}
	s.walls = make([]layout.Rect, 0, len(positions))
	for _, p := range positions {
		s.walls = append(s.walls, s.wall.At(p))
	}
}

// relocateFood moves the food clear of walls and obstacles. When no clear
// spot is found the last candidate is used regardless.
func (s *Simulation) relocateFood() {
	avoid := append(append([]layout.Rect{}, s.walls...), s.obstacles.Rects()...)
	res := layout.PlaceSingleAvoiding(s.rng, FoodBounds, s.food, avoid, FoodAttempts)
	if res.Degraded {
		s.logger().WithFields(log.Fields{
			"Kind":     "food",
			"Attempts": res.Attempts,
			"Food":     res.Position,
		}).Warn("placement degraded")
	}
	s.foodPoint = res.Position
	s.foodPlacement = res
}

func (s *Simulation) foodRect() layout.Rect { return s.food.At(s.foodPoint) }

func (s *Simulation) smooth(raw layout.Point) {
	if !s.hasSmoothed {
		s.smoothed = raw
		s.hasSmoothed = true
		return
	}
	s.smoothed = layout.Point{
		X: int(HeadSmoothing*float64(s.smoothed.X) + (1-HeadSmoothing)*float64(raw.X)),
		Y: int(HeadSmoothing*float64(s.smoothed.Y) + (1-HeadSmoothing)*float64(raw.Y)),
	}
}

// Update advances the simulation by one frame with the latest pointer
// position.
func (s *Simulation) Update(pointer layout.Point, now time.Time) Snapshot {
	s.smooth(pointer)
	return s.step(s.smoothed, now)
}

func (s *Simulation) step(head layout.Point, now time.Time) Snapshot {
	if s.state == StateGameOver {
		snap := s.Snapshot()
		if now.Sub(s.gameOverTime) > GameOverGrace {
			s.reset(now)
		}
		return snap
	}

	s.invincible = now.Sub(s.sessionStart) < InvincibilityWindow

	if !s.invincible && s.hasPrev {
		if head.Dist(s.prevHead) >= MinMovement {
			s.lastMovement = now
		} else if now.Sub(s.lastMovement) > InactivityTimeout {
			s.endRound(now, DeathCauseInactivity)
			return s.Snapshot()
		}
	}

	if s.hasPrev {
		s.trail.Extend(head, head.Dist(s.prevHead)*s.speedFactor)
	} else {
		s.trail.Start(head)
	}
	s.prevHead = head
	s.hasPrev = true

	s.trail.Trim(s.allowedLength)

	if s.foodRect().ContainsClosed(head) {
		s.eat(now)
	}

	s.obstacles.Prune(now)

	if !s.invincible {
		if cause, hit := s.collides(head); hit {
			s.endRound(now, cause)
		}
	}
	return s.Snapshot()
}

func (s *Simulation) eat(now time.Time) {
	s.relocateFood()
	s.allowedLength += FoodGrowth
	s.score++
	s.speedFactor += SpeedIncrement
	s.notifier.Notify(EventFoodEaten)
	s.logger().WithField("Score", s.score).Debug("snake ate")

	if s.rng.Float64() > ObstacleSpawnChance {
		avoid := append(append([]layout.Rect{}, s.walls...), s.foodRect())
		s.obstacles.Spawn(now, avoid)
	}
}

func (s *Simulation) collides(head layout.Point) (string, bool) {
	for _, w := range s.walls {
		if w.Contains(head) {
			return DeathCauseWallCollision, true
		}
	}
	for _, obs := range s.obstacles.live {
		if obs.Rect.Contains(head) {
			return DeathCauseObstacleCollision, true
		}
	}
	if len(s.trail.Points) > SelfCollisionSkipRecent+1 && s.score >= SelfCollisionMinScore {
		body := s.trail.Points[:len(s.trail.Points)-SelfCollisionSkipRecent]
		d := layout.PointPolygonDistance(head, body)
		if d >= -SelfCollisionTolerance && d <= SelfCollisionTolerance {
			return DeathCauseSnakeSelfCollision, true
		}
	}
	return "", false
}

func (s *Simulation) endRound(now time.Time, cause string) {
	s.state = StateGameOver
	s.gameOverTime = now
	s.cause = cause
	s.notifier.Notify(EventGameOver)
	s.logger().WithFields(log.Fields{
		"Cause": cause,
		"Score": s.score,
	}).Info("game over")
}

func (s *Simulation) reset(now time.Time) {
	s.recordHighScore()
	s.startRound(now)
	s.logger().Info("round reset")
}

func (s *Simulation) recordHighScore() {
	if s.score > s.highScore {
		s.highScore = s.score
		s.scores.SaveHighScore(s.highScore)
	}
}

// Finish persists a beaten high score. It is called when the session is
// abandoned rather than reset.
func (s *Simulation) Finish(now time.Time) {
	s.recordHighScore()
	s.logger().WithField("Duration", now.Sub(s.sessionStart)).Info("session finished")
}

// State returns the current state.
func (s *Simulation) State() State { return s.state }

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		SessionID:     s.ID,
		Level:         s.Level,
		Trail:         append([]layout.Point{}, s.trail.Points...),
		Head:          s.smoothed,
		Food:          s.foodPoint,
		FoodRect:      s.foodRect(),
		FoodDegraded:  s.foodPlacement.Degraded,
		Walls:         append([]layout.Rect{}, s.walls...),
		Obstacles:     s.obstacles.Live(),
		Score:         s.score,
		HighScore:     s.highScore,
		AllowedLength: s.allowedLength,
		CurrentLength: s.trail.Length,
		SpeedFactor:   s.speedFactor,
		Invincible:    s.invincible,
		GameOver:      s.state == StateGameOver,
		Cause:         s.cause,
	}
}
