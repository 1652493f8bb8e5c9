package rules

import (
	"math/rand"
	"testing"
	"time"

	"github.com/battlesnakeio/holosnake/layout"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func at(sec float64) time.Time {
	return t0.Add(time.Duration(sec * float64(time.Second)))
}

type eventLog struct{ events []Event }

func (l *eventLog) Notify(e Event) { l.events = append(l.events, e) }

func (l *eventLog) count(e Event) int {
	n := 0
	for _, got := range l.events {
		if got == e {
			n++
		}
	}
	return n
}

type memScores struct {
	high  int
	saved []int
}

func (m *memScores) LoadHighScore() int { return m.high }

func (m *memScores) SaveHighScore(score int) {
	m.high = score
	m.saved = append(m.saved, score)
}

// floatRand pins Float64 so obstacle spawns after eating are predictable.
type floatRand struct {
	*rand.Rand
	f float64
}

func (r floatRand) Float64() float64 { return r.f }

var (
	testFoodSize = layout.Size{W: 40, H: 40}
	testWallSize = layout.Size{W: 80, H: 80}
)

func newTestSim(t *testing.T, level int, rng layout.Rand) (*Simulation, *eventLog, *memScores) {
	t.Helper()
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	events := &eventLog{}
	scores := &memScores{}
	s := NewSimulation(Config{
		Level:    level,
		FoodSize: testFoodSize,
		WallSize: testWallSize,
		Rand:     rng,
		Scores:   scores,
		Notifier: events,
	}, t0)
	require.Equal(t, StateActive, s.State())
	return s, events, scores
}

// clearBoard removes walls and parks the food in the top right corner, away
// from every path the tests drive through.
func clearBoard(s *Simulation) {
	s.walls = nil
	s.obstacles.Clear()
	s.foodPoint = layout.Point{X: 1000, Y: 100}
}
