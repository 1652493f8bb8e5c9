package input

import (
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Gate lets a gesture fire at most once per cooldown.
type Gate struct {
	name    string
	limiter *rate.Limiter
}

// NewGate returns a gate that is open until its first use.
func NewGate(name string, every rate.Limit) *Gate {
	return &Gate{name: name, limiter: rate.NewLimiter(every, 1)}
}

// Allow consumes the gate if it is open at now.
func (g *Gate) Allow(now time.Time) bool {
	if g.limiter.AllowN(now, 1) {
		return true
	}
	log.WithField("gesture", g.name).Debug("gesture suppressed by cooldown")
	return false
}

// Gestures gates the two gesture signals of a frame.
type Gestures struct {
	Pinch *Gate
	Fist  *Gate
}

// NewGestures returns gates firing at most at the given rates.
func NewGestures(pinch, fist rate.Limit) *Gestures {
	return &Gestures{
		Pinch: NewGate("pinch", pinch),
		Fist:  NewGate("fist", fist),
	}
}

// Filter clears gesture flags that are still cooling down. The pointer is
// passed through untouched.
func (g *Gestures) Filter(raw Frame, now time.Time) Frame {
	out := raw
	out.Pinch = raw.Pinch && g.Pinch.Allow(now)
	out.Fist = raw.Fist && g.Fist.Allow(now)
	return out
}
