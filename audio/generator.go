package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone is a sine sweep from one frequency to another with a short attack and
// an exponential tail. It ends after its duration.
type Tone struct {
	sr   beep.SampleRate
	from float64
	to   float64
	amp  float64
	n    int
	pos  int
}

// NewTone creates a sweep lasting d.
func NewTone(sr beep.SampleRate, from, to, amp float64, d time.Duration) *Tone {
	return &Tone{sr: sr, from: from, to: to, amp: amp, n: sr.N(d)}
}

func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.n {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.n {
			return i, true
		}
		progress := float64(g.pos) / float64(g.n)
		t := float64(g.pos) / float64(g.sr)
		freq := g.from + (g.to-g.from)*progress

		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-3*progress)
		sample := g.amp * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Tone) Err() error {
	return nil
}

// BeatGenerator is the built in background loop, a kick on every beat over a
// walking bass line.
type BeatGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// bassLine is one bar, in Hz.
var bassLine = [4]float64{110, 110, 146.83, 130.81}

// NewBeatGenerator creates a beat at 100 BPM.
func NewBeatGenerator(sr beep.SampleRate) *BeatGenerator {
	return &BeatGenerator{
		sr:      sr,
		samples: sr.N(time.Millisecond * 600),
	}
}

func (g *BeatGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.sr.N(time.Millisecond * 100)
	for i := range samples {
		beat := g.pos / g.samples
		beatPos := g.pos % g.samples
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < kickLen {
			env := 1.0 - float64(beatPos)/float64(kickLen)
			kick = 0.3 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		bass := 0.1 * math.Sin(2*math.Pi*bassLine[beat%len(bassLine)]*t)

		samples[i][0] = kick + bass
		samples[i][1] = kick + bass
		g.pos++
	}
	return len(samples), true
}

func (g *BeatGenerator) Err() error {
	return nil
}
