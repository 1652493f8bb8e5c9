// Package audio plays sound effects for game events and runs the background
// music while a game is in progress.
package audio

import (
	"os"
	"sync"
	"time"

	"github.com/battlesnakeio/holosnake/rules"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Policy decides which events are audible. The menu owns these flags.
type Policy interface {
	Allows(e rules.Event) bool
	BackgroundMusicEnabled() bool
}

type silent struct{}

func (silent) Allows(rules.Event) bool      { return false }
func (silent) BackgroundMusicEnabled() bool { return false }

// SoundManager turns events into sounds. Every method is safe to call before
// Initialize, in which case nothing is heard.
type SoundManager struct {
	mu          sync.Mutex
	policy      Policy
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicSource beep.Streamer
	wantMusic   bool
	played      map[rules.Event]int
	initialized bool
}

// NewSoundManager creates a new sound manager with a policy that allows
// nothing.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		policy: silent{},
		mixer:  &beep.Mixer{},
		played: map[rules.Event]int{},
	}
}

// SetPolicy installs the policy consulted on every event.
func (sm *SoundManager) SetPolicy(p Policy) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if p == nil {
		p = silent{}
	}
	sm.policy = p
}

// Initialize sets up the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return errors.Wrap(err, "unable to open audio device")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	if sm.wantMusic {
		sm.resumeMusic()
	}
	return nil
}

// LoadMusic replaces the built in loop with a WAV file.
func (sm *SoundManager) LoadMusic(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", file)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "unable to decode %s", file)
	}

	var source beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != sampleRate {
		source = beep.Resample(4, format.SampleRate, sampleRate, source)
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.musicSource = source
	log.WithField("file", file).Info("background music loaded")
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.music = nil
	sm.initialized = false
}

// Notify plays the sound for e if the policy allows it, and starts or
// pauses the music on game start and return to menu. It never blocks on
// playback.
func (sm *SoundManager) Notify(e rules.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	switch e {
	case rules.EventGameStarted:
		sm.wantMusic = sm.policy.BackgroundMusicEnabled()
		if sm.wantMusic {
			sm.resumeMusic()
		}
		return
	case rules.EventReturnedToMenu:
		sm.wantMusic = false
		sm.pauseMusic()
		return
	}

	if !sm.policy.Allows(e) {
		return
	}
	effect := effectFor(e)
	if effect == nil {
		return
	}
	sm.played[e]++
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(effect)
	speaker.Unlock()
}

// MusicPlaying reports whether the music should currently be heard.
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.wantMusic
}

// Played returns how many times the effect for e was triggered.
func (sm *SoundManager) Played(e rules.Event) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[e]
}

func (sm *SoundManager) resumeMusic() {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if sm.music == nil {
		source := sm.musicSource
		if source == nil {
			source = NewBeatGenerator(sampleRate)
		}
		sm.music = &beep.Ctrl{Streamer: source}
		sm.mixer.Add(sm.music)
	}
	sm.music.Paused = false
}

func (sm *SoundManager) pauseMusic() {
	if !sm.initialized || sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// effectFor returns a fresh streamer for e, or nil if e has no sound.
func effectFor(e rules.Event) beep.Streamer {
	switch e {
	case rules.EventHoverChanged:
		return NewTone(sampleRate, 880, 880, 0.15, 60*time.Millisecond)
	case rules.EventItemSelected:
		return beep.Seq(
			NewTone(sampleRate, 660, 660, 0.2, 60*time.Millisecond),
			NewTone(sampleRate, 990, 990, 0.2, 90*time.Millisecond),
		)
	case rules.EventFoodEaten:
		return NewTone(sampleRate, 400, 800, 0.25, 150*time.Millisecond)
	case rules.EventGameOver:
		return NewTone(sampleRate, 300, 80, 0.3, 600*time.Millisecond)
	}
	return nil
}
