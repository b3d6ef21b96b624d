// internal/audio/sound_manager.go
package audio

import (
	"log"
	"sync"
	"time"

	"go-tactical-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short sound tied to a simulation event.
type Cue int

const (
	CueShot Cue = iota
	CueKill
	CueLeak
	CueWaveStart
	CueWaveClear
	CueGameOver
	CueBuild
)

// cueCooldown keeps rapid-fire towers from flooding the mixer.
var cueCooldown = map[Cue]time.Duration{
	CueShot: 60 * time.Millisecond,
	CueKill: 40 * time.Millisecond,
}

// CueFor maps an event to its cue.
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.ProjectileFired:
		return CueShot, true
	case event.EnemyKilled:
		return CueKill, true
	case event.EnemyLeaked:
		return CueLeak, true
	case event.WaveStarted:
		return CueWaveStart, true
	case event.WaveCompleted:
		return CueWaveClear, true
	case event.GameOver:
		return CueGameOver, true
	case event.TowerPlaced, event.TowerUpgraded:
		return CueBuild, true
	}
	return 0, false
}

// NewCueStreamer builds the finite streamer for a cue.
func NewCueStreamer(c Cue, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueShot:
		d := 50 * time.Millisecond
		s = NewEnvelope(NewSweep(900, 600, d, WaveSquare, sampleRate), d, 2*time.Millisecond, 30*time.Millisecond, sampleRate)
		volume *= 0.3
	case CueKill:
		d := 90 * time.Millisecond
		s = NewEnvelope(NewOscillator(0, d, WaveNoise, sampleRate), d, 2*time.Millisecond, 70*time.Millisecond, sampleRate)
		volume *= 0.4
	case CueLeak:
		d := 250 * time.Millisecond
		s = NewEnvelope(NewOscillator(110, d, WaveSaw, sampleRate), d, 5*time.Millisecond, 100*time.Millisecond, sampleRate)
	case CueWaveStart:
		d := 400 * time.Millisecond
		s = NewEnvelope(NewSweep(200, 500, d, WaveSine, sampleRate), d, 20*time.Millisecond, 150*time.Millisecond, sampleRate)
	case CueWaveClear:
		d := 300 * time.Millisecond
		s = beep.Seq(
			NewEnvelope(NewOscillator(660, d/2, WaveSine, sampleRate), d/2, 5*time.Millisecond, 60*time.Millisecond, sampleRate),
			NewEnvelope(NewOscillator(990, d/2, WaveSine, sampleRate), d/2, 5*time.Millisecond, 80*time.Millisecond, sampleRate),
		)
	case CueGameOver:
		d := 1200 * time.Millisecond
		s = NewEnvelope(NewSweep(400, 80, d, WaveSaw, sampleRate), d, 10*time.Millisecond, 600*time.Millisecond, sampleRate)
	default:
		d := 80 * time.Millisecond
		s = NewEnvelope(NewOscillator(520, d, WaveSine, sampleRate), d, 5*time.Millisecond, 50*time.Millisecond, sampleRate)
	}
	return newVolume(s, volume)
}

// SoundManager plays cues for simulation events. Until Initialize succeeds
// every call is a no-op, so a machine without an audio device runs silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	lastPlayed  map[Cue]time.Time
	initialized bool
	muted       bool
}

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		volume:     volume,
		lastPlayed: make(map[Cue]time.Time),
	}
}

// Initialize sets up the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
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
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Play queues a cue unless it is still cooling down.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	now := time.Now()
	if cd, ok := cueCooldown[c]; ok && now.Sub(sm.lastPlayed[c]) < cd {
		return
	}
	sm.lastPlayed[c] = now

	streamer := NewCueStreamer(c, sm.volume)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if c, ok := CueFor(e.Type); ok {
		sm.Play(c)
	}
}

// Attach subscribes the manager to every event it has a cue for.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	d.SubscribeAll(sm)
	log.Println("[Audio] sound cues attached")
}

// Detach stops listening to a dispatcher whose session has ended.
func (sm *SoundManager) Detach(d *event.Dispatcher) {
	d.UnsubscribeAll(sm)
}
