// Package sound plays short effects for game events. Audio is optional: when
// the speaker cannot be opened every call is a no-op.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-chase/internal/world"
)

const sampleRate = beep.SampleRate(44100)

// Effect frequencies.
const (
	pickupFreq = 880.0
	hitFreq    = 220.0
	deathFreq  = 110.0
)

// Player mixes effects onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player. Call Initialize to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. A failure leaves the player silent.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences every effect still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// OnStep plays the effect for what happened during a tick.
func (p *Player) OnStep(res world.StepResult) {
	switch {
	case res.Hits > 0 && res.Health == 0:
		p.play(deathFreq, 400*time.Millisecond)
	case res.Hits > 0:
		p.play(hitFreq, 120*time.Millisecond)
	case res.Picked:
		p.play(pickupFreq, 80*time.Millisecond)
	}
}

func (p *Player) play(freq float64, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := tone(freq, d)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// tone returns a faded sine of the given length.
func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	n := sampleRate.N(d)
	return &envelope{src: beep.Take(n, sine), total: n}, nil
}

// envelope ramps volume up over the first 5 ms and down over the last 20%.
type envelope struct {
	src   beep.Streamer
	total int
	pos   int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.src.Stream(samples)
	attack := float64(sampleRate.N(5 * time.Millisecond))
	release := float64(e.total) * 0.2

	for i := range samples[:n] {
		gain := math.Min(float64(e.pos)/attack, 1.0)
		if left := float64(e.total - e.pos); left < release {
			gain = math.Min(gain, left/release)
		}
		gain *= 0.25
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.src.Err()
}
