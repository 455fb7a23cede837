package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fmath"
)

const (
	sampleRate   = beep.SampleRate(44100)
	blipDuration = 90 * time.Millisecond
)

// blipScale holds the frequencies satellites cycle through by index.
// A pentatonic run keeps overlapping blips consonant.
var blipScale = [...]float64{329.63, 392.00, 440.00, 493.88, 587.33}

// soundBoard owns the speaker and mixes one short blip per orbit event.
type soundBoard struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func newSoundBoard() *soundBoard {
	return &soundBoard{mixer: &beep.Mixer{}}
}

func (b *soundBoard) init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

func (b *soundBoard) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	b.mixer.Clear()
	speaker.Close()
	b.initialized = false
}

func (b *soundBoard) active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialized
}

func (b *soundBoard) toggleMute() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = !b.muted
}

func (b *soundBoard) isMuted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}

// blip schedules a short decaying tone for the given satellite index.
func (b *soundBoard) blip(index int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.muted {
		return
	}
	freq := blipScale[index%len(blipScale)]
	b.mixer.Add(beep.Take(sampleRate.N(blipDuration), newBlipTone(sampleRate, freq)))
}

// blipTone is a sine voice with an exponential decay envelope. The phase
// accumulator runs through WrapRadian so the fmath.Sin input stays
// inside the polynomial's accurate range.
type blipTone struct {
	sr    beep.SampleRate
	phase float64
	step  float64
	pos   int
}

func newBlipTone(sr beep.SampleRate, freq float64) *blipTone {
	return &blipTone{
		sr:   sr,
		step: fmath.TwoPi * freq / float64(sr),
	}
}

func (t *blipTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		sec := float64(t.pos) / float64(t.sr)
		env := math.Exp(-sec * 28)
		sample := 0.25 * env * fmath.Sin(t.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		t.phase = fmath.WrapRadian(t.phase + t.step)
		t.pos++
	}
	return len(samples), true
}

func (t *blipTone) Err() error {
	return nil
}
