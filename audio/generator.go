package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// QuackGenerator is a short nasal chirp with a falling pitch
type QuackGenerator struct {
	sr  beep.SampleRate
	pos int
}

func NewQuackGenerator(sr beep.SampleRate) *QuackGenerator {
	return &QuackGenerator{sr: sr}
}

func (g *QuackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 700 - 1500*t
		// Odd harmonics give the reedy timbre
		sample := math.Sin(2*math.Pi*freq*t) + 0.4*math.Sin(2*math.Pi*freq*3*t)
		envelope := math.Min(t/0.01, 1) * math.Exp(-t*12)
		sample *= 0.15 * envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *QuackGenerator) Err() error { return nil }

// HonkGenerator is a loud two-tone brass-like blast
type HonkGenerator struct {
	sr  beep.SampleRate
	pos int
}

func NewHonkGenerator(sr beep.SampleRate) *HonkGenerator {
	return &HonkGenerator{sr: sr}
}

func (g *HonkGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 330.0
		if t > 0.15 {
			freq = 262
		}
		// Clipped sine approximates a square wave
		sample := math.Max(-0.6, math.Min(0.6, math.Sin(2*math.Pi*freq*t)))
		envelope := math.Min(t/0.02, 1) * math.Exp(-t*3)
		sample *= 0.25 * envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HonkGenerator) Err() error { return nil }

// WhooshGenerator is filtered noise sweeping up in brightness
type WhooshGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	prev float64
}

func NewWhooshGenerator(sr beep.SampleRate) *WhooshGenerator {
	return &WhooshGenerator{sr: sr, seed: time.Now().UnixNano()}
}

func (g *WhooshGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(g.sr.N(whooshDuration))
	for i := range samples {
		progress := math.Min(float64(g.pos)/total, 1)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// One-pole low-pass opening over time
		alpha := 0.05 + 0.5*progress
		g.prev += alpha * (noise - g.prev)

		envelope := math.Sin(progress * math.Pi)
		sample := 0.3 * envelope * g.prev

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WhooshGenerator) Err() error { return nil }

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error { return nil }

// DroneGenerator is the looping chase bed, a slow pulsing low tone
type DroneGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

func NewDroneGenerator(sr beep.SampleRate) *DroneGenerator {
	return &DroneGenerator{sr: sr, samples: sr.N(time.Second)}
}

func (g *DroneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)

		amplitude := 0.06 * (0.6 + 0.4*math.Sin(cyclePos*2*math.Pi))
		sample := amplitude * (math.Sin(2*math.Pi*55*t) + 0.5*math.Sin(2*math.Pi*82.5*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DroneGenerator) Err() error { return nil }
