package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Peak amplitude for synthesized cues
const cueVolume = 0.25

// envelope wraps s with a linear fade-out over length samples
func envelope(s beep.Streamer, length int) func([][2]float64) (int, bool) {
	pos := 0
	return func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			gain := cueVolume
			if length > 0 {
				gain *= math.Max(0, 1-float64(pos)/float64(length))
			}
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return n, ok
	}
}

// SweepGenerator glides a buzzy tone from one frequency to another
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: max(sr.N(d), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Fundamental plus two harmonics for a harsh edge
		sample := 0.6*math.Sin(g.phase) + 0.3*math.Sin(2*g.phase) + 0.1*math.Sin(3*g.phase)
		sample *= cueVolume * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// NewArpeggio sequences a short decaying sine note per frequency over total
func NewArpeggio(sr beep.SampleRate, freqs []float64, total time.Duration) beep.Streamer {
	per := noteDuration(total, len(freqs))
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, beep.Take(sr.N(per), NewPluckGenerator(sr, f, per)))
	}
	return beep.Seq(notes...)
}

// PluckGenerator is a sine with exponential decay
type PluckGenerator struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

// NewPluckGenerator creates a note decaying over d
func NewPluckGenerator(sr beep.SampleRate, freq float64, d time.Duration) *PluckGenerator {
	return &PluckGenerator{sr: sr, freq: freq, length: max(sr.N(d), 1)}
}

func (g *PluckGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		decay := math.Exp(-4 * float64(g.pos) / float64(g.length))
		sample := cueVolume * decay * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PluckGenerator) Err() error {
	return nil
}
