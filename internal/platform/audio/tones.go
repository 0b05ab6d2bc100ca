package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// ToneGenerator is a square-ish tone that sweeps linearly from one
// frequency to another and fades out over its length.
type ToneGenerator struct {
	sr       beep.SampleRate
	from, to float64
	volume   float64
	pos      int
	total    int
}

// NewToneGenerator creates a tone of duration d sweeping from -> to Hz.
func NewToneGenerator(sr beep.SampleRate, from, to float64, d time.Duration, volume float64) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		volume: volume,
		total:  max(sr.N(d), 1),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress
		t := float64(g.pos) / float64(g.sr)

		// Two odd harmonics give a chiptune edge without aliasing much.
		wave := math.Sin(2*math.Pi*freq*t) + math.Sin(6*math.Pi*freq*t)/3
		sample := g.volume * (1 - progress) * wave * 0.75

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// Note frequencies for the line-clear arpeggio.
var arpeggio = []float64{523.25, 659.25, 783.99, 1046.5, 1318.5}

func tone(from, to float64, d time.Duration, volume float64) beep.Streamer {
	return NewToneGenerator(sampleRate, from, to, d, volume)
}

// cueSound returns a fresh finite streamer for c, or nil for unknown cues.
func cueSound(c core.Cue) beep.Streamer {
	switch c {
	case "move":
		return tone(220, 220, 25*time.Millisecond, 0.10)
	case "rotate":
		return tone(440, 520, 40*time.Millisecond, 0.12)
	case "lock":
		return tone(140, 100, 60*time.Millisecond, 0.18)
	case "harddrop":
		return tone(320, 70, 90*time.Millisecond, 0.22)
	case "go":
		return beep.Seq(
			tone(392, 392, 80*time.Millisecond, 0.15),
			tone(784, 784, 120*time.Millisecond, 0.15),
		)
	case "erase1", "erase2", "erase3", "erase4":
		n := int(c[len(c)-1] - '0')
		notes := make([]beep.Streamer, 0, n+1)
		for _, f := range arpeggio[:n+1] {
			notes = append(notes, tone(f, f, 70*time.Millisecond, 0.15))
		}
		return beep.Seq(notes...)
	}
	return nil
}
