// Package audio plays short synthesized cues for game events. Everything
// here degrades to a no-op when no audio device is available.
package audio

import (
	"math"
	"time"

	"snake-arena/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Cue is one sound effect
type Cue int

const (
	CueEat Cue = iota
	CueAIEat
	CueDeath
	CueAIDeath
	CueRespawn
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueAIEat:
		return "ai-eat"
	case CueDeath:
		return "death"
	case CueAIDeath:
		return "ai-death"
	case CueRespawn:
		return "respawn"
	default:
		return "unknown"
	}
}

// CuesFor lists the cues a tick should trigger, most important first
func CuesFor(out game.TickOutcome) []Cue {
	var cues []Cue
	if out.PlayerDied {
		cues = append(cues, CueDeath)
	}
	if out.FoodEaten {
		if out.EatenBy == game.PlayerID {
			cues = append(cues, CueEat)
		} else {
			cues = append(cues, CueAIEat)
		}
	}
	if out.AIDied {
		cues = append(cues, CueAIDeath)
	}
	if out.Respawned {
		cues = append(cues, CueRespawn)
	}
	return cues
}

// tone is a sine note of fixed length with a linear fade out
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return NewFadeOut(beep.Take(sr.N(d), sine), sr.N(d), 0.25)
}

// BuildCue synthesizes the streamer for c. The result is finite.
func BuildCue(c Cue, sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueEat:
		// Rising two-note chime
		return beep.Seq(tone(sr, 660, 60*time.Millisecond), tone(sr, 990, 90*time.Millisecond))
	case CueAIEat:
		return tone(sr, 440, 50*time.Millisecond)
	case CueDeath:
		return beep.Seq(
			tone(sr, 392, 120*time.Millisecond),
			tone(sr, 294, 120*time.Millisecond),
			NewSweep(sr, 220, 80, 300*time.Millisecond),
		)
	case CueAIDeath:
		return NewSweep(sr, 330, 160, 120*time.Millisecond)
	case CueRespawn:
		return beep.Seq(
			tone(sr, 523, 50*time.Millisecond),
			tone(sr, 659, 50*time.Millisecond),
			tone(sr, 784, 80*time.Millisecond),
		)
	default:
		return beep.Silence(0)
	}
}

// FadeOut scales a finite streamer from gain down to zero over total samples
type FadeOut struct {
	s     beep.Streamer
	total int
	gain  float64
	pos   int
}

func NewFadeOut(s beep.Streamer, total int, gain float64) *FadeOut {
	return &FadeOut{s: s, total: total, gain: gain}
}

func (f *FadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		env := f.gain
		if f.total > 0 {
			env *= 1 - float64(f.pos)/float64(f.total)
		}
		if env < 0 {
			env = 0
		}
		samples[i][0] *= env
		samples[i][1] *= env
		f.pos++
	}
	return n, ok
}

func (f *FadeOut) Err() error {
	return f.s.Err()
}

// Sweep glides linearly between two frequencies and then ends
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

func NewSweep(sr beep.SampleRate, from, to float64, d time.Duration) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, samples: sr.N(d)}
}

func (g *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.2 * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Sweep) Err() error {
	return nil
}
