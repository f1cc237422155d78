package systems

import (
	"encoding/binary"
	"math"
	"math/rand"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Global audio context - ebiten allows exactly one per process.
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func audioContext() *audio.Context {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(sampleRate)
	})
	return globalAudioContext
}

type cueSpec struct {
	freq     float64 // base frequency, Hz
	duration float64 // seconds
	noise    bool    // noise burst instead of a tone
	slide    float64 // frequency multiplier at the end of the cue
}

// The game ships no audio assets; every cue is synthesized. Each play
// gets a small random pitch shift so repeats don't sound mechanical.
var cues = map[string]cueSpec{
	"throw":   {freq: 520, duration: 0.10, slide: 1.6},
	"hit":     {freq: 880, duration: 0.08, slide: 1.0},
	"hurt":    {freq: 220, duration: 0.18, slide: 0.7},
	"death":   {freq: 180, duration: 0.45, slide: 0.4},
	"jump":    {freq: 340, duration: 0.09, slide: 1.4},
	"pickup":  {freq: 660, duration: 0.12, slide: 1.3},
	"consume": {freq: 440, duration: 0.20, slide: 1.1},
	"respawn": {freq: 520, duration: 0.30, slide: 1.5},
	"splat":   {freq: 0, duration: 0.10, noise: true},
}

// AudioPlayer synthesizes and plays short PCM cues. Implements CuePlayer.
type AudioPlayer struct {
	ctx    *audio.Context
	volume float64
}

func NewAudioPlayer() *AudioPlayer {
	return &AudioPlayer{
		ctx:    audioContext(),
		volume: 1.0,
	}
}

// SetVolume sets the cue volume in [0, 1].
func (a *AudioPlayer) SetVolume(v float64) {
	a.volume = math.Max(0, math.Min(1, v))
}

func (a *AudioPlayer) Volume() float64 {
	return a.volume
}

// Play synthesizes and plays the named cue, fire-and-forget. Unknown
// names are ignored.
func (a *AudioPlayer) Play(name string) {
	if a == nil || a.volume <= 0 {
		return
	}
	spec, ok := cues[name]
	if !ok {
		return
	}

	pitch := 0.9 + rand.Float64()*0.2
	pcm := synthesize(spec, pitch)

	player := a.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(a.volume)
	player.Play()
}

// synthesize renders a cue to 16-bit stereo PCM with a linear fade-out.
func synthesize(spec cueSpec, pitch float64) []byte {
	n := int(spec.duration * sampleRate)
	out := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		envelope := 1.0 - t

		var sample float64
		if spec.noise {
			sample = rand.Float64()*2 - 1
		} else {
			slide := spec.slide
			if slide == 0 {
				slide = 1
			}
			freq := spec.freq * pitch * (1 + (slide-1)*t)
			phase += 2 * math.Pi * freq / sampleRate
			sample = math.Sin(phase)
		}

		v := int16(sample * envelope * 0.25 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
