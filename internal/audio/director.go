// Package audio synthesizes all game sound at runtime: short effect cues
// and a looping ambient track per dimension. Everything is generated from
// oscillators, so there are no asset files to ship.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/letter-isles/internal/islands"
)

const sampleRate = beep.SampleRate(48000)

// Bus names a volume group.
type Bus string

const (
	BusMaster Bus = "master"
	BusSfx    Bus = "sfx"
	BusMusic  Bus = "music"
)

// maxVoicesPerCue caps how many instances of one effect may ring at
// once. The oldest voice is stolen when a cue fires past the cap.
const maxVoicesPerCue = 3

// voicePool is a round-robin ring of active voices for one cue name.
type voicePool struct {
	ring [maxVoicesPerCue]*beep.Ctrl
	next int
}

// Director owns the speaker and mixes effect and music streams.
type Director struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVolume *effects.Volume
	currentDim  islands.Dimension
	volumes     map[Bus]float64
	voices      map[string]*voicePool
	initialized bool
}

// NewDirector creates an uninitialized director. Call Initialize before
// playing; every method is a no-op until then so headless runs stay silent.
func NewDirector() *Director {
	return &Director{
		mixer: &beep.Mixer{},
		volumes: map[Bus]float64{
			BusMaster: 1,
			BusSfx:    0.8,
			BusMusic:  0.5,
		},
		voices: make(map[string]*voicePool),
	}
}

// Initialize opens the speaker and starts the mixer.
func (d *Director) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(d.mixer)
	d.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself stays open; beep does
// not expose a close.
func (d *Director) Cleanup() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}
	if d.music != nil {
		d.music.Paused = true
	}
	speaker.Lock()
	d.mixer.Clear()
	speaker.Unlock()
	d.voices = make(map[string]*voicePool)
	d.initialized = false
}

// SetVolume adjusts a bus in [0, 1]. Music volume applies live.
func (d *Director) SetVolume(bus Bus, v float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	d.volumes[bus] = v

	if d.musicVolume != nil && (bus == BusMusic || bus == BusMaster) {
		speaker.Lock()
		d.musicVolume.Silent = d.volumes[BusMaster]*d.volumes[BusMusic] == 0
		d.musicVolume.Volume = volumeGain(d.volumes[BusMaster] * d.volumes[BusMusic])
		speaker.Unlock()
	}
}

// Play fires a named effect cue. Unknown names fall back to a soft click.
func (d *Director) Play(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}

	gain := d.volumes[BusMaster] * d.volumes[BusSfx]
	if gain == 0 {
		return
	}

	d.addVoice(name, &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: cueStreamer(name),
		Base:     2,
		Volume:   volumeGain(gain),
	}})
}

// addVoice places a voice in the cue's round-robin ring, stealing the
// oldest slot when all are occupied. A stolen Ctrl gets a nil streamer,
// which the mixer drains and drops on the next fill.
func (d *Director) addVoice(name string, ctrl *beep.Ctrl) {
	pool := d.voices[name]
	if pool == nil {
		pool = &voicePool{}
		d.voices[name] = pool
	}

	speaker.Lock()
	if old := pool.ring[pool.next]; old != nil {
		old.Streamer = nil
	}
	pool.ring[pool.next] = ctrl
	pool.next = (pool.next + 1) % maxVoicesPerCue
	d.mixer.Add(ctrl)
	speaker.Unlock()
}

// CrossfadeMusic switches the ambient loop to another dimension's track.
// The old loop is paused immediately; a proper sample-level crossfade is
// not worth the complexity for synthesized pads.
func (d *Director) CrossfadeMusic(dim islands.Dimension) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || dim == d.currentDim {
		return
	}

	speaker.Lock()
	if d.music != nil {
		d.music.Paused = true
	}

	vol := &effects.Volume{
		Streamer: beep.Loop(-1, dimensionPad(dim)),
		Base:     2,
		Volume:   volumeGain(d.volumes[BusMaster] * d.volumes[BusMusic]),
	}
	ctrl := &beep.Ctrl{Streamer: vol}
	d.mixer.Add(ctrl)
	speaker.Unlock()

	d.music = ctrl
	d.musicVolume = vol
	d.currentDim = dim
}

// cueStreamer maps cue names to tone recipes.
func cueStreamer(name string) beep.Streamer {
	switch name {
	case "boom-cartoon":
		return NewEnvelope(NewSweep(220, 40, 400*time.Millisecond, sampleRate),
			400*time.Millisecond, time.Millisecond, 200*time.Millisecond, sampleRate)
	case "chime-cascade":
		return arpeggio([]float64{880, 1108, 1318, 1760}, 90*time.Millisecond, WaveSine, sampleRate)
	case "boing-silly":
		return NewSweep(120, 600, 250*time.Millisecond, sampleRate)
	case "whoosh-magic", "whoosh":
		return NewEnvelope(NewSweep(300, 1400, 350*time.Millisecond, sampleRate),
			350*time.Millisecond, 30*time.Millisecond, 150*time.Millisecond, sampleRate)
	case "musical-note":
		return note(659, 300*time.Millisecond, WaveSine, sampleRate)
	case "animal", "per-animal":
		return arpeggio([]float64{523, 659}, 120*time.Millisecond, WaveSquare, sampleRate)
	case "pop":
		return note(880, 80*time.Millisecond, WaveSquare, sampleRate)
	case "collect":
		return arpeggio([]float64{784, 988}, 70*time.Millisecond, WaveSine, sampleRate)
	case "fanfare":
		return arpeggio([]float64{523, 659, 784, 1046}, 140*time.Millisecond, WaveSquare, sampleRate)
	default:
		return note(440, 40*time.Millisecond, WaveSine, sampleRate)
	}
}

// dimensionPad is the looping ambient chord of a dimension.
func dimensionPad(dim islands.Dimension) beep.Streamer {
	roots := map[islands.Dimension]float64{
		islands.Home:    196, // G3
		islands.Candy:   220, // A3
		islands.Ocean:   174, // F3
		islands.Cloud:   246, // B3
		islands.Volcano: 164, // E3
		islands.Space:   146, // D3
	}
	root, ok := roots[dim]
	if !ok {
		root = 196
	}
	return arpeggio([]float64{root, root * 1.25, root * 1.5, root * 2}, 600*time.Millisecond, WaveSine, sampleRate)
}

// volumeGain converts linear [0,1] to beep's base-2 exponent scale.
func volumeGain(v float64) float64 {
	if v <= 0 {
		return -10
	}
	return math.Log2(v)
}
