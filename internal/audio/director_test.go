package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestVoicePoolBounded(t *testing.T) {
	d := NewDirector()

	ctrls := make([]*beep.Ctrl, 0, 10)
	for i := 0; i < 10; i++ {
		c := &beep.Ctrl{Streamer: note(440, 80*time.Millisecond, WaveSine, sampleRate)}
		ctrls = append(ctrls, c)
		d.addVoice("pop", c)
	}

	// Every voice past the ring capacity steals the oldest slot.
	for i, c := range ctrls[:len(ctrls)-maxVoicesPerCue] {
		if c.Streamer != nil {
			t.Errorf("voice %d still ringing past the cap", i)
		}
	}
	for i, c := range ctrls[len(ctrls)-maxVoicesPerCue:] {
		if c.Streamer == nil {
			t.Errorf("live voice %d was stolen", i)
		}
	}

	// Stolen voices drain on the next fill, leaving at most the live
	// ring in the mixer.
	buf := make([][2]float64, 64)
	d.mixer.Stream(buf)
	if n := d.mixer.Len(); n > maxVoicesPerCue {
		t.Errorf("mixer holds %d streamers, want at most %d", n, maxVoicesPerCue)
	}
}
