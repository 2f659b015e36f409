// Package fx is a one-way cue bus from game logic to the presentation
// layer. Games emit named cues (sound effects, haptic patterns, particle
// bursts) without knowing whether anything is listening; the platform
// drains the bus each tick and maps cues to audio or screen effects.
package fx

// Kind classifies a cue.
type Kind string

const (
	Sound    Kind = "sound"
	Haptic   Kind = "haptic"
	Particle Kind = "particle"
)

// Cue is one emitted effect. Name identifies the asset or pattern
// ("boom-cartoon", "word-complete"); Detail carries an optional variant
// such as an animal name or dimension.
type Cue struct {
	Kind   Kind
	Name   string
	Detail string
}

// Haptic patterns for Cue.Detail, in the comma-separated on/off
// millisecond convention of vibration APIs.
const (
	HapticTap       = "50"
	HapticCrash     = "100,50,200"
	HapticCelebrate = "50,30,50,30,200"
)

// Bus is a bounded cue queue. Emit never blocks: when the consumer falls
// behind, new cues are dropped rather than stalling the game step.
type Bus struct {
	ch chan Cue
}

// NewBus creates a bus with the given capacity.
func NewBus(capacity int) *Bus {
	return &Bus{ch: make(chan Cue, capacity)}
}

// Emit queues a cue, dropping it if the bus is full.
func (b *Bus) Emit(c Cue) {
	select {
	case b.ch <- c:
	default:
	}
}

// Sound emits a sound cue.
func (b *Bus) Sound(name string) {
	b.Emit(Cue{Kind: Sound, Name: name})
}

// Drain returns all currently queued cues without blocking.
func (b *Bus) Drain() []Cue {
	var out []Cue
	for {
		select {
		case c := <-b.ch:
			out = append(out, c)
		default:
			return out
		}
	}
}
