package events

import "math/rand"

const (
	historySize = 20
	decayFactor = 0.5 // recent events lose half their weight per occurrence
	unseenBoost = 1.5 // unseen events gain 50% once there is enough history
	minHistory  = 5   // boost only applies once history is longer than this
	weightFloor = 0.1 // keep every type selectable
)

// Picker draws collision outcomes. Random draws use only the base weights;
// Smart draws also consult a bounded history of recent outcomes so play does
// not repeat itself. Not safe for concurrent use; the stores are
// single-threaded by design.
type Picker struct {
	rng    *rand.Rand
	recent []Type
}

// NewPicker creates a picker with the given deterministic source.
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// Record pushes a drawn outcome into the bounded history,
// dropping the oldest entry past the cap. Call it after every draw.
func (p *Picker) Record(t Type) {
	p.recent = append(p.recent, t)
	if len(p.recent) > historySize {
		p.recent = p.recent[1:]
	}
}

// countRecent returns how many times t appears in the recent history.
func (p *Picker) countRecent(t Type) int {
	n := 0
	for _, e := range p.recent {
		if e == t {
			n++
		}
	}
	return n
}

// Random draws an outcome using the base weights only.
func (p *Picker) Random() Type {
	total := 0.0
	for _, c := range Registry {
		total += c.Weight
	}

	r := p.rng.Float64() * total
	for _, c := range Registry {
		if r < c.Weight {
			return c.Type
		}
		r -= c.Weight
	}

	// Floating-point drift fallback
	return Explosion
}

// Smart draws an outcome with history-aware weight adjustment:
// each recent occurrence halves a type's weight, types unseen in a
// sufficiently long history get a novelty boost, learning mode triples
// Animal, and reducedPortals cuts Portal to 30%. Every adjusted weight is
// floored so no type becomes unreachable.
func (p *Picker) Smart(learningMode, reducedPortals bool) Type {
	type weighted struct {
		t Type
		w float64
	}

	weights := make([]weighted, 0, len(Registry))
	total := 0.0
	for _, c := range Registry {
		w := c.Weight

		if count := p.countRecent(c.Type); count > 0 {
			for i := 0; i < count; i++ {
				w *= decayFactor
			}
		} else if len(p.recent) > minHistory {
			w *= unseenBoost
		}

		if learningMode && c.Type == Animal {
			w *= 3
		}
		if reducedPortals && c.Type == Portal {
			w *= 0.3
		}

		if w < weightFloor {
			w = weightFloor
		}
		weights = append(weights, weighted{t: c.Type, w: w})
		total += w
	}

	r := p.rng.Float64() * total
	for _, entry := range weights {
		if r < entry.w {
			return entry.t
		}
		r -= entry.w
	}

	return Explosion
}
