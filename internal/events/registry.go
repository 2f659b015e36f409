// Package events implements the weighted-random selection of letter-crash
// collision outcomes, including the history-aware smart variant that decays
// repeats and boosts novelty.
package events

import "time"

// Type is the closed set of collision outcomes. The core only ever produces
// and consumes the tag; the rendering boundary dispatches on it exhaustively.
type Type string

const (
	Explosion Type = "Explosion"
	Animal    Type = "Animal"
	Stars     Type = "Stars"
	Enemy     Type = "Enemy"
	Portal    Type = "Portal"
	Music     Type = "Music"
)

// Config describes one outcome: its draw weight, how long its visual effect
// runs, and which sound cue goes with it.
type Config struct {
	Type     Type
	Weight   float64
	Duration time.Duration
	Sound    string
}

// Registry holds the base probability weights. Weights sum to 100.
var Registry = []Config{
	{Type: Explosion, Weight: 30, Duration: 1500 * time.Millisecond, Sound: "boom-cartoon"},
	{Type: Animal, Weight: 20, Duration: 3000 * time.Millisecond, Sound: "per-animal"},
	{Type: Stars, Weight: 15, Duration: 2000 * time.Millisecond, Sound: "chime-cascade"},
	{Type: Enemy, Weight: 15, Duration: 3000 * time.Millisecond, Sound: "boing-silly"},
	{Type: Portal, Weight: 10, Duration: 2000 * time.Millisecond, Sound: "whoosh-magic"},
	{Type: Music, Weight: 10, Duration: 2500 * time.Millisecond, Sound: "musical-note"},
}

// ConfigFor returns the registry entry for a type.
// The second result is false for unknown types.
func ConfigFor(t Type) (Config, bool) {
	for _, c := range Registry {
		if c.Type == t {
			return c, true
		}
	}
	return Config{}, false
}
