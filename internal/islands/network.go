// Package islands holds the static world data for the letter-crash game:
// the island network with its word-gated bridges, the per-dimension visual
// themes, and the letter-to-animal registry.
package islands

import "github.com/vovakirdan/letter-isles/internal/core"

// Dimension names a visual/audio theme. Each island lives in exactly one.
type Dimension string

const (
	Home    Dimension = "Home"
	Candy   Dimension = "Candy"
	Space   Dimension = "Space"
	Ocean   Dimension = "Ocean"
	Volcano Dimension = "Volcano"
	Cloud   Dimension = "Cloud"
)

// Dimensions lists all dimensions in declaration order.
var Dimensions = []Dimension{Home, Candy, Space, Ocean, Volcano, Cloud}

// Spacing is the center-to-center distance between adjacent islands.
const Spacing = 130.0

// Radius is the playable radius of every island.
const Radius = 50.0

// Node is one island of the network.
type Node struct {
	ID          string
	Label       string
	Position    core.Vec3
	Dimension   Dimension
	UnlockWords []string
}

// Bridge connects two islands. Typing one of the target island's unlock
// words opens it in both directions.
type Bridge struct {
	From string
	To   string
}

// Nodes is the island network. Home sits at the origin with the themed
// islands one spacing away on each axis and space beyond volcano.
var Nodes = []Node{
	{ID: "home", Label: "Home Island", Position: core.Vec3{}, Dimension: Home},
	{ID: "candy", Label: "Candy Island", Position: core.Vec3{X: Spacing}, Dimension: Candy, UnlockWords: []string{"CAKE", "SWEET", "CANDY"}},
	{ID: "ocean", Label: "Ocean Island", Position: core.Vec3{X: -Spacing}, Dimension: Ocean, UnlockWords: []string{"FISH", "WAVE", "OCEAN"}},
	{ID: "cloud", Label: "Cloud Island", Position: core.Vec3{Z: -Spacing}, Dimension: Cloud, UnlockWords: []string{"SNOW", "COLD", "CLOUD"}},
	{ID: "volcano", Label: "Volcano Island", Position: core.Vec3{Z: Spacing}, Dimension: Volcano, UnlockWords: []string{"FIRE", "HOT", "LAVA"}},
	{ID: "space", Label: "Space Island", Position: core.Vec3{Z: 2 * Spacing}, Dimension: Space, UnlockWords: []string{"STAR", "MOON", "SPACE"}},
}

// Bridges is the fixed bridge layout.
var Bridges = []Bridge{
	{From: "home", To: "candy"},
	{From: "home", To: "ocean"},
	{From: "home", To: "cloud"},
	{From: "home", To: "volcano"},
	{From: "volcano", To: "space"},
}

var nodesByID = func() map[string]Node {
	m := make(map[string]Node, len(Nodes))
	for _, n := range Nodes {
		m[n.ID] = n
	}
	return m
}()

// ByID looks up an island by id.
func ByID(id string) (Node, bool) {
	n, ok := nodesByID[id]
	return n, ok
}

// BridgesFor returns the bridges touching an island.
func BridgesFor(id string) []Bridge {
	var out []Bridge
	for _, b := range Bridges {
		if b.From == id || b.To == id {
			out = append(out, b)
		}
	}
	return out
}

// BridgeKey is the canonical directional key stored in the unlocked set.
func BridgeKey(from, to string) string {
	return from + "->" + to
}
