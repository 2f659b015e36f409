package meadow

import "github.com/vovakirdan/letter-isles/internal/grid"

// CollectibleType names one of the four pickup kinds.
type CollectibleType string

const (
	Tree    CollectibleType = "tree"
	Orb     CollectibleType = "orb"
	Gem     CollectibleType = "gem"
	Crystal CollectibleType = "crystal"
)

// Spawn is a static collectible placement.
type Spawn struct {
	Pos  grid.Position
	Type CollectibleType
}

// Meta is the derived reward of a collectible type.
type Meta struct {
	Label  string
	Points int
	Color  string
	Rune   rune
}

// Spawns is the fixed collectible layout for the meadow.
var Spawns = []Spawn{
	{Pos: grid.Position{X: 4, Z: 0}, Type: Gem},
	{Pos: grid.Position{X: 1, Z: 1}, Type: Orb},
	{Pos: grid.Position{X: 7, Z: 1}, Type: Crystal},
	{Pos: grid.Position{X: 0, Z: 2}, Type: Tree},
	{Pos: grid.Position{X: 8, Z: 2}, Type: Gem},
	{Pos: grid.Position{X: 3, Z: 3}, Type: Crystal},
	{Pos: grid.Position{X: 5, Z: 3}, Type: Orb},
	{Pos: grid.Position{X: 0, Z: 4}, Type: Tree},
	{Pos: grid.Position{X: 8, Z: 4}, Type: Gem},
	{Pos: grid.Position{X: 3, Z: 5}, Type: Orb},
	{Pos: grid.Position{X: 5, Z: 5}, Type: Crystal},
	{Pos: grid.Position{X: 1, Z: 7}, Type: Tree},
	{Pos: grid.Position{X: 4, Z: 8}, Type: Gem},
}

// Metas maps each collectible type to its reward.
var Metas = map[CollectibleType]Meta{
	Tree:    {Label: "Tree", Points: 10, Color: "#2ecc71", Rune: 'T'},
	Orb:     {Label: "Orb", Points: 15, Color: "#0984e3", Rune: 'o'},
	Gem:     {Label: "Gem", Points: 25, Color: "#f1c40f", Rune: '*'},
	Crystal: {Label: "Crystal", Points: 50, Color: "#e84393", Rune: '^'},
}
