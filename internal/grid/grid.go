// Package grid holds the static walkable tile grid for the meadow game and
// the pathfinding used for click-to-move navigation.
package grid

// TileSize is the world-space edge length of one tile.
const TileSize = 1.1

// Position is a cell reference on the tile grid. Plain value type, no ownership.
type Position struct {
	X, Z int
}

// TileGrid is a fixed 2D grid of walkability flags (1 = walkable, 0 = not).
// Indexed [z][x]. Immutable after load.
type TileGrid [][]int

// Rows returns the number of rows (z extent).
func (g TileGrid) Rows() int {
	return len(g)
}

// Cols returns the number of columns (x extent).
func (g TileGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Walkable reports whether the cell at (x, z) is inside the grid and walkable.
func (g TileGrid) Walkable(x, z int) bool {
	if z < 0 || z >= g.Rows() || x < 0 || x >= g.Cols() {
		return false
	}
	return g[z][x] == 1
}

// MeadowLayout is the 9x9 meadow map (1 = tile, 0 = empty).
var MeadowLayout = TileGrid{
	{0, 0, 1, 1, 1, 1, 1, 0, 0}, // row 0, top terrace
	{0, 1, 1, 0, 1, 0, 1, 1, 0}, // row 1
	{1, 1, 0, 0, 1, 0, 0, 1, 1}, // row 2
	{1, 0, 0, 1, 1, 1, 0, 0, 1}, // row 3
	{1, 1, 1, 1, 1, 1, 1, 1, 1}, // row 4, central boulevard
	{1, 0, 0, 1, 1, 1, 0, 0, 1}, // row 5
	{1, 1, 0, 0, 1, 0, 0, 1, 1}, // row 6
	{0, 1, 1, 0, 1, 0, 1, 1, 0}, // row 7
	{0, 0, 1, 1, 1, 1, 1, 0, 0}, // row 8, bottom terrace
}

// PlayerStart is the spawn cell for the meadow game.
var PlayerStart = Position{X: 4, Z: 4}
