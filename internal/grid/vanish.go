package grid

import "time"

// Vanishing tiles blink out of existence on a fixed wall-clock cycle.
// While gone they are impassable and excluded from pathfinding.

// DefaultVanishCycle is the full cycle length: visible → warn → gone →
// appear. Callers pass their configured cycle; zero falls back to this.
const DefaultVanishCycle = 4000 * time.Millisecond

// VanishPhase is the current stage of a vanishing tile's cycle.
type VanishPhase int

const (
	VanishVisible VanishPhase = iota
	VanishWarn
	VanishGone
	VanishAppear
)

// VanishingTiles lists the meadow cells that cycle in and out.
var VanishingTiles = []Position{
	{X: 4, Z: 1},
	{X: 0, Z: 3},
	{X: 8, Z: 3},
	{X: 2, Z: 4},
	{X: 6, Z: 4},
	{X: 0, Z: 5},
	{X: 8, Z: 5},
}

// IsVanishingTile reports whether the cell is one of the cycling tiles.
func IsVanishingTile(p Position) bool {
	for _, v := range VanishingTiles {
		if v == p {
			return true
		}
	}
	return false
}

// PhaseAt returns the cycle phase for a vanishing tile at the given time.
// Tiles are staggered by their position so the whole set never vanishes at
// once. The split is 50% visible, 12.5% warn, 25% gone, 12.5% appear.
func PhaseAt(p Position, now time.Time, cycle time.Duration) VanishPhase {
	if cycle <= 0 {
		cycle = DefaultVanishCycle
	}
	offset := time.Duration(p.X*7+p.Z*13) * 250 * time.Millisecond
	t := (now.UnixMilli() + offset.Milliseconds()) % cycle.Milliseconds()
	frac := float64(t) / float64(cycle.Milliseconds())

	switch {
	case frac < 0.5:
		return VanishVisible
	case frac < 0.625:
		return VanishWarn
	case frac < 0.875:
		return VanishGone
	default:
		return VanishAppear
	}
}

// BlockedAt returns the set of vanishing tiles that are impassable now.
// The result is suitable as the blocked argument to FindPath.
func BlockedAt(now time.Time, cycle time.Duration) map[Position]bool {
	blocked := make(map[Position]bool)
	for _, p := range VanishingTiles {
		if PhaseAt(p, now, cycle) == VanishGone {
			blocked[p] = true
		}
	}
	return blocked
}
