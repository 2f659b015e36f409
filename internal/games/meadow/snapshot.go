package meadow

// Snapshot captures the meadow state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Combo       int
	Collected   int
	PlayerX     int
	PlayerZ     int
	CursorX     int
	CursorZ     int
	PathLen     int
	Phase       Phase
	IsDay       bool
	CameraAngle int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Score:       g.store.Score,
		Combo:       g.store.Combo,
		Collected:   len(g.store.Collected),
		PlayerX:     g.store.Player.Pos.X,
		PlayerZ:     g.store.Player.Pos.Z,
		CursorX:     g.cursor.X,
		CursorZ:     g.cursor.Z,
		PathLen:     len(g.store.Player.MovePath),
		Phase:       g.store.Phase,
		IsDay:       g.store.IsDay,
		CameraAngle: g.store.CameraAngle,
	}
}
