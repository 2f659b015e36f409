package crash

// Snapshot is a comparable digest of the simulation state, used by the
// determinism tests.
type Snapshot struct {
	Tick       uint64
	Score      int
	Stars      int
	Gems       int
	Word       string
	BlocksLeft int
	Hits       int
	Phase      GamePhase
	Dimension  string
	IslandID   string
	CarX       float64
	CarZ       float64
	Rotation   float64
	Speed      float64
	MiniGame   bool
	Targets    int
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Score:      g.store.Score,
		Stars:      g.store.Stars,
		Gems:       g.store.Gems,
		Word:       g.store.Word,
		BlocksLeft: len(g.store.LetterBlocks),
		Hits:       len(g.store.HitLetters),
		Phase:      g.store.Phase,
		Dimension:  string(g.store.Dimension),
		IslandID:   g.store.CurrentIslandID,
		CarX:       g.car.Position.X,
		CarZ:       g.car.Position.Z,
		Rotation:   g.car.Rotation,
		Speed:      g.speed,
		MiniGame:   g.store.ActiveMiniGame != nil,
		Targets:    len(g.store.MiniGameTargets),
	}
}
