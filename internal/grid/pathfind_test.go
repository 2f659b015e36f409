package grid

import (
	"testing"
	"time"
)

func openGrid(size int) TileGrid {
	g := make(TileGrid, size)
	for z := range g {
		g[z] = make([]int, size)
		for x := range g[z] {
			g[z][x] = 1
		}
	}
	return g
}

func TestFindPathOpenGrid(t *testing.T) {
	g := openGrid(3)

	path := FindPath(Position{0, 0}, Position{X: 2, Z: 2}, g, nil)
	if path == nil {
		t.Fatal("expected a path on an open 3x3 grid")
	}
	if len(path) != 4 {
		t.Errorf("path length = %d, want 4 (Manhattan distance)", len(path))
	}
	if last := path[len(path)-1]; last != (Position{X: 2, Z: 2}) {
		t.Errorf("path ends at %+v, want {2 2}", last)
	}
	if path[0] == (Position{X: 0, Z: 0}) {
		t.Error("path must exclude the start cell")
	}
}

func TestFindPathRejectsInvalidTargets(t *testing.T) {
	g := openGrid(3)
	g[1][1] = 0
	start := Position{X: 0, Z: 0}

	if p := FindPath(start, Position{X: 5, Z: 0}, g, nil); p != nil {
		t.Error("out-of-bounds end should return nil")
	}
	if p := FindPath(start, Position{X: 1, Z: 1}, g, nil); p != nil {
		t.Error("unwalkable end should return nil")
	}
	if p := FindPath(start, start, g, nil); p != nil {
		t.Error("start == end should return nil")
	}

	blocked := map[Position]bool{{X: 2, Z: 2}: true}
	if p := FindPath(start, Position{X: 2, Z: 2}, g, blocked); p != nil {
		t.Error("blocked end should return nil")
	}
}

func TestFindPathAvoidsBlockedCells(t *testing.T) {
	// Corridor 1x5 with a blocked middle cell: no route.
	g := TileGrid{{1, 1, 1, 1, 1}}
	blocked := map[Position]bool{{X: 2, Z: 0}: true}

	if p := FindPath(Position{X: 0, Z: 0}, Position{X: 4, Z: 0}, g, blocked); p != nil {
		t.Error("path should be nil when the only corridor is blocked")
	}
	if p := FindPath(Position{X: 0, Z: 0}, Position{X: 4, Z: 0}, g, nil); len(p) != 4 {
		t.Errorf("unblocked corridor path length = %d, want 4", len(p))
	}
}

// bfsDistance computes reference shortest-path distances from start.
func bfsDistance(g TileGrid, start Position) map[Position]int {
	dist := map[Position]int{start: 0}
	queue := []Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range directions {
			next := Position{X: cur.X + d.X, Z: cur.Z + d.Z}
			if _, seen := dist[next]; seen || !g.Walkable(next.X, next.Z) {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

func TestFindPathShortestOnMeadow(t *testing.T) {
	start := PlayerStart
	dist := bfsDistance(MeadowLayout, start)

	for z := 0; z < MeadowLayout.Rows(); z++ {
		for x := 0; x < MeadowLayout.Cols(); x++ {
			end := Position{X: x, Z: z}
			path := FindPath(start, end, MeadowLayout, nil)

			want, reachable := dist[end]
			switch {
			case end == start || !MeadowLayout.Walkable(x, z) || !reachable:
				if path != nil {
					t.Errorf("FindPath to %+v should be nil", end)
				}
			default:
				if len(path) != want {
					t.Errorf("FindPath to %+v length = %d, want %d", end, len(path), want)
				}
			}
		}
	}
}

func TestFindPathStepsAreAdjacent(t *testing.T) {
	start := PlayerStart
	path := FindPath(start, Position{X: 4, Z: 0}, MeadowLayout, nil)
	if path == nil {
		t.Fatal("expected path to the top terrace")
	}

	prev := start
	for i, p := range path {
		if abs(p.X-prev.X)+abs(p.Z-prev.Z) != 1 {
			t.Errorf("step %d from %+v to %+v is not 4-connected", i, prev, p)
		}
		prev = p
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestVanishBlockedSetOnlyContainsVanishingTiles(t *testing.T) {
	now := time.Unix(1700000000, 0)
	for p := range BlockedAt(now, 0) {
		if !IsVanishingTile(p) {
			t.Errorf("blocked set contains non-vanishing tile %+v", p)
		}
	}
}

func TestVanishPhaseCycles(t *testing.T) {
	p := VanishingTiles[0]
	seen := map[VanishPhase]bool{}
	base := time.Unix(1700000000, 0)
	for ms := 0; ms < 4000; ms += 100 {
		seen[PhaseAt(p, base.Add(time.Duration(ms)*time.Millisecond), 0)] = true
	}
	for _, phase := range []VanishPhase{VanishVisible, VanishWarn, VanishGone, VanishAppear} {
		if !seen[phase] {
			t.Errorf("phase %d never observed over a full cycle", phase)
		}
	}
}

func TestVanishCycleConfigurable(t *testing.T) {
	p := Position{X: 0, Z: 0}
	now := time.UnixMilli(3000)
	if got := PhaseAt(p, now, 0); got != VanishGone {
		t.Fatalf("default cycle at 3000ms: got phase %d, want gone", got)
	}
	if got := PhaseAt(p, now, 8*time.Second); got != VanishVisible {
		t.Fatalf("8s cycle at 3000ms: got phase %d, want visible", got)
	}
}
