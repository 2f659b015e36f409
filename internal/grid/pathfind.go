package grid

// Neighbor exploration order for BFS. Fixed so that tie-breaking between
// equal-length paths is deterministic: +z, -z, +x, -x.
var directions = [4]Position{
	{X: 0, Z: 1},
	{X: 0, Z: -1},
	{X: 1, Z: 0},
	{X: -1, Z: 0},
}

// FindPath runs BFS over the 4-connected tile graph and returns the shortest
// path from start (exclusive) to end (inclusive), one cell per step.
//
// Returns nil when end is out of bounds, not walkable, currently blocked,
// equal to start, or unreachable. Side-effect free; safe to call every click.
//
// blocked holds cells that are temporarily impassable (vanished tiles); it
// may be nil.
func FindPath(start, end Position, layout TileGrid, blocked map[Position]bool) []Position {
	if !layout.Walkable(end.X, end.Z) {
		return nil
	}
	if blocked[end] {
		return nil
	}
	if start == end {
		return nil
	}

	type node struct {
		pos  Position
		path []Position
	}

	visited := map[Position]bool{start: true}
	queue := []node{{pos: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.pos == end {
			return cur.path
		}

		for _, d := range directions {
			next := Position{X: cur.pos.X + d.X, Z: cur.pos.Z + d.Z}
			if visited[next] || blocked[next] || !layout.Walkable(next.X, next.Z) {
				continue
			}
			visited[next] = true

			path := make([]Position, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			queue = append(queue, node{pos: next, path: append(path, next)})
		}
	}

	return nil
}
