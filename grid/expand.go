package grid

import (
	"container/list"
)

// Breach finds a path from a to b that crosses the fewest walls, treating
// every in-bounds wall cell as convertible at cost 1 and walkable cells as
// free. It returns the path (a and b included) and the number of walls on it.
// A zero count means b is already reachable from a.
//
// Behavior:
//  1. Validate that a and b lie inside the terrain.
//  2. 0–1 BFS from a:
//     • Moving into a walkable cell → cost 0
//     • Moving into a wall cell     → cost 1
//  3. Stop when b is popped.
//  4. Reconstruct path via predecessor indices.
//
// Complexity: O(W·H) time, O(W·H) memory.
func Breach(t Terrain, a, b Position) (path []Position, walls int, err error) {
	rows, cols := t.Rows(), t.Cols()
	inBounds := func(p Position) bool {
		return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
	}
	if !inBounds(a) || !inBounds(b) {
		return nil, 0, ErrOutOfBounds
	}

	n := rows * cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	index := func(p Position) int { return p.Row*cols + p.Col }
	at := func(i int) Position { return Position{Row: i / cols, Col: i % cols} }

	src, dst := index(a), index(b)
	dist[src] = 0
	if !t.Open(a) {
		dist[src] = 1
	}

	// 0–1 BFS: deque processes cost 0 at front, cost 1 at back
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, n)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		up := at(u)
		for _, h := range Headings {
			vp := up.Add(h.Delta())
			if !inBounds(vp) {
				continue
			}
			v := index(vp)
			step := 0
			if !t.Open(vp) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for i := dst; i >= 0; i = prev[i] {
		path = append(path, at(i))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[dst], nil
}
