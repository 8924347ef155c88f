// Package dijkstra implements a heading-aware Dijkstra search over a maze.
//
// Overview:
//
//   - The search runs over states (position, heading) rather than positions.
//     From a state a walker may step forward into the adjacent walkable cell
//     (StepCost, default 1) or turn 90° left or right in place (TurnCost,
//     default 1000). Walls and cells outside the terrain have no incoming edges.
//   - A min-heap always expands the cheapest unfinished state; a state is final
//     the first time it is popped. The search runs to exhaustion so that every
//     reachable state carries its true minimum cost, which downstream tile
//     enumeration depends on.
//   - The per-position distance map is the minimum over the four headings.
//
// Key features:
//
//   - Functional options: WithStart, WithHeading, WithStepCost, WithTurnCost,
//     WithMaxCost, WithTrace.
//   - Path reconstruction from the predecessor map (Result.Path), with in-place
//     turns folded into the heading of the next step.
//   - Any grid.Terrain works, including copy-on-write overlays produced by
//     grid.Grid.WithWalls.
//
// Performance and complexity (S = 4·W·H states, each with at most 3 edges):
//
//   - Time:  O(S log S)
//   - Space: O(S) for distance, predecessor and visited maps, plus heap entries
//     under the “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilTerrain:    a nil terrain was passed to Search.
//   - ErrStartBlocked:  the start position is a wall or out of bounds.
//   - ErrBadHeading:    the initial heading is not a compass heading.
//   - ErrBadStepCost, ErrBadTurnCost, ErrBadMaxCost: negative option values
//     (option constructors panic with these; Search re-checks).
//   - ErrUnreachable:   Path was asked for a position with infinite distance.
//     This is an expected outcome, not a failure of the search.
//   - ErrBrokenChain:   the predecessor map does not lead back to the start
//     state. This indicates a bug and should never be seen.
//
// Example:
//
//	g, _ := grid.Parse(text)
//	res, err := dijkstra.Search(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost, ok := res.Cost(g.End())
//	path, err := res.Path(g.End())
//
// Thread safety:
//
//   - Search keeps all mutable state in a per-call runner; concurrent calls on
//     the same immutable grid are safe.
package dijkstra
