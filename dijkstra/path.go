package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/reindeer/grid"
)

// Step is one cell of a path and the heading faced on arriving there.
// The first step of a path carries the initial heading.
type Step struct {
	Pos     grid.Position
	Heading grid.Heading
}

// Path is an ordered walk from the start position to a target.
type Path []Step

// Path reconstructs one minimum-cost path from the start state to target.
//
// Behavior:
//  1. Reject targets outside the terrain (grid.ErrOutOfBounds) and targets
//     with infinite distance (ErrUnreachable).
//  2. Pick the cheapest state at target (BestState).
//  3. Follow Prev back to the start state, failing with ErrBrokenChain if the
//     chain ends early or loops.
//  4. Reverse, and fold in-place turns into the heading of the next step.
//
// Complexity: O(L) where L is the number of states on the path.
func (r *Result) Path(target grid.Position) (Path, error) {
	if target.Row < 0 || target.Row >= r.terrain.Rows() || target.Col < 0 || target.Col >= r.terrain.Cols() {
		return nil, fmt.Errorf("%w: %v", grid.ErrOutOfBounds, target)
	}
	if _, ok := r.Cost(target); !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, target)
	}
	s, ok := r.BestState(target)
	if !ok {
		return nil, fmt.Errorf("%w: no state recorded at reached position %v", ErrBrokenChain, target)
	}

	// Walk backwards; a chain longer than the number of states must loop.
	chain := []State{s}
	for s != r.Start {
		p, ok := r.Prev[s]
		if !ok || len(chain) > len(r.StateDist) {
			return nil, fmt.Errorf("%w: stuck at %v facing %v", ErrBrokenChain, s.Pos, s.Heading)
		}
		s = p
		chain = append(chain, s)
	}

	path := make(Path, 0, len(chain))
	path = append(path, Step{Pos: r.Start.Pos, Heading: r.Start.Heading})
	for i := len(chain) - 2; i >= 0; i-- {
		cur := chain[i]
		if cur.Pos == path[len(path)-1].Pos {
			continue // in-place turn
		}
		path = append(path, Step{Pos: cur.Pos, Heading: cur.Heading})
	}

	return path, nil
}

// Positions returns the cells of p in order.
func (p Path) Positions() []grid.Position {
	out := make([]grid.Position, len(p))
	for i, s := range p {
		out[i] = s.Pos
	}
	return out
}

// Moves returns the number of forward steps on p.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Turns returns the number of 90° turns on p, counting a reversal as two.
func (p Path) Turns() int {
	n := 0
	for i := 1; i < len(p); i++ {
		n += grid.Turns(p[i-1].Heading, p[i].Heading)
	}
	return n
}

// Cost prices p with the given step and turn costs.
func (p Path) Cost(step, turn int64) int64 {
	return int64(p.Moves())*step + int64(p.Turns())*turn
}

// Validate checks that every cell of p is walkable in t and that each step
// moves exactly one cell in the heading it records.
func (p Path) Validate(t grid.Terrain) error {
	for i, s := range p {
		if !t.Open(s.Pos) {
			return fmt.Errorf("%w: step %d at %v is not walkable", ErrInvalidPath, i, s.Pos)
		}
		if !s.Heading.Valid() {
			return fmt.Errorf("%w: step %d has heading %v", ErrInvalidPath, i, s.Heading)
		}
		if i == 0 {
			continue
		}
		if want := p[i-1].Pos.Add(s.Heading.Delta()); want != s.Pos {
			return fmt.Errorf("%w: step %d from %v facing %v lands on %v, not %v",
				ErrInvalidPath, i, p[i-1].Pos, s.Heading, want, s.Pos)
		}
	}
	return nil
}

// String renders p as "(r,c)> (r,c)v …" using arrow glyphs for headings.
func (p Path) String() string {
	b := make([]byte, 0, len(p)*8)
	for i, s := range p {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, s.Pos.String()...)
		b = append(b, s.Heading.Arrow())
	}
	return string(b)
}
