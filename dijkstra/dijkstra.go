package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/reindeer/grid"
)

// Search computes the minimum cost of every state reachable from the start
// state of terrain t. It accepts functional options to customize the start,
// the costs and the exploration cap.
//
// Returns:
//
//   - res: distances per position and per state, predecessor links, and the
//     pop trace if WithTrace was given.
//   - err: error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. t must be non-nil (ErrNilTerrain).
//  2. StepCost, TurnCost and MaxCost must be non-negative.
//  3. Heading must be a compass heading (ErrBadHeading).
//  4. The start position must be walkable (ErrStartBlocked).
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·W·H
//   - Space: O(S)
func Search(t grid.Terrain, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if t == nil {
		return nil, ErrNilTerrain
	}
	if g, ok := t.(*grid.Grid); ok && g == nil {
		return nil, ErrNilTerrain
	}
	if cfg.StepCost < 0 {
		return nil, ErrBadStepCost
	}
	if cfg.TurnCost < 0 {
		return nil, ErrBadTurnCost
	}
	if cfg.MaxCost < 0 {
		return nil, ErrBadMaxCost
	}
	if !cfg.Heading.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrBadHeading, cfg.Heading)
	}
	if !cfg.HasStart {
		cfg.Start = t.Start()
	}
	if !t.Open(cfg.Start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, cfg.Start)
	}

	// 2) Prepare data structures sized for the full state space.
	states := 4 * t.Rows() * t.Cols()
	r := &runner{
		t:       t,
		options: cfg,
		dist:    make(map[State]int64, states),
		prev:    make(map[State]State, states),
		visited: make(map[State]bool, states),
		pq:      make(statePQ, 0, t.Rows()+t.Cols()),
	}

	// 3) Seed the start state and run the main loop.
	r.init()
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	t       grid.Terrain    // Read-only terrain.
	options Options         // Normalized configuration.
	dist    map[State]int64 // Best known cost per state.
	prev    map[State]State // Predecessor state on the best known route.
	visited map[State]bool  // Finalized states.
	pq      statePQ         // Lazy min-heap of candidate states.
	seq     int             // Discovery counter for stable tie-breaking.
	popped  []int64         // Finalized costs in pop order (Trace only).
}

// init pushes the start state with cost zero.
func (r *runner) init() {
	start := State{Pos: r.options.Start, Heading: r.options.Heading}
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// process repeatedly pops the cheapest unfinished state and relaxes its
// three outgoing transitions until the heap is empty or the cheapest entry
// exceeds MaxCost.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		s, d := item.state, item.dist

		// Skip stale heap entries.
		if r.visited[s] {
			continue
		}
		if d > r.options.MaxCost {
			break
		}
		r.visited[s] = true
		if r.options.Trace {
			r.popped = append(r.popped, d)
		}

		r.relax(s, d)
	}
}

// relax tries the forward step and both in-place turns out of s.
// Assumes d is the finalized cost of s.
func (r *runner) relax(s State, d int64) {
	fwd := s.Pos.Add(s.Heading.Delta())
	if r.t.Open(fwd) {
		r.improve(s, State{Pos: fwd, Heading: s.Heading}, d+r.options.StepCost)
	}
	r.improve(s, State{Pos: s.Pos, Heading: s.Heading.Left()}, d+r.options.TurnCost)
	r.improve(s, State{Pos: s.Pos, Heading: s.Heading.Right()}, d+r.options.TurnCost)
}

// improve records from→to if it is strictly cheaper than the best known cost
// of to. Using “<” keeps the first-discovered predecessor on ties.
func (r *runner) improve(from, to State, newDist int64) {
	if r.visited[to] || newDist > r.options.MaxCost {
		return
	}
	if old, ok := r.dist[to]; ok && newDist >= old {
		return
	}
	r.dist[to] = newDist
	r.prev[to] = from
	r.push(to, newDist)
}

func (r *runner) push(s State, d int64) {
	heap.Push(&r.pq, &stateItem{state: s, dist: d, seq: r.seq})
	r.seq++
}

// result projects the finalized state costs onto positions.
func (r *runner) result() *Result {
	res := &Result{
		Start:     State{Pos: r.options.Start, Heading: r.options.Heading},
		Dist:      make(map[grid.Position]int64),
		StateDist: make(map[State]int64, len(r.visited)),
		Prev:      make(map[State]State, len(r.visited)),
		Popped:    r.popped,
		terrain:   r.t,
		opts:      r.options,
	}

	for row := 0; row < r.t.Rows(); row++ {
		for col := 0; col < r.t.Cols(); col++ {
			p := grid.Position{Row: row, Col: col}
			if r.t.Open(p) {
				res.Dist[p] = Infinity
			}
		}
	}

	for s := range r.visited {
		d := r.dist[s]
		res.StateDist[s] = d
		if d < res.Dist[s.Pos] {
			res.Dist[s.Pos] = d
		}
		if p, ok := r.prev[s]; ok {
			res.Prev[s] = p
		}
	}

	return res
}

// stateItem is a heap entry: a state, its tentative cost and discovery order.
type stateItem struct {
	state State
	dist  int64
	seq   int
}

// statePQ is a min-heap of *stateItem ordered by dist, then by discovery order.
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
