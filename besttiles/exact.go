package besttiles

import (
	"fmt"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/grid"
)

// Exact returns every position that lies on at least one minimum-cost route
// from the start state to t.End().
//
// Steps:
//  1. Search t once with opts.Search.
//  2. Seed a worklist with every end state whose cost equals the best cost.
//  3. Pop a state (p, h) of cost d and push each predecessor whose finalized
//     cost plus the transition cost equals d exactly:
//     • (p − Δh, h) via one forward step
//     • (p, left(h)) and (p, right(h)) via one turn
//  4. Collect the positions of every visited state.
//
// It returns dijkstra.ErrUnreachable (wrapped) when t.End() cannot be reached.
// Complexity: O(S log S) search + O(S) flood, S = 4·W·H.
func Exact(t grid.Terrain, opts Options) (Set, error) {
	opts.normalize()
	if err := opts.Ctx.Err(); err != nil {
		return nil, err
	}

	res, err := dijkstra.Search(t, opts.Search...)
	if err != nil {
		return nil, err
	}
	end := t.End()
	best, ok := res.Cost(end)
	if !ok {
		return nil, fmt.Errorf("besttiles: %w: %v", dijkstra.ErrUnreachable, end)
	}

	return flood(res, end, best), nil
}

// flood walks optimal transitions backwards from the cheapest states at end.
func flood(res *dijkstra.Result, end grid.Position, best int64) Set {
	cfg := res.Options()
	seen := make(map[dijkstra.State]bool)
	var stack []dijkstra.State
	for _, h := range grid.Headings {
		s := dijkstra.State{Pos: end, Heading: h}
		if d, ok := res.StateCost(s); ok && d == best {
			seen[s] = true
			stack = append(stack, s)
		}
	}

	// tight reports whether from → to is an optimal transition of cost c.
	tight := func(from dijkstra.State, c, d int64) bool {
		fd, ok := res.StateCost(from)
		return ok && fd+c == d
	}

	tiles := make(Set)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tiles.Add(s.Pos)
		if s == res.Start {
			continue
		}
		d, _ := res.StateCost(s)

		preds := [3]struct {
			state dijkstra.State
			cost  int64
		}{
			{dijkstra.State{Pos: s.Pos.Add(s.Heading.Opposite().Delta()), Heading: s.Heading}, cfg.StepCost},
			{dijkstra.State{Pos: s.Pos, Heading: s.Heading.Left()}, cfg.TurnCost},
			{dijkstra.State{Pos: s.Pos, Heading: s.Heading.Right()}, cfg.TurnCost},
		}
		for _, p := range preds {
			if seen[p.state] || !tight(p.state, p.cost, d) {
				continue
			}
			seen[p.state] = true
			stack = append(stack, p.state)
		}
	}
	return tiles
}
