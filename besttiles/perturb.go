package besttiles

import (
	"fmt"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/grid"
)

// Perturb returns the best-tile set found by the local perturbation search.
//
// Steps:
//  1. Search t once; the cost to t.End() is the baseline.
//  2. Reconstruct one reference path and seed the set with its cells.
//  3. For every step of the path except the last, look at the forward, left
//     and right cells of the arrival heading. When more than one is open the
//     walker had a choice: block the next on-path cell, search again, and if
//     the new cost equals the baseline union the new path into the set.
//  4. The start and end cells are never blocked.
//
// The result always contains the reference path and is a subset of Exact.
// It returns dijkstra.ErrUnreachable (wrapped) when t.End() cannot be reached,
// and the context error if opts.Ctx is cancelled between trials.
func Perturb(t grid.Terrain, opts Options) (Set, error) {
	opts.normalize()
	ctx := opts.Ctx
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := dijkstra.Search(t, opts.Search...)
	if err != nil {
		return nil, err
	}
	end := t.End()
	best, ok := base.Cost(end)
	if !ok {
		return nil, fmt.Errorf("besttiles: %w: %v", dijkstra.ErrUnreachable, end)
	}
	ref, err := base.Path(end)
	if err != nil {
		return nil, err
	}

	tiles := NewSet(ref.Positions()...)
	trials := 0
	for i, step := range ref[:len(ref)-1] {
		if branches(t, step) <= 1 {
			continue
		}
		next := ref[i+1].Pos
		if next == t.Start() || next == end {
			continue
		}

		if err = ctx.Err(); err != nil {
			return nil, err
		}
		trials++
		alt, tied, err := trial(t.WithWalls(next), best, opts)
		if err != nil {
			return nil, err
		}
		if tied {
			tiles.Add(alt.Positions()...)
		}
		if opts.Verbose {
			opts.Logger.Info("perturbation trial",
				"at", step.Pos, "facing", step.Heading, "blocked", next,
				"tied", tied, "tiles", tiles.Len())
		}
	}
	if opts.Verbose {
		opts.Logger.Info("perturbation done", "baseline", best, "trials", trials, "tiles", tiles.Len())
	}

	return tiles, nil
}

// trial searches the perturbed terrain and reports the new path when its
// cost ties the baseline.
func trial(t grid.Terrain, best int64, opts Options) (dijkstra.Path, bool, error) {
	res, err := dijkstra.Search(t, opts.Search...)
	if err != nil {
		return nil, false, err
	}
	cost, ok := res.Cost(t.End())
	if !ok || cost != best {
		return nil, false, nil
	}
	path, err := res.Path(t.End())
	if err != nil {
		return nil, false, err
	}
	return path, true, nil
}

// branches counts the open cells ahead, left and right of s.
func branches(t grid.Terrain, s dijkstra.Step) int {
	n := 0
	for _, h := range [3]grid.Heading{s.Heading, s.Heading.Left(), s.Heading.Right()} {
		if t.Open(s.Pos.Add(h.Delta())) {
			n++
		}
	}
	return n
}
