package reindeer

import (
	"context"
	"fmt"

	"github.com/katalvlaran/reindeer/besttiles"
	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/grid"
)

// ErrUnreachable is returned when the end cannot be reached from the start.
var ErrUnreachable = dijkstra.ErrUnreachable

// Parse builds a maze from text. It fails with a *grid.ParseError for jagged
// rows, unknown characters, or a start/end marker count other than one.
func Parse(text string) (*grid.Grid, error) {
	return grid.Parse(text)
}

// Solve runs the full search from the start facing East and returns the
// distance and predecessor maps.
func Solve(g *grid.Grid) (*dijkstra.Result, error) {
	return dijkstra.Search(g)
}

// ShortestPathCost returns the lowest score from start to end.
// When the end is walled off it returns ErrUnreachable without searching.
func ShortestPathCost(g *grid.Grid) (int64, error) {
	if g == nil {
		return 0, dijkstra.ErrNilTerrain
	}
	if !grid.Connected(g, g.Start(), g.End()) {
		return dijkstra.Infinity, fmt.Errorf("reindeer: %w: %v", ErrUnreachable, g.End())
	}
	res, err := Solve(g)
	if err != nil {
		return 0, err
	}
	cost, ok := res.Cost(g.End())
	if !ok {
		return dijkstra.Infinity, fmt.Errorf("reindeer: %w: %v", ErrUnreachable, g.End())
	}
	return cost, nil
}

// Reconstruct returns one cheapest path from start to end.
func Reconstruct(g *grid.Grid) (dijkstra.Path, error) {
	res, err := Solve(g)
	if err != nil {
		return nil, err
	}
	return res.Path(g.End())
}

// TilesOnAnyOptimalPath returns every tile on at least one cheapest route,
// computed by the exact backward flood.
func TilesOnAnyOptimalPath(g *grid.Grid) (besttiles.Set, error) {
	if g == nil {
		return nil, dijkstra.ErrNilTerrain
	}
	return besttiles.Exact(g, besttiles.DefaultOptions())
}

// PerturbedTiles returns the best-effort tile set of the perturbation search.
// It is a subset of TilesOnAnyOptimalPath and may miss tiles.
func PerturbedTiles(ctx context.Context, g *grid.Grid) (besttiles.Set, error) {
	if g == nil {
		return nil, dijkstra.ErrNilTerrain
	}
	return besttiles.Perturb(g, besttiles.Options{Ctx: ctx})
}
