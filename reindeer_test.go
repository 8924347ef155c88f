package reindeer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reindeer"
	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/grid"
	"github.com/katalvlaran/reindeer/internal/testmaze"
)

func TestParse_Errors(t *testing.T) {
	_, err := reindeer.Parse("S..\n...")
	assert.ErrorIs(t, err, grid.ErrNoEnd)

	_, err = reindeer.Parse("S.S\n..E")
	assert.ErrorIs(t, err, grid.ErrManyStarts)

	var pe *grid.ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestWorkedExamples(t *testing.T) {
	for _, tc := range []struct {
		name  string
		text  string
		cost  int64
		tiles int
	}{
		{"sample", testmaze.Sample, testmaze.SampleCost, testmaze.SampleTiles},
		{"larger", testmaze.Larger, testmaze.LargerCost, testmaze.LargerTiles},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := reindeer.Parse(tc.text)
			require.NoError(t, err)

			cost, err := reindeer.ShortestPathCost(g)
			require.NoError(t, err)
			assert.Equal(t, tc.cost, cost)

			path, err := reindeer.Reconstruct(g)
			require.NoError(t, err)
			assert.Equal(t, tc.cost, path.Cost(1, 1000))
			require.NoError(t, path.Validate(g))

			tiles, err := reindeer.TilesOnAnyOptimalPath(g)
			require.NoError(t, err)
			assert.Equal(t, tc.tiles, tiles.Len())
			for _, p := range path.Positions() {
				assert.True(t, tiles.Has(p), "reference path cell %v missing", p)
			}

			perturbed, err := reindeer.PerturbedTiles(context.Background(), g)
			require.NoError(t, err)
			assert.True(t, tiles.Contains(perturbed))
			assert.LessOrEqual(t, perturbed.Len(), tiles.Len())
		})
	}
}

func TestUnreachable(t *testing.T) {
	g, err := reindeer.Parse("S..###\n...#E#\n...###")
	require.NoError(t, err)

	res, err := reindeer.Solve(g)
	require.NoError(t, err, "a walled-in end is a valid result")
	assert.Equal(t, dijkstra.Infinity, res.Dist[g.End()])

	cost, err := reindeer.ShortestPathCost(g)
	assert.ErrorIs(t, err, reindeer.ErrUnreachable)
	assert.Equal(t, dijkstra.Infinity, cost)

	_, err = reindeer.Reconstruct(g)
	assert.ErrorIs(t, err, reindeer.ErrUnreachable)

	_, err = reindeer.TilesOnAnyOptimalPath(g)
	assert.ErrorIs(t, err, reindeer.ErrUnreachable)
}

func TestNilGrid(t *testing.T) {
	_, err := reindeer.ShortestPathCost(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilTerrain)
	_, err = reindeer.TilesOnAnyOptimalPath(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilTerrain)
	_, err = reindeer.PerturbedTiles(context.Background(), nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilTerrain)
}
