package besttiles_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/reindeer/besttiles"
	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/grid"
	"github.com/katalvlaran/reindeer/internal/testmaze"
)

// TilesSuite exercises both best-tile strategies.
type TilesSuite struct {
	suite.Suite
}

func (s *TilesSuite) parse(text string) *grid.Grid {
	g, err := grid.Parse(text)
	require.NoError(s.T(), err)
	return g
}

func (s *TilesSuite) reference(g *grid.Grid) besttiles.Set {
	res, err := dijkstra.Search(g)
	require.NoError(s.T(), err)
	path, err := res.Path(g.End())
	require.NoError(s.T(), err)
	return besttiles.NewSet(path.Positions()...)
}

// TestExactWorkedExamples checks the exact flood against the known answers.
func (s *TilesSuite) TestExactWorkedExamples() {
	for _, tc := range []struct {
		text string
		want int
	}{
		{testmaze.Sample, testmaze.SampleTiles},
		{testmaze.Larger, testmaze.LargerTiles},
	} {
		got, err := besttiles.Exact(s.parse(tc.text), besttiles.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), tc.want, got.Len())
	}
}

// TestExactSmall lists the tiles of a maze with two routes around a pillar
// where only one is optimal.
//
//	S..
//	.#.
//	..E
func (s *TilesSuite) TestExactSmall() {
	g := s.parse("S..\n.#.\n..E")
	got, err := besttiles.Exact(g, besttiles.DefaultOptions())
	require.NoError(s.T(), err)

	// East first: one turn at (0,2). South first: a turn at the start and
	// one at (2,0). Only the east-first route is optimal.
	require.Equal(s.T(), []grid.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 2}, {Row: 2, Col: 2},
	}, got.Sorted())
}

// TestExactTiedRoutes has two equally priced routes that must both appear.
//
//	#####
//	#...#
//	S.#.E
//	#...#
//	#####
func (s *TilesSuite) TestExactTiedRoutes() {
	g := s.parse("#####\n#...#\nS.#.E\n#...#\n#####")
	got, err := besttiles.Exact(g, besttiles.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10, got.Len())

	ref := s.reference(g)
	require.Less(s.T(), ref.Len(), got.Len())
	require.True(s.T(), got.Contains(ref))
}

// TestPerturbBounds checks that the perturbation set always contains the
// reference path and never exceeds the exact set.
func (s *TilesSuite) TestPerturbBounds() {
	texts := []string{
		testmaze.Sample,
		testmaze.Larger,
		"#####\n#...#\nS.#.E\n#...#\n#####",
		"S...\n....\n....\n...E",
	}
	for seed := int64(1); seed < 30; seed++ {
		if text, ok := testmaze.Random(seed, 6, 6, 0.8); ok {
			texts = append(texts, text)
		}
	}
	for _, text := range texts {
		g := s.parse(text)
		exact, err := besttiles.Exact(g, besttiles.DefaultOptions())
		if err != nil {
			require.ErrorIs(s.T(), err, dijkstra.ErrUnreachable)
			_, perr := besttiles.Perturb(g, besttiles.DefaultOptions())
			require.ErrorIs(s.T(), perr, dijkstra.ErrUnreachable)
			continue
		}
		perturbed, err := besttiles.Perturb(g, besttiles.DefaultOptions())
		require.NoError(s.T(), err)

		require.True(s.T(), perturbed.Contains(s.reference(g)), "reference path missing\n%v", g)
		require.True(s.T(), exact.Contains(perturbed), "perturbation left the optimal set\n%v", g)
	}
}

// TestPerturbFindsDetour finds the second route once the first is blocked.
func (s *TilesSuite) TestPerturbFindsDetour() {
	g := s.parse("#####\n#...#\nS.#.E\n#...#\n#####")
	got, err := besttiles.Perturb(g, besttiles.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10, got.Len())
	require.Equal(s.T(), grid.Open, g.At(grid.Position{Row: 1, Col: 1}), "grid must be untouched")
	require.Equal(s.T(), grid.Open, g.At(grid.Position{Row: 3, Col: 1}), "grid must be untouched")
}

// TestUnreachable reports a walled-in end for both strategies.
func (s *TilesSuite) TestUnreachable() {
	g := s.parse("S..###\n...#E#\n...###")
	_, err := besttiles.Exact(g, besttiles.DefaultOptions())
	require.ErrorIs(s.T(), err, dijkstra.ErrUnreachable)
	_, err = besttiles.Perturb(g, besttiles.DefaultOptions())
	require.ErrorIs(s.T(), err, dijkstra.ErrUnreachable)
}

// TestCancelled stops before any search when the context is done.
func (s *TilesSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := s.parse(testmaze.Sample)

	_, err := besttiles.Perturb(g, besttiles.Options{Ctx: ctx})
	require.ErrorIs(s.T(), err, context.Canceled)
	_, err = besttiles.Exact(g, besttiles.Options{Ctx: ctx})
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestVerboseLogs writes one record per trial plus a summary.
func (s *TilesSuite) TestVerboseLogs() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	g := s.parse("#####\n#...#\nS.#.E\n#...#\n#####")

	_, err := besttiles.Perturb(g, besttiles.Options{Verbose: true, Logger: logger})
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), "perturbation trial")
	require.Contains(s.T(), buf.String(), "perturbation done")
}

// TestSearchOptionsForwarded prices turns at zero so every monotone
// staircase in an open grid becomes optimal.
func (s *TilesSuite) TestSearchOptionsForwarded() {
	g := s.parse("S..\n...\n..E")
	got, err := besttiles.Exact(g, besttiles.Options{
		Search: []dijkstra.Option{dijkstra.WithTurnCost(0)},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9, got.Len())
}

func TestTilesSuite(t *testing.T) {
	suite.Run(t, new(TilesSuite))
}

func TestSet(t *testing.T) {
	a := besttiles.NewSet(grid.Position{Row: 1, Col: 1}, grid.Position{Row: 0, Col: 2})
	b := besttiles.NewSet(grid.Position{Row: 0, Col: 0})
	require.False(t, a.Contains(b))
	a.Union(b)
	require.True(t, a.Contains(b))
	require.True(t, a.Has(grid.Position{Row: 0, Col: 0}))
	require.Equal(t, 3, a.Len())
	require.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 1}}, a.Sorted())
}
