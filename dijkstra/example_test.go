// Package dijkstra_test provides runnable examples of the maze search.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/grid"
)

// ExampleSearch finds the cheapest route through a maze with one bend.
// Facing East at S, the walker runs along the top row, turns once and
// steps down onto E: 7 steps + 1 step + 1 turn.
func ExampleSearch() {
	g, err := grid.Parse("S.......#\n#######E#")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.Search(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cost, ok := res.Cost(g.End())
	fmt.Println("reachable:", ok, "cost:", cost)

	path, _ := res.Path(g.End())
	fmt.Println("moves:", path.Moves(), "turns:", path.Turns())
	// Output:
	// reachable: true cost: 1008
	// moves: 8 turns: 1
}

// ExampleResult_Path prints a reconstructed path with heading arrows.
func ExampleResult_Path() {
	g, _ := grid.Parse("S.\n.E")
	res, _ := dijkstra.Search(g)
	path, _ := res.Path(g.End())
	fmt.Println(path)
	// Output:
	// (0,0)> (0,1)> (1,1)v
}

// ExampleWithTurnCost prices turns as cheaply as steps.
func ExampleWithTurnCost() {
	g, _ := grid.Parse("S..\n..E")
	res, _ := dijkstra.Search(g, dijkstra.WithTurnCost(1))
	cost, _ := res.Cost(g.End())
	fmt.Println(cost)
	// Output:
	// 4
}
