// Package reindeer solves the reindeer maze: find the cheapest way from S to
// E when every step forward costs 1 and every 90° turn costs 1000, and find
// every tile that lies on some cheapest way.
//
// 🦌 What is in the box?
//
//	• grid/       — maze parsing, headings and turns, copy-on-write overlays,
//	                plain reachability (BFS) and wall breaching (0–1 BFS)
//	• dijkstra/   — heading-aware Dijkstra over (position, heading) states
//	                plus path reconstruction
//	• besttiles/  — tiles on tied-optimal routes: perturbation search and
//	                exact backward flood
//	• cmd/reindeer — command-line solver for puzzle input files
//
// This package wires them together behind four calls:
//
//	g, err := reindeer.Parse(text)
//	res, err := reindeer.Solve(g)
//	cost, err := reindeer.ShortestPathCost(g)
//	tiles, err := reindeer.TilesOnAnyOptimalPath(g)
//
// Quick ASCII example:
//
//	#####
//	#..E#     facing East at S: turn north (1000), step (1),
//	#S#.#     turn east (1000), step twice (2) → 2003
//	#####
//
// “No path” is data, not failure: ShortestPathCost and the tile functions
// return an error wrapping dijkstra.ErrUnreachable, and Solve simply leaves the
// end at dijkstra.Infinity.
package reindeer
