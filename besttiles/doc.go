// Package besttiles finds the maze cells that lie on some minimum-cost
// route from start to end ("best tiles"), not just on the one route that
// dijkstra.Result.Path returns.
//
// Two strategies are offered:
//
//   - Perturb: the local perturbation search. Solve once, reconstruct one
//     reference path, then at every point of that path where the walker could
//     branch (more than one of forward/left/right is open) block the next
//     on-path cell, re-solve, and keep the alternate route when its cost ties
//     the baseline. Cheap to reason about, but only finds alternates that a
//     single blocked cell exposes, so it can miss tiles on mazes with many
//     interleaved tied routes.
//   - Exact: flood backwards from every cheapest end state over transitions
//     whose cost matches the finalized distances exactly. Every state on any
//     optimal route is found; this is the complete answer.
//
// Trials in Perturb never mutate the caller's grid: each one runs on a
// grid.Terrain overlay that is dropped when the trial ends, so an error or a
// cancelled context cannot leave a cell disabled.
//
// Complexity:
//
//   - Perturb: O(L · S log S) for a reference path of L cells, S = 4·W·H.
//   - Exact:   O(S log S) for the search plus O(S) for the flood.
package besttiles
