// Package grid models the reindeer maze: a rectangular, immutable 2D grid of
// cells (wall, open floor, start, end) together with the compass headings a
// walker can face while moving through it.
//
// What:
//
//   - Grid wraps a parsed maze. It is never mutated after Parse or New.
//   - Terrain is the read-only view consumed by the search packages. *Grid
//     implements it, and Grid.WithWalls returns a copy-on-write overlay that
//     reports extra cells as walls without touching the base grid.
//   - Heading and Turn model orientation; turning is a pure function
//     (Heading.Turn) rather than a rotating list of directions.
//   - Region and Connected answer plain reachability questions (BFS, no
//     headings), Breach counts the fewest walls separating two cells.
//
// Input format:
//
//	#####
//	#..E#
//	#S#.#
//	#####
//
// One row per line, '#' wall, '.' open floor, 'S' start, 'E' end. Exactly one
// start and one end are required. Cells outside the grid behave as walls.
//
// Complexity:
//
//   - Parse, New:         O(W×H) time and memory.
//   - At, Open, InBounds: O(1).
//   - Region, Connected:  O(W×H), Memory: O(W×H).
//   - Breach:             O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell:    a character outside the maze alphabet.
//   - ErrNoStart, ErrManyStarts, ErrNoEnd, ErrManyEnds: marker count is not one.
//   - ErrNotFound, ErrNotUnique: Locate found zero or several cells.
//
// Parse failures are reported as *ParseError, which wraps one of the
// sentinels above and carries the offending line and column.
package grid
