// Package testmaze holds maze fixtures shared by the package tests and the
// CLI's sample mode.
package testmaze

import (
	"math/rand"
	"strings"
)

// Sample is the smaller worked example: lowest score 7036, 45 best tiles.
const Sample = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

// SampleCost and SampleTiles are the expected answers for Sample.
const (
	SampleCost  = 7036
	SampleTiles = 45
)

// Larger is the second worked example: lowest score 11048, 64 best tiles.
const Larger = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`

// LargerCost and LargerTiles are the expected answers for Larger.
const (
	LargerCost  = 11048
	LargerTiles = 64
)

// Random returns a rows×cols maze text where each cell is open with
// probability open, the first open cell in row-major order is the start and
// the last one is the end. ok is false when fewer than two cells are open.
func Random(seed int64, rows, cols int, open float64) (text string, ok bool) {
	rng := rand.New(rand.NewSource(seed))
	cells := make([][]byte, rows)
	first, last := -1, -1
	for r := range cells {
		cells[r] = make([]byte, cols)
		for c := range cells[r] {
			cells[r][c] = '#'
			if rng.Float64() < open {
				cells[r][c] = '.'
				i := r*cols + c
				if first < 0 {
					first = i
				}
				last = i
			}
		}
	}
	if first < 0 || first == last {
		return "", false
	}
	cells[first/cols][first%cols] = 'S'
	cells[last/cols][last%cols] = 'E'

	lines := make([]string, rows)
	for r, row := range cells {
		lines[r] = string(row)
	}
	return strings.Join(lines, "\n"), true
}
