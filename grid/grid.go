package grid

import (
	"strings"
)

// Terrain is the read-only maze view consumed by searches.
// Cells outside [0,Rows)×[0,Cols) are walls.
type Terrain interface {
	Rows() int
	Cols() int
	At(p Position) Cell
	Open(p Position) bool
	Start() Position
	End() Position
	// WithWalls returns a view with extra walls; the receiver is unchanged.
	WithWalls(extra ...Position) Terrain
}

// Grid is an immutable maze. Cells are stored row-major.
type Grid struct {
	rows, cols int
	cells      []Cell
	start, end Position
}

// Parse builds a Grid from maze text, one row per line.
// Surrounding whitespace of each line and blank trailing lines are ignored;
// "\r\n" line endings are accepted.
// Errors are *ParseError values wrapping a package sentinel.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	h, w := len(lines), len(lines[0])
	cells := make([]Cell, 0, h*w)
	for y, line := range lines {
		if len(line) != w {
			return nil, &ParseError{Line: y + 1, Err: ErrNonRectangular}
		}
		for x := 0; x < len(line); x++ {
			c, ok := cellOf(line[x])
			if !ok {
				return nil, &ParseError{Line: y + 1, Col: x + 1, Err: ErrUnknownCell}
			}
			cells = append(cells, c)
		}
	}

	return build(h, w, cells)
}

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability.
// Complexity: O(W×H) time and memory.
func New(values [][]Cell) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}
	h, w := len(values), len(values[0])
	cells := make([]Cell, 0, h*w)
	for y, row := range values {
		if len(row) != w {
			return nil, &ParseError{Line: y + 1, Err: ErrNonRectangular}
		}
		for x, c := range row {
			if c > End {
				return nil, &ParseError{Line: y + 1, Col: x + 1, Err: ErrUnknownCell}
			}
		}
		cells = append(cells, row...)
	}

	return build(h, w, cells)
}

// build validates marker counts and takes ownership of cells.
func build(h, w int, cells []Cell) (*Grid, error) {
	g := &Grid{rows: h, cols: w, cells: cells}

	start, err := g.Locate(Start)
	switch {
	case err == ErrNotFound:
		return nil, &ParseError{Err: ErrNoStart}
	case err == ErrNotUnique:
		return nil, &ParseError{Line: start.Row + 1, Col: start.Col + 1, Err: ErrManyStarts}
	}
	end, err := g.Locate(End)
	switch {
	case err == ErrNotFound:
		return nil, &ParseError{Err: ErrNoEnd}
	case err == ErrNotUnique:
		return nil, &ParseError{Line: end.Row + 1, Col: end.Col + 1, Err: ErrManyEnds}
	}
	g.start, g.end = start, end

	return g, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Start returns the position of the unique start cell.
func (g *Grid) Start() Position { return g.start }

// End returns the position of the unique end cell.
func (g *Grid) End() Position { return g.end }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p; positions outside the grid are walls.
// Complexity: O(1).
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.index(p)]
}

// Open reports whether p is in bounds and walkable.
func (g *Grid) Open(p Position) bool { return g.At(p).Walkable() }

// Locate returns the single position holding kind.
// It returns ErrNotFound when no cell matches, and ErrNotUnique together with
// the second match when several do.
// Complexity: O(W×H).
func (g *Grid) Locate(kind Cell) (Position, error) {
	found := -1
	for i, c := range g.cells {
		if c != kind {
			continue
		}
		if found >= 0 {
			return g.Coordinate(i), ErrNotUnique
		}
		found = i
	}
	if found < 0 {
		return Position{}, ErrNotFound
	}

	return g.Coordinate(found), nil
}

// Cells returns every position holding kind, row-major.
func (g *Grid) Cells(kind Cell) []Position {
	var out []Position
	for i, c := range g.cells {
		if c == kind {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// WithWalls returns a Terrain that reports every position in extra as a
// wall and otherwise defers to g. The grid itself is left untouched, so the
// overlay can simply be dropped when a trial ends.
func (g *Grid) WithWalls(extra ...Position) Terrain {
	walls := make(map[Position]struct{}, len(extra))
	for _, p := range extra {
		walls[p] = struct{}{}
	}
	return &overlay{Grid: g, walls: walls}
}

// String renders g back to maze text without a trailing newline.
func (g *Grid) String() string {
	return Render(g, nil)
}

// index maps p to a row-major index: Row*cols + Col.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// overlay is a copy-on-write view of a Grid with extra walls.
type overlay struct {
	*Grid
	walls map[Position]struct{}
}

func (o *overlay) At(p Position) Cell {
	if _, blocked := o.walls[p]; blocked {
		return Wall
	}
	return o.Grid.At(p)
}

func (o *overlay) Open(p Position) bool { return o.At(p).Walkable() }

// WithWalls stacks further walls on top of the overlay.
func (o *overlay) WithWalls(extra ...Position) Terrain {
	walls := make(map[Position]struct{}, len(o.walls)+len(extra))
	for p := range o.walls {
		walls[p] = struct{}{}
	}
	for _, p := range extra {
		walls[p] = struct{}{}
	}
	return &overlay{Grid: o.Grid, walls: walls}
}

// Render draws t as maze text. Cells for which mark returns true are drawn
// as 'O' unless they hold the start or end marker. mark may be nil.
func Render(t Terrain, mark func(Position) bool) string {
	var b strings.Builder
	b.Grow((t.Cols() + 1) * t.Rows())
	for r := 0; r < t.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < t.Cols(); c++ {
			p := Position{Row: r, Col: c}
			cell := t.At(p)
			if mark != nil && cell == Open && mark(p) {
				b.WriteByte('O')
				continue
			}
			b.WriteByte(cell.Byte())
		}
	}
	return b.String()
}

func (o *overlay) String() string { return Render(o, nil) }
