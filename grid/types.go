package grid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCell indicates a character outside the maze alphabet.
	ErrUnknownCell = errors.New("grid: unknown cell character")
	// ErrNoStart indicates the start marker is missing.
	ErrNoStart = errors.New("grid: no start marker")
	// ErrManyStarts indicates more than one start marker.
	ErrManyStarts = errors.New("grid: more than one start marker")
	// ErrNoEnd indicates the end marker is missing.
	ErrNoEnd = errors.New("grid: no end marker")
	// ErrManyEnds indicates more than one end marker.
	ErrManyEnds = errors.New("grid: more than one end marker")
	// ErrNotFound indicates Locate found no cell of the requested kind.
	ErrNotFound = errors.New("grid: no cell of requested kind")
	// ErrNotUnique indicates Locate found several cells of the requested kind.
	ErrNotUnique = errors.New("grid: cell kind is not unique")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// ParseError reports malformed maze text. Line and Col are 1-based; a zero
// value means the problem is not tied to one line or column.
type ParseError struct {
	Line, Col int
	Err       error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Col > 0:
		return fmt.Sprintf("%v (line %d, col %d)", e.Err, e.Line, e.Col)
	case e.Line > 0:
		return fmt.Sprintf("%v (line %d)", e.Err, e.Line)
	default:
		return e.Err.Error()
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Cell is the kind of a single maze cell.
type Cell uint8

const (
	// Wall cannot be entered.
	Wall Cell = iota
	// Open is walkable floor.
	Open
	// Start is the unique starting cell; walkable.
	Start
	// End is the unique goal cell; walkable.
	End
)

// Byte returns the character used for c in maze text.
func (c Cell) Byte() byte {
	switch c {
	case Open:
		return '.'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '#'
	}
}

func (c Cell) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Walkable reports whether a walker may stand on c.
func (c Cell) Walkable() bool { return c != Wall }

// cellOf maps a maze character to its Cell kind.
func cellOf(b byte) (Cell, bool) {
	switch b {
	case '#':
		return Wall, true
	case '.':
		return Open, true
	case 'S':
		return Start, true
	case 'E':
		return End, true
	}
	return Wall, false
}

// Pt2 is a (row, column) coordinate pair.
type Pt2[T constraints.Signed] struct {
	Row, Col T
}

// Position is a cell coordinate inside a maze.
type Position = Pt2[int]

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] {
	return Pt2[T]{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Sub returns the displacement from q to p.
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// Manhattan returns the taxicab distance between p and q.
func (p Pt2[T]) Manhattan(q Pt2[T]) T {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Less orders positions row-major.
func (p Pt2[T]) Less(q Pt2[T]) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
