package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/reindeer/grid"
)

// Sentinel errors returned by the search and path reconstruction.
var (
	// ErrNilTerrain indicates that a nil terrain was passed to Search.
	ErrNilTerrain = errors.New("dijkstra: terrain is nil")

	// ErrStartBlocked indicates that the start position is not walkable.
	ErrStartBlocked = errors.New("dijkstra: start position is not walkable")

	// ErrBadHeading indicates an initial heading outside North..West.
	ErrBadHeading = errors.New("dijkstra: invalid start heading")

	// ErrBadStepCost indicates a negative forward-step cost.
	ErrBadStepCost = errors.New("dijkstra: StepCost must be non-negative")

	// ErrBadTurnCost indicates a negative turn cost.
	ErrBadTurnCost = errors.New("dijkstra: TurnCost must be non-negative")

	// ErrBadMaxCost indicates a negative exploration cap.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrUnreachable indicates that the requested target has infinite distance.
	ErrUnreachable = errors.New("dijkstra: target is unreachable")

	// ErrBrokenChain indicates that the predecessor map does not lead back to
	// the start state for a position the distance map marks as reached.
	ErrBrokenChain = errors.New("dijkstra: predecessor chain is broken")

	// ErrInvalidPath indicates a path with a non-contiguous step or a step
	// onto a non-walkable cell.
	ErrInvalidPath = errors.New("dijkstra: invalid path")
)

// Infinity is the distance of every position the search never reached.
const Infinity int64 = math.MaxInt64

const (
	// DefaultStepCost is the cost of one step forward.
	DefaultStepCost int64 = 1
	// DefaultTurnCost is the cost of one 90° turn in place.
	DefaultTurnCost int64 = 1000
)

// State is a search node: a position together with the heading faced there.
type State struct {
	Pos     grid.Position
	Heading grid.Heading
}

// Options configures the behavior of Search.
//
// Start    – start position; when unset the terrain's Start() is used.
// Heading  – initial heading (default East).
// StepCost – cost of moving one cell forward (default 1, must be ≥ 0).
// TurnCost – cost of rotating 90° in place (default 1000, must be ≥ 0).
// MaxCost  – states costing more than this are not expanded (default no cap).
// Trace    – record the cost of every finalized state in pop order.
type Options struct {
	Start    grid.Position
	HasStart bool
	Heading  grid.Heading
	StepCost int64
	TurnCost int64
	MaxCost  int64
	Trace    bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the maze rules:
// start at the terrain's start cell facing East, 1 per step, 1000 per turn,
// no exploration cap and no tracing.
func DefaultOptions() Options {
	return Options{
		Heading:  grid.East,
		StepCost: DefaultStepCost,
		TurnCost: DefaultTurnCost,
		MaxCost:  math.MaxInt64,
	}
}

// WithStart overrides the start position.
func WithStart(p grid.Position) Option {
	return func(o *Options) {
		o.Start = p
		o.HasStart = true
	}
}

// WithHeading overrides the initial heading.
func WithHeading(h grid.Heading) Option {
	return func(o *Options) {
		o.Heading = h
	}
}

// WithStepCost sets the cost of one forward step.
// Negative values panic with ErrBadStepCost.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrBadStepCost.Error())
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the cost of one 90° turn.
// Negative values panic with ErrBadTurnCost.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrBadTurnCost.Error())
		}
		o.TurnCost = c
	}
}

// WithMaxCost stops the search from expanding states costing more than max.
// Negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithTrace records finalized costs in pop order in Result.Popped.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// Result holds the outcome of one Search.
//
// Dist maps every walkable position to its minimum cost over all arriving
// headings, or Infinity when unreached. StateDist holds the finalized cost of
// every reached state. Prev maps each reached state except the start to the
// state it was relaxed from.
type Result struct {
	Start     State
	Dist      map[grid.Position]int64
	StateDist map[State]int64
	Prev      map[State]State
	Popped    []int64

	terrain grid.Terrain
	opts    Options
}

// Options returns the configuration the search ran with.
func (r *Result) Options() Options { return r.opts }

// Terrain returns the terrain the search ran on.
func (r *Result) Terrain() grid.Terrain { return r.terrain }

// Cost returns the minimum cost to reach p and whether p was reached.
func (r *Result) Cost(p grid.Position) (int64, bool) {
	d, ok := r.Dist[p]
	if !ok || d == Infinity {
		return Infinity, false
	}
	return d, true
}

// StateCost returns the finalized cost of s and whether s was reached.
func (r *Result) StateCost(s State) (int64, bool) {
	d, ok := r.StateDist[s]
	return d, ok
}

// BestState returns the cheapest reached state at p. Ties go to the first
// heading in clockwise order from North.
func (r *Result) BestState(p grid.Position) (State, bool) {
	best, found := State{}, false
	bestCost := Infinity
	for _, h := range grid.Headings {
		s := State{Pos: p, Heading: h}
		if d, ok := r.StateDist[s]; ok && d < bestCost {
			best, bestCost, found = s, d, true
		}
	}
	return best, found
}
