package besttiles

import (
	"context"
	"log/slog"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/grid"
)

// Options configures both enumeration strategies.
//   - Ctx: checked before every search; nil means context.Background().
//   - Verbose: if true, logs every perturbation trial to Logger.
//   - Logger: destination for verbose output; nil means slog.Default().
//   - Search: options forwarded to every dijkstra.Search call.
type Options struct {
	Ctx     context.Context
	Verbose bool
	Logger  *slog.Logger
	Search  []dijkstra.Option
}

// DefaultOptions returns Options with a background context, no logging and
// the default maze costs.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Set is a set of maze positions.
type Set map[grid.Position]struct{}

// NewSet returns a set holding ps.
func NewSet(ps ...grid.Position) Set {
	s := make(Set, len(ps))
	s.Add(ps...)
	return s
}

// Len returns the number of positions in s.
func (s Set) Len() int { return len(s) }

// Has reports whether p is in s.
func (s Set) Has(p grid.Position) bool {
	_, ok := s[p]
	return ok
}

// Add inserts ps into s.
func (s Set) Add(ps ...grid.Position) {
	for _, p := range ps {
		s[p] = struct{}{}
	}
}

// Union inserts every position of o into s.
func (s Set) Union(o Set) {
	for p := range o {
		s[p] = struct{}{}
	}
}

// Contains reports whether every position of o is in s.
func (s Set) Contains(o Set) bool {
	for p := range o {
		if !s.Has(p) {
			return false
		}
	}
	return true
}

// Sorted returns the positions of s in row-major order.
func (s Set) Sorted() []grid.Position {
	out := make([]grid.Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b grid.Position) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}
