package main

import (
	"strings"

	"github.com/vyevs/ansi"

	"github.com/katalvlaran/reindeer/besttiles"
	"github.com/katalvlaran/reindeer/grid"
)

// render draws g with best tiles marked 'O'. With color set, walls are grey, floor cyan,
// markers yellow and best tiles green.
func render(g *grid.Grid, tiles besttiles.Set, color bool) string {
	plain := grid.Render(g, tiles.Has)
	if !color {
		return plain
	}

	var b strings.Builder
	b.Grow(len(plain) * 4)
	for _, ch := range []byte(plain) {
		switch ch {
		case '#':
			b.WriteString(ansi.FGColorName("light gray"))
		case 'O':
			b.WriteString(ansi.FGColorName("green"))
		case 'S', 'E':
			b.WriteString(ansi.FGColorName("yellow"))
		case '.':
			b.WriteString(ansi.FGColorName("cyan"))
		}
		b.WriteByte(ch)
	}
	b.WriteString(ansi.Clear)
	return b.String()
}
