package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeading_Turn(t *testing.T) {
	cases := []struct {
		h    Heading
		turn Turn
		want Heading
	}{
		{East, Straight, East},
		{East, Left, North},
		{East, Right, South},
		{East, Around, West},
		{North, Left, West},
		{West, Right, North},
		{South, Around, North},
		{North, Turn(-1), West},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.h.Turn(tc.turn), "%v turn %d", tc.h, tc.turn)
	}
}

func TestHeading_LeftRightInverse(t *testing.T) {
	for _, h := range Headings {
		assert.Equal(t, h, h.Left().Right(), "%v", h)
		assert.Equal(t, h, h.Right().Left(), "%v", h)
		assert.Equal(t, h, h.Opposite().Opposite(), "%v", h)
		assert.Equal(t, h.Left().Left(), h.Opposite(), "%v", h)
	}
}

func TestHeading_Delta(t *testing.T) {
	assert.Equal(t, Position{Row: -1, Col: 0}, North.Delta())
	assert.Equal(t, Position{Row: 0, Col: 1}, East.Delta())
	assert.Equal(t, Position{Row: 1, Col: 0}, South.Delta())
	assert.Equal(t, Position{Row: 0, Col: -1}, West.Delta())

	for _, h := range Headings {
		got, ok := HeadingOf(h.Delta())
		assert.True(t, ok)
		assert.Equal(t, h, got)
	}
	_, ok := HeadingOf(Position{Row: 1, Col: 1})
	assert.False(t, ok)
}

func TestTurns(t *testing.T) {
	assert.Equal(t, 0, Turns(East, East))
	assert.Equal(t, 1, Turns(East, North))
	assert.Equal(t, 1, Turns(East, South))
	assert.Equal(t, 2, Turns(East, West))
	assert.Equal(t, 2, Turns(North, South))
}

func TestHeading_Strings(t *testing.T) {
	assert.Equal(t, "East", East.String())
	assert.Equal(t, "Heading(7)", Heading(7).String())
	assert.Equal(t, byte('>'), East.Arrow())
	assert.Equal(t, byte('^'), North.Arrow())
	assert.True(t, West.Valid())
	assert.False(t, Heading(4).Valid())
}
