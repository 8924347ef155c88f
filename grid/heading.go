package grid

import "fmt"

// Heading is one of the four compass directions, in clockwise order.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// Headings lists every heading in clockwise order starting at North.
var Headings = [4]Heading{North, East, South, West}

// Turn is a rotation applied to a Heading.
type Turn int8

const (
	// Straight keeps the heading.
	Straight Turn = 0
	// Right rotates 90° clockwise.
	Right Turn = 1
	// Around rotates 180°.
	Around Turn = 2
	// Left rotates 90° counter-clockwise.
	Left Turn = 3
)

// deltas is indexed by Heading.
var deltas = [4]Position{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

// Valid reports whether h is one of the four compass headings.
func (h Heading) Valid() bool { return h <= West }

// Delta returns the unit displacement for one step in heading h.
func (h Heading) Delta() Position { return deltas[h&3] }

// Turn returns the heading after applying t to h.
func (h Heading) Turn(t Turn) Heading {
	return Heading((int(h) + int(t)%4 + 4) % 4)
}

// Left returns h rotated 90° counter-clockwise.
func (h Heading) Left() Heading { return h.Turn(Left) }

// Right returns h rotated 90° clockwise.
func (h Heading) Right() Heading { return h.Turn(Right) }

// Opposite returns h rotated 180°.
func (h Heading) Opposite() Heading { return h.Turn(Around) }

// Turns returns the minimum number of 90° rotations needed to go from
// heading a to heading b: 0, 1 or 2.
func Turns(a, b Heading) int {
	d := (int(b) - int(a) + 4) % 4
	if d == 3 {
		return 1
	}
	return d
}

// Arrow returns the AoC-style arrow glyph for h.
func (h Heading) Arrow() byte {
	return "^>v<"[h&3]
}

func (h Heading) String() string {
	switch h {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
}

// HeadingOf returns the heading of a unit displacement, or false when d is
// not one of the four unit steps.
func HeadingOf(d Position) (Heading, bool) {
	for _, h := range Headings {
		if deltas[h] == d {
			return h, true
		}
	}
	return North, false
}
