package grid

import "golang.org/x/exp/constraints"

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	if x < y {
		return y - x
	}

	return x - y
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{Row: v.Row + o.Row, Col: v.Col + o.Col} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{Row: v.Row - o.Row, Col: v.Col - o.Col} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{Row: -v.Row, Col: -v.Col} }

// Step moves v one cell toward h.
func (v Vec2) Step(h Heading) Vec2 { return v.Add(h.Delta()) }

// Neighbors4 returns the four orthogonal neighbours of v in heading order
// (N, E, S, W). Callers filter out-of-bounds results.
func (v Vec2) Neighbors4() [4]Vec2 {
	return [4]Vec2{v.Step(North), v.Step(East), v.Step(South), v.Step(West)}
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b Vec2) int {
	return AbsDiff(a.Row, b.Row) + AbsDiff(a.Col, b.Col)
}

// Delta returns the unit displacement of one step toward h.
func (h Heading) Delta() Vec2 { return deltas[h&3] }

// TurnRight rotates h 90° clockwise.
func (h Heading) TurnRight() Heading { return (h + 1) & 3 }

// TurnLeft rotates h 90° counter-clockwise.
func (h Heading) TurnLeft() Heading { return (h + 3) & 3 }

// Reverse rotates h by 180°.
func (h Heading) Reverse() Heading { return (h + 2) & 3 }

// Rune returns the arrow glyph used by the puzzle maps: ^ > v <.
func (h Heading) Rune() rune {
	switch h & 3 {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	default:
		return '<'
	}
}

// String implements fmt.Stringer.
func (h Heading) String() string { return string(h.Rune()) }

// MarshalText encodes h as its arrow glyph.
func (h Heading) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// HeadingFromRune maps an arrow glyph to its heading.
func HeadingFromRune(r rune) (Heading, bool) {
	switch r {
	case '^':
		return North, true
	case '>':
		return East, true
	case 'v':
		return South, true
	case '<':
		return West, true
	}

	return North, false
}
