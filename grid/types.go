package grid

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates a cell character the decoder does not understand.
	ErrBadCell = errors.New("grid: unrecognised cell")
)

// Vec2 is a row/column coordinate or a row/column displacement.
type Vec2 struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Heading is a cardinal direction. The zero value is North; the declaration
// order is clockwise.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// Headings lists the four headings in clockwise order starting at North.
var Headings = [4]Heading{North, East, South, West}

// deltas is indexed by Heading.
var deltas = [4]Vec2{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Grid is a rectangular array of cells addressed by Vec2.
type Grid[T any] struct {
	cells  [][]T
	width  int
	height int
}
