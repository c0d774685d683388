package model

import "fmt"

const (
	glyphAlive = '*'
	glyphEmpty = '-'
)

// CellState is the state of a single cell. The zero value is Empty.
type CellState uint8

const (
	Empty CellState = iota
	Alive
)

// Valid reports whether s is one of the two defined states
func (s CellState) Valid() bool {
	return s == Empty || s == Alive
}

// Glyph returns the display character for the state
func (s CellState) Glyph() rune {
	if s == Alive {
		return glyphAlive
	}
	return glyphEmpty
}

func (s CellState) String() string {
	switch s {
	case Alive:
		return "Alive"
	case Empty:
		return "Empty"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Coordinate addresses a cell by row and column. Values outside the grid
// bounds, including negative ones, are wrapped by the grid.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Offset returns the coordinate shifted by the given deltas
func (c Coordinate) Offset(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
