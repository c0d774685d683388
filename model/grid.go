package model

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// Grid is a fixed-size toroidal board. Every coordinate, after wraparound,
// maps to exactly one cell; the dimensions never change after construction.
type Grid struct {
	height int
	width  int
	cells  [][]CellState
}

// NewGrid creates an empty grid with the specified dimensions.
// Both dimensions must be positive.
func NewGrid(height, width int) *Grid {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", height, width))
	}
	cells := make([][]CellState, height)
	for i := range cells {
		cells[i] = make([]CellState, width)
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  cells,
	}
}

// GetHeight returns the number of rows
func (g *Grid) GetHeight() int {
	return g.height
}

// GetWidth returns the number of columns
func (g *Grid) GetWidth() int {
	return g.width
}

// reset reshapes a pooled grid to new dimensions and clears it
func (g *Grid) reset(height, width int) {
	g.height = height
	g.width = width

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]CellState, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]CellState, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear sets every cell to Empty
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// wrap is the non-negative modulus of v by n
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Query returns the state at c after wraparound
func (g *Grid) Query(c Coordinate) CellState {
	return g.cells[wrap(c.Row, g.height)][wrap(c.Col, g.width)]
}

// Assign stores state at c after wraparound, overwriting unconditionally
func (g *Grid) Assign(c Coordinate, state CellState) {
	g.cells[wrap(c.Row, g.height)][wrap(c.Col, g.width)] = state
}

// Clone returns an independent copy with identical dimensions and contents
func (g *Grid) Clone() *Grid {
	next := NewGrid(g.height, g.width)
	next.copyFrom(g)
	return next
}

func (g *Grid) copyFrom(src *Grid) {
	for y := range src.height {
		copy(g.cells[y], src.cells[y])
	}
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Render returns the grid as rows of glyphs, '*' for Alive and '-' for Empty
func (g *Grid) Render() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y := range g.height {
		sb.Reset()
		sb.Grow(g.width)
		for x := range g.width {
			sb.WriteRune(g.cells[y][x].Glyph())
		}
		rows[y] = sb.String()
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Render(), "\n")
}

// AliveCells returns the coordinates of all living cells in row-major order
func (g *Grid) AliveCells() []Coordinate {
	var alive []Coordinate
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] == Alive {
				alive = append(alive, Coordinate{Row: y, Col: x})
			}
		}
	}
	return alive
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] == Alive {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			h.Write([]byte{byte(g.cells[y][x])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
