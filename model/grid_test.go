package model

import (
	"reflect"
	"testing"
)

func TestQueryWrapsAround(t *testing.T) {
	const height, width = 4, 7
	g := NewGrid(height, width)
	for r := range height {
		for c := range width {
			if (r*width+c)%3 == 0 {
				g.Assign(Coordinate{Row: r, Col: c}, Alive)
			}
		}
	}

	mod := func(v, n int) int { return ((v % n) + n) % n }
	for r := -3 * height; r <= 3*height; r++ {
		for c := -3 * width; c <= 3*width; c++ {
			got := g.Query(Coordinate{Row: r, Col: c})
			want := g.Query(Coordinate{Row: mod(r, height), Col: mod(c, width)})
			if got != want {
				t.Fatalf("Query(%d,%d) = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestAssignWrapsAround(t *testing.T) {
	g := NewGrid(3, 5)
	g.Assign(Coordinate{Row: -1, Col: -1}, Alive)
	g.Assign(Coordinate{Row: 3, Col: 5}, Alive)

	want := []string{
		"*----",
		"-----",
		"----*",
	}
	if got := g.Render(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}

	g.Assign(Coordinate{Row: 6, Col: 10}, Empty)
	if g.Query(Coordinate{}) != Empty {
		t.Fatal("assign did not overwrite the wrapped cell")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	for _, tc := range []struct {
		name  string
		clone func(*Grid) *Grid
	}{
		{"Clone", (*Grid).Clone},
		{"GridPool.Clone", NewGridPool().Clone},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(4, 6)
			g.AddGlider(Coordinate{Row: 0, Col: 1})
			before := g.String()

			c := tc.clone(g)
			if !c.Equal(g) || c.GetHeight() != 4 || c.GetWidth() != 6 {
				t.Fatalf("clone differs:\n%v\nvs\n%v", c, g)
			}

			c.Assign(Coordinate{Row: 3, Col: 5}, Alive)
			c.Assign(Coordinate{Row: 0, Col: 2}, Empty)
			if g.String() != before {
				t.Fatalf("mutating the clone changed the original:\n%v", g)
			}
		})
	}
}

func TestGridPoolReshapes(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(3, 3)
	g.AddBlock(Coordinate{})
	GridToPool(g, pool)

	next := pool.Get(2, 5)
	if next.GetHeight() != 2 || next.GetWidth() != 5 {
		t.Fatalf("got %dx%d, want 2x5", next.GetHeight(), next.GetWidth())
	}
	if n := next.CountLivingCells(); n != 0 {
		t.Fatalf("pooled grid has %d living cells", n)
	}

	GridToPool(nil, pool)
	GridToPool(next, nil)
}

func TestRender(t *testing.T) {
	g := NewGrid(3, 4)
	g.AddBlinker(Coordinate{Row: 1, Col: 1})

	want := []string{"----", "-***", "----"}
	if got := g.Render(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := g.String(); got != "----\n-***\n----" {
		t.Fatalf("String() = %q", got)
	}
}

func TestAliveCellsAndCount(t *testing.T) {
	g := NewGrid(10, 20)
	g.AddGlider(Coordinate{Row: 0, Col: 2})

	want := []Coordinate{{0, 3}, {1, 4}, {2, 2}, {2, 3}, {2, 4}}
	if got := g.AliveCells(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if n := g.CountLivingCells(); n != 5 {
		t.Fatalf("CountLivingCells() = %d, want 5", n)
	}
}

func TestGridHash(t *testing.T) {
	a := NewGrid(4, 4)
	b := NewGrid(4, 4)
	if a.GetGridHash() != b.GetGridHash() {
		t.Fatal("equal grids hash differently")
	}
	b.AddBlock(Coordinate{Row: 1, Col: 1})
	if a.GetGridHash() == b.GetGridHash() {
		t.Fatal("different grids hash equally")
	}
}

func TestAddPatternUnknown(t *testing.T) {
	g := NewGrid(3, 3)
	if err := g.AddPattern("spaceship", Coordinate{}); err == nil {
		t.Fatal("expected an error for an unknown pattern")
	}
	if !reflect.DeepEqual(PatternNames(), []string{"blinker", "block", "glider"}) {
		t.Fatalf("PatternNames() = %v", PatternNames())
	}
}

func TestCellState(t *testing.T) {
	if Alive.Glyph() != '*' || Empty.Glyph() != '-' {
		t.Fatal("unexpected glyphs")
	}
	if !Alive.Valid() || !Empty.Valid() || CellState(2).Valid() {
		t.Fatal("unexpected validity")
	}
	var zero CellState
	if zero != Empty {
		t.Fatal("zero value is not Empty")
	}
}

func TestHistoryDetectsCycles(t *testing.T) {
	var h History
	g := NewGrid(5, 5)
	g.AddBlock(Coordinate{Row: 1, Col: 1})

	for i := 0; i < 2; i++ {
		h.UpdateHistory(g)
	}
	if h.IsStagnant(g) {
		t.Fatal("stagnant before enough history")
	}
	h.UpdateHistory(g)
	if !h.IsStagnant(g) {
		t.Fatal("still life not detected")
	}

	other := NewGrid(5, 5)
	other.AddBlinker(Coordinate{Row: 2, Col: 1})
	if h.IsStagnant(other) {
		t.Fatal("unseen state reported stagnant")
	}

	h.Clear()
	if h.IsStagnant(g) {
		t.Fatal("stagnant after Clear")
	}
}
