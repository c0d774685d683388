package model

import (
	"sort"

	"github.com/pkg/errors"
)

// patterns holds well known shapes as offsets from their top-left corner.
// The glider is
//
//	.*.
//	..*
//	***
var patterns = map[string][]Coordinate{
	"glider":  {{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	"blinker": {{0, 0}, {0, 1}, {0, 2}},
	"block":   {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
}

// PatternNames returns the names accepted by AddPattern, sorted
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasPattern reports whether name is a known pattern
func HasPattern(name string) bool {
	_, ok := patterns[name]
	return ok
}

// AddPattern sets the named pattern alive with its top-left corner at origin
func (g *Grid) AddPattern(name string, origin Coordinate) error {
	cells, ok := patterns[name]
	if !ok {
		return errors.Errorf("[AddPattern] unknown pattern: %+v", name)
	}
	for _, c := range cells {
		g.Assign(origin.Offset(c.Row, c.Col), Alive)
	}
	return nil
}

// AddGlider adds a glider travelling towards increasing row and column
func (g *Grid) AddGlider(origin Coordinate) {
	_ = g.AddPattern("glider", origin)
}

// AddBlinker adds a horizontal blinker oscillator
func (g *Grid) AddBlinker(origin Coordinate) {
	_ = g.AddPattern("blinker", origin)
}

// AddBlock adds a 2x2 block still life
func (g *Grid) AddBlock(origin Coordinate) {
	_ = g.AddPattern("block", origin)
}
