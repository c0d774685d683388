package rules

import (
	"testing"

	"github.com/sheikhrachel/go-gol-stepper/model"
)

func TestNextState(t *testing.T) {
	// index is the alive-neighbor count
	wantFromAlive := [9]model.CellState{
		model.Empty, model.Empty, model.Alive, model.Alive,
		model.Empty, model.Empty, model.Empty, model.Empty, model.Empty,
	}
	wantFromEmpty := [9]model.CellState{
		model.Empty, model.Empty, model.Empty, model.Alive,
		model.Empty, model.Empty, model.Empty, model.Empty, model.Empty,
	}

	for n := 0; n <= 8; n++ {
		if got := NextState(model.Alive, n); got != wantFromAlive[n] {
			t.Errorf("NextState(Alive, %d) = %v, want %v", n, got, wantFromAlive[n])
		}
		if got := NextState(model.Empty, n); got != wantFromEmpty[n] {
			t.Errorf("NextState(Empty, %d) = %v, want %v", n, got, wantFromEmpty[n])
		}
	}
}
