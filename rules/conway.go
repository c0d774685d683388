package rules

import "github.com/sheikhrachel/go-gol-stepper/model"

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

A living cell dies with fewer than 2 (underpopulation) or more than 3
(overpopulation) living neighbors; an empty cell comes alive with exactly 3.
*/
func NextState(current model.CellState, aliveNeighbors int) model.CellState {
	if current == model.Alive {
		if aliveNeighbors < 2 || aliveNeighbors > 3 {
			return model.Empty
		}
		return model.Alive
	}
	if aliveNeighbors == 3 {
		return model.Alive
	}
	return model.Empty
}
