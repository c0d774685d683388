package stepper

import "github.com/sheikhrachel/go-gol-stepper/model"

// neighborOffsets are the (row, col) deltas of the 8 surrounding cells in
// the order their ReadRequests are emitted.
var neighborOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, -1}, {-1, 1}, {1, -1},
}

// neighborCounter is the inner state machine: it walks the neighborhood of
// origin one ReadRequest at a time and counts the Alive answers.
type neighborCounter struct {
	origin model.Coordinate
	index  int
	alive  int
}

func (n *neighborCounter) reset(origin model.Coordinate) {
	n.origin = origin
	n.index = 0
	n.alive = 0
}

func (n *neighborCounter) request() ReadRequest {
	d := neighborOffsets[n.index]
	return ReadRequest{Coordinate: n.origin.Offset(d[0], d[1])}
}

// record consumes the answer to the pending request and reports whether
// all neighbors have been counted
func (n *neighborCounter) record(state model.CellState) bool {
	if state == model.Alive {
		n.alive++
	}
	n.index++
	return n.index == len(neighborOffsets)
}
