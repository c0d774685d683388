package stepper

import (
	"fmt"

	"github.com/sheikhrachel/go-gol-stepper/model"
)

// Event is emitted by the Stepper. It is one of ReadRequest, WriteCommand
// or GenerationComplete.
type Event interface {
	fmt.Stringer
	isEvent()
}

// ReadRequest asks the caller for the current state at Coordinate.
// The caller answers with a StateReply.
type ReadRequest struct {
	Coordinate model.Coordinate
}

// WriteCommand tells the caller that the cell at Coordinate must become
// State in the next generation. It is only emitted for cells that change.
// The caller answers with an Ack.
type WriteCommand struct {
	Coordinate model.Coordinate
	State      model.CellState
}

// GenerationComplete marks that every cell has been visited exactly once.
type GenerationComplete struct{}

func (ReadRequest) isEvent()        {}
func (WriteCommand) isEvent()       {}
func (GenerationComplete) isEvent() {}

func (e ReadRequest) String() string {
	return fmt.Sprintf("ReadRequest%v", e.Coordinate)
}

func (e WriteCommand) String() string {
	return fmt.Sprintf("WriteCommand%v=%v", e.Coordinate, e.State)
}

func (GenerationComplete) String() string {
	return "GenerationComplete"
}

// Reply is what the caller resumes the Stepper with. It is either a
// StateReply or an Ack.
type Reply interface {
	fmt.Stringer
	isReply()
}

// StateReply answers a ReadRequest.
type StateReply struct {
	State model.CellState
}

// Ack acknowledges a WriteCommand, or a GenerationComplete on a
// continuous stepper.
type Ack struct{}

func (StateReply) isReply() {}
func (Ack) isReply()        {}

func (r StateReply) String() string {
	return fmt.Sprintf("StateReply(%v)", r.State)
}

func (Ack) String() string {
	return "Ack"
}
