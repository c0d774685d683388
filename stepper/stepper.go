// Package stepper computes one generation as an explicit request/reply
// state machine. The Stepper never touches a grid: it asks for every state
// it needs with a ReadRequest and announces every change with a
// WriteCommand, so the caller decides where reads and writes land.
//
// A caller drives it with a loop:
//
//	for {
//		switch ev := s.Poll().(type) {
//		case stepper.ReadRequest:
//			err = s.Resume(stepper.StateReply{State: current.Query(ev.Coordinate)})
//		case stepper.WriteCommand:
//			next.Assign(ev.Coordinate, ev.State)
//			err = s.Resume(stepper.Ack{})
//		case stepper.GenerationComplete:
//			return next
//		}
//	}
package stepper

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-stepper/model"
	"github.com/sheikhrachel/go-gol-stepper/rules"
)

type phase int

const (
	awaitingSelfState phase = iota
	awaitingNeighbor
	awaitingWriteAck
	done
)

// Stepper visits cells in row-major order. For each cell it requests the
// cell's own state, then its 8 neighbors, and emits a WriteCommand only
// if the rule changes the state.
type Stepper struct {
	height     int
	width      int
	continuous bool

	cursor  model.Coordinate
	phase   phase
	self    model.CellState
	next    model.CellState
	counter neighborCounter
	err     error
}

// Option configures a Stepper
type Option func(*Stepper)

// Continuous makes the Stepper start the next pass at (0,0) when a
// GenerationComplete is acknowledged, instead of rejecting the Ack.
func Continuous() Option {
	return func(s *Stepper) {
		s.continuous = true
	}
}

// New returns a Stepper for a height x width grid, positioned at (0,0)
func New(height, width int, opts ...Option) *Stepper {
	s := &Stepper{height: height, width: width}
	for _, opt := range opts {
		opt(s)
	}
	s.Rewind()
	return s
}

// Height returns the number of rows visited per pass
func (s *Stepper) Height() int {
	return s.height
}

// Width returns the number of columns visited per pass
func (s *Stepper) Width() int {
	return s.width
}

// Rewind restarts the pass at (0,0) and clears any protocol error
func (s *Stepper) Rewind() {
	s.cursor = model.Coordinate{}
	s.err = nil
	s.phase = awaitingSelfState
	if s.height <= 0 || s.width <= 0 {
		s.phase = done
	}
}

// Err returns the protocol error that halted the Stepper, if any
func (s *Stepper) Err() error {
	return s.err
}

// Poll returns the pending event. It does not advance the Stepper, so
// repeated calls return the same event until Resume succeeds.
func (s *Stepper) Poll() Event {
	switch s.phase {
	case awaitingSelfState:
		return ReadRequest{Coordinate: s.cursor}
	case awaitingNeighbor:
		return s.counter.request()
	case awaitingWriteAck:
		return WriteCommand{Coordinate: s.cursor, State: s.next}
	default:
		return GenerationComplete{}
	}
}

// Resume answers the pending event and advances to the next one.
// A reply of the wrong kind, or a state that is neither Alive nor Empty,
// returns a *ProtocolError and halts the Stepper until Rewind.
func (s *Stepper) Resume(reply Reply) error {
	if s.err != nil {
		return s.err
	}

	switch s.phase {
	case awaitingSelfState:
		state, err := s.expectState(reply)
		if err != nil {
			return err
		}
		s.self = state
		s.counter.reset(s.cursor)
		s.phase = awaitingNeighbor

	case awaitingNeighbor:
		state, err := s.expectState(reply)
		if err != nil {
			return err
		}
		if !s.counter.record(state) {
			return nil
		}
		s.next = rules.NextState(s.self, s.counter.alive)
		if s.next != s.self {
			s.phase = awaitingWriteAck
			return nil
		}
		s.advance()

	case awaitingWriteAck:
		if err := s.expectAck(reply); err != nil {
			return err
		}
		s.advance()

	case done:
		if !s.continuous {
			return s.fail(reply, "stepper halted after generation complete")
		}
		if err := s.expectAck(reply); err != nil {
			return err
		}
		s.Rewind()
	}
	return nil
}

// advance moves the cursor to the next cell in row-major order
func (s *Stepper) advance() {
	s.cursor.Col++
	if s.cursor.Col == s.width {
		s.cursor.Col = 0
		s.cursor.Row++
	}
	if s.cursor.Row == s.height {
		s.phase = done
		return
	}
	s.phase = awaitingSelfState
}

func (s *Stepper) expectState(reply Reply) (model.CellState, error) {
	r, ok := reply.(StateReply)
	if !ok {
		return model.Empty, s.fail(reply, "expected a state reply")
	}
	if !r.State.Valid() {
		return model.Empty, s.fail(reply, "state is neither Alive nor Empty")
	}
	return r.State, nil
}

func (s *Stepper) expectAck(reply Reply) error {
	if _, ok := reply.(Ack); !ok {
		return s.fail(reply, "expected an ack")
	}
	return nil
}

func (s *Stepper) fail(reply Reply, reason string) error {
	s.err = errors.WithStack(&ProtocolError{
		Pending: s.Poll(),
		Got:     reply,
		Reason:  reason,
	})
	return s.err
}
