package stepper

import "fmt"

// ProtocolError reports a reply the Stepper cannot accept: a reply of the
// wrong kind for the pending event, or a state outside {Alive, Empty}.
// Once returned the Stepper is desynchronized and must be rewound.
type ProtocolError struct {
	Pending Event
	Got     Reply
	Reason  string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %s (pending %v, got %v)", e.Reason, e.Pending, e.Got)
}
