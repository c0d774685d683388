package runner

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-stepper/model"
	"github.com/sheikhrachel/go-gol-stepper/stepper"
)

// Report counts the events of the last completed generation
type Report struct {
	Reads  int
	Writes int
}

// Runner pumps a Stepper for one generation at a time. Every read is
// answered from the grid passed to Advance and every write lands in a
// separate clone, so no cell ever observes a next-generation value.
type Runner struct {
	pool    *model.GridPool
	stepper *stepper.Stepper
	last    Report
}

// New returns a Runner. A nil pool allocates a fresh grid per generation.
func New(pool *model.GridPool) *Runner {
	return &Runner{pool: pool}
}

// LastReport returns the counts of the last generation Advance completed
func (r *Runner) LastReport() Report {
	return r.last
}

// Advance computes the generation after current and returns it as a new
// grid. current is never modified. If ctx is cancelled or the stepper
// reports a protocol error the partial next grid is discarded and only
// the error is returned.
func (r *Runner) Advance(ctx context.Context, current *model.Grid) (*model.Grid, error) {
	next := r.clone(current)
	s := r.stepperFor(current)

	var report Report
	for {
		if err := ctx.Err(); err != nil {
			model.GridToPool(next, r.pool)
			return nil, errors.Wrap(err, "[Advance] generation cancelled")
		}

		var reply stepper.Reply
		ev := s.Poll()
		switch ev := ev.(type) {
		case stepper.ReadRequest:
			report.Reads++
			reply = stepper.StateReply{State: current.Query(ev.Coordinate)}
		case stepper.WriteCommand:
			report.Writes++
			next.Assign(ev.Coordinate, ev.State)
			reply = stepper.Ack{}
		case stepper.GenerationComplete:
			r.last = report
			return next, nil
		}

		if err := s.Resume(reply); err != nil {
			model.GridToPool(next, r.pool)
			return nil, errors.Wrapf(err, "[Advance] generation aborted at %+v", ev)
		}
	}
}

func (r *Runner) clone(g *model.Grid) *model.Grid {
	if r.pool != nil {
		return r.pool.Clone(g)
	}
	return g.Clone()
}

// stepperFor rewinds the cached stepper, or replaces it when the grid
// dimensions differ from the ones it was built for
func (r *Runner) stepperFor(g *model.Grid) *stepper.Stepper {
	if r.stepper == nil || r.stepper.Height() != g.GetHeight() || r.stepper.Width() != g.GetWidth() {
		r.stepper = stepper.New(g.GetHeight(), g.GetWidth())
		return r.stepper
	}
	r.stepper.Rewind()
	return r.stepper
}
