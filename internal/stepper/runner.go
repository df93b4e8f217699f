// Package stepper wraps a gridloc.Interpreter with the concerns a driver
// needs that the core interpreter deliberately leaves out (spec §1's
// "out of scope" list): inter-step delay, stopping once a context is done
// (how the CLI applies Ctrl-C and --timeout), and a trace log, any of
// which both the headless CLI loop and the
// internal/visual Game want without duplicating the logic.
package stepper

import (
	"context"
	"time"

	"github.com/cassaundra/gridloc"
)

// Runner drives an Interpreter one step at a time.
type Runner struct {
	in     *gridloc.Interpreter
	delay  time.Duration
	trace  func(string, ...interface{})
	halted bool
	err    error
	steps  int64
}

// Option configures a Runner.
type Option func(*Runner)

// WithDelay sleeps d between every pair of steps, for visual or
// debugging playback at human speed.
func WithDelay(d time.Duration) Option {
	return func(r *Runner) { r.delay = d }
}

// WithTrace logs one line per step through logf: the step number,
// whether the step progressed, and any error it returned.
func WithTrace(logf func(string, ...interface{})) Option {
	return func(r *Runner) { r.trace = logf }
}

// New returns a Runner driving in.
func New(in *gridloc.Interpreter, opts ...Option) *Runner {
	r := &Runner{in: in}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Interpreter returns the wrapped Interpreter, e.g. for State().
func (r *Runner) Interpreter() *gridloc.Interpreter {
	return r.in
}

// Halted reports whether the program has ended (whether cleanly or due to
// an error recorded by Err).
func (r *Runner) Halted() bool {
	return r.halted
}

// Err returns the error that halted the run, if any.
func (r *Runner) Err() error {
	return r.err
}

// Steps returns how many times the interpreter has been stepped so far,
// counting the final step that found the program ended or failed.
func (r *Runner) Steps() int64 {
	return r.steps
}

// Tick performs exactly one step, applying the configured delay first. It
// is a no-op once Halted reports true. It drives the interpreter with a
// background context; callers that need cancellation (Run) thread their
// own ctx through tick directly instead.
func (r *Runner) Tick() error {
	return r.tick(context.Background())
}

func (r *Runner) tick(ctx context.Context) error {
	if r.halted {
		return r.err
	}
	if r.delay > 0 && r.steps > 0 {
		time.Sleep(r.delay)
	}
	progressed, err := r.in.Step(ctx)
	r.steps++
	if r.trace != nil {
		r.trace("step %d: progressed=%v err=%v", r.steps, progressed, err)
	}
	if err != nil {
		r.halted = true
		r.err = err
		return err
	}
	if !progressed {
		r.halted = true
	}
	return nil
}

// Run ticks to completion, or until ctx is done, returning whichever
// error (the interpreter's, or ctx's) ended the run first.
func (r *Runner) Run(ctx context.Context) error {
	for !r.halted {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := r.tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
