package gridloc

import (
	"context"
	"io"
	"os"

	"github.com/cassaundra/gridloc/internal/flushio"
	"github.com/cassaundra/gridloc/internal/gridmem"
	"github.com/cassaundra/gridloc/internal/lineio"
	"github.com/cassaundra/gridloc/internal/logio"
	"github.com/cassaundra/gridloc/internal/panicerr"
)

// Option configures an Interpreter at construction time, in the manner of
// the teacher's VMOption: each Option mutates a config struct that New
// folds into the finished Interpreter.
type Option interface {
	apply(cfg *config)
}

type config struct {
	reader     io.Reader
	writers    []flushio.WriteFlusher
	random     RandomSource
	chunkLimit uint
	logf       func(string, ...interface{})
}

type optionFunc func(cfg *config)

func (f optionFunc) apply(cfg *config) { f(cfg) }

// Options folds a slice of Option into one, so a caller building its own
// option list from a loop can still pass it as a single variadic arg.
func Options(opts ...Option) Option {
	return optionFunc(func(cfg *config) {
		for _, opt := range opts {
			opt.apply(cfg)
		}
	})
}

// WithInput sets the reader consumed by the Read{Character,Number,String}
// family. The default is an always-empty reader (every read is EOF).
func WithInput(r io.Reader) Option {
	return optionFunc(func(cfg *config) { cfg.reader = r })
}

// WithOutput sets the writer the Write{Character,Number,String} family
// emits to. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(cfg *config) {
		wf := flushio.NewWriteFlusher(w)
		if len(cfg.writers) == 0 {
			cfg.writers = []flushio.WriteFlusher{wf}
		} else {
			cfg.writers[0] = wf
		}
	})
}

// WithTee adds an additional writer that receives a copy of everything
// written, alongside whatever WithOutput set (or the default stdout),
// e.g. to capture a transcript while still printing it.
func WithTee(w io.Writer) Option {
	return optionFunc(func(cfg *config) {
		if len(cfg.writers) == 0 {
			cfg.writers = []flushio.WriteFlusher{flushio.NewWriteFlusher(os.Stdout)}
		}
		cfg.writers = append(cfg.writers, flushio.NewWriteFlusher(w))
	})
}

// WithRandom sets the source Random draws from. The default is seeded
// from the current time.
func WithRandom(random RandomSource) Option {
	return optionFunc(func(cfg *config) { cfg.random = random })
}

// WithChunkLimit caps the number of grid chunks the interpreter may
// allocate; exceeding it surfaces a gridmem.LimitError from Step. Zero
// (the default) means unlimited.
func WithChunkLimit(limit uint) Option {
	return optionFunc(func(cfg *config) { cfg.chunkLimit = limit })
}

// WithLogf installs a leveled-logging sink for diagnostic trace output
// (see internal/logio), in place of the interpreter's silent default.
func WithLogf(logf func(string, ...interface{})) Option {
	return optionFunc(func(cfg *config) { cfg.logf = logf })
}

// Interpreter is a constructed, runnable GridLoc program: a ProgramState
// plus the external collaborators (reader, writer, logger) the step loop
// calls into. It satisfies the Core API named in spec §6.
type Interpreter struct {
	state  *ProgramState
	log    *logio.Logger
	traced bool
}

// New builds an Interpreter over source, applying opts in order.
func New(source []byte, opts ...Option) *Interpreter {
	cfg := config{
		reader: nil,
		random: NewRandomSource(defaultSeed()),
	}
	Options(opts...).apply(&cfg)

	if len(cfg.writers) == 0 {
		cfg.writers = []flushio.WriteFlusher{flushio.NewWriteFlusher(os.Stdout)}
	}

	var log logio.Logger
	if cfg.logf != nil {
		log.SetOutput(&logio.Writer{Logf: cfg.logf})
	} else {
		log.SetOutput(discardWriteCloser{})
	}

	ioc := &ioCore{
		in:  lineio.NewReader(cfg.reader),
		out: flushio.WriteFlushers(cfg.writers...),
	}

	grid := &gridmem.Grid{Limit: cfg.chunkLimit}
	state := NewProgramState([]byte(stripComments(string(source))), grid, cfg.random, ioc)

	return &Interpreter{state: state, log: &log, traced: cfg.logf != nil}
}

// Step advances the program by one instruction. It returns false once the
// program has ended: either the tape stack emptied (via `@`) or the top
// tape itself exhausted. ctx is checked before stepping, the same way the
// teacher's exec loop checks ctx.Err() between vm.step() calls. When a
// trace sink was installed via WithLogf, every step that progresses logs
// the active pointer's position, direction, and value register, mirroring
// the way the teacher's vm.step() guards its own trace behind vm.logfn.
func (in *Interpreter) Step(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	progressed, err := in.state.Step()
	if err != nil {
		in.log.ErrorIf(err)
	} else if progressed && in.traced {
		in.log.Tracef("%s", in.State())
	}
	return progressed, err
}

// Run steps the interpreter to completion, returning the first error
// encountered (if any), or ctx.Err() if ctx is canceled first. The run
// happens in its own goroutine recovered by internal/panicerr, exactly
// the way the teacher's Run wraps vm.run.
func (in *Interpreter) Run(ctx context.Context) error {
	return panicerr.Recover("Interpreter", func() error {
		for {
			progressed, err := in.Step(ctx)
			if err != nil {
				return err
			}
			if !progressed {
				return nil
			}
		}
	})
}

// State returns a read-only view of the interpreter's program state, for
// dumping or a visualizer.
func (in *Interpreter) State() StateView {
	return StateView{state: in.state}
}

type discardWriteCloser struct{}

func (discardWriteCloser) Write(p []byte) (int, error) { return len(p), nil }
func (discardWriteCloser) Close() error                { return nil }
