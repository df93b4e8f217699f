// Command gridloc runs GridLoc programs from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cassaundra/gridloc"
	"github.com/cassaundra/gridloc/internal/defaultprogram"
	"github.com/cassaundra/gridloc/internal/stepper"
	"github.com/cassaundra/gridloc/internal/visual"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("gridloc", flag.ExitOnError)
	delay := fs.Float64("delay", 0, "seconds to sleep between steps")
	doVisual := fs.Bool("visual", false, "enable the ebiten visualizer")
	timeout := fs.Duration("timeout", 0, "abort after this long (0 = no limit)")
	trace := fs.Bool("trace", false, "log per-step trace lines to stderr")
	dump := fs.Bool("dump", false, "print a final state summary to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	source, err := loadSource(fs.Arg(0))
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if *timeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, *timeout)
		defer timeoutCancel()
	}

	var opts []gridloc.Option
	if *trace {
		opts = append(opts, gridloc.WithLogf(func(mess string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, mess+"\n", args...)
		}))
	}

	in := gridloc.New(source, opts...)

	var runnerOpts []stepper.Option
	if *delay > 0 {
		runnerOpts = append(runnerOpts, stepper.WithDelay(time.Duration(*delay*float64(time.Second))))
	}
	if *trace {
		runnerOpts = append(runnerOpts, stepper.WithTrace(func(mess string, args ...interface{}) {
			log.Printf(mess, args...)
		}))
	}
	runner := stepper.New(in, runnerOpts...)

	if *doVisual {
		err = ebiten.RunGame(visual.New(runner))
	} else {
		err = runner.Run(ctx)
	}

	if *dump {
		printDump(in.State())
	}

	return err
}

func loadSource(path string) ([]byte, error) {
	if path == "" {
		return []byte(defaultprogram.Source), nil
	}
	return os.ReadFile(path)
}

func printDump(view gridloc.StateView) {
	pos, dir, value, ok := view.TopPointer()
	if !ok {
		fmt.Fprintln(os.Stderr, "gridloc: program ended with no active pointer")
		return
	}
	fmt.Fprintf(os.Stderr, "gridloc: pos=(%d,%d) dir=%s value=%d tape_depth=%d position_stack_depth=%d chunks=%d\n",
		pos.X, pos.Y, dir, value, view.TapeDepth(), view.PositionStackDepth(), view.ChunkCount())
}
