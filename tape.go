package gridloc

import "github.com/cassaundra/gridloc/internal/gridmem"

// EvalTape is a pull-based byte source feeding the instruction decoder.
// The tape stack always has the source tape at its bottom and zero or
// more grid-walking tapes pushed by `e` above it.
type EvalTape interface {
	// Next returns the next byte and true, or false if the tape is
	// exhausted.
	Next() (byte, bool)
	// Prev rewinds the tape by one step, returning the byte now exposed.
	// Used only by the loop matcher (§4.8); its exact semantics differ
	// between tape kinds (see SourceTape.Prev, GridTape.Prev) and are
	// preserved as specified rather than unified.
	Prev() (byte, bool)
}

// SourceTape is an EvalTape over a fixed byte slice with a forward index,
// the tape backing the program's original source text.
type SourceTape struct {
	source []byte
	index  int
}

// NewSourceTape returns a SourceTape walking source from its start.
func NewSourceTape(source []byte) *SourceTape {
	return &SourceTape{source: source}
}

// Next returns the byte at the current index and advances it, or false
// once the index runs past the end of source.
func (t *SourceTape) Next() (byte, bool) {
	if t.index >= len(t.source) {
		return 0, false
	}
	b := t.source[t.index]
	t.index++
	return b, true
}

// Prev rewinds the index by one and returns the byte now at it, or false
// if already at the start.
func (t *SourceTape) Prev() (byte, bool) {
	if t.index <= 0 {
		return 0, false
	}
	t.index--
	return t.source[t.index], true
}

// GridTape is an EvalTape that reads a program directly out of the grid,
// following the given Pointer: the mechanism behind `e` (Evaluate)
// turning the grid itself into code. It shares the Pointer with the
// program state's pointer stack: the tape advances the pointer it was
// rooted on, one below the top of that stack, while instructions are
// dispatched against the top pointer.
type GridTape struct {
	pointer *Pointer
	grid    *gridmem.Grid
}

// NewGridTape returns a GridTape that walks grid starting from pointer's
// current position and direction, advancing pointer as it reads.
func NewGridTape(pointer *Pointer, grid *gridmem.Grid) *GridTape {
	return &GridTape{pointer: pointer, grid: grid}
}

// Next reads the cell at the tape's pointer; a zero cell means the tape
// is exhausted (and the pointer is left resting on that zero). Otherwise
// the pointer advances one step in its own direction and the byte read is
// returned.
func (t *GridTape) Next() (byte, bool) {
	value := t.grid.Get(t.pointer.Position.X, t.pointer.Position.Y)
	if value == 0 {
		return 0, false
	}
	t.pointer.Position = t.pointer.Position.Add(t.pointer.Direction.UnitVector())
	return value, true
}

// Prev moves the tape's pointer one step backward (the opposite of its
// facing direction) and returns whatever byte is now there — zero or not.
// Unlike Next, Prev never signals exhaustion: this asymmetry is
// deliberate (spec §4.5/§9) and the loop matcher relies on it.
func (t *GridTape) Prev() (byte, bool) {
	t.pointer.Position = t.pointer.Position.Add(t.pointer.Direction.Opposite().UnitVector())
	value := t.grid.Get(t.pointer.Position.X, t.pointer.Position.Y)
	return value, true
}
