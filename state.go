package gridloc

import "github.com/cassaundra/gridloc/internal/gridmem"

// ProgramState holds everything one GridLoc run mutates: the tape stack,
// the parallel pointer stack, the grid, the global saved-positions table,
// any active string-mode, and the random source `Random` draws from. It
// performs one instruction dispatch per Step, per spec §4.6.
//
// The tape stack and pointer stack always have equal length while the
// program is alive; Evaluate pushes one of each and Kill pops one of
// each. A run ends when the top tape yields no byte: either both stacks
// have reached zero length, or the top tape is exhausted.
type ProgramState struct {
	tapes    []EvalTape
	pointers []*Pointer

	grid  *gridmem.Grid
	saved [256]*Position

	stringKind *StringModeKind
	random     RandomSource

	io *ioCore
}

// NewProgramState returns a ProgramState ready to run source, starting
// from a single pointer at the origin reading a SourceTape over source.
func NewProgramState(source []byte, grid *gridmem.Grid, random RandomSource, io *ioCore) *ProgramState {
	return &ProgramState{
		tapes:    []EvalTape{NewSourceTape(source)},
		pointers: []*Pointer{NewPointer()},
		grid:     grid,
		random:   random,
		io:       io,
	}
}

func (ps *ProgramState) topTape() EvalTape {
	if n := len(ps.tapes); n > 0 {
		return ps.tapes[n-1]
	}
	return nil
}

func (ps *ProgramState) topPointer() *Pointer {
	if n := len(ps.pointers); n > 0 {
		return ps.pointers[n-1]
	}
	return nil
}

// TapeDepth reports the current size of the (equal-length) tape and
// pointer stacks, for inspection and for the stack-balance property (§8).
func (ps *ProgramState) TapeDepth() int {
	return len(ps.tapes)
}

// Grid exposes the underlying grid for inspection.
func (ps *ProgramState) Grid() *gridmem.Grid {
	return ps.grid
}

// StringMode reports the active string-mode quote, and whether one is
// active at all.
func (ps *ProgramState) StringMode() (StringModeKind, bool) {
	if ps.stringKind == nil {
		return 0, false
	}
	return *ps.stringKind, true
}

// Step pulls one byte from the top tape and dispatches it, per spec §4.6.
// It returns false once the top tape yields nothing: either because the
// stacks are empty (the program has ended) or because the top tape itself
// is exhausted.
func (ps *ProgramState) Step() (bool, error) {
	tape := ps.topTape()
	if tape == nil {
		return false, nil
	}
	b, ok := tape.Next()
	if !ok {
		return false, nil
	}

	pointer := ps.topPointer()
	if ps.stringKind != nil {
		return true, ps.stepStringMode(b, pointer)
	}

	instr, decoded := parseInstruction(b)
	if !decoded {
		return true, nil
	}
	return true, ps.dispatch(instr, pointer, tape)
}

// stepStringMode routes a byte read while string mode is active: a
// matching closing quote clears it, everything else is captured into the
// grid verbatim and the pointer advances, per spec §4.4/§4.8.
func (ps *ProgramState) stepStringMode(b byte, pointer *Pointer) error {
	if instr, decoded := parseInstruction(b); decoded &&
		instr.Kind == ToggleStringMode && instr.StringKind == *ps.stringKind {
		ps.stringKind = nil
		return nil
	}
	return ps.writeMove(pointer, b)
}

func (ps *ProgramState) dispatch(instr Instruction, pointer *Pointer, tape EvalTape) error {
	switch instr.Kind {
	case SetDirection:
		pointer.Direction = instr.Direction
	case MoveOne:
		pointer.MoveBy(1)
	case MoveMultiple:
		pointer.MoveBy(pointer.Value)
	case ReadValue:
		pointer.Value = ps.cellAt(pointer)
	case WriteValue:
		return ps.writeCell(pointer, pointer.Value)
	case WriteValueMove:
		return ps.writeMove(pointer, pointer.Value)
	case SwapValue:
		cell := ps.cellAt(pointer)
		if err := ps.writeCell(pointer, pointer.Value); err != nil {
			return err
		}
		pointer.Value = cell
	case StartLoop:
		if pointer.Value == 0 {
			ps.jumpForward(tape)
		}
	case EndLoop:
		if pointer.Value != 0 {
			ps.jumpBackward(tape)
		}
	case PushPosition:
		pointer.PushPosition()
	case PopPosition:
		pointer.PopPosition()
	case SwapPosition:
		pointer.SwapPosition()
	case SavePosition:
		pos := pointer.Position
		ps.saved[pointer.Value] = &pos
	case LoadPosition:
		if pos := ps.saved[pointer.Value]; pos != nil {
			pointer.Position = *pos
		}
	case ToggleStringMode:
		kind := instr.StringKind
		ps.stringKind = &kind
	case Evaluate:
		ps.evaluate(pointer)
	case Kill:
		ps.kill()
	case PushValue:
		pointer.Value = (pointer.Value&0x0F)<<4 | (instr.Value & 0x0F)
	case Add:
		pointer.Value = pointer.Value + ps.cellAt(pointer)
	case Subtract:
		pointer.Value = pointer.Value - ps.cellAt(pointer)
	case Multiply:
		pointer.Value = pointer.Value * ps.cellAt(pointer)
	case Divide:
		pointer.Value = divByte(pointer.Value, ps.cellAt(pointer))
	case Modulo:
		pointer.Value = modByte(pointer.Value, ps.cellAt(pointer))
	case Equals:
		pointer.Value = boolByte(pointer.Value == ps.cellAt(pointer))
	case GreaterThan:
		pointer.Value = boolByte(pointer.Value > ps.cellAt(pointer))
	case LogicalAnd:
		pointer.Value = boolByte(pointer.Value != 0 && ps.cellAt(pointer) != 0)
	case LogicalOr:
		pointer.Value = boolByte(pointer.Value != 0 || ps.cellAt(pointer) != 0)
	case LogicalNot:
		pointer.Value = boolByte(pointer.Value == 0)
	case Random:
		pointer.Value = ps.random.Byte()
	case Write:
		return ps.execWrite(instr, pointer)
	case Read:
		return ps.execRead(instr, pointer)
	}
	return nil
}

func (ps *ProgramState) cellAt(pointer *Pointer) byte {
	return ps.grid.Get(pointer.Position.X, pointer.Position.Y)
}

func (ps *ProgramState) writeCell(pointer *Pointer, value byte) error {
	if _, err := ps.grid.Set(pointer.Position.X, pointer.Position.Y, value); err != nil {
		return &StepError{Position: pointer.Position, Err: err}
	}
	return nil
}

func (ps *ProgramState) writeMove(pointer *Pointer, value byte) error {
	if err := ps.writeCell(pointer, value); err != nil {
		return err
	}
	pointer.MoveBy(1)
	return nil
}

func (ps *ProgramState) execWrite(instr Instruction, pointer *Pointer) error {
	switch instr.IOKind {
	case Character:
		return ps.io.writeCharacter(ps.cellAt(pointer))
	case Number:
		return ps.io.writeNumber(ps.cellAt(pointer))
	case StringIO:
		return ps.io.writeString(func() byte {
			v := ps.cellAt(pointer)
			if v != 0 {
				pointer.MoveBy(1)
			}
			return v
		})
	}
	return nil
}

func (ps *ProgramState) execRead(instr Instruction, pointer *Pointer) error {
	switch instr.IOKind {
	case Character:
		v, err := ps.io.readCharacter()
		if err != nil {
			return err
		}
		return ps.writeMove(pointer, v)
	case Number:
		v, err := ps.io.readNumber()
		if err != nil {
			return err
		}
		return ps.writeMove(pointer, v)
	case StringIO:
		bs, err := ps.io.readString()
		if err != nil {
			return err
		}
		for _, b := range bs {
			if err := ps.writeMove(pointer, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// evaluate implements `e`: push a pointer that is a view of the current
// one (position and direction only) as the new dispatch target, but root
// the GridTape on the pointer being evaluated, not on the pushed view.
// The two must stay distinct objects: instructions dispatched against the
// new top pointer (movement, position stack, etc.) must not also move
// where the tape itself reads its next byte from, or self-modifying code
// driven through `e` breaks the moment the sub-program repositions its
// own pointer. Per spec §4.4/§4.6.
func (ps *ProgramState) evaluate(pointer *Pointer) {
	view := CloneView(pointer)
	ps.pointers = append(ps.pointers, view)
	ps.tapes = append(ps.tapes, NewGridTape(pointer, ps.grid))
}

// kill implements `@`: pop the top tape and pointer. Popping the last
// pair is allowed; Step then reports no further progress.
func (ps *ProgramState) kill() {
	if n := len(ps.tapes); n > 0 {
		ps.tapes = ps.tapes[:n-1]
	}
	if n := len(ps.pointers); n > 0 {
		ps.pointers = ps.pointers[:n-1]
	}
}

// jumpForward implements the `[` side of the loop matcher (§4.8): scan
// forward over the current tape, tracking nesting depth, until the
// matching `]` is consumed.
func (ps *ProgramState) jumpForward(tape EvalTape) {
	depth := 0
	for {
		b, ok := tape.Next()
		if !ok {
			return
		}
		switch b {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return
			}
			depth--
		}
	}
}

// jumpBackward implements the `]` side of the loop matcher: step back
// over the `]` that triggered the jump, then scan backward, symmetrically,
// until the matching `[` is consumed.
func (ps *ProgramState) jumpBackward(tape EvalTape) {
	if _, ok := tape.Prev(); !ok {
		return
	}
	depth := 0
	for {
		b, ok := tape.Prev()
		if !ok {
			return
		}
		switch b {
		case ']':
			depth++
		case '[':
			if depth == 0 {
				return
			}
			depth--
		}
	}
}

func divByte(a, b byte) byte {
	if b == 0 {
		return 0
	}
	return a / b
}

func modByte(a, b byte) byte {
	if b == 0 {
		return 0
	}
	return a % b
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
