package gridloc

import "fmt"

// StateView is a read-only window onto a running Interpreter's
// ProgramState, for the CLI's `--dump` flag and the visualizer, modeled
// on the teacher's own inspect-only Dumper.
type StateView struct {
	state *ProgramState
}

// TapeDepth returns the current (equal) length of the tape and pointer
// stacks. It reaches 0 only after `@` has popped the last pair; a program
// that ends because its top tape ran out keeps its depth.
func (v StateView) TapeDepth() int {
	return v.state.TapeDepth()
}

// TopPointer returns the position, direction, and value register of the
// active (top-of-stack) pointer, and whether one exists at all.
func (v StateView) TopPointer() (pos Position, dir Direction, value byte, ok bool) {
	p := v.state.topPointer()
	if p == nil {
		return Position{}, 0, 0, false
	}
	return p.Position, p.Direction, p.Value, true
}

// PositionStackDepth returns how many positions are saved on the active
// pointer's private stack.
func (v StateView) PositionStackDepth() int {
	p := v.state.topPointer()
	if p == nil {
		return 0
	}
	return p.StackDepth()
}

// StringMode reports the active string-mode quote kind, and whether one
// is active at all.
func (v StateView) StringMode() (StringModeKind, bool) {
	return v.state.StringMode()
}

// Cell reads one grid cell without mutating anything.
func (v StateView) Cell(x, y int) byte {
	return v.state.grid.Get(x, y)
}

// ChunkCount reports how many grid chunks are currently allocated.
func (v StateView) ChunkCount() int {
	return v.state.grid.ChunkCount()
}

// SavedPosition returns the position saved under key, if any.
func (v StateView) SavedPosition(key byte) (Position, bool) {
	if pos := v.state.saved[key]; pos != nil {
		return *pos, true
	}
	return Position{}, false
}

// String renders the active pointer's position, direction, and value
// register, for trace logging.
func (v StateView) String() string {
	pos, dir, value, ok := v.TopPointer()
	if !ok {
		return "no active pointer"
	}
	return fmt.Sprintf("pos=(%d,%d) dir=%s value=%d depth=%d", pos.X, pos.Y, dir, value, v.TapeDepth())
}
