package gridloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInstruction_Directions(t *testing.T) {
	for c, dir := range map[byte]Direction{
		'<': Left,
		'>': Right,
		'^': Up,
		'v': Down,
	} {
		instr, ok := parseInstruction(c)
		assert.True(t, ok, "%q must decode", c)
		assert.Equal(t, SetDirection, instr.Kind)
		assert.Equal(t, dir, instr.Direction)
	}
}

func TestParseInstruction_Nibbles(t *testing.T) {
	instr, ok := parseInstruction('7')
	assert.True(t, ok)
	assert.Equal(t, PushValue, instr.Kind)
	assert.Equal(t, byte(7), instr.Value)

	instr, ok = parseInstruction('C')
	assert.True(t, ok)
	assert.Equal(t, PushValue, instr.Kind)
	assert.Equal(t, byte(12), instr.Value)
}

func TestParseInstruction_Unrecognized(t *testing.T) {
	_, ok := parseInstruction(' ')
	assert.False(t, ok)

	_, ok = parseInstruction('\t')
	assert.False(t, ok)

	_, ok = parseInstruction(0x80)
	assert.False(t, ok, "bytes outside ASCII must be rejected")
}

func TestParseInstruction_IO(t *testing.T) {
	cases := []struct {
		c    byte
		kind Kind
		io   IOKind
	}{
		{'x', Write, Character},
		{'n', Write, Number},
		{'s', Write, StringIO},
		{'X', Read, Character},
		{'N', Read, Number},
		{'S', Read, StringIO},
	}
	for _, tc := range cases {
		instr, ok := parseInstruction(tc.c)
		assert.True(t, ok, "%q", tc.c)
		assert.Equal(t, tc.kind, instr.Kind, "%q", tc.c)
		assert.Equal(t, tc.io, instr.IOKind, "%q", tc.c)
	}
}

func TestParseInstruction_StringMode(t *testing.T) {
	instr, ok := parseInstruction('\'')
	assert.True(t, ok)
	assert.Equal(t, ToggleStringMode, instr.Kind)
	assert.Equal(t, SingleQuote, instr.StringKind)

	instr, ok = parseInstruction('"')
	assert.True(t, ok)
	assert.Equal(t, ToggleStringMode, instr.Kind)
	assert.Equal(t, DoubleQuote, instr.StringKind)
}

func TestStripComments(t *testing.T) {
	in := "abc # this is a comment\ndef"
	assert.Equal(t, "abc \ndef", stripComments(in))
}
