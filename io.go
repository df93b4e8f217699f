package gridloc

import (
	"io"
	"strconv"

	"github.com/cassaundra/gridloc/internal/flushio"
	"github.com/cassaundra/gridloc/internal/lineio"
)

// ioCore bundles the external reader/writer collaborators (spec §6),
// mirroring the shape of the teacher's Core: a line reader, a flushable
// writer, and any closers accumulated by options that handed us an
// io.Closer.
type ioCore struct {
	in      *lineio.Reader
	out     flushio.WriteFlusher
	closers []io.Closer
}

func (ioc *ioCore) Close() (err error) {
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// writeCharacter implements `x`: emit one byte as-is.
func (ioc *ioCore) writeCharacter(value byte) error {
	_, err := ioc.out.Write([]byte{value})
	if err != nil {
		return err
	}
	return ioc.out.Flush()
}

// writeNumber implements `n`: emit the byte's unsigned decimal form.
func (ioc *ioCore) writeNumber(value byte) error {
	_, err := io.WriteString(ioc.out, strconv.FormatUint(uint64(value), 10))
	if err != nil {
		return err
	}
	return ioc.out.Flush()
}

// writeString implements `s`, called by the interpreter with a callback
// that reads the next grid byte and advances the pointer; it stops
// (without consuming) on the first zero byte, per spec §4.7.
func (ioc *ioCore) writeString(readNext func() byte) error {
	for {
		value := readNext()
		if value == 0 {
			break
		}
		if _, err := ioc.out.Write([]byte{value}); err != nil {
			return err
		}
	}
	return ioc.out.Flush()
}

// readCharacter implements `X`: the first byte of one input line, or 0 if
// the line was empty.
func (ioc *ioCore) readCharacter() (byte, error) {
	line, err := ioc.in.ReadLine()
	if err != nil && err != io.EOF {
		return 0, err
	}
	trimmed := trimNewline(line)
	if len(trimmed) == 0 {
		return 0, nil
	}
	return trimmed[0], nil
}

// readNumber implements `N`: one input line parsed as unsigned decimal,
// truncated to a byte; a non-numeric line silently yields 0.
func (ioc *ioCore) readNumber() (byte, error) {
	line, err := ioc.in.ReadLine()
	if err != nil && err != io.EOF {
		return 0, err
	}
	n, perr := strconv.ParseUint(string(trimNewline(line)), 10, 64)
	if perr != nil {
		return 0, nil
	}
	return byte(n), nil
}

// readString implements `S`: one input line, trailing newline trimmed,
// returned as its raw bytes for the caller to write into the grid.
func (ioc *ioCore) readString() ([]byte, error) {
	line, err := ioc.in.ReadLine()
	if err != nil && err != io.EOF {
		return nil, err
	}
	return trimNewline(line), nil
}

func trimNewline(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}
