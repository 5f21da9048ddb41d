package editor

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// rowsToString joins every row's raw content with "\n", the on-disk line
// ending. It reports the joined byte count alongside the bytes so callers
// can truncate the destination file to the exact written length.
func (e *Editor) rowsToString() ([]byte, int) {
	var buf strings.Builder
	size := 0
	for _, r := range e.rows {
		size += len(r.chars) + 1
	}
	buf.Grow(size)

	for _, r := range e.rows {
		buf.Write(r.chars)
		buf.WriteByte('\n')
	}
	s := buf.String()
	return []byte(s), len(s)
}

// open loads filename into the buffer, replacing any existing content.
// Trailing "\n"/"\r" are stripped from each line as it is read; syntax
// highlighting is selected before the rows are read, so each row is
// highlighted as it is inserted.
func (e *Editor) open(filename string) error {
	e.filename = filename

	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()

	e.rows = e.rows[:0]
	e.cx, e.cy = 0, 0
	e.rowoff, e.coloff = 0, 0
	e.rx = 0
	e.selectSyntax()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1<<20)
	for scanner.Scan() {
		line := scanner.Bytes()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		e.insertRow(len(e.rows), line)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", filename)
	}

	e.dirty = 0
	return nil
}

// save writes the buffer to e.filename, prompting for a name first if the
// buffer has none. The destination is truncated to the exact written length,
// mirroring the open/truncate/write/close sequence the buffer model assumes.
func (e *Editor) save() {
	if e.filename == "" {
		name := e.prompt("Save as: %s (ESC to cancel)", nil)
		if name == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.selectSyntax()
	}

	buf, length := e.rowsToString()

	file, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	defer file.Close()

	if err := file.Truncate(int64(length)); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}

	n, err := file.Write(buf)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	if n != length {
		e.SetStatusMessage("Can't save! Partial write: %d/%d bytes", n, length)
		return
	}

	e.SetStatusMessage("%d bytes written to disk", length)
	e.dirty = 0
}
