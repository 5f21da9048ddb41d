package editor

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	version    = "0.1.0"
	quitTimes  = 3
	promptSize = 128
)

// Editor holds all state for one open buffer: cursor position in both chars
// and render coordinates, the scroll offsets, the row store, the viewport
// dimensions, and the syntax table currently selected for the open file.
type Editor struct {
	cx, cy   int
	rx       int
	rowoff   int
	coloff   int
	rows     []Row
	dirty    int
	filename string

	statusmsg     string
	statusmsgTime time.Time

	syntax *Syntax

	screenrows, screencols int
	quitTimes              int

	term terminal

	lastMatch   int
	searchDir   int
	savedHLLine int
	savedHL     []HighlightClass
}

// NewEditor returns a zero-value Editor ready for Init.
func NewEditor() *Editor {
	return &Editor{}
}

// Init captures the terminal's current window size and resets all buffer
// state. It must run after raw mode is enabled.
func (e *Editor) Init() error {
	e.cx, e.cy = 0, 0
	e.rx = 0
	e.rowoff, e.coloff = 0, 0
	e.rows = nil
	e.dirty = 0
	e.filename = ""
	e.statusmsg = ""
	e.statusmsgTime = time.Time{}
	e.syntax = nil
	e.quitTimes = quitTimes
	e.lastMatch = -1
	e.searchDir = 1

	rows, cols, err := windowSize()
	if err != nil {
		return errors.Wrap(err, "getting window size")
	}
	e.screenrows = rows - 2 // status bar + message bar
	e.screencols = cols
	return nil
}

// Run installs raw mode, loads filename (if non-empty) into a fresh
// buffer, then drives the read-refresh-process loop until the user quits
// or a fatal error occurs. Every exit path — clean quit or fatal error —
// restores the TTY, clears the screen, and homes the cursor before
// returning, so the caller's terminal is never left in raw mode or mid-frame.
func (e *Editor) Run(filename string) error {
	if err := e.term.enableRawMode(); err != nil {
		return err
	}
	defer e.leaveScreen()

	if err := e.Init(); err != nil {
		return err
	}

	if filename != "" {
		if err := e.open(filename); err != nil {
			return err
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		e.refreshScreen()
		quit, err := e.processKeypress()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// leaveScreen restores the terminal's original mode and repaints a clean
// blank frame. Deferred once in Run so it runs on every exit path, clean
// or fatal.
func (e *Editor) leaveScreen() {
	e.term.restore()
	os.Stdout.WriteString(ansiClearScreen)
	os.Stdout.WriteString(ansiCursorHome)
}

// SetStatusMessage formats and displays a message in the bottom status bar
// for the next five seconds of screen refreshes.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusmsg = fmt.Sprintf(format, args...)
	e.statusmsgTime = time.Now()
}

// redraw re-queries the terminal's window size on an explicit redraw
// request (Ctrl-R) and repaints. Window-size changes are not detected
// otherwise.
func (e *Editor) redraw() {
	rows, cols, err := windowSize()
	if err != nil {
		e.SetStatusMessage("%v", err)
		return
	}
	e.screenrows = rows - 2
	e.screencols = cols
	e.refreshScreen()
}

// insertChar inserts c at the cursor, appending a fresh row first if the
// cursor sits on the implicit row past the end of the buffer.
func (e *Editor) insertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rows[e.cy].insertChar(e, e.cx, c)
	e.cx++
}

// insertNewline splits the current row at the cursor into two rows and
// moves the cursor to the start of the new one.
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
	} else {
		row := &e.rows[e.cy]
		tail := append([]byte(nil), row.chars[e.cx:]...)
		e.insertRow(e.cy+1, tail)

		row = &e.rows[e.cy]
		row.chars = row.chars[:e.cx]
		row.update(e)
	}
	e.cy++
	e.cx = 0
}

// deleteChar removes the character before the cursor, joining the current
// row into the previous one when deleting at column 0.
func (e *Editor) deleteChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := &e.rows[e.cy]
	if e.cx > 0 {
		row.deleteChar(e, e.cx-1)
		e.cx--
	} else {
		e.cx = len(e.rows[e.cy-1].chars)
		e.rows[e.cy-1].appendString(e, row.chars)
		e.deleteRow(e.cy)
		e.cy--
	}
}
