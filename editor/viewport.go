package editor

import (
	"fmt"
	"os"
	"time"
)

// scroll keeps the cursor within the visible window, adjusting rowoff and
// coloff (and recomputing rx from the cursor's row) as needed.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < len(e.rows) {
		e.rx = e.rows[e.cy].cxToRx(e.cx)
	}

	if e.cy < e.rowoff {
		e.rowoff = e.cy
	}
	if e.cy >= e.rowoff+e.screenrows {
		e.rowoff = e.cy - e.screenrows + 1
	}
	if e.rx < e.coloff {
		e.coloff = e.rx
	}
	if e.rx >= e.coloff+e.screencols {
		e.coloff = e.rx - e.screencols + 1
	}
}

// drawRows paints the buffer's visible rows (or the "~" gutter and welcome
// banner past end of file), coalescing consecutive bytes of the same
// highlight class into a single color-escape run.
func (e *Editor) drawRows(ab *appendBuffer) {
	for y := 0; y < e.screenrows; y++ {
		filerow := y + e.rowoff
		if filerow >= len(e.rows) {
			if len(e.rows) == 0 && y == e.screenrows/3 {
				welcome := fmt.Sprintf("kilo editor -- version %s", version)
				if len(welcome) > e.screencols {
					welcome = welcome[:e.screencols]
				}
				padding := (e.screencols - len(welcome)) / 2
				if padding > 0 {
					ab.appendString("~")
					padding--
				}
				for ; padding > 0; padding-- {
					ab.appendString(" ")
				}
				ab.appendString(welcome)
			} else {
				ab.appendString("~")
			}
		} else {
			row := &e.rows[filerow]
			length := len(row.render) - e.coloff
			if length < 0 {
				length = 0
			}
			if length > e.screencols {
				length = e.screencols
			}

			currentColor := -1
			for j := 0; j < length; j++ {
				c := row.render[e.coloff+j]
				h := row.hl[e.coloff+j]

				if isControl(c) {
					ab.appendString(ansiColorInvert)
					if c == 127 {
						ab.appendString("?")
					} else {
						ab.append([]byte{c + '@'})
					}
					ab.appendString(ansiColorReset)
					if currentColor != -1 {
						ab.append(fmt.Appendf(nil, "\x1b[%dm", currentColor))
					}
					continue
				}

				if h == HLNormal {
					if currentColor != -1 {
						ab.appendString(ansiColorReset)
						currentColor = -1
					}
					ab.append([]byte{c})
				} else {
					color := syntaxColor(h)
					if color != currentColor {
						currentColor = color
						ab.append(fmt.Appendf(nil, "\x1b[%dm", color))
					}
					ab.append([]byte{c})
				}
			}
			ab.appendString(ansiColorReset)
		}

		ab.appendString(ansiClearLine)
		ab.appendString("\r\n")
	}
}

// drawStatusBar paints the inverse-video status line: filename, line count,
// and modified flag on the left; filetype and cursor line on the right.
func (e *Editor) drawStatusBar(ab *appendBuffer) {
	ab.appendString(ansiColorInvert)

	filename := e.filename
	if filename == "" {
		filename = "[No Name]"
	}
	dirty := ""
	if e.dirty > 0 {
		dirty = "(modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines %s", filename, len(e.rows), dirty)
	if len(status) > e.screencols {
		status = status[:e.screencols]
	}

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.FileType
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, len(e.rows))

	ab.appendString(status)
	for n := len(status); n < e.screencols; n++ {
		if e.screencols-n == len(rstatus) {
			ab.appendString(rstatus)
			break
		}
		ab.appendString(" ")
	}

	ab.appendString(ansiColorReset)
	ab.appendString("\r\n")
}

// drawMessageBar paints the transient status message, cleared five seconds
// after it was set.
func (e *Editor) drawMessageBar(ab *appendBuffer) {
	ab.appendString(ansiClearLine)
	msg := e.statusmsg
	if len(msg) > e.screencols {
		msg = msg[:e.screencols]
	}
	if time.Since(e.statusmsgTime) < 5*time.Second {
		ab.appendString(msg)
	}
}

// refreshScreen repaints the whole frame in a single write: hide the
// cursor, home it, paint rows/status/message, reposition the cursor over
// the buffer, then show it again.
func (e *Editor) refreshScreen() {
	e.scroll()

	var ab appendBuffer
	ab.appendString(ansiCursorHide)
	ab.appendString(ansiCursorHome)

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	ab.append(fmt.Appendf(nil, ansiCursorPositionFmt, e.cy-e.rowoff+1, e.rx-e.coloff+1))
	ab.appendString(ansiCursorShow)

	os.Stdout.Write(ab.b)
}
