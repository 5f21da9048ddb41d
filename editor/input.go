package editor

// processKeypress reads one key and dispatches it. It returns quit=true
// once the user has confirmed quitting with unsaved changes discarded (or
// the buffer was already clean). A read error other than the idle-timeout
// (which readKey already loops past) is fatal and propagates to Run.
func (e *Editor) processKeypress() (quit bool, err error) {
	key, err := readKey()
	if err != nil {
		return false, err
	}
	return e.processKeypressKey(key), nil
}

// processKeypressKey applies the dispatch logic for an already-decoded key.
// Split out from processKeypress so the dispatch table can be exercised
// without a real TTY behind readKey.
func (e *Editor) processKeypressKey(key int) (quit bool) {
	switch key {
	case '\r':
		e.insertNewline()

	case ctrlKey('q'):
		if e.dirty > 0 {
			e.quitTimes--
			if e.quitTimes > 0 {
				e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
				return false
			}
		}
		return true

	case ctrlKey('s'):
		e.save()

	case keyHome:
		e.cx = 0

	case keyEnd:
		if e.cy < len(e.rows) {
			e.cx = len(e.rows[e.cy].chars)
		}

	case ctrlKey('f'):
		e.find()

	case ctrlKey('r'):
		e.redraw()

	case keyBackspace, ctrlKey('h'), keyDelete:
		if key == keyDelete {
			e.moveCursor(keyArrowRight)
		}
		e.deleteChar()

	case keyPageUp, keyPageDown:
		if key == keyPageUp {
			e.cy = e.rowoff
		} else {
			e.cy = min(e.rowoff+e.screenrows-1, len(e.rows))
		}
		dir := keyArrowDown
		if key == keyPageUp {
			dir = keyArrowUp
		}
		for i := 0; i < e.screenrows; i++ {
			e.moveCursor(dir)
		}

	case keyArrowLeft, keyArrowRight, keyArrowUp, keyArrowDown:
		e.moveCursor(key)

	case ctrlKey('l'), esc:
		// no-op: legacy terminal-refresh request and bare escape.

	default:
		e.insertChar(byte(key))
	}

	e.quitTimes = quitTimes
	return false
}

// moveCursor applies one arrow-key step, clamping the cursor to the
// destination row's length and allowing left/right to wrap across row
// boundaries.
func (e *Editor) moveCursor(key int) {
	var rowLen int
	hasRow := e.cy < len(e.rows)
	if hasRow {
		rowLen = len(e.rows[e.cy].chars)
	}

	switch key {
	case keyArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case keyArrowRight:
		if hasRow && e.cx < rowLen {
			e.cx++
		} else if hasRow && e.cx == rowLen {
			e.cy++
			e.cx = 0
		}
	case keyArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case keyArrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	}

	newRowLen := 0
	if e.cy < len(e.rows) {
		newRowLen = len(e.rows[e.cy].chars)
	}
	if e.cx > newRowLen {
		e.cx = newRowLen
	}
}
