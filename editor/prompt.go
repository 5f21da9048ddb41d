package editor

import "bytes"

// prompt reads a line at the status bar using template (a single %s verb
// for the in-progress input), invoking callback after every keystroke so
// features like incremental search can react. It returns "" if the user
// cancels with ESC.
func (e *Editor) prompt(template string, callback func(query []byte, key int)) string {
	buf := make([]byte, 0, promptSize)

	for {
		e.SetStatusMessage(template, string(buf))
		e.refreshScreen()

		key, err := readKey()
		if err != nil {
			e.SetStatusMessage("%v", err)
			continue
		}

		switch key {
		case keyDelete, keyBackspace, ctrlKey('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case esc:
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return ""

		case '\r':
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return string(buf)
			}

		default:
			if !isControl(byte(key)) && key < 128 {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(buf, key)
		}
	}
}

// find runs an incremental search, restoring the cursor/scroll position it
// started from if the user cancels without accepting a match.
func (e *Editor) find() {
	savedCx, savedCy := e.cx, e.cy
	savedColoff, savedRowoff := e.coloff, e.rowoff

	query := e.prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback)

	if query == "" {
		e.cx, e.cy = savedCx, savedCy
		e.coloff, e.rowoff = savedColoff, savedRowoff
	}
}

// findCallback advances the search by one match per invocation, in the
// direction implied by the key that triggered it, wrapping around the
// buffer. It restores the previous match's highlight before applying the
// new one.
func (e *Editor) findCallback(query []byte, key int) {
	if e.savedHL != nil {
		copy(e.rows[e.savedHLLine].hl, e.savedHL)
		e.savedHL = nil
	}

	switch key {
	case '\r', esc:
		e.lastMatch = -1
		e.searchDir = 1
		return
	case keyArrowRight, keyArrowDown:
		e.searchDir = 1
	case keyArrowLeft, keyArrowUp:
		e.searchDir = -1
	default:
		e.lastMatch = -1
		e.searchDir = 1
	}

	if len(query) == 0 {
		return
	}

	if e.lastMatch == -1 {
		e.searchDir = 1
	}
	current := e.lastMatch

	for i := 0; i < len(e.rows); i++ {
		current += e.searchDir
		switch {
		case current == -1:
			current = len(e.rows) - 1
		case current == len(e.rows):
			current = 0
		}

		row := &e.rows[current]
		match := bytes.Index(row.render, query)
		if match == -1 {
			continue
		}

		e.lastMatch = current
		e.cy = current
		e.cx = row.rxToCx(match)
		e.rowoff = len(e.rows)

		e.savedHLLine = current
		e.savedHL = make([]HighlightClass, len(row.hl))
		copy(e.savedHL, row.hl)
		for k := match; k < match+len(query) && k < len(row.hl); k++ {
			row.hl[k] = HLMatch
		}
		break
	}
}
