package editor

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Key codes for non-byte keys. They occupy a code space disjoint from the
// 0..255 byte range so they never collide with a literal input byte.
const (
	keyBackspace = 127
	keyArrowLeft = 1000 + iota
	keyArrowRight
	keyArrowUp
	keyArrowDown
	keyDelete
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
)

const esc = 0x1b

// ctrlKey masks a rune down to the byte its Ctrl-combination produces.
func ctrlKey(k rune) int {
	return int(k) & 0x1f
}

// terminal owns the raw-mode lifecycle for the controlling TTY.
type terminal struct {
	fd       int
	original unix.Termios
	raw      bool
}

// enableRawMode captures the current TTY attributes and installs raw mode:
// no break-as-interrupt, no CR->NL translation, no parity check, no
// high-bit stripping, no software flow control, no output post-processing,
// 8-bit characters, no echo, no canonical mode, no extended processing, no
// signal generation, and a 100ms-timeout / 0-minimum read policy.
func (t *terminal) enableRawMode() error {
	t.fd = int(os.Stdin.Fd())

	orig, err := unix.IoctlGetTermios(t.fd, unix.TCGETS)
	if err != nil {
		return errors.Wrap(err, "getting terminal attributes")
	}
	t.original = *orig

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, &raw); err != nil {
		return errors.Wrap(err, "setting terminal attributes")
	}
	t.raw = true
	return nil
}

// restore puts the TTY back into the mode it was in before enableRawMode.
// It is safe to call more than once.
func (t *terminal) restore() {
	if !t.raw {
		return
	}
	unix.IoctlSetTermios(t.fd, unix.TCSETS, &t.original)
	t.raw = false
}

// readKey blocks until at least one byte is available, then decodes escape
// sequences into the key codes above.
func readKey() (int, error) {
	var buf [1]byte
	for {
		n, err := os.Stdin.Read(buf[:])
		if n == 1 {
			break
		}
		if err != nil && err != io.EOF {
			return 0, errors.Wrap(err, "reading key")
		}
		// n == 0 (reported by os.File as io.EOF): the 100ms read timeout
		// elapsed. Keep waiting for the next byte.
	}

	if buf[0] != esc {
		return int(buf[0]), nil
	}

	var seq [3]byte
	if n, _ := os.Stdin.Read(seq[0:1]); n != 1 {
		return esc, nil
	}
	if n, _ := os.Stdin.Read(seq[1:2]); n != 1 {
		return esc, nil
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			if n, _ := os.Stdin.Read(seq[2:3]); n != 1 {
				return esc, nil
			}
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return keyHome, nil
				case '3':
					return keyDelete, nil
				case '4', '8':
					return keyEnd, nil
				case '5':
					return keyPageUp, nil
				case '6':
					return keyPageDown, nil
				}
			}
			return esc, nil
		}
		switch seq[1] {
		case 'A':
			return keyArrowUp, nil
		case 'B':
			return keyArrowDown, nil
		case 'C':
			return keyArrowRight, nil
		case 'D':
			return keyArrowLeft, nil
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
	}
	return esc, nil
}

// windowSize reports the terminal's (rows, cols). It prefers the TTY's
// window-size ioctl (via x/term); if that fails or reports zero columns,
// it falls back to shoving the cursor to the bottom-right corner and
// parsing the cursor-position report.
func windowSize() (rows, cols int, err error) {
	if cols, rows, err = term.GetSize(int(os.Stdout.Fd())); err == nil && cols != 0 {
		return rows, cols, nil
	}

	if _, err := os.Stdout.WriteString("\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, errors.Wrap(err, "positioning cursor")
	}
	return cursorPosition()
}

// cursorPosition issues a "report cursor position" query and parses the
// ESC [ row ; col R reply.
func cursorPosition() (rows, cols int, err error) {
	if _, err := os.Stdout.WriteString("\x1b[6n"); err != nil {
		return 0, 0, errors.Wrap(err, "requesting cursor position")
	}

	var buf [32]byte
	i := 0
	for i < len(buf)-1 {
		n, err := os.Stdin.Read(buf[i : i+1])
		if n != 1 {
			if err != nil {
				return 0, 0, errors.Wrap(err, "reading cursor position reply")
			}
			continue
		}
		if buf[i] == 'R' {
			i++
			break
		}
		i++
	}

	if i < 2 || buf[0] != esc || buf[1] != '[' {
		return 0, 0, errors.New("malformed cursor position reply")
	}
	if _, err := fmt.Sscanf(string(buf[2:i]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, errors.Wrap(err, "parsing cursor position reply")
	}
	if cols == 0 {
		return 0, 0, errors.New("terminal reported zero columns")
	}
	return rows, cols, nil
}
