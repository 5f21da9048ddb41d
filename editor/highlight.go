package editor

import (
	"bytes"
	"strings"
)

// HighlightClass tags one rendered byte with the syntax class it belongs to.
type HighlightClass uint8

const (
	HLNormal HighlightClass = iota
	HLComment
	HLMLComment
	HLKeyword1
	HLKeyword2
	HLString
	HLNumber
	HLMatch
)

const (
	highlightNumbers = 1 << 0
	highlightStrings = 1 << 1
)

// Syntax describes one file type's highlighting rules: filename match
// patterns, keyword list (a trailing '|' marks a secondary keyword),
// comment delimiters, and feature flags.
type Syntax struct {
	FileType   string
	FileMatch  []string
	Keywords   []string
	SingleLine string
	MultiStart string
	MultiEnd   string
	flags      int
}

// HLDB is the built-in file-type table. A conforming implementation may
// extend it; the selection algorithm and highlight priority must not
// change.
var HLDB = []Syntax{
	{
		FileType:  "c",
		FileMatch: []string{".c", ".h", ".cpp"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|", "void|",
		},
		SingleLine: "//",
		MultiStart: "/*",
		MultiEnd:   "*/",
		flags:      highlightNumbers | highlightStrings,
	},
	{
		FileType:  "go",
		FileMatch: []string{".go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "go", "goto", "if", "import", "package", "range",
			"return", "select", "struct", "switch", "type", "var",
			"func|", "interface|", "map|", "chan|",
		},
		SingleLine: "//",
		MultiStart: "/*",
		MultiEnd:   "*/",
		flags:      highlightNumbers | highlightStrings,
	},
}

func isSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return strings.IndexByte(",.()+-/*=~%<>[];", c) >= 0
}

// selectSyntax scans HLDB for the first entry whose FileMatch pattern
// matches e.filename; a leading '.' pattern means extension equality,
// otherwise the pattern is matched as a filename substring. On selection
// every existing row is re-highlighted from the top. If no entry matches,
// syntax highlighting is suppressed.
func (e *Editor) selectSyntax() {
	e.syntax = nil
	if e.filename == "" {
		return
	}

	ext := ""
	if i := strings.LastIndexByte(e.filename, '.'); i != -1 {
		ext = e.filename[i:]
	}

	for i := range HLDB {
		s := &HLDB[i]
		for _, pattern := range s.FileMatch {
			isExt := pattern[0] == '.'
			matched := (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(e.filename, pattern))
			if !matched {
				continue
			}
			e.syntax = s
			for i := range e.rows {
				e.rows[i].updateSyntax(e)
			}
			return
		}
	}
}

// updateSyntax scans r.render and fills r.hl, inheriting in-comment state
// from the previous row's hlOpenComment, then — if the row's ending
// comment state changed — walks forward re-highlighting rows until one's
// state settles. The source re-highlights the next row recursively; this
// is an explicit loop instead, so it cannot overflow the stack on a large
// file with one giant open block comment.
func (r *Row) updateSyntax(e *Editor) {
	if r.scan(e) {
		e.propagateHighlight(r.idx + 1)
	}
}

// scan performs the per-row classification pass and reports whether the
// row's ending hlOpenComment changed from its previously cached value.
func (r *Row) scan(e *Editor) (changed bool) {
	r.hl = make([]HighlightClass, len(r.render))
	if e.syntax == nil {
		changed = r.hlOpenComment
		r.hlOpenComment = false
		return changed
	}

	s := e.syntax
	scs, mcs, mce := []byte(s.SingleLine), []byte(s.MultiStart), []byte(s.MultiEnd)

	prevSep := true
	var inString byte
	inComment := r.idx > 0 && r.idx-1 < len(e.rows) && e.rows[r.idx-1].hlOpenComment

	render := r.render
	for i := 0; i < len(render); {
		c := render[i]
		prevHL := HLNormal
		if i > 0 {
			prevHL = r.hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && bytes.HasPrefix(render[i:], scs) {
			for j := i; j < len(render); j++ {
				r.hl[j] = HLComment
			}
			break
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				r.hl[i] = HLMLComment
				if bytes.HasPrefix(render[i:], mce) {
					for j := 0; j < len(mce) && i+j < len(render); j++ {
						r.hl[i+j] = HLMLComment
					}
					inComment = false
					i += len(mce)
					prevSep = true
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(render[i:], mcs) {
				for j := 0; j < len(mcs) && i+j < len(render); j++ {
					r.hl[i+j] = HLMLComment
				}
				inComment = true
				i += len(mcs)
				continue
			}
		}

		if s.flags&highlightStrings != 0 {
			if inString != 0 {
				r.hl[i] = HLString
				if c == '\\' && i+1 < len(render) {
					r.hl[i+1] = HLString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				r.hl[i] = HLString
				i++
				continue
			}
		}

		if s.flags&highlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHL == HLNumber)) || (c == '.' && prevHL == HLNumber) {
				r.hl[i] = HLNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, isSecondary, ok := matchKeyword(s.Keywords, render[i:]); ok {
				class := HLKeyword1
				if isSecondary {
					class = HLKeyword2
				}
				for k := 0; k < len(kw); k++ {
					r.hl[i+k] = class
				}
				i += len(kw)
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed = r.hlOpenComment != inComment
	r.hlOpenComment = inComment
	return changed
}

// matchKeyword returns the keyword text (without its trailing '|'), whether
// it is a secondary keyword, and whether rest begins with that keyword
// immediately followed by a separator (or end of rest).
func matchKeyword(keywords []string, rest []byte) (kw string, secondary bool, ok bool) {
	for _, k := range keywords {
		secondary = strings.HasSuffix(k, "|")
		word := k
		if secondary {
			word = k[:len(k)-1]
		}
		n := len(word)
		if n == 0 || n > len(rest) || !bytes.Equal(rest[:n], []byte(word)) {
			continue
		}
		if n < len(rest) && !isSeparator(rest[n]) {
			continue
		}
		return word, secondary, true
	}
	return "", false, false
}

// propagateHighlight walks forward from row at, re-highlighting rows
// whose incoming comment state changed, until a row's recomputed
// hlOpenComment equals its already-cached value (or the buffer ends).
// This replaces the source's recursive re-highlight with an explicit
// loop so it never overflows the call stack on a large file.
func (e *Editor) propagateHighlight(at int) {
	for at < len(e.rows) {
		if !e.rows[at].scan(e) {
			return
		}
		at++
	}
}

func syntaxColor(h HighlightClass) int {
	switch h {
	case HLComment, HLMLComment:
		return 36
	case HLKeyword1:
		return 33
	case HLKeyword2:
		return 34
	case HLString:
		return 35
	case HLNumber:
		return 31
	case HLMatch:
		return 34
	default:
		return 37
	}
}
