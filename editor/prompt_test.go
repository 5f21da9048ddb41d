package editor

import "testing"

func TestFindCallbackHighlightsMatch(t *testing.T) {
	e := &Editor{lastMatch: -1, searchDir: 1}
	e.insertRow(0, []byte("the quick brown fox"))
	e.insertRow(1, []byte("jumps over"))

	e.findCallback([]byte("brown"), 0)

	if e.cy != 0 {
		t.Fatalf("expected match on row 0, got row %d", e.cy)
	}
	start := e.cx
	for i := start; i < start+len("brown"); i++ {
		if e.rows[0].hl[i] != HLMatch {
			t.Errorf("byte %d expected HLMatch, got %v", i, e.rows[0].hl[i])
		}
	}
}

func TestFindCallbackRestoresHighlightOnNextCall(t *testing.T) {
	e := &Editor{lastMatch: -1, searchDir: 1, filename: "x.go"}
	e.selectSyntax()
	e.insertRow(0, []byte("// brown fox"))

	e.findCallback([]byte("brown"), 0)
	if e.rows[0].hl[len("// ")] != HLMatch {
		t.Fatalf("expected first call to mark the match")
	}

	// A second call with a non-matching query must restore the row's
	// original (comment) highlight before searching again.
	e.findCallback([]byte("zzz"), 0)
	if e.rows[0].hl[len("// ")] != HLComment {
		t.Errorf("expected restored comment highlight, got %v", e.rows[0].hl[len("// ")])
	}
}

func TestFindCallbackWrapsAroundBuffer(t *testing.T) {
	e := &Editor{lastMatch: -1, searchDir: 1}
	e.insertRow(0, []byte("needle here"))
	e.insertRow(1, []byte("nothing"))

	e.findCallback([]byte("needle"), 0)
	if e.cy != 0 {
		t.Fatalf("expected first match on row 0, got %d", e.cy)
	}

	e.findCallback([]byte("needle"), keyArrowDown)
	if e.cy != 0 {
		t.Errorf("expected search to wrap back to the only matching row, got %d", e.cy)
	}
}

func TestFindCallbackEscResetsSearchState(t *testing.T) {
	e := &Editor{lastMatch: -1, searchDir: 1}
	e.insertRow(0, []byte("needle"))
	e.findCallback([]byte("needle"), 0)

	e.findCallback([]byte("needle"), esc)
	if e.lastMatch != -1 {
		t.Errorf("expected lastMatch reset to -1 after ESC, got %d", e.lastMatch)
	}
}
