package editor

import "testing"

func TestRowUpdateExpandsTabs(t *testing.T) {
	e := &Editor{}
	e.insertRow(0, []byte("a\tb"))

	row := &e.rows[0]
	if len(row.render) != TabStop+1 {
		t.Errorf("expected render length %d, got %d", TabStop+1, len(row.render))
	}
	if len(row.render) != len(row.hl) {
		t.Errorf("render/hl length mismatch: %d vs %d", len(row.render), len(row.hl))
	}
}

func TestRowCxToRxAndBack(t *testing.T) {
	e := &Editor{}
	e.insertRow(0, []byte("ab\tcd"))
	row := &e.rows[0]

	for cx := 0; cx <= len(row.chars); cx++ {
		rx := row.cxToRx(cx)
		if got := row.rxToCx(rx); got != cx {
			t.Errorf("cxToRx(%d)=%d, rxToCx(%d)=%d, want %d", cx, rx, rx, got, cx)
		}
	}
}

func TestInsertRowRenumbersSubsequentRows(t *testing.T) {
	e := &Editor{}
	e.insertRow(0, []byte("one"))
	e.insertRow(1, []byte("two"))
	e.insertRow(1, []byte("middle"))

	if e.rows[0].idx != 0 || e.rows[1].idx != 1 || e.rows[2].idx != 2 {
		t.Fatalf("unexpected row indices: %d %d %d", e.rows[0].idx, e.rows[1].idx, e.rows[2].idx)
	}
	if string(e.rows[1].chars) != "middle" {
		t.Errorf("expected middle row to be 'middle', got %q", e.rows[1].chars)
	}
}

func TestInsertRowOutOfRangeIsNoop(t *testing.T) {
	e := &Editor{}
	e.insertRow(5, []byte("nope"))
	if len(e.rows) != 0 {
		t.Errorf("expected no rows inserted, got %d", len(e.rows))
	}
}

func TestDeleteRowOutOfRangeIsNoop(t *testing.T) {
	e := &Editor{}
	e.insertRow(0, []byte("only"))
	e.deleteRow(-1)
	e.deleteRow(1)
	if len(e.rows) != 1 {
		t.Errorf("expected row to survive out-of-range deletes, got %d rows", len(e.rows))
	}
}

func TestRowInsertAndDeleteChar(t *testing.T) {
	e := &Editor{}
	e.insertRow(0, []byte("hello"))
	row := &e.rows[0]

	row.deleteChar(e, 1)
	if string(row.chars) != "hllo" {
		t.Errorf("expected %q, got %q", "hllo", row.chars)
	}

	row.insertChar(e, 1, 'e')
	if string(row.chars) != "hello" {
		t.Errorf("expected %q, got %q", "hello", row.chars)
	}
}

func TestRowDirtyIncrementsOnEdit(t *testing.T) {
	e := &Editor{}
	e.insertRow(0, []byte("x"))
	before := e.dirty
	e.rows[0].appendString(e, []byte("y"))
	if e.dirty <= before {
		t.Errorf("expected dirty counter to increase, stayed at %d", e.dirty)
	}
}
