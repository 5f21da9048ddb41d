package editor

// appendBuffer collects one frame's worth of output so refreshScreen can
// issue a single write, avoiding the flicker of many small writes.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}
